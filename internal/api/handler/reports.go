package handler

import (
	"net/http"
	"time"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/importing"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/reconciling"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
)

// GetPeriodReport lê o relatório agregado da conta; start_date e end_date são obrigatórios
func GetPeriodReport(service importing.ImportService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		start, end, err := parsePeriod(r, loc, nil)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		report, err := service.GetPeriodReport(r.Context(), userID, id, start, end)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao ler relatório do período")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

// ComputeDisplayTotals soma as campanhas enviadas respeitando seleção e filtros
func ComputeDisplayTotals() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.DisplayTotalsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		totals := reconciling.ComputeDisplayTotals(request.Campaigns, request.Selection, request.Filters)

		writeJSON(w, http.StatusOK, totals)
	})
}
