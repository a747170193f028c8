package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/scheduler"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/account"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/importing"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/apiErrors"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/log"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/middleware"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errInvalidDate = errors.New("data inválida, use AAAA-MM-DD")

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log.ForContext(r.Context()).WithError(err).Error(fallback)

	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	var importErr *importing.ImportError
	if errors.As(err, &importErr) {
		apiErrors.WriteError(w, importErr.Code, importErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, scheduler.ErrSyncInProgress):
		apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, err.Error(), nil)
	case errors.Is(err, scheduler.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
	case errors.Is(err, scheduler.ErrRevenueFetch):
		apiErrors.WriteError(w, apiErrors.ErrRevenueSource, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// currentUserID lê o usuário das claims; responde 401 quando ausente
func currentUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.UserID() == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}
	return claims.UserID(), true
}

// parsePeriod lê start_date e end_date da query. Sem nenhuma das duas usa o
// período padrão; com apenas uma, a outra assume o mesmo dia.
func parsePeriod(r *http.Request, loc *time.Location, defaultPeriod func() (time.Time, time.Time)) (time.Time, time.Time, error) {
	query := r.URL.Query()
	startRaw := strings.TrimSpace(query.Get("start_date"))
	endRaw := strings.TrimSpace(query.Get("end_date"))

	if startRaw == "" && endRaw == "" {
		if defaultPeriod == nil {
			return time.Time{}, time.Time{}, errors.New("start_date e end_date são obrigatórios")
		}
		start, end := defaultPeriod()
		return start, end, nil
	}

	if startRaw == "" {
		startRaw = endRaw
	}
	if endRaw == "" {
		endRaw = startRaw
	}

	start, err := utils.ParseDateIn(startRaw, loc)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidDate
	}

	end, err := utils.ParseDateIn(endRaw, loc)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidDate
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, scheduler.ErrInvalidPeriod
	}

	return start, end, nil
}

func writePeriodError(w http.ResponseWriter, err error) {
	if errors.Is(err, scheduler.ErrInvalidPeriod) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Data inicial depois da data final", nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
}
