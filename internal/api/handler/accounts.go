package handler

import (
	"net/http"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/account"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
)

func AccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		accounts, err := service.ListAccounts(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar contas")
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	})
}

func DeleteAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		if err := service.DeleteAccount(r.Context(), userID, id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover conta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func UpdateCampaignStatus(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateCampaignStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		results, err := service.UpdateCampaignStatus(r.Context(), userID, id, request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar status das campanhas")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"results": results})
	})
}

func UpdateCampaignBudget(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateCampaignBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		results, err := service.UpdateCampaignBudget(r.Context(), userID, id, request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar orçamento das campanhas")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"results": results})
	})
}
