package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/importing"
)

// CampaignSyncer é a parte do agendador usada pela API
type CampaignSyncer interface {
	SyncUser(ctx context.Context, userID string, startDate, endDate time.Time) (*domain.SyncResponse, error)
	DefaultPeriod() (time.Time, time.Time)
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// SyncCampaigns sincroniza as contas do usuário; sem datas usa o período padrão do cron
func SyncCampaigns(syncer CampaignSyncer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		start, end, err := parsePeriod(r, loc, syncer.DefaultPeriod)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		response, err := syncer.SyncUser(r.Context(), userID, start, end)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao sincronizar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func GetLastSync(service importing.ImportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		lastSync, err := service.GetLastSync(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao ler última sincronização")
			return
		}

		writeJSON(w, http.StatusOK, lastSync)
	})
}
