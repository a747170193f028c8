package handler

import (
	"net/http"

	"github.com/andresholmo/tiktok-arbitrage-api/pkg/apiErrors"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/log"
)

const CronJobTypeCampaignSync = "campaign-sync"

// RunCampaignSyncJob dispara a sincronização de todos os usuários em background
func RunCampaignSyncJob(syncer CampaignSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("Execução manual da sincronização de campanhas solicitada")

		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		if !syncer.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização de campanhas já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    CronJobTypeCampaignSync,
		})
	})
}

func GetCronStatus(syncer CampaignSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if syncer != nil {
			status[CronJobTypeCampaignSync] = syncer.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
