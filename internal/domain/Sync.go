package domain

import (
	"fmt"
	"time"
)

// SyncResult é o resultado da sincronização de uma conta
type SyncResult struct {
	AccountID     string        `json:"account_id"`
	AccountName   string        `json:"account_name"`
	AdvertiserID  *string       `json:"advertiser_id"`
	Success       bool          `json:"success"`
	CampaignCount int           `json:"campaign_count"`
	Error         string        `json:"error,omitempty"`
	Totals        *PeriodTotals `json:"totals,omitempty"`
}

type SyncSummary struct {
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
	Message   string `json:"message"`
}

type SyncResponse struct {
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Summary   SyncSummary  `json:"summary"`
	Results   []SyncResult `json:"results"`
}

// Summarize resume um lote de resultados, ex.: "4 sincronizadas, 1 com erro"
func Summarize(results []SyncResult) SyncSummary {
	summary := SyncSummary{}
	for _, result := range results {
		if result.Success {
			summary.Succeeded++
			continue
		}
		summary.Failed++
	}

	summary.Message = fmt.Sprintf("%d sincronizadas, %d com erro", summary.Succeeded, summary.Failed)
	if summary.Failed == 0 {
		summary.Message = fmt.Sprintf("%d sincronizadas", summary.Succeeded)
	}

	return summary
}

type LastSync struct {
	UserID       string     `json:"user_id"`
	LastSyncedAt *time.Time `json:"last_synced_at"`
}
