package domain

import "time"

// PeriodReport é a leitura agregada de um período pronta para exibição
type PeriodReport struct {
	AccountID    string               `json:"account_id"`
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	ImportCount  int                  `json:"import_count"`
	Totals       *PeriodTotals        `json:"totals"`
	Campaigns    []ReconciledCampaign `json:"campaigns"`
	LastSyncedAt *time.Time           `json:"last_synced_at"`
}

// DisplaySelection lista as campanhas marcadas; vazia significa todas
type DisplaySelection struct {
	CampaignNames []string `json:"campaign_names"`
}

type DisplayFilters struct {
	Status        CampaignStatus `json:"status"`
	Search        string         `json:"search"`
	IncludeNoData bool           `json:"include_no_data"`
}

type DisplayTotals struct {
	CampaignCount int      `json:"campaign_count"`
	Spend         float64  `json:"spend"`
	Revenue       float64  `json:"revenue"`
	Profit        float64  `json:"profit"`
	ROI           *float64 `json:"roi"`
	Impressions   int64    `json:"impressions"`
	Clicks        int64    `json:"clicks"`
	CTR           float64  `json:"ctr"`
	CPC           float64  `json:"cpc"`
}

type DisplayTotalsRequest struct {
	Campaigns []ReconciledCampaign `json:"campaigns"`
	Selection DisplaySelection     `json:"selection"`
	Filters   DisplayFilters       `json:"filters"`
}
