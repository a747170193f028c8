package domain

import "time"

// PeriodTotals são os totais persistidos de uma importação (usuário, conta, período)
type PeriodTotals struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	AccountID          string    `json:"account_id"`
	AdvertiserID       *string   `json:"advertiser_id"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	Spend              float64   `json:"spend"`
	TrackedRevenue     float64   `json:"tracked_revenue"`
	TrackedProfit      float64   `json:"tracked_profit"`
	TrackedROI         *float64  `json:"tracked_roi"`
	RealRevenue        float64   `json:"real_revenue"`
	RealProfit         float64   `json:"real_profit"`
	RealROI            *float64  `json:"real_roi"`
	SpendImpressions   int64     `json:"spend_impressions"`
	SpendClicks        int64     `json:"spend_clicks"`
	RevenueImpressions int64     `json:"revenue_impressions"`
	RevenueClicks      int64     `json:"revenue_clicks"`
	NetworkImpressions int64     `json:"network_impressions"`
	CampaignCount      int       `json:"campaign_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UnattributedRevenue é a receita da rede que o cruzamento por nome não explicou.
// Pode ser negativa quando os dados externos estão inconsistentes.
func (p *PeriodTotals) UnattributedRevenue() float64 {
	return p.RealRevenue - p.TrackedRevenue
}

// PeriodImportInput reúne os dados de uma importação de período
type PeriodImportInput struct {
	UserID         string
	Account        *Account
	StartDate      time.Time
	EndDate        time.Time
	Spend          []SpendRecord
	Revenue        []RevenueRecord
	NetworkRevenue NetworkRevenue
}

// PeriodImportFilters filtra importações de um usuário/conta por intervalo
type PeriodImportFilters struct {
	UserID    string
	AccountID string
	StartDate time.Time
	EndDate   time.Time
}
