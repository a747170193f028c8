package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusEnabled  CampaignStatus = "ENABLED"
	CampaignStatusDisabled CampaignStatus = "DISABLED"
	CampaignStatusUnknown  CampaignStatus = "UNKNOWN"
	// CampaignStatusNoData marca campanhas sem gasto, sem receita e sem status conhecido
	CampaignStatusNoData CampaignStatus = "no data"
)

// IsKnown indica se o status veio de fato da fonte de gasto
func (s CampaignStatus) IsKnown() bool {
	return s == CampaignStatusEnabled || s == CampaignStatusDisabled
}

// SpendRecord é uma linha de campanha da fonte de gasto para um período
type SpendRecord struct {
	CampaignID        string         `json:"campaign_id"`
	CampaignName      string         `json:"campaign_name"`
	Spend             float64        `json:"spend"`
	Impressions       int64          `json:"impressions"`
	Clicks            int64          `json:"clicks"`
	CTR               float64        `json:"ctr"`
	CPC               float64        `json:"cpc"`
	Status            CampaignStatus `json:"status"`
	DailyBudget       *float64       `json:"daily_budget"`
	AutoOptimized     bool           `json:"auto_optimized"`
	Conversions       int64          `json:"conversions"`
	CostPerConversion float64        `json:"cost_per_conversion"`
	ConversionRate    float64        `json:"conversion_rate"`
}

// RevenueRecord é uma linha de campanha da fonte de receita.
// CampaignName já chega sem o prefixo do key-value do ad server.
type RevenueRecord struct {
	CampaignName string    `json:"campaign_name"`
	Date         time.Time `json:"date"`
	Revenue      float64   `json:"revenue"`
	Impressions  int64     `json:"impressions"`
	Clicks       int64     `json:"clicks"`
	CTR          float64   `json:"ctr"`
	ECPM         float64   `json:"ecpm"`
}

// NetworkRevenue é o total da rede atribuível à origem de tráfego
type NetworkRevenue struct {
	Revenue     float64 `json:"revenue"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
}

// RevenueReport é o resultado compartilhado da fonte de receita para uma sincronização
type RevenueReport struct {
	Campaigns []RevenueRecord
	Network   NetworkRevenue
}

// ReconciledCampaign une os dois lados de uma campanha no período
type ReconciledCampaign struct {
	CampaignID         string         `json:"campaign_id"`
	CampaignName       string         `json:"campaign_name"`
	Spend              float64        `json:"spend"`
	SpendImpressions   int64          `json:"spend_impressions"`
	SpendClicks        int64          `json:"spend_clicks"`
	SpendCTR           float64        `json:"spend_ctr"`
	CPC                float64        `json:"cpc"`
	Status             CampaignStatus `json:"status"`
	DailyBudget        *float64       `json:"daily_budget"`
	AutoOptimized      bool           `json:"auto_optimized"`
	Conversions        int64          `json:"conversions"`
	CostPerConversion  float64        `json:"cost_per_conversion"`
	ConversionRate     float64        `json:"conversion_rate"`
	Revenue            float64        `json:"revenue"`
	RevenueImpressions int64          `json:"revenue_impressions"`
	RevenueClicks      int64          `json:"revenue_clicks"`
	RevenueCTR         float64        `json:"revenue_ctr"`
	ECPM               float64        `json:"ecpm"`
	Profit             float64        `json:"profit"`
	ROI                *float64       `json:"roi"`
	HasSpend           bool           `json:"has_spend"`
	HasRevenue         bool           `json:"has_revenue"`
}

// Matched indica se a campanha foi encontrada nas duas fontes
func (c *ReconciledCampaign) Matched() bool {
	return c.HasSpend && c.HasRevenue
}

type CampaignMutationResult struct {
	CampaignID string `json:"campaign_id"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

type UpdateCampaignStatusRequest struct {
	CampaignIDs []string       `json:"campaign_ids"`
	Status      CampaignStatus `json:"status"`
}

type BudgetUpdate struct {
	CampaignID  string  `json:"campaign_id"`
	DailyBudget float64 `json:"daily_budget"`
}

type UpdateCampaignBudgetRequest struct {
	Budgets []BudgetUpdate `json:"budgets"`
}
