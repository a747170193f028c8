package tiktokdomain

const (
	OperationStatusEnable  = "ENABLE"
	OperationStatusDisable = "DISABLE"

	BudgetModeDay = "BUDGET_MODE_DAY"
)

// Campaign é o cadastro da campanha retornado por campaign/get
type Campaign struct {
	CampaignID                 string  `json:"campaign_id"`
	CampaignName               string  `json:"campaign_name"`
	OperationStatus            string  `json:"operation_status"`
	SecondaryStatus            string  `json:"secondary_status"`
	Budget                     *Number `json:"budget"`
	BudgetMode                 string  `json:"budget_mode"`
	IsSmartPerformanceCampaign bool    `json:"is_smart_performance_campaign"`
}

type CampaignData struct {
	List     []Campaign `json:"list"`
	PageInfo PageInfo   `json:"page_info"`
}

type CampaignParams struct {
	AdvertiserID string
	CampaignIDs  []string
	Page         int
	PageSize     int
}

type StatusUpdateRequest struct {
	AdvertiserID    string   `json:"advertiser_id"`
	CampaignIDs     []string `json:"campaign_ids"`
	OperationStatus string   `json:"operation_status"`
}

type StatusUpdateData struct {
	CampaignIDs []string `json:"campaign_ids"`
}

type BudgetUpdateRequest struct {
	AdvertiserID string  `json:"advertiser_id"`
	CampaignID   string  `json:"campaign_id"`
	Budget       float64 `json:"budget"`
}
