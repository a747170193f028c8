package tiktokdomain

// ReportRow é uma linha do relatório integrado por campanha
type ReportRow struct {
	Dimensions ReportDimensions `json:"dimensions"`
	Metrics    ReportMetrics    `json:"metrics"`
}

type ReportDimensions struct {
	CampaignID string `json:"campaign_id"`
}

// ReportMetrics aceita os nomes da v1.3 e os nomes legados da v1.2
type ReportMetrics struct {
	CampaignName      string  `json:"campaign_name"`
	Spend             *Number `json:"spend"`
	StatCost          *Number `json:"stat_cost"`
	Impressions       *Number `json:"impressions"`
	ShowCnt           *Number `json:"show_cnt"`
	Clicks            *Number `json:"clicks"`
	ClickCnt          *Number `json:"click_cnt"`
	CTR               *Number `json:"ctr"`
	CPC               *Number `json:"cpc"`
	Conversion        *Number `json:"conversion"`
	ConvertCnt        *Number `json:"convert_cnt"`
	CostPerConversion *Number `json:"cost_per_conversion"`
	ConversionRate    *Number `json:"conversion_rate"`
}

type PageInfo struct {
	Page        int `json:"page"`
	PageSize    int `json:"page_size"`
	TotalNumber int `json:"total_number"`
	TotalPage   int `json:"total_page"`
}

type ReportData struct {
	List     []ReportRow `json:"list"`
	PageInfo PageInfo    `json:"page_info"`
}

type ReportParams struct {
	AdvertiserID string
	StartDate    string
	EndDate      string
	Page         int
	PageSize     int
}
