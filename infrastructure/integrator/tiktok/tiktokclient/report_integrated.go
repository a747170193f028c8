package tiktokclient

import (
	"context"
	"net/url"
	"strconv"

	tiktokdomain "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok/domain"
)

const reportMetrics = `["campaign_name","spend","impressions","clicks","ctr","cpc","conversion","cost_per_conversion","conversion_rate"]`

// GetCampaignReport busca uma página do relatório BASIC por campanha
func (c *TikTokClient) GetCampaignReport(ctx context.Context, params tiktokdomain.ReportParams) (*tiktokdomain.ReportData, error) {
	query := url.Values{}
	query.Set("advertiser_id", params.AdvertiserID)
	query.Set("report_type", "BASIC")
	query.Set("data_level", "AUCTION_CAMPAIGN")
	query.Set("dimensions", `["campaign_id"]`)
	query.Set("metrics", reportMetrics)
	query.Set("start_date", params.StartDate)
	query.Set("end_date", params.EndDate)
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("page_size", strconv.Itoa(params.PageSize))

	var data tiktokdomain.ReportData
	if err := c.get(ctx, "report/integrated/get/", query, &data); err != nil {
		return nil, err
	}

	return &data, nil
}
