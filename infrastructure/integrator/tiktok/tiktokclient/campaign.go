package tiktokclient

import (
	"context"
	"net/url"
	"strconv"

	tiktokdomain "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok/domain"
)

func (c *TikTokClient) GetCampaigns(ctx context.Context, params tiktokdomain.CampaignParams) (*tiktokdomain.CampaignData, error) {
	query := url.Values{}
	query.Set("advertiser_id", params.AdvertiserID)
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("page_size", strconv.Itoa(params.PageSize))

	if len(params.CampaignIDs) > 0 {
		filtering, err := json.Marshal(map[string][]string{"campaign_ids": params.CampaignIDs})
		if err != nil {
			return nil, err
		}
		query.Set("filtering", string(filtering))
	}

	var data tiktokdomain.CampaignData
	if err := c.get(ctx, "campaign/get/", query, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

func (c *TikTokClient) UpdateCampaignStatus(ctx context.Context, request tiktokdomain.StatusUpdateRequest) (*tiktokdomain.StatusUpdateData, error) {
	var data tiktokdomain.StatusUpdateData
	if err := c.post(ctx, "campaign/status/update/", request, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

func (c *TikTokClient) UpdateCampaignBudget(ctx context.Context, request tiktokdomain.BudgetUpdateRequest) error {
	return c.post(ctx, "campaign/update/", request, nil)
}
