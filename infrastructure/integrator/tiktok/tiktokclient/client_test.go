package tiktokclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	tiktokdomain "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClientWithHTTP(config.TikTok{
		BaseURL:     server.URL + "/open_api/v1.3/",
		AccessToken: "token-123",
	}, server.Client())
}

func TestTikTokClient_GetCampaignReport(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/open_api/v1.3/report/integrated/get/", r.URL.Path)
		assert.Equal(t, "token-123", r.Header.Get("Access-Token"))

		query := r.URL.Query()
		assert.Equal(t, "adv-1", query.Get("advertiser_id"))
		assert.Equal(t, "AUCTION_CAMPAIGN", query.Get("data_level"))
		assert.Equal(t, "2024-03-01", query.Get("start_date"))
		assert.Equal(t, "2", query.Get("page"))

		_, _ = io.WriteString(w, `{
			"code": 0,
			"message": "OK",
			"request_id": "req-1",
			"data": {
				"list": [
					{"dimensions": {"campaign_id": "100"}, "metrics": {"campaign_name": "BR_Receitas", "spend": "12.50", "impressions": "1000", "clicks": 10, "ctr": "1.00%"}},
					{"dimensions": {"campaign_id": "200"}, "metrics": {"campaign_name": "MX", "stat_cost": 3.2, "show_cnt": "-", "click_cnt": null}}
				],
				"page_info": {"page": 2, "page_size": 2, "total_number": 4, "total_page": 2}
			}
		}`)
	})

	data, err := client.GetCampaignReport(context.Background(), tiktokdomain.ReportParams{
		AdvertiserID: "adv-1",
		StartDate:    "2024-03-01",
		EndDate:      "2024-03-01",
		Page:         2,
		PageSize:     2,
	})
	require.NoError(t, err)
	require.Len(t, data.List, 2)
	assert.Equal(t, 2, data.PageInfo.TotalPage)

	first := data.List[0].Metrics
	assert.Equal(t, 12.5, first.Spend.Float64())
	assert.Equal(t, 1000.0, first.Impressions.Float64())
	assert.Equal(t, 10.0, first.Clicks.Float64())
	assert.Equal(t, 1.0, first.CTR.Float64())

	second := data.List[1].Metrics
	assert.Nil(t, second.Spend)
	assert.Equal(t, 3.2, tiktokdomain.FirstOf(second.Spend, second.StatCost))
	assert.Equal(t, 0.0, second.ShowCnt.Float64())
}

func TestTikTokClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code": 40105, "message": "Access token is incorrect or has been revoked.", "request_id": "req-2", "data": {}}`)
	})

	_, err := client.GetCampaigns(context.Background(), tiktokdomain.CampaignParams{AdvertiserID: "adv-1", Page: 1, PageSize: 10})
	require.Error(t, err)

	var apiErr *tiktokdomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 40105, apiErr.Code)
	assert.Equal(t, "req-2", apiErr.RequestID)
	assert.True(t, apiErr.IsAuthError())
	assert.False(t, apiErr.IsRateLimited())
}

func TestTikTokClient_HTTPStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetCampaignReport(context.Background(), tiktokdomain.ReportParams{AdvertiserID: "adv-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestTikTokClient_GetCampaigns(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/open_api/v1.3/campaign/get/", r.URL.Path)
		assert.JSONEq(t, `{"campaign_ids":["1","2"]}`, r.URL.Query().Get("filtering"))

		_, _ = io.WriteString(w, `{"code": 0, "data": {"list": [
			{"campaign_id": "1", "campaign_name": "A", "operation_status": "ENABLE", "budget": 50, "budget_mode": "BUDGET_MODE_DAY"},
			{"campaign_id": "2", "campaign_name": "B", "operation_status": "DISABLE", "budget": "0", "budget_mode": "BUDGET_MODE_INFINITE", "is_smart_performance_campaign": true}
		], "page_info": {"page": 1, "total_page": 1}}}`)
	})

	data, err := client.GetCampaigns(context.Background(), tiktokdomain.CampaignParams{
		AdvertiserID: "adv-1",
		CampaignIDs:  []string{"1", "2"},
		Page:         1,
		PageSize:     100,
	})
	require.NoError(t, err)
	require.Len(t, data.List, 2)
	assert.Equal(t, 50.0, data.List[0].Budget.Float64())
	assert.True(t, data.List[1].IsSmartPerformanceCampaign)
}

func TestTikTokClient_UpdateCampaignStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/open_api/v1.3/campaign/status/update/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"advertiser_id":"adv-1","campaign_ids":["1"],"operation_status":"DISABLE"}`, string(body))

		_, _ = io.WriteString(w, `{"code": 0, "data": {"campaign_ids": ["1"]}}`)
	})

	data, err := client.UpdateCampaignStatus(context.Background(), tiktokdomain.StatusUpdateRequest{
		AdvertiserID:    "adv-1",
		CampaignIDs:     []string{"1"},
		OperationStatus: tiktokdomain.OperationStatusDisable,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, data.CampaignIDs)
}

func TestTikTokClient_UpdateCampaignBudget(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/open_api/v1.3/campaign/update/", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"advertiser_id":"adv-1","campaign_id":"1","budget":75.5}`, string(body))

		_, _ = io.WriteString(w, `{"code": 0, "data": {}}`)
	})

	err := client.UpdateCampaignBudget(context.Background(), tiktokdomain.BudgetUpdateRequest{
		AdvertiserID: "adv-1",
		CampaignID:   "1",
		Budget:       75.5,
	})
	assert.NoError(t, err)
}
