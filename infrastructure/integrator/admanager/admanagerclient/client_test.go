package admanagerclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	admanagerdomain "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/admanager/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdManagerClient_RefreshTokenFlow(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "refresh-123", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token": "access-abc", "token_type": "Bearer", "expires_in": 3600}`)
	})

	mux.HandleFunc("/v1/networks/123/reports", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer access-abc", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"dimensions":["KEY_VALUES_NAME"]`)

		_, _ = io.WriteString(w, `{"name": "networks/123/reports/9", "reportId": "9"}`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(context.Background(), config.AdManager{
		BaseURL:      server.URL + "/v1",
		NetworkCode:  "123",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RefreshToken: "refresh-123",
		TokenURL:     server.URL + "/token",
	})

	report, err := client.CreateReport(context.Background(), admanagerdomain.Report{
		ReportDefinition: admanagerdomain.ReportDefinition{
			Dimensions: []string{admanagerdomain.DimensionKeyValuesName},
			Metrics:    []string{admanagerdomain.MetricRevenue},
			ReportType: admanagerdomain.ReportTypeHistorical,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "networks/123/reports/9", report.Name)
}

func TestAdManagerClient_RunAndFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/networks/123/reports/9:run":
			_, _ = io.WriteString(w, `{"name": "networks/123/operations/reports/runs/1", "done": false}`)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/networks/123/operations/reports/runs/1":
			_, _ = io.WriteString(w, `{"name": "networks/123/operations/reports/runs/1", "done": true,
				"response": {"@type": "type.googleapis.com/google.ads.admanager.v1.RunReportResponse", "reportResult": "networks/123/reports/9/results/4"}}`)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/networks/123/reports/9/results/4:fetchRows":
			assert.Equal(t, "500", r.URL.Query().Get("pageSize"))
			assert.Equal(t, "tok", r.URL.Query().Get("pageToken"))
			_, _ = io.WriteString(w, `{"rows": [{"dimensionValues": [{"stringValue": "utm_campaign=A"}],
				"metricValueGroups": [{"primaryValues": [{"intValue": "1500000"}, {"intValue": "10"}, {"doubleValue": 2}]}]}],
				"totalRowCount": 1}`)
		default:
			t.Errorf("requisição inesperada %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClientWithHTTP(config.AdManager{BaseURL: server.URL + "/v1/", NetworkCode: "123"}, server.Client())
	ctx := context.Background()

	operation, err := client.RunReport(ctx, "networks/123/reports/9")
	require.NoError(t, err)
	assert.False(t, operation.Done)

	operation, err = client.GetOperation(ctx, operation.Name)
	require.NoError(t, err)
	require.True(t, operation.Done)
	assert.Equal(t, "networks/123/reports/9/results/4", operation.Response.ReportResult)

	rows, err := client.FetchRows(ctx, operation.Response.ReportResult, 500, "tok")
	require.NoError(t, err)
	require.Len(t, rows.Rows, 1)

	values := rows.Rows[0].MetricValueGroups[0].PrimaryValues
	assert.Equal(t, 1.5, values[0].Money())
	assert.Equal(t, int64(10), values[1].Int64())
	assert.Equal(t, 2.0, values[2].Money())
}

func TestAdManagerClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error": {"code": 403, "message": "The caller does not have permission", "status": "PERMISSION_DENIED"}}`)
	}))
	defer server.Close()

	client := NewClientWithHTTP(config.AdManager{BaseURL: server.URL, NetworkCode: "123"}, server.Client())

	_, err := client.GetOperation(context.Background(), "networks/123/operations/reports/runs/1")
	require.Error(t, err)

	apiErr, ok := err.(*admanagerdomain.APIError)
	require.True(t, ok)
	assert.Equal(t, "PERMISSION_DENIED", apiErr.Status)
	assert.True(t, apiErr.IsAuthError())
}
