package handler

import (
	"net/http"
	"time"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/api/handler/router"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/account"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/importing"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

func Healthcheck(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(gatherer),
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AccountList(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAccount(service),
		},
		{
			Path:    "/v1/accounts/:id/campaigns/status",
			Method:  http.MethodPost,
			Handler: UpdateCampaignStatus(service),
		},
		{
			Path:    "/v1/accounts/:id/campaigns/budget",
			Method:  http.MethodPost,
			Handler: UpdateCampaignBudget(service),
		},
	}
}

func Reports(service importing.ImportService, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/report",
			Method:  http.MethodGet,
			Handler: GetPeriodReport(service, loc),
		},
		{
			Path:    "/v1/reports/totals",
			Method:  http.MethodPost,
			Handler: ComputeDisplayTotals(),
		},
	}
}

func Sync(syncer CampaignSyncer, service importing.ImportService, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync",
			Method:  http.MethodPost,
			Handler: SyncCampaigns(syncer, loc),
		},
		{
			Path:    "/v1/sync/last",
			Method:  http.MethodGet,
			Handler: GetLastSync(service),
		},
	}
}

func CronJobs(syncer CampaignSyncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/" + CronJobTypeCampaignSync + "/run",
			Method:      http.MethodPost,
			Handler:     RunCampaignSyncJob(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
