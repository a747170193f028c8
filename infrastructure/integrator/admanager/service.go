package admanager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/admanager/admanagerclient"
	admanagerdomain "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/admanager/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/sirupsen/logrus"
)

const maxFetchPages = 100

var (
	ErrReportTimeout = errors.New("relatório do ad manager não ficou pronto a tempo")
	ErrReportFailed  = errors.New("relatório do ad manager falhou")
)

type AdManagerIntegrator interface {
	GetRevenueReport(ctx context.Context, startDate, endDate time.Time) (*domain.RevenueReport, error)
	GetCampaignRevenue(ctx context.Context, startDate, endDate time.Time) ([]domain.RevenueRecord, error)
	GetNetworkRevenue(ctx context.Context, startDate, endDate time.Time) (domain.NetworkRevenue, error)
}

type AdManagerService struct {
	cfg    config.AdManager
	Client admanagerclient.Client
}

func New(cfg config.AdManager, client admanagerclient.Client) AdManagerIntegrator {
	return &AdManagerService{
		cfg:    cfg,
		Client: client,
	}
}

// GetRevenueReport busca a receita por campanha e o total da rede do período
func (s *AdManagerService) GetRevenueReport(ctx context.Context, startDate, endDate time.Time) (*domain.RevenueReport, error) {
	campaigns, err := s.GetCampaignRevenue(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	network, err := s.GetNetworkRevenue(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"start_date":      startDate.Format(time.DateOnly),
		"end_date":        endDate.Format(time.DateOnly),
		"campaigns":       len(campaigns),
		"network_revenue": network.Revenue,
	}).Info("ad manager: receita do período carregada")

	return &domain.RevenueReport{
		Campaigns: campaigns,
		Network:   network,
	}, nil
}

func (s *AdManagerService) GetCampaignRevenue(ctx context.Context, startDate, endDate time.Time) ([]domain.RevenueRecord, error) {
	rows, err := s.runReport(ctx, "arbitrage-campaign-revenue", admanagerdomain.ReportDefinition{
		Dimensions: []string{admanagerdomain.DimensionKeyValuesName},
		Metrics:    revenueMetrics,
		DateRange:  fixedRange(startDate, endDate),
		ReportType: admanagerdomain.ReportTypeHistorical,
		Filters: []admanagerdomain.Filter{
			keyValueFilter(admanagerdomain.OperationContains, campaignKeyPrefix),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar receita por campanha: %w", err)
	}

	return ToRevenueRecords(rows, startDate), nil
}

func (s *AdManagerService) GetNetworkRevenue(ctx context.Context, startDate, endDate time.Time) (domain.NetworkRevenue, error) {
	rows, err := s.runReport(ctx, "arbitrage-network-revenue", admanagerdomain.ReportDefinition{
		Dimensions: []string{admanagerdomain.DimensionDate},
		Metrics:    revenueMetrics,
		DateRange:  fixedRange(startDate, endDate),
		ReportType: admanagerdomain.ReportTypeHistorical,
		Filters: []admanagerdomain.Filter{
			keyValueFilter(admanagerdomain.OperationIn, "utm_source="+s.cfg.TrafficSource),
		},
	})
	if err != nil {
		return domain.NetworkRevenue{}, fmt.Errorf("erro ao buscar receita da rede: %w", err)
	}

	return ToNetworkRevenue(rows), nil
}

// runReport cria o relatório, executa, espera a operação e lê todas as páginas
func (s *AdManagerService) runReport(ctx context.Context, displayName string, definition admanagerdomain.ReportDefinition) ([]admanagerdomain.Row, error) {
	report, err := s.Client.CreateReport(ctx, admanagerdomain.Report{
		DisplayName:      displayName,
		ReportDefinition: definition,
	})
	if err != nil {
		return nil, err
	}

	operation, err := s.Client.RunReport(ctx, report.Name)
	if err != nil {
		return nil, err
	}

	operation, err = s.waitOperation(ctx, operation)
	if err != nil {
		return nil, err
	}

	rows := make([]admanagerdomain.Row, 0)
	pageToken := ""
	for page := 0; page < maxFetchPages; page++ {
		resp, err := s.Client.FetchRows(ctx, operation.Response.ReportResult, s.cfg.FetchRowsPageSize, pageToken)
		if err != nil {
			return nil, err
		}

		rows = append(rows, resp.Rows...)

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return rows, nil
}

func (s *AdManagerService) waitOperation(ctx context.Context, operation *admanagerdomain.Operation) (*admanagerdomain.Operation, error) {
	for attempt := 0; ; attempt++ {
		if operation.Done {
			if operation.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrReportFailed, operation.Error.Message)
			}
			if operation.Response == nil || operation.Response.ReportResult == "" {
				return nil, fmt.Errorf("%w: operação sem resultado", ErrReportFailed)
			}
			return operation, nil
		}

		if attempt >= s.cfg.PollAttempts {
			logrus.WithFields(logrus.Fields{
				"operation": operation.Name,
				"attempts":  attempt,
			}).Warn("ad manager: tempo esgotado aguardando relatório")
			return nil, ErrReportTimeout
		}

		if err := sleep(ctx, s.cfg.PollDelay()); err != nil {
			return nil, err
		}

		next, err := s.Client.GetOperation(ctx, operation.Name)
		if err != nil {
			return nil, err
		}
		operation = next
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func fixedRange(startDate, endDate time.Time) admanagerdomain.DateRange {
	return admanagerdomain.DateRange{
		Fixed: &admanagerdomain.FixedDateRange{
			StartDate: admanagerdomain.NewDate(startDate),
			EndDate:   admanagerdomain.NewDate(endDate),
		},
	}
}

func keyValueFilter(operation, value string) admanagerdomain.Filter {
	return admanagerdomain.Filter{
		FieldFilter: &admanagerdomain.FieldFilter{
			Field:     admanagerdomain.Field{Dimension: admanagerdomain.DimensionKeyValuesName},
			Operation: operation,
			Values:    []admanagerdomain.Value{admanagerdomain.StringValue(value)},
		},
	}
}
