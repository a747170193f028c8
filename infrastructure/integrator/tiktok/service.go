package tiktok

import (
	"context"
	"errors"
	"fmt"
	"time"

	tiktokdomain "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	maxReportPages   = 100
	campaignIDsChunk = 100
)

var (
	ErrMissingAdvertiser = errors.New("conta sem advertiser_id e sem advertiser padrão configurado")
	ErrInvalidStatus     = errors.New("status de campanha inválido")
)

const (
	reasonAutoOptimized = "campanha com otimização automática não aceita alteração manual"
	reasonNotFound      = "campanha não encontrada no anunciante"
	reasonNotUpdated    = "campanha não foi atualizada"
	reasonInvalidBudget = "orçamento diário deve ser positivo"
)

type TikTokIntegrator interface {
	GetSpendRecords(ctx context.Context, account *domain.Account, startDate, endDate time.Time) ([]domain.SpendRecord, error)
	UpdateCampaignStatus(ctx context.Context, account *domain.Account, campaignIDs []string, status domain.CampaignStatus) ([]domain.CampaignMutationResult, error)
	UpdateCampaignBudget(ctx context.Context, account *domain.Account, budgets []domain.BudgetUpdate) ([]domain.CampaignMutationResult, error)
}

type TikTokService struct {
	cfg    config.TikTok
	Client tiktokclient.Client
}

func New(cfg config.TikTok, client tiktokclient.Client) TikTokIntegrator {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 1000
	}

	return &TikTokService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TikTokService) advertiserID(account *domain.Account) (string, error) {
	if id := account.AdvertiserIDOrEmpty(); id != "" {
		return id, nil
	}

	if s.cfg.DefaultAdvertiser != "" {
		return s.cfg.DefaultAdvertiser, nil
	}

	return "", ErrMissingAdvertiser
}

// GetSpendRecords busca o gasto por campanha do período para a conta
func (s *TikTokService) GetSpendRecords(ctx context.Context, account *domain.Account, startDate, endDate time.Time) ([]domain.SpendRecord, error) {
	advertiserID, err := s.advertiserID(account)
	if err != nil {
		return nil, err
	}

	rows := make([]tiktokdomain.ReportRow, 0)
	for page := 1; page <= maxReportPages; page++ {
		data, err := s.Client.GetCampaignReport(ctx, tiktokdomain.ReportParams{
			AdvertiserID: advertiserID,
			StartDate:    startDate.Format(time.DateOnly),
			EndDate:      endDate.Format(time.DateOnly),
			Page:         page,
			PageSize:     s.cfg.PageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar relatório de campanhas: %w", err)
		}

		rows = append(rows, data.List...)

		if len(data.List) == 0 || page >= data.PageInfo.TotalPage {
			break
		}
	}

	campaignIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Dimensions.CampaignID != "" {
			campaignIDs = append(campaignIDs, row.Dimensions.CampaignID)
		}
	}

	campaigns, err := s.getCampaigns(ctx, advertiserID, campaignIDs)
	if err != nil {
		// sem o cadastro o gasto continua válido; status fica UNKNOWN
		logrus.WithFields(logrus.Fields{
			"account_id":    account.ID,
			"advertiser_id": advertiserID,
			"error":         err.Error(),
		}).Warn("tiktok: falha ao buscar cadastro das campanhas")
		campaigns = map[string]tiktokdomain.Campaign{}
	}

	records := ToSpendRecords(rows, campaigns)

	logrus.WithFields(logrus.Fields{
		"account_id":    account.ID,
		"advertiser_id": advertiserID,
		"start_date":    startDate.Format(time.DateOnly),
		"end_date":      endDate.Format(time.DateOnly),
		"campaigns":     len(records),
	}).Debug("tiktok: gasto por campanha carregado")

	return records, nil
}

func (s *TikTokService) getCampaigns(ctx context.Context, advertiserID string, campaignIDs []string) (map[string]tiktokdomain.Campaign, error) {
	campaigns := make(map[string]tiktokdomain.Campaign, len(campaignIDs))

	for start := 0; start < len(campaignIDs); start += campaignIDsChunk {
		end := min(start+campaignIDsChunk, len(campaignIDs))

		data, err := s.Client.GetCampaigns(ctx, tiktokdomain.CampaignParams{
			AdvertiserID: advertiserID,
			CampaignIDs:  campaignIDs[start:end],
			Page:         1,
			PageSize:     campaignIDsChunk,
		})
		if err != nil {
			return nil, err
		}

		for _, campaign := range data.List {
			campaigns[campaign.CampaignID] = campaign
		}
	}

	return campaigns, nil
}

// UpdateCampaignStatus ativa ou pausa campanhas, com resultado por campanha
func (s *TikTokService) UpdateCampaignStatus(
	ctx context.Context,
	account *domain.Account,
	campaignIDs []string,
	status domain.CampaignStatus,
) ([]domain.CampaignMutationResult, error) {
	operationStatus, ok := toOperationStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	advertiserID, err := s.advertiserID(account)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.getCampaigns(ctx, advertiserID, campaignIDs)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanhas: %w", err)
	}

	results, eligible := screenMutations(campaignIDs, campaigns)
	if len(eligible) == 0 {
		return results, nil
	}

	data, err := s.Client.UpdateCampaignStatus(ctx, tiktokdomain.StatusUpdateRequest{
		AdvertiserID:    advertiserID,
		CampaignIDs:     eligible,
		OperationStatus: operationStatus,
	})

	updated := make(map[string]struct{})
	if err == nil {
		for _, id := range data.CampaignIDs {
			updated[id] = struct{}{}
		}
	}

	for i := range results {
		if results[i].Error != "" {
			continue
		}

		switch {
		case err != nil:
			results[i].Error = err.Error()
		case hasKey(updated, results[i].CampaignID):
			results[i].Success = true
		default:
			results[i].Error = reasonNotUpdated
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id":    account.ID,
		"advertiser_id": advertiserID,
		"status":        status,
		"campaigns":     len(campaignIDs),
	}).Info("tiktok: status de campanhas atualizado")

	return results, nil
}

// UpdateCampaignBudget altera o orçamento diário campanha a campanha
func (s *TikTokService) UpdateCampaignBudget(
	ctx context.Context,
	account *domain.Account,
	budgets []domain.BudgetUpdate,
) ([]domain.CampaignMutationResult, error) {
	advertiserID, err := s.advertiserID(account)
	if err != nil {
		return nil, err
	}

	campaignIDs := make([]string, 0, len(budgets))
	for _, budget := range budgets {
		campaignIDs = append(campaignIDs, budget.CampaignID)
	}

	campaigns, err := s.getCampaigns(ctx, advertiserID, campaignIDs)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanhas: %w", err)
	}

	results, _ := screenMutations(campaignIDs, campaigns)

	for i, budget := range budgets {
		if results[i].Error != "" {
			continue
		}

		if budget.DailyBudget <= 0 {
			results[i].Error = reasonInvalidBudget
			continue
		}

		err := s.Client.UpdateCampaignBudget(ctx, tiktokdomain.BudgetUpdateRequest{
			AdvertiserID: advertiserID,
			CampaignID:   budget.CampaignID,
			Budget:       budget.DailyBudget,
		})
		if err != nil {
			results[i].Error = err.Error()
			continue
		}

		results[i].Success = true
	}

	return results, nil
}

// screenMutations recusa campanhas inexistentes ou com otimização automática
// e retorna os IDs que podem ser enviados à API
func screenMutations(campaignIDs []string, campaigns map[string]tiktokdomain.Campaign) ([]domain.CampaignMutationResult, []string) {
	results := make([]domain.CampaignMutationResult, 0, len(campaignIDs))
	eligible := make([]string, 0, len(campaignIDs))

	for _, id := range campaignIDs {
		result := domain.CampaignMutationResult{CampaignID: id}

		campaign, found := campaigns[id]
		switch {
		case !found:
			result.Error = reasonNotFound
		case campaign.IsSmartPerformanceCampaign:
			result.Error = reasonAutoOptimized
		default:
			eligible = append(eligible, id)
		}

		results = append(results, result)
	}

	return results, eligible
}

func hasKey(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
