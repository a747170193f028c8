package account

import (
	"context"
	"errors"
	"strings"

	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/repository"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type AccountService interface {
	ListAccounts(ctx context.Context, userID string) ([]*domain.AccountResponse, error)
	GetAccount(ctx context.Context, userID, accountID string) (*domain.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error
	UpdateCampaignStatus(ctx context.Context, userID, accountID string, request domain.UpdateCampaignStatusRequest) ([]domain.CampaignMutationResult, error)
	UpdateCampaignBudget(ctx context.Context, userID, accountID string, request domain.UpdateCampaignBudgetRequest) ([]domain.CampaignMutationResult, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	tiktokService     tiktok.TikTokIntegrator
}

func NewService(
	accountRepository repository.AccountRepository,
	tiktokService tiktok.TikTokIntegrator,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		tiktokService:     tiktokService,
	}
}

func (s *Service) ListAccounts(ctx context.Context, userID string) ([]*domain.AccountResponse, error) {
	accounts, err := s.accountRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	response := make([]*domain.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, &domain.AccountResponse{
			ID:           account.ID,
			AdvertiserID: account.AdvertiserID,
			Name:         account.Name,
			IsDefault:    account.AdvertiserID == nil,
		})
	}

	return response, nil
}

// GetAccount retorna a conta se ela pertencer ao usuário
func (s *Service) GetAccount(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	account, err := s.accountRepository.GetByID(ctx, accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "")
	}

	if account.UserID != userID {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"user_id":    userID,
		}).Warn("Tentativa de acesso a conta de outro usuário")
		return nil, NewAccountErrorWithID(ErrAccountNotOwned, apiErrors.ErrAccountNotOwned, accountID, "")
	}

	return account, nil
}

// DeleteAccount remove a conta e, em cascata, suas importações e campanhas
func (s *Service) DeleteAccount(ctx context.Context, userID, accountID string) error {
	if _, err := s.GetAccount(ctx, userID, accountID); err != nil {
		return err
	}

	if err := s.accountRepository.Delete(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "")
		}
		return NewAccountErrorWithID(ErrDeleteAccount, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	return nil
}

func (s *Service) UpdateCampaignStatus(
	ctx context.Context,
	userID, accountID string,
	request domain.UpdateCampaignStatusRequest,
) ([]domain.CampaignMutationResult, error) {
	if len(request.CampaignIDs) == 0 {
		return nil, NewAccountErrorWithID(ErrCampaignsRequired, apiErrors.ErrMissingRequiredData, accountID, "")
	}

	if !request.Status.IsKnown() {
		return nil, NewAccountErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, accountID, string(request.Status))
	}

	account, err := s.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	results, err := s.tiktokService.UpdateCampaignStatus(ctx, account, request.CampaignIDs, request.Status)
	if err != nil {
		return nil, wrapTikTokError(accountID, err)
	}

	return results, nil
}

func (s *Service) UpdateCampaignBudget(
	ctx context.Context,
	userID, accountID string,
	request domain.UpdateCampaignBudgetRequest,
) ([]domain.CampaignMutationResult, error) {
	if len(request.Budgets) == 0 {
		return nil, NewAccountErrorWithID(ErrCampaignsRequired, apiErrors.ErrMissingRequiredData, accountID, "")
	}

	account, err := s.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	results, err := s.tiktokService.UpdateCampaignBudget(ctx, account, request.Budgets)
	if err != nil {
		return nil, wrapTikTokError(accountID, err)
	}

	return results, nil
}

func wrapTikTokError(accountID string, err error) error {
	if errors.Is(err, tiktok.ErrMissingAdvertiser) {
		return NewAccountErrorWithID(ErrMissingAdvertiser, apiErrors.ErrInvalidRequest, accountID, "")
	}
	return NewAccountErrorWithID(ErrTikTokIntegration, apiErrors.ErrSpendSource, accountID, err.Error())
}
