package importing

import (
	"context"
	"errors"
	"time"

	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/repository"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/reconciling"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/apiErrors"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/telemetry"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type ImportService interface {
	UpsertPeriod(ctx context.Context, input domain.PeriodImportInput) (*domain.PeriodTotals, error)
	GetPeriodReport(ctx context.Context, userID, accountID string, startDate, endDate time.Time) (*domain.PeriodReport, error)
	GetLastSync(ctx context.Context, userID string) (*domain.LastSync, error)
}

type Service struct {
	accountRepository      repository.AccountRepository
	periodImportRepository repository.PeriodImportRepository
	syncStatusRepository   repository.SyncStatusRepository
	metrics                *telemetry.Metrics
	now                    func() time.Time
}

func NewService(
	accountRepository repository.AccountRepository,
	periodImportRepository repository.PeriodImportRepository,
	syncStatusRepository repository.SyncStatusRepository,
	metrics *telemetry.Metrics,
) ImportService {
	return &Service{
		accountRepository:      accountRepository,
		periodImportRepository: periodImportRepository,
		syncStatusRepository:   syncStatusRepository,
		metrics:                metrics,
		now:                    time.Now,
	}
}

// UpsertPeriod reconcilia o período e grava os totais e as campanhas.
// Se já existe importação para (usuário, conta, início, fim) ela é substituída
// por inteiro; senão é criada. Totais e campanhas sempre vão na mesma transação.
func (s *Service) UpsertPeriod(ctx context.Context, input domain.PeriodImportInput) (*domain.PeriodTotals, error) {
	if input.Account == nil {
		return nil, NewImportError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	accountID := input.Account.ID

	if input.StartDate.After(input.EndDate) {
		return nil, NewImportError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, accountID,
			utils.FormatDate(input.StartDate)+" > "+utils.FormatDate(input.EndDate))
	}

	reconciliation := reconciling.Reconcile(input.Spend, input.Revenue)
	if len(reconciliation.Collisions) > 0 {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"user_id":    input.UserID,
			"collisions": len(reconciliation.Collisions),
			"keys":       reconciliation.Collisions,
		}).Warn("Chaves de receita repetidas; usando a última linha de cada chave")
		s.metrics.ObserveCollisions(len(reconciliation.Collisions))
	}

	totals := reconciling.ComputePeriodTotals(reconciliation.Campaigns, input.NetworkRevenue)
	totals.UserID = input.UserID
	totals.AccountID = accountID
	totals.AdvertiserID = input.Account.AdvertiserID
	totals.StartDate = input.StartDate
	totals.EndDate = input.EndDate

	now := s.now()
	totals.UpdatedAt = now

	existing, err := s.periodImportRepository.GetByPeriod(ctx, input.UserID, accountID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, NewImportError(ErrPersistImport, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	if existing != nil {
		totals.ID = existing.ID
		totals.CreatedAt = existing.CreatedAt

		if err := s.periodImportRepository.Replace(ctx, &totals, reconciliation.Campaigns); err != nil {
			return nil, NewImportError(ErrPersistImport, apiErrors.ErrDatabaseOperation, accountID, err.Error())
		}
	} else {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewImportError(ErrGenerateID, apiErrors.ErrInternalServer, accountID, err.Error())
		}

		totals.ID = id
		totals.CreatedAt = now

		if err := s.periodImportRepository.Create(ctx, &totals, reconciliation.Campaigns); err != nil {
			code := apiErrors.ErrDatabaseOperation
			if errors.Is(err, repository.ErrPeriodImportConflict) {
				code = apiErrors.ErrImportConflict
			}
			return nil, NewImportError(ErrPersistImport, code, accountID, err.Error())
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id":      accountID,
		"user_id":         input.UserID,
		"import_id":       totals.ID,
		"start_date":      utils.FormatDate(input.StartDate),
		"end_date":        utils.FormatDate(input.EndDate),
		"campaigns":       totals.CampaignCount,
		"replaced":        existing != nil,
		"tracked_revenue": totals.TrackedRevenue,
		"real_revenue":    totals.RealRevenue,
	}).Info("Importação do período gravada")

	s.touchLastSync(ctx, input.UserID, now)

	return &totals, nil
}

// touchLastSync grava o horário da última sincronização sem afetar o resultado
func (s *Service) touchLastSync(ctx context.Context, userID string, at time.Time) {
	if err := s.syncStatusRepository.Touch(ctx, userID, at); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Falha ao registrar a última sincronização")
	}
}

// GetPeriodReport lê as importações contidas no intervalo e devolve as campanhas
// agregadas por nome, sem as linhas "no data", com os totais combinados.
// Importações com dias sobrepostos entram uma única vez (ver reconciling.SelectCoverage).
func (s *Service) GetPeriodReport(ctx context.Context, userID, accountID string, startDate, endDate time.Time) (*domain.PeriodReport, error) {
	if startDate.After(endDate) {
		return nil, NewImportError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, accountID,
			utils.FormatDate(startDate)+" > "+utils.FormatDate(endDate))
	}

	if err := s.checkOwnership(ctx, userID, accountID); err != nil {
		return nil, err
	}

	imports, err := s.periodImportRepository.ListByRange(ctx, domain.PeriodImportFilters{
		UserID:    userID,
		AccountID: accountID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, NewImportError(ErrFetchImports, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	stored := len(imports)
	imports = reconciling.SelectCoverage(imports)
	if skipped := stored - len(imports); skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"user_id":    userID,
			"account_id": accountID,
			"stored":     stored,
			"skipped":    skipped,
		}).Debug("Importações sobrepostas ignoradas no relatório")
	}

	importIDs := make([]string, 0, len(imports))
	for _, item := range imports {
		importIDs = append(importIDs, item.ID)
	}

	campaigns, err := s.periodImportRepository.ListCampaigns(ctx, importIDs)
	if err != nil {
		return nil, NewImportError(ErrFetchImports, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	totals := reconciling.CombineTotals(imports)
	totals.UserID = userID
	totals.AccountID = accountID
	totals.StartDate = startDate
	totals.EndDate = endDate

	report := &domain.PeriodReport{
		AccountID:   accountID,
		StartDate:   utils.FormatDate(startDate),
		EndDate:     utils.FormatDate(endDate),
		ImportCount: len(imports),
		Totals:      totals,
		Campaigns:   reconciling.Displayable(reconciling.Aggregate(campaigns)),
	}

	lastSync, err := s.syncStatusRepository.GetLastSyncedAt(ctx, userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Falha ao ler a última sincronização")
	}
	report.LastSyncedAt = lastSync

	return report, nil
}

func (s *Service) GetLastSync(ctx context.Context, userID string) (*domain.LastSync, error) {
	lastSync, err := s.syncStatusRepository.GetLastSyncedAt(ctx, userID)
	if err != nil {
		return nil, NewImportError(ErrFetchImports, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return &domain.LastSync{
		UserID:       userID,
		LastSyncedAt: lastSync,
	}, nil
}

func (s *Service) checkOwnership(ctx context.Context, userID, accountID string) error {
	account, err := s.accountRepository.GetByID(ctx, accountID)
	if err != nil {
		return NewImportError(ErrFetchImports, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	if account == nil {
		return NewImportError(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "")
	}

	if account.UserID != userID {
		return NewImportError(ErrAccountNotOwned, apiErrors.ErrAccountNotOwned, accountID, "")
	}

	return nil
}
