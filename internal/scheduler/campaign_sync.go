package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/admanager"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/repository"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/pkg/distlock"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/importing"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/telemetry"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

var (
	ErrSyncInProgress = errors.New("sincronização já em andamento para o usuário")
	ErrRevenueFetch   = errors.New("erro ao buscar receita do ad manager")
	ErrInvalidPeriod  = errors.New("data inicial depois da data final")
)

const lockKeyPrefix = "campaign-sync:"

// Locker cria o lock distribuído de uma chave
type Locker interface {
	NewLock(key string) distlock.DistLock
}

// CampaignSyncConfig representa a configuração do agendador de sincronização de campanhas
type CampaignSyncConfig struct {
	CronSchedule   string
	LookbackDays   int
	AccountTimeout time.Duration
	SyncEnabled    bool
}

// CampaignSyncService cruza gasto do TikTok com receita do Ad Manager para cada conta
type CampaignSyncService struct {
	scheduler        *gocron.Scheduler
	config           CampaignSyncConfig
	location         *time.Location
	accountRepo      repository.AccountRepository
	importService    importing.ImportService
	tiktokService    tiktok.TikTokIntegrator
	adManagerService admanager.AdManagerIntegrator
	locker           Locker
	metrics          *telemetry.Metrics
	now              func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSummary     *domain.SyncSummary
}

func NewCampaignSyncService(
	accountRepo repository.AccountRepository,
	importService importing.ImportService,
	tiktokService tiktok.TikTokIntegrator,
	adManagerService admanager.AdManagerIntegrator,
	locker Locker,
	metrics *telemetry.Metrics,
	appConfig *config.Config,
) *CampaignSyncService {
	syncConfig := CampaignSyncConfig{
		CronSchedule:   appConfig.CampaignSync.CronSchedule,
		LookbackDays:   appConfig.CampaignSync.LookbackDays,
		AccountTimeout: appConfig.CampaignSync.AccountTimeout,
		SyncEnabled:    appConfig.CampaignSync.Enabled,
	}

	location := appConfig.Location()

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"lookback_days":   syncConfig.LookbackDays,
		"account_timeout": syncConfig.AccountTimeout.String(),
		"sync_enabled":    syncConfig.SyncEnabled,
		"timezone":        location.String(),
	}).Info("Configuração do agendador de campanhas carregada")

	return &CampaignSyncService{
		scheduler:        gocron.NewScheduler(location),
		config:           syncConfig,
		location:         location,
		accountRepo:      accountRepo,
		importService:    importService,
		tiktokService:    tiktokService,
		adManagerService: adManagerService,
		locker:           locker,
		metrics:          metrics,
		now:              time.Now,
	}
}

// Start inicia o agendador
func (s *CampaignSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScheduledSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncAll busca a receita do período uma única vez e processa as contas em sequência.
// O único erro retornado é a falha da fonte de receita; falhas de uma conta viram
// o resultado daquela conta e nunca interrompem as demais.
func (s *CampaignSyncService) SyncAll(
	ctx context.Context,
	userID string,
	accounts []*domain.Account,
	startDate, endDate time.Time,
) ([]domain.SyncResult, error) {
	report, err := s.fetchRevenue(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return s.syncAccounts(ctx, userID, accounts, report, startDate, endDate), nil
}

// SyncUser sincroniza todas as contas do usuário segurando o lock campaign-sync:<usuário>
func (s *CampaignSyncService) SyncUser(ctx context.Context, userID string, startDate, endDate time.Time) (*domain.SyncResponse, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidPeriod
	}

	var results []domain.SyncResult

	err := s.withUserLock(ctx, userID, func() error {
		accounts, err := s.accountRepo.ListByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("erro ao listar contas do usuário: %w", err)
		}

		results, err = s.SyncAll(ctx, userID, accounts, startDate, endDate)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &domain.SyncResponse{
		StartDate: utils.FormatDate(startDate),
		EndDate:   utils.FormatDate(endDate),
		Summary:   domain.Summarize(results),
		Results:   results,
	}, nil
}

// DefaultPeriod é o período usado pelo cron: os últimos LookbackDays dias até ontem
func (s *CampaignSyncService) DefaultPeriod() (time.Time, time.Time) {
	return utils.LookbackPeriod(s.now(), s.location, s.config.LookbackDays)
}

func (s *CampaignSyncService) withUserLock(ctx context.Context, userID string, fn func() error) error {
	if s.locker == nil {
		return fn()
	}

	lock := s.locker.NewLock(lockKeyPrefix + userID)

	acquired, err := lock.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("erro ao obter lock de sincronização: %w", err)
	}
	if !acquired {
		return ErrSyncInProgress
	}

	defer func() {
		// o lock pode ter expirado pelo TTL; nesse caso só registramos
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Warn("Falha ao liberar lock de sincronização")
		}
	}()

	return fn()
}

func (s *CampaignSyncService) fetchRevenue(ctx context.Context, startDate, endDate time.Time) (*domain.RevenueReport, error) {
	report, err := s.adManagerService.GetRevenueReport(ctx, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"start_date": utils.FormatDate(startDate),
			"end_date":   utils.FormatDate(endDate),
			"error":      err.Error(),
		}).Error("Erro ao buscar receita do período")
		return nil, fmt.Errorf("%w: %s", ErrRevenueFetch, err.Error())
	}

	if report == nil {
		report = &domain.RevenueReport{}
	}

	return report, nil
}

func (s *CampaignSyncService) syncAccounts(
	ctx context.Context,
	userID string,
	accounts []*domain.Account,
	report *domain.RevenueReport,
	startDate, endDate time.Time,
) []domain.SyncResult {
	results := make([]domain.SyncResult, 0, len(accounts))

	for _, account := range accounts {
		if account == nil {
			continue
		}

		result := s.syncAccount(ctx, userID, account, report, startDate, endDate)
		s.metrics.ObserveAccountSync(result.Success)
		results = append(results, result)
	}

	return results
}

// syncAccount processa uma conta; erros e panics viram falha no resultado
func (s *CampaignSyncService) syncAccount(
	ctx context.Context,
	userID string,
	account *domain.Account,
	report *domain.RevenueReport,
	startDate, endDate time.Time,
) (result domain.SyncResult) {
	result = domain.SyncResult{
		AccountID:    account.ID,
		AccountName:  account.Name,
		AdvertiserID: account.AdvertiserID,
	}

	fields := logrus.Fields{
		"account_id":    account.ID,
		"user_id":       userID,
		"advertiser_id": account.AdvertiserIDOrEmpty(),
		"start_date":    utils.FormatDate(startDate),
		"end_date":      utils.FormatDate(endDate),
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(fields).WithField("panic", r).Error("Panic ao sincronizar conta")
			result.Success = false
			result.Error = fmt.Sprintf("erro inesperado: %v", r)
		}
	}()

	if s.config.AccountTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.AccountTimeout)
		defer cancel()
	}

	spend, err := s.tiktokService.GetSpendRecords(ctx, account, startDate, endDate)
	if err != nil {
		logrus.WithFields(fields).WithField("error", err.Error()).Error("Erro ao buscar gasto do TikTok")
		result.Error = err.Error()
		return result
	}

	totals, err := s.importService.UpsertPeriod(ctx, domain.PeriodImportInput{
		UserID:         userID,
		Account:        account,
		StartDate:      startDate,
		EndDate:        endDate,
		Spend:          spend,
		Revenue:        report.Campaigns,
		NetworkRevenue: report.Network,
	})
	if err != nil {
		logrus.WithFields(fields).WithField("error", err.Error()).Error("Erro ao gravar importação do período")
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.CampaignCount = totals.CampaignCount
	result.Totals = totals

	logrus.WithFields(fields).WithField("campaigns", totals.CampaignCount).Info("Conta sincronizada")

	return result
}

// runScheduledSync sincroniza todos os usuários com contas, reaproveitando a receita do período
func (s *CampaignSyncService) runScheduledSync(ctx context.Context) {
	startTime, ok := s.beginSync()
	if !ok {
		logrus.Info("Sincronização de campanhas já em andamento, ignorando")
		return
	}

	s.executeSync(ctx, startTime)
}

// beginSync marca a sincronização como em andamento; false se outra já a reservou
func (s *CampaignSyncService) beginSync() (time.Time, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return time.Time{}, false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()

	return s.lastSyncStartedAt, true
}

// executeSync roda uma sincronização já reservada por beginSync e a libera ao final
func (s *CampaignSyncService) executeSync(ctx context.Context, startTime time.Time) {
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startDate, endDate := s.DefaultPeriod()

	logrus.WithFields(logrus.Fields{
		"start_date": utils.FormatDate(startDate),
		"end_date":   utils.FormatDate(endDate),
	}).Info("Iniciando sincronização de campanhas de todos os usuários")

	userIDs, err := s.accountRepo.ListUserIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar usuários para sincronização de campanhas")
		return
	}

	if len(userIDs) == 0 {
		logrus.Info("Nenhum usuário com contas para sincronizar")
		return
	}

	report, err := s.fetchRevenue(ctx, startDate, endDate)
	if err != nil {
		return
	}

	results := make([]domain.SyncResult, 0)
	for _, userID := range userIDs {
		err := s.withUserLock(ctx, userID, func() error {
			accounts, err := s.accountRepo.ListByUser(ctx, userID)
			if err != nil {
				return err
			}

			results = append(results, s.syncAccounts(ctx, userID, accounts, report, startDate, endDate)...)
			return nil
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Warn("Usuário não sincronizado")
		}
	}

	summary := domain.Summarize(results)
	duration := s.now().Sub(startTime)
	s.metrics.ObserveSyncDuration(duration.Seconds())

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSyncSummary = &summary
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"users":     len(userIDs),
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("Sincronização de campanhas concluída")
}

// TriggerManualSync inicia manualmente a sincronização agendada; retorna false se já estiver rodando
func (s *CampaignSyncService) TriggerManualSync(ctx context.Context) bool {
	startTime, ok := s.beginSync()
	if !ok {
		logrus.Info("Sincronização de campanhas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de campanhas")
	go s.executeSync(context.WithoutCancel(ctx), startTime)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *CampaignSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"timezone":               s.location.String(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_summary":      s.lastSyncSummary,
	}
}
