package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	admanagermocks "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/admanager/mocks"
	tiktokmocks "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok/mocks"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/repository/mocks"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/pkg/distlock"
	importmocks "github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/importing/mocks"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type syncMocks struct {
	accountRepo *mocks.MockAccountRepository
	imports     *importmocks.MockImportService
	tiktok      *tiktokmocks.MockTikTokIntegrator
	admanager   *admanagermocks.MockAdManagerIntegrator
}

func newTestSyncService(t *testing.T, locker Locker, metrics *telemetry.Metrics) (*CampaignSyncService, syncMocks) {
	ctrl := gomock.NewController(t)

	m := syncMocks{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		imports:     importmocks.NewMockImportService(ctrl),
		tiktok:      tiktokmocks.NewMockTikTokIntegrator(ctrl),
		admanager:   admanagermocks.NewMockAdManagerIntegrator(ctrl),
	}

	service := &CampaignSyncService{
		config: CampaignSyncConfig{
			CronSchedule:   "0 6 * * *",
			LookbackDays:   1,
			AccountTimeout: time.Minute,
		},
		location:         time.UTC,
		accountRepo:      m.accountRepo,
		importService:    m.imports,
		tiktokService:    m.tiktok,
		adManagerService: m.admanager,
		locker:           locker,
		metrics:          metrics,
		now: func() time.Time {
			return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
		},
	}

	return service, m
}

func testAccounts() []*domain.Account {
	advertiser := "7000000000001"
	return []*domain.Account{
		{ID: "acc-1", UserID: "user-1", Name: "Conta padrão"},
		{ID: "acc-2", UserID: "user-1", AdvertiserID: &advertiser, Name: "Conta 2"},
	}
}

func testRevenueReport() *domain.RevenueReport {
	return &domain.RevenueReport{
		Campaigns: []domain.RevenueRecord{
			{CampaignName: "camp_a", Revenue: 150},
		},
		Network: domain.NetworkRevenue{Revenue: 200},
	}
}

func TestCampaignSyncService_SyncAll(t *testing.T) {
	start := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	end := start

	tests := []struct {
		name            string
		setupMocks      func(m syncMocks)
		expectError     bool
		expectSucceeded int
		expectFailed    int
		expectErrors    map[string]string
	}{
		{
			name: "todas as contas sincronizadas",
			setupMocks: func(m syncMocks) {
				m.admanager.EXPECT().GetRevenueReport(gomock.Any(), start, end).Return(testRevenueReport(), nil).Times(1)
				m.tiktok.EXPECT().GetSpendRecords(gomock.Any(), gomock.Any(), start, end).
					Return([]domain.SpendRecord{{CampaignName: "CAMP_A", Spend: 100}}, nil).Times(2)
				m.imports.EXPECT().UpsertPeriod(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, input domain.PeriodImportInput) (*domain.PeriodTotals, error) {
						assert.Equal(t, 200.0, input.NetworkRevenue.Revenue)
						assert.Len(t, input.Revenue, 1)
						assert.Equal(t, "user-1", input.UserID)
						return &domain.PeriodTotals{CampaignCount: 1}, nil
					}).Times(2)
			},
			expectSucceeded: 2,
		},
		{
			name: "erro na fonte de gasto de uma conta não interrompe o lote",
			setupMocks: func(m syncMocks) {
				m.admanager.EXPECT().GetRevenueReport(gomock.Any(), start, end).Return(testRevenueReport(), nil)
				m.tiktok.EXPECT().GetSpendRecords(gomock.Any(), gomock.Any(), start, end).
					DoAndReturn(func(_ context.Context, account *domain.Account, _, _ time.Time) ([]domain.SpendRecord, error) {
						if account.ID == "acc-1" {
							return nil, errors.New("token inválido")
						}
						return []domain.SpendRecord{{CampaignName: "camp_a", Spend: 10}}, nil
					}).Times(2)
				m.imports.EXPECT().UpsertPeriod(gomock.Any(), gomock.Any()).
					Return(&domain.PeriodTotals{CampaignCount: 1}, nil).Times(1)
			},
			expectSucceeded: 1,
			expectFailed:    1,
			expectErrors:    map[string]string{"acc-1": "token inválido"},
		},
		{
			name: "panic em uma conta vira falha da conta",
			setupMocks: func(m syncMocks) {
				m.admanager.EXPECT().GetRevenueReport(gomock.Any(), start, end).Return(testRevenueReport(), nil)
				m.tiktok.EXPECT().GetSpendRecords(gomock.Any(), gomock.Any(), start, end).
					DoAndReturn(func(_ context.Context, account *domain.Account, _, _ time.Time) ([]domain.SpendRecord, error) {
						if account.ID == "acc-2" {
							panic("resposta inesperada")
						}
						return nil, nil
					}).Times(2)
				m.imports.EXPECT().UpsertPeriod(gomock.Any(), gomock.Any()).
					Return(&domain.PeriodTotals{}, nil).Times(1)
			},
			expectSucceeded: 1,
			expectFailed:    1,
			expectErrors:    map[string]string{"acc-2": "erro inesperado: resposta inesperada"},
		},
		{
			name: "erro ao gravar importação marca a conta com falha",
			setupMocks: func(m syncMocks) {
				m.admanager.EXPECT().GetRevenueReport(gomock.Any(), start, end).Return(testRevenueReport(), nil)
				m.tiktok.EXPECT().GetSpendRecords(gomock.Any(), gomock.Any(), start, end).Return(nil, nil).Times(2)
				m.imports.EXPECT().UpsertPeriod(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("conflito")).Times(2)
			},
			expectFailed: 2,
			expectErrors: map[string]string{"acc-1": "conflito", "acc-2": "conflito"},
		},
		{
			name: "falha na fonte de receita aborta o lote",
			setupMocks: func(m syncMocks) {
				m.admanager.EXPECT().GetRevenueReport(gomock.Any(), start, end).Return(nil, errors.New("timeout"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestSyncService(t, nil, nil)
			tt.setupMocks(m)

			results, err := service.SyncAll(context.Background(), "user-1", testAccounts(), start, end)

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrRevenueFetch)
				assert.Nil(t, results)
				return
			}

			require.NoError(t, err)
			require.Len(t, results, 2)

			summary := domain.Summarize(results)
			assert.Equal(t, tt.expectSucceeded, summary.Succeeded)
			assert.Equal(t, tt.expectFailed, summary.Failed)

			for _, result := range results {
				if msg, ok := tt.expectErrors[result.AccountID]; ok {
					assert.False(t, result.Success)
					assert.Equal(t, msg, result.Error)
				} else {
					assert.True(t, result.Success)
					assert.Empty(t, result.Error)
				}
			}
		})
	}
}

func TestCampaignSyncService_SyncAll_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)

	service, m := newTestSyncService(t, nil, metrics)
	start := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	m.admanager.EXPECT().GetRevenueReport(gomock.Any(), start, start).Return(&domain.RevenueReport{}, nil)
	m.tiktok.EXPECT().GetSpendRecords(gomock.Any(), gomock.Any(), start, start).
		DoAndReturn(func(_ context.Context, account *domain.Account, _, _ time.Time) ([]domain.SpendRecord, error) {
			if account.ID == "acc-1" {
				return nil, errors.New("falha")
			}
			return nil, nil
		}).Times(2)
	m.imports.EXPECT().UpsertPeriod(gomock.Any(), gomock.Any()).Return(&domain.PeriodTotals{}, nil)

	_, err := service.SyncAll(context.Background(), "user-1", testAccounts(), start, start)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AccountSyncs.WithLabelValues(telemetry.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AccountSyncs.WithLabelValues(telemetry.OutcomeFailure)))
}

func TestCampaignSyncService_SyncUser(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("sincroniza as contas do usuário e resume o resultado", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		service, m := newTestSyncService(t, distlock.NewFactory(client, nil, time.Minute), nil)

		m.accountRepo.EXPECT().ListByUser(gomock.Any(), "user-1").Return(testAccounts(), nil)
		m.admanager.EXPECT().GetRevenueReport(gomock.Any(), start, end).Return(testRevenueReport(), nil)
		m.tiktok.EXPECT().GetSpendRecords(gomock.Any(), gomock.Any(), start, end).Return(nil, nil).Times(2)
		m.imports.EXPECT().UpsertPeriod(gomock.Any(), gomock.Any()).Return(&domain.PeriodTotals{}, nil).Times(2)

		response, err := service.SyncUser(context.Background(), "user-1", start, end)

		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", response.StartDate)
		assert.Equal(t, "2024-03-09", response.EndDate)
		assert.Equal(t, 2, response.Summary.Succeeded)
		assert.Equal(t, "2 sincronizadas", response.Summary.Message)
		assert.False(t, mr.Exists("lock:campaign-sync:user-1"))
	})

	t.Run("lock ocupado retorna sincronização em andamento", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		factory := distlock.NewFactory(client, nil, time.Minute)
		service, _ := newTestSyncService(t, factory, nil)

		held := factory.NewLock("campaign-sync:user-1")
		acquired, err := held.Acquire(context.Background())
		require.NoError(t, err)
		require.True(t, acquired)

		response, err := service.SyncUser(context.Background(), "user-1", start, end)

		assert.ErrorIs(t, err, ErrSyncInProgress)
		assert.Nil(t, response)
		assert.True(t, mr.Exists("lock:campaign-sync:user-1"))
	})

	t.Run("período invertido é rejeitado", func(t *testing.T) {
		service, _ := newTestSyncService(t, nil, nil)

		response, err := service.SyncUser(context.Background(), "user-1", end, start)

		assert.ErrorIs(t, err, ErrInvalidPeriod)
		assert.Nil(t, response)
	})

	t.Run("falha na receita libera o lock", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		service, m := newTestSyncService(t, distlock.NewFactory(client, nil, time.Minute), nil)

		m.accountRepo.EXPECT().ListByUser(gomock.Any(), "user-1").Return(testAccounts(), nil)
		m.admanager.EXPECT().GetRevenueReport(gomock.Any(), start, end).Return(nil, errors.New("indisponível"))

		response, err := service.SyncUser(context.Background(), "user-1", start, end)

		assert.ErrorIs(t, err, ErrRevenueFetch)
		assert.Nil(t, response)
		assert.False(t, mr.Exists("lock:campaign-sync:user-1"))
	})
}

func TestCampaignSyncService_runScheduledSync(t *testing.T) {
	reg := prometheus.NewRegistry()
	service, m := newTestSyncService(t, nil, telemetry.NewMetrics(reg))

	// período padrão: ontem em relação ao relógio fixo
	yesterday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	otherUser := []*domain.Account{{ID: "acc-9", UserID: "user-2", Name: "Outra"}}

	m.accountRepo.EXPECT().ListUserIDs(gomock.Any()).Return([]string{"user-1", "user-2"}, nil)
	m.admanager.EXPECT().GetRevenueReport(gomock.Any(), yesterday, yesterday).Return(testRevenueReport(), nil).Times(1)
	m.accountRepo.EXPECT().ListByUser(gomock.Any(), "user-1").Return(testAccounts(), nil)
	m.accountRepo.EXPECT().ListByUser(gomock.Any(), "user-2").Return(otherUser, nil)
	m.tiktok.EXPECT().GetSpendRecords(gomock.Any(), gomock.Any(), yesterday, yesterday).Return(nil, nil).Times(3)
	m.imports.EXPECT().UpsertPeriod(gomock.Any(), gomock.Any()).Return(&domain.PeriodTotals{}, nil).Times(3)

	service.runScheduledSync(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	summary, ok := status["last_sync_summary"].(*domain.SyncSummary)
	require.True(t, ok)
	assert.Equal(t, 3, summary.Succeeded)
	assert.Equal(t, 1, testutil.CollectAndCount(service.metrics.SyncDuration))
}

func TestCampaignSyncService_TriggerManualSync(t *testing.T) {
	t.Run("Sincronização em andamento recusa o disparo", func(t *testing.T) {
		service, _ := newTestSyncService(t, nil, nil)
		service.syncRunning = true

		assert.False(t, service.TriggerManualSync(context.Background()))
	})

	t.Run("Disparo aceito reserva a execução antes do cron", func(t *testing.T) {
		service, m := newTestSyncService(t, nil, nil)

		release := make(chan struct{})
		m.accountRepo.EXPECT().ListUserIDs(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
			<-release
			return nil, nil
		}).Times(1)

		require.True(t, service.TriggerManualSync(context.Background()))
		assert.Equal(t, true, service.GetStatus()["sync_running"])

		// execução do cron no mesmo instante é ignorada
		service.runScheduledSync(context.Background())
		assert.False(t, service.TriggerManualSync(context.Background()))

		close(release)
		assert.Eventually(t, func() bool {
			return service.GetStatus()["sync_running"] == false
		}, time.Second, 10*time.Millisecond)
	})
}
