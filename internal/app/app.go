package app

import (
	"context"
	"fmt"

	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/database/postgres"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/admanager"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/admanager/admanagerclient"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/repository"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/pkg/distlock"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/scheduler"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/account"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/authenticating"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/importing"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App reúne as dependências montadas a partir da configuração
type App struct {
	Config        *config.Config
	Registry      *prometheus.Registry
	Accounts      account.AccountService
	Imports       importing.ImportService
	Authenticator authenticating.Authenticator
	CampaignSync  *scheduler.CampaignSyncService

	pgConn      *postgres.Connection
	redisClient *redis.Client
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	redisClient, err := redisConn(ctx, cfg.Redis)
	if err != nil {
		pgConn.Close()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewMetrics(registry)

	accountRepo := repository.NewAccountRepository(pgConn)
	periodImportRepo := repository.NewPeriodImportRepository(pgConn)
	syncStatusRepo := repository.NewSyncStatusRepository(pgConn)

	tiktokIntegrator := tiktok.New(cfg.TikTok, tiktokclient.NewClient(cfg.TikTok))
	adManagerIntegrator := admanager.New(cfg.AdManager, admanagerclient.NewClient(ctx, cfg.AdManager))

	importService := importing.NewService(accountRepo, periodImportRepo, syncStatusRepo, metrics)
	accountService := account.NewService(accountRepo, tiktokIntegrator)

	locker := distlock.NewFactory(redisClient, pgConn.DB, cfg.CampaignSync.LockTTL)

	campaignSync := scheduler.NewCampaignSyncService(
		accountRepo,
		importService,
		tiktokIntegrator,
		adManagerIntegrator,
		locker,
		metrics,
		cfg,
	)

	return &App{
		Config:        cfg,
		Registry:      registry,
		Accounts:      accountService,
		Imports:       importService,
		Authenticator: authenticating.NewService(cfg.Auth),
		CampaignSync:  campaignSync,
		pgConn:        pgConn,
		redisClient:   redisClient,
	}, nil
}

func (a *App) Close() {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com Redis")
		}
	}

	if err := a.pgConn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
	}
}

// redisConn conecta ao Redis quando REDIS_URL está definido; sem URL retorna nil
func redisConn(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	if cfg.URL == "" {
		logrus.Info("REDIS_URL não definido, lock de sincronização via advisory lock do PostgreSQL")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("REDIS_URL inválido: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return client, nil
}
