package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/api/handler"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/api/handler/router"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/account"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/authenticating"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/importing"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências usadas pelas rotas
type Services struct {
	Accounts      account.AccountService
	Imports       importing.ImportService
	Authenticator authenticating.Authenticator
	CampaignSync  handler.CampaignSyncer
	Gatherer      prometheus.Gatherer
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, errors.New("authenticator é obrigatório")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o router com a cadeia de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	loc := cfg.Location()

	gatherer := services.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(gatherer)...),
		router.WithRoutes(handler.Accounts(services.Accounts)...),
		router.WithRoutes(handler.Reports(services.Imports, loc)...),
		router.WithRoutes(handler.Sync(services.CampaignSync, services.Imports, loc)...),
		router.WithRoutes(handler.CronJobs(services.CampaignSync)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
