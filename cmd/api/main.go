package main

import (
	"context"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/api"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/app"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer application.Close()

	if err := application.CampaignSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de campanhas")
	} else {
		logrus.Info("Agendador de sincronização de campanhas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Accounts:      application.Accounts,
		Imports:       application.Imports,
		Authenticator: application.Authenticator,
		CampaignSync:  application.CampaignSync,
		Gatherer:      application.Registry,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
