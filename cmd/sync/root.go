package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/app"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/log"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type syncOptions struct {
	userID    string
	startDate string
	endDate   string
}

func newRootCmd() *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:           "sync",
		Short:         "Sincroniza gasto do TikTok e receita do Ad Manager de um usuário",
		Long:          "Busca a receita do período uma vez e importa cada conta do usuário. Sem datas usa o período padrão do cron.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.userID, "user", "", "ID do usuário a sincronizar (obrigatório)")
	cmd.Flags().StringVar(&opts.startDate, "start", "", "data inicial AAAA-MM-DD")
	cmd.Flags().StringVar(&opts.endDate, "end", "", "data final AAAA-MM-DD")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runSync(cmd *cobra.Command, opts *syncOptions) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log.Setup(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	startDate, endDate, err := resolvePeriod(opts, cfg.Location(), application.CampaignSync.DefaultPeriod)
	if err != nil {
		return err
	}

	response, err := application.CampaignSync.SyncUser(ctx, opts.userID, startDate, endDate)
	if err != nil {
		return err
	}

	return printResponse(cmd, response)
}

// resolvePeriod aplica as mesmas regras da API: sem datas usa o padrão, com uma só a outra repete
func resolvePeriod(opts *syncOptions, loc *time.Location, defaultPeriod func() (time.Time, time.Time)) (time.Time, time.Time, error) {
	if opts.startDate == "" && opts.endDate == "" {
		start, end := defaultPeriod()
		return start, end, nil
	}

	startRaw, endRaw := opts.startDate, opts.endDate
	if startRaw == "" {
		startRaw = endRaw
	}
	if endRaw == "" {
		endRaw = startRaw
	}

	start, err := utils.ParseDateIn(startRaw, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--start inválido: %w", err)
	}

	end, err := utils.ParseDateIn(endRaw, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--end inválido: %w", err)
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, errors.New("--start depois de --end")
	}

	return start, end, nil
}

func printResponse(cmd *cobra.Command, response *domain.SyncResponse) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if response.Summary.Failed > 0 {
		return fmt.Errorf("%s", response.Summary.Message)
	}

	return nil
}
