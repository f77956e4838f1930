package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tokenScope/internal/analysis"
	"tokenScope/internal/config"
	"tokenScope/internal/render"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	out, err := render.New(cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	svc, err := newService(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := svc.Analyze(ctx, args[0])
	if err != nil {
		logger.Debug("analyze failed", zap.String("address", args[0]), zap.Error(err))
		return errors.New(analysis.UserMessage(err))
	}

	if err := out.WriteReport(report); err != nil {
		return err
	}
	return out.Flush()
}
