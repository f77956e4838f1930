package main

import (
	"go.uber.org/zap"

	"tokenScope/internal/analysis"
	"tokenScope/internal/coingecko"
	"tokenScope/internal/config"
	"tokenScope/internal/dexscreener"
	"tokenScope/internal/scoring"
)

// newService wires the upstream clients and the scoring model from cfg.
func newService(cfg config.Config, logger *zap.Logger) (*analysis.Service, error) {
	m, err := scoring.ModelByName(cfg.Model)
	if err != nil {
		return nil, err
	}

	pairs := dexscreener.NewClient(dexscreener.Config{
		BaseURL:   cfg.DexScreenerURL,
		Timeout:   cfg.HTTPTimeout,
		UserAgent: cfg.UserAgent,
	}, logger)

	var metadata analysis.MetadataFetcher
	if cfg.MetadataEnabled {
		metadata = coingecko.NewClient(coingecko.Config{
			BaseURL:         cfg.CoinGeckoURL,
			Platform:        cfg.MetadataPlatform,
			APIKey:          cfg.CoinGeckoAPIKey,
			Timeout:         cfg.HTTPTimeout,
			UserAgent:       cfg.UserAgent,
			BreakerFailures: cfg.BreakerFailures,
			BreakerTimeout:  cfg.BreakerTimeout,
		}, logger)
	}

	logger.Debug("analysis service configured",
		zap.String("model", m.Name),
		zap.String("dexscreener", cfg.DexScreenerURL),
		zap.Bool("metadata_enabled", cfg.MetadataEnabled),
		zap.String("metadata_platform", cfg.MetadataPlatform),
	)

	return analysis.NewService(pairs, metadata, scoring.New(m), logger), nil
}
