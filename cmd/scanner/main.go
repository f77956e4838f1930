package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:          "scanner",
		Short:        "DEX token longevity and trustability scanner",
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	analyzeCmd := &cobra.Command{
		Use:   "analyze <address>",
		Short: "Score a single token contract address",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	addClientFlags(analyzeCmd.Flags())
	analyzeCmd.Flags().String("output", "table", "output format (table, jsonl)")

	root.AddCommand(analyzeCmd)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Read addresses from stdin and score each one",
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}
	addClientFlags(watchCmd.Flags())
	watchCmd.Flags().String("output", "table", "output format (table, jsonl)")

	root.AddCommand(watchCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve token scores over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	addClientFlags(serveCmd.Flags())
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")

	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addClientFlags(fs *pflag.FlagSet) {
	fs.String("env-file", ".env", "dotenv file loaded before reading the environment")
	fs.String("dexscreener-url", "https://api.dexscreener.com", "DexScreener API base URL")
	fs.String("coingecko-url", "https://api.coingecko.com", "CoinGecko API base URL")
	fs.String("coingecko-api-key", "", "CoinGecko demo API key")
	fs.Bool("metadata-enabled", true, "fetch CoinGecko metadata and compute trustability")
	fs.String("metadata-platform", "solana", "CoinGecko asset platform id")
	fs.Duration("http-timeout", 15*time.Second, "HTTP client timeout")
	fs.String("user-agent", "tokenscope-scanner/1.0", "User-Agent header for upstream requests")
	fs.String("model", "standard", "longevity model (standard, legacy)")
	fs.Uint32("breaker-failures", 3, "consecutive metadata failures before the breaker opens")
	fs.Duration("breaker-timeout", time.Minute, "how long the metadata breaker stays open")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
