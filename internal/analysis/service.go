package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tokenScope/internal/address"
	"tokenScope/internal/model"
	"tokenScope/internal/scoring"
)

// PairFetcher returns the primary trading pair for a token address.
type PairFetcher interface {
	FetchPair(ctx context.Context, address string) (model.TradingPair, error)
}

// MetadataFetcher returns optional metadata; nil means none is available.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, address string) *model.Metadata
}

// Report is the outcome of one successful analysis.
type Report struct {
	ID         uuid.UUID         `json:"id"`
	Address    address.Address   `json:"address"`
	Pair       model.TradingPair `json:"pair"`
	Metadata   *model.Metadata   `json:"metadata,omitempty"`
	Score      model.Score       `json:"score"`
	AnalyzedAt time.Time         `json:"analyzed_at"`
}

// Service runs the fetch and score pipeline for a single address.
type Service struct {
	pairs    PairFetcher
	metadata MetadataFetcher
	scorer   *scoring.Scorer
	logger   *zap.Logger
}

// NewService builds a Service. A nil metadata fetcher disables trustability.
func NewService(pairs PairFetcher, metadata MetadataFetcher, scorer *scoring.Scorer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if scorer == nil {
		scorer = scoring.New(scoring.Standard)
	}
	return &Service{
		pairs:    pairs,
		metadata: metadata,
		scorer:   scorer,
		logger:   logger,
	}
}

// Analyze validates raw, fetches market data and scores it. Errors are
// address input errors or *dexscreener.FetchError values, unwrapped.
func (s *Service) Analyze(ctx context.Context, raw string) (Report, error) {
	addr, err := address.Parse(raw)
	if err != nil {
		return Report{}, err
	}

	start := time.Now()
	logger := s.logger.With(zap.String("address", addr.Value), zap.String("kind", string(addr.Kind)))
	logger.Debug("analysis start")

	pair, err := s.pairs.FetchPair(ctx, addr.Value)
	if err != nil {
		logger.Warn("fetch pair failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return Report{}, err
	}

	var meta *model.Metadata
	withTrust := s.metadata != nil
	if withTrust {
		meta = s.metadata.FetchMetadata(ctx, addr.Value)
	}

	report := Report{
		ID:         uuid.New(),
		Address:    addr,
		Pair:       pair,
		Metadata:   meta,
		Score:      s.scorer.Score(pair, meta, withTrust),
		AnalyzedAt: time.Now().UTC(),
	}

	logger.Info("analysis complete",
		zap.String("id", report.ID.String()),
		zap.String("symbol", pair.BaseTokenSymbol),
		zap.Float64("longevity", report.Score.Longevity),
		zap.Bool("has_trustability", report.Score.HasTrustability),
		zap.Float64("trustability", report.Score.Trustability),
		zap.Bool("has_metadata", meta != nil),
		zap.Duration("elapsed", time.Since(start)),
	)

	return report, nil
}
