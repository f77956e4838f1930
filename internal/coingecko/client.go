package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"tokenScope/internal/model"
)

const (
	// DefaultBaseURL is the public CoinGecko API host.
	DefaultBaseURL = "https://api.coingecko.com"
	// DefaultPlatform is the asset platform used for contract lookups.
	DefaultPlatform = "solana"

	apiKeyHeader = "x-cg-demo-api-key"
	maxBodyBytes = 10 * 1024 * 1024
)

var (
	errStatus    = errors.New("unexpected status")
	errNotListed = errors.New("token not listed")
)

// Config holds settings for the metadata lookup.
type Config struct {
	BaseURL   string
	Platform  string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
	// BreakerFailures is the number of consecutive failures that opens the breaker.
	BreakerFailures uint32
	// BreakerTimeout is how long the breaker stays open.
	BreakerTimeout time.Duration
	HTTPClient     *http.Client
}

// Client fetches optional token metadata. Lookups never fail loudly: any
// problem yields nil metadata.
type Client struct {
	baseURL    string
	platform   string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

type contractResponse struct {
	ID             string      `json:"id"`
	Symbol         string      `json:"symbol"`
	Name           string      `json:"name"`
	CommunityScore model.Value `json:"community_score"`
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	platform := cfg.Platform
	if platform == "" {
		platform = DefaultPlatform
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 3
	}
	settings := gobreaker.Settings{
		Name:    "coingecko",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("metadata breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		// Unlisted tokens and callers that gave up are not outages.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNotListed) || errors.Is(err, context.Canceled)
		},
	}

	return &Client{
		baseURL:    baseURL,
		platform:   platform,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
	}
}

// Platform returns the asset platform used for lookups.
func (c *Client) Platform() string {
	return c.platform
}

// FetchMetadata looks up the token contract on the configured platform.
// It returns nil when the lookup fails for any reason.
func (c *Client) FetchMetadata(ctx context.Context, address string) *model.Metadata {
	if ctx.Err() != nil {
		return nil
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, address)
	})
	if errors.Is(err, context.Canceled) {
		c.logger.Debug("metadata lookup cancelled", zap.String("address", address))
		return nil
	}
	if errors.Is(err, errNotListed) {
		c.logger.Debug("token not listed", zap.String("address", address), zap.String("platform", c.platform))
		return nil
	}
	if err != nil {
		c.logger.Warn("metadata lookup failed",
			zap.String("address", address),
			zap.String("platform", c.platform),
			zap.Error(err),
		)
		return nil
	}
	meta, _ := result.(*model.Metadata)
	return meta
}

func (c *Client) fetch(ctx context.Context, address string) (*model.Metadata, error) {
	endpoint := fmt.Sprintf("%s/api/v3/coins/%s/contract/%s",
		c.baseURL, url.PathEscape(c.platform), url.PathEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotListed
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", errStatus, resp.StatusCode)
	}

	var payload contractResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	score, err := payload.CommunityScore.Float64()
	if err != nil {
		return nil, fmt.Errorf("community score: %w", err)
	}
	if score < 0 {
		score = 0
	}

	return &model.Metadata{
		ID:             payload.ID,
		Symbol:         payload.Symbol,
		Name:           payload.Name,
		CommunityScore: score,
	}, nil
}
