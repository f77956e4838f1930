package dexscreener

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"tokenScope/internal/model"
)

const (
	// DefaultBaseURL is the public DexScreener API.
	DefaultBaseURL = "https://api.dexscreener.com"
	tokensPath     = "/latest/dex/tokens/"

	maxBodyBytes = 10 * 1024 * 1024
)

// Config holds HTTP settings for the DexScreener client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client looks up trading pairs by token address. Every call is a fresh
// round trip: no retries and no caching.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchPair returns the first pair DexScreener lists for address.
// The address must already be trimmed and non-empty.
func (c *Client) FetchPair(ctx context.Context, address string) (model.TradingPair, error) {
	start := time.Now()
	endpoint := c.baseURL + tokensPath + url.PathEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.TradingPair{}, &FetchError{Kind: KindTransport, Address: address, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.TradingPair{}, &FetchError{Kind: KindTransport, Address: address, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("dexscreener response",
		zap.String("address", address),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return model.TradingPair{}, &FetchError{Kind: KindHTTPStatus, Address: address, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return model.TradingPair{}, &FetchError{Kind: KindTransport, Address: address, Err: fmt.Errorf("read body: %w", err)}
	}

	return parsePair(address, body)
}

func parsePair(address string, body []byte) (model.TradingPair, error) {
	var envelope tokensResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return model.TradingPair{}, &FetchError{Kind: KindParse, Address: address, Err: fmt.Errorf("decode response: %w", err)}
	}

	raw := bytes.TrimSpace(envelope.Pairs)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return model.TradingPair{}, &FetchError{Kind: KindNoData, Address: address}
	}

	var pairs []json.RawMessage
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return model.TradingPair{}, &FetchError{Kind: KindParse, Address: address, Err: fmt.Errorf("decode pairs: %w", err)}
	}
	if len(pairs) == 0 {
		return model.TradingPair{}, &FetchError{Kind: KindNoData, Address: address}
	}

	first := bytes.TrimSpace(pairs[0])
	if len(first) == 0 || first[0] != '{' {
		return model.TradingPair{}, &FetchError{Kind: KindParse, Address: address, Err: fmt.Errorf("first pair is not an object")}
	}

	var payload pairPayload
	if err := json.Unmarshal(first, &payload); err != nil {
		return model.TradingPair{}, &FetchError{Kind: KindParse, Address: address, Err: fmt.Errorf("decode pair: %w", err)}
	}

	return payload.toModel(), nil
}
