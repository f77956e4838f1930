package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tokenScope/internal/address"
	"tokenScope/internal/analysis"
	"tokenScope/internal/model"
	"tokenScope/internal/render"
)

type analyzerFunc func(ctx context.Context, raw string) (analysis.Report, error)

func (f analyzerFunc) Analyze(ctx context.Context, raw string) (analysis.Report, error) {
	return f(ctx, raw)
}

func parsingAnalyzer() analysis.Analyzer {
	return analyzerFunc(func(_ context.Context, raw string) (analysis.Report, error) {
		addr, err := address.Parse(raw)
		if err != nil {
			return analysis.Report{}, err
		}
		return analysis.Report{
			Address: addr,
			Pair: model.TradingPair{
				BaseTokenName:   "Bonk",
				BaseTokenSymbol: "BONK",
				LiquidityUSD:    model.NewValue(1000.0),
			},
			Score:      model.Score{Longevity: 12.5},
			AnalyzedAt: time.Unix(1_700_000_000, 0),
		}, nil
	})
}

func runFeed(t *testing.T, input string) (string, string, analysis.DisplayState) {
	t.Helper()
	var out, msgs bytes.Buffer
	display := newStateDisplay(render.NewTableWriter(&out), &msgs, zap.NewNop())

	ctx := context.Background()
	session := analysis.NewSession(ctx, parsingAnalyzer(), display.show, zap.NewNop())
	defer session.Close()

	require.NoError(t, feedSession(ctx, strings.NewReader(input), session))
	return out.String(), msgs.String(), session.State()
}

func TestWatchRendersRow(t *testing.T) {
	out, msgs, state := runFeed(t, "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263\n")

	assert.Empty(t, msgs)
	assert.Contains(t, out, "Longevity Rating")
	assert.Contains(t, out, "Bonk")
	assert.Contains(t, out, "12.50/100")
	require.NotNil(t, state.Row)
	assert.Equal(t, "$1,000.00", state.Row.Liquidity)
}

func TestWatchBlankLineWarns(t *testing.T) {
	out, msgs, state := runFeed(t, "   \n")

	assert.Empty(t, out)
	assert.Equal(t, "warning: Please enter a contract address.\n", msgs)
	assert.True(t, state.Empty())
}

func TestWatchInvalidAddressWarns(t *testing.T) {
	_, msgs, _ := runFeed(t, "Dez XAZ8z7\n")

	assert.Equal(t, "warning: Contract addresses cannot contain spaces or URL characters.\n", msgs)
}

func TestWatchOtherChainAddressIsAnalyzed(t *testing.T) {
	out, msgs, state := runFeed(t, "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t\n")

	assert.Empty(t, msgs)
	assert.Contains(t, out, "Bonk")
	require.NotNil(t, state.Report)
	assert.Equal(t, address.KindOther, state.Report.Address.Kind)
}

func TestWatchCancelledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := analysis.NewSession(ctx, parsingAnalyzer(), nil, zap.NewNop())
	defer session.Close()

	assert.NoError(t, feedSession(ctx, strings.NewReader(""), session))
}
