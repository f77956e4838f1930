package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenScope/internal/model"
)

var fixedNow = time.Unix(1_700_000_000, 0)

func newTestScorer(m Model) *Scorer {
	return New(m, WithClock(func() time.Time { return fixedNow }))
}

func createdDaysAgo(days float64) model.Value {
	seconds := float64(fixedNow.Unix()) - days*secondsPerDay
	return model.NewValue(seconds * 1000)
}

func pair(liquidity, volume, fdv interface{}, created model.Value) model.TradingPair {
	return model.TradingPair{
		BaseTokenName:            "Bonk",
		BaseTokenSymbol:          "BONK",
		LiquidityUSD:             model.NewValue(liquidity),
		Volume24hUSD:             model.NewValue(volume),
		FullyDilutedValuationUSD: model.NewValue(fdv),
		PairCreatedAt:            created,
	}
}

func TestLongevityHalfCaps(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair(500_000.0, 500_000.0, 5_000_000.0, createdDaysAgo(182.5))

	assert.InDelta(t, 50.0, s.Longevity(p), 1e-9)
}

func TestLongevityComponentsNotClampedIndividually(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair(2_000_000.0, 0.0, 0.0, model.Value{})

	assert.InDelta(t, 60.0, s.Longevity(p), 1e-9)
}

func TestLongevityClampsSum(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair(5_000_000.0, 1_000_000.0, 0.0, model.Value{})

	assert.Equal(t, MaxScore, s.Longevity(p))
}

func TestLongevityMissingCreatedAt(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair(0.0, 0.0, 0.0, model.Value{})

	age, err := AgeDays(p.PairCreatedAt, fixedNow)
	require.NoError(t, err)
	assert.Zero(t, age)
	assert.Zero(t, s.Longevity(p))
}

func TestLongevityNonNumericField(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair("plenty", 500_000.0, 5_000_000.0, createdDaysAgo(100))

	assert.Zero(t, s.Longevity(p))
}

func TestLongevityNumericStrings(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair("500000", "500000", "5000000", createdDaysAgo(182.5))

	assert.InDelta(t, 50.0, s.Longevity(p), 1e-9)
}

func TestLongevityNegativeInputsContributeNothing(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair(-1_000_000.0, 500_000.0, -5.0, model.Value{})

	assert.InDelta(t, 15.0, s.Longevity(p), 1e-9)
}

func TestLongevityFutureCreationIsZeroAge(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair(0.0, 0.0, 0.0, createdDaysAgo(-10))

	assert.Zero(t, s.Longevity(p))
}

func TestLongevityBounded(t *testing.T) {
	s := newTestScorer(Standard)
	values := []float64{0, 1, 999, 250_000, 1_000_000, 3e7, 1e12}
	for _, liq := range values {
		for _, vol := range values {
			for _, fdv := range values {
				got := s.Longevity(pair(liq, vol, fdv, createdDaysAgo(1000)))
				require.GreaterOrEqual(t, got, 0.0)
				require.LessOrEqual(t, got, MaxScore)
			}
		}
	}
}

func TestLongevityMonotonic(t *testing.T) {
	s := newTestScorer(Standard)
	steps := []float64{0, 10_000, 50_000, 100_000, 200_000, 300_000}

	prev := -1.0
	for _, v := range steps {
		got := s.Longevity(pair(v, 0.0, 0.0, model.Value{}))
		require.GreaterOrEqual(t, got, prev, "liquidity %v", v)
		prev = got
	}

	prev = -1.0
	for _, v := range steps {
		got := s.Longevity(pair(0.0, v, 0.0, model.Value{}))
		require.GreaterOrEqual(t, got, prev, "volume %v", v)
		prev = got
	}

	prev = -1.0
	for _, v := range steps {
		got := s.Longevity(pair(0.0, 0.0, v*10, model.Value{}))
		require.GreaterOrEqual(t, got, prev, "fdv %v", v)
		prev = got
	}

	prev = -1.0
	for _, days := range []float64{0, 1, 30, 90, 200, 365} {
		got := s.Longevity(pair(0.0, 0.0, 0.0, createdDaysAgo(days)))
		require.GreaterOrEqual(t, got, prev, "age %v", days)
		prev = got
	}
}

func TestLongevityIdempotent(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair(123_456.0, 78_900.0, 4_000_000.0, createdDaysAgo(42))

	assert.Equal(t, s.Longevity(p), s.Longevity(p))
}

func TestLegacyModel(t *testing.T) {
	s := newTestScorer(Legacy)
	p := pair(1_000_000.0, 1_000_000.0, 10_000_000.0, createdDaysAgo(365))

	assert.InDelta(t, 1.0, s.Longevity(p), 1e-9)

	huge := pair(1e12, 0.0, 0.0, model.Value{})
	assert.InDelta(t, 40.0, s.Longevity(huge), 1e-9)
}

func TestLegacyAgeFollowsStandardRules(t *testing.T) {
	s := newTestScorer(Legacy)

	missing := pair(0.0, 0.0, 0.0, model.Value{})
	assert.Zero(t, s.Longevity(missing))

	future := pair(0.0, 0.0, 0.0, createdDaysAgo(-30))
	assert.Zero(t, s.Longevity(future))

	// 730 days is two caps of age: 2 * 0.1.
	old := pair(0.0, 0.0, 0.0, createdDaysAgo(730))
	assert.InDelta(t, 0.2, s.Longevity(old), 1e-9)
}

func TestTrustabilityWithoutMetadata(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair(500_000.0, 500_000.0, 5_000_000.0, createdDaysAgo(182.5))

	assert.InDelta(t, 25.0, s.Trustability(p, nil), 1e-9)
}

func TestTrustabilityWithMetadata(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair(500_000.0, 500_000.0, 5_000_000.0, createdDaysAgo(182.5))

	assert.InDelta(t, 75.0, s.Trustability(p, &model.Metadata{CommunityScore: 2.5}), 1e-9)
	assert.Equal(t, MaxScore, s.Trustability(p, &model.Metadata{CommunityScore: 10}))
	assert.InDelta(t, 25.0, s.Trustability(p, &model.Metadata{CommunityScore: -3}), 1e-9)
}

func TestScore(t *testing.T) {
	s := newTestScorer(Standard)
	p := pair(500_000.0, 500_000.0, 5_000_000.0, createdDaysAgo(182.5))

	got := s.Score(p, &model.Metadata{CommunityScore: 1}, true)
	assert.InDelta(t, 50.0, got.Longevity, 1e-9)
	assert.InDelta(t, 45.0, got.Trustability, 1e-9)
	assert.True(t, got.HasTrustability)
	assert.InDelta(t, 182.5, got.AgeDays, 1e-9)

	plain := s.Score(p, nil, false)
	assert.False(t, plain.HasTrustability)
	assert.Zero(t, plain.Trustability)
}

func TestModelByName(t *testing.T) {
	m, err := ModelByName("")
	require.NoError(t, err)
	assert.Equal(t, Standard.Name, m.Name)

	m, err = ModelByName(" Legacy ")
	require.NoError(t, err)
	assert.Equal(t, Legacy.Name, m.Name)

	_, err = ModelByName("aggressive")
	assert.Error(t, err)
}
