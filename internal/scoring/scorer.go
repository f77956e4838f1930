package scoring

import (
	"math"
	"time"

	"tokenScope/internal/model"
)

const (
	secondsPerDay = 86400.0

	// Trustability weights.
	CommunityScoreWeight = 20.0
	LongevityTrustWeight = 0.5
)

// Scorer computes longevity and trustability ratings for a trading pair.
type Scorer struct {
	model Model
	now   func() time.Time
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithClock overrides the clock used for pair age.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

func New(m Model, opts ...Option) *Scorer {
	s := &Scorer{model: m, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Model returns the scoring model in use.
func (s *Scorer) Model() Model {
	return s.model
}

// AgeDays returns the pair age in days at now. A missing or zero creation
// time is 0 days old; a creation time in the future also counts as 0.
func AgeDays(createdAt model.Value, now time.Time) (float64, error) {
	createdMillis, err := createdAt.Float64()
	if err != nil {
		return 0, err
	}
	if createdMillis <= 0 {
		return 0, nil
	}

	nowSeconds := float64(now.UnixNano()) / float64(time.Second)
	age := (nowSeconds - createdMillis/1000) / secondsPerDay
	if age < 0 || math.IsNaN(age) {
		return 0, nil
	}
	return age, nil
}

// Longevity rates the pair on a 0-100 scale from liquidity, 24h volume,
// fully diluted valuation and age. Any unconvertible field yields 0.
func (s *Scorer) Longevity(pair model.TradingPair) float64 {
	liquidity, err := pair.LiquidityUSD.Float64()
	if err != nil {
		return 0
	}
	volume, err := pair.Volume24hUSD.Float64()
	if err != nil {
		return 0
	}
	marketCap, err := pair.FullyDilutedValuationUSD.Float64()
	if err != nil {
		return 0
	}
	age, err := AgeDays(pair.PairCreatedAt, s.now())
	if err != nil {
		return 0
	}

	m := s.model
	total := m.component(liquidity, MaxLiquidityUSD)*m.LiquidityWeight +
		m.component(volume, MaxVolumeUSD)*m.VolumeWeight +
		m.component(marketCap, MaxMarketCapUSD)*m.MarketCapWeight +
		m.component(age, MaxAgeDays)*m.AgeWeight

	return clamp(total)
}

// Trustability combines the CoinGecko community score with longevity.
// meta may be nil, in which case the community score counts as 0.
func (s *Scorer) Trustability(pair model.TradingPair, meta *model.Metadata) float64 {
	return trustability(s.Longevity(pair), meta)
}

// Score computes every rating for one analysis.
func (s *Scorer) Score(pair model.TradingPair, meta *model.Metadata, withTrust bool) model.Score {
	age, err := AgeDays(pair.PairCreatedAt, s.now())
	if err != nil {
		age = 0
	}

	longevity := s.Longevity(pair)
	out := model.Score{
		Longevity: longevity,
		AgeDays:   age,
	}
	if withTrust {
		out.Trustability = trustability(longevity, meta)
		out.HasTrustability = true
	}
	return out
}

func trustability(longevity float64, meta *model.Metadata) float64 {
	community := 0.0
	if meta != nil && meta.CommunityScore > 0 {
		community = meta.CommunityScore
	}
	return clamp(community*CommunityScoreWeight + longevity*LongevityTrustWeight)
}

func clamp(score float64) float64 {
	switch {
	case math.IsNaN(score), score < 0:
		return 0
	case score > MaxScore:
		return MaxScore
	default:
		return score
	}
}
