package scoring

import (
	"fmt"
	"strings"
)

// Normalization caps: a value at its cap scores a full component.
const (
	MaxLiquidityUSD = 1_000_000.0
	MaxVolumeUSD    = 1_000_000.0
	MaxMarketCapUSD = 10_000_000.0
	MaxAgeDays      = 365.0
)

// MaxScore is the upper bound of every rating.
const MaxScore = 100.0

// Model describes how the four longevity components are normalized and weighted.
type Model struct {
	Name string

	LiquidityWeight float64
	VolumeWeight    float64
	MarketCapWeight float64
	AgeWeight       float64

	// Scale multiplies value/cap before weighting.
	Scale float64
	// ClampComponents caps each component at MaxScore before weighting.
	ClampComponents bool
}

// Standard is the default model. Components are not clamped individually,
// only the weighted sum is.
var Standard = Model{
	Name:            "standard",
	LiquidityWeight: 0.3,
	VolumeWeight:    0.3,
	MarketCapWeight: 0.2,
	AgeWeight:       0.2,
	Scale:           100,
}

// Legacy uses the first scanner release's weights and component caps:
// value/cap without the 100x scale, each component capped at 100. Pair age
// follows the same rules as Standard.
var Legacy = Model{
	Name:            "legacy",
	LiquidityWeight: 0.4,
	VolumeWeight:    0.3,
	MarketCapWeight: 0.2,
	AgeWeight:       0.1,
	Scale:           1,
	ClampComponents: true,
}

// ModelByName resolves a model from its config name. Empty means Standard.
func ModelByName(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Standard.Name:
		return Standard, nil
	case Legacy.Name:
		return Legacy, nil
	default:
		return Model{}, fmt.Errorf("unknown scoring model: %s", name)
	}
}

func (m Model) component(value, max float64) float64 {
	if value <= 0 || max <= 0 {
		return 0
	}
	score := value / max * m.Scale
	if m.ClampComponents && score > MaxScore {
		score = MaxScore
	}
	return score
}
