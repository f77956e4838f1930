package model

// Score holds the ratings computed for one analysis.
type Score struct {
	Longevity       float64 `json:"longevity"`
	Trustability    float64 `json:"trustability"`
	HasTrustability bool    `json:"has_trustability"`
	AgeDays         float64 `json:"age_days"`
}
