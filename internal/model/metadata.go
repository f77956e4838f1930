package model

// Metadata is the optional CoinGecko record for a token contract.
type Metadata struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	CommunityScore float64 `json:"community_score"`
}
