package model

// UnknownLabel is shown when the upstream omits a token name or symbol.
const UnknownLabel = "Unknown"

// TradingPair is the first DexScreener pair returned for a token address.
type TradingPair struct {
	ChainID          string `json:"chain_id"`
	DexID            string `json:"dex_id"`
	PairAddress      string `json:"pair_address"`
	URL              string `json:"url"`
	BaseTokenAddress string `json:"base_token_address"`
	BaseTokenName    string `json:"base_token_name"`
	BaseTokenSymbol  string `json:"base_token_symbol"`
	QuoteTokenSymbol string `json:"quote_token_symbol"`

	LiquidityUSD             Value `json:"liquidity_usd"`
	Volume24hUSD             Value `json:"volume_24h_usd"`
	FullyDilutedValuationUSD Value `json:"fdv_usd"`
	// PairCreatedAt is epoch milliseconds; absent for some pairs.
	PairCreatedAt Value `json:"pair_created_at"`
}

// Label returns s, or UnknownLabel when s is empty.
func Label(s string) string {
	if s == "" {
		return UnknownLabel
	}
	return s
}
