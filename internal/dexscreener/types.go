package dexscreener

import (
	"encoding/json"

	"tokenScope/internal/model"
)

type tokensResponse struct {
	SchemaVersion string          `json:"schemaVersion"`
	Pairs         json.RawMessage `json:"pairs"`
}

type pairPayload struct {
	ChainID       string            `json:"chainId"`
	DexID         string            `json:"dexId"`
	URL           string            `json:"url"`
	PairAddress   string            `json:"pairAddress"`
	BaseToken     *tokenPayload     `json:"baseToken"`
	QuoteToken    *tokenPayload     `json:"quoteToken"`
	Liquidity     *liquidityPayload `json:"liquidity"`
	Volume        *volumePayload    `json:"volume"`
	FDV           model.Value       `json:"fdv"`
	PairCreatedAt model.Value       `json:"pairCreatedAt"`
}

type tokenPayload struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

type liquidityPayload struct {
	USD model.Value `json:"usd"`
}

type volumePayload struct {
	H24 model.Value `json:"h24"`
}

func (p pairPayload) toModel() model.TradingPair {
	pair := model.TradingPair{
		ChainID:                  p.ChainID,
		DexID:                    p.DexID,
		URL:                      p.URL,
		PairAddress:              p.PairAddress,
		BaseTokenName:            model.UnknownLabel,
		BaseTokenSymbol:          model.UnknownLabel,
		FullyDilutedValuationUSD: p.FDV,
		PairCreatedAt:            p.PairCreatedAt,
	}
	if p.BaseToken != nil {
		pair.BaseTokenAddress = p.BaseToken.Address
		pair.BaseTokenName = model.Label(p.BaseToken.Name)
		pair.BaseTokenSymbol = model.Label(p.BaseToken.Symbol)
	}
	if p.QuoteToken != nil {
		pair.QuoteTokenSymbol = p.QuoteToken.Symbol
	}
	if p.Liquidity != nil {
		pair.LiquidityUSD = p.Liquidity.USD
	}
	if p.Volume != nil {
		pair.Volume24hUSD = p.Volume.H24
	}
	return pair
}
