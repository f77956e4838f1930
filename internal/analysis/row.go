package analysis

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Column headers, in display order.
var Columns = []string{
	"Name",
	"Symbol",
	"Longevity Rating",
	"Liquidity",
	"24h Volume",
	"Market Cap",
	"Age",
}

// TrustabilityColumn is appended when trustability was computed.
const TrustabilityColumn = "Trustability Rating"

// Row is a report formatted for display.
type Row struct {
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Longevity    string `json:"longevity"`
	Liquidity    string `json:"liquidity"`
	Volume       string `json:"volume"`
	MarketCap    string `json:"market_cap"`
	Age          string `json:"age"`
	Trustability string `json:"trustability,omitempty"`
}

var usd = message.NewPrinter(language.English)

// Row formats the report. Raw values that do not convert render as zero.
func (r Report) Row() Row {
	row := Row{
		Name:      r.Pair.BaseTokenName,
		Symbol:    r.Pair.BaseTokenSymbol,
		Longevity: formatRating(r.Score.Longevity),
		Liquidity: formatUSD(r.Pair.LiquidityUSD.FloatOr(0)),
		Volume:    formatUSD(r.Pair.Volume24hUSD.FloatOr(0)),
		MarketCap: formatUSD(r.Pair.FullyDilutedValuationUSD.FloatOr(0)),
		Age:       fmt.Sprintf("%.2f days", r.Score.AgeDays),
	}
	if r.Score.HasTrustability {
		row.Trustability = formatRating(r.Score.Trustability)
	}
	return row
}

// HasTrustability reports whether the row carries the trustability column.
func (r Row) HasTrustability() bool {
	return r.Trustability != ""
}

// Headers returns the column headers matching Values.
func (r Row) Headers() []string {
	headers := append([]string(nil), Columns...)
	if r.HasTrustability() {
		headers = append(headers, TrustabilityColumn)
	}
	return headers
}

// Values returns the cells in column order.
func (r Row) Values() []string {
	values := []string{r.Name, r.Symbol, r.Longevity, r.Liquidity, r.Volume, r.MarketCap, r.Age}
	if r.HasTrustability() {
		values = append(values, r.Trustability)
	}
	return values
}

func formatRating(score float64) string {
	return fmt.Sprintf("%.2f/100", score)
}

func formatUSD(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}
