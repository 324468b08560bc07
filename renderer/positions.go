package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/etnz/folio"
	"github.com/shopspring/decimal"
)

// Row is a formatted line of the positions table.
type Row struct {
	ISIN          string
	Quantity      string
	PurchasePrice string
	LastPrice     string
	MarketValue   string
	Gain          string
}

// Holdings is the data behind the positions document.
type Holdings struct {
	Title    string
	Currency string // display currency, can be empty.
	Rows     []Row
	Total    Row
}

// NewHoldings formats every position of pf, in ISIN order, with amounts in
// currency. An empty currency prints plain decimals.
func NewHoldings(pf folio.Portfolio, currency string) *Holdings {
	h := &Holdings{Title: "Portfolio", Currency: currency}
	totalValue, totalGain := decimal.Zero, decimal.Zero
	for id, p := range pf.Positions() {
		h.Rows = append(h.Rows, Row{
			ISIN:          id.String(),
			Quantity:      p.Quantity().String(),
			PurchasePrice: formatAmount(p.PurchasePrice().Decimal(), currency),
			LastPrice:     formatAmount(p.LastPrice().Decimal(), currency),
			MarketValue:   formatAmount(p.MarketValue().Decimal(), currency),
			Gain:          formatGain(p.Gain(), currency),
		})
		totalValue = totalValue.Add(p.MarketValue().Decimal())
		totalGain = totalGain.Add(p.Gain())
	}
	h.Total = Row{
		ISIN:        "Total",
		MarketValue: formatAmount(totalValue, currency),
		Gain:        formatGain(totalGain, currency),
	}
	return h
}

// Positions renders pf as a markdown document with one table row per position.
func Positions(pf folio.Portfolio, currency string) string {
	return RenderHoldings(NewHoldings(pf, currency))
}

// RenderHoldings renders the Holdings struct to a markdown string.
func RenderHoldings(h *Holdings) string {
	return renderTemplate("positions", "positions.md", h)
}

// formatAmount formats d in the currency's major unit, rounded to the
// currency fraction.
func formatAmount(d decimal.Decimal, currency string) string {
	if currency == "" {
		return d.StringFixed(2)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// formatGain is like formatAmount with an explicit sign. Zero is "-".
func formatGain(d decimal.Decimal, currency string) string {
	switch {
	case d.IsZero():
		return "-"
	case d.IsPositive():
		return "+" + formatAmount(d, currency)
	default:
		return formatAmount(d, currency)
	}
}
