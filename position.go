package folio

import "github.com/shopspring/decimal"

// Position is the holding of a single security in a Portfolio.
//
// Position is a value: the With* methods return a modified copy.
type Position struct {
	id            ISIN
	quantity      PDecimal // number of units held.
	purchasePrice PDecimal // price paid per unit.
	lastPrice     PDecimal // latest known price per unit.
}

// NewPosition creates a new Position.
func NewPosition(id ISIN, quantity, purchasePrice, lastPrice PDecimal) Position {
	return Position{
		id:            id,
		quantity:      quantity,
		purchasePrice: purchasePrice,
		lastPrice:     lastPrice,
	}
}

// ID returns the identifier of the position.
func (p Position) ID() ISIN { return p.id }

// Quantity returns the number of units held.
func (p Position) Quantity() PDecimal { return p.quantity }

// PurchasePrice returns the price paid per unit.
func (p Position) PurchasePrice() PDecimal { return p.purchasePrice }

// LastPrice returns the latest known price per unit.
func (p Position) LastPrice() PDecimal { return p.lastPrice }

func (p Position) WithQuantity(v PDecimal) Position      { p.quantity = v; return p }
func (p Position) WithPurchasePrice(v PDecimal) Position { p.purchasePrice = v; return p }
func (p Position) WithLastPrice(v PDecimal) Position     { p.lastPrice = v; return p }

// MarketValue is the position valued at its last price.
func (p Position) MarketValue() PDecimal { return p.quantity.Mul(p.lastPrice) }

// Cost is the position valued at its purchase price.
func (p Position) Cost() PDecimal { return p.quantity.Mul(p.purchasePrice) }

// Gain is the unrealized gain, it can be negative.
func (p Position) Gain() decimal.Decimal {
	return p.MarketValue().Decimal().Sub(p.Cost().Decimal())
}

// Equal reports whether p and q have the same identifier and field values.
func (p Position) Equal(q Position) bool {
	return p.id == q.id &&
		p.quantity.Equal(q.quantity) &&
		p.purchasePrice.Equal(q.purchasePrice) &&
		p.lastPrice.Equal(q.lastPrice)
}
