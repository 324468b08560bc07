package folio

import "github.com/shopspring/decimal"

const (
	AAPL ISIN = "US0378331005"
	GOOG ISIN = "US38259P5089"
)

// P is a helper for test to create a PDecimal from a const.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](v T) PDecimal {
	return MustPDecimal(v)
}

// pos is a helper for test to create a Position from consts.
func pos(id ISIN, quantity, purchasePrice, lastPrice float64) Position {
	return NewPosition(id, P(quantity), P(purchasePrice), P(lastPrice))
}

// unknownPositionUpdate is a PositionUpdate that validators do not know about.
type unknownPositionUpdate struct{}

func (unknownPositionUpdate) What() CommandType { return "unknown" }
func (unknownPositionUpdate) positionUpdate()   {}

// unknownPortfolioUpdate is a PortfolioUpdate that validators do not know about.
type unknownPortfolioUpdate struct{}

func (unknownPortfolioUpdate) What() CommandType { return "unknown" }
func (unknownPortfolioUpdate) portfolioUpdate()  {}

// unknownTransport is a Transport that Update cannot route.
type unknownTransport struct{}

func (unknownTransport) transport() {}
