package folio

// Transport addresses an update to the entity that must receive it.
//
// It is either a PositionTransport or a PortfolioTransport.
type Transport interface {
	transport()
}

// PositionTransport carries a PositionUpdate for the position identified by ID.
type PositionTransport struct {
	ID     ISIN
	Update PositionUpdate
}

// PortfolioTransport carries a PortfolioUpdate for the portfolio.
type PortfolioTransport struct {
	Update PortfolioUpdate
}

func (PositionTransport) transport()  {}
func (PortfolioTransport) transport() {}

// Shortcuts to build transports.

// SetQuantity addresses a ChangeQuantity at id.
func SetQuantity(id ISIN, v PDecimal) PositionTransport {
	return PositionTransport{ID: id, Update: ChangeQuantity{Value: v}}
}

// SetPriceBuy addresses a ChangePriceBuy at id.
func SetPriceBuy(id ISIN, v PDecimal) PositionTransport {
	return PositionTransport{ID: id, Update: ChangePriceBuy{Value: v}}
}

// SetLastPrice addresses a ChangeLastPrice at id.
func SetLastPrice(id ISIN, v PDecimal) PositionTransport {
	return PositionTransport{ID: id, Update: ChangeLastPrice{Value: v}}
}

// Replace wraps a ReplacePosition for p, keyed by its own identifier.
func Replace(p Position) PortfolioTransport {
	return PortfolioTransport{Update: ReplacePosition{ID: p.ID(), Position: p}}
}

// Delete wraps a DeletePosition for id.
func Delete(id ISIN) PortfolioTransport {
	return PortfolioTransport{Update: DeletePosition{ID: id}}
}
