// Package folio is a small transactional state-update engine for a portfolio
// of positions.
//
// A Portfolio maps security identifiers (ISIN) to a Position holding a
// quantity, a purchase price and a last price, all non-negative decimals
// (PDecimal). Portfolios and positions are values: they are never modified in
// place.
//
// The only way to derive a new Portfolio is Update, which receives a Transport:
//   - a PositionTransport addresses a PositionUpdate (ChangeQuantity,
//     ChangePriceBuy, ChangeLastPrice) at one existing position.
//   - a PortfolioTransport carries a PortfolioUpdate (ReplacePosition,
//     DeletePosition) for the portfolio as a whole.
//
// Update locates the target, validates the update, then applies it. Any
// failure is returned as an error and the input Portfolio is left untouched,
// so callers can chain updates by threading the returned value into the next
// call, or use UpdateAll.
//
// Transports and portfolios have a JSONL representation (see DecodeTransports
// and DecodePortfolio) used by the `fol` command-line tool.
package folio
