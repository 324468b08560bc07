package folio

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when a PDecimal is built from a negative number.
var ErrInvalidValue = errors.New("invalid value")

// ErrUnknownUpdate is returned by Update for a Transport it cannot route.
var ErrUnknownUpdate = errors.New("unknown update")

// PositionDoesNotExistError is returned when an update addresses a position
// that is not in the portfolio.
type PositionDoesNotExistError struct {
	ID ISIN
}

func (e PositionDoesNotExistError) Error() string {
	return fmt.Sprintf("position %q does not exist", e.ID)
}

// UnknownPositionUpdateError is returned when a position update of an
// unsupported type reaches a Position.
type UnknownPositionUpdateError struct {
	Position Position
}

func (e UnknownPositionUpdateError) Error() string {
	return fmt.Sprintf("unknown update for position %q", e.Position.ID())
}

// UnknownPortfolioUpdateError is returned when a portfolio update of an
// unsupported type reaches a Portfolio.
type UnknownPortfolioUpdateError struct {
	Portfolio Portfolio
}

func (e UnknownPortfolioUpdateError) Error() string {
	return fmt.Sprintf("unknown update for portfolio of %d positions", e.Portfolio.Len())
}
