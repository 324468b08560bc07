package folio

import "fmt"

// Update applies a single Transport to pf and returns the resulting Portfolio.
//
// It is the only way to derive a Portfolio from another one. pf is never
// modified: on failure it is returned as is, along with the error.
func Update(pf Portfolio, t Transport) (Portfolio, error) {
	switch v := t.(type) {
	case PositionTransport:
		pos, ok := pf.Position(v.ID)
		if !ok {
			return pf, PositionDoesNotExistError{ID: v.ID}
		}
		upd, err := ValidatePosition(pos, v.Update)
		if err != nil {
			return pf, err
		}
		pos, err = ApplyPosition(pos, upd)
		if err != nil {
			return pf, err
		}
		return pf.with(v.ID, pos), nil

	case PortfolioTransport:
		upd, err := ValidatePortfolio(pf, v.Update)
		if err != nil {
			return pf, err
		}
		return ApplyPortfolio(pf, upd)

	default:
		return pf, ErrUnknownUpdate
	}
}

// UpdateAll applies transports in order, threading each result into the next
// update. It stops at the first failure and returns pf unchanged with an
// error naming the failing transport.
func UpdateAll(pf Portfolio, ts ...Transport) (Portfolio, error) {
	next := pf
	for i, t := range ts {
		var err error
		next, err = Update(next, t)
		if err != nil {
			return pf, fmt.Errorf("update #%d: %w", i+1, err)
		}
	}
	return next, nil
}
