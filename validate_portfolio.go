package folio

// ValidatePortfolio checks that upd can be applied to pf.
//
// ReplacePosition is always valid. DeletePosition requires the position to
// exist.
func ValidatePortfolio(pf Portfolio, upd PortfolioUpdate) (PortfolioUpdate, error) {
	switch v := upd.(type) {
	case ReplacePosition:
		return upd, nil
	case DeletePosition:
		if !pf.Has(v.ID) {
			return upd, PositionDoesNotExistError{ID: v.ID}
		}
		return upd, nil
	default:
		return upd, UnknownPortfolioUpdateError{Portfolio: pf}
	}
}

// ApplyPortfolio returns a new Portfolio with upd applied. pf is left untouched.
func ApplyPortfolio(pf Portfolio, upd PortfolioUpdate) (Portfolio, error) {
	upd, err := ValidatePortfolio(pf, upd)
	if err != nil {
		return pf, err
	}
	switch v := upd.(type) {
	case ReplacePosition:
		return pf.with(v.ID, v.Position), nil
	case DeletePosition:
		return pf.without(v.ID), nil
	default:
		return pf, UnknownPortfolioUpdateError{Portfolio: pf}
	}
}
