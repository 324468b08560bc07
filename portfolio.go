package folio

import (
	"iter"
	"maps"
	"slices"
)

// Portfolio is a set of positions indexed by ISIN.
//
// Portfolio is a value. It is never modified once built: every change goes
// through Update and produces a new Portfolio. The zero value is an empty
// portfolio.
type Portfolio struct {
	positions map[ISIN]Position
}

// NewPortfolio creates a portfolio holding the given positions. When two
// positions share an identifier the last one wins.
func NewPortfolio(positions ...Position) Portfolio {
	m := make(map[ISIN]Position, len(positions))
	for _, p := range positions {
		m[p.ID()] = p
	}
	return Portfolio{positions: m}
}

// Len returns the number of positions.
func (pf Portfolio) Len() int { return len(pf.positions) }

// Position returns the position for id, and whether it exists.
func (pf Portfolio) Position(id ISIN) (Position, bool) {
	p, ok := pf.positions[id]
	return p, ok
}

// Has reports whether the portfolio holds a position for id.
func (pf Portfolio) Has(id ISIN) bool {
	_, ok := pf.positions[id]
	return ok
}

// IDs returns the identifiers of all positions in ascending order.
func (pf Portfolio) IDs() []ISIN {
	ids := slices.Collect(maps.Keys(pf.positions))
	slices.Sort(ids)
	return ids
}

// Positions iterates over positions in ascending ISIN order.
func (pf Portfolio) Positions() iter.Seq2[ISIN, Position] {
	return func(yield func(ISIN, Position) bool) {
		for _, id := range pf.IDs() {
			if !yield(id, pf.positions[id]) {
				return
			}
		}
	}
}

// Equal reports whether both portfolios hold equal positions.
func (pf Portfolio) Equal(other Portfolio) bool {
	return maps.EqualFunc(pf.positions, other.positions, Position.Equal)
}

// with returns a copy of pf where id is set to p.
func (pf Portfolio) with(id ISIN, p Position) Portfolio {
	m := maps.Clone(pf.positions)
	if m == nil {
		m = make(map[ISIN]Position, 1)
	}
	m[id] = p
	return Portfolio{positions: m}
}

// without returns a copy of pf without id.
func (pf Portfolio) without(id ISIN) Portfolio {
	m := maps.Clone(pf.positions)
	delete(m, id)
	return Portfolio{positions: m}
}
