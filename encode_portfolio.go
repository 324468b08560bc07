package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// jposition is the JSON form of a Position, shared by portfolio files and
// replace-position commands.
type jposition struct {
	ISIN          ISIN     `json:"isin"`
	Quantity      PDecimal `json:"quantity"`
	PurchasePrice PDecimal `json:"purchasePrice"`
	LastPrice     PDecimal `json:"lastPrice"`
}

func (j jposition) Position() Position {
	return NewPosition(j.ISIN, j.Quantity, j.PurchasePrice, j.LastPrice)
}

// positionFields returns the JSON object of p's decimal fields, in file order.
func positionFields(p Position) json.Marshaler {
	var w jsonObjectWriter
	w.Append("quantity", p.quantity)
	w.Append("purchasePrice", p.purchasePrice)
	w.Append("lastPrice", p.lastPrice)
	return &w
}

// MarshalJSON implements the json.Marshaler interface for Position.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("isin", p.id)
	w.EmbedFrom(positionFields(p))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Position.
func (p *Position) UnmarshalJSON(data []byte) error {
	var j jposition
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*p = j.Position()
	return nil
}

// EncodePortfolio writes one position per line, in ascending ISIN order.
func EncodePortfolio(w io.Writer, pf Portfolio) error {
	for id, pos := range pf.Positions() {
		// the map key is authoritative.
		pos.id = id
		data, err := json.Marshal(pos)
		if err != nil {
			return fmt.Errorf("failed to marshal position %q: %w", id, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write position %q: %w", id, err)
		}
	}
	return nil
}

// DecodePortfolio reads positions written by EncodePortfolio.
//
// Positions are loaded through Update with ReplacePosition transports. An
// ISIN appearing twice is an error.
func DecodePortfolio(r io.Reader) (Portfolio, error) {
	pf := NewPortfolio()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var pos Position
		if err := json.Unmarshal(line, &pos); err != nil {
			return Portfolio{}, fmt.Errorf("line %d: invalid position %q: %w", n, string(line), err)
		}
		if pos.ID() == "" {
			return Portfolio{}, fmt.Errorf("line %d: isin is missing", n)
		}
		if pf.Has(pos.ID()) {
			return Portfolio{}, fmt.Errorf("line %d: position %q is already defined", n, pos.ID())
		}
		var err error
		if pf, err = Update(pf, Replace(pos)); err != nil {
			return Portfolio{}, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return Portfolio{}, fmt.Errorf("error reading from input: %w", err)
	}
	return pf, nil
}
