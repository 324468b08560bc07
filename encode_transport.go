package folio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for PositionTransport.
func (t PositionTransport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	switch v := t.Update.(type) {
	case ChangeQuantity:
		w.Append("command", v.What())
		w.Append("isin", t.ID)
		w.Append("value", v.Value)
	case ChangePriceBuy:
		w.Append("command", v.What())
		w.Append("isin", t.ID)
		w.Append("value", v.Value)
	case ChangeLastPrice:
		w.Append("command", v.What())
		w.Append("isin", t.ID)
		w.Append("value", v.Value)
	default:
		return nil, fmt.Errorf("cannot encode position update %T: %w", t.Update, ErrUnknownUpdate)
	}
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for PortfolioTransport.
func (t PortfolioTransport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	switch v := t.Update.(type) {
	case ReplacePosition:
		w.Append("command", v.What())
		w.Append("isin", v.ID)
		w.EmbedFrom(positionFields(v.Position))
	case DeletePosition:
		w.Append("command", v.What())
		w.Append("isin", v.ID)
	default:
		return nil, fmt.Errorf("cannot encode portfolio update %T: %w", t.Update, ErrUnknownUpdate)
	}
	return w.MarshalJSON()
}

// EncodeTransport marshals a single transport to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransport(w io.Writer, t Transport) error {
	if t == nil {
		return fmt.Errorf("cannot encode nil transport: %w", ErrUnknownUpdate)
	}
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal transport: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transport: %w", err)
	}
	return nil
}

// EncodeTransports writes transports in JSONL format, in order.
func EncodeTransports(w io.Writer, ts ...Transport) error {
	for _, t := range ts {
		if err := EncodeTransport(w, t); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTransports reads a stream of JSONL transports. Empty lines are skipped.
func DecodeTransports(r io.Reader) ([]Transport, error) {
	var transports []Transport
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		t, err := decodeTransport(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		transports = append(transports, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return transports, nil
}

// decodeTransport decodes one JSON object into the Transport named by its
// "command" property.
func decodeTransport(line []byte) (Transport, error) {
	var identifier struct {
		Command CommandType `json:"command"`
		ISIN    ISIN        `json:"isin"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify command in %q: %w", string(line), err)
	}
	switch identifier.Command {
	case "":
		return nil, errors.New("command is missing")
	case CmdChangeQuantity, CmdChangePriceBuy, CmdChangeLastPrice, CmdReplacePosition, CmdDeletePosition:
	default:
		return nil, fmt.Errorf("unknown command %q: %w", identifier.Command, ErrUnknownUpdate)
	}
	if identifier.ISIN == "" {
		return nil, fmt.Errorf("%s: isin is missing", identifier.Command)
	}

	switch identifier.Command {
	case CmdChangeQuantity, CmdChangePriceBuy, CmdChangeLastPrice:
		var temp struct {
			Value *PDecimal `json:"value"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("%s: %w", identifier.Command, err)
		}
		if temp.Value == nil {
			return nil, fmt.Errorf("%s: value is missing", identifier.Command)
		}
		var upd PositionUpdate
		switch identifier.Command {
		case CmdChangeQuantity:
			upd = ChangeQuantity{Value: *temp.Value}
		case CmdChangePriceBuy:
			upd = ChangePriceBuy{Value: *temp.Value}
		case CmdChangeLastPrice:
			upd = ChangeLastPrice{Value: *temp.Value}
		}
		return PositionTransport{ID: identifier.ISIN, Update: upd}, nil

	case CmdReplacePosition:
		var temp jposition
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("%s: %w", identifier.Command, err)
		}
		return Replace(temp.Position()), nil

	default: // CmdDeletePosition
		return Delete(identifier.ISIN), nil
	}
}
