package folio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeTransports(t *testing.T) {
	jsonlStream := `
{"command":"replace-position","isin":"US0378331005","quantity":10,"purchasePrice":150.5,"lastPrice":160}
{"command":"change-quantity","isin":"US0378331005","value":12}

{"command":"change-price-buy","isin":"US0378331005","value":149}
{"command":"change-last-price","isin":"US0378331005","value":161.25}
{"command":"delete-position","isin":"US38259P5089"}
`
	transports, err := DecodeTransports(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeTransports() returned an unexpected error: %v", err)
	}

	want := []Transport{
		Replace(pos(AAPL, 10, 150.5, 160)),
		SetQuantity(AAPL, P(12)),
		SetPriceBuy(AAPL, P(149)),
		SetLastPrice(AAPL, P(161.25)),
		Delete(GOOG),
	}
	if diff := cmp.Diff(want, transports, cmp.Comparer(PDecimal.Equal)); diff != "" {
		t.Errorf("DecodeTransports() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTransports_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		wantErr error // optional sentinel
		wantMsg string
	}{
		{name: "not json", line: `{"command":`, wantMsg: "line 1"},
		{name: "missing command", line: `{"isin":"US0378331005"}`, wantMsg: "command is missing"},
		{name: "unknown command", line: `{"command":"buy","isin":"US0378331005"}`, wantErr: ErrUnknownUpdate},
		{name: "missing isin", line: `{"command":"delete-position"}`, wantMsg: "isin is missing"},
		{name: "missing value", line: `{"command":"change-quantity","isin":"US0378331005"}`, wantMsg: "value is missing"},
		{name: "negative value", line: `{"command":"change-last-price","isin":"US0378331005","value":-1}`, wantErr: ErrInvalidValue},
		{name: "negative quantity", line: `{"command":"replace-position","isin":"US0378331005","quantity":-1}`, wantErr: ErrInvalidValue},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTransports(strings.NewReader(tc.line))
			if err == nil {
				t.Fatalf("DecodeTransports(%q) expected an error", tc.line)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("DecodeTransports(%q) error = %v, want %v", tc.line, err, tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("DecodeTransports(%q) error = %q, want it to contain %q", tc.line, err, tc.wantMsg)
			}
		})
	}
}

func TestEncodeTransports(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeTransports(&buf,
		Replace(pos(AAPL, 10, 150.5, 160)),
		SetQuantity(AAPL, P(12)),
		SetPriceBuy(AAPL, P(149)),
		SetLastPrice(AAPL, P(161.25)),
		Delete(GOOG),
	)
	if err != nil {
		t.Fatalf("EncodeTransports() returned an unexpected error: %v", err)
	}
	want := `{"command":"replace-position","isin":"US0378331005","quantity":10,"purchasePrice":150.5,"lastPrice":160}
{"command":"change-quantity","isin":"US0378331005","value":12}
{"command":"change-price-buy","isin":"US0378331005","value":149}
{"command":"change-last-price","isin":"US0378331005","value":161.25}
{"command":"delete-position","isin":"US38259P5089"}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeTransports() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeTransport_Unknown(t *testing.T) {
	for name, tr := range map[string]Transport{
		"nil":              nil,
		"position update":  PositionTransport{ID: AAPL, Update: unknownPositionUpdate{}},
		"portfolio update": PortfolioTransport{Update: unknownPortfolioUpdate{}},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeTransport(&buf, tr); !errors.Is(err, ErrUnknownUpdate) {
				t.Errorf("EncodeTransport() error = %v, want ErrUnknownUpdate", err)
			}
			if buf.Len() != 0 {
				t.Errorf("EncodeTransport() wrote %q on failure", buf.String())
			}
		})
	}
}
