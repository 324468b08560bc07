package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// PDecimal is a non-negative decimal number.
//
// The zero value is a valid zero. Every other value must be built with
// NewPDecimal or ParsePDecimal, which refuse negative numbers.
type PDecimal struct {
	value decimal.Decimal
}

// NewPDecimal returns value as a PDecimal, or ErrInvalidValue if it is negative.
// The value is kept as is: no rounding, no scale change.
func NewPDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) (PDecimal, error) {
	d := newDecimal(value)
	if d.IsNegative() {
		return PDecimal{}, fmt.Errorf("%w: %s is negative", ErrInvalidValue, d)
	}
	return PDecimal{value: d}, nil
}

// MustPDecimal is like NewPDecimal but panics on negative values.
func MustPDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) PDecimal {
	p, err := NewPDecimal(value)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePDecimal parses a decimal string like "12.5".
func ParsePDecimal(s string) (PDecimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return PDecimal{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidValue, s)
	}
	return NewPDecimal(d)
}

// Decimal returns the underlying decimal value.
func (p PDecimal) Decimal() decimal.Decimal { return p.value }

func (p PDecimal) Equal(q PDecimal) bool { return p.value.Equal(q.value) }
func (p PDecimal) Cmp(q PDecimal) int    { return p.value.Cmp(q.value) }
func (p PDecimal) IsZero() bool          { return p.value.IsZero() }
func (p PDecimal) String() string        { return p.value.String() }

// Add and Mul are closed over non-negative numbers.
func (p PDecimal) Add(q PDecimal) PDecimal { return PDecimal{value: p.value.Add(q.value)} }
func (p PDecimal) Mul(q PDecimal) PDecimal { return PDecimal{value: p.value.Mul(q.value)} }

// MarshalJSON implements the json.Marshaler interface.
func (p PDecimal) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface. Negative numbers
// are rejected with ErrInvalidValue.
func (p *PDecimal) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	v, err := NewPDecimal(d)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
