package folio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// isinRegex checks for the basic structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// ISIN identifies a position in a Portfolio.
//
// Any string is a valid ISIN as far as the update engine is concerned: two
// ISIN are the same key if and only if their strings are equal. Use Validate
// to check that the value also follows the ISO 6166 format.
type ISIN string

// String implements the fmt.Stringer interface.
func (id ISIN) String() string { return string(id) }

// Validate checks if the ISIN is a validly formatted ISO 6166 identifier,
// including its check digit.
// It returns nil if valid, or a descriptive error if invalid.
func (id ISIN) Validate() error {
	isin := string(id)
	if len(isin) != 12 {
		return fmt.Errorf("invalid length: must be 12 characters, got %d", len(isin))
	}

	if !isinRegex.MatchString(isin) {
		return fmt.Errorf("invalid format: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit")
	}

	// Letters count as two digits: A=10 ... Z=35.
	var numeric strings.Builder
	for _, char := range isin[:11] {
		if char >= 'A' && char <= 'Z' {
			numeric.WriteString(strconv.Itoa(int(char - 'A' + 10)))
		} else {
			numeric.WriteRune(char)
		}
	}

	// Luhn, doubling from the rightmost digit.
	sum := 0
	double := true
	digits := numeric.String()
	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')
		if double {
			digit *= 2
		}
		sum += digit/10 + digit%10
		double = !double
	}

	expected := (10 - sum%10) % 10
	actual := int(isin[11] - '0')
	if expected != actual {
		return fmt.Errorf("invalid check digit: expected %d, got %d", expected, actual)
	}
	return nil
}
