// Package currency models payment currencies and their subunit conversion
// factors. Wire amounts are always integers in subunits (satang, cent, ...),
// so every Currency carries the factor needed to convert to and from major
// units.
package currency

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	xcurrency "golang.org/x/text/currency"
)

// Factor for currencies whose smallest denomination is 1/100 of the major unit.
const centBasedFactor = 100

// Factor for currencies whose smallest denomination equals the major unit.
const identicalBasedFactor = 1

// Currency is an immutable currency value: an uppercase ISO-4217 code plus the
// number of subunits per major unit.
type Currency struct {
	code   string
	factor int64
}

var wellKnownFactors = map[string]int64{
	"THB": centBasedFactor,
	"JPY": identicalBasedFactor,
	"IDR": centBasedFactor,
	"SGD": centBasedFactor,
	"USD": centBasedFactor,
	"GBP": centBasedFactor,
	"EUR": centBasedFactor,
	"MYR": centBasedFactor,
	"AUD": centBasedFactor,
	"CHF": centBasedFactor,
	"CNY": centBasedFactor,
	"DKK": centBasedFactor,
	"HKD": centBasedFactor,
}

// Well-known currencies.
var (
	THB = Currency{code: "THB", factor: centBasedFactor}
	JPY = Currency{code: "JPY", factor: identicalBasedFactor}
	IDR = Currency{code: "IDR", factor: centBasedFactor}
	SGD = Currency{code: "SGD", factor: centBasedFactor}
	USD = Currency{code: "USD", factor: centBasedFactor}
	GBP = Currency{code: "GBP", factor: centBasedFactor}
	EUR = Currency{code: "EUR", factor: centBasedFactor}
	MYR = Currency{code: "MYR", factor: centBasedFactor}
	AUD = Currency{code: "AUD", factor: centBasedFactor}
	CHF = Currency{code: "CHF", factor: centBasedFactor}
	CNY = Currency{code: "CNY", factor: centBasedFactor}
	DKK = Currency{code: "DKK", factor: centBasedFactor}
	HKD = Currency{code: "HKD", factor: centBasedFactor}
)

// New builds a Currency from a wire code. Codes are matched case-insensitively
// and normalized to uppercase. Unrecognized codes resolve their factor from the
// ISO minor-unit digit count; codes unknown to the ISO table get factor 1.
// Construction never fails.
func New(code string) Currency {
	upper := strings.ToUpper(code)
	if factor, ok := wellKnownFactors[upper]; ok {
		return Currency{code: upper, factor: factor}
	}
	return Currency{code: upper, factor: isoFactor(upper)}
}

// Custom builds a Currency with an explicit subunit factor. Factors below 1 are
// clamped to 1 so the conversion arithmetic stays total.
func Custom(code string, factor int64) Currency {
	if factor < 1 {
		factor = 1
	}
	return Currency{code: strings.ToUpper(code), factor: factor}
}

func isoFactor(code string) int64 {
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		return 1
	}
	scale, _ := xcurrency.Standard.Rounding(unit)
	return int64(math.Pow10(scale))
}

// Code returns the uppercase ISO code.
func (c Currency) Code() string { return c.code }

// Factor returns the number of subunits per major unit. Always positive.
func (c Currency) Factor() int64 {
	if c.factor < 1 {
		// zero value of Currency
		return 1
	}
	return c.factor
}

// ToSubunit converts a major-unit amount to wire subunits, rounding to the
// nearest subunit. Amounts with more precision than the factor supports lose
// the excess precision.
func (c Currency) ToSubunit(value float64) int64 {
	return int64(math.Round(value * float64(c.Factor())))
}

// ToUnit converts a wire subunit amount to major units.
func (c Currency) ToUnit(value int64) float64 {
	return float64(value) / float64(c.Factor())
}

// Equal reports whether two currencies share the same code and factor.
func (c Currency) Equal(other Currency) bool {
	return c.code == other.code && c.Factor() == other.Factor()
}

func (c Currency) String() string { return c.code }

// MarshalJSON encodes the uppercase ISO code.
func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.code)
}

// UnmarshalJSON decodes a currency from its wire code, case-insensitively.
func (c *Currency) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("currency: decode code: %w", err)
	}
	*c = New(code)
	return nil
}
