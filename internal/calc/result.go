// Package calc implements the savings and loan formula dispatchers. Each mode
// solves for one unknown given the others. Inputs are not range-checked:
// division by zero or a negative logarithm yields NaN or ±Inf, which is
// returned and displayed as is.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownMode is returned for an option code outside a calculator's range.
var ErrUnknownMode = errors.New("unknown calculator mode")

// Unit is the display suffix of a result.
type Unit int

const (
	UnitNone Unit = iota
	UnitCurrency
	UnitPercent
)

// Result is a computed value with its display label.
type Result struct {
	Label    string
	Value    float64
	Unit     Unit
	Currency string // used when Unit is UnitCurrency, defaults to "RSD"
}

// String renders the result to two decimals.
//
//	Konačno stanje: 1210.00 RSD.
//	Kamata: 10.00%.
//	Broj godina: 2.00.
func (r Result) String() string {
	v := FormatFixed(r.Value)
	switch r.Unit {
	case UnitCurrency:
		cur := r.Currency
		if cur == "" {
			cur = "RSD"
		}
		return fmt.Sprintf("%s: %s %s.", r.Label, v, cur)
	case UnitPercent:
		return fmt.Sprintf("%s: %s%%.", r.Label, v)
	default:
		return fmt.Sprintf("%s: %s.", r.Label, v)
	}
}

// FormatFixed formats v with two decimals. Non-finite values print as
// NaN, Infinity and -Infinity.
func FormatFixed(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func parseMode(code string, highest int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || n < 1 || n > highest {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, code)
	}
	return n, nil
}
