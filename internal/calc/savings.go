package calc

import (
	"fmt"
	"math"
)

// SavingsMode selects the unknown in final = principal * (1 + rate/100)^years.
type SavingsMode int

const (
	SavingsFinal     SavingsMode = 1
	SavingsPrincipal SavingsMode = 2
	SavingsRate      SavingsMode = 3
	SavingsYears     SavingsMode = 4
)

// ParseSavingsMode parses an option code "1".."4".
func ParseSavingsMode(code string) (SavingsMode, error) {
	n, err := parseMode(code, int(SavingsYears))
	return SavingsMode(n), err
}

// SavingsInput carries all four quantities; the one being solved for is ignored.
type SavingsInput struct {
	Principal float64
	Rate      float64 // annual, percent
	Years     float64
	Final     float64
}

// Savings solves the compound-interest equation for the unknown selected by mode.
func Savings(mode SavingsMode, in SavingsInput) (Result, error) {
	growth := 1 + in.Rate/100
	switch mode {
	case SavingsFinal:
		return Result{Label: "Konačno stanje", Unit: UnitCurrency,
			Value: in.Principal * math.Pow(growth, in.Years)}, nil
	case SavingsPrincipal:
		return Result{Label: "Glavnica", Unit: UnitCurrency,
			Value: in.Final / math.Pow(growth, in.Years)}, nil
	case SavingsRate:
		return Result{Label: "Kamata", Unit: UnitPercent,
			Value: (math.Pow(in.Final/in.Principal, 1/in.Years) - 1) * 100}, nil
	case SavingsYears:
		return Result{Label: "Broj godina", Unit: UnitNone,
			Value: math.Log(in.Final/in.Principal) / math.Log(growth)}, nil
	default:
		return Result{}, fmt.Errorf("%w: savings %d", ErrUnknownMode, mode)
	}
}
