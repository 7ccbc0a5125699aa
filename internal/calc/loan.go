package calc

import "fmt"

// LoanMode selects the unknown of the simple-interest loan relations.
// These are fixed approximations, not amortization schedules.
type LoanMode int

const (
	LoanAmount      LoanMode = 1
	LoanPayment     LoanMode = 2
	LoanAnnualRate  LoanMode = 3
	LoanMonthlyRate LoanMode = 4
	LoanYears       LoanMode = 5
)

// ParseLoanMode parses an option code "1".."5".
func ParseLoanMode(code string) (LoanMode, error) {
	n, err := parseMode(code, int(LoanYears))
	return LoanMode(n), err
}

// LoanInput carries all quantities; the one being solved for is ignored.
type LoanInput struct {
	Amount  float64
	Payment float64 // monthly
	Rate    float64 // annual, percent
	Years   float64
}

// Loan evaluates the formula selected by mode.
func Loan(mode LoanMode, in LoanInput) (Result, error) {
	months := in.Years * 12
	switch mode {
	case LoanAmount:
		return Result{Label: "Iznos kredita", Unit: UnitCurrency,
			Value: (in.Payment * months) / (1 + (in.Rate / 100 * in.Years))}, nil
	case LoanPayment:
		return Result{Label: "Mesečna rata", Unit: UnitCurrency,
			Value: (in.Amount * (1 + (in.Rate / 100 * in.Years))) / months}, nil
	case LoanAnnualRate:
		return Result{Label: "Godišnja kamata", Unit: UnitPercent,
			Value: ((in.Payment*months)/in.Amount - 1) * (100 / in.Years)}, nil
	case LoanMonthlyRate:
		return Result{Label: "Mesečna kamata", Unit: UnitPercent,
			Value: ((in.Payment*months)/in.Amount - 1) * (100 / months)}, nil
	case LoanYears:
		// Uses the single-year factor (1 + rate/100), not rate*years.
		return Result{Label: "Broj godina", Unit: UnitNone,
			Value: ((in.Amount * (1 + (in.Rate / 100))) / in.Payment) / 12}, nil
	default:
		return Result{}, fmt.Errorf("%w: loan %d", ErrUnknownMode, mode)
	}
}
