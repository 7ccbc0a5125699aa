package commands

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finansije-dev/finansije/internal/calc"
	"github.com/finansije-dev/finansije/internal/session"
)

func newSavingsCommand(a *app) *cobra.Command {
	var mode string
	var in calc.SavingsInput

	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Solve compound savings for one unknown",
		Long: `Modes:
  1  final amount from principal, rate, years
  2  principal from final amount, rate, years
  3  annual rate from principal, final amount, years
  4  years from principal, final amount, rate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := calc.ParseSavingsMode(mode)
			if err != nil {
				return err
			}
			r, err := session.New(a.cfg, a.log).Savings(m, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "1", "option code 1-4")
	cmd.Flags().Float64Var(&in.Principal, "principal", 0, "starting principal")
	cmd.Flags().Float64Var(&in.Rate, "rate", 0, "annual interest rate, percent")
	cmd.Flags().Float64Var(&in.Years, "years", 0, "number of years")
	cmd.Flags().Float64Var(&in.Final, "final", 0, "final amount")

	return cmd
}

func newLoanCommand(a *app) *cobra.Command {
	var mode string
	var in calc.LoanInput

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Solve simple-interest loan terms for one unknown",
		Long: `Modes:
  1  loan amount from payment, rate, years
  2  monthly payment from amount, rate, years
  3  annual rate from amount, payment, years
  4  monthly rate from amount, payment, years
  5  years from amount, payment, rate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := calc.ParseLoanMode(mode)
			if err != nil {
				return err
			}
			r, err := session.New(a.cfg, a.log).Loan(m, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "2", "option code 1-5")
	cmd.Flags().Float64Var(&in.Amount, "amount", 0, "loan amount")
	cmd.Flags().Float64Var(&in.Payment, "payment", 0, "monthly payment")
	cmd.Flags().Float64Var(&in.Rate, "rate", 0, "annual interest rate, percent")
	cmd.Flags().Float64Var(&in.Years, "years", 0, "term in years")

	return cmd
}

// parseNumber reads a calculator operand. Unparsable input is NaN so that it
// propagates through the formula instead of failing.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
