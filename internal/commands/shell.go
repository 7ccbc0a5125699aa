package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finansije-dev/finansije/internal/account"
	"github.com/finansije-dev/finansije/internal/calc"
	"github.com/finansije-dev/finansije/internal/render"
	"github.com/finansije-dev/finansije/internal/session"
)

const shellHelp = `Komande (vrednosti sa razmakom pod navodnicima, npr. "Ana Marija"):
  create <broj> <ime> <prezime> <stanje> <pin>
  deposit <iznos> [opis...]
  withdraw <iznos> [opis...]
  lock
  unlock <pin>
  balance
  history
  export
  goto <#sekcija>
  savings <opcija> <glavnica> <kamata> <godine> <konacno>
  loan <opcija> <iznos> <rata> <kamata> <godine>
  help
  quit`

func newShellCommand(a *app) *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run an interactive session with one account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh := &shell{
				sess:   session.New(a.cfg, a.log),
				out:    cmd.OutOrStdout(),
				log:    a.log,
				prompt: prompt,
			}
			return sh.run(cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "finansije> ", "prompt printed before each command")

	return cmd
}

type shell struct {
	sess   *session.Session
	out    io.Writer
	log    *zap.Logger
	prompt string
}

var errQuit = errors.New("quit")

func (sh *shell) run(in io.Reader) error {
	sh.log.Debug("shell started", zap.String("session", sh.sess.ID().String()))
	sc := bufio.NewScanner(in)
	for {
		if sh.prompt != "" {
			fmt.Fprint(sh.out, sh.prompt)
		}
		if !sc.Scan() {
			break
		}
		fields := splitFields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := sh.exec(fields[0], fields[1:]); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func (sh *shell) exec(name string, args []string) error {
	switch strings.ToLower(name) {
	case "create":
		sh.create(args)
	case "deposit":
		sh.money(args, sh.sess.Deposit)
	case "withdraw":
		sh.money(args, sh.sess.Withdraw)
	case "lock":
		sh.status(sh.sess.Lock())
	case "unlock":
		sh.status(sh.sess.Unlock(arg(args, 0)))
	case "balance":
		sh.balance()
	case "history":
		sh.history()
	case "export":
		return sh.export()
	case "goto":
		printSections(sh.out, sh.sess.Router().Navigate(arg(args, 0)))
	case "savings":
		sh.savings(args)
	case "loan":
		sh.loan(args)
	case "help":
		fmt.Fprintln(sh.out, shellHelp)
	case "quit", "exit":
		return errQuit
	default:
		fmt.Fprintf(sh.out, "Nepoznata komanda: %s\n", name)
	}
	return nil
}

func (sh *shell) create(args []string) {
	// Unparsable or out-of-range opening balance counts as zero.
	balance, ok := parseAmount(arg(args, 3))
	if !ok {
		balance = decimal.Zero
	}
	msg, err := sh.sess.CreateAccount(arg(args, 0), arg(args, 1), arg(args, 2), balance, arg(args, 4))
	if err != nil {
		fmt.Fprintln(sh.out, account.Message(err))
		return
	}
	fmt.Fprintln(sh.out, msg)
}

func (sh *shell) money(args []string, op func(decimal.Decimal, string) (string, error)) {
	if _, err := sh.sess.Account(); err != nil {
		sh.status("", err)
		return
	}
	amount, ok := parseAmount(arg(args, 0))
	if !ok {
		fmt.Fprintln(sh.out, account.MsgInvalidAmount)
		return
	}
	var description string
	if len(args) > 1 {
		description = strings.Join(args[1:], " ")
	}
	sh.status(op(amount, description))
}

func (sh *shell) status(msg string, err error) {
	if errors.Is(err, session.ErrNoAccount) {
		fmt.Fprintln(sh.out, session.MsgNoAccount)
		return
	}
	fmt.Fprintln(sh.out, msg)
}

func (sh *shell) balance() {
	acct, err := sh.sess.Account()
	if err != nil {
		sh.status("", err)
		return
	}
	state := "otključan"
	if acct.Locked() {
		state = "zaključan"
	}
	fmt.Fprintf(sh.out, "%s (%s): %s %s, račun %s.\n",
		acct.Holder(), acct.Number(), acct.Balance(), acct.Currency(), state)
}

func (sh *shell) history() {
	lines, err := sh.sess.ListTransactions()
	if err != nil {
		sh.status("", err)
		return
	}
	for _, l := range lines {
		fmt.Fprintln(sh.out, l)
	}
}

func (sh *shell) export() error {
	txs, err := sh.sess.Transactions()
	if err != nil {
		sh.status("", err)
		return nil
	}
	if err := render.WriteCSV(sh.out, txs); err != nil {
		return fmt.Errorf("exporting history: %w", err)
	}
	return nil
}

func (sh *shell) savings(args []string) {
	mode, err := calc.ParseSavingsMode(arg(args, 0))
	if err != nil {
		fmt.Fprintln(sh.out, "Nepoznata opcija štednje.")
		return
	}
	r, err := sh.sess.Savings(mode, calc.SavingsInput{
		Principal: parseNumber(arg(args, 1)),
		Rate:      parseNumber(arg(args, 2)),
		Years:     parseNumber(arg(args, 3)),
		Final:     parseNumber(arg(args, 4)),
	})
	if err != nil {
		fmt.Fprintln(sh.out, "Nepoznata opcija štednje.")
		return
	}
	fmt.Fprintln(sh.out, r)
}

func (sh *shell) loan(args []string) {
	mode, err := calc.ParseLoanMode(arg(args, 0))
	if err != nil {
		fmt.Fprintln(sh.out, "Nepoznata opcija kredita.")
		return
	}
	r, err := sh.sess.Loan(mode, calc.LoanInput{
		Amount:  parseNumber(arg(args, 1)),
		Payment: parseNumber(arg(args, 2)),
		Rate:    parseNumber(arg(args, 3)),
		Years:   parseNumber(arg(args, 4)),
	})
	if err != nil {
		fmt.Fprintln(sh.out, "Nepoznata opcija kredita.")
		return
	}
	fmt.Fprintln(sh.out, r)
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// maxExponent bounds the decimal exponent of an amount. Arithmetic between
// decimals rescales to the smaller exponent, so an exponent like 1e-999999999
// would build an enormous big.Int.
const maxExponent = 308

// parseAmount reads a money amount. It rejects text that is not a number,
// that overflows a float64, or whose exponent is out of range.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp < -maxExponent || exp > maxExponent {
		return decimal.Zero, false
	}
	return d, true
}

// splitFields splits a command line on whitespace. Double quotes group words
// into one field and are removed.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuote, inField := false, false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inField = true
		case unicode.IsSpace(r) && !inQuote:
			if inField {
				fields = append(fields, cur.String())
				cur.Reset()
				inField = false
			}
		default:
			cur.WriteRune(r)
			inField = true
		}
	}
	if inField {
		fields = append(fields, cur.String())
	}
	return fields
}
