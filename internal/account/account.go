// Package account holds the single in-memory account of a session: its
// balance, PIN lock and append-only history.
//
// Business outcomes (locked account, bad amount, insufficient funds, wrong
// PIN) are returned as status strings. Go errors are reserved for invalid
// construction input.
package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finansije-dev/finansije/internal/model"
	"github.com/finansije-dev/finansije/internal/render"
)

// Params holds the fields needed to open an account.
type Params struct {
	Number    string
	FirstName string
	LastName  string
	Balance   decimal.Decimal
	PIN       string
	Currency  string // defaults to "RSD"

	Logger *zap.Logger
	Now    func() time.Time
}

// Account is not safe for concurrent use; a session has exactly one actor.
type Account struct {
	number    string
	firstName string
	lastName  string
	pin       string
	currency  string

	balance decimal.Decimal
	locked  bool
	history []model.Transaction

	log *zap.Logger
	now func() time.Time
}

// New validates params and opens an unlocked account with an empty history.
func New(p Params) (*Account, error) {
	p.Number = strings.TrimSpace(p.Number)
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.PIN = strings.TrimSpace(p.PIN)

	if p.Number == "" || p.FirstName == "" || p.LastName == "" || p.PIN == "" {
		return nil, ErrMissingField
	}
	if !ValidPIN(p.PIN) {
		return nil, ErrBadPIN
	}
	if p.Currency == "" {
		p.Currency = "RSD"
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Now == nil {
		p.Now = time.Now
	}

	a := &Account{
		number:    p.Number,
		firstName: p.FirstName,
		lastName:  p.LastName,
		pin:       p.PIN,
		currency:  p.Currency,
		balance:   p.Balance,
		log:       p.Logger.With(zap.String("account", p.Number)),
		now:       p.Now,
	}
	a.log.Info("account opened", zap.String("balance", a.balance.String()))
	return a, nil
}

// ValidPIN reports whether pin is exactly four ASCII digits.
func ValidPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

// Number returns the account number.
func (a *Account) Number() string { return a.number }

// FirstName returns the holder's first name.
func (a *Account) FirstName() string { return a.firstName }

// LastName returns the holder's last name.
func (a *Account) LastName() string { return a.lastName }

// Currency returns the label used in messages, e.g. "RSD".
func (a *Account) Currency() string { return a.currency }

// Holder returns "first last".
func (a *Account) Holder() string { return a.firstName + " " + a.lastName }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Locked reports whether deposits and withdrawals are blocked.
func (a *Account) Locked() bool { return a.locked }

// Deposit adds amount to the balance and records an income entry.
func (a *Account) Deposit(amount decimal.Decimal, description string) string {
	if a.locked {
		a.log.Debug("deposit rejected", zap.String("reason", "locked"))
		return MsgLocked
	}
	if !amount.IsPositive() {
		a.log.Debug("deposit rejected", zap.String("reason", "amount"), zap.String("amount", amount.String()))
		return MsgInvalidAmount
	}
	if description == "" {
		description = DefaultIncome
	}

	a.balance = a.balance.Add(amount)
	a.record(model.KindIncome, amount, description)
	a.log.Info("deposit", zap.String("amount", amount.String()), zap.String("balance", a.balance.String()))

	return fmt.Sprintf("Uspešno dodat prihod: +%s %s. Novo stanje: %s %s.", amount, a.currency, a.balance, a.currency)
}

// Withdraw subtracts amount from the balance and records an expense entry.
// The balance never goes below zero through a withdrawal.
func (a *Account) Withdraw(amount decimal.Decimal, description string) string {
	if a.locked {
		a.log.Debug("withdraw rejected", zap.String("reason", "locked"))
		return MsgLocked
	}
	if !amount.IsPositive() {
		a.log.Debug("withdraw rejected", zap.String("reason", "amount"), zap.String("amount", amount.String()))
		return MsgInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		a.log.Debug("withdraw rejected", zap.String("reason", "funds"), zap.String("amount", amount.String()))
		return MsgInsufficient
	}
	if description == "" {
		description = DefaultSpend
	}

	a.balance = a.balance.Sub(amount)
	a.record(model.KindExpense, amount, description)
	a.log.Info("withdraw", zap.String("amount", amount.String()), zap.String("balance", a.balance.String()))

	return fmt.Sprintf("Uspešno skinuto %s %s. Novo stanje: %s %s.", amount, a.currency, a.balance, a.currency)
}

// Lock blocks deposits and withdrawals until Unlock succeeds.
func (a *Account) Lock() string {
	if a.locked {
		return MsgAlreadyLocked
	}
	a.locked = true
	a.record(model.KindNotice, decimal.Zero, NoteLocked)
	a.log.Info("locked")
	return MsgLockOK
}

// Unlock compares attempt against the stored PIN. Every failed attempt is
// recorded; there is no lockout.
func (a *Account) Unlock(attempt string) string {
	if !a.locked {
		return MsgAlreadyUnlocked
	}
	if attempt != a.pin {
		a.record(model.KindAttempt, decimal.Zero, NoteBadPIN)
		a.log.Warn("unlock failed")
		return MsgWrongPIN
	}
	a.locked = false
	a.record(model.KindNotice, decimal.Zero, NoteUnlocked)
	a.log.Info("unlocked")
	return MsgUnlockOK
}

// Transactions returns a copy of the history in insertion order.
func (a *Account) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// ListTransactions returns the rendered history, or a single placeholder
// line when there is none.
func (a *Account) ListTransactions() []string {
	return render.Lines(a.history, a.currency)
}

func (a *Account) record(kind model.Kind, amount decimal.Decimal, description string) {
	tx := model.Transaction{
		Seq:         len(a.history) + 1,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Time:        a.now(),
	}
	if tx.MovesMoney() {
		tx.Balance = a.balance
	}
	a.history = append(a.history, tx)
}
