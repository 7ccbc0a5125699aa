// Package session owns the state of one user session: at most one account,
// the section router and the calculators' currency.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finansije-dev/finansije/internal/account"
	"github.com/finansije-dev/finansije/internal/calc"
	"github.com/finansije-dev/finansije/internal/config"
	"github.com/finansije-dev/finansije/internal/model"
	"github.com/finansije-dev/finansije/internal/nav"
)

// ErrNoAccount is returned by account operations before CreateAccount.
var ErrNoAccount = errors.New("no account in session")

// MsgNoAccount is the display text for ErrNoAccount.
const MsgNoAccount = "Prvo kreirajte račun!"

// Session is not safe for concurrent use.
type Session struct {
	id     uuid.UUID
	cfg    *config.Config
	log    *zap.Logger
	router *nav.Router
	acct   *account.Account

	// Now stamps transaction records; tests override it.
	Now func() time.Time
}

// New starts a session. A nil cfg uses config.Default, a nil log discards.
func New(cfg *config.Config, log *zap.Logger) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	return &Session{
		id:     id,
		cfg:    cfg,
		log:    log.With(zap.String("session", id.String())),
		router: nav.New(cfg.Navigation.Sections, cfg.Navigation.DefaultSection),
		Now:    time.Now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Router returns the section router.
func (s *Session) Router() *nav.Router { return s.router }

// CreateAccount opens a new account, replacing any previous one.
func (s *Session) CreateAccount(number, firstName, lastName string, balance decimal.Decimal, pin string) (string, error) {
	a, err := account.New(account.Params{
		Number:    number,
		FirstName: firstName,
		LastName:  lastName,
		Balance:   balance,
		PIN:       pin,
		Currency:  s.cfg.Currency,
		Logger:    s.log,
		Now:       s.Now,
	})
	if err != nil {
		return "", fmt.Errorf("creating account: %w", err)
	}
	if s.acct != nil {
		s.log.Info("account replaced", zap.String("previous", s.acct.Number()))
	}
	s.acct = a
	return fmt.Sprintf("Račun kreiran za %s %s. Stanje: %s %s.",
		a.FirstName(), a.LastName(), a.Balance(), a.Currency()), nil
}

// Account returns the current account or ErrNoAccount.
func (s *Session) Account() (*account.Account, error) {
	if s.acct == nil {
		return nil, ErrNoAccount
	}
	return s.acct, nil
}

// Deposit forwards to the account, filling in the configured description.
func (s *Session) Deposit(amount decimal.Decimal, description string) (string, error) {
	a, err := s.Account()
	if err != nil {
		return "", err
	}
	if description == "" {
		description = s.cfg.Descriptions.Deposit
	}
	return a.Deposit(amount, description), nil
}

// Withdraw forwards to the account, filling in the configured description.
func (s *Session) Withdraw(amount decimal.Decimal, description string) (string, error) {
	a, err := s.Account()
	if err != nil {
		return "", err
	}
	if description == "" {
		description = s.cfg.Descriptions.Withdraw
	}
	return a.Withdraw(amount, description), nil
}

// Lock locks the current account.
func (s *Session) Lock() (string, error) {
	a, err := s.Account()
	if err != nil {
		return "", err
	}
	return a.Lock(), nil
}

// Unlock tries pin against the current account.
func (s *Session) Unlock(pin string) (string, error) {
	a, err := s.Account()
	if err != nil {
		return "", err
	}
	return a.Unlock(pin), nil
}

// ListTransactions returns the rendered history.
func (s *Session) ListTransactions() ([]string, error) {
	a, err := s.Account()
	if err != nil {
		return nil, err
	}
	return a.ListTransactions(), nil
}

// Transactions returns the raw history records.
func (s *Session) Transactions() ([]model.Transaction, error) {
	a, err := s.Account()
	if err != nil {
		return nil, err
	}
	return a.Transactions(), nil
}

// Savings runs the savings calculator with the session currency.
// It does not need an account.
func (s *Session) Savings(mode calc.SavingsMode, in calc.SavingsInput) (calc.Result, error) {
	r, err := calc.Savings(mode, in)
	r.Currency = s.cfg.Currency
	return r, err
}

// Loan runs the loan calculator with the session currency.
func (s *Session) Loan(mode calc.LoanMode, in calc.LoanInput) (calc.Result, error) {
	r, err := calc.Loan(mode, in)
	r.Currency = s.cfg.Currency
	return r, err
}
