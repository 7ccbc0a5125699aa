package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind tags a transaction record.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
	KindNotice  Kind = "notice"
	KindAttempt Kind = "attempt"
)

// Transaction is one immutable entry in an account's history.
type Transaction struct {
	Seq         int // 1-based, insertion order
	Kind        Kind
	Amount      decimal.Decimal // zero for notice and attempt records
	Description string
	Balance     decimal.Decimal // resulting balance, income and expense only
	Time        time.Time
}

// MovesMoney reports whether the record changed the balance.
func (t Transaction) MovesMoney() bool {
	return t.Kind == KindIncome || t.Kind == KindExpense
}

// Signed returns the amount with the sign of its effect on the balance.
// "expense 200" -> -200
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}
	if t.Kind == KindIncome {
		return t.Amount
	}
	return decimal.Zero
}
