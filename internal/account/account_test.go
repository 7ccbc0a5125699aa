package account

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finansije-dev/finansije/internal/model"
)

var fixedNow = time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

func newAccount(t *testing.T, balance int64) *Account {
	t.Helper()
	a, err := New(Params{
		Number:    "160-0000001-11",
		FirstName: "Marko",
		LastName:  "Marković",
		Balance:   decimal.NewFromInt(balance),
		PIN:       "1234",
		Now:       func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return a
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNew(t *testing.T) {
	a := newAccount(t, 1000)
	assert.Equal(t, "160-0000001-11", a.Number())
	assert.Equal(t, "Marko Marković", a.Holder())
	assert.Equal(t, "RSD", a.Currency())
	assert.True(t, a.Balance().Equal(dec("1000")))
	assert.False(t, a.Locked())
	assert.Empty(t, a.Transactions())
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want error
	}{
		{"missing number", Params{FirstName: "A", LastName: "B", PIN: "1234"}, ErrMissingField},
		{"missing first", Params{Number: "1", LastName: "B", PIN: "1234"}, ErrMissingField},
		{"blank last", Params{Number: "1", FirstName: "A", LastName: "  ", PIN: "1234"}, ErrMissingField},
		{"missing pin", Params{Number: "1", FirstName: "A", LastName: "B"}, ErrMissingField},
		{"short pin", Params{Number: "1", FirstName: "A", LastName: "B", PIN: "123"}, ErrBadPIN},
		{"long pin", Params{Number: "1", FirstName: "A", LastName: "B", PIN: "12345"}, ErrBadPIN},
		{"letters", Params{Number: "1", FirstName: "A", LastName: "B", PIN: "12a4"}, ErrBadPIN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.p)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, MsgMissingField, Message(ErrMissingField))
	assert.Equal(t, MsgBadPIN, Message(ErrBadPIN))
}

func TestDeposit(t *testing.T) {
	a := newAccount(t, 1000)

	msg := a.Deposit(dec("500"), "Plata")
	assert.Equal(t, "Uspešno dodat prihod: +500 RSD. Novo stanje: 1500 RSD.", msg)
	assert.True(t, a.Balance().Equal(dec("1500")))

	txs := a.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, model.KindIncome, txs[0].Kind)
	assert.Equal(t, 1, txs[0].Seq)
	assert.Equal(t, "Plata", txs[0].Description)
	assert.True(t, txs[0].Amount.Equal(dec("500")))
	assert.True(t, txs[0].Balance.Equal(dec("1500")))
	assert.Equal(t, fixedNow, txs[0].Time)
}

func TestDepositDefaultDescription(t *testing.T) {
	a := newAccount(t, 0)
	a.Deposit(dec("10"), "")
	assert.Equal(t, DefaultIncome, a.Transactions()[0].Description)
}

func TestDepositInvalidAmount(t *testing.T) {
	a := newAccount(t, 100)
	for _, amt := range []string{"0", "-5"} {
		assert.Equal(t, MsgInvalidAmount, a.Deposit(dec(amt), ""))
	}
	assert.True(t, a.Balance().Equal(dec("100")))
	assert.Empty(t, a.Transactions())
}

func TestWithdraw(t *testing.T) {
	a := newAccount(t, 1000)

	msg := a.Withdraw(dec("250.5"), "")
	assert.Equal(t, "Uspešno skinuto 250.5 RSD. Novo stanje: 749.5 RSD.", msg)
	assert.True(t, a.Balance().Equal(dec("749.5")))

	txs := a.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, model.KindExpense, txs[0].Kind)
	assert.Equal(t, DefaultSpend, txs[0].Description)
	assert.True(t, txs[0].Balance.Equal(dec("749.5")))
}

func TestWithdrawWholeBalance(t *testing.T) {
	a := newAccount(t, 300)
	a.Withdraw(dec("300"), "")
	assert.True(t, a.Balance().IsZero())
}

func TestWithdrawInsufficient(t *testing.T) {
	a := newAccount(t, 1000)
	for i := 0; i < 3; i++ {
		assert.Equal(t, MsgInsufficient, a.Withdraw(dec("1000.01"), ""))
	}
	assert.True(t, a.Balance().Equal(dec("1000")))
	assert.Empty(t, a.Transactions())
}

func TestWithdrawInvalidAmount(t *testing.T) {
	a := newAccount(t, 100)
	assert.Equal(t, MsgInvalidAmount, a.Withdraw(dec("0"), ""))
	assert.Equal(t, MsgInvalidAmount, a.Withdraw(dec("-1"), ""))
	assert.Empty(t, a.Transactions())
}

func TestDepositWithdrawRoundTrip(t *testing.T) {
	for _, amt := range []string{"0.01", "1", "99.99", "1000000"} {
		a := newAccount(t, 250)
		before := a.Balance()
		a.Deposit(dec(amt), "")
		a.Withdraw(dec(amt), "")
		assert.True(t, before.Equal(a.Balance()), "amount %s", amt)
	}
}

func TestLock(t *testing.T) {
	a := newAccount(t, 100)

	assert.Equal(t, MsgLockOK, a.Lock())
	assert.True(t, a.Locked())
	assert.Equal(t, MsgAlreadyLocked, a.Lock())

	txs := a.Transactions()
	require.Len(t, txs, 1, "second lock records nothing")
	assert.Equal(t, model.KindNotice, txs[0].Kind)
	assert.Equal(t, NoteLocked, txs[0].Description)
}

func TestLockedBlocksMoney(t *testing.T) {
	a := newAccount(t, 100)
	a.Lock()

	assert.Equal(t, MsgLocked, a.Deposit(dec("50"), ""))
	assert.Equal(t, MsgLocked, a.Withdraw(dec("50"), ""))
	// Locked takes priority over amount checks.
	assert.Equal(t, MsgLocked, a.Deposit(dec("-1"), ""))
	assert.Equal(t, MsgLocked, a.Withdraw(dec("5000"), ""))

	assert.True(t, a.Balance().Equal(dec("100")))
	assert.Len(t, a.Transactions(), 1)
}

func TestUnlockWhenUnlocked(t *testing.T) {
	a := newAccount(t, 100)
	assert.Equal(t, MsgAlreadyUnlocked, a.Unlock("1234"))
	assert.Empty(t, a.Transactions())
}

func TestUnlockWrongPIN(t *testing.T) {
	a := newAccount(t, 100)
	a.Lock()

	for i := 0; i < 5; i++ {
		assert.Equal(t, MsgWrongPIN, a.Unlock("0000"))
		assert.True(t, a.Locked())
		require.Len(t, a.Transactions(), 2+i, "exactly one attempt record per failure")
	}

	last := a.Transactions()[len(a.Transactions())-1]
	assert.Equal(t, model.KindAttempt, last.Kind)
	assert.Equal(t, NoteBadPIN, last.Description)
	assert.NotContains(t, last.Description, "0000")
	assert.NotContains(t, last.Description, "1234")
}

func TestUnlockExactMatch(t *testing.T) {
	a := newAccount(t, 100)
	a.Lock()

	assert.Equal(t, MsgWrongPIN, a.Unlock(" 1234"))
	assert.Equal(t, MsgWrongPIN, a.Unlock(""))
	assert.Equal(t, MsgUnlockOK, a.Unlock("1234"))
	assert.False(t, a.Locked())

	last := a.Transactions()[len(a.Transactions())-1]
	assert.Equal(t, model.KindNotice, last.Kind)
	assert.Equal(t, NoteUnlocked, last.Description)
}

func TestTransactionsIsCopy(t *testing.T) {
	a := newAccount(t, 100)
	a.Deposit(dec("1"), "x")

	txs := a.Transactions()
	txs[0].Description = "changed"
	assert.Equal(t, "x", a.Transactions()[0].Description)
}

func TestListTransactions(t *testing.T) {
	a := newAccount(t, 1000)
	assert.Equal(t, []string{"Nema transakcija."}, a.ListTransactions())

	a.Deposit(dec("500"), "Uplata")
	a.Lock()
	assert.Equal(t, []string{
		"[PRIHOD] +500 RSD | Uplata | Novo stanje: 1500 RSD",
		"[OBAVEŠTENJE] Račun zaključan.",
	}, a.ListTransactions())

	assert.Len(t, a.Transactions(), 2, "listing does not mutate")
}

func TestHistoryLengthCountsAcceptedCalls(t *testing.T) {
	a := newAccount(t, 100)

	a.Deposit(dec("50"), "")   // +1
	a.Deposit(dec("0"), "")    // rejected
	a.Withdraw(dec("500"), "") // rejected
	a.Withdraw(dec("20"), "")  // +1
	a.Unlock("1234")           // rejected, not locked
	a.Lock()                   // +1
	a.Lock()                   // rejected
	a.Deposit(dec("5"), "")    // rejected, locked
	a.Unlock("9999")           // +1 attempt
	a.Unlock("1234")           // +1

	txs := a.Transactions()
	assert.Len(t, txs, 5)
	for i, tx := range txs {
		assert.Equal(t, i+1, tx.Seq)
	}
}

func TestScenario(t *testing.T) {
	a := newAccount(t, 1000)

	a.Deposit(dec("500"), "")
	assert.True(t, a.Balance().Equal(dec("1500")))

	assert.Equal(t, MsgInsufficient, a.Withdraw(dec("2000"), ""))
	assert.True(t, a.Balance().Equal(dec("1500")))

	a.Lock()
	assert.Equal(t, MsgLocked, a.Deposit(dec("100"), ""))
	assert.True(t, a.Balance().Equal(dec("1500")))

	assert.Equal(t, MsgWrongPIN, a.Unlock("0000"))
	assert.True(t, a.Locked())

	assert.Equal(t, MsgUnlockOK, a.Unlock("1234"))
	assert.False(t, a.Locked())
	assert.True(t, a.Balance().Equal(dec("1500")))
}

func TestValidPIN(t *testing.T) {
	assert.True(t, ValidPIN("0000"))
	assert.True(t, ValidPIN("9876"))
	assert.False(t, ValidPIN("１２３４"), "full-width digits are not ASCII")
	assert.False(t, ValidPIN("12.4"))
	assert.False(t, ValidPIN(""))
}
