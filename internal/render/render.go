// Package render turns transaction records into the strings shown to the user.
package render

import (
	"fmt"

	"github.com/finansije-dev/finansije/internal/model"
)

// EmptyHistory is the single line shown for an account without records.
const EmptyHistory = "Nema transakcija."

var tags = map[model.Kind]string{
	model.KindIncome:  "PRIHOD",
	model.KindExpense: "RASHOD",
	model.KindNotice:  "OBAVEŠTENJE",
	model.KindAttempt: "POKUŠAJ",
}

// Tag returns the bracketed log label for a record kind.
func Tag(k model.Kind) string {
	if s, ok := tags[k]; ok {
		return "[" + s + "]"
	}
	return "[" + string(k) + "]"
}

// Line renders a record as a history line.
//
//	[PRIHOD] +500 RSD | Uplata | Novo stanje: 1500 RSD
//	[OBAVEŠTENJE] Račun zaključan.
func Line(tx model.Transaction, currency string) string {
	switch tx.Kind {
	case model.KindIncome:
		return fmt.Sprintf("%s +%s %s | %s | Novo stanje: %s %s",
			Tag(tx.Kind), tx.Amount, currency, tx.Description, tx.Balance, currency)
	case model.KindExpense:
		return fmt.Sprintf("%s -%s %s | %s | Novo stanje: %s %s",
			Tag(tx.Kind), tx.Amount, currency, tx.Description, tx.Balance, currency)
	default:
		return Tag(tx.Kind) + " " + tx.Description
	}
}

// Lines renders a whole history, or the placeholder line when it is empty.
func Lines(txs []model.Transaction, currency string) []string {
	if len(txs) == 0 {
		return []string{EmptyHistory}
	}
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = Line(tx, currency)
	}
	return out
}
