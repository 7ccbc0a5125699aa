package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/finansije-dev/finansije/internal/model"
)

// Header is the CSV header for exported history.
const Header = "seq,time,kind,amount,description,balance"

const (
	numFields  = 6
	colSeq     = 0
	colTime    = 1
	colKind    = 2
	colAmount  = 3
	colDesc    = 4
	colBalance = 5
)

// MarshalTransaction converts a record to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colSeq] = strconv.Itoa(tx.Seq)
	row[colTime] = tx.Time.Format(time.RFC3339)
	row[colKind] = string(tx.Kind)
	row[colDesc] = tx.Description
	if tx.MovesMoney() {
		row[colAmount] = tx.Amount.StringFixed(2)
		row[colBalance] = tx.Balance.StringFixed(2)
	}
	return row
}

// WriteCSV writes history to w, header first.
func WriteCSV(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
