package gldtax

import (
	"encoding/csv"
	"fmt"
	"io"
)

// TransactionLedger is the validated, chronologically ordered history of the
// shareholder's own trades. It is built once and read by the matcher; no
// transaction is ever added or mutated afterwards.
type TransactionLedger struct {
	txs []*Transaction
}

// NewTransactionLedger validates the given transactions and returns the
// ledger, or a DataError on the first rule violation. Rows must already be
// chronological; equal dates are allowed.
func NewTransactionLedger(txs []Transaction) (*TransactionLedger, error) {
	l := &TransactionLedger{txs: make([]*Transaction, 0, len(txs))}
	var prev Date
	for i, t := range txs {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		if !prev.IsZero() && t.Date.Before(prev) {
			return nil, dataErrorf("transaction %d on %s is out of order, previous row is %s", i+1, t.Date, prev)
		}
		prev = t.Date
		tx := t
		l.txs = append(l.txs, &tx)
	}
	return l, nil
}

// DecodeTransactions reads transaction rows in the form
// "date,type,quantity,unit_price" and returns the validated ledger.
// Blank lines are ignored.
func DecodeTransactions(r io.Reader) (*TransactionLedger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var txs []Transaction
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("transactions file: %w", dataErrorf("%v", err))
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 4 {
			return nil, fmt.Errorf("transactions line %d: %w", line, dataErrorf("want 4 fields (date,type,quantity,unit_price), got %d", len(rec)))
		}
		on, err := ParseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("transactions line %d: %w", line, dataErrorf("%v", err))
		}
		typ, err := ParseTxType(rec[1])
		if err != nil {
			return nil, fmt.Errorf("transactions line %d: %w", line, dataErrorf("%v", err))
		}
		quantity, err := ParseQuantity(rec[2])
		if err != nil {
			return nil, fmt.Errorf("transactions line %d: %w", line, dataErrorf("%v", err))
		}
		unitPrice, err := ParseMoney(rec[3])
		if err != nil {
			return nil, fmt.Errorf("transactions line %d: %w", line, dataErrorf("%v", err))
		}
		txs = append(txs, NewTransaction(on, typ, quantity, unitPrice))
	}
	return NewTransactionLedger(txs)
}

// Transactions returns the ordered transactions. The slice and the
// transactions it points to are shared and must be treated as read-only.
func (l *TransactionLedger) Transactions() []*Transaction { return l.txs }

// Len returns the number of transactions in the ledger.
func (l *TransactionLedger) Len() int { return len(l.txs) }
