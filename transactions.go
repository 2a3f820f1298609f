package gldtax

import "fmt"

// TxType tags a transaction as a purchase or a disposal of shares.
type TxType string

const (
	Buy  TxType = "buy"
	Sell TxType = "sell"
)

// ParseTxType parses the type column of a transaction row.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q, want %q or %q", s, Buy, Sell)
	}
}

// Transaction is one shareholder trade. It is a plain tagged record, built
// once from a validated row and never mutated; lots hold shared read-only
// references to it.
type Transaction struct {
	Date      Date
	Type      TxType
	Quantity  Quantity
	UnitPrice Money
}

// NewTransaction returns an unvalidated transaction, see [Transaction.Validate].
func NewTransaction(on Date, typ TxType, quantity Quantity, unitPrice Money) Transaction {
	return Transaction{Date: on, Type: typ, Quantity: quantity, UnitPrice: unitPrice}
}

// ExtendedPrice returns the full dollar amount of the trade.
func (t Transaction) ExtendedPrice() Money { return t.UnitPrice.Mul(t.Quantity) }

// Validate checks the per-field rules of a single transaction.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return dataErrorf("transaction has no date")
	}
	if t.Type != Buy && t.Type != Sell {
		return dataErrorf("transaction on %s: unknown type %q, want %q or %q", t.Date, t.Type, Buy, Sell)
	}
	if !t.Quantity.IsPositive() {
		return dataErrorf("transaction on %s: quantity %s must be strictly positive", t.Date, t.Quantity)
	}
	if !t.UnitPrice.IsPositive() {
		return dataErrorf("transaction on %s: unit price %s must be strictly positive", t.Date, t.UnitPrice)
	}
	return nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s at %s", t.Date, t.Type, t.Quantity, t.UnitPrice)
}
