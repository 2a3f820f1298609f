package gldtax

// Lot is a quantity of shares with a single buy origin and at most one sell
// origin, produced by FIFO decomposition of the transaction history. A lot
// never outlives the run and is never mutated after matching.
type Lot struct {
	Quantity Quantity
	Buy      *Transaction
	Sell     *Transaction // nil while the shares are still held
}

// Open reports whether the lot is still held at the end of the dataset.
func (l Lot) Open() bool { return l.Sell == nil }

// BuyDate returns the date the lot's shares were acquired.
func (l Lot) BuyDate() Date { return l.Buy.Date }

// SellDate returns the date the lot's shares were disposed of, or the zero
// Date for an open lot.
func (l Lot) SellDate() Date {
	if l.Sell == nil {
		return Date{}
	}
	return l.Sell.Date
}

// BuyPrice returns the cost of the lot, the buy unit price scaled to the
// lot's quantity. A lot split off a larger transaction carries only its own
// share of that transaction's cost.
func (l Lot) BuyPrice() Money { return l.Buy.UnitPrice.Mul(l.Quantity) }

// SellPrice returns the proceeds of the lot, the sell unit price scaled to
// the lot's quantity. It is only meaningful for a sold lot.
func (l Lot) SellPrice() Money {
	if l.Sell == nil {
		return M(0)
	}
	return l.Sell.UnitPrice.Mul(l.Quantity)
}

// openBuy accumulates the not-yet-sold remainder of one buy transaction
// while the matcher walks the history.
type openBuy struct {
	tx        *Transaction
	remaining Quantity
}

// MatchLots decomposes the ledger into FIFO lots: each sell consumes the
// oldest unsold buy quantity first, splitting buys across sells (and sells
// across buys) as needed. Buy quantity left over at the end of the history
// becomes trailing open lots. The decomposition is deterministic: matching
// the same ledger twice yields the same lot sequence.
func MatchLots(ledger *TransactionLedger) ([]Lot, error) {
	var lots []Lot

	// Queue of buys with unconsumed quantity, oldest at head. The head
	// index advances instead of popping, keeping every accumulator
	// addressable by position.
	var queue []openBuy
	head := 0

	for _, tx := range ledger.Transactions() {
		switch tx.Type {
		case Buy:
			queue = append(queue, openBuy{tx: tx, remaining: tx.Quantity})
		case Sell:
			left := tx.Quantity
			for left.IsPositive() {
				if head == len(queue) {
					return nil, dataErrorf("sell of %s shares on %s exceeds the shares held", tx.Quantity, tx.Date)
				}
				taken := queue[head].remaining.Min(left)
				lots = append(lots, Lot{Quantity: taken, Buy: queue[head].tx, Sell: tx})
				queue[head].remaining = queue[head].remaining.Sub(taken)
				left = left.Sub(taken)
				if queue[head].remaining.IsZero() {
					head++
				}
			}
		default:
			return nil, consistencyErrorf("transaction on %s has type %q, which the matcher does not know", tx.Date, tx.Type)
		}
	}

	// Whatever quantity the sells did not consume is still held.
	for ; head < len(queue); head++ {
		lots = append(lots, Lot{Quantity: queue[head].remaining, Buy: queue[head].tx})
	}
	return lots, nil
}
