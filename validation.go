package gldtax

// ValidateLots verifies the structural invariants of a matched lot sequence
// against the ledger it came from. It produces nothing: a nil return means
// the sequence is sound, anything else is a ConsistencyError pointing at a
// defect in the matcher, not at the input files.
//
// Checked, in order: every lot has a positive quantity and a buy origin; a
// sold lot's sell date is never before its buy date; buy dates never
// decrease along the sequence; once an open lot appears no sold lot follows,
// and sold lots' sell dates never decrease; and for every transaction the
// lot quantities referencing it sum exactly to the transaction's quantity.
func ValidateLots(lots []Lot, ledger *TransactionLedger) error {
	seenOpen := false
	for i := range lots {
		l := &lots[i]
		if l.Buy == nil {
			return consistencyErrorf("lot %d has no buy origin", i+1)
		}
		if !l.Quantity.IsPositive() {
			return consistencyErrorf("lot %d has quantity %s, want strictly positive", i+1, l.Quantity)
		}
		if !l.Open() && l.SellDate().Before(l.BuyDate()) {
			return consistencyErrorf("lot %d sold on %s before its purchase on %s", i+1, l.SellDate(), l.BuyDate())
		}
		if i > 0 && l.BuyDate().Before(lots[i-1].BuyDate()) {
			return consistencyErrorf("lot %d bought on %s breaks the buy date order, previous lot is %s", i+1, l.BuyDate(), lots[i-1].BuyDate())
		}
		if l.Open() {
			seenOpen = true
			continue
		}
		if seenOpen {
			return consistencyErrorf("lot %d is sold but follows an open lot", i+1)
		}
		if i > 0 && !lots[i-1].Open() && l.SellDate().Before(lots[i-1].SellDate()) {
			return consistencyErrorf("lot %d sold on %s breaks the sell date order, previous lot is %s", i+1, l.SellDate(), lots[i-1].SellDate())
		}
	}

	// Conservation: lots must account for every transaction's quantity
	// exactly, with no rounding drift.
	bought := make(map[*Transaction]Quantity)
	sold := make(map[*Transaction]Quantity)
	for _, l := range lots {
		bought[l.Buy] = bought[l.Buy].Add(l.Quantity)
		if l.Sell != nil {
			sold[l.Sell] = sold[l.Sell].Add(l.Quantity)
		}
	}
	for i, tx := range ledger.Transactions() {
		sum, by := bought, "buy"
		if tx.Type == Sell {
			sum, by = sold, "sell"
		}
		if got := sum[tx]; !got.Equal(tx.Quantity) {
			return consistencyErrorf("transaction %d (%s): lots with that %s origin sum to %s, want %s", i+1, tx, by, got, tx.Quantity)
		}
	}
	return nil
}
