package gldtax

import "testing"

// buy is a helper for tests to create a buy transaction from consts.
func buy(on string, quantity, unitPrice float64) Transaction {
	return NewTransaction(MustParse(on), Buy, Q(quantity), M(unitPrice))
}

// sell is a helper for tests to create a sell transaction from consts.
func sell(on string, quantity, unitPrice float64) Transaction {
	return NewTransaction(MustParse(on), Sell, Q(quantity), M(unitPrice))
}

// ledgerOf is a helper for tests to build a validated ledger or fail.
func ledgerOf(t *testing.T, txs ...Transaction) *TransactionLedger {
	t.Helper()
	l, err := NewTransactionLedger(txs)
	if err != nil {
		t.Fatalf("NewTransactionLedger() error = %v", err)
	}
	return l
}

// quiet is a helper for tests to create a proceeds record with no bullion
// sale on that day.
func quiet(on string, ounces float64) ProceedRecord {
	return ProceedRecord{Date: MustParse(on), GoldOunces: Q(ounces), Proceeds: M(0)}
}

// saleDay is a helper for tests to create a proceeds record on a day the
// trust sold bullion.
func saleDay(on string, ounces, sold, proceeds float64) ProceedRecord {
	return ProceedRecord{Date: MustParse(on), GoldOunces: Q(ounces), GoldOuncesSold: Q(sold), Proceeds: M(proceeds)}
}

// proceedsOf is a helper for tests to build a validated proceeds ledger or fail.
func proceedsOf(t *testing.T, records ...ProceedRecord) *ProceedsLedger {
	t.Helper()
	l, err := NewProceedsLedger(records)
	if err != nil {
		t.Fatalf("NewProceedsLedger() error = %v", err)
	}
	return l
}

// coveredDays is a helper for tests to build a contiguous run of quiet
// proceeds records starting on a date.
func coveredDays(t *testing.T, start string, days int, ounces float64) *ProceedsLedger {
	t.Helper()
	first := MustParse(start)
	records := make([]ProceedRecord, 0, days)
	for i := 0; i < days; i++ {
		records = append(records, ProceedRecord{Date: first.Add(i), GoldOunces: Q(ounces), Proceeds: M(0)})
	}
	return proceedsOf(t, records...)
}
