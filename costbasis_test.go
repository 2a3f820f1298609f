package gldtax

import (
	"strings"
	"testing"
)

func TestCapitalChanges_PlainSale(t *testing.T) {
	// Buy 10 shares at $10 then sell them all at $12 with no bullion sale
	// in between: a single capital change for the sale itself.
	lots, err := MatchLots(ledgerOf(t,
		buy("2024-01-01", 10, 10),
		sell("2024-04-09", 10, 12),
	))
	if err != nil {
		t.Fatalf("MatchLots() error = %v", err)
	}

	changes, err := CapitalChanges(lots, coveredDays(t, "2024-01-01", 100, 0.1))
	if err != nil {
		t.Fatalf("CapitalChanges() error = %v", err)
	}

	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1: %v", len(changes), changes)
	}
	c := changes[0]
	if got, want := c.BuyPrice, M(100); !got.Equal(want) {
		t.Errorf("BuyPrice = %v, want %v", got, want)
	}
	if got, want := c.SellPrice, M(120); !got.Equal(want) {
		t.Errorf("SellPrice = %v, want %v", got, want)
	}
	if got, want := c.Amount(), M(20); !got.Equal(want) {
		t.Errorf("Amount() = %v, want %v", got, want)
	}
	// 99 days of holding stays under the 365 day threshold.
	if !c.ShortTerm() {
		t.Error("ShortTerm() = false, want true")
	}
	if got, want := c.Term(), "short"; got != want {
		t.Errorf("Term() = %q, want %q", got, want)
	}
}

func TestCapitalChanges_InterimSale(t *testing.T) {
	// The trust sells bullion on 2024-01-03 while the lot is held. The
	// shareholder is treated as selling their pro rata ounces that day, and
	// the final sale realizes against the reduced basis.
	//
	// Buy 10 shares at $10 with 0.1 oz backing each share: 1 oz total at
	// $100 per ounce. The trust sells 0.001 oz per share for $0.15 per
	// share: 0.01 oz at a cost of $1.00 for proceeds of $1.50.
	proceeds := proceedsOf(t,
		quiet("2024-01-01", 0.1),
		quiet("2024-01-02", 0.1),
		saleDay("2024-01-03", 0.0999, 0.001, 0.15),
		quiet("2024-01-04", 0.0999),
		quiet("2024-01-05", 0.0999),
		quiet("2024-01-06", 0.0999),
		quiet("2024-01-07", 0.0999),
		quiet("2024-01-08", 0.0999),
	)
	lots, err := MatchLots(ledgerOf(t,
		buy("2024-01-01", 10, 10),
		sell("2024-01-08", 10, 12),
	))
	if err != nil {
		t.Fatalf("MatchLots() error = %v", err)
	}

	changes, err := CapitalChanges(lots, proceeds)
	if err != nil {
		t.Fatalf("CapitalChanges() error = %v", err)
	}

	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2: %v", len(changes), changes)
	}

	interim, final := changes[0], changes[1]

	if got, want := interim.SellDate, MustParse("2024-01-03"); got != want {
		t.Errorf("interim.SellDate = %v, want %v", got, want)
	}
	if got, want := interim.BuyPrice, M(1.00); !got.Equal(want) {
		t.Errorf("interim.BuyPrice = %v, want %v", got, want)
	}
	if got, want := interim.SellPrice, M(1.50); !got.Equal(want) {
		t.Errorf("interim.SellPrice = %v, want %v", got, want)
	}
	if got, want := interim.Amount(), M(0.50); !got.Equal(want) {
		t.Errorf("interim.Amount() = %v, want %v", got, want)
	}

	// The $1.00 of basis consumed on 2024-01-03 is gone at the final sale.
	if got, want := final.SellDate, MustParse("2024-01-08"); got != want {
		t.Errorf("final.SellDate = %v, want %v", got, want)
	}
	if got, want := final.BuyPrice, M(99.00); !got.Equal(want) {
		t.Errorf("final.BuyPrice = %v, want %v", got, want)
	}
	if got, want := final.SellPrice, M(120); !got.Equal(want) {
		t.Errorf("final.SellPrice = %v, want %v", got, want)
	}
	if got, want := final.Amount(), M(21.00); !got.Equal(want) {
		t.Errorf("final.Amount() = %v, want %v", got, want)
	}
}

func TestCapitalChanges_NextDaySale(t *testing.T) {
	// Selling the day after the purchase leaves no window at all: a bullion
	// sale on the purchase day itself must not touch the lot.
	proceeds := proceedsOf(t,
		saleDay("2024-01-01", 0.1, 0.001, 0.15),
		saleDay("2024-01-02", 0.1, 0.001, 0.15),
	)
	lots, err := MatchLots(ledgerOf(t,
		buy("2024-01-01", 10, 10),
		sell("2024-01-02", 10, 12),
	))
	if err != nil {
		t.Fatalf("MatchLots() error = %v", err)
	}

	changes, err := CapitalChanges(lots, proceeds)
	if err != nil {
		t.Fatalf("CapitalChanges() error = %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("got %d changes, want only the sale: %v", len(changes), changes)
	}
	if got, want := changes[0].BuyPrice, M(100); !got.Equal(want) {
		t.Errorf("BuyPrice = %v, want the unadjusted %v", got, want)
	}
}

func TestCapitalChanges_OpenLot(t *testing.T) {
	// An open lot accrues interim changes through the end of the dataset
	// and never realizes a final sale.
	proceeds := proceedsOf(t,
		quiet("2024-01-01", 0.1),
		quiet("2024-01-02", 0.1),
		saleDay("2024-01-03", 0.0999, 0.001, 0.15),
		quiet("2024-01-04", 0.0999),
		quiet("2024-01-05", 0.0999),
		quiet("2024-01-06", 0.0999),
		quiet("2024-01-07", 0.0999),
		quiet("2024-01-08", 0.0999),
		saleDay("2024-01-09", 0.0997, 0.002, 0.25),
		quiet("2024-01-10", 0.0997),
	)
	lots, err := MatchLots(ledgerOf(t, buy("2024-01-01", 10, 10)))
	if err != nil {
		t.Fatalf("MatchLots() error = %v", err)
	}

	changes, err := CapitalChanges(lots, proceeds)
	if err != nil {
		t.Fatalf("CapitalChanges() error = %v", err)
	}

	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2: %v", len(changes), changes)
	}
	first, second := changes[0], changes[1]

	// First event: 0.01 oz at $100/oz for $1.50.
	if got, want := first.SellDate, MustParse("2024-01-03"); got != want {
		t.Errorf("first.SellDate = %v, want %v", got, want)
	}
	if got, want := first.BuyPrice, M(1.00); !got.Equal(want) {
		t.Errorf("first.BuyPrice = %v, want %v", got, want)
	}

	// Second event: 0.02 oz at the same $100/oz for $2.50. The per ounce
	// cost is fixed on the purchase day, not recomputed.
	if got, want := second.SellDate, MustParse("2024-01-09"); got != want {
		t.Errorf("second.SellDate = %v, want %v", got, want)
	}
	if got, want := second.BuyPrice, M(2.00); !got.Equal(want) {
		t.Errorf("second.BuyPrice = %v, want %v", got, want)
	}
	if got, want := second.SellPrice, M(2.50); !got.Equal(want) {
		t.Errorf("second.SellPrice = %v, want %v", got, want)
	}

	for i, c := range changes {
		if c.Source == nil || !c.Source.Open() {
			t.Errorf("changes[%d].Source should be the open lot", i)
		}
	}
}

func TestCapitalChanges_SplitLots(t *testing.T) {
	// A partial sale splits the buy into a sold and an open lot. The trust
	// sale on 2024-01-03 must hit both, pro rata, and the split must not
	// change the totals: 0.004 oz + 0.006 oz cost exactly $0.40 + $0.60.
	proceeds := proceedsOf(t,
		quiet("2024-01-01", 0.1),
		quiet("2024-01-02", 0.1),
		saleDay("2024-01-03", 0.0999, 0.001, 0.15),
		quiet("2024-01-04", 0.0999),
		quiet("2024-01-05", 0.0999),
	)
	lots, err := MatchLots(ledgerOf(t,
		buy("2024-01-01", 10, 10),
		sell("2024-01-05", 4, 12),
	))
	if err != nil {
		t.Fatalf("MatchLots() error = %v", err)
	}

	changes, err := CapitalChanges(lots, proceeds)
	if err != nil {
		t.Fatalf("CapitalChanges() error = %v", err)
	}

	// Sold lot: interim on 01-03, final on 01-05. Open lot: interim on 01-03.
	if len(changes) != 3 {
		t.Fatalf("got %d changes, want 3: %v", len(changes), changes)
	}

	interimCost := M(0)
	interimProceeds := M(0)
	for _, c := range changes[:2] {
		if got, want := c.SellDate, MustParse("2024-01-03"); got != want {
			t.Fatalf("SellDate = %v, want %v", got, want)
		}
		interimCost = interimCost.Add(c.BuyPrice)
		interimProceeds = interimProceeds.Add(c.SellPrice)
	}
	if want := M(1.00); !interimCost.Equal(want) {
		t.Errorf("interim cost across the split = %v, want %v", interimCost, want)
	}
	if want := M(1.50); !interimProceeds.Equal(want) {
		t.Errorf("interim proceeds across the split = %v, want %v", interimProceeds, want)
	}

	// The sold 4 share lot had $40 of basis and consumed $0.40 of it.
	final := changes[2]
	if got, want := final.SellDate, MustParse("2024-01-05"); got != want {
		t.Errorf("final.SellDate = %v, want %v", got, want)
	}
	if got, want := final.BuyPrice, M(39.60); !got.Equal(want) {
		t.Errorf("final.BuyPrice = %v, want %v", got, want)
	}
	if got, want := final.SellPrice, M(48); !got.Equal(want) {
		t.Errorf("final.SellPrice = %v, want %v", got, want)
	}
}

func TestCapitalChanges_Term(t *testing.T) {
	// 2024 is a leap year: buying on 2024-01-01 means 2024-12-30 is 364
	// days of holding and 2024-12-31 is 365, the first long term day.
	tests := []struct {
		sellOn string
		term   string
	}{
		{"2024-12-30", "short"},
		{"2024-12-31", "long"},
		{"2025-06-01", "long"},
	}

	for _, tt := range tests {
		t.Run(tt.sellOn, func(t *testing.T) {
			lots, err := MatchLots(ledgerOf(t,
				buy("2024-01-01", 10, 10),
				sell(tt.sellOn, 10, 12),
			))
			if err != nil {
				t.Fatalf("MatchLots() error = %v", err)
			}
			changes, err := CapitalChanges(lots, coveredDays(t, "2024-01-01", 5, 0.1))
			if err != nil {
				t.Fatalf("CapitalChanges() error = %v", err)
			}
			if len(changes) != 1 {
				t.Fatalf("got %d changes, want 1", len(changes))
			}
			if got := changes[0].Term(); got != tt.term {
				t.Errorf("Term() = %q, want %q", got, tt.term)
			}
		})
	}
}

func TestCapitalChanges_Ordering(t *testing.T) {
	// Two overlapping lots with interleaved events: the sequence must come
	// out ordered by sell date, ties broken by buy date.
	proceeds := proceedsOf(t,
		quiet("2024-01-01", 0.1),
		quiet("2024-01-02", 0.1),
		quiet("2024-01-03", 0.1),
		saleDay("2024-01-04", 0.0999, 0.001, 0.15),
		quiet("2024-01-05", 0.0999),
		quiet("2024-01-06", 0.0999),
		quiet("2024-01-07", 0.0999),
		saleDay("2024-01-08", 0.0997, 0.002, 0.25),
		quiet("2024-01-09", 0.0997),
		quiet("2024-01-10", 0.0997),
	)
	lots, err := MatchLots(ledgerOf(t,
		buy("2024-01-01", 10, 10),
		buy("2024-01-02", 10, 11),
		sell("2024-01-05", 10, 12), // consumes the 2024-01-01 buy entirely
		sell("2024-01-10", 10, 13), // consumes the 2024-01-02 buy entirely
	))
	if err != nil {
		t.Fatalf("MatchLots() error = %v", err)
	}

	changes, err := CapitalChanges(lots, proceeds)
	if err != nil {
		t.Fatalf("CapitalChanges() error = %v", err)
	}

	// Lot 1 (bought 01-01, sold 01-05): interim 01-04, final 01-05.
	// Lot 2 (bought 01-02, sold 01-10): interim 01-04, interim 01-08, final 01-10.
	want := []struct {
		sellOn string
		buyOn  string
	}{
		{"2024-01-04", "2024-01-01"},
		{"2024-01-04", "2024-01-02"},
		{"2024-01-05", "2024-01-01"},
		{"2024-01-08", "2024-01-02"},
		{"2024-01-10", "2024-01-02"},
	}
	if len(changes) != len(want) {
		t.Fatalf("got %d changes, want %d: %v", len(changes), len(want), changes)
	}
	for i, w := range want {
		if got := changes[i].SellDate; got != MustParse(w.sellOn) {
			t.Errorf("changes[%d].SellDate = %v, want %s", i, got, w.sellOn)
		}
		if got := changes[i].BuyDate; got != MustParse(w.buyOn) {
			t.Errorf("changes[%d].BuyDate = %v, want %s", i, got, w.buyOn)
		}
	}
}

func TestCapitalChanges_MissingBuyRecord(t *testing.T) {
	lots, err := MatchLots(ledgerOf(t, buy("2023-12-31", 10, 10)))
	if err != nil {
		t.Fatalf("MatchLots() error = %v", err)
	}

	_, err = CapitalChanges(lots, coveredDays(t, "2024-01-01", 5, 0.1))
	if err == nil {
		t.Fatal("CapitalChanges() expected an error, got none")
	}
	if !IsDataError(err) {
		t.Errorf("CapitalChanges() error = %v, want a DataError", err)
	}
	// The message points the user at the coverage of the proceeds file.
	for _, part := range []string{"2023-12-31", "2024-01-01", "2024-01-05"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("error %q does not mention %s", err, part)
		}
	}
}
