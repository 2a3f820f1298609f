package gldtax

import "sort"

// CapitalChange is one taxable event: either the final disposal of a lot, or
// the lot's pro rata share of an interim bullion sale the trust made while
// the lot was held. BuyPrice is the cost basis consumed by the event and
// SellPrice the proceeds realized.
type CapitalChange struct {
	BuyPrice  Money
	SellPrice Money
	BuyDate   Date
	SellDate  Date
	Source    *Lot // originating lot, for traceability
}

// Amount returns the gain (or loss, when negative) of the event.
func (c CapitalChange) Amount() Money { return c.SellPrice.Sub(c.BuyPrice) }

// ShortTerm reports whether the event's holding period falls under the
// 365 day threshold.
func (c CapitalChange) ShortTerm() bool { return c.SellDate.Sub(c.BuyDate) < 365 }

// Term returns "short" or "long" for display.
func (c CapitalChange) Term() string {
	if c.ShortTerm() {
		return "short"
	}
	return "long"
}

// CapitalChanges reconciles every lot with the trust's daily data and
// returns the full sequence of taxable events, sorted by sell date then buy
// date, stable on ties.
//
// Each lot starts with its cost as basis. Every day in the lot's holding
// window on which the trust sold bullion consumes part of that basis: the
// lot's owner is treated as having sold their pro rata ounces at the trust's
// per-share proceeds, at a cost derived from the lot's own per-ounce cost on
// the purchase day. A sold lot then realizes its sale against whatever basis
// is left. The window runs from the day after the purchase through the day
// before the sale, or through the end of the dataset while the lot is open.
func CapitalChanges(lots []Lot, proceeds *ProceedsLedger) ([]CapitalChange, error) {
	var changes []CapitalChange
	for i := range lots {
		lot := &lots[i]

		rec, ok := proceeds.Record(lot.BuyDate())
		if !ok {
			return nil, dataErrorf("no proceeds record for the purchase on %s, the proceeds file covers %s to %s", lot.BuyDate(), proceeds.Start(), proceeds.End())
		}
		goldOunces := rec.GoldOunces.Mul(lot.Quantity)
		costPerOunce := lot.BuyPrice().Div(goldOunces)
		adjusted := lot.BuyPrice()

		from := lot.BuyDate().Add(1)
		to := proceeds.End()
		if !lot.Open() {
			to = lot.SellDate().Add(-1)
		}
		for _, r := range proceeds.Between(from, to) {
			if !r.GoldOuncesSold.IsPositive() {
				continue
			}
			ouncesSold := r.GoldOuncesSold.Mul(lot.Quantity)
			cost := costPerOunce.Mul(ouncesSold)
			changes = append(changes, CapitalChange{
				BuyPrice:  cost,
				SellPrice: r.Proceeds.Mul(lot.Quantity),
				BuyDate:   lot.BuyDate(),
				SellDate:  r.Date,
				Source:    lot,
			})
			adjusted = adjusted.Sub(cost)
		}

		if !lot.Open() {
			changes = append(changes, CapitalChange{
				BuyPrice:  adjusted,
				SellPrice: lot.SellPrice(),
				BuyDate:   lot.BuyDate(),
				SellDate:  lot.SellDate(),
				Source:    lot,
			})
		}
	}

	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].SellDate != changes[j].SellDate {
			return changes[i].SellDate.Before(changes[j].SellDate)
		}
		return changes[i].BuyDate.Before(changes[j].BuyDate)
	})
	return changes, nil
}
