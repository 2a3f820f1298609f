package gldtax

import (
	"fmt"
	"io"
)

// This file contains the machine-readable export format: one JSON object per
// line, keys in a fixed order so the output diffs cleanly between runs.
// Dollar amounts are exact decimals, USD implied.

// EncodeChanges writes one JSON object per capital change, in sequence
// order, with keys buy_date, sell_date, term, cost, proceeds, gain.
func EncodeChanges(w io.Writer, changes []CapitalChange) error {
	for _, c := range changes {
		var jw jsonObjectWriter
		jw.Append("buy_date", c.BuyDate)
		jw.Append("sell_date", c.SellDate)
		jw.Append("term", c.Term())
		jw.Append("cost", c.BuyPrice)
		jw.Append("proceeds", c.SellPrice)
		jw.Append("gain", c.Amount())
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal capital change sold on %s: %w", c.SellDate, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write capital change: %w", err)
		}
	}
	return nil
}

// EncodeLots writes one JSON object per lot, in sequence order, with keys
// quantity, buy_date, cost and, for sold lots, sell_date and proceeds.
func EncodeLots(w io.Writer, lots []Lot) error {
	for _, l := range lots {
		var jw jsonObjectWriter
		jw.Append("quantity", l.Quantity)
		jw.Append("buy_date", l.BuyDate())
		jw.Optional("sell_date", l.SellDate())
		jw.Append("cost", l.BuyPrice())
		if !l.Open() {
			jw.Append("proceeds", l.SellPrice())
		}
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal lot bought on %s: %w", l.BuyDate(), err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write lot: %w", err)
		}
	}
	return nil
}
