// Package renderer builds the markdown reports of the tax pipeline: the lot
// listing, the capital change listing and the per-year summary. Rendering to
// a terminal is the caller's concern.
package renderer

import (
	gldtax "github.com/DavidEGrayson/gld-tax"
)

// soldCell formats the sell date column of a lot row.
func soldCell(l gldtax.Lot) string {
	if l.Open() {
		return "open"
	}
	return l.SellDate().String()
}

// event names the kind of taxable event behind a capital change: the
// shareholder's own sale of the lot, or the trust selling bullion to cover
// its expenses while the lot was held.
func event(c gldtax.CapitalChange) string {
	if c.Source != nil && (c.Source.Open() || c.SellDate != c.Source.SellDate()) {
		return "bullion sale"
	}
	return "share sale"
}
