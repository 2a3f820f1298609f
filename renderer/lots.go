package renderer

import (
	"fmt"
	"strings"

	gldtax "github.com/DavidEGrayson/gld-tax"
)

// LotsMarkdown renders the FIFO lot listing. With openOnly only the lots
// still held at the end of the dataset are listed.
func LotsMarkdown(lots []gldtax.Lot, openOnly bool) string {
	var b strings.Builder

	title := "Lots"
	if openOnly {
		title = "Open Lots"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	fmt.Fprintln(&b, "| # | Quantity | Bought | Sold | Cost | Proceeds |")
	fmt.Fprintln(&b, "|---:|---:|:---|:---|---:|---:|")

	n := 0
	totalQuantity := gldtax.Q(0)
	totalCost := gldtax.M(0)
	for _, l := range lots {
		if openOnly && !l.Open() {
			continue
		}
		n++
		proceeds := "-"
		if !l.Open() {
			proceeds = l.SellPrice().String()
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			n,
			l.Quantity,
			l.BuyDate(),
			soldCell(l),
			l.BuyPrice(),
			proceeds,
		)
		totalQuantity = totalQuantity.Add(l.Quantity)
		totalCost = totalCost.Add(l.BuyPrice())
	}
	fmt.Fprintf(&b, "| | **%s** | | | **%s** | |\n", totalQuantity, totalCost)

	return b.String()
}

// OpenLotsValueMarkdown renders the market value of the open lots: each
// lot's backing ounces at the latest published ounces-per-share, valued at
// the given spot price.
func OpenLotsValueMarkdown(lots []gldtax.Lot, on gldtax.Date, ounces gldtax.Quantity, spot gldtax.Money) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Open Lots Value on %s\n\n", on)
	fmt.Fprintf(&b, "Spot gold: %s per troy ounce, %s oz backing one share.\n\n", spot, ounces)

	fmt.Fprintln(&b, "| Quantity | Bought | Cost | Ounces | Value | Unrealized |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|---:|")

	totalCost := gldtax.M(0)
	totalValue := gldtax.M(0)
	for _, l := range lots {
		if !l.Open() {
			continue
		}
		backing := ounces.Mul(l.Quantity)
		value := spot.Mul(backing)
		cost := l.BuyPrice()
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			l.Quantity,
			l.BuyDate(),
			cost,
			backing,
			value,
			value.Sub(cost).SignedString(),
		)
		totalCost = totalCost.Add(cost)
		totalValue = totalValue.Add(value)
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** | | **%s** | **%s** |\n",
		totalCost,
		totalValue,
		totalValue.Sub(totalCost).SignedString(),
	)

	return b.String()
}
