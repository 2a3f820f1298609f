package renderer

import (
	"fmt"
	"strings"

	gldtax "github.com/DavidEGrayson/gld-tax"
)

// GainsMarkdown renders the capital change listing, one row per taxable
// event. With a non-zero year only the changes sold in that year are listed.
func GainsMarkdown(changes []gldtax.CapitalChange, year int) string {
	var b strings.Builder

	if year == 0 {
		fmt.Fprintf(&b, "# Capital Gains Report\n\n")
	} else {
		fmt.Fprintf(&b, "# Capital Gains Report for %d\n\n", year)
	}

	fmt.Fprintln(&b, "| Bought | Sold | Event | Term | Cost | Proceeds | Gain |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|")

	totalCost := gldtax.M(0)
	totalProceeds := gldtax.M(0)
	for _, c := range changes {
		if year != 0 && c.SellDate.Year() != year {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			c.BuyDate,
			c.SellDate,
			event(c),
			c.Term(),
			c.BuyPrice,
			c.SellPrice,
			c.Amount().SignedString(),
		)
		totalCost = totalCost.Add(c.BuyPrice)
		totalProceeds = totalProceeds.Add(c.SellPrice)
	}
	fmt.Fprintf(&b, "| **Total** | | | | **%s** | **%s** | **%s** |\n",
		totalCost,
		totalProceeds,
		totalProceeds.Sub(totalCost).SignedString(),
	)

	return b.String()
}
