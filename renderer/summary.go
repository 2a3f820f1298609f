package renderer

import (
	"fmt"
	"strings"

	gldtax "github.com/DavidEGrayson/gld-tax"
)

// SummaryMarkdown renders the per-year short/long term totals, two rows per
// tax year. Proceeds and cost stay separate, the way they are reported.
func SummaryMarkdown(years *gldtax.TaxYears) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Tax Year Summary\n\n")

	fmt.Fprintln(&b, "| Year | Term | Proceeds | Cost | Net |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|")

	for _, y := range years.Years() {
		totals := years.Totals(y)
		for _, row := range []struct {
			term    string
			buckets gldtax.TermTotals
		}{
			{"short", totals.Short},
			{"long", totals.Long},
		} {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
				y,
				row.term,
				row.buckets.Proceeds,
				row.buckets.Cost,
				row.buckets.Net().SignedString(),
			)
		}
	}

	return b.String()
}
