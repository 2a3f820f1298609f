package renderer

import (
	"fmt"
	"strings"

	gldtax "github.com/DavidEGrayson/gld-tax"
)

// CheckMarkdown renders the dataset statistics printed by a successful run
// of the full pipeline over both input files.
func CheckMarkdown(ledger *gldtax.TransactionLedger, proceeds *gldtax.ProceedsLedger, lots []gldtax.Lot, changes []gldtax.CapitalChange) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dataset Check\n\n")

	txs := ledger.Transactions()
	if len(txs) > 0 {
		fmt.Fprintf(&b, "- %d transactions from %s to %s\n", len(txs), txs[0].Date, txs[len(txs)-1].Date)
	} else {
		fmt.Fprintf(&b, "- no transactions\n")
	}
	if proceeds.Len() > 0 {
		fmt.Fprintf(&b, "- %d proceeds records from %s to %s\n", proceeds.Len(), proceeds.Start(), proceeds.End())
	} else {
		fmt.Fprintf(&b, "- no proceeds records\n")
	}

	open := 0
	for _, l := range lots {
		if l.Open() {
			open++
		}
	}
	fmt.Fprintf(&b, "- %d lots (%d open)\n", len(lots), open)
	fmt.Fprintf(&b, "- %d capital changes\n", len(changes))
	fmt.Fprintf(&b, "\nAll invariants hold.\n")

	return b.String()
}
