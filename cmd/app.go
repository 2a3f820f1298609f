// Package cmd implements the CLI application to compute the tax lots.
package cmd

import (
	"flag"
	"fmt"
	"os"

	gldtax "github.com/DavidEGrayson/gld-tax"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&checkCmd{}, "data")
	c.Register(&quoteCmd{}, "data")

	c.Register(&lotsCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var transactionsFile = flag.String("transactions", "transactions.csv", "Path to the shareholder transactions file (CSV format)")
var proceedsFile = flag.String("proceeds", "proceeds.csv", "Path to the trust proceeds file (CSV format)")

// Result holds the outcome of a full pipeline run over both input files.
type Result struct {
	Ledger   *gldtax.TransactionLedger
	Proceeds *gldtax.ProceedsLedger
	Lots     []gldtax.Lot
	Changes  []gldtax.CapitalChange
}

// DecodeLedgers decodes and validates both input files.
func DecodeLedgers() (*gldtax.TransactionLedger, *gldtax.ProceedsLedger, error) {
	tf, err := os.Open(*transactionsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open transactions file: %w", err)
	}
	defer tf.Close()
	ledger, err := gldtax.DecodeTransactions(tf)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", *transactionsFile, err)
	}

	pf, err := os.Open(*proceedsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open proceeds file: %w", err)
	}
	defer pf.Close()
	proceeds, err := gldtax.DecodeProceeds(pf)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", *proceedsFile, err)
	}
	return ledger, proceeds, nil
}

// RunPipeline decodes both files and runs matching, validation and the cost
// basis adjustment.
func RunPipeline() (*Result, error) {
	ledger, proceeds, err := DecodeLedgers()
	if err != nil {
		return nil, err
	}
	lots, err := gldtax.MatchLots(ledger)
	if err != nil {
		return nil, err
	}
	if err := gldtax.ValidateLots(lots, ledger); err != nil {
		return nil, err
	}
	changes, err := gldtax.CapitalChanges(lots, proceeds)
	if err != nil {
		return nil, err
	}
	return &Result{Ledger: ledger, Proceeds: proceeds, Lots: lots, Changes: changes}, nil
}

// fail reports err on stderr the way its kind deserves and returns the
// failure status.
func fail(err error) subcommands.ExitStatus {
	if gldtax.IsConsistencyError(err) {
		fmt.Fprintf(os.Stderr, "internal error: %v\nThis is a bug in the matcher, please report it.\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
