package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	gldtax "github.com/DavidEGrayson/gld-tax"
	"github.com/DavidEGrayson/gld-tax/renderer"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	open  bool
	value bool
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "list the FIFO lots" }
func (*lotsCmd) Usage() string {
	return `gldtax lots [-open] [-value]

  Lists the lots produced by FIFO matching: quantity, purchase, sale (or
  open), cost and proceeds. -value fetches the current gold spot price and
  appends the market value of the open lots.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.open, "open", false, "Only list the lots still held")
	f.BoolVar(&c.value, "value", false, "Value the open lots at the current gold spot price")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := RunPipeline()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.LotsMarkdown(r.Lots, c.open))

	if !c.value {
		return subcommands.ExitSuccess
	}
	spot, err := gldtax.SpotPrice()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching the spot price: %v\n", err)
		return subcommands.ExitFailure
	}
	// the latest published ounces-per-share values today's holdings.
	last, ok := r.Proceeds.Record(r.Proceeds.End())
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: the proceeds file is empty, nothing to value")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.OpenLotsValueMarkdown(r.Lots, gldtax.Today(), last.GoldOunces, spot))
	return subcommands.ExitSuccess
}
