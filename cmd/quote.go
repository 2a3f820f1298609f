package cmd

import (
	"context"
	"flag"
	"fmt"

	gldtax "github.com/DavidEGrayson/gld-tax"
	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "print the current gold spot price" }
func (*quoteCmd) Usage() string {
	return `gldtax quote

  Prints the current gold spot price in dollars per troy ounce.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	spot, err := gldtax.SpotPrice()
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Gold spot: %s per troy ounce\n", spot)
	return subcommands.ExitSuccess
}
