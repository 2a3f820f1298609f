package cmd

import (
	"context"
	"flag"

	"github.com/DavidEGrayson/gld-tax/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	year int
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "list every capital change" }
func (*gainsCmd) Usage() string {
	return `gldtax gains [-year <year>]

  Lists every taxable event: your own share sales and your pro rata slices
  of the trust's bullion sales, each with cost, proceeds and gain.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Only list the changes sold in that tax year")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := RunPipeline()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.GainsMarkdown(r.Changes, c.year))
	return subcommands.ExitSuccess
}
