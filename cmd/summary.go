package cmd

import (
	"context"
	"flag"

	gldtax "github.com/DavidEGrayson/gld-tax"
	"github.com/DavidEGrayson/gld-tax/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "per-year short and long term totals" }
func (*summaryCmd) Usage() string {
	return `gldtax summary

  Prints the per-year short and long term totals, proceeds and cost kept
  separate the way tax forms want them.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := RunPipeline()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(gldtax.AggregateYears(r.Changes)))
	return subcommands.ExitSuccess
}
