package cmd

import (
	"context"
	"flag"

	"github.com/DavidEGrayson/gld-tax/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the input files and print dataset statistics" }
func (*checkCmd) Usage() string {
	return `gldtax check

  Decodes both input files, runs the full pipeline and prints dataset
  statistics. The exit status reports whether the data is valid.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := RunPipeline()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CheckMarkdown(r.Ledger, r.Proceeds, r.Lots, r.Changes))
	return subcommands.ExitSuccess
}
