package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	gldtax "github.com/DavidEGrayson/gld-tax"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	lots   bool
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the capital changes as JSON lines" }
func (*exportCmd) Usage() string {
	return `gldtax export [-lots] [-o <file>]

  Writes one JSON object per capital change, exact decimal amounts, for
  spreadsheets or other tooling. -lots exports the lot listing instead.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.lots, "lots", false, "Export the lot listing instead of the capital changes")
	f.StringVar(&c.output, "o", "", "Write to a file instead of stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := RunPipeline()
	if err != nil {
		return fail(err)
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	if c.lots {
		err = gldtax.EncodeLots(w, r.Lots)
	} else {
		err = gldtax.EncodeChanges(w, r.Changes)
	}
	if err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
