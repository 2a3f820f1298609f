package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/DavidEGrayson/gld-tax/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests. It is a no-op in a normal
// run; when the shell asks for completions it replies and exits.
func completion() {
	files := predict.Files("*.csv")
	gld := &complete.Command{
		Sub: map[string]*complete.Command{
			"check": {},
			"lots": {Flags: map[string]complete.Predictor{
				"open":  predict.Nothing,
				"value": predict.Nothing,
			}},
			"gains": {Flags: map[string]complete.Predictor{
				"year": predict.Something,
			}},
			"summary": {},
			"export": {Flags: map[string]complete.Predictor{
				"lots": predict.Nothing,
				"o":    predict.Files("*"),
			}},
			"quote": {},
			"topic": {Args: predict.Set{"readme", "method", "formats", "reports", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"transactions": files,
			"proceeds":     files,
		},
	}
	gld.Complete("gldtax")
}
