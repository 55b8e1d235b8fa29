package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/plancast/plancast/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It must run
// before flag parsing: in completion mode it prints candidates and
// exits.
func completion() {
	planFlags := map[string]complete.Predictor{
		"l": predict.Something,
	}
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"plan-path": predict.Dirs("*"),
			"currency":  predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
		},
		Sub: map[string]*complete.Command{
			"project":   {Flags: planFlags},
			"networth":  {Flags: planFlags},
			"value":     {Flags: planFlags},
			"entities":  {Flags: planFlags},
			"add-entry": {Flags: planFlags},
			"fmt":       {Flags: planFlags},
			"query":     {Flags: planFlags},
			"topic":     {Args: predict.Set{"readme", "plans", "schedules", "entities", "projection"}},
		},
	}
	c.Complete("pct")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
