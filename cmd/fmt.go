package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/plancast/plancast"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	plan string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats plan files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pct fmt [-l <plan>]

  Validates and formats plan files. This command reads all entities,
  drops deleted ledger entries, sorts ledgers by day, and writes the
  plan back in a canonical JSONL format. By default it formats all
  plans in-place; use -l to format a single plan.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "l", "", "Plan to format. Formats all by default.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plans, err := plancast.FindPlans(*planPath, c.plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not find plans: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(plans) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no plans found to format.\n")
		return subcommands.ExitSuccess
	}

	for _, fullPath := range plans {
		name := planName(fullPath)
		fmt.Fprintf(os.Stderr, "Formatting plan %q...\n", name)

		entities, err := plancast.LoadPlan(fullPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading plan %q: %v\n", name, err)
			continue
		}
		if err := plancast.SavePlan(*planPath, name, entities); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving plan %q: %v\n", name, err)
			continue
		}
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted plans.\n")
	return subcommands.ExitSuccess
}
