package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/plancast/plancast"
)

// networthCmd holds the flags for the 'networth' subcommand.
type networthCmd struct {
	plan  string
	years int
	date  string
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "display projected assets, debt and net worth on a date" }
func (*networthCmd) Usage() string {
	return `pct networth [-l <plan>] [-y <years>] [-d <date>]

  Replays the plan and displays the aggregate position on the given
  date (the projection horizon by default).
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "l", "", "Plan to report on. Defaults to the only plan if one exists.")
	f.IntVar(&c.years, "y", 30, "Projection horizon in years.")
	f.StringVar(&c.date, "d", "", "Date for the report. Defaults to the projection horizon.")
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entities, err := findPlan(c.plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load plan: %v\n", err)
		return subcommands.ExitFailure
	}

	_, sim, err := buildSimulation(entities, c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	day := sim.EndDay()
	if c.date != "" {
		on, err := plancast.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		day = on.Days()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Net Worth on %s\n\n", plancast.DateOfDay(day))
	fmt.Fprintf(&b, "| | |\n|---|--:|\n")
	fmt.Fprintf(&b, "| Assets | %s |\n", plancast.M(sim.Assets(day), *currency))
	fmt.Fprintf(&b, "| Debt | %s |\n", plancast.M(sim.Debt(day), *currency))
	fmt.Fprintf(&b, "| Net Worth | **%s** |\n", plancast.M(sim.NetWorth(day), *currency))
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
