package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/plancast/plancast"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	plan  string
	years int
	date  string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display one entity's projected value on a date" }
func (*valueCmd) Usage() string {
	return `pct value [-l <plan>] [-y <years>] [-d <date>] <entity>

  Replays the plan and displays the value of the entity matching the
  given id or name on the given date (the projection horizon by
  default).
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "l", "", "Plan to report on. Defaults to the only plan if one exists.")
	f.IntVar(&c.years, "y", 30, "Projection horizon in years.")
	f.StringVar(&c.date, "d", "", "Date for the report. Defaults to the projection horizon.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one entity id or name")
		return subcommands.ExitUsageError
	}
	query := f.Arg(0)

	entities, err := findPlan(c.plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load plan: %v\n", err)
		return subcommands.ExitFailure
	}

	all, sim, err := buildSimulation(entities, c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var target plancast.Entity
	for _, e := range all {
		if e.ID() == query || e.Name() == query {
			target = e
			break
		}
	}
	if target == nil {
		fmt.Fprintf(os.Stderr, "Error: no entity matches %q\n", query)
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

	value := plancast.M(sim.EntityValueOn(target.ID(), day), *currency)
	fmt.Printf("%s on %s: %s\n", target.Name(), plancast.DateOfDay(day), value)

	return subcommands.ExitSuccess
}
