package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/plancast/plancast/renderer"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	plan         string
	years        int
	skipEntities bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "display the full projection report for a plan" }
func (*projectCmd) Usage() string {
	return `pct project [-l <plan>] [-y <years>]

  Replays the plan over the horizon and displays the year-by-year
  projection of assets, debt and net worth, plus each entity's value at
  the horizon.

Usage Examples:
# Project the only plan over 30 years.
$ pct project

# Project a named plan over 10 years.
$ pct project -l household/main -y 10
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "l", "", "Plan to project. Defaults to the only plan if one exists.")
	f.IntVar(&c.years, "y", 30, "Projection horizon in years.")
	f.BoolVar(&c.skipEntities, "skip-entities", false, "Do not render the per-entity breakdown.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := renderer.BuildProjection(c.plan, *currency, all, sim)
	md := renderer.RenderProjection(report, renderer.ProjectionRenderOptions{SkipEntities: c.skipEntities})
	printMarkdown(md)

	return subcommands.ExitSuccess
}
