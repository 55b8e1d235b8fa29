// Package cmd implements the CLI application to project financial plans.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/plancast/plancast"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "projection")
	c.Register(&networthCmd{}, "projection")
	c.Register(&valueCmd{}, "projection")

	c.Register(&entitiesCmd{}, "plans")
	c.Register(&addEntryCmd{}, "plans")
	c.Register(&fmtCmd{}, "plans")
	c.Register(&queryCmd{}, "plans")

	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application it has a very short lived lifecycle, so global
// flags are fine.
var planPath = flag.String("plan-path", ".", "Path to the folder containing plan files (JSONL format)")
var currency = flag.String("currency", "USD", "Currency used to format report values")

// findPlan loads the entities of the plan matching the query from the
// app plan path.
func findPlan(query string) ([]plancast.Entity, error) {
	return plancast.FindPlan(*planPath, query)
}

// buildSimulation appends the built-in cash entity to the plan and
// replays it over the horizon.
func buildSimulation(entities []plancast.Entity, years int) ([]plancast.Entity, *plancast.Simulation, error) {
	all := append(entities, plancast.NewFallback())
	sim, err := plancast.NewSimulation(all, years, plancast.Today().Days())
	if err != nil {
		return nil, nil, fmt.Errorf("could not build projection: %w", err)
	}
	return all, sim, nil
}
