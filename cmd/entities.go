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

// entitiesCmd holds the flags for the 'entities' subcommand.
type entitiesCmd struct {
	plan string
}

func (*entitiesCmd) Name() string     { return "entities" }
func (*entitiesCmd) Synopsis() string { return "list the entities of a plan" }
func (*entitiesCmd) Usage() string {
	return `pct entities [-l <plan>]

  Lists the entities of the plan with their id, kind and number of
  ledger entries.
`
}

func (c *entitiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "l", "", "Plan to list. Defaults to the only plan if one exists.")
}

func (c *entitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entities, err := findPlan(c.plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load plan: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Entities\n\n")
	fmt.Fprintf(&b, "| Name | Id | Type | Template | Parent | Ledger Entries |\n|---|---|---|---|---|--:|\n")
	for _, e := range entities {
		kind, _ := plancast.TypeOf(e)
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s | %s | %d |\n", e.Name(), e.ID(), kind, e.TemplateKey(), e.ParentID(), len(e.Ledger()))
	}
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
