package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

// queryCmd holds the flags for the 'query' subcommand.
type queryCmd struct {
	plan string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against a plan" }
func (*queryCmd) Usage() string {
	return `pct query [-l <plan>] <jsonpath>

  Evaluates a JSONPath expression against the plan's entities, seen as
  a JSON array in canonical form, and prints the result as JSON.

Usage Examples:
# All entity names.
$ pct query '$[*].name'

# Ledger entries of the entity named "Checking".
$ pct query '$[?(@.name=="Checking")].ledgerEntries'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "l", "", "Plan to query. Defaults to the only plan if one exists.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	entities, err := findPlan(c.plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load plan: %v\n", err)
		return subcommands.ExitFailure
	}

	// Round-trip through the canonical encoding so the query sees the
	// same shape as the plan file.
	raw, err := json.Marshal(entities)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding plan: %v\n", err)
		return subcommands.ExitFailure
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding plan: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating query: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))

	return subcommands.ExitSuccess
}
