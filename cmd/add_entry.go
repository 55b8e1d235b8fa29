package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/plancast/plancast"
	"github.com/shopspring/decimal"
)

// addEntryCmd holds the flags for the 'add-entry' subcommand.
type addEntryCmd struct {
	plan     string
	entity   string
	date     string
	amount   string
	quantity string
	price    string
}

func (*addEntryCmd) Name() string     { return "add-entry" }
func (*addEntryCmd) Synopsis() string { return "record a ledger entry on an entity" }
func (*addEntryCmd) Usage() string {
	return `pct add-entry [-l <plan>] -e <entity> [-d <date>] [-amount <v>] [-quantity <v>] [-price <v>]

  Appends a manual value record to an entity's ledger and saves the
  plan. Only the fields given are recorded; an absent field stays
  absent, it does not become zero.

Usage Examples:
# Record today's checking account balance.
$ pct add-entry -e checking -amount 12500.00
`
}

func (c *addEntryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "l", "", "Plan to edit. Defaults to the only plan if one exists.")
	f.StringVar(&c.entity, "e", "", "Id or name of the entity to record on.")
	f.StringVar(&c.date, "d", plancast.Today().String(), "Date of the record.")
	f.StringVar(&c.amount, "amount", "", "Monetary value to record.")
	f.StringVar(&c.quantity, "quantity", "", "Share quantity to record.")
	f.StringVar(&c.price, "price", "", "Share price to record.")
}

// parseNullDecimal parses an optional decimal flag; empty means absent.
func parseNullDecimal(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func (c *addEntryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.entity == "" {
		fmt.Fprintln(os.Stderr, "Error: -e <entity> is required")
		return subcommands.ExitUsageError
	}

	on, err := plancast.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	entry := plancast.LedgerEntry{ID: uuid.NewString(), Day: on.Days()}
	if entry.Amount, err = parseNullDecimal(c.amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	if entry.ShareQuantity, err = parseNullDecimal(c.quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}
	if entry.SharePrice, err = parseNullDecimal(c.price); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !entry.Amount.Valid && !entry.ShareQuantity.Valid && !entry.SharePrice.Valid {
		fmt.Fprintln(os.Stderr, "Error: at least one of -amount, -quantity or -price is required")
		return subcommands.ExitUsageError
	}

	plans, err := plancast.FindPlans(*planPath, c.plan)
	if err != nil || len(plans) != 1 {
		fmt.Fprintf(os.Stderr, "Error: could not find a unique plan for %q\n", c.plan)
		return subcommands.ExitFailure
	}
	fullPath := plans[0]
	name := planName(fullPath)

	entities, err := plancast.LoadPlan(fullPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	found := false
	for i, e := range entities {
		if e.ID() != c.entity && e.Name() != c.entity {
			continue
		}
		edited, err := plancast.WithLedgerEntry(e, entry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		entities[i] = edited
		found = true
		break
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: no entity matches %q\n", c.entity)
		return subcommands.ExitFailure
	}

	if err := plancast.SavePlan(*planPath, name, entities); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded entry on %s in plan %q\n", on, name)

	return subcommands.ExitSuccess
}

// planName derives a plan's name from its file path.
func planName(fullPath string) string {
	rel, err := filepath.Rel(*planPath, fullPath)
	if err != nil {
		rel = filepath.Base(fullPath)
	}
	return strings.TrimSuffix(rel, ".jsonl")
}
