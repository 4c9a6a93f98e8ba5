package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/restock"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	unit     string
	coef     string
	supplier string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a supply item" }
func (*addCmd) Usage() string {
	return `rsc add -name <name> -unit <unit> [-coef <number>] [-supplier <name>]

  Adds a supply item and saves the file. Inventory always starts at zero,
  adding a name that already exists replaces the item and resets its
  inventory. Use 'rsc update' to edit without losing the inventory.

Usage Examples:
# A supply used at 1.5 packs per 1000 of sales.
$ rsc add -name "Napkins" -unit "pack" -coef 1.5 -supplier "Acme Paper"

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name, unique in the configuration.")
	f.StringVar(&c.unit, "unit", "", "Unit the item is counted in, e.g. kg or pack.")
	f.StringVar(&c.coef, "coef", "", "Usage coefficient. Defaults to 0.")
	f.StringVar(&c.supplier, "supplier", "", "Supplier name. Optional.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintf(os.Stderr, "Error: %v\n", &restock.MissingInputError{Field: "name"})
		return subcommands.ExitUsageError
	}
	if c.unit == "" {
		fmt.Fprintf(os.Stderr, "Error: %v\n", &restock.MissingInputError{Field: "unit"})
		return subcommands.ExitUsageError
	}

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// A coefficient that does not parse becomes zero with a message, like
	// every numeric cell edit.
	coef := restock.Q(0)
	if c.coef != "" {
		if coef, err = restock.ParseQuantity(c.coef); err != nil {
			coef = restock.Q(0)
			store.Messages().Postf("Invalid coefficient for %s, reset to 0", c.name)
		}
	}

	store.AddItem(c.name, coef, c.unit, c.supplier)
	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
