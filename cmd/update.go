package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/restock"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	name      string
	coef      string
	unit      string
	inventory string
	supplier  string

	unitSet     bool
	supplierSet bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "edit fields of a supply item in place" }
func (*updateCmd) Usage() string {
	return `rsc update -name <name> [-coef <number>] [-unit <unit>] [-inventory <number>] [-supplier <name>]

  Edits the given fields of an existing item and saves the file. Fields not
  passed keep their value, and the item keeps its position in reports.

Usage Examples:
# Record 4 kg of flour on the shelf.
$ rsc update -name "Flour" -inventory 4

`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item to edit.")
	f.StringVar(&c.coef, "coef", "", "New usage coefficient.")
	f.Func("unit", "New unit label.", func(v string) error {
		c.unit, c.unitSet = v, true
		return nil
	})
	f.StringVar(&c.inventory, "inventory", "", "New on-hand quantity.")
	f.Func("supplier", "New supplier name.", func(v string) error {
		c.supplier, c.supplierSet = v, true
		return nil
	})
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintf(os.Stderr, "Error: -name is required\n")
		return subcommands.ExitUsageError
	}

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	config := store.Config()
	item, ok := config.Items().Get(c.name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no item named %q\n", c.name)
		return subcommands.ExitFailure
	}

	// Numeric fields that do not parse become zero with a message, the edit
	// itself still goes through.
	if c.coef != "" {
		if item.Coefficient, err = restock.ParseQuantity(c.coef); err != nil {
			item.Coefficient = restock.Q(0)
			store.Messages().Postf("Invalid coefficient for %s, reset to 0", c.name)
		}
	}
	if c.inventory != "" {
		if item.Inventory, err = restock.ParseQuantity(c.inventory); err != nil {
			item.Inventory = restock.Q(0)
			store.Messages().Postf("Invalid inventory for %s, reset to 0", c.name)
		}
	}
	if c.unitSet {
		item.Unit = c.unit
	}
	if c.supplierSet {
		item.Supplier = c.supplier
	}

	config.PutItem(c.name, item)
	store.Messages().Postf("Updated item: %s", c.name)
	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
