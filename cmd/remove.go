package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// removeCmd holds the flags for the 'remove' subcommand.
type removeCmd struct {
	name string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a supply item" }
func (*removeCmd) Usage() string {
	return `rsc remove -name <name>

  Removes the named supply item and saves the file.

`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item to remove.")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintf(os.Stderr, "Error: -name is required\n")
		return subcommands.ExitUsageError
	}

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !store.Config().RemoveItem(c.name) {
		fmt.Fprintf(os.Stderr, "Error: no item named %q\n", c.name)
		return subcommands.ExitFailure
	}
	store.Messages().Postf("Item %q removed", c.name)
	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
