package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/restock"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	to string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the supplies document into a canonical shape"
}
func (*fmtCmd) Usage() string {
	return `rsc fmt [-to <strategy>]

  Reads the supplies document leniently, whatever historical shape it is in,
  and rewrites it in the shape of the given strategy. This is the upgrade
  path for legacy documents before switching a deployment to strict.

Usage Examples:
# Rewrite a legacy document into the validated shape.
$ rsc fmt -to strict

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "strict", "Target strategy shape, strict or lenient.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	to, err := restock.ParseStrategy(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Always read leniently: fmt exists to accept what strict would reject.
	messages := restock.NewMessageLog()
	messages.Notify(func(msg string) { fmt.Fprintln(os.Stderr, "*", msg) })
	store := restock.NewStore(s.SuppliesFile, restock.StrategyLenient, messages)
	if err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load supplies document: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := store.Migrate(to); err != nil {
		fmt.Fprintf(os.Stderr, "Error rewriting %q: %v\n", store.Path(), err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q in %s shape.\n", store.Path(), to)
	return subcommands.ExitSuccess
}
