package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/restock"
	"github.com/etnz/restock/renderer"
)

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	days     string
	override string
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute the supply requirements table" }
func (*calcCmd) Usage() string {
	return `rsc calc [-days <day,...>] [-override <sales>]

  Computes the quantity of each supply item to order, from the sales
  estimates of the selected days, or from the override figure when given.
  The override replaces the day sum entirely.

Usage Examples:
# Requirements for the Monday and Tuesday estimates.
$ rsc calc -days Monday,Tuesday

# Requirements for a known sales figure.
$ rsc calc -override 5000

`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.days, "days", "", "Comma-separated weekdays to sum estimates for. Three-letter abbreviations work.")
	f.StringVar(&c.override, "override", "", "Sales total replacing the day sum entirely.")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var days []restock.Weekday
	if c.days != "" {
		var err error
		days, err = restock.ParseWeekdays(c.days)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing days: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	config := store.Config()
	total, err := restock.Total(config.Estimates(), days, c.override)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rows, err := restock.Recalculate(config.Estimates(), days, c.override, config.Items(), s.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(os.Stdout, renderer.RequirementsMarkdown(rows, total, s.Mode), config.DarkMode())
	return subcommands.ExitSuccess
}
