package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/restock"
)

// estimateCmd holds the flags for the 'estimate' subcommand.
type estimateCmd struct {
	day   string
	sales string
}

func (*estimateCmd) Name() string     { return "estimate" }
func (*estimateCmd) Synopsis() string { return "record the forecast sales for one weekday" }
func (*estimateCmd) Usage() string {
	return `rsc estimate -day <weekday> -sales <number>

  Records the sales you expect on one day of the week and saves the file.

Usage Examples:
# Expect 1200 in sales on Mondays.
$ rsc estimate -day Monday -sales 1200

`
}

func (c *estimateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "day", "", "Weekday to record the estimate for.")
	f.StringVar(&c.sales, "sales", "", "Forecast sales figure for that day.")
}

func (c *estimateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.day == "" || c.sales == "" {
		fmt.Fprintf(os.Stderr, "Error: both -day and -sales are required\n")
		return subcommands.ExitUsageError
	}
	day, err := restock.ParseWeekday(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing day: %v\n", err)
		return subcommands.ExitUsageError
	}
	sales, err := restock.ParseQuantity(c.sales)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", &restock.FieldError{Field: day.String(), Value: c.sales})
		return subcommands.ExitUsageError
	}

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	store.Config().SetEstimate(day, sales)
	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
