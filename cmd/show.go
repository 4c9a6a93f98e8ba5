package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/restock/renderer"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	messages bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the supplies configuration" }
func (*showCmd) Usage() string {
	return `rsc show [-messages]

  Displays the whole supplies configuration: weekday sales estimates, supply
  items and display preference.

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.messages, "messages", false, "Also display the status messages of this invocation.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	config := store.Config()
	md := renderer.ConfigurationMarkdown(config)
	if c.messages {
		md += "\n" + renderer.MessagesMarkdown(store.Messages().Latest(), store.Messages().History(), true)
	}
	printMarkdown(os.Stdout, md, config.DarkMode())
	return subcommands.ExitSuccess
}
