package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// themeCmd holds the flags for the 'theme' subcommand.
type themeCmd struct {
	dark  bool
	light bool
}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "set the display theme for the next startup" }
func (*themeCmd) Usage() string {
	return `rsc theme [-dark | -light]

  Sets the persisted display preference. Without a flag it toggles.

`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dark, "dark", false, "Enable dark mode.")
	f.BoolVar(&c.light, "light", false, "Disable dark mode.")
}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.dark && c.light {
		fmt.Fprintf(os.Stderr, "Error: -dark and -light are exclusive\n")
		return subcommands.ExitUsageError
	}

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	config := store.Config()
	dark := !config.DarkMode()
	if c.dark {
		dark = true
	}
	if c.light {
		dark = false
	}

	config.SetDarkMode(dark)
	if dark {
		store.Messages().Post("Dark Mode enabled for next startup.")
	} else {
		store.Messages().Post("Dark Mode disabled for next startup.")
	}
	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
