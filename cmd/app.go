// Package cmd implements the CLI application to manage supplies restocking.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/etnz/restock"
	"github.com/etnz/restock/settings"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	c.Register(&topicCmd{}, "help")

	c.Register(&calcCmd{}, "calculation")
	c.Register(&shellCmd{}, "calculation")
	c.Register(&assistCmd{}, "calculation")

	c.Register(&estimateCmd{}, "configuration")
	c.Register(&addCmd{}, "configuration")
	c.Register(&updateCmd{}, "configuration")
	c.Register(&removeCmd{}, "configuration")
	c.Register(&showCmd{}, "configuration")
	c.Register(&themeCmd{}, "configuration")

	c.Register(&fmtCmd{}, "document")
	c.Register(&getCmd{}, "document")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	suppliesFile  = flag.String("supplies-file", "", "Path to the supplies configuration file. Overrides the SUPPLIES_FILE setting.")
	storeStrategy = flag.String("store-strategy", "", "Store strategy, strict or lenient. Overrides the STORE_STRATEGY setting.")
	calcMode      = flag.String("calc-mode", "", "Calculation mode, scaled or direct. Overrides the CALC_MODE setting.")
	verbose       = flag.Bool("v", false, "Enable verbose diagnostics on stderr.")
)

// loadSettings reads the deployment settings, applies the global flag
// overrides, and sets the diagnostic level.
func loadSettings() (*settings.Settings, error) {
	s, err := settings.Load()
	if err != nil {
		return nil, err
	}
	if *suppliesFile != "" {
		s.SuppliesFile = *suppliesFile
	}
	if *storeStrategy != "" {
		if s.Strategy, err = restock.ParseStrategy(*storeStrategy); err != nil {
			return nil, err
		}
	}
	if *calcMode != "" {
		if s.Mode, err = restock.ParseCalcMode(*calcMode); err != nil {
			return nil, err
		}
	}
	logrus.SetLevel(s.LogLevel)
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return s, nil
}

// openStore is the central function to open the supplies configuration.
// Status messages are echoed to stderr as they are posted, so one-shot
// commands report coercions and saves without polluting their report.
func openStore() (*restock.Store, *settings.Settings, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}
	messages := restock.NewMessageLog()
	messages.Notify(func(msg string) { fmt.Fprintln(os.Stderr, "*", msg) })

	store := restock.NewStore(s.SuppliesFile, s.Strategy, messages)
	if err := store.Load(); err != nil {
		return nil, nil, err
	}
	return store, s, nil
}
