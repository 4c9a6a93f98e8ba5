package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// getCmd holds the flags for the 'get' subcommand.
type getCmd struct {
	query string
}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "print the raw supplies document, or part of it" }
func (*getCmd) Usage() string {
	return `rsc get [-q <jsonpath>]

  Prints the supplies document as stored on disk, without any normalization.
  With -q, prints only the part selected by a JSONPath expression.

Usage Examples:
# The on-hand inventory of one item (third field of its record).
$ rsc get -q '$[1]["Napkins"][2]'

`
}

func (c *getCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting part of the document.")
}

func (c *getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	data, err := os.ReadFile(s.SuppliesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", s.SuppliesFile, err)
		return subcommands.ExitFailure
	}

	if c.query == "" {
		os.Stdout.Write(data)
		return subcommands.ExitSuccess
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not valid JSON: %v\n", s.SuppliesFile, err)
		return subcommands.ExitFailure
	}

	v, err := jsonpath.Get(c.query, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", c.query, err)
		return subcommands.ExitUsageError
	}
	// jsonpath is never clear about returning a single answer or a list of one.
	if list, ok := v.([]interface{}); ok && len(list) == 1 {
		v = list[0]
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
