package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/restock/cmd"
)

// completion describes the command line for shell completion. Install it
// with COMP_INSTALL=1 rsc.
func completion() *complete.Command {
	days := predict.Set{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	strategies := predict.Set{"strict", "lenient"}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"supplies-file":  predict.Files("*.json"),
			"store-strategy": strategies,
			"calc-mode":      predict.Set{"scaled", "direct"},
			"v":              predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"calc": {Flags: map[string]complete.Predictor{
				"days":     days,
				"override": predict.Something,
			}},
			"estimate": {Flags: map[string]complete.Predictor{
				"day":   days,
				"sales": predict.Something,
			}},
			"add": {Flags: map[string]complete.Predictor{
				"name":     predict.Something,
				"unit":     predict.Something,
				"coef":     predict.Something,
				"supplier": predict.Something,
			}},
			"update": {Flags: map[string]complete.Predictor{
				"name":      predict.Something,
				"coef":      predict.Something,
				"unit":      predict.Something,
				"inventory": predict.Something,
				"supplier":  predict.Something,
			}},
			"remove": {Flags: map[string]complete.Predictor{
				"name": predict.Something,
			}},
			"show": {Flags: map[string]complete.Predictor{
				"messages": predict.Nothing,
			}},
			"theme": {Flags: map[string]complete.Predictor{
				"dark":  predict.Nothing,
				"light": predict.Nothing,
			}},
			"fmt": {Flags: map[string]complete.Predictor{
				"to": strategies,
			}},
			"get": {Flags: map[string]complete.Predictor{
				"q": predict.Something,
			}},
			"shell":  {},
			"assist": {},
			"topic": {
				Args: predict.Set{"quickstart", "calculation", "items", "document", "strategies", "shell", "assist", "*"},
			},
		},
	}
}

func main() {
	completion().Complete("rsc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
