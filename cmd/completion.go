package cmd

import (
	"flag"

	"github.com/etnz/kvitto/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors completes flag values by flag name.
var flagPredictors = map[string]complete.Predictor{
	"data":     predict.Files("*.jsonl"),
	"o":        predict.Files("*"),
	"r":        predict.Files("*"),
	"i":        predict.Files("*"),
	"table":    predict.Set(exportTables),
	"p":        predict.Set{"day", "week", "month", "quarter", "year"},
	"currency": predict.Set{"SEK", "NOK", "DKK", "EUR", "USD", "GBP"},
}

// Completion returns the shell completion of the commands registered in c.
//
// Install it with 'COMP_INSTALL=1 kvt'.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: predictFlags(fs)}
		if cmd.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(topics)
			}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
