package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the subcommands of c and their flags for shell
// completion. top holds the global flags.
func Completion(c *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(top),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if sc.Name() == "apply" {
			sub.Args = predict.Files("*.jsonl")
		}
		root.Sub[sc.Name()] = sub
	})
	return root
}

// flagPredictors predicts values for every flag of fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case isBoolFlag(f):
			predictors[f.Name] = predict.Nothing
		case f.Name == "portfolio-file":
			predictors[f.Name] = predict.Files("*.jsonl")
		case f.Name == "c":
			predictors[f.Name] = predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"}
		default:
			predictors[f.Name] = predict.Something
		}
	})
	return predictors
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
