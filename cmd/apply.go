package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type applyCmd struct {
	dryRun bool
}

func (*applyCmd) Name() string     { return "apply" }
func (*applyCmd) Synopsis() string { return "apply all updates from JSONL files" }
func (*applyCmd) Usage() string {
	return `fol apply [-dry-run] <file.jsonl>...

  Reads updates from each file (use '-' for stdin) and applies them in order.
  Either every update succeeds and the portfolio file is written, or nothing is.

  Each line is one update:
    {"command":"replace-position","isin":"...","quantity":1,"purchasePrice":1,"lastPrice":1}
    {"command":"delete-position","isin":"..."}
    {"command":"change-quantity","isin":"...","value":1}
    {"command":"change-price-buy","isin":"...","value":1}
    {"command":"change-last-price","isin":"...","value":1}
`
}

func (c *applyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "dry-run", false, "print the resulting portfolio instead of writing it")
}

func (c *applyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one file is required.")
		return subcommands.ExitUsageError
	}

	var transports []folio.Transport
	for _, filename := range f.Args() {
		ts, err := decodeTransportsFile(filename)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		log.Printf("read-updates-file name=%q updates=%d", filename, len(ts))
		transports = append(transports, ts...)
	}

	if !c.dryRun {
		return handleTransports(transports...)
	}

	pf, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	next, err := folio.UpdateAll(pf, transports...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: update rejected:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Positions(next, ""))
	return subcommands.ExitSuccess
}

func decodeTransportsFile(filename string) ([]folio.Transport, error) {
	var r io.Reader = os.Stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("cannot open updates file %q: %w", filename, err)
		}
		defer f.Close()
		r = f
	}
	ts, err := folio.DecodeTransports(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read updates file %q: %w", filename, err)
	}
	return ts, nil
}
