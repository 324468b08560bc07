package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	currency string
	path     string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the portfolio positions" }
func (*showCmd) Usage() string {
	return `fol show [-c <currency>] [-raw] [-path <jsonpath>]

  Displays every position with its market value and unrealized gain.

  With -path, evaluates a JSONPath expression against the portfolio document
  {"positions":[{"isin":...,"quantity":...,"purchasePrice":...,"lastPrice":...}]}
  and prints the JSON result, e.g. -path '$.positions[?(@.quantity > 0)].isin'
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Display currency for amounts (e.g. EUR). Plain decimals if empty.")
	f.BoolVar(&rawMarkdown, "raw", false, "print raw markdown instead of rendering it")
	f.StringVar(&c.path, "path", "", "JSONPath expression to query the portfolio")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: no positional arguments are accepted.")
		return subcommands.ExitUsageError
	}
	pf, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.path == "" {
		printMarkdown(renderer.Positions(pf, c.currency))
		return subcommands.ExitSuccess
	}

	result, err := queryPortfolio(pf, c.path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}

// queryPortfolio evaluates a JSONPath expression on the JSON form of pf.
func queryPortfolio(pf folio.Portfolio, path string) (any, error) {
	doc := struct {
		Positions []folio.Position `json:"positions"`
	}{Positions: make([]folio.Position, 0, pf.Len())}
	for _, p := range pf.Positions() {
		doc.Positions = append(doc.Positions, p)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal portfolio: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("cannot unmarshal portfolio: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
