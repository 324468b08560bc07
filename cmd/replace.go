package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

type replaceCmd struct {
	isin          string
	quantity      string
	purchasePrice string
	lastPrice     string
}

func (*replaceCmd) Name() string     { return "replace" }
func (*replaceCmd) Synopsis() string { return "insert or overwrite a position" }
func (*replaceCmd) Usage() string {
	return `fol replace -isin <isin> [-q <quantity>] [-pb <purchase price>] [-lp <last price>]

  Inserts a position, or overwrites the position already held under the same ISIN.
  Omitted values are zero.
`
}

func (c *replaceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.isin, "isin", "", "ISIN of the position")
	f.StringVar(&c.quantity, "q", "0", "Quantity held")
	f.StringVar(&c.purchasePrice, "pb", "0", "Purchase price per unit")
	f.StringVar(&c.lastPrice, "lp", "0", "Last price per unit")
}

func (c *replaceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: no positional arguments are accepted.")
		return subcommands.ExitUsageError
	}
	id, err := parseISIN(c.isin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var values [3]folio.PDecimal
	for i, flagValue := range []struct{ name, value string }{
		{"q", c.quantity},
		{"pb", c.purchasePrice},
		{"lp", c.lastPrice},
	} {
		values[i], err = folio.ParsePDecimal(flagValue.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -%s: %v\n", flagValue.name, err)
			return subcommands.ExitUsageError
		}
	}

	return handleTransports(folio.Replace(folio.NewPosition(id, values[0], values[1], values[2])))
}
