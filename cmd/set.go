package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

// setCmd changes a single field of an existing position.
// The same implementation serves set-quantity, set-buy-price and set-last-price.
type setCmd struct {
	name  string
	field string
	build func(folio.ISIN, folio.PDecimal) folio.PositionTransport

	isin  string
	value string
}

func newSetCmd(name, field string, build func(folio.ISIN, folio.PDecimal) folio.PositionTransport) *setCmd {
	return &setCmd{name: name, field: field, build: build}
}

func (c *setCmd) Name() string     { return c.name }
func (c *setCmd) Synopsis() string { return "set the " + c.field + " of a position" }
func (c *setCmd) Usage() string {
	return fmt.Sprintf(`fol %s -isin <isin> -v <value>

  Sets the %s of an existing position. Other fields are left unchanged.
`, c.name, c.field)
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.isin, "isin", "", "ISIN of the position")
	f.StringVar(&c.value, "v", "", "New "+c.field+" (non-negative decimal)")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: no positional arguments are accepted.")
		return subcommands.ExitUsageError
	}
	id, err := parseISIN(c.isin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.value == "" {
		fmt.Fprintln(os.Stderr, "Error: -v flag is required")
		return subcommands.ExitUsageError
	}
	v, err := folio.ParsePDecimal(c.value)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: invalid -v:", err)
		return subcommands.ExitUsageError
	}
	return handleTransports(c.build(id, v))
}
