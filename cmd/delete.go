package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	isin string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a position" }
func (*deleteCmd) Usage() string {
	return `fol delete -isin <isin>

  Removes an existing position. It fails if the portfolio does not hold the ISIN.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.isin, "isin", "", "ISIN of the position to remove")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: no positional arguments are accepted.")
		return subcommands.ExitUsageError
	}
	id, err := parseISIN(c.isin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return handleTransports(folio.Delete(id))
}
