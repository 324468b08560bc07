// Package cmd implements the CLI application to update a portfolio file.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&replaceCmd{}, "updates")
	c.Register(&deleteCmd{}, "updates")
	c.Register(newSetCmd("set-quantity", "quantity", folio.SetQuantity), "updates")
	c.Register(newSetCmd("set-buy-price", "purchase price", folio.SetPriceBuy), "updates")
	c.Register(newSetCmd("set-last-price", "last price", folio.SetLastPrice), "updates")

	c.Register(&applyCmd{}, "files")

	c.Register(&showCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", defaultPortfolioFile(), "Path to the portfolio file (JSONL format). Defaults to $FOLIO_FILE if set.")

func defaultPortfolioFile() string {
	if f := os.Getenv("FOLIO_FILE"); f != "" {
		return f
	}
	return "portfolio.jsonl"
}

// DecodePortfolio decodes the portfolio from the app portfolio file.
// A missing file is an empty portfolio.
func DecodePortfolio() (folio.Portfolio, error) {
	filename := *portfolioFile
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, portfolio file %q does not exist, starting from an empty portfolio", filename)
		return folio.NewPortfolio(), nil
	}
	if err != nil {
		return folio.Portfolio{}, fmt.Errorf("cannot open portfolio file %q: %w", filename, err)
	}
	defer f.Close()

	pf, err := folio.DecodePortfolio(f)
	if err != nil {
		return folio.Portfolio{}, fmt.Errorf("cannot read portfolio file %q: %w", filename, err)
	}
	return pf, nil
}

// EncodePortfolio writes pf into the app portfolio file. The file is replaced
// only once fully written.
func EncodePortfolio(pf folio.Portfolio) error {
	filename := *portfolioFile
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".portfolio-*.jsonl")
	if err != nil {
		return fmt.Errorf("persist error: cannot create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := folio.EncodePortfolio(tmp, pf); err != nil {
		tmp.Close()
		return fmt.Errorf("persist error: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist error: cannot write to file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("persist error: cannot replace %q: %w", filename, err)
	}
	log.Printf("write-portfolio-file name=%q positions=%d", filename, pf.Len())
	return nil
}

// handleTransports loads the portfolio, applies ts in order and saves the
// result. Nothing is written if any transport fails.
func handleTransports(ts ...folio.Transport) subcommands.ExitStatus {
	pf, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	next, err := folio.UpdateAll(pf, ts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: update rejected:", err)
		return subcommands.ExitFailure
	}

	if err := EncodePortfolio(next); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully applied %d update(s) to %s\n", len(ts), *portfolioFile)
	return subcommands.ExitSuccess
}

// parseISIN reads the -isin flag value. Malformed identifiers are accepted
// with a warning.
func parseISIN(s string) (folio.ISIN, error) {
	if s == "" {
		return "", errors.New("-isin flag is required")
	}
	id := folio.ISIN(s)
	if err := id.Validate(); err != nil {
		log.Printf("warning, %q is not a standard ISIN: %v", s, err)
	}
	return id, nil
}
