package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/folio"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func position(id folio.ISIN, quantity, purchasePrice, lastPrice float64) folio.Position {
	return folio.NewPosition(id,
		folio.MustPDecimal(quantity),
		folio.MustPDecimal(purchasePrice),
		folio.MustPDecimal(lastPrice),
	)
}

func samplePortfolio() folio.Portfolio {
	return folio.NewPortfolio(
		position("US38259P5089", 2, 50, 40),
		position("US0378331005", 10, 100, 120),
	)
}

func TestPositions(t *testing.T) {
	got := Positions(samplePortfolio(), "")
	want := `# Portfolio

| ISIN | Quantity | Purchase Price | Last Price | Market Value | Gain |
|:-----|---------:|---------------:|-----------:|-------------:|-----:|
| US0378331005 | 10 | 100.00 | 120.00 | 1200.00 | +200.00 |
| US38259P5089 | 2 | 50.00 | 40.00 | 80.00 | -20.00 |
| **Total** | | | | **1280.00** | **+180.00** |
`
	if got != want {
		t.Errorf("Positions() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestPositions_Empty(t *testing.T) {
	got := Positions(folio.NewPortfolio(), "")
	want := "# Portfolio\n\n_No positions._\n"
	if got != want {
		t.Errorf("Positions() = %q, want %q", got, want)
	}
}

func TestPositions_Currency(t *testing.T) {
	pf := folio.NewPortfolio(position("US0378331005", 10, 100, 123.456))
	got := Positions(pf, "USD")
	for _, want := range []string{"$100.00", "$123.46", "$1,234.56", "+$234.56"} {
		if !strings.Contains(got, want) {
			t.Errorf("Positions() does not contain %q:\n%s", want, got)
		}
	}
}

func TestPositions_IsMarkdownTable(t *testing.T) {
	source := []byte(Positions(samplePortfolio(), "EUR"))

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))

	var tables, rows, headers int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			tables++
		case *east.TableHeader:
			headers++
		case *east.TableRow:
			rows++
		}
		return ast.WalkContinue, nil
	})

	if tables != 1 || headers != 1 {
		t.Fatalf("got %d tables and %d headers, want 1 and 1", tables, headers)
	}
	// two positions and the total.
	if rows != 3 {
		t.Errorf("got %d table rows, want 3", rows)
	}
}
