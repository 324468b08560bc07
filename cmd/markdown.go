package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
)

// rawMarkdown disables terminal rendering.
var rawMarkdown bool

// printMarkdown renders md for the terminal, falling back to the raw markdown.
func printMarkdown(md string) {
	if rawMarkdown {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		log.Printf("warning, cannot create markdown renderer: %v", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("warning, cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
