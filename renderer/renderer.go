// Package renderer renders portfolios as markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate renders a single embedded template file with data.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, "templates/"+file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
