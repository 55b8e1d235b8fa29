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

// ProjectionRenderOptions holds configuration for rendering a
// projection report.
type ProjectionRenderOptions struct {
	SkipEntities bool // Do not render the per-entity breakdown.
}

// RenderProjection renders the Projection struct to a markdown string.
func RenderProjection(p *Projection, opts ProjectionRenderOptions) string {
	partials := map[string]string{
		"projection_title": "projection_title.md",
		"projection_years": "projection_years.md",
	}
	if opts.SkipEntities {
		partials["projection_entities"] = ""
	} else {
		partials["projection_entities"] = "projection_entities.md"
	}
	return renderTemplate("projection", "projection.md", partials, p)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
