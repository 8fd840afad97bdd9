package renderer

import (
	"embed"
	"fmt"
	"html"
	"text/template"

	"github.com/sgc/portfolio"
)

//go:embed *.md
var templates embed.FS

// RenderOptions holds configuration for rendering a report.
type RenderOptions struct {
	HTML bool // Wrap return figures in styled spans for the web UI.
}

// funcs returns the template functions for opts.
func (opts RenderOptions) funcs() template.FuncMap {
	return template.FuncMap{
		"ret": func(p portfolio.Percent) string {
			if !opts.HTML {
				return p.String()
			}
			style := portfolio.ReturnStyle(p)
			if style == "" {
				return html.EscapeString(p.String())
			}
			return fmt.Sprintf(`<span style="%s">%s</span>`, style, html.EscapeString(p.String()))
		},
	}
}
