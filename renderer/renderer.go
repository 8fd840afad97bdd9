package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// RenderHoldings renders the snapshot table to a markdown string.
func RenderHoldings(h *Holdings, opts RenderOptions) string {
	partials := map[string]string{
		"holdings_title":   "holdings_title.md",
		"holdings_table":   "holdings_table.md",
		"holdings_skipped": "holdings_skipped.md",
	}
	return renderTemplate("holdings", "holdings.md", partials, opts.funcs(), h)
}

// RenderOverview renders the latest value of each holding to a markdown string.
func RenderOverview(o *Overview, opts RenderOptions) string {
	partials := map[string]string{
		"holdings_skipped": "holdings_skipped.md",
	}
	return renderTemplate("overview", "overview.md", partials, opts.funcs(), o)
}

// RenderPerformance renders the value series and the benchmark comparison to a markdown string.
func RenderPerformance(p *Performance, opts RenderOptions) string {
	partials := map[string]string{
		"performance_title":      "performance_title.md",
		"performance_comparison": "performance_comparison.md",
		"performance_values":     "performance_values.md",
	}
	return renderTemplate("performance", "performance.md", partials, opts.funcs(), p)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, funcs template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
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
