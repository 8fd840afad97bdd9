package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// printMarkdown renders md for the terminal, or prints it raw when stdout is not a terminal.
func printMarkdown(md string) {
	fprintMarkdown(os.Stdout, md, term.IsTerminal(int(os.Stdout.Fd())))
}

func fprintMarkdown(w io.Writer, md string, styled bool) {
	if !styled {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, md)
}
