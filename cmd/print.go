package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"github.com/etnz/restock/renderer"
)

// printMarkdown renders markdown on w through glamour, styled for the given
// display preference. When rendering fails the raw markdown is still
// printed, a report must never be lost to a styling problem.
func printMarkdown(w io.Writer, md string, darkMode bool) {
	out, err := glamour.Render(md, renderer.ThemeName(darkMode))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
