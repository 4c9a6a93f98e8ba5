// Package renderer generates markdown reports from the supplies
// configuration and the computed requirement tables.
//
// Everything here is presentation: quantities are rounded for display by the
// active calculation mode, while the engine itself works in full precision.
package renderer

import (
	"fmt"
	"strings"
)

// report accumulates a markdown document.
type report struct{ *strings.Builder }

func newReport() *report { return &report{&strings.Builder{}} }

func (r *report) Printf(format string, args ...any) { fmt.Fprintf(r, format, args...) }

// escapeCell makes a free-text label safe inside a markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
