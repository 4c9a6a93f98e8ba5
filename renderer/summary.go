package renderer

import (
	"github.com/etnz/restock"
)

// ConfigurationMarkdown renders the whole supplies configuration: the weekday
// sales estimates, the supply items in their stored order, and the display
// preference.
func ConfigurationMarkdown(c *restock.Configuration) string {
	r := newReport()
	r.Printf("# Supplies Configuration\n\n")

	r.Printf("## Sales Estimates\n\n")
	r.Printf("| Day | Forecast Sales |\n")
	r.Printf("|:---|---:|\n")
	for _, d := range restock.Weekdays() {
		r.Printf("| %s | %s |\n", d, c.Estimate(d))
	}

	r.Printf("\n## Supply Items\n\n")
	items := c.Items()
	if items.Len() == 0 {
		r.Printf("None yet. Add one with `rsc add`.\n")
	} else {
		r.Printf("| Item | Unit | Coefficient | Inventory | Supplier |\n")
		r.Printf("|:---|:---|---:|---:|:---|\n")
		for name, item := range items.All() {
			r.Printf("| %s | %s | %s | %s | %s |\n",
				escapeCell(name),
				escapeCell(item.Unit),
				item.Coefficient,
				item.Inventory,
				escapeCell(item.Supplier),
			)
		}
	}

	r.Printf("\nTheme: %s\n", ThemeName(c.DarkMode()))
	return r.String()
}

// ThemeName returns the glamour style name matching the display preference.
func ThemeName(darkMode bool) string {
	if darkMode {
		return "dark"
	}
	return "light"
}
