package renderer

import (
	"github.com/etnz/restock"
)

// RequirementsMarkdown renders the required-quantity table in the order the
// engine returned it, one row per selected supply item. The title carries the
// sales total the table was computed from.
func RequirementsMarkdown(rows []restock.Requirement, total restock.Quantity, mode restock.CalcMode) string {
	r := newReport()
	r.Printf("# Supply Requirements (Total Sales = %s)\n\n", total)
	if len(rows) == 0 {
		r.Printf("No supply items selected, nothing to restock.\n")
		return r.String()
	}

	coefficient := "Coefficient"
	if mode == restock.ModeScaled {
		coefficient = "UPT Coefficient"
	}
	r.Printf("| Item | Unit | %s | Inventory | Supplier | Required |\n", coefficient)
	r.Printf("|:---|:---|---:|---:|:---|---:|\n")
	places := mode.DisplayPlaces()
	for _, row := range rows {
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			escapeCell(row.Name),
			escapeCell(row.Unit),
			row.Coefficient,
			row.Inventory,
			escapeCell(row.Supplier),
			row.Required.StringFixed(places),
		)
	}
	return r.String()
}
