package restock

import (
	"fmt"
	"strings"
)

// CalcMode names the two required-quantity conventions the tool has used
// over its life. They are incompatible, a deployment picks one and never
// mixes them within a run.
type CalcMode int

const (
	// ModeScaled computes required = total/1000 * coefficient - inventory,
	// the inventory-aware convention.
	ModeScaled CalcMode = iota
	// ModeDirect computes required = total * coefficient, the plain
	// per-unit convention that ignores inventory.
	ModeDirect
)

func (m CalcMode) String() string {
	switch m {
	case ModeScaled:
		return "scaled"
	case ModeDirect:
		return "direct"
	}
	return fmt.Sprintf("CalcMode(%d)", int(m))
}

// ParseCalcMode parses a calculation mode name, "scaled" or "direct".
func ParseCalcMode(str string) (CalcMode, error) {
	switch str {
	case "scaled":
		return ModeScaled, nil
	case "direct":
		return ModeDirect, nil
	}
	return ModeScaled, fmt.Errorf("invalid calculation mode %q, want scaled or direct", str)
}

// DisplayPlaces returns the number of decimal places requirement tables show
// in this mode. The engine itself always returns full precision.
func (m CalcMode) DisplayPlaces() int32 {
	if m == ModeDirect {
		return 2
	}
	return 3
}

var thousand = Q(1000)

// Requirement is one row of the computed requirement table.
type Requirement struct {
	Name        string
	Unit        string
	Coefficient Quantity
	Inventory   Quantity
	Supplier    string
	Required    Quantity
}

// Total computes the sales total the requirements are based on: the sum of
// the estimates of the selected days, or the override when one is given. The
// override replaces the day sum entirely, it never adds to it. An override
// that does not parse as a number is a *FieldError.
func Total(estimates SalesEstimates, days []Weekday, override string) (Quantity, error) {
	if o := strings.TrimSpace(override); o != "" {
		q, err := ParseQuantity(o)
		if err != nil {
			return Quantity{}, &FieldError{Field: "Override", Value: override}
		}
		return q, nil
	}

	total := Q(0)
	var seen [7]bool
	for _, d := range days {
		if d < Monday || d > Sunday || seen[d] {
			continue
		}
		seen[d] = true
		total = total.Add(estimates[d])
	}
	return total, nil
}

// Recalculate maps the current estimates, day selection, optional override
// and supply items to the required-quantity table. It is pure: no I/O, no
// mutation of its inputs, and identical inputs yield identical output.
//
// On a broken override it returns no rows at all rather than a partial
// table, so callers keep showing the previous result.
func Recalculate(estimates SalesEstimates, days []Weekday, override string, items *Items, mode CalcMode) ([]Requirement, error) {
	total, err := Total(estimates, days, override)
	if err != nil {
		return nil, err
	}

	rows := make([]Requirement, 0, items.Len())
	for name, item := range items.All() {
		var required Quantity
		switch mode {
		case ModeDirect:
			required = total.Mul(item.Coefficient)
		default:
			required = total.Div(thousand).Mul(item.Coefficient).Sub(item.Inventory)
		}
		// inventory already covering the need reads as 0, never negative
		if required.IsNegative() {
			required = Q(0)
		}
		rows = append(rows, Requirement{
			Name:        name,
			Unit:        item.Unit,
			Coefficient: item.Coefficient,
			Inventory:   item.Inventory,
			Supplier:    item.Supplier,
			Required:    required,
		})
	}
	return rows, nil
}
