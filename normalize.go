package restock

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// This file rebuilds a Configuration from any previously-seen on-disk shape.
// The persisted schema evolved over the life of the tool (plain dict, then
// tuple with inventory, then tuple with supplier) and old files must still
// load. Each schema version gets its own normalizer, selected by SniffSchema;
// inside a document every salvageable field is kept, every broken one is
// defaulted with a warning on the message log, and only unreadable JSON is an
// error.

// DecodeConfiguration rebuilds a configuration from raw document bytes of any
// known schema version. Salvage warnings are posted to msgs. It fails only
// when the document cannot be parsed as JSON at all.
func DecodeConfiguration(data []byte, msgs *MessageLog) (*Configuration, SchemaVersion, error) {
	if msgs == nil {
		msgs = NewMessageLog()
	}
	version, err := SniffSchema(data)
	if err != nil {
		return nil, version, err
	}

	var c *Configuration
	switch version {
	case SchemaTuple:
		c, err = normalizeTuple(data, msgs)
	case SchemaObject:
		c, err = normalizeObject(data, msgs)
	}
	if err != nil {
		return nil, version, err
	}
	return c, version, nil
}

// normalizeTuple rebuilds a configuration from the positional tuple-root
// shape. Missing trailing elements keep their first-run defaults.
func normalizeTuple(data []byte, msgs *MessageLog) (*Configuration, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("malformed tuple document: %w", err)
	}

	c := NewConfiguration()
	if len(elements) > 0 {
		c.estimates = normalizeSales(elements[0], msgs)
	}
	if len(elements) > 1 {
		c.items = normalizeItems(elements[1], msgs)
	}
	if len(elements) > 2 {
		c.darkMode = normalizeDarkMode(elements[2], msgs)
	}
	if len(elements) > 3 {
		msgs.Postf("Ignoring %d extra document elements", len(elements)-3)
	}
	return c, nil
}

// normalizeObject rebuilds a configuration from the object-root shape.
// Missing keys keep their first-run defaults.
func normalizeObject(data []byte, msgs *MessageLog) (*Configuration, error) {
	var doc struct {
		Sales json.RawMessage `json:"sales_estimates"`
		Items json.RawMessage `json:"supply_items"`
		Dark  json.RawMessage `json:"dark_mode"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}

	c := NewConfiguration()
	if present(doc.Sales) {
		c.estimates = normalizeSales(doc.Sales, msgs)
	}
	if present(doc.Items) {
		c.items = normalizeItems(doc.Items, msgs)
	}
	if present(doc.Dark) {
		c.darkMode = normalizeDarkMode(doc.Dark, msgs)
	}
	return c, nil
}

// present reports whether a raw document part carries an actual value.
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// normalizeSales accepts either the ordered 7-element positional form
// (Monday first) or a mapping keyed by day name. Days absent from the source
// stay at 0.
func normalizeSales(raw json.RawMessage, msgs *MessageLog) SalesEstimates {
	se := NewSalesEstimates()
	trimmed := bytes.TrimSpace(raw)
	if !present(trimmed) {
		return se
	}

	switch trimmed[0] {
	case '[':
		var values []any
		if err := json.Unmarshal(trimmed, &values); err != nil {
			msgs.Post("Sales estimates are unreadable, reset to 0")
			return se
		}
		if len(values) > 7 {
			msgs.Postf("Ignoring %d extra sales estimates", len(values)-7)
			values = values[:7]
		}
		for i, v := range values {
			day := Weekday(i)
			q, ok := coerceQuantity(v)
			if !ok {
				msgs.Postf("Invalid number for %s, reset to 0", day)
				continue
			}
			se[day] = q
		}
	case '{':
		var values map[string]any
		if err := json.Unmarshal(trimmed, &values); err != nil {
			msgs.Post("Sales estimates are unreadable, reset to 0")
			return se
		}
		for key, v := range values {
			day, err := ParseWeekday(key)
			if err != nil {
				msgs.Postf("Ignoring unknown day %q in sales estimates", key)
				continue
			}
			q, ok := coerceQuantity(v)
			if !ok {
				msgs.Postf("Invalid number for %s, reset to 0", day)
				continue
			}
			se[day] = q
		}
	default:
		msgs.Post("Sales estimates are unreadable, reset to 0")
	}
	return se
}

// normalizeItems rebuilds the supply items from a name-to-record mapping.
func normalizeItems(raw json.RawMessage, msgs *MessageLog) *Items {
	items := NewItems()
	trimmed := bytes.TrimSpace(raw)
	if !present(trimmed) {
		return items
	}

	// Scan the object with the token decoder: it is the only way to keep the
	// document order of the supply items, a map would lose it.
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		msgs.Post("Supply items are unreadable, starting with none")
		return items
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			msgs.Post("Supply items are unreadable, keeping the ones read so far")
			return items
		}
		name, _ := keyTok.(string)
		var record json.RawMessage
		if err := dec.Decode(&record); err != nil {
			msgs.Postf("Supply item %q is unreadable, keeping the ones read so far", name)
			return items
		}
		items.Put(name, normalizeItemRecord(name, record, msgs))
	}
	return items
}

// normalizeItemRecord accepts a record of length 2 (coefficient, unit),
// 3 (plus inventory) or 4 (plus supplier), or a bare scalar treated as
// coefficient-only. Absent fields get their defaults, broken numeric fields
// are reset to 0 with a warning, never stored as text.
func normalizeItemRecord(name string, raw json.RawMessage, msgs *MessageLog) SupplyItem {
	item := SupplyItem{Coefficient: Q(0), Inventory: Q(0)}

	var fields []any
	if err := json.Unmarshal(raw, &fields); err != nil {
		// the oldest shape: a bare scalar holding the coefficient
		var scalar any
		if err := json.Unmarshal(raw, &scalar); err != nil {
			msgs.Postf("Invalid record for %s, reset to defaults", name)
			return item
		}
		fields = []any{scalar}
	}

	if len(fields) > 4 {
		msgs.Postf("Ignoring extra fields for %s", name)
		fields = fields[:4]
	}
	if len(fields) > 0 {
		if q, ok := coerceQuantity(fields[0]); ok {
			item.Coefficient = q
		} else {
			msgs.Postf("Invalid coefficient for %s, reset to 0", name)
		}
	}
	if len(fields) > 1 {
		item.Unit = coerceLabel(fields[1], name, "unit", msgs)
	}
	if len(fields) > 2 {
		if q, ok := coerceQuantity(fields[2]); ok {
			item.Inventory = q
		} else {
			msgs.Postf("Invalid inventory for %s, reset to 0", name)
		}
	}
	if len(fields) > 3 {
		item.Supplier = coerceLabel(fields[3], name, "supplier", msgs)
	}
	return item
}

// normalizeDarkMode accepts a bool, defaulting to dark on anything else to
// match first-run behavior.
func normalizeDarkMode(raw json.RawMessage, msgs *MessageLog) bool {
	var dark bool
	if err := json.Unmarshal(bytes.TrimSpace(raw), &dark); err != nil {
		msgs.Post("Invalid dark mode preference, reset to dark")
		return true
	}
	return dark
}

// coerceQuantity converts a decoded JSON value to a Quantity. Numbers and
// numeric strings convert, everything else fails.
func coerceQuantity(v any) (Quantity, bool) {
	switch value := v.(type) {
	case float64:
		return Q(value), true
	case json.Number:
		q, err := ParseQuantity(value.String())
		return q, err == nil
	case string:
		q, err := ParseQuantity(value)
		return q, err == nil
	}
	return Q(0), false
}

// coerceLabel converts a decoded JSON value to a free-text label.
func coerceLabel(v any, name, field string, msgs *MessageLog) string {
	switch value := v.(type) {
	case string:
		return value
	case nil:
		return ""
	}
	msgs.Postf("Invalid %s for %s, reset to empty", field, name)
	return ""
}
