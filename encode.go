package restock

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// This file contains code to persist the configuration as a single supplies
// document, in a way that is human-readable and diff-friendly.
//
// The overall strategy is as follows:
//   Encode: flatten the configuration back into the active schema's shape,
//           writing supply items in insertion order (a plain map marshal
//           would sort them), then indent the whole document.
//   Decode: sniff the root shape to pick a schema version, then let the
//           matching normalizer in normalize.go rebuild the configuration.

func init() {
	// Quantities are persisted as plain JSON numbers, never quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// SchemaVersion tags the shape of a persisted supplies document.
type SchemaVersion int

const (
	// SchemaObject is the loose object-root shape used by most iterations of
	// the tool: {"sales_estimates": ..., "supply_items": ..., "dark_mode": ...}.
	SchemaObject SchemaVersion = iota
	// SchemaTuple is the strict positional tuple-root shape:
	// [salesEstimates(7 numbers), supplyItems(name to 4-field record), darkMode].
	SchemaTuple
)

func (v SchemaVersion) String() string {
	switch v {
	case SchemaTuple:
		return "tuple"
	case SchemaObject:
		return "object"
	}
	return fmt.Sprintf("SchemaVersion(%d)", int(v))
}

// SniffSchema identifies the document shape from its first JSON token, so
// that the matching normalizer can be selected without scattering shape
// checks through the store.
func SniffSchema(data []byte) (SchemaVersion, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return SchemaObject, fmt.Errorf("document is empty")
	}
	switch trimmed[0] {
	case '[':
		return SchemaTuple, nil
	case '{':
		return SchemaObject, nil
	}
	return SchemaObject, fmt.Errorf("unrecognized document shape, starts with %q", rune(trimmed[0]))
}

// EncodeConfiguration serializes the full configuration into the given
// document shape, indented for humans. Supply items are written in insertion
// order, sales estimates in Monday-first order.
func EncodeConfiguration(c *Configuration, v SchemaVersion) ([]byte, error) {
	items, err := encodeItems(c.items)
	if err != nil {
		return nil, err
	}

	var raw []byte
	switch v {
	case SchemaTuple:
		sales := make([]Quantity, 0, 7)
		for _, d := range Weekdays() {
			sales = append(sales, c.estimates[d])
		}
		raw, err = json.Marshal([]any{sales, json.RawMessage(items), c.darkMode})
	case SchemaObject:
		sales := &jsonObjectWriter{}
		for _, d := range Weekdays() {
			sales.Append(d.String(), c.estimates[d])
		}
		doc := &jsonObjectWriter{}
		doc.Append("sales_estimates", sales).
			Append("supply_items", json.RawMessage(items)).
			Append("dark_mode", c.darkMode)
		raw, err = doc.MarshalJSON()
	default:
		return nil, fmt.Errorf("unknown schema version %v", v)
	}
	if err != nil {
		return nil, fmt.Errorf("could not encode configuration: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("could not indent configuration document: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// encodeItems flattens the items back into name to [coefficient, unit,
// inventory, supplier] records, in insertion order.
func encodeItems(items *Items) ([]byte, error) {
	w := &jsonObjectWriter{}
	for name, item := range items.All() {
		w.Append(name, []any{item.Coefficient, item.Unit, item.Inventory, item.Supplier})
	}
	return w.MarshalJSON()
}
