package restock

import (
	"reflect"
	"slices"
	"testing"
)

func TestDecodeConfiguration_LegacyShapes(t *testing.T) {
	testCases := []struct {
		name        string
		doc         string
		wantVersion SchemaVersion
		want        func() *Configuration
		wantMsgs    []string // messages that must appear in the log, in no particular order
	}{
		{
			name:        "two-field record gets inventory and supplier defaults",
			doc:         `{"supply_items": {"Bread": [0.02, "loaves"]}}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.items.Put("Bread", SupplyItem{Coefficient: Q(0.02), Unit: "loaves", Inventory: Q(0), Supplier: ""})
				return c
			},
		},
		{
			name:        "three-field record gets supplier default",
			doc:         `{"supply_items": {"Bread": [0.02, "loaves", 7]}}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.items.Put("Bread", SupplyItem{Coefficient: Q(0.02), Unit: "loaves", Inventory: Q(7), Supplier: ""})
				return c
			},
		},
		{
			name:        "four-field record is taken as is",
			doc:         `{"supply_items": {"Bread": [0.02, "loaves", 7, "Baker & Co"]}}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.items.Put("Bread", SupplyItem{Coefficient: Q(0.02), Unit: "loaves", Inventory: Q(7), Supplier: "Baker & Co"})
				return c
			},
		},
		{
			name:        "bare scalar record is coefficient only",
			doc:         `{"supply_items": {"Bread": 0.02}}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.items.Put("Bread", SupplyItem{Coefficient: Q(0.02)})
				return c
			},
		},
		{
			name:        "positional sales estimates are Monday first",
			doc:         `{"sales_estimates": [100, 0, 0, 0, 0, 0, 80.5]}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.estimates[Monday] = Q(100)
				c.estimates[Sunday] = Q(80.5)
				return c
			},
		},
		{
			name:        "short positional sales default the remaining days",
			doc:         `{"sales_estimates": [100]}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.estimates[Monday] = Q(100)
				return c
			},
		},
		{
			name:        "mapped sales estimates default missing days",
			doc:         `{"sales_estimates": {"Monday": 100, "Friday": 300}}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.estimates[Monday] = Q(100)
				c.estimates[Friday] = Q(300)
				return c
			},
		},
		{
			name:        "missing dark mode defaults to dark",
			doc:         `{"sales_estimates": {}, "supply_items": {}}`,
			wantVersion: SchemaObject,
			want:        NewConfiguration,
		},
		{
			name:        "dark mode false round-trips",
			doc:         `{"dark_mode": false}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.darkMode = false
				return c
			},
		},
		{
			name:        "tuple root document",
			doc:         `[[1, 2, 3, 4, 5, 6, 7], {"Bread": [0.02, "loaves", 1, "Baker & Co"]}, false]`,
			wantVersion: SchemaTuple,
			want: func() *Configuration {
				c := NewConfiguration()
				for i, d := range Weekdays() {
					c.estimates[d] = Q(i + 1)
				}
				c.items.Put("Bread", SupplyItem{Coefficient: Q(0.02), Unit: "loaves", Inventory: Q(1), Supplier: "Baker & Co"})
				c.darkMode = false
				return c
			},
		},
		{
			name:        "short tuple keeps defaults for missing elements",
			doc:         `[[100, 0, 0, 0, 0, 0, 0]]`,
			wantVersion: SchemaTuple,
			want: func() *Configuration {
				c := NewConfiguration()
				c.estimates[Monday] = Q(100)
				return c
			},
		},
		{
			name:        "numeric strings are coerced to numbers",
			doc:         `{"sales_estimates": {"Monday": "100"}, "supply_items": {"Bread": ["0.02", "loaves"]}}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.estimates[Monday] = Q(100)
				c.items.Put("Bread", SupplyItem{Coefficient: Q(0.02), Unit: "loaves"})
				return c
			},
		},
		{
			name:        "non-numeric coefficient is reset with a warning",
			doc:         `{"supply_items": {"Bread": ["a lot", "loaves"]}}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.items.Put("Bread", SupplyItem{Coefficient: Q(0), Unit: "loaves"})
				return c
			},
			wantMsgs: []string{"Invalid coefficient for Bread, reset to 0"},
		},
		{
			name:        "non-numeric inventory is reset with a warning",
			doc:         `{"supply_items": {"Bread": [0.02, "loaves", true]}}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.items.Put("Bread", SupplyItem{Coefficient: Q(0.02), Unit: "loaves"})
				return c
			},
			wantMsgs: []string{"Invalid inventory for Bread, reset to 0"},
		},
		{
			name:        "non-numeric day estimate is reset with a warning",
			doc:         `{"sales_estimates": {"Monday": "abc", "Tuesday": 50}}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.estimates[Tuesday] = Q(50)
				return c
			},
			wantMsgs: []string{"Invalid number for Monday, reset to 0"},
		},
		{
			name:        "unknown day key is ignored with a warning",
			doc:         `{"sales_estimates": {"Caturday": 12}}`,
			wantVersion: SchemaObject,
			want:        NewConfiguration,
			wantMsgs:    []string{`Ignoring unknown day "Caturday" in sales estimates`},
		},
		{
			name:        "record longer than four fields keeps the first four",
			doc:         `{"supply_items": {"Bread": [0.02, "loaves", 7, "Baker & Co", "???"]}}`,
			wantVersion: SchemaObject,
			want: func() *Configuration {
				c := NewConfiguration()
				c.items.Put("Bread", SupplyItem{Coefficient: Q(0.02), Unit: "loaves", Inventory: Q(7), Supplier: "Baker & Co"})
				return c
			},
			wantMsgs: []string{"Ignoring extra fields for Bread"},
		},
		{
			name:        "extra tuple elements are ignored with a warning",
			doc:         `[[0,0,0,0,0,0,0], {}, true, "???"]`,
			wantVersion: SchemaTuple,
			want:        NewConfiguration,
			wantMsgs:    []string{"Ignoring 1 extra document elements"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msgs := NewMessageLog()
			got, version, err := DecodeConfiguration([]byte(tc.doc), msgs)
			if err != nil {
				t.Fatalf("DecodeConfiguration() unexpected error: %v", err)
			}
			if version != tc.wantVersion {
				t.Errorf("DecodeConfiguration() version = %v, want %v", version, tc.wantVersion)
			}
			want := tc.want()
			if !got.Equal(want) {
				t.Errorf("DecodeConfiguration(%s) = %+v, want %+v", tc.doc, got, want)
			}
			if got.Dirty() {
				t.Error("DecodeConfiguration() produced a dirty configuration")
			}
			history := msgs.History()
			for _, wantMsg := range tc.wantMsgs {
				if !slices.Contains(history, wantMsg) {
					t.Errorf("DecodeConfiguration() messages = %v, want them to contain %q", history, wantMsg)
				}
			}
		})
	}
}

func TestDecodeConfiguration_PreservesItemOrder(t *testing.T) {
	doc := `{"supply_items": {"Zebra bags": 1, "Apples": 2, "Mango juice": 3}}`
	got, _, err := DecodeConfiguration([]byte(doc), nil)
	if err != nil {
		t.Fatalf("DecodeConfiguration() unexpected error: %v", err)
	}
	wantNames := []string{"Zebra bags", "Apples", "Mango juice"}
	if gotNames := got.Items().Names(); !reflect.DeepEqual(gotNames, wantNames) {
		t.Errorf("DecodeConfiguration() item order = %v, want %v (document order)", gotNames, wantNames)
	}
}

func TestDecodeConfiguration_Unreadable(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "not JSON", doc: "once upon a time"},
		{name: "empty", doc: ""},
		{name: "truncated object", doc: `{"sales_estimates": {`},
		{name: "bare number", doc: `42`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := DecodeConfiguration([]byte(tc.doc), nil); err == nil {
				t.Errorf("DecodeConfiguration(%q) = nil error, want one", tc.doc)
			}
		})
	}
}
