package restock

import (
	"strings"
	"testing"
)

// sampleConfiguration builds the document used by the golden encoding tests:
// one estimate set, two items in a known insertion order, dark mode on.
func sampleConfiguration() *Configuration {
	c := NewConfiguration()
	c.SetEstimate(Monday, Q(1200))
	c.SetEstimate(Saturday, Q(2.5))
	c.AddItem("Napkins", Q(1.5), "pack", "Acme")
	c.AddItem("Cups", Q(3.2), "sleeve", "")
	c.PutItem("Napkins", SupplyItem{Coefficient: Q(1.5), Unit: "pack", Inventory: Q(2), Supplier: "Acme"})
	return c
}

func TestEncodeConfiguration_Tuple(t *testing.T) {
	data, err := EncodeConfiguration(sampleConfiguration(), SchemaTuple)
	if err != nil {
		t.Fatalf("EncodeConfiguration() returned an unexpected error: %v", err)
	}

	// Quantities are plain numbers, sales are Monday-first, items keep their
	// insertion order, and the document ends with a newline.
	want := `[
  [
    1200,
    0,
    0,
    0,
    0,
    2.5,
    0
  ],
  {
    "Napkins": [
      1.5,
      "pack",
      2,
      "Acme"
    ],
    "Cups": [
      3.2,
      "sleeve",
      0,
      ""
    ]
  },
  true
]
`
	if got := string(data); got != want {
		t.Errorf("tuple document mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeConfiguration_Object(t *testing.T) {
	data, err := EncodeConfiguration(sampleConfiguration(), SchemaObject)
	if err != nil {
		t.Fatalf("EncodeConfiguration() returned an unexpected error: %v", err)
	}

	want := `{
  "sales_estimates": {
    "Monday": 1200,
    "Tuesday": 0,
    "Wednesday": 0,
    "Thursday": 0,
    "Friday": 0,
    "Saturday": 2.5,
    "Sunday": 0
  },
  "supply_items": {
    "Napkins": [
      1.5,
      "pack",
      2,
      "Acme"
    ],
    "Cups": [
      3.2,
      "sleeve",
      0,
      ""
    ]
  },
  "dark_mode": true
}
`
	if got := string(data); got != want {
		t.Errorf("object document mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeConfiguration_RoundTrip(t *testing.T) {
	c := sampleConfiguration()
	c.SetDarkMode(false)
	for _, v := range []SchemaVersion{SchemaTuple, SchemaObject} {
		t.Run(v.String(), func(t *testing.T) {
			data, err := EncodeConfiguration(c, v)
			if err != nil {
				t.Fatalf("EncodeConfiguration(): %v", err)
			}
			got, version, err := DecodeConfiguration(data, nil)
			if err != nil {
				t.Fatalf("DecodeConfiguration(): %v", err)
			}
			if version != v {
				t.Errorf("decoded version = %v, want %v", version, v)
			}
			if !got.Equal(c) {
				t.Errorf("round-tripped configuration differs")
			}
		})
	}
}

func TestEncodeConfiguration_ItemOrderStable(t *testing.T) {
	c := NewConfiguration()
	// Deliberately not alphabetical: the document must keep this order.
	for _, name := range []string{"Zebra tissues", "Apple stickers", "Mango wraps"} {
		c.AddItem(name, Q(1), "box", "")
	}
	data, err := EncodeConfiguration(c, SchemaTuple)
	if err != nil {
		t.Fatalf("EncodeConfiguration(): %v", err)
	}
	doc := string(data)
	z, a, m := strings.Index(doc, "Zebra"), strings.Index(doc, "Apple"), strings.Index(doc, "Mango")
	if z < 0 || a < 0 || m < 0 || !(z < a && a < m) {
		t.Errorf("items not in insertion order:\n%s", doc)
	}
}

func TestSchemaVersionString(t *testing.T) {
	if got := SchemaTuple.String(); got != "tuple" {
		t.Errorf("SchemaTuple.String() = %q", got)
	}
	if got := SchemaObject.String(); got != "object" {
		t.Errorf("SchemaObject.String() = %q", got)
	}
}

func TestSniffSchema(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		want    SchemaVersion
		wantErr bool
	}{
		{name: "tuple root", data: `[[0],{},true]`, want: SchemaTuple},
		{name: "object root", data: `{"dark_mode":true}`, want: SchemaObject},
		{name: "leading whitespace", data: "\n\t [1]", want: SchemaTuple},
		{name: "empty", data: "", wantErr: true},
		{name: "blank", data: "   \n", wantErr: true},
		{name: "scalar root", data: `42`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SniffSchema([]byte(tc.data))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("SniffSchema(%q) = %v, want error", tc.data, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("SniffSchema(%q): %v", tc.data, err)
			}
			if got != tc.want {
				t.Errorf("SniffSchema(%q) = %v, want %v", tc.data, got, tc.want)
			}
		})
	}
}
