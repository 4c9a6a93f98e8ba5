package restock

import (
	"encoding/json"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0", want: "0"},
		{in: "1200", want: "1200"},
		{in: "1.5", want: "1.5"},
		{in: "-2.75", want: "-2.75"},
		{in: ".5", want: "0.5"},
		{in: "2.", wantErr: true},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "12a", wantErr: true},
		{in: "1,5", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseQuantity(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseQuantity(%q) = %s, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseQuantity(%q): %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseQuantity(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestQuantity_ArithmeticIsExact(t *testing.T) {
	// The textbook float trap: 0.1 + 0.2 must be exactly 0.3.
	if got := Q(0.1).Add(Q(0.2)); !got.Equal(Q(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}

	// The scaled requirement formula on the quickstart numbers.
	got := Q(2100).Div(Q(1000)).Mul(Q(1.5)).Sub(Q(2))
	if !got.Equal(Q(1.15)) {
		t.Errorf("2100/1000*1.5 - 2 = %s, want 1.15", got)
	}
}

func TestQuantity_Predicates(t *testing.T) {
	if !Q(0).IsZero() || Q(0).IsPositive() || Q(0).IsNegative() {
		t.Errorf("zero predicates wrong")
	}
	if !Q(3).IsPositive() || Q(3).IsNegative() {
		t.Errorf("positive predicates wrong")
	}
	if !Q(-3).IsNegative() || Q(-3).IsPositive() {
		t.Errorf("negative predicates wrong")
	}
	if !Q(1).LessThan(Q(2)) || Q(2).LessThan(Q(1)) {
		t.Errorf("LessThan wrong")
	}
	if !Q(2).GreaterThan(Q(1)) || Q(1).GreaterThan(Q(2)) {
		t.Errorf("GreaterThan wrong")
	}
	// Equal compares value, not representation.
	two, _ := ParseQuantity("2.0")
	if !two.Equal(Q(2)) {
		t.Errorf("2.0 != 2")
	}
}

func TestQuantity_StringFixed(t *testing.T) {
	cases := []struct {
		q      Quantity
		places int32
		want   string
	}{
		{Q(1.15), 3, "1.150"},
		{Q(6.72), 3, "6.720"},
		{Q(1.2345), 2, "1.23"},
		{Q(1.235), 2, "1.24"},
		{Q(0), 3, "0.000"},
		{Q(42), 2, "42.00"},
	}
	for _, tc := range cases {
		if got := tc.q.StringFixed(tc.places); got != tc.want {
			t.Errorf("%s.StringFixed(%d) = %q, want %q", tc.q, tc.places, got, tc.want)
		}
	}
}

func TestQuantity_JSON(t *testing.T) {
	// Quantities persist as plain numbers, never quoted.
	data, err := json.Marshal(Q(1.5))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "1.5" {
		t.Errorf("Marshal(1.5) = %s, want unquoted 1.5", data)
	}

	var q Quantity
	if err := json.Unmarshal([]byte("2.75"), &q); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !q.Equal(Q(2.75)) {
		t.Errorf("Unmarshal(2.75) = %s", q)
	}
	// Quoted numbers are accepted too, legacy documents carry them.
	if err := json.Unmarshal([]byte(`"3.5"`), &q); err != nil {
		t.Fatalf("Unmarshal quoted: %v", err)
	}
	if !q.Equal(Q(3.5)) {
		t.Errorf("Unmarshal(\"3.5\") = %s", q)
	}
	if err := json.Unmarshal([]byte(`"abc"`), &q); err == nil {
		t.Errorf("Unmarshal accepted a non-number")
	}
}
