package restock

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestWeekdaysOrder(t *testing.T) {
	want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	days := Weekdays()
	if len(days) != 7 {
		t.Fatalf("Weekdays() returned %d days", len(days))
	}
	for i, d := range days {
		if d.String() != want[i] {
			t.Errorf("Weekdays()[%d] = %s, want %s", i, d, want[i])
		}
		if d.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", d, d.Index(), i)
		}
	}
	if got := WeekdayNames(); !slices.Equal(got, want) {
		t.Errorf("WeekdayNames() = %v", got)
	}
}

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		in      string
		want    Weekday
		wantErr bool
	}{
		{in: "Monday", want: Monday},
		{in: "monday", want: Monday},
		{in: "MONDAY", want: Monday},
		{in: "mon", want: Monday},
		{in: "Tue", want: Tuesday},
		{in: "  wednesday ", want: Wednesday},
		{in: "THU", want: Thursday},
		{in: "fri", want: Friday},
		{in: "sat", want: Saturday},
		{in: "Sun", want: Sunday},
		{in: "", wantErr: true},
		{in: "mo", wantErr: true},
		{in: "mondays", wantErr: true},
		{in: "noday", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseWeekday(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseWeekday(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekday(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWeekday(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseWeekdays(t *testing.T) {
	got, err := ParseWeekdays("sat,Sun, monday")
	if err != nil {
		t.Fatalf("ParseWeekdays(): %v", err)
	}
	if !slices.Equal(got, []Weekday{Saturday, Sunday, Monday}) {
		t.Errorf("ParseWeekdays() = %v, want the given order kept", got)
	}

	if got, err := ParseWeekdays(""); err != nil || got != nil {
		t.Errorf("ParseWeekdays(\"\") = %v, %v, want nil, nil", got, err)
	}
	if got, err := ParseWeekdays("  "); err != nil || got != nil {
		t.Errorf("ParseWeekdays(blank) = %v, %v, want nil, nil", got, err)
	}
	if _, err := ParseWeekdays("mon,noday"); err == nil {
		t.Errorf("ParseWeekdays() accepted an invalid day")
	}
}

func TestMustWeekdayPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustWeekday did not panic on an invalid day")
		}
	}()
	MustWeekday("noday")
}

func TestWeekdayJSON(t *testing.T) {
	data, err := json.Marshal(Saturday)
	if err != nil {
		t.Fatalf("Marshal(Saturday): %v", err)
	}
	if string(data) != `"Saturday"` {
		t.Errorf("Marshal(Saturday) = %s", data)
	}

	var d Weekday
	if err := json.Unmarshal([]byte(`"tue"`), &d); err != nil {
		t.Fatalf("Unmarshal(\"tue\"): %v", err)
	}
	if d != Tuesday {
		t.Errorf("Unmarshal(\"tue\") = %v, want Tuesday", d)
	}
	if err := json.Unmarshal([]byte(`"noday"`), &d); err == nil {
		t.Errorf("Unmarshal accepted an invalid day")
	}
	if err := json.Unmarshal([]byte(`3`), &d); err == nil {
		t.Errorf("Unmarshal accepted a numeric day")
	}
}

func TestWeekdayStringOutOfRange(t *testing.T) {
	if got := Weekday(12).String(); got != "Weekday(12)" {
		t.Errorf("Weekday(12).String() = %q", got)
	}
}
