package restock

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Weekday identifies one of the seven canonical day labels used by sales
// estimates, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// weekdayNames is the canonical spelling for each day, indexed by Weekday.
var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Weekdays returns the seven days in canonical Monday-first order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// WeekdayNames returns the seven canonical day labels in Monday-first order.
func WeekdayNames() []string {
	return weekdayNames[:len(weekdayNames):len(weekdayNames)]
}

// Index returns the position of the day in the canonical Monday-first order.
func (d Weekday) Index() int { return int(d) }

// String returns the canonical label for the day, e.g. "Monday".
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday parses a day label. It is lenient and accepts any casing and
// the usual three-letter abbreviations ("mon", "Tue").
func ParseWeekday(str string) (Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	for i, name := range weekdayNames {
		lower := strings.ToLower(name)
		if s == lower || (len(s) == 3 && s == lower[:3]) {
			return Weekday(i), nil
		}
	}
	return Monday, fmt.Errorf("invalid weekday %q want one of %s", str, strings.Join(WeekdayNames(), ", "))
}

// MustWeekday is like ParseWeekday but panics on error.
func MustWeekday(str string) Weekday {
	d, err := ParseWeekday(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ParseWeekdays parses a comma-separated list of day labels into a list of
// days, preserving the given order.
func ParseWeekdays(str string) ([]Weekday, error) {
	if strings.TrimSpace(str) == "" {
		return nil, nil
	}
	var days []Weekday
	for _, part := range strings.Split(str, ",") {
		d, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// UnmarshalJSON implements the json specific way to unmarshal a weekday from
// a json string.
func (d *Weekday) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	day, err := ParseWeekday(str)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

func (d Weekday) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Weekday pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Weekday)(nil)
var _ json.Unmarshaler = (*Weekday)(nil)
