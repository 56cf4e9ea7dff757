package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without time or zone. The backend sends dates as
// an ISO string, a [year, month, day] array or a {year, month, day}
// object; all of them decode into Date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, rejecting impossible days such as 2025-02-30.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC of d
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

type dateObject struct {
	Year       int             `json:"year"`
	Month      json.RawMessage `json:"month"`
	MonthValue int             `json:"monthValue"`
	Day        int             `json:"day"`
	DayOfMonth int             `json:"dayOfMonth"`
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseISODate(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil

	case '[':
		var parts []int
		if err := json.Unmarshal(data, &parts); err != nil {
			return fmt.Errorf("invalid date array: %w", err)
		}
		if len(parts) < 3 {
			return fmt.Errorf("date array needs year, month and day, got %d items", len(parts))
		}
		parsed, err := NewDate(parts[0], time.Month(parts[1]), parts[2])
		if err != nil {
			return err
		}
		*d = parsed
		return nil

	case '{':
		var obj dateObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("invalid date object: %w", err)
		}
		month := obj.MonthValue
		if len(obj.Month) > 0 {
			// Jackson writes month as a name next to monthValue; only a number is usable.
			var m int
			if err := json.Unmarshal(obj.Month, &m); err == nil {
				month = m
			}
		}
		day := obj.Day
		if day == 0 {
			day = obj.DayOfMonth
		}
		parsed, err := NewDate(obj.Year, time.Month(month), day)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	return fmt.Errorf("unsupported date value %s", string(data))
}

// ParseISODate accepts "2006-01-02" and full RFC 3339 or local date-time
// strings, keeping only the date part.
func ParseISODate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

var dayFirstDate = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)

// ParseUserDate parses what a person types for a booking date:
// YYYY-MM-DD, DD-MM-YYYY or DD/MM/YYYY (day and month may be one digit).
func ParseUserDate(input string) (Date, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Date{}, fmt.Errorf("date is empty")
	}
	if t, err := time.Parse(dateLayout, input); err == nil {
		return DateOf(t), nil
	}
	m := dayFirstDate.FindStringSubmatch(input)
	if m == nil {
		return Date{}, fmt.Errorf("unrecognised date %q, use YYYY-MM-DD or DD-MM-YYYY", input)
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return NewDate(year, time.Month(month), day)
}
