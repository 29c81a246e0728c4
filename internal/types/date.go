// Package types implements calendar value types for financeTrack.
package types

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used for all dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("dates must be in YYYY-MM-DD format")

// Date is a calendar date without a time component.
//
// The underlying time is always midnight UTC, so that dates compare and
// subtract without time zone surprises.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD. The zero Date is the
// empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return time.Time(d).Format(DateLayout)
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Empty strings and null decode to the zero Date. Full RFC 3339 timestamps
// are accepted too, only their calendar date is kept.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	if len(value) > len(DateLayout) {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return ErrInvalidDate
		}
		*d = DateOf(t)
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// UnmarshalParam lets gin bind query and form parameters to a Date.
func (d *Date) UnmarshalParam(p string) error {
	if p == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(p)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date(time.Time(d).AddDate(0, 0, n))
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same calendar date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Between reports whether d lies in the closed interval [from, to].
func (d Date) Between(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

// DaysSince returns the number of calendar days from e to d.
func (d Date) DaysSince(e Date) int {
	return int(time.Time(d).Sub(time.Time(e)).Hours() / 24)
}

// Year returns the year of the date.
func (d Date) Year() int {
	return time.Time(d).Year()
}

// Day returns the day of the month.
func (d Date) Day() int {
	return time.Time(d).Day()
}

// Month returns the Month the date lies in.
func (d Date) Month() Month {
	return MonthOf(time.Time(d))
}

// StartOfWeek returns the Monday of the week the date lies in.
//
// Sunday counts as the seventh day of the week.
func (d Date) StartOfWeek() Date {
	day := int(time.Time(d).Weekday())
	if day == 0 {
		day = 7
	}
	return d.AddDays(-(day - 1))
}
