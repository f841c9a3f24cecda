// Package types implements special types for the backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Day is a calendar day without a time of day. It is what the shift
// scheduling conflict rule is evaluated on.
type Day time.Time

// NewDay returns a new Day.
func NewDay(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// String returns the day formatted as YYYY-MM-DD.
func (d Day) String() string {
	return time.Time(d).Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The day is expected as either a "2006-01-02" string or an RFC3339
// timestamp, of which everything except the date is ignored.
func (d *Day) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	pattern := "2006-01-02"
	if strings.Contains(value, "T") {
		pattern = "2006-01-02T15:04:05Z07:00"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DayOf(t)
	return nil
}

// DayOf returns the Day on which a time occurs in that time's location.
func DayOf(t time.Time) Day {
	year, month, day := t.Date()
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDay parses a "YYYY-MM-DD" string and returns the Day value it represents.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}

	return DayOf(t), nil
}

// Scan reads the value from the database.
func (d *Day) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DayOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Day) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Day) GormDataType() string {
	return "date"
}

// IsZero reports if the day is the zero value.
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDate adds a specified amount of years, months and days.
func (d Day) AddDate(years, months, days int) Day {
	return Day(time.Time(d).AddDate(years, months, days))
}

// Before reports whether the day d is before e.
func (d Day) Before(e Day) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the day d is after e.
func (d Day) After(e Day) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same calendar day.
func (d Day) Equal(e Day) bool {
	return time.Time(d).Equal(time.Time(e))
}
