// Package types implements special types for Poupix.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const monthLayout = "2006-01"

// Month is a month in a specific year. Installments are due in a Month.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which t occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("the month must be in YYYY-MM format: %w", err)
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return time.Time(m).Format(monthLayout)
}

// MarshalJSON implements the json.Marshaler interface, encoding as "YYYY-MM".
func (m Month) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM", "YYYY-MM-DD" and RFC3339 timestamps.
// Everything but the year and month is discarded.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	for _, layout := range []string{monthLayout, time.DateOnly, time.RFC3339} {
		t, err := time.Parse(layout, value)
		if err == nil {
			*m = MonthOf(t)
			return nil
		}
	}

	return fmt.Errorf("%q is not a valid month", value)
}

// Scan reads a month stored as "YYYY-MM".
func (m *Month) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case nil:
		*m = Month{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*m = MonthOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into a month", value)
	}

	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Value stores the month as "YYYY-MM" so that it compares equal
// across database drivers.
func (m Month) Value() (driver.Value, error) {
	return m.String(), nil
}

// GormDataType defines the data type used by gorm the type.
func (Month) GormDataType() string {
	return "varchar(7)"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return MonthOf(t.UTC()).Equal(m)
}
