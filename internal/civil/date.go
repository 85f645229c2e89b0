// Package civil provides a timezone-free calendar date.
//
// Scheduling and streak logic operate on whole days; carrying time.Time
// values around invites off-by-one bugs at timezone boundaries. A Date is
// a plain year/month/day triple that serializes as "2006-01-02".
package civil

import (
	"fmt"
	"time"
)

// Layout is the wire format for dates.
const Layout = "2006-01-02"

// Date is a calendar date with no time or location component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the Date on which t falls, in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current date in the local timezone.
func Today() Date {
	return DateOf(time.Now())
}

// Parse parses a date in Layout form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustParse is Parse for test fixtures and constants; it panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns the date in Layout form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// time returns d at midnight UTC, the canonical point for arithmetic.
func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.time().AddDate(0, 0, n))
}

// DaysSince returns the number of whole days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.time().Sub(other.time()) / (24 * time.Hour))
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.time().Before(other.time())
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return d.time().After(other.time())
}

// MarshalJSON encodes d as a Layout string; the zero date encodes as "".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a Layout string; "" and null decode to the zero date.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == `""` || s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a JSON string, got %s", s)
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
