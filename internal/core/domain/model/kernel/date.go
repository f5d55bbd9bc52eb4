package kernel

import (
	"fmt"
	"time"

	"production/internal/pkg/errs"
)

// DateLayout is the canonical textual form of a Date.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates that a Date was not initialized through one
// of the constructor functions. It is returned when validating a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate, DateFromString, or DateOf")

// Date is a calendar date value object without a time-of-day component.
// Orders carry calendar dates only (order date, return date); comparing or
// persisting them must never depend on clock time or time zone.
//
// The zero value is invalid and must be constructed via NewDate,
// DateFromString, or DateOf. Date is immutable and safe for concurrent use.
type Date struct {
	t time.Time
}

// NewDate creates a Date from year, month, and day.
// Returns an error for impossible calendar dates such as February 30th.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date is invalid",
			fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, int(month), day),
		)
	}
	return Date{t: t}, nil
}

// DateFromString parses a Date from its "2006-01-02" representation.
// Used when reconstructing orders from persistence or parsing API input.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date is invalid", err)
	}
	return Date{t: t.UTC()}, nil
}

// DateOf truncates a point in time to its calendar date in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String returns the "2006-01-02" form.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Time returns the date as UTC midnight, primarily for persistence.
func (d Date) Time() time.Time {
	return d.t
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// IsEqual reports whether two Dates represent the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// Validate returns ErrDateIsNotConstructed for zero-value Dates.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
