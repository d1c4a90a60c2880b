package kernel

import (
	"fmt"
	"time"

	"vintage/internal/pkg/errs"
)

// ErrDateIsNotConstructed indicates a zero-value Date that was not created
// through NewDate or DateFromTime.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate or DateFromTime")

// Date is a value object representing one simulated calendar day. The whole
// marketplace clock runs on these: order placement, the settlement delay, and
// the return window are all measured in whole days. Time-of-day never matters,
// so a Date is normalized to midnight UTC.
//
// The zero value is invalid and fails Validate.
type Date struct {
	day time.Time
}

// NewDate creates a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{
		day: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

// DateFromTime truncates a wall-clock instant to its calendar day.
func DateFromTime(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// Validate returns ErrDateIsNotConstructed for the zero value.
func (d Date) Validate() error {
	if d.day.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return Date{day: d.day.AddDate(0, 0, 1)}
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{day: d.day.AddDate(0, 0, n)}
}

// DaysSince returns the number of whole days elapsed from other to d.
// Negative when other is in the future.
func (d Date) DaysSince(other Date) int {
	return int(d.day.Sub(other.day) / (24 * time.Hour))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.day.Before(other.day)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.day.After(other.day)
}

// IsEqual reports whether both values denote the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.day.Equal(other.day)
}

// Time returns the underlying midnight-UTC instant, used by the persistence
// adapters.
func (d Date) Time() time.Time {
	return d.day
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.day.Format("2006-01-02")
}

// DateFromString parses a YYYY-MM-DD date, used by the HTTP adapter.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date format: %w", err)
	}
	return DateFromTime(t), nil
}
