package internal

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinDays = 1
	MaxDays = 10
)

var (
	ErrInvalidDays    = errors.New("days is not an integer")
	ErrDaysOutOfRange = fmt.Errorf("days must be between %d and %d", MinDays, MaxDays)
)

// Date is a calendar day keyed as DD.MM.YYYY, the format the PrivatBank archive expects.
type Date struct{ time.Time }

const dateLayout = "02.01.2006"

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errors.New("date is empty")
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	s := strings.TrimSpace(strings.Trim(string(b), "\""))
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDays validates the requested window size.
func ParseDays(s string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDays, s)
	}
	if err := ValidateDays(days); err != nil {
		return 0, err
	}
	return days, nil
}

func ValidateDays(days int) error {
	if days < MinDays || days > MaxDays {
		return fmt.Errorf("%w: got %d", ErrDaysOutOfRange, days)
	}
	return nil
}

// DateRange returns `days` dates starting yesterday relative to today, newest first.
func DateRange(today time.Time, days int) ([]Date, error) {
	if err := ValidateDays(days); err != nil {
		return nil, err
	}

	out := make([]Date, 0, days)
	for i := 1; i <= days; i++ {
		out = append(out, NewDate(today.AddDate(0, 0, -i)))
	}
	return out, nil
}
