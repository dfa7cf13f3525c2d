package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-lifecalc/internal/config"
)

const secondsPerDay = 24 * 60 * 60

// DateOnly strips the clock and zone from t, keeping its civil date.
// All milestone arithmetic runs on UTC midnights so that DST never shifts a day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of whole days from 'from' to 'to'.
// Unix seconds are used instead of time.Duration, which overflows after ~292 years.
func DaysBetween(from, to time.Time) int {
	return int((DateOnly(to).Unix() - DateOnly(from).Unix()) / secondsPerDay)
}

// ParseDate converts boundary input (entries, flags, vCard BDAY values) into a civil date.
// Malformed or out-of-range values are reported as ErrInvalidDate.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			d := DateOnly(t)
			if err := checkYear(d); err != nil {
				return time.Time{}, err
			}
			return d, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %s %q", ErrInvalidDate, config.ErrDateParse, value)
}

// checkYear keeps dates inside the range every layout and spreadsheet can represent.
func checkYear(t time.Time) error {
	if y := t.Year(); y < config.MinCalendarYear || y > config.MaxCalendarYear {
		return fmt.Errorf("%w: %s (%d)", ErrInvalidDate, config.ErrDateRange, y)
	}
	return nil
}
