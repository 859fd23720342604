package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/toolbelt/pkg/records"
)

// ErrUnrecognisedMonth is returned when a value cannot be interpreted as a
// month number, abbreviation or name.
var ErrUnrecognisedMonth = errors.New("unrecognised month value")

// monthNames lists the full month names in calendar order.
var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Months maps three-letter abbreviations to full month names, in calendar
// order.
var Months = func() *records.Record {
	r := &records.Record{}
	for _, name := range monthNames {
		_ = r.Append(name[:3], name)
	}
	return r
}()

// ParseMonth converts a month number (as digits), an abbreviation or a full
// name into the full month name.
func ParseMonth(month string) (string, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(month)); err == nil {
		if n < 1 || n > 12 {
			return "", fmt.Errorf("%w: %d", ErrUnrecognisedMonth, n)
		}
		return monthNames[n-1], nil
	}

	if len(month) < 3 {
		return "", fmt.Errorf("%w: %q", ErrUnrecognisedMonth, month)
	}

	abbrev := strings.ToUpper(month[:1]) + strings.ToLower(month[1:3])
	full, ok := Months.Get(abbrev)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnrecognisedMonth, month)
	}

	// Only the first three characters matter, so "Janu", "january" and
	// "Jan" all resolve to January.
	return full.(string), nil
}

// MonthNumber returns the calendar number (1-12) for a month given in any
// of the accepted forms.
func MonthNumber(month string) (int, error) {
	name, err := ParseMonth(month)
	if err != nil {
		return 0, err
	}
	return Months.Index(name[:3]) + 1, nil
}

// CheckDate reports whether day is valid for the given month.
// With allowLeap, 29 February counts as valid.
func CheckDate(month string, day int, allowLeap bool) (bool, error) {
	n, err := MonthNumber(month)
	if err != nil {
		return false, err
	}

	year := 2019 // not a leap year
	if allowLeap {
		year = 2020
	}

	d := time.Date(year, time.Month(n), day, 0, 0, 0, 0, time.UTC)
	return day >= 1 && d.Month() == time.Month(n) && d.Day() == day, nil
}

// UTCOffset returns the offset between UTC and the named IANA timezone at
// the given instant. A zero time means now.
func UTCOffset(tz string, at time.Time) (time.Duration, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return 0, fmt.Errorf("loading timezone %q: %w", tz, err)
	}
	if at.IsZero() {
		at = time.Now()
	}
	_, offset := at.In(loc).Zone()
	return time.Duration(offset) * time.Second, nil
}

// CurrentZone returns the name and UTC offset of the local timezone.
func CurrentZone() (string, time.Duration) {
	name, offset := time.Now().Zone()
	return name, time.Duration(offset) * time.Second
}
