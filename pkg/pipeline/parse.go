package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/textcal/pkg/calendar"
	"github.com/matzehuels/textcal/pkg/errors"
)

// DateLayout is the format of dates given by users.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// ParseYear parses a year. Negative years are astronomical (0 is 1 BC).
func ParseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidDate, "invalid year %q", s)
	}
	return y, ValidateYear(y)
}

// ParseMonth accepts a month number or an English month name or prefix of at
// least three letters.
func ParseMonth(s string) (time.Month, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if err := errors.ValidateMonth(n); err != nil {
			return 0, err
		}
		return time.Month(n), nil
	}
	if len(s) >= 3 {
		for i, name := range calendar.English.Months {
			if len(s) <= len(name) && strings.EqualFold(s, name[:len(s)]) {
				return time.Month(i + 1), nil
			}
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidDate, "invalid month %q", s)
}

// ParseYearMonth parses YYYY-MM.
func ParseYearMonth(s string) (int, time.Month, error) {
	i := strings.LastIndex(s, "-")
	if i <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidDate, "invalid month %q (want YYYY-MM)", s)
	}
	y, err := ParseYear(s[:i])
	if err != nil {
		return 0, 0, err
	}
	m, err := ParseMonth(s[i+1:])
	if err != nil {
		return 0, 0, err
	}
	return y, m, nil
}
