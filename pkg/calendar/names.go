package calendar

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/matzehuels/textcal/pkg/errors"
)

// Names holds the month and weekday names used in grid headers. Weekdays are
// indexed by time.Weekday, so index 0 is Sunday.
type Names struct {
	Months   [12]string
	Weekdays [7]string
}

// Month returns the name of m.
func (n Names) Month(m time.Month) string { return n.Months[m-1] }

// Weekday returns the name of d.
func (n Names) Weekday(d time.Weekday) string { return n.Weekdays[d] }

// Abbrev returns the first w display columns of the name of d.
func (n Names) Abbrev(d time.Weekday, w int) string { return truncate(n.Weekdays[d], w) }

// Validate rejects tables with empty or multi-line entries.
func (n Names) Validate() error {
	check := func(kind string, i int, s string) error {
		if s == "" {
			return errors.New(errors.ErrCodeInvalidLocale, "%s name %d is empty", kind, i+1)
		}
		for _, r := range s {
			if unicode.IsControl(r) {
				return errors.New(errors.ErrCodeInvalidLocale, "%s name %d contains control characters", kind, i+1)
			}
		}
		return nil
	}
	for i, s := range n.Months {
		if err := check("month", i, s); err != nil {
			return err
		}
	}
	for i, s := range n.Weekdays {
		if err := check("weekday", i, s); err != nil {
			return err
		}
	}
	return nil
}

var (
	English = Names{
		Months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		Weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	}
	German = Names{
		Months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		Weekdays: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	}
	French = Names{
		Months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		Weekdays: [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	}
	Spanish = Names{
		Months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		Weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	}
	Japanese = Names{
		Months: [12]string{"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月"},
		Weekdays: [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
	}
)

var locales = map[string]Names{
	"en": English,
	"de": German,
	"fr": French,
	"es": Spanish,
	"ja": Japanese,
}

// LookupNames returns the built-in name table for a short locale tag.
func LookupNames(tag string) (Names, error) {
	if err := errors.ValidateLocale(tag); err != nil {
		return Names{}, err
	}
	n, ok := locales[tag]
	if !ok {
		return Names{}, errors.New(errors.ErrCodeInvalidLocale, "unsupported locale %q (available: %v)", tag, Locales())
	}
	return n, nil
}

// Locales lists the built-in locale tags in sorted order.
func Locales() []string {
	tags := make([]string, 0, len(locales))
	for tag := range locales {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ParseWeekday resolves an English weekday name or any prefix of it at least
// two letters long ("mo", "Tue", "thursday"), case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	if len(s) >= 2 {
		for d, name := range English.Weekdays {
			if len(s) <= len(name) && strings.EqualFold(s, name[:len(s)]) {
				return time.Weekday(d), nil
			}
		}
	}
	return time.Sunday, errors.New(errors.ErrCodeInvalidWeekday, "unknown weekday %q", s)
}
