// Package holidays computes public holiday dates for marking calendars.
package holidays

import (
	"sort"
	"time"

	"github.com/matzehuels/textcal/pkg/errors"
)

// Holiday is a named date.
type Holiday struct {
	Date time.Time
	Name string
}

// rule computes the holidays of one region for a year.
type rule func(year int) []Holiday

var regions = map[string]rule{
	"easter": easterCycle,
	"de-nrw": germanyNRW,
}

// Regions lists the supported region tags in sorted order.
func Regions() []string {
	tags := make([]string, 0, len(regions))
	for tag := range regions {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// FirstYear is the first Gregorian year, the earliest year with holidays.
const FirstYear = 1583

// ForYear returns the holidays of region in year, ordered by date. Years
// before FirstYear fail with INVALID_INPUT.
func ForYear(region string, year int) ([]Holiday, error) {
	r, ok := regions[region]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown holiday region %q (available: %v)", region, Regions())
	}
	if year < FirstYear {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no holidays before the Gregorian calendar (year %d < %d)", year, FirstYear)
	}
	days := r(year)
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

// Dates returns the holiday dates of region for every year from first to
// last inclusive.
func Dates(region string, first, last int) ([]time.Time, error) {
	var dates []time.Time
	for y := first; y <= last; y++ {
		days, err := ForYear(region, y)
		if err != nil {
			return nil, err
		}
		for _, h := range days {
			dates = append(dates, h.Date)
		}
	}
	return dates, nil
}

// Easter returns Western Easter Sunday of year using the Meeus/Jones/Butcher
// algorithm. It is valid for Gregorian years from 1583.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1
	return date(year, time.Month(month), day)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func easterCycle(year int) []Holiday {
	easter := Easter(year)
	return []Holiday{
		{easter.AddDate(0, 0, -2), "Good Friday"},
		{easter, "Easter Sunday"},
		{easter.AddDate(0, 0, 1), "Easter Monday"},
		{easter.AddDate(0, 0, 39), "Ascension Day"},
		{easter.AddDate(0, 0, 49), "Whit Sunday"},
		{easter.AddDate(0, 0, 50), "Whit Monday"},
	}
}

func germanyNRW(year int) []Holiday {
	easter := Easter(year)
	return []Holiday{
		{date(year, time.January, 1), "Neujahr"},
		{easter.AddDate(0, 0, -2), "Karfreitag"},
		{easter.AddDate(0, 0, 1), "Ostermontag"},
		{date(year, time.May, 1), "Tag der Arbeit"},
		{easter.AddDate(0, 0, 39), "Christi Himmelfahrt"},
		{easter.AddDate(0, 0, 50), "Pfingstmontag"},
		{easter.AddDate(0, 0, 60), "Fronleichnam"},
		{date(year, time.October, 3), "Tag der Deutschen Einheit"},
		{date(year, time.November, 1), "Allerheiligen"},
		{date(year, time.December, 25), "1. Weihnachtstag"},
		{date(year, time.December, 26), "2. Weihnachtstag"},
	}
}
