package holidays

import (
	"reflect"
	"testing"
	"time"

	"github.com/matzehuels/textcal/pkg/errors"
)

func TestEaster(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2000, time.April, 23},
		{2019, time.April, 21},
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2038, time.April, 25},
	}

	for _, tt := range tests {
		got := Easter(tt.year)
		if got.Month() != tt.month || got.Day() != tt.day {
			t.Errorf("Easter(%d) = %s, want %v %d", tt.year, got.Format("2006-01-02"), tt.month, tt.day)
		}
	}
}

func TestForYearNRW(t *testing.T) {
	days, err := ForYear("de-nrw", 2024)
	if err != nil {
		t.Fatalf("ForYear() error = %v", err)
	}
	if len(days) != 11 {
		t.Fatalf("got %d holidays, want 11", len(days))
	}

	want := map[string]string{
		"2024-03-29": "Karfreitag",
		"2024-04-01": "Ostermontag",
		"2024-05-09": "Christi Himmelfahrt",
		"2024-05-20": "Pfingstmontag",
		"2024-05-30": "Fronleichnam",
	}
	got := make(map[string]string)
	for _, h := range days {
		got[h.Date.Format("2006-01-02")] = h.Name
	}
	for d, name := range want {
		if got[d] != name {
			t.Errorf("%s = %q, want %q", d, got[d], name)
		}
	}

	for i := 1; i < len(days); i++ {
		if days[i].Date.Before(days[i-1].Date) {
			t.Errorf("holidays not sorted at %d: %v before %v", i, days[i].Date, days[i-1].Date)
		}
	}
}

func TestForYearUnknownRegion(t *testing.T) {
	_, err := ForYear("atlantis", 2024)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ForYear() error = %v, want INVALID_INPUT", err)
	}
}

func TestForYearBeforeGregorian(t *testing.T) {
	for _, year := range []int{-44, 0, 100, FirstYear - 1} {
		if _, err := ForYear("easter", year); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ForYear(easter, %d) error = %v, want INVALID_INPUT", year, err)
		}
	}
	if _, err := ForYear("easter", FirstYear); err != nil {
		t.Errorf("ForYear(easter, %d) error = %v", FirstYear, err)
	}
	if _, err := Dates("de-nrw", 1500, 2024); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Dates() over pre-Gregorian years error = %v, want INVALID_INPUT", err)
	}
}

func TestDates(t *testing.T) {
	dates, err := Dates("easter", 2024, 2025)
	if err != nil {
		t.Fatalf("Dates() error = %v", err)
	}
	if len(dates) != 12 {
		t.Errorf("got %d dates, want 12", len(dates))
	}
	if dates[1] != time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC) {
		t.Errorf("dates[1] = %v, want Easter 2024", dates[1])
	}

	if dates, _ := Dates("easter", 2025, 2024); len(dates) != 0 {
		t.Errorf("empty range returned %d dates", len(dates))
	}
}

func TestRegions(t *testing.T) {
	if got, want := Regions(), []string{"de-nrw", "easter"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Regions() = %v, want %v", got, want)
	}
}
