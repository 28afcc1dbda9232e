package calendar

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/textcal/pkg/errors"
)

func TestYearGridLayout(t *testing.T) {
	y, err := NewYearGrid(2024, time.Sunday, 4, Brackets)
	if err != nil {
		t.Fatalf("NewYearGrid() error = %v", err)
	}

	if y.Width() != 92 {
		t.Errorf("Width() = %d, want 92", y.Width())
	}
	if y.Rows() != 34 {
		t.Errorf("Rows() = %d, want 34", y.Rows())
	}
	if y.CellWidth() != 4 {
		t.Errorf("CellWidth() = %d, want 4", y.CellWidth())
	}
	assertRectangle(t, y)

	lines := Lines(y)
	if want := strings.Repeat(" ", 44) + "2024" + strings.Repeat(" ", 44); lines[0] != want {
		t.Errorf("title = %q, want %q", lines[0], want)
	}

	// Four row-groups of three months each.
	heads := map[int][]string{
		1:  {"January", "February", "March"},
		10: {"April", "May", "June"},
		19: {"July", "August", "September"},
		27: {"October", "November", "December"},
	}
	for i, want := range heads {
		if got := strings.Fields(lines[i]); !reflect.DeepEqual(got, want) {
			t.Errorf("line %d = %v, want %v", i, got, want)
		}
	}

	want := " 27  28  29  30  31              24  25  26  27  28  29  30      29  30  31                 "
	if lines[33] != want {
		t.Errorf("last line = %q, want %q", lines[33], want)
	}
}

func TestYearGridMarking(t *testing.T) {
	y, err := NewYearGrid(2024, time.Monday, 4, Brackets)
	if err != nil {
		t.Fatalf("NewYearGrid() error = %v", err)
	}

	y.Mark(date(2024, time.February, 10))
	y.Mark(date(2024, time.January, 10))
	y.Mark(date(2025, time.March, 1))

	if !y.IsMarked(date(2024, time.February, 10)) {
		t.Error("IsMarked(2024-02-10) = false")
	}
	if y.IsMarked(date(2024, time.March, 10)) {
		t.Error("IsMarked(2024-03-10) = true")
	}
	if y.IsMarked(date(2025, time.March, 1)) {
		t.Error("IsMarked(2025-03-01) = true on a 2024 grid")
	}
	if got := y.Month(time.February).Marked(); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("February Marked() = %v, want [10]", got)
	}

	// Unmark clears the day-of-month in every month of the year.
	y.Unmark(date(2024, time.January, 10))
	if y.IsMarked(date(2024, time.January, 10)) || y.IsMarked(date(2024, time.February, 10)) {
		t.Error("Unmark(2024-01-10) left day 10 marked")
	}
	assertRectangle(t, y)
}

func TestYearGridMonth(t *testing.T) {
	y, err := NewYearGrid(1999, time.Sunday, 3, NoMarker)
	if err != nil {
		t.Fatalf("NewYearGrid() error = %v", err)
	}

	if y.Year() != 1999 {
		t.Errorf("Year() = %d, want 1999", y.Year())
	}
	for m := time.January; m <= time.December; m++ {
		if g := y.Month(m); g == nil || g.Month() != m || g.Year() != 1999 {
			t.Errorf("Month(%v) = %v", m, g)
		}
	}
	if y.Month(0) != nil || y.Month(13) != nil {
		t.Error("Month() out of range returned a grid")
	}
}

func TestYearGridNegativeYear(t *testing.T) {
	y, err := NewYearGrid(-500, time.Sunday, 4, Brackets)
	if err != nil {
		t.Fatalf("NewYearGrid() error = %v", err)
	}
	if got := strings.TrimSpace(Lines(y)[0]); got != "-500" {
		t.Errorf("title = %q, want -500", got)
	}
	assertRectangle(t, y)
}

func TestNewYearGridErrors(t *testing.T) {
	if _, err := NewYearGrid(2024, time.Sunday, 1, Brackets); !errors.Is(err, errors.ErrCodeInvalidWidth) {
		t.Errorf("NewYearGrid(width 1) error = %v, want INVALID_WIDTH", err)
	}
	if _, err := NewYearGrid(2024, 9, 4, Brackets); !errors.Is(err, errors.ErrCodeInvalidWeekday) {
		t.Errorf("NewYearGrid(weekday 9) error = %v, want INVALID_WEEKDAY", err)
	}
}
