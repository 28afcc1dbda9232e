package pipeline

import (
	"testing"
	"time"

	"github.com/matzehuels/textcal/pkg/errors"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Errorf("ParseDate() = %v", d)
	}

	for _, s := range []string{"2023-02-29", "2024/02/01", "", "tomorrow"} {
		if _, err := ParseDate(s); !errors.Is(err, errors.ErrCodeInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, want INVALID_DATE", s, err)
		}
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Month
		wantErr bool
	}{
		{"1", time.January, false},
		{"12", time.December, false},
		{"feb", time.February, false},
		{"September", time.September, false},
		{"DEC", time.December, false},
		{"0", 0, true},
		{"13", 0, true},
		{"ju", 0, true},
		{"juneteenth", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseYearMonth(t *testing.T) {
	tests := []struct {
		input     string
		wantYear  int
		wantMonth time.Month
		wantErr   bool
	}{
		{"2024-02", 2024, time.February, false},
		{"2024-nov", 2024, time.November, false},
		{"-44-03", -44, time.March, false},
		{"0-1", 0, time.January, false},
		{"2024", 0, 0, true},
		{"-2024", 0, 0, true},
		{"2024-13", 0, 0, true},
		{"99999-01", 0, 0, true},
		{"abc-01", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			y, m, err := ParseYearMonth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseYearMonth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if y != tt.wantYear || m != tt.wantMonth {
				t.Errorf("ParseYearMonth(%q) = %d, %v; want %d, %v", tt.input, y, m, tt.wantYear, tt.wantMonth)
			}
		})
	}
}
