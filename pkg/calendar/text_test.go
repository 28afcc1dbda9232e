package calendar

import "testing"

func TestCenter(t *testing.T) {
	tests := []struct {
		s    string
		w    int
		want string
	}{
		{"1", 4, " 1  "},
		{"10", 4, " 10 "},
		{"1", 2, "1 "},
		{"Su", 3, "Su "},
		{"", 3, "   "},
		{"toolong", 4, "toolong"},
		{"日", 4, " 日 "},
		{"日", 5, " 日  "},
	}

	for _, tt := range tests {
		if got := center(tt.s, tt.w); got != tt.want {
			t.Errorf("center(%q, %d) = %q, want %q", tt.s, tt.w, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		w    int
		want string
	}{
		{"Sunday", 2, "Su"},
		{"Sunday", 10, "Sunday"},
		{"miércoles", 3, "mié"},
		{"日曜日", 3, "日"},
		{"日曜日", 4, "日曜"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.s, tt.w); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.w, got, tt.want)
		}
	}
}

func TestBlank(t *testing.T) {
	if blank(-1) != "" || blank(0) != "" || blank(3) != "   " {
		t.Error("blank() returned wrong runs")
	}
}

func TestEmptyGrid(t *testing.T) {
	e := NewEmptyGrid(3, 4)
	if e.Rows() != 3 || e.Width() != 28 || e.CellWidth() != 4 {
		t.Errorf("NewEmptyGrid(3, 4) = rows %d width %d cell %d", e.Rows(), e.Width(), e.CellWidth())
	}
	assertRectangle(t, e)

	e.Mark(date(2024, 1, 1))
	if e.IsMarked(date(2024, 1, 1)) {
		t.Error("EmptyGrid.IsMarked() = true")
	}
	e.Unmark(date(2024, 1, 1))

	zero := NewEmptyGrid(-2, -1)
	if zero.Rows() != 0 || zero.Width() != 0 || zero.String() != "" {
		t.Errorf("NewEmptyGrid(-2, -1) = %q", zero.String())
	}
}
