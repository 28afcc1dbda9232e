package calendar

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/textcal/pkg/errors"
)

func months2024(t *testing.T, n, width int) []Block {
	t.Helper()
	blocks := make([]Block, 0, n)
	for i := range n {
		blocks = append(blocks, mustMonth(t, 2024, time.Month(i%12+1), time.Sunday, width, Brackets))
	}
	return blocks
}

func mustCollection(t *testing.T, title string, cols int, blocks ...Block) *Collection {
	t.Helper()
	c, err := NewCollection(title, cols, blocks...)
	if err != nil {
		t.Fatalf("NewCollection(%q, %d) error = %v", title, cols, err)
	}
	return c
}

func TestCollectionPaddingCount(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for cols := 1; cols <= 4; cols++ {
			c := mustCollection(t, "t", cols, months2024(t, n, 4)...)

			want := (n + cols - 1) / cols * cols
			blocks := c.Blocks()
			if len(blocks) != want {
				t.Errorf("n=%d cols=%d: %d blocks, want %d", n, cols, len(blocks), want)
			}
			if c.Len() != n {
				t.Errorf("n=%d cols=%d: Len() = %d, want %d", n, cols, c.Len(), n)
			}
			for _, b := range blocks[n:] {
				if strings.TrimSpace(b.String()) != "" {
					t.Errorf("n=%d cols=%d: padding block renders %q", n, cols, b.String())
				}
			}
			assertRectangle(t, c)
		}
	}
}

func TestCollectionPaddingSize(t *testing.T) {
	// January-May 2024 in three columns: April and May both have five weeks.
	c := mustCollection(t, "Spring", 3, months2024(t, 5, 4)...)

	blocks := c.Blocks()
	pad, ok := blocks[5].(*EmptyGrid)
	if !ok {
		t.Fatalf("block 5 is %T, want *EmptyGrid", blocks[5])
	}
	if pad.Rows() != 7 {
		t.Errorf("padding Rows() = %d, want 7", pad.Rows())
	}
	if pad.Width() != 28 || pad.CellWidth() != 4 {
		t.Errorf("padding Width() = %d CellWidth() = %d, want 28 and 4", pad.Width(), pad.CellWidth())
	}
}

func TestCollectionLayout(t *testing.T) {
	tests := []struct {
		name      string
		blocks    int
		cols      int
		wantWidth int
		wantRows  int
	}{
		// 28-wide months, gap of 4 between columns.
		{"single column", 3, 1, 28, 1 + 7 + 7 + 8 + 2},
		{"two columns", 4, 2, 60, 1 + 7 + 8 + 1},
		{"three columns", 12, 3, 92, 34},
		{"four columns", 12, 4, 124, 1 + 8 + 8 + 7 + 2},
		{"five columns", 12, 5, 156, 1 + 8 + 8 + 7 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCollection(t, "2024", tt.cols, months2024(t, tt.blocks, 4)...)
			if c.Width() != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", c.Width(), tt.wantWidth)
			}
			if c.Rows() != tt.wantRows {
				t.Errorf("Rows() = %d, want %d", c.Rows(), tt.wantRows)
			}
			if c.CellWidth() != 4 {
				t.Errorf("CellWidth() = %d, want 4", c.CellWidth())
			}
			assertRectangle(t, c)
		})
	}
}

func TestCollectionRender(t *testing.T) {
	jan := mustMonth(t, 2024, time.January, time.Sunday, 2, NoMarker)
	feb := mustMonth(t, 2024, time.February, time.Sunday, 2, NoMarker)
	c := mustCollection(t, "Q1", 2, jan, feb)

	want := strings.Join([]string{
		"              Q1              ",
		"   January         February   ",
		"SuMoTuWeThFrSa  SuMoTuWeThFrSa",
		"  1 2 3 4 5 6           1 2 3 ",
		"7 8 9 10111213  4 5 6 7 8 9 10",
		"14151617181920  11121314151617",
		"21222324252627  18192021222324",
		"28293031        2526272829    ",
	}, "\n")

	if c.Width() != 30 {
		t.Errorf("Width() = %d, want 30", c.Width())
	}
	if got := c.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	assertRectangle(t, c)
}

func TestCollectionSeparators(t *testing.T) {
	c := mustCollection(t, "2024", 3, months2024(t, 12, 4)...)
	lines := Lines(c)

	for _, i := range []int{9, 18, 26} {
		if lines[i] != strings.Repeat(" ", 92) {
			t.Errorf("line %d = %q, want blank separator", i, lines[i])
		}
	}
}

func TestCollectionHeterogeneousWidths(t *testing.T) {
	narrow := mustMonth(t, 2024, time.January, time.Sunday, 2, NoMarker)
	wide := mustMonth(t, 2024, time.February, time.Sunday, 4, NoMarker)
	last := mustMonth(t, 2024, time.March, time.Sunday, 2, NoMarker)
	c := mustCollection(t, "mixed", 2, narrow, wide, last)

	// Widest row: 14 + 28, gap 42/2/7 = 3.
	if c.Width() != 45 {
		t.Errorf("Width() = %d, want 45", c.Width())
	}
	if c.CellWidth() != 4 {
		t.Errorf("CellWidth() = %d, want 4", c.CellWidth())
	}
	if pad := c.Blocks()[3]; pad.Width() != 14 {
		t.Errorf("padding Width() = %d, want width of last block 14", pad.Width())
	}
	assertRectangle(t, c)
}

func TestCollectionNested(t *testing.T) {
	years := make([]Block, 0, 3)
	for _, y := range []int{2024, 2025, 2026} {
		yg, err := NewYearGrid(y, time.Sunday, 4, Brackets)
		if err != nil {
			t.Fatalf("NewYearGrid(%d) error = %v", y, err)
		}
		years = append(years, yg)
	}

	for cols := 1; cols <= 3; cols++ {
		c := mustCollection(t, "24,25,26 Calendar", cols, years...)
		assertRectangle(t, c)
	}

	c := mustCollection(t, "24,25,26 Calendar", 3, years...)
	// 3 * 92 columns, gap 276/3/7 = 13.
	if c.Width() != 302 {
		t.Errorf("Width() = %d, want 302", c.Width())
	}

	d := date(2025, time.July, 4)
	c.Mark(d)
	if !c.IsMarked(d) {
		t.Error("IsMarked() = false after Mark() on nested collection")
	}
	if !years[1].IsMarked(d) || years[0].IsMarked(d) || years[2].IsMarked(d) {
		t.Error("mark did not land in the 2025 grid only")
	}
}

func TestCollectionPush(t *testing.T) {
	c := mustCollection(t, "incremental", 2)
	if c.Rows() != 0 || c.Width() != 0 {
		t.Fatalf("empty collection Rows() = %d Width() = %d, want 0", c.Rows(), c.Width())
	}

	for i, b := range months2024(t, 3, 4) {
		c.Push(b)
		if got, want := len(c.Blocks()), (i+2)/2*2; got != want {
			t.Errorf("after %d pushes: %d blocks, want %d", i+1, got, want)
		}
		assertRectangle(t, c)
	}
	c.Push(nil)
	if c.Len() != 3 {
		t.Errorf("Len() = %d after pushing nil, want 3", c.Len())
	}
}

func TestCollectionEmpty(t *testing.T) {
	c := mustCollection(t, "nothing", 3)

	if c.String() != "" {
		t.Errorf("String() = %q, want empty", c.String())
	}
	if Lines(c) != nil {
		t.Errorf("Lines() = %v, want nil", Lines(c))
	}
	if c.CellWidth() != 0 {
		t.Errorf("CellWidth() = %d, want 0", c.CellWidth())
	}
	if c.IsMarked(date(2024, time.January, 1)) {
		t.Error("IsMarked() = true on empty collection")
	}
}

func TestCollectionTitleTruncated(t *testing.T) {
	c := mustCollection(t, strings.Repeat("x", 40), 1, months2024(t, 1, 4)...)

	if got := Lines(c)[0]; got != strings.Repeat("x", 28) {
		t.Errorf("title = %q, want 28 x", got)
	}
	assertRectangle(t, c)
}

func TestCollectionMarking(t *testing.T) {
	c := mustCollection(t, "2024", 3, months2024(t, 5, 4)...)
	d := date(2024, time.March, 5)

	c.Mark(d)
	if !c.IsMarked(d) {
		t.Error("IsMarked() = false after Mark()")
	}
	for i, b := range c.Blocks()[:5] {
		got := b.(*MonthGrid).Marked()
		want := []int{}
		if i == 2 {
			want = []int{5}
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("month %d Marked() = %v, want %v", i+1, got, want)
		}
	}

	c.Unmark(d)
	if c.IsMarked(d) {
		t.Error("IsMarked() = true after Unmark()")
	}

	// Dates outside every block are ignored.
	c.Mark(date(2030, time.March, 5))
	if c.IsMarked(date(2030, time.March, 5)) {
		t.Error("IsMarked() = true for a date outside the collection")
	}
}

func TestNewCollectionErrors(t *testing.T) {
	month := months2024(t, 1, 4)[0]
	tests := []struct {
		name   string
		title  string
		cols   int
		blocks []Block
		code   errors.Code
	}{
		{"zero columns", "t", 0, []Block{month}, errors.ErrCodeInvalidColumns},
		{"negative columns", "t", -1, []Block{month}, errors.ErrCodeInvalidColumns},
		{"nil block", "t", 2, []Block{month, nil}, errors.ErrCodeInvalidInput},
		{"multi-line title", "a\nb", 2, []Block{month}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCollection(tt.title, tt.cols, tt.blocks...)
			if !errors.Is(err, tt.code) {
				t.Errorf("NewCollection() error = %v, want code %s", err, tt.code)
			}
		})
	}
}
