package calendar

import (
	"strings"
	"time"

	"github.com/matzehuels/textcal/pkg/errors"
)

// Collection lays out blocks in a titled grid of cols columns. It is itself
// a Block, so collections nest.
//
// Blocks are placed left to right, top to bottom. When the block count is not
// a multiple of cols the last row is filled with blank blocks that copy the
// width of the last block and the height of the tallest block in that row.
// Adjacent blocks are separated by a gap of Width/cols/7 spaces, which for
// month grids equals the average cell width.
//
// A Collection owns its blocks: mutate them through the collection, not
// through references kept elsewhere.
type Collection struct {
	title  string
	cols   int
	blocks []Block

	layout *layout
}

// layout is the padded arrangement of a collection's blocks.
type layout struct {
	blocks  []Block
	heights []int
	gap     int
	width   int
}

// NewCollection arranges blocks in cols columns under title. It fails with
// INVALID_COLUMNS when cols < 1 and INVALID_INPUT for a nil block or a title
// containing control characters.
func NewCollection(title string, cols int, blocks ...Block) (*Collection, error) {
	if err := errors.ValidateColumns(cols); err != nil {
		return nil, err
	}
	if err := errors.ValidateTitle(title); err != nil {
		return nil, err
	}
	for i, b := range blocks {
		if b == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "block %d is nil", i)
		}
	}

	c := &Collection{
		title:  title,
		cols:   cols,
		blocks: append([]Block(nil), blocks...),
	}
	c.layout = arrange(c.blocks, cols)
	return c, nil
}

// Push appends b. The layout is recomputed on next use. Nil blocks are ignored.
func (c *Collection) Push(b Block) {
	if b == nil {
		return
	}
	c.blocks = append(c.blocks, b)
	c.layout = nil
}

func (c *Collection) arranged() *layout {
	if c.layout == nil {
		c.layout = arrange(c.blocks, c.cols)
	}
	return c.layout
}

// arrange pads blocks to a multiple of cols and measures each row.
func arrange(blocks []Block, cols int) *layout {
	l := &layout{blocks: append([]Block(nil), blocks...)}
	n := len(blocks)
	if n == 0 {
		return l
	}

	if rem := n % cols; rem != 0 {
		tall := 0
		for _, b := range blocks[n-rem:] {
			tall = max(tall, b.Rows())
		}
		last := blocks[n-1]
		for range cols - rem {
			l.blocks = append(l.blocks, blankLike(tall, last))
		}
	}

	raw := 0
	for i := 0; i < len(l.blocks); i += cols {
		height, width := 0, 0
		for _, b := range l.blocks[i : i+cols] {
			height = max(height, b.Rows())
			width += b.Width()
		}
		l.heights = append(l.heights, height)
		raw = max(raw, width)
	}

	l.gap = raw / cols / 7
	l.width = raw + l.gap*(cols-1)
	return l
}

func (c *Collection) Title() string { return c.title }
func (c *Collection) Cols() int     { return c.cols }
func (c *Collection) Len() int      { return len(c.blocks) }

// Blocks returns the arranged blocks, including blank padding.
func (c *Collection) Blocks() []Block {
	return append([]Block(nil), c.arranged().blocks...)
}

// Mark forwards date to every block.
func (c *Collection) Mark(date time.Time) {
	for _, b := range c.blocks {
		b.Mark(date)
	}
}

// Unmark forwards date to every block.
func (c *Collection) Unmark(date time.Time) {
	for _, b := range c.blocks {
		b.Unmark(date)
	}
}

// IsMarked reports whether any block has date marked.
func (c *Collection) IsMarked(date time.Time) bool {
	for _, b := range c.blocks {
		if b.IsMarked(date) {
			return true
		}
	}
	return false
}

// CellWidth returns the widest cell among the blocks.
func (c *Collection) CellWidth() int {
	w := 0
	for _, b := range c.blocks {
		w = max(w, b.CellWidth())
	}
	return w
}

// Width returns the width of the widest row of blocks, gaps included.
func (c *Collection) Width() int { return c.arranged().width }

// Rows counts the title, every row of blocks and the blank separators
// between them. An empty collection has no rows.
func (c *Collection) Rows() int {
	l := c.arranged()
	if len(l.heights) == 0 {
		return 0
	}
	rows := len(l.heights) // title plus one separator per extra row
	for _, h := range l.heights {
		rows += h
	}
	return rows
}

// String renders the collection. A title wider than the grid is truncated;
// rows narrower than the widest one are padded on the right.
func (c *Collection) String() string {
	l := c.arranged()
	if len(l.blocks) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(center(truncate(c.title, l.width), l.width))

	gap := blank(l.gap)
	for g, height := range l.heights {
		group := l.blocks[g*c.cols : (g+1)*c.cols]
		lines := make([][]string, len(group))
		for i, blk := range group {
			lines[i] = Lines(blk)
		}

		if g > 0 {
			b.WriteByte('\n')
			b.WriteString(blank(l.width))
		}
		for row := range height {
			b.WriteByte('\n')
			used := 0
			for i, blk := range group {
				if i > 0 {
					b.WriteString(gap)
					used += l.gap
				}
				if row < len(lines[i]) {
					b.WriteString(lines[i][row])
					used += displayWidth(lines[i][row])
				} else {
					b.WriteString(blank(blk.Width()))
					used += blk.Width()
				}
			}
			b.WriteString(blank(l.width - used))
		}
	}
	return b.String()
}
