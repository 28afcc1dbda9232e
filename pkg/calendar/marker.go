package calendar

import (
	"strings"
	"unicode/utf8"

	"github.com/unilibs/uniwidth"

	"github.com/matzehuels/textcal/pkg/errors"
)

// Marker decorates the numeral of a marked day. Implementations must be pure:
// Decorate is called once per marked day on every render.
//
// The numeral passed in is always two columns wide ("1 ", "10"). A Marker is
// free to return any width; keeping the result within the grid's cell width
// is the caller's responsibility.
type Marker interface {
	Decorate(day string) string
}

// MarkerFunc adapts an ordinary function to the Marker interface.
type MarkerFunc func(day string) string

// Decorate calls f(day).
func (f MarkerFunc) Decorate(day string) string { return f(day) }

// BasicMarker enumerates the built-in decorations.
type BasicMarker int

const (
	// NoMarker leaves marked days undecorated.
	NoMarker BasicMarker = iota
	// Brackets wraps marked days in square brackets: [9 ].
	Brackets
	// Underscore wraps marked days in underscores: _9 _.
	Underscore
)

// Decorate implements Marker.
func (m BasicMarker) Decorate(day string) string {
	switch m {
	case Brackets:
		return "[" + day + "]"
	case Underscore:
		return "_" + day + "_"
	default:
		return day
	}
}

func (m BasicMarker) String() string {
	switch m {
	case Brackets:
		return "brackets"
	case Underscore:
		return "underscore"
	default:
		return "none"
	}
}

// CharMarker wraps marked days in a single repeated character: *9 *.
type CharMarker rune

// Decorate implements Marker.
func (c CharMarker) Decorate(day string) string {
	return string(c) + day + string(c)
}

// PadMarker surrounds marked days with Fill so the decoration spans the whole
// cell. With CellWidth 6 and Fill '!' day 9 becomes "!!9 !!". Odd cell widths
// get a trailing space so the numeral keeps its column.
type PadMarker struct {
	Fill      rune
	CellWidth int
}

// Decorate implements Marker.
func (p PadMarker) Decorate(day string) string {
	n := max(p.CellWidth-2, 0) / 2
	fill := strings.Repeat(string(p.Fill), n)
	s := fill + day + fill
	if p.CellWidth%2 == 1 {
		s += " "
	}
	return s
}

// MarkerWidth returns the display width of a marked two-digit day. Marked rows
// stay aligned only while it is at most the cell width.
func MarkerWidth(m Marker) int {
	if m == nil {
		m = NoMarker
	}
	return uniwidth.StringWidth(m.Decorate("10"))
}

// ParseMarker resolves a marker by name. Recognized names are "none",
// "brackets", "underscore", "char:<c>" and "pad:<c>". The cell width is only
// used by pad markers.
func ParseMarker(name string, cellWidth int) (Marker, error) {
	switch name {
	case "", "none":
		return NoMarker, nil
	case "brackets":
		return Brackets, nil
	case "underscore":
		return Underscore, nil
	}

	kind, arg, ok := strings.Cut(name, ":")
	if !ok || utf8.RuneCountInString(arg) != 1 {
		return nil, errors.New(errors.ErrCodeInvalidMarker, "unknown marker %q (want none, brackets, underscore, char:<c> or pad:<c>)", name)
	}
	r, _ := utf8.DecodeRuneInString(arg)
	switch kind {
	case "char":
		return CharMarker(r), nil
	case "pad":
		return PadMarker{Fill: r, CellWidth: cellWidth}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidMarker, "unknown marker kind %q", kind)
}
