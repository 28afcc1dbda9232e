package calendar

import (
	"strings"

	"github.com/unilibs/uniwidth"
)

// center pads s with spaces to w display columns. When the padding is odd the
// extra column goes to the right. Strings already at least w wide are returned
// unchanged.
func center(s string, w int) string {
	sw := uniwidth.StringWidth(s)
	if sw >= w {
		return s
	}
	left := (w - sw) / 2
	return blank(left) + s + blank(w-sw-left)
}

// blank returns a run of w spaces.
func blank(w int) string {
	if w <= 0 {
		return ""
	}
	return strings.Repeat(" ", w)
}

// truncate cuts s to at most w display columns without splitting a rune.
func truncate(s string, w int) string {
	if uniwidth.StringWidth(s) <= w {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := uniwidth.RuneWidth(r)
		if used+rw > w {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}

// displayWidth returns the number of terminal columns s occupies.
func displayWidth(s string) int {
	return uniwidth.StringWidth(s)
}
