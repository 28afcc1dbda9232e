package errors

import (
	"strings"
	"unicode"
)

// Bounds of a day cell. MinCellWidth still fits a two-digit day and a
// two-letter weekday abbreviation; MaxCellWidth keeps a rendered year within a
// few hundred kilobytes.
const (
	MinCellWidth = 2
	MaxCellWidth = 32
)

// ValidateMonth checks that month is in 1..12.
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return New(ErrCodeInvalidDate, "month %d out of range (must be 1-12)", month)
	}
	return nil
}

// ValidateCellWidth checks that a day cell is MinCellWidth to MaxCellWidth
// columns wide.
func ValidateCellWidth(width int) error {
	if width < MinCellWidth {
		return New(ErrCodeInvalidWidth, "cell width %d too small (min %d)", width, MinCellWidth)
	}
	if width > MaxCellWidth {
		return New(ErrCodeInvalidWidth, "cell width %d too large (max %d)", width, MaxCellWidth)
	}
	return nil
}

// ValidateColumns checks that a grid has at least one column.
func ValidateColumns(cols int) error {
	if cols < 1 {
		return New(ErrCodeInvalidColumns, "column count %d must be at least 1", cols)
	}
	return nil
}

// ValidateTitle rejects titles that would break the line structure of a
// rendered grid. Newlines and other control characters are not allowed.
func ValidateTitle(title string) error {
	const maxTitleLength = 256
	if len(title) > maxTitleLength {
		return New(ErrCodeInvalidInput, "title too long (max %d characters)", maxTitleLength)
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates a config or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateLocale checks that a locale tag is a short lowercase identifier.
func ValidateLocale(tag string) error {
	if tag == "" {
		return New(ErrCodeInvalidLocale, "locale cannot be empty")
	}
	if len(tag) > 16 || strings.TrimFunc(tag, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || r == '-' || r == '_'
	}) != "" {
		return New(ErrCodeInvalidLocale, "invalid locale tag: %q", tag)
	}
	return nil
}
