package base

import "strings"

// PadString pads a string to the specified width with spaces
func PadString(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// TruncateString truncates a string to maxWidth with ellipsis
func TruncateString(s string, maxWidth int) string {
	if len(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return s[:maxWidth]
	}
	return s[:maxWidth-3] + "..."
}

// RightAlign right-aligns a string within the given width
func RightAlign(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// Caret returns a line with a single ^ under 1-based column col.
func Caret(col int) string {
	if col < 1 {
		col = 1
	}
	return strings.Repeat(" ", col-1) + "^"
}
