package ui

import (
	"fmt"
	"strings"

	"sqlscan/pkg/lexer"
	"sqlscan/pkg/ui/base"
)

const (
	offsetWidth = 7
	posWidth    = 9
	kindWidth   = 16
	textWidth   = 40
)

// RenderTokens formats seq as a styled table: offset, line:col, kind and the
// token text. src is the buffer seq was scanned from.
func RenderTokens(src []byte, seq lexer.Sequence) string {
	var b strings.Builder

	header := base.RightAlign("OFFSET", offsetWidth) + "  " +
		base.PadString("LINE:COL", posWidth) + "  " +
		base.PadString("KIND", kindWidth) + "  TEXT"
	b.WriteString(headerRowStyle.Render(header))
	b.WriteString("\n")

	for _, it := range seq {
		line, col := lexer.LineCol(src, it.Pos)
		kind := lexer.TypeOf(it.Token).Name()
		text := base.TruncateString(it.Token.String(), textWidth)

		b.WriteString(mutedStyle.Render(base.RightAlign(fmt.Sprint(it.Pos), offsetWidth)))
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(base.PadString(fmt.Sprintf("%d:%d", line, col), posWidth)))
		b.WriteString("  ")
		b.WriteString(base.PadString(kind, kindWidth))
		b.WriteString("  ")
		b.WriteString(tokenStyle(it.Token).Render(text))
		b.WriteString("\n")
	}

	b.WriteString(successStyle.Render(fmt.Sprintf("%d tokens", len(seq))))
	return b.String()
}

// RenderScanError formats a scan failure compiler-style: location, message,
// the offending source line and a caret under the failing byte.
func RenderScanError(name string, src []byte, serr *lexer.ScanError) string {
	line, col := lexer.LineCol(src, serr.Offset)

	start := serr.Offset
	if start > len(src) {
		start = len(src)
	}
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := start
	for end < len(src) && src[end] != '\n' {
		end++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", errorBadgeStyle.Render(fmt.Sprintf("%s:%d:%d", name, line, col)), errorStyle.Render(serr.Msg))
	b.WriteString(string(src[start:end]))
	b.WriteString("\n")
	b.WriteString(errorStyle.Render(base.Caret(col)))
	return b.String()
}

// RenderTitle renders a section title, e.g. the file name above its tokens.
func RenderTitle(s string) string {
	return titleStyle.Render(s)
}
