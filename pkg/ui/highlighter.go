package ui

import (
	"errors"
	"strings"
	"unicode/utf8"

	"sqlscan/pkg/lexer"

	"github.com/charmbracelet/lipgloss"
)

// SQLHighlighter colors query text using the lexer's own classification, so
// what is highlighted as a keyword is exactly what the parser sees as one.
type SQLHighlighter struct {
	opts []lexer.Option
}

func NewSQLHighlighter(opts ...lexer.Option) *SQLHighlighter {
	return &SQLHighlighter{opts: opts}
}

// Highlight returns sql with every token styled and whitespace preserved. If
// sql does not scan, only the failing character is marked.
func (h *SQLHighlighter) Highlight(sql string) string {
	seq, err := lexer.ScanString(sql, h.opts...)
	if err != nil {
		var serr *lexer.ScanError
		if errors.As(err, &serr) {
			return markAt(sql, serr.Offset, errorStyle)
		}
		return sql
	}

	if len(seq) == 0 {
		return sql
	}

	var b strings.Builder
	b.WriteString(sql[:seq[0].Pos])

	for i, it := range seq {
		if it.Token == lexer.EOF {
			continue
		}
		end := len(sql)
		if i+1 < len(seq) {
			end = seq[i+1].Pos
		}

		// The segment up to the next token is the lexeme plus trailing
		// whitespace; lexemes never end in whitespace.
		seg := sql[it.Pos:end]
		lexeme := strings.TrimRight(seg, " \t\n\r\f\v")
		b.WriteString(renderInline(tokenStyle(it.Token), lexeme))
		b.WriteString(seg[len(lexeme):])
	}

	return b.String()
}

// markAt styles the whole character starting at byte offset at.
func markAt(sql string, at int, style lipgloss.Style) string {
	if at < 0 || at >= len(sql) {
		return sql
	}
	_, size := utf8.DecodeRuneInString(sql[at:])
	return sql[:at] + style.Render(sql[at:at+size]) + sql[at+size:]
}

// renderInline styles each line separately so lipgloss does not pad a
// multi-line string literal into a block.
func renderInline(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
