package ui

import (
	"strings"
	"testing"

	"sqlscan/pkg/lexer"

	"github.com/charmbracelet/lipgloss"
)

func TestHighlightPreservesText(t *testing.T) {
	// Tests run without a terminal, so lipgloss renders without escape codes
	// and highlighted output must equal the input byte for byte.
	h := NewSQLHighlighter()
	inputs := []string{
		"SELECT * FROM t WHERE x >= 1;",
		"  \tCREATE TABLE users (id INT PK)\n\n",
		"INSERT t VALUES (1, 'multi\nline')",
		"",
		"   ",
		"a==b",
	}

	for _, in := range inputs {
		if got := h.Highlight(in); got != in {
			t.Errorf("Highlight(%q) = %q", in, got)
		}
	}
}

func TestHighlightWithEOFSentinel(t *testing.T) {
	h := NewSQLHighlighter(lexer.WithEOF())
	in := "DROP t  "
	if got := h.Highlight(in); got != in {
		t.Errorf("Highlight(%q) = %q", in, got)
	}
}

func TestHighlightScanErrorKeepsText(t *testing.T) {
	h := NewSQLHighlighter()
	in := "SELECT # FROM t"
	if got := h.Highlight(in); got != in {
		t.Errorf("Highlight(%q) = %q", in, got)
	}

	unterminated := "SELECT 'abc"
	if got := h.Highlight(unterminated); got != unterminated {
		t.Errorf("Highlight(%q) = %q", unterminated, got)
	}
}

func TestTokenStyleRoles(t *testing.T) {
	tests := []struct {
		tok  lexer.Token
		want lipgloss.Style
	}{
		{lexer.SELECT, keywordStyle},
		{lexer.PRIMARY_KEY, keywordStyle},
		{lexer.GEQ, operatorStyle},
		{lexer.WILDCARD, operatorStyle},
		{lexer.LPAREN, operatorStyle},
		{lexer.EOF, mutedStyle},
		{lexer.Identifier("users"), identifierStyle},
		{lexer.Number{Value: 1}, numberStyle},
		{lexer.StringLiteral("x"), stringStyle},
	}

	for _, tt := range tests {
		got := tokenStyle(tt.tok)
		if got.GetForeground() != tt.want.GetForeground() || got.GetBold() != tt.want.GetBold() {
			t.Errorf("tokenStyle(%v): unexpected style", tt.tok)
		}
	}
}

func TestRenderInlineKeepsNewlines(t *testing.T) {
	got := renderInline(stringStyle, "'a\n\nb'")
	if strings.Count(got, "\n") != 2 {
		t.Errorf("Expected 2 newlines, got %q", got)
	}
}

func TestMarkAtStylesWholeCharacter(t *testing.T) {
	brackets := lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" })

	tests := []struct {
		in   string
		at   int
		want string
	}{
		{"a # b", 2, "a [#] b"},
		{"a é", 2, "a [é]"},
		{"x 日本", 2, "x [日]本"},
		{"abc", 3, "abc"},
	}

	for _, tt := range tests {
		if got := markAt(tt.in, tt.at, brackets); got != tt.want {
			t.Errorf("markAt(%q, %d) = %q, want %q", tt.in, tt.at, got, tt.want)
		}
	}
}

func TestHighlightNonASCIIScanError(t *testing.T) {
	in := "a é"
	if got := NewSQLHighlighter().Highlight(in); got != in {
		t.Errorf("Highlight(%q) = %q", in, got)
	}
}
