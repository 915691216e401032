package ui

import (
	"sqlscan/pkg/lexer"
	"sqlscan/pkg/ui/base"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor   = base.AdaptivePrimary
	secondaryColor = base.AdaptiveSecondary
	successColor   = base.AdaptiveSuccess
	errorColor     = base.AdaptiveError
	mutedColor     = base.AdaptiveMuted

	bgMedium = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#1E293B"}
	textFg   = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#F8FAFC"}
)

// Styles for the inspector and the CLI dump
var (
	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B5CF6")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2)

	badgeStyle = lipgloss.NewStyle().
			Background(secondaryColor).
			Foreground(lipgloss.Color("#0F172A")).
			Bold(true).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(bgMedium).
			Foreground(textFg).
			Padding(0, 1)

	errorBadgeStyle = lipgloss.NewStyle().
			Background(errorColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	editorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	headerRowStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
)

// Token styles
var (
	keywordStyle    = lipgloss.NewStyle().Foreground(base.AdaptiveKeyword).Bold(true)
	operatorStyle   = lipgloss.NewStyle().Foreground(base.AdaptiveOperator)
	numberStyle     = lipgloss.NewStyle().Foreground(base.AdaptiveNumber)
	stringStyle     = lipgloss.NewStyle().Foreground(base.AdaptiveString)
	identifierStyle = lipgloss.NewStyle().Foreground(base.AdaptiveIdentifier)
)

func tokenStyle(tok lexer.Token) lipgloss.Style {
	switch t := tok.(type) {
	case lexer.Type:
		switch {
		case t == lexer.EOF:
			return mutedStyle
		case t == lexer.WILDCARD || !isWordType(t):
			return operatorStyle
		default:
			return keywordStyle
		}
	case lexer.Identifier:
		return identifierStyle
	case lexer.Number:
		return numberStyle
	case lexer.StringLiteral:
		return stringStyle
	default:
		return lipgloss.NewStyle()
	}
}

func isWordType(t lexer.Type) bool {
	s := t.String()
	return s != "" && (s[0] >= 'A' && s[0] <= 'Z')
}
