package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sqlscan/pkg/lexer"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Settings are the scanner options the inspector (and the CLI) run with.
type Settings struct {
	EOF     bool
	Quote   byte
	Escapes lexer.EscapePolicy
}

// Options translates the settings into lexer options.
func (s Settings) Options() []lexer.Option {
	opts := []lexer.Option{lexer.WithEscapes(s.Escapes)}
	if s.Quote != 0 {
		opts = append(opts, lexer.WithQuote(s.Quote))
	}
	if s.EOF {
		opts = append(opts, lexer.WithEOF())
	}
	return opts
}

// Model is the token inspector: an editor whose contents are re-scanned on
// every change, with the resulting tokens shown below it.
type Model struct {
	editor textarea.Model
	tokens viewport.Model
	help   help.Model
	keys   keyMap

	settings Settings
	width    int
	height   int
	showHelp bool

	source   string
	seq      lexer.Sequence
	scanErr  *lexer.ScanError
	scanTime time.Duration

	// generation of the newest scan; older results are dropped
	gen int
}

func NewModel(initial string, settings Settings) Model {
	ta := textarea.New()
	ta.Placeholder = "Type a query to see its tokens..."
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = true
	ta.SetHeight(6)
	ta.SetValue(initial)
	ta.Focus()

	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(mutedColor)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(mutedColor)

	vp := viewport.New(80, 12)
	vp.Style = resultStyle

	return Model{
		editor:   ta,
		tokens:   vp,
		help:     help.New(),
		keys:     keys,
		settings: settings,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.scan(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleEOF):
			m.settings.EOF = !m.settings.EOF
			cmd := m.rescan()
			return m, cmd

		case key.Matches(msg, m.keys.CycleEscape):
			m.settings.Escapes = (m.settings.Escapes + 1) % 3
			cmd := m.rescan()
			return m, cmd

		case key.Matches(msg, m.keys.Clear):
			m.editor.SetValue("")
			cmd := m.rescan()
			return m, cmd

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.tokens, cmd = m.tokens.Update(msg)
			return m, cmd
		}

	case scanResultMsg:
		// Commands run concurrently, so an older scan can finish last.
		if msg.gen != m.gen {
			return m, nil
		}
		m.source = msg.source
		m.seq = msg.seq
		m.scanErr = msg.err
		m.scanTime = msg.duration
		m.tokens.SetContent(m.renderScan())
		m.tokens.GotoTop()
		return m, nil
	}

	before := m.editor.Value()

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	if m.editor.Value() != before {
		cmds = append(cmds, m.rescan())
	}

	m.tokens, cmd = m.tokens.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderEditor(),
		m.renderPreview(),
	}

	if m.scanErr != nil {
		sections = append(sections, m.renderError())
	}
	sections = append(sections, m.tokens.View(), m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("sqlscan token inspector")

	eof := "off"
	if m.settings.EOF {
		eof = "on"
	}
	badge := badgeStyle.Render(fmt.Sprintf("escapes: %s | eof: %s", m.settings.Escapes, eof))

	return lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", badge)
}

func (m Model) renderEditor() string {
	label := labelStyle.Render("Query")
	return fmt.Sprintf("%s\n%s", label, editorStyle.Render(m.editor.View()))
}

func (m Model) renderPreview() string {
	if m.source == "" {
		return mutedStyle.Render("(empty input)")
	}
	h := NewSQLHighlighter(m.settings.Options()...)
	return h.Highlight(m.source)
}

func (m Model) renderError() string {
	icon := errorBadgeStyle.Render(" ⚠ SCAN ERROR ")
	return icon + " " + errorStyle.Render(m.scanErr.Error())
}

func (m Model) renderScan() string {
	if m.scanErr != nil {
		return RenderScanError("query", []byte(m.source), m.scanErr)
	}
	return RenderTokens([]byte(m.source), m.seq)
}

func (m Model) renderStatusBar() string {
	status := successStyle.Render(fmt.Sprintf("● %d tokens", len(m.seq)))
	if m.scanErr != nil {
		status = errorStyle.Render(fmt.Sprintf("● error at offset %d", m.scanErr.Offset))
	}

	hint := mutedStyle.Render(fmt.Sprintf(" | scanned in %v | Press F1 for help", m.scanTime))

	width := m.width - 4
	if width < 0 {
		width = 0
	}
	return statusBarStyle.Width(width).Render(status + hint)
}

func (m Model) renderHelp() string {
	helpText := m.help.FullHelpView([][]key.Binding{
		{
			m.keys.ToggleEOF,
			m.keys.CycleEscape,
			m.keys.Clear,
		},
		{
			m.keys.PageUp,
			m.keys.PageDown,
			m.keys.Help,
			m.keys.Quit,
		},
	})

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Render(helpText)
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	editorHeight := 6
	tokensHeight := m.height - editorHeight - 14 // header, preview, status bar
	if tokensHeight < 3 {
		tokensHeight = 3
	}

	m.editor.SetWidth(m.width - 6)
	m.tokens.Width = m.width - 6
	m.tokens.Height = tokensHeight
}

type scanResultMsg struct {
	gen      int
	source   string
	seq      lexer.Sequence
	err      *lexer.ScanError
	duration time.Duration
}

// rescan starts a new scan generation for the current editor contents and
// settings.
func (m *Model) rescan() tea.Cmd {
	m.gen++
	return m.scan()
}

// scan runs the lexer off the update loop, tagging the result with the
// current generation.
func (m Model) scan() tea.Cmd {
	gen := m.gen
	src := m.editor.Value()
	opts := m.settings.Options()

	return func() tea.Msg {
		start := time.Now()
		seq, err := lexer.ScanString(src, opts...)
		msg := scanResultMsg{gen: gen, source: src, seq: seq, duration: time.Since(start)}
		if err != nil && !errors.As(err, &msg.err) {
			msg.err = &lexer.ScanError{Msg: err.Error()}
		}
		return msg
	}
}
