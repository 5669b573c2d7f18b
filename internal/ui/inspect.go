package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"mica/internal/source"
	"mica/internal/token"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	kindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	triviaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	anomalyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type inspectModel struct {
	title    string
	fs       *source.FileSet
	tokens   []token.Token
	cursor   int
	vp       viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewInspectModel returns a Bubble Tea model that lets the user walk the
// token stream of one file with the keyboard.
func NewInspectModel(title string, fs *source.FileSet, tokens []token.Token) tea.Model {
	return &inspectModel{
		title:  title,
		fs:     fs,
		tokens: tokens,
		width:  80,
		height: 24,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tokens)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.tokens) - 1
		case "pgup":
			m.cursor = max(0, m.cursor-m.pageSize())
		case "pgdown":
			m.cursor = min(len(m.tokens)-1, m.cursor+m.pageSize())
		}
		m.syncViewport()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, m.listHeight())
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = m.listHeight()
		}
		m.syncViewport()
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *inspectModel) pageSize() int {
	size := m.listHeight()
	if size < 1 {
		return 1
	}
	return size
}

// listHeight — строки под список: заголовок, деталь и футер забирают 6.
func (m *inspectModel) listHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

func (m *inspectModel) syncViewport() {
	if !m.ready {
		return
	}
	m.vp.SetContent(m.renderList())
	// Держим курсор в видимой области.
	top := m.vp.YOffset
	bottom := top + m.vp.Height - 1
	if m.cursor < top {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor > bottom {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *inspectModel) renderList() string {
	var b strings.Builder
	for i, tok := range m.tokens {
		line := m.renderToken(i, tok)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *inspectModel) renderToken(index int, tok token.Token) string {
	kind := tok.Kind.String()
	switch tok.Kind {
	case token.Whitespace, token.Comment:
		kind = triviaStyle.Render(kind)
	case token.Unknown:
		kind = anomalyStyle.Render(kind)
	default:
		kind = kindStyle.Render(kind)
	}

	text := tok.Text
	if text != "" {
		text = fmt.Sprintf("%q", text)
	}
	line := fmt.Sprintf("%4d %-12s %s", index+1, kind, text)
	return truncate(line, m.width-2)
}

func (m *inspectModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ move · pgup/pgdn page · g/G ends · q quit"))
	return b.String()
}

// renderDetail — строка с позицией и span'ом выбранного токена.
func (m *inspectModel) renderDetail() string {
	if len(m.tokens) == 0 {
		return "no tokens"
	}
	tok := m.tokens[m.cursor]
	detail := fmt.Sprintf("%d/%d  %s  span %d-%d",
		m.cursor+1, len(m.tokens), tok.Kind, tok.Span.Start, tok.Span.End)
	if m.fs != nil && tok.Span.File != source.NoFileID {
		start, end := m.fs.Resolve(tok.Span)
		detail += fmt.Sprintf("  at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return truncate(detail, m.width-2)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}

// RunInspect запускает полноэкранный просмотрщик токенов.
func RunInspect(title string, fs *source.FileSet, tokens []token.Token) error {
	p := tea.NewProgram(NewInspectModel(title, fs, tokens), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
