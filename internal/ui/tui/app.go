package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/paradigm"
)

type menuItem struct {
	name string
	desc string
}

func (m menuItem) Title() string       { return m.name }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.name }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	menu   list.Model
	active paradigm.Paradigm
	style  domain.Style

	output string
	err    error
	toast  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Paradigms == nil {
		deps.Paradigms = paradigm.Default()
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	all := deps.Paradigms.All()
	items := make([]list.Item, 0, len(all))
	selected := 0
	for i, p := range all {
		items = append(items, menuItem{name: p.Name(), desc: p.Description()})
		if p.Name() == deps.Paradigm {
			selected = i
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 48, 12)
	l.Title = "Paradigms"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Select(selected)

	style := deps.Style
	if style.Validate() != nil {
		style = domain.StyleAsciidoc
	}

	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		log:   log,
		menu:  l,
		style: style,
	}
	if len(all) > 0 {
		m.active = all[selected]
	}
	m.render()
	return m
}

func (m *model) render() {
	if m.active == nil {
		m.output, m.err = "", nil
		return
	}
	m.output, m.err = m.active.Transform(m.deps.Names, m.style)
	if m.err != nil {
		m.log.Error("tui.render_failed", "paradigm", m.active.Name(), "error", m.err)
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(max(msg.Width/2-4, 20), max(msg.Height-12, 6))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "tab", "s":
			m.style = m.style.Next()
			m.toast = "Style: " + m.style.String()
			m.render()
			return m, nil

		case "enter", " ":
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			p, err := m.deps.Paradigms.Lookup(it.name)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.active = p
			m.toast = "Paradigm: " + p.Name()
			m.render()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("paradigm") + "\n" +
		m.theme.Subtitle.Render("one list transformation, three programming paradigms") + "\n"

	activeName := "(none)"
	if m.active != nil {
		activeName = m.active.Name()
	}
	badges := m.theme.Badge.Render(activeName) + " " + m.theme.Badge.Render(m.style.String()) +
		" " + m.theme.Help.Render(fmt.Sprintf("%d name(s)", len(m.deps.Names)))

	var body string
	switch {
	case m.err != nil:
		body = m.theme.Error.Render(userMessage(m.err))
	case m.output == "":
		body = m.theme.Subtitle.Render("(empty list)")
	default:
		body = m.output
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Card.Render(m.menu.View()),
		"  ",
		m.theme.Card.Render(body),
	)

	help := m.theme.Help.Render("↑/↓ navigate • enter use paradigm • tab toggle style • q quit")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(badges)
	b.WriteString("\n\n")
	b.WriteString(panes)
	b.WriteString("\n")
	if m.toast != "" {
		b.WriteString(m.theme.Help.Render(m.toast))
		b.WriteString("\n")
	}
	b.WriteString(help)
	return wrap.Render(b.String())
}
