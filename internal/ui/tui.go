// Package ui provides an optional terminal viewer for the todo index.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seedtail/notefold/internal/store"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	helpStyle     = lipgloss.NewStyle().Faint(true).Padding(1, 1, 0, 1)
)

// Run starts the read-only todo viewer against dataPath.
func Run(ctx context.Context, st *store.Store, dataPath string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	m := newModel(st, dataPath)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// IsTTY reports whether w is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}

type viewState int

const (
	viewList viewState = iota
	viewDetail
)

type model struct {
	st       *store.Store
	dataPath string

	todos  []store.TodoItem
	cursor int
	view   viewState
	detail string

	width, height int
}

func newModel(st *store.Store, dataPath string) model {
	return model{
		st:       st,
		dataPath: dataPath,
		todos:    st.Todos(dataPath),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.onKey(msg)
	}
	return m, nil
}

func (m model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || msg.String() == "q" {
		if m.view == viewDetail {
			m.view = viewList
			return m, nil
		}
		return m, tea.Quit
	}

	switch m.view {
	case viewList:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.todos)-1 {
				m.cursor++
			}
		case "r":
			m.todos = m.st.Todos(m.dataPath)
			if m.cursor >= len(m.todos) {
				m.cursor = 0
			}
		case "enter":
			if m.cursor < len(m.todos) {
				detail, err := m.st.Detail(m.dataPath, m.todos[m.cursor].FolderName)
				if err != nil {
					detail = err.Error()
				}
				m.detail = detail
				m.view = viewDetail
			}
		}
	case viewDetail:
		if msg.String() == "esc" || msg.String() == "enter" {
			m.view = viewList
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("notefold"))
	b.WriteString(dimStyle.Render("  " + m.dataPath))
	b.WriteString("\n\n")

	if m.view == viewDetail {
		b.WriteString(m.detail)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back"))
		return b.String()
	}

	if len(m.todos) == 0 {
		b.WriteString(dimStyle.Render("  no todos"))
	}
	for i, t := range m.todos {
		line := fmt.Sprintf("%s %s", statusStyle.Render("["+t.Status+"]"), t.Title)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · enter detail · r reload · q quit"))
	return b.String()
}
