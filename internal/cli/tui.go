package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listFilterStyle   = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// NameListModel - Interactive resource selection
// =============================================================================

// NameListModel is the bubbletea model behind the browse command. It shows a
// scrolling window of resource names and narrows them as the user types.
type NameListModel struct {
	Title    string
	Items    []pokeapi.NamedResource
	Filter   string
	Cursor   int
	Offset   int
	Height   int
	Selected *pokeapi.NamedResource

	visible []int
}

// NewNameListModel creates a list over items.
func NewNameListModel(title string, items []pokeapi.NamedResource) NameListModel {
	m := NameListModel{Title: title, Items: items, Height: 15}
	m.refilter()
	return m
}

func (m NameListModel) Init() tea.Cmd {
	return nil
}

func (m NameListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			m.move(-1)
		case tea.KeyDown:
			m.move(1)
		case tea.KeyPgUp:
			m.move(-m.Height)
		case tea.KeyPgDown:
			m.move(m.Height)
		case tea.KeyEnter:
			if len(m.visible) == 0 {
				return m, nil
			}
			item := m.Items[m.visible[m.Cursor]]
			m.Selected = &item
			return m, tea.Quit
		case tea.KeyBackspace:
			if m.Filter != "" {
				r := []rune(m.Filter)
				m.Filter = string(r[:len(r)-1])
				m.refilter()
			}
		case tea.KeyRunes:
			m.Filter += string(msg.Runes)
			m.refilter()
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta and keeps it inside the scroll window.
func (m *NameListModel) move(delta int) {
	if len(m.visible) == 0 {
		m.Cursor, m.Offset = 0, 0
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.visible)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m *NameListModel) refilter() {
	visible := make([]int, 0, len(m.Items))
	for i, it := range m.Items {
		if strings.Contains(it.Name, m.Filter) {
			visible = append(visible, i)
		}
	}
	m.visible = visible
	m.Cursor, m.Offset = 0, 0
}

func (m NameListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  type to filter  ⏎ select  esc quit"))
	b.WriteString("\n")
	if m.Filter != "" {
		b.WriteString(listFilterStyle.Render("filter: " + m.Filter))
	}
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(listDimStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	end := min(m.Offset+m.Height, len(m.visible))
	for i := m.Offset; i < end; i++ {
		name := m.Items[m.visible[i]].Name
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + name))
		} else {
			b.WriteString(listNormalStyle.Render("  " + name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.visible)), len(m.visible))))

	return b.String()
}
