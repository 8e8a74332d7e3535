package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

func testItems(names ...string) []pokeapi.NamedResource {
	items := make([]pokeapi.NamedResource, len(names))
	for i, n := range names {
		items[i] = pokeapi.NamedResource{Name: n, URL: "https://pokeapi.co/api/v2/type/" + n + "/"}
	}
	return items
}

func press(m NameListModel, keys ...tea.KeyMsg) (NameListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(NameListModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNameListSelect(t *testing.T) {
	m := NewNameListModel("type", testItems("normal", "fire", "water"))

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected == nil || m.Selected.Name != "water" {
		t.Fatalf("Selected = %+v, want water", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestNameListCursorBounds(t *testing.T) {
	m := NewNameListModel("type", testItems("normal", "fire"))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("Cursor after up at top = %d, want 0", m.Cursor)
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 1 {
		t.Errorf("Cursor after down past end = %d, want 1", m.Cursor)
	}
}

func TestNameListScrolls(t *testing.T) {
	names := make([]string, 20)
	for i := range names {
		names[i] = strings.Repeat("a", i+1)
	}
	m := NewNameListModel("type", testItems(names...))
	m.Height = 5

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 6 || m.Offset != 2 {
		t.Errorf("Cursor/Offset = %d/%d, want 6/2", m.Cursor, m.Offset)
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyPgUp}, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("Cursor/Offset = %d/%d, want 0/0", m.Cursor, m.Offset)
	}
}

func TestNameListFilter(t *testing.T) {
	m := NewNameListModel("type", testItems("normal", "fire", "fighting", "water"))

	m, _ = press(m, runes("f"), runes("i"))
	if m.Filter != "fi" {
		t.Fatalf("Filter = %q, want fi", m.Filter)
	}
	view := m.View()
	if strings.Contains(view, "water") || !strings.Contains(view, "fighting") {
		t.Errorf("filtered view should show only matches:\n%s", view)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected == nil || m.Selected.Name != "fighting" {
		t.Errorf("Selected = %+v, want fighting", m.Selected)
	}
}

func TestNameListFilterBackspace(t *testing.T) {
	m := NewNameListModel("type", testItems("normal", "fire"))

	m, _ = press(m, runes("x"))
	if !strings.Contains(m.View(), "no matches") {
		t.Error("view should report no matches")
	}
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected != nil || cmd != nil {
		t.Error("enter with no matches should do nothing")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Filter != "" || !strings.Contains(m.View(), "[1/2]") {
		t.Errorf("backspace should clear the filter, view:\n%s", m.View())
	}
}

func TestNameListQuit(t *testing.T) {
	m := NewNameListModel("type", testItems("normal"))

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Selected != nil {
		t.Error("esc should not select")
	}
	if cmd == nil {
		t.Error("esc should quit the program")
	}
}

func TestNameListWindowSize(t *testing.T) {
	m := NewNameListModel("type", testItems("normal"))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	if got := next.(NameListModel).Height; got != 24 {
		t.Errorf("Height = %d, want 24", got)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 4})
	if got := next.(NameListModel).Height; got != 5 {
		t.Errorf("Height = %d, want minimum 5", got)
	}
}
