package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m LayoutListModel, keys ...string) (LayoutListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(LayoutListModel)
	}
	return m, cmd
}

func TestNewLayoutListModel(t *testing.T) {
	tests := []struct {
		start int
		want  int
	}{
		{0, 0},
		{9, 9},
		{-1, 0},
		{13, 0},
	}
	for _, tt := range tests {
		if got := NewLayoutListModel(3, tt.start).Cursor; got != tt.want {
			t.Errorf("NewLayoutListModel(3, %d).Cursor = %d, want %d", tt.start, got, tt.want)
		}
	}
}

func TestLayoutListNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"down", []string{"down", "down"}, 2},
		{"vim keys", []string{"j", "j", "j", "k"}, 2},
		{"stops at top", []string{"up", "k"}, 0},
		{"stops at bottom", []string{"down", "down", "down", "down", "down", "down", "down", "down", "down", "down", "down", "down", "down", "down"}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(NewLayoutListModel(2, 0), tt.keys...)
			if m.Cursor != tt.want {
				t.Errorf("Cursor = %d, want %d", m.Cursor, tt.want)
			}
			if m.Selected != nil {
				t.Error("navigation should not select")
			}
		})
	}
}

func TestLayoutListSelect(t *testing.T) {
	m, cmd := press(NewLayoutListModel(2, 0), "down", "down", "down", "enter")
	if m.Selected == nil {
		t.Fatal("enter should select the layout under the cursor")
	}
	if got := m.Selected.Index(); got != 3 {
		t.Errorf("Selected.Index() = %d, want 3", got)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestLayoutListQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m, cmd := press(NewLayoutListModel(2, 4), k)
		if m.Selected != nil {
			t.Errorf("%s should not select", k)
		}
		if cmd == nil {
			t.Errorf("%s should quit the program", k)
		}
	}
}

func TestLayoutListView(t *testing.T) {
	m := NewLayoutListModel(4, 3)
	view := m.View()

	for _, want := range []string{"Select Layout", "layout0", "layout12", "▸ ! layout3", "✓ layout6", "4 plots"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
