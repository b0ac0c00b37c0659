package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func courseUpdate(t *testing.T, m CourseModel, msg tea.Msg) (CourseModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	cm, ok := next.(CourseModel)
	if !ok {
		t.Fatalf("Update returned %T, want CourseModel", next)
	}
	return cm, cmd
}

func TestCourseModelSelect(t *testing.T) {
	courses := []string{"Coastline", "Canyon Run", "Oval"}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"first", nil, 0},
		{"down once", []tea.KeyMsg{runeKey("j")}, 1},
		{"down past end", []tea.KeyMsg{runeKey("j"), runeKey("j"), runeKey("j"), runeKey("j")}, 2},
		{"up at top", []tea.KeyMsg{runeKey("k")}, 0},
		{"down then up", []tea.KeyMsg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCourseModel("Racer", courses, 80, 24)
			for _, k := range tt.keys {
				m, _ = courseUpdate(t, m, k)
			}
			if m.Chosen() != -1 {
				t.Fatalf("Chosen() = %d before Enter, want -1", m.Chosen())
			}

			m, cmd := courseUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if m.Chosen() != tt.want {
				t.Errorf("Chosen() = %d, want %d", m.Chosen(), tt.want)
			}
			if cmd == nil {
				t.Error("selecting should end the picker")
			}
		})
	}
}

func TestCourseModelBackAndQuit(t *testing.T) {
	m := NewCourseModel("Racer", []string{"Oval"}, 80, 24)
	m, _ = courseUpdate(t, m, runeKey("b"))
	if !m.WantsBack() || m.Chosen() != -1 {
		t.Errorf("back: WantsBack=%v Chosen=%d, want true and -1", m.WantsBack(), m.Chosen())
	}

	m = NewCourseModel("Racer", []string{"Oval"}, 80, 24)
	m, _ = courseUpdate(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestCourseModelEmpty(t *testing.T) {
	m := NewCourseModel("Racer", nil, 80, 24)
	m, cmd := courseUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Chosen() != -1 || cmd != nil {
		t.Error("Enter with no courses should do nothing")
	}
}

func TestCourseModelView(t *testing.T) {
	m := NewCourseModel("Racer", []string{"Coastline", "Oval"}, 80, 24)
	m, _ = courseUpdate(t, m, runeKey("j"))
	view := m.View()

	for _, want := range []string{"RACER", "1. Coastline", "> 2. Oval"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
