package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// courseGame adds course selection to lapGame.
type courseGame struct {
	*lapGame
	course int
}

func (g *courseGame) ID() string { return "coursetest" }

func (g *courseGame) Courses() []string { return []string{"Loop", "Hill"} }

func (g *courseGame) SetCourse(i int) error {
	if i < 0 || i >= 2 {
		return fmt.Errorf("no course %d", i)
	}
	g.course = i
	return nil
}

func init() {
	registry.Register("coursetest", func() registry.Game {
		return &courseGame{lapGame: &lapGame{overAt: 1, score: 7}}
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testConfig, "tester", nil)
	m.Init()

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.stage != stageCourse {
		t.Fatalf("stage after picking a game = %v, want course picker", m.stage)
	}

	m = sessionUpdate(t, m, runeKey("j"))
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.stage != stageGame {
		t.Fatalf("stage after picking a course = %v, want game", m.stage)
	}
	cg, ok := m.game.(*courseGame)
	if !ok {
		t.Fatalf("session game is %T, want *courseGame", m.game)
	}
	if cg.course != 1 {
		t.Errorf("course = %d, want 1", cg.course)
	}

	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, runeKey("b"))
	if m.stage != stageMenu {
		t.Errorf("stage after B at game over = %v, want menu", m.stage)
	}
	if m.quitting {
		t.Error("going back should keep the session open")
	}
}

func TestSessionCourseBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig, "tester", nil)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = sessionUpdate(t, m, runeKey("b"))
	if m.stage != stageMenu {
		t.Errorf("stage after backing out of the course picker = %v, want menu", m.stage)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testConfig, "tester", nil)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.stage != stageScores {
		t.Fatalf("stage after Tab = %v, want scoreboard", m.stage)
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.stage != stageMenu {
		t.Errorf("stage after Esc = %v, want menu", m.stage)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig, "tester", nil)
	next, cmd := m.Update(runeKey("q"))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}
