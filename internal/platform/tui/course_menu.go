package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// CourseModel lets users pick a course for games that offer several.
type CourseModel struct {
	title     string
	courses   []string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    int // -1 while choosing
	quitting  bool
	back      bool
}

// NewCourseModel creates a course picker for the given course names.
func NewCourseModel(title string, courses []string, width, height int) CourseModel {
	return CourseModel{
		title:     title,
		courses:   courses,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		chosen:    -1,
	}
}

// Init initializes the model.
func (m CourseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CourseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m CourseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.courses)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.courses) > 0 {
			m.chosen = m.cursor
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the course list.
func (m CourseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select course:", m.width))
	b.WriteString("\n\n")

	for i, name := range m.courses {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%d. %s", cursor, i+1, name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  B/Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Chosen returns the chosen course index, or -1 if none was chosen.
func (m CourseModel) Chosen() int {
	return m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m CourseModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CourseModel) WantsBack() bool {
	return m.back
}

// RunCourseSelector shows the course picker for a game and applies the choice.
// It returns false if the user backed out or quit.
func RunCourseSelector(game registry.Game, cfg core.RuntimeConfig) (bool, error) {
	sel, ok := game.(registry.CourseSelector)
	if !ok {
		return true, nil
	}

	p := tea.NewProgram(
		NewCourseModel(game.Title(), sel.Courses(), cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(CourseModel)
	if !ok || m.Chosen() < 0 {
		return false, nil
	}
	if err := sel.SetCourse(m.Chosen()); err != nil {
		return false, err
	}
	return true, nil
}
