package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

const (
	maxScores = 100
	maxLaps   = 20

	// sideBySideWidth is the narrowest screen that fits both tables in a row.
	sideBySideWidth = 84
)

// allCourses labels the course filter that matches every course.
const allCourses = "All courses"

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Course   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Course, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Course, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev game"),
		),
		Course: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "course"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// boardGame is a game listed on the scoreboard. Courses is nil for games
// without lap times; otherwise it starts with "" for every course.
type boardGame struct {
	info    registry.GameInfo
	courses []string
}

func (g boardGame) lapTimed() bool {
	return g.courses != nil
}

// listBoardGames collects the registered games and the course filters of
// those that record laps.
func listBoardGames() []boardGame {
	infos := registry.List()
	games := make([]boardGame, 0, len(infos))
	for _, info := range infos {
		bg := boardGame{info: info}
		if game, err := registry.Create(info.ID); err == nil {
			if _, ok := game.(registry.LapRecorder); ok {
				bg.courses = []string{""}
				if sel, ok := game.(registry.CourseSelector); ok {
					bg.courses = append(bg.courses, sel.Courses()...)
				}
			}
		}
		games = append(games, bg)
	}
	return games
}

// ScoreboardModel shows the top scores of one game and, for games that
// record laps, its fastest laps on one course.
type ScoreboardModel struct {
	games        []boardGame
	gameCursor   int
	courseCursor int
	store        *storage.Store
	scores       []storage.ScoreEntry
	laps         []storage.LapEntry
	lapSummary   string
	table        table.Model
	lapTable     table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  listBoardGames(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.buildTables()
	m.load()
	return m
}

// tableHeight is the row budget of each table for the current layout.
func (m ScoreboardModel) tableHeight() int {
	rows := m.height - 10
	if m.width < sideBySideWidth && m.current().lapTimed() {
		rows = rows/2 - 2
	}
	return max(rows, 3)
}

func (m *ScoreboardModel) buildTables() {
	rows := m.tableHeight()
	m.table = newBoardTable([]table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	}, rows, true)
	m.lapTable = newBoardTable([]table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Course", Width: 12},
		{Title: "Lap", Width: 4},
	}, rows, false)
}

func newBoardTable(columns []table.Column, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	if !focused {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)
	return t
}

func (m ScoreboardModel) current() boardGame {
	if len(m.games) == 0 {
		return boardGame{}
	}
	return m.games[m.gameCursor]
}

// course is the selected course filter; "" matches every course.
func (m ScoreboardModel) course() string {
	g := m.current()
	if !g.lapTimed() {
		return ""
	}
	return g.courses[m.courseCursor]
}

// load reads scores and laps for the selected game and course.
func (m *ScoreboardModel) load() {
	m.scores, m.laps, m.lapSummary = nil, nil, ""

	g := m.current()
	if m.store != nil && g.info.ID != "" {
		if scores, err := m.store.TopScores(g.info.ID, maxScores); err == nil {
			m.scores = scores
		}
		if g.lapTimed() {
			if laps, err := m.store.BestLaps(g.info.ID, m.course(), maxLaps); err == nil {
				m.laps = laps
			}
			if sum, err := m.store.LapStats(g.info.ID, m.course()); err == nil {
				m.lapSummary = lapSummaryLine(sum)
			}
		}
	}
	m.updateRows()
}

// lapSummaryLine describes recorded laps on one line.
func lapSummaryLine(sum storage.LapSummary) string {
	if sum.Count == 0 {
		return "No laps recorded yet."
	}
	return fmt.Sprintf("Laps: %d  |  Best %s  |  Mean %s ± %.1fs",
		sum.Count, FormatLapTime(sum.Best), FormatLapTime(sum.Mean), sum.StdDev.Seconds())
}

// FormatLapTime renders a lap time as m:ss.t.
func FormatLapTime(d time.Duration) string {
	tenths := d.Round(100*time.Millisecond).Milliseconds() / 100
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

func (m *ScoreboardModel) updateRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()

	lapRows := make([]table.Row, len(m.laps))
	for i, l := range m.laps {
		lapRows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			FormatLapTime(l.Time),
			l.Course,
			fmt.Sprintf("%d", l.Lap),
		}
	}
	m.lapTable.SetRows(lapRows)
	m.lapTable.GotoTop()
}

// selectGame moves the game cursor by step and resets the course filter.
func (m *ScoreboardModel) selectGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + step + len(m.games)) % len(m.games)
	m.courseCursor = 0
	m.buildTables()
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.selectGame(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.selectGame(-1)
			return m, nil

		case key.Matches(msg, m.keys.Course):
			if g := m.current(); g.lapTimed() {
				m.courseCursor = (m.courseCursor + 1) % len(g.courses)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.buildTables()
		m.updateRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	g := m.current()
	title := "HIGH SCORES"
	if g.info.ID != "" {
		title = fmt.Sprintf("< %s >", strings.ToUpper(g.info.Title))
	}
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	panels := []string{m.panel("HIGH SCORES", m.scoresContent())}
	if g.lapTimed() {
		label := m.course()
		if label == "" {
			label = allCourses
		}
		panels = append(panels, m.panel("BEST LAPS - "+label, m.lapsContent()))
	}

	var body string
	if m.width >= sideBySideWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, joinPanels(panels, "  ")...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center, panels...)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")

	if len(m.laps) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(m.lapSummary, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// panel frames content under a heading.
func (m ScoreboardModel) panel(heading, content string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	head := lipgloss.NewStyle().Bold(true).Render(heading)
	return style.Render(head + "\n" + content)
}

func joinPanels(panels []string, gap string) []string {
	out := make([]string, 0, 2*len(panels)-1)
	for i, p := range panels {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, p)
	}
	return out
}

func emptyNote(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 2).
		Render(text)
}

func (m ScoreboardModel) scoresContent() string {
	if len(m.scores) == 0 {
		return emptyNote("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) lapsContent() string {
	if len(m.laps) == 0 {
		return emptyNote("No laps recorded yet.")
	}
	return m.lapTable.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
