// Package racer implements a pseudo-3D arcade racer in the style of Out Run.
// The road itself comes from package road; this package adds courses, laps,
// the countdown clock and the terminal rendering.
package racer

import (
	"fmt"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/road"
)

// HUDRows is the number of rows reserved at the top for the status line.
const HUDRows = 1

// Minimum playable screen size.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the racer.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.RacerConfig
	override *config.RacerConfig // tests pin the config here
	params   road.Params
	course   int

	track    *road.Track
	renderer *road.Renderer
	quads    road.QuadCollector

	player   road.Player
	input    road.Input // last tick's controls, for the brake lights
	tick     int
	timeLeft float64 // seconds
	lapStart int     // tick at which the current lap began
	laps     []int   // completed lap times in ticks
	score    int
	horizonX float64 // skyline scroll, follows the accumulated curvature

	gameOver       bool
	paused         bool
	screenTooSmall bool
}

// New creates a racer on the first course.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Out Run"
}

// Courses returns the selectable course names.
func (g *Game) Courses() []string {
	return CourseNames()
}

// SetCourse picks the course used by the next Reset.
func (g *Game) SetCourse(index int) error {
	if index < 0 || index >= len(Courses) {
		return fmt.Errorf("racer: course %d out of range [0, %d)", index, len(Courses))
	}
	g.course = index
	return nil
}

// CourseName returns the name of the selected course, or "Custom" when the
// configuration supplies its own bends.
func (g *Game) CourseName() string {
	if len(g.cfg.Track.Bends) > 0 {
		return "Custom"
	}
	return Courses[g.course].Name
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	if err := g.build(); err != nil {
		// Validation passed but the road still refused the parameters.
		g.cfg = config.DefaultRacerConfig()
		if err := g.build(); err != nil {
			panic(fmt.Sprintf("racer: default config does not build: %v", err))
		}
	}

	g.player = road.Player{}
	g.input = road.Input{}
	g.tick = 0
	g.timeLeft = g.cfg.Gameplay.TimeLimit
	g.lapStart = 0
	g.laps = nil
	g.score = 0
	g.horizonX = 0
	g.gameOver = false
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
}

func (g *Game) loadConfig() config.RacerConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.LoadRacer(configPath)
	if err != nil {
		cfg = config.DefaultRacerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRacerPreset(&cfg, difficultyPreset)
	}
	if cfg.Validate() != nil {
		cfg = config.DefaultRacerConfig()
	}
	return cfg
}

// build creates the track, projector and renderer for the current config and screen.
func (g *Game) build() error {
	plan := g.cfg.Track.Plan()
	if plan == nil {
		plan = Courses[g.course].Plan(g.cfg.Track.Segments)
	}
	track, err := road.Generate(g.cfg.Track.Segments, g.cfg.Track.SegmentLength, plan)
	if err != nil {
		return err
	}

	params := g.cfg.Params()
	renderer, err := g.newRenderer(track, params)
	if err != nil {
		return err
	}

	g.params = params
	g.track = track
	g.renderer = renderer
	return nil
}

// newRenderer projects track onto the current screen.
func (g *Game) newRenderer(track *road.Track, params road.Params) (*road.Renderer, error) {
	viewW, viewH := max(g.runtime.ScreenW, 1), max(g.runtime.ScreenH-HUDRows, 1)
	proj, err := road.NewProjectorFOV(g.cfg.Camera.FOV, viewW, viewH)
	if err != nil {
		return nil, err
	}
	return road.NewRenderer(track, proj, road.RendererOptions{
		LookAhead:     g.cfg.Track.LookAhead,
		RoadHalfWidth: params.RoadHalfWidth,
		CurveOffset:   g.cfg.Track.CurveOffset,
	})
}

// Resize fits the projection to a new screen size and keeps the run going.
// Tick rate and seed are unchanged.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW, g.runtime.ScreenH = runtime.ScreenW, runtime.ScreenH
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	if renderer, err := g.newRenderer(g.track, g.params); err == nil {
		g.renderer = renderer
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := g.runtime.DT()

	g.input = road.Input{
		Left:       in.Has(core.ActionLeft),
		Right:      in.Has(core.ActionRight),
		Accelerate: in.Has(core.ActionUp),
		Brake:      in.Has(core.ActionDown),
	}

	lapLen := g.track.Length()
	prevLap := int(g.player.Distance / lapLen)
	curve := g.track.SegmentAt(g.player.Distance).Curve

	g.player = road.Step(g.player, g.track, g.input, g.params, dt)
	g.horizonX -= curve * g.player.Speed * dt * g.cfg.Track.CurveOffset / g.cfg.Track.SegmentLength

	for lap := int(g.player.Distance / lapLen); prevLap < lap; prevLap++ {
		g.laps = append(g.laps, g.tick-g.lapStart)
		g.lapStart = g.tick
		g.timeLeft += g.cfg.Gameplay.LapBonus
	}

	g.score = int(g.player.Distance / g.cfg.Track.SegmentLength)

	g.timeLeft -= dt
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// LapTimes returns the completed laps of the current run.
func (g *Game) LapTimes() []time.Duration {
	out := make([]time.Duration, len(g.laps))
	for i, ticks := range g.laps {
		out[i] = g.runtime.TickDuration(ticks)
	}
	return out
}

// bestLap returns the fastest completed lap in ticks, or 0 if none.
func (g *Game) bestLap() int {
	best := 0
	for _, t := range g.laps {
		if best == 0 || t < best {
			best = t
		}
	}
	return best
}

// OffTrack reports whether the car is currently on the grass.
func (g *Game) OffTrack() bool {
	return g.params.OffTrack(g.player.Lateral)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

var (
	_ registry.LapRecorder    = (*Game)(nil)
	_ registry.CourseSelector = (*Game)(nil)
)

func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}
