// Package swing implements a rope-swing platformer: run along the ground,
// jump, and cross pits by grabbing the ropes that swing above them.
package swing

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// HUDRows is the number of rows reserved at the top for the status line.
const HUDRows = 1

// GroundRows is the depth of ground drawn below the surface.
const GroundRows = 3

// Minimum playable screen size.
const (
	MinScreenW = 30
	MinScreenH = 14
)

// pitDepth is how far below the surface a fall becomes fatal.
const pitDepth = 2

// trimBatch is how many pits must be behind the camera before they are dropped.
const trimBatch = 16

// Mode is what the player is currently doing.
type Mode int

const (
	ModeGround Mode = iota
	ModeAir
	ModeRope
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the rope swing game.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.SwingConfig
	override *config.SwingConfig

	course  *Course
	surface float64
	camX    float64 // world x of the left screen edge; never decreases
	live    int     // first pit still reachable from the camera

	pos  r2.Vec // feet
	vel  r2.Vec
	mode Mode

	// Pendulum state while on a rope.
	rope   int
	radius float64
	theta  float64
	omega  float64

	nextPit int // first pit not yet scored
	crossed int // pits crossed this run
	lives   int
	score   int
	tick    int

	gameOver       bool
	paused         bool
	screenTooSmall bool
}

// New creates a new swing game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "swing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rope Swing"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.surface = float64(runtime.ScreenH - GroundRows)
	g.course = NewCourse(runtime.Seed, g.cfg.Course, g.surface)
	g.camX = 0
	g.live = 0
	g.course.Extend(g.viewEnd())

	g.pos = r2.Vec{X: 2, Y: g.surface}
	g.vel = r2.Vec{}
	g.mode = ModeGround
	g.rope = -1
	g.radius, g.theta, g.omega = 0, 0, 0

	g.nextPit = 0
	g.crossed = 0
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
}

func (g *Game) loadConfig() config.SwingConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.LoadSwing(configPath)
	if err != nil {
		cfg = config.DefaultSwingConfig()
	}
	if difficultyPreset != "" {
		config.ApplySwingPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Resize changes the screen size and keeps the run going. The ground
// follows the bottom of the screen, so everything shifts with it.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW, g.runtime.ScreenH = runtime.ScreenW, runtime.ScreenH
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	surface := float64(runtime.ScreenH - GroundRows)
	shift := r2.Vec{Y: surface - g.surface}
	g.surface = surface
	g.course.surface = surface
	g.pos = r2.Add(g.pos, shift)
	for i := range g.course.Pits {
		g.course.Pits[i].Anchor = r2.Add(g.course.Pits[i].Anchor, shift)
	}
}

// viewEnd is how far ahead the course must exist.
func (g *Game) viewEnd() float64 {
	return g.camX + 2*float64(g.runtime.ScreenW)
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

	g.course.Extend(g.viewEnd())
	g.swingFreeRopes(dt)

	switch g.mode {
	case ModeGround:
		g.stepGround(in, dt)
	case ModeAir:
		g.stepAir(in, dt)
	case ModeRope:
		g.stepRope(in, dt)
	}

	if g.mode == ModeGround {
		for g.nextPit < len(g.course.Pits) && g.pos.X >= g.course.Pits[g.nextPit].X1 {
			g.award()
		}
	}

	g.camX = max(g.camX, g.pos.X-float64(g.runtime.ScreenW)/3)
	for g.live < len(g.course.Pits) && g.course.Pits[g.live].X1 < g.camX {
		g.live++
	}
	g.trim()

	return core.StepResult{State: g.State()}
}

func (g *Game) award() {
	g.score += g.cfg.Gameplay.PitPoints
	g.crossed++
	g.nextPit++
}

// trim drops pits that are behind the camera, already scored and not held,
// so the course stays bounded on long runs.
func (g *Game) trim() {
	n := min(g.live, g.nextPit)
	if g.mode == ModeRope {
		n = min(n, g.rope)
	}
	if n < trimBatch {
		return
	}

	g.course.Pits = append(g.course.Pits[:0], g.course.Pits[n:]...)
	g.live -= n
	g.nextPit -= n
	if g.mode == ModeRope {
		g.rope -= n
	}
}

func (g *Game) swingFreeRopes(dt float64) {
	for i := g.live; i < len(g.course.Pits); i++ {
		if g.mode == ModeRope && i == g.rope {
			continue
		}
		swingRope(&g.course.Pits[i], g.cfg.Physics.Gravity, dt)
	}
}

func (g *Game) stepGround(in core.InputFrame, dt float64) {
	if in.Has(core.ActionUp) && g.grab() {
		return
	}

	g.vel = r2.Vec{}
	if in.Has(core.ActionLeft) {
		g.vel.X -= g.cfg.Physics.RunSpeed
	}
	if in.Has(core.ActionRight) {
		g.vel.X += g.cfg.Physics.RunSpeed
	}
	if in.Has(core.ActionJump) {
		g.vel.Y = -g.cfg.Physics.JumpImpulse
		g.mode = ModeAir
		return
	}

	g.pos.X = max(g.pos.X+g.vel.X*dt, g.camX)
	if _, over := g.course.PitAt(g.pos.X); over {
		// Walked off the edge.
		g.mode = ModeAir
	}
}

func (g *Game) stepAir(in core.InputFrame, dt float64) {
	if in.Has(core.ActionUp) && g.grab() {
		return
	}

	prev := g.pos
	g.vel.Y += g.cfg.Physics.Gravity * dt
	g.pos = r2.Add(g.pos, r2.Scale(dt, g.vel))
	g.pos.X = max(g.pos.X, g.camX)

	if g.pos.Y < g.surface {
		return
	}

	if prev.Y <= g.surface {
		if _, over := g.course.PitAt(g.pos.X); !over {
			g.land()
			return
		}
	} else if i, ok := g.course.PitAt(prev.X); ok {
		// Already below the surface: the pit walls hold the player in.
		p := &g.course.Pits[i]
		if g.pos.X <= p.X0 || g.pos.X >= p.X1 {
			g.pos.X = math.Nextafter(core.ClampF(g.pos.X, p.X0, p.X1), (p.X0+p.X1)/2)
			g.vel.X = 0
		}
	}

	if g.pos.Y > g.surface+pitDepth {
		g.fall()
	}
}

func (g *Game) land() {
	g.pos.Y = g.surface
	g.vel = r2.Vec{}
	g.mode = ModeGround
}

// fall costs a life and puts the player back on solid ground beside the pit.
func (g *Game) fall() {
	edge := g.camX
	if i, ok := g.course.PitAt(g.pos.X); ok {
		edge = g.respawnPoint(i)
	}

	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
	}
	g.pos = r2.Vec{X: edge, Y: g.surface}
	g.vel = r2.Vec{}
	g.mode = ModeGround
}

// respawnPoint returns the ground beside pit i: the near edge while it is on
// screen, otherwise just past the far edge. A pit left behind that way is
// forfeited; pits crossed before it still score.
func (g *Game) respawnPoint(i int) float64 {
	p := g.course.Pits[i]
	if near := p.X0 - 1; near >= g.camX {
		return near
	}

	far := p.X1 + 1
	if i+1 < len(g.course.Pits) {
		far = min(far, (p.X1+g.course.Pits[i+1].X0)/2)
	}
	for g.nextPit < i {
		g.award()
	}
	g.nextPit = max(g.nextPit, i+1)
	return far
}

// grab attaches the player to a rope within reach. It reports whether a rope
// was caught.
func (g *Game) grab() bool {
	reach := g.cfg.Physics.GrabRadius
	for i := g.live; i < len(g.course.Pits); i++ {
		p := &g.course.Pits[i]
		if p.Anchor.X-p.Length > g.pos.X+reach {
			break
		}
		if segmentDistance(g.pos, p.Anchor, p.Tip()) > reach {
			continue
		}

		d := r2.Sub(g.pos, p.Anchor)
		g.radius = core.ClampF(r2.Norm(d), 1, p.Length)
		g.theta = math.Atan2(d.X, d.Y)
		// Keep only the tangential part of the velocity.
		g.omega = r2.Dot(g.vel, tangent(g.theta)) / g.radius
		g.rope = i
		g.mode = ModeRope
		g.syncRope()
		return true
	}
	return false
}

func (g *Game) stepRope(in core.InputFrame, dt float64) {
	if in.Has(core.ActionDown) || in.Has(core.ActionJump) {
		g.release()
		return
	}

	accel := -(g.cfg.Physics.Gravity / g.radius) * math.Sin(g.theta)
	if in.Has(core.ActionRight) {
		accel += g.cfg.Physics.Pump
	}
	if in.Has(core.ActionLeft) {
		accel -= g.cfg.Physics.Pump
	}

	g.omega += accel * dt
	g.omega *= max(0, 1-g.cfg.Physics.Damping*dt)
	g.theta += g.omega * dt
	g.syncRope()
}

// syncRope moves the player and the held rope to the pendulum angle.
func (g *Game) syncRope() {
	p := &g.course.Pits[g.rope]
	p.Theta = g.theta
	p.Omega = g.omega
	g.pos = ropePoint(p.Anchor, g.radius, g.theta)
}

// release lets go of the rope, keeping the tangential velocity.
func (g *Game) release() {
	g.vel = r2.Scale(g.radius*g.omega, tangent(g.theta))
	g.mode = ModeAir
	g.rope = -1
}

// tangent is the unit direction of motion for increasing theta.
func tangent(theta float64) r2.Vec {
	return r2.Vec{X: math.Cos(theta), Y: -math.Sin(theta)}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("swing", func() registry.Game {
		return New()
	})
}
