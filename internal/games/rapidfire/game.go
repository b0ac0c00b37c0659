// Package rapidfire implements a vertical shoot-'em-up.
// Bullets and enemies live in fixed-capacity arenas so a long run never
// allocates per shot.
package rapidfire

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// HUDRows is the number of rows reserved at the top for the status line.
const HUDRows = 1

// Minimum playable screen size.
const (
	MinScreenW = 20
	MinScreenH = 10
)

// MinSpawnInterval is the shortest gap between enemy spawns, in ticks.
const MinSpawnInterval = 8

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

// Game implements the shooter.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
	override   *config.ShooterConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	player  r2.Vec // top-left of the ship
	bullets *core.Arena[Bullet]
	enemies *core.Arena[Enemy]

	cooldown   int // ticks until the next shot
	spawnTimer int // ticks until the next enemy
	invuln     int // ticks of grace left after a hit
	lives      int
	score      int
	kills      int
	tick       int

	gameOver       bool
	paused         bool
	screenTooSmall bool
}

// New creates a new shooter instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rapidfire"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rapid Fire"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	if g.bullets == nil || g.bullets.Cap() != g.cfg.Bullets.Capacity {
		g.bullets = core.NewArena[Bullet](g.cfg.Bullets.Capacity)
	} else {
		g.bullets.Reset()
	}
	if g.enemies == nil || g.enemies.Cap() != g.cfg.Enemies.Capacity {
		g.enemies = core.NewArena[Enemy](g.cfg.Enemies.Capacity)
	} else {
		g.enemies.Reset()
	}

	g.player = r2.Vec{
		X: float64(runtime.ScreenW-g.cfg.Player.Width) / 2,
		Y: float64(runtime.ScreenH - g.cfg.Player.Height - 1),
	}
	g.cooldown = 0
	g.spawnTimer = g.cfg.Enemies.SpawnInterval
	g.invuln = 0
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.kills = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
}

func (g *Game) loadConfig() config.ShooterConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	return cfg
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

	g.movePlayer(in, dt)
	g.fire(in)
	g.spawnEnemy()
	g.moveBullets(dt)
	g.moveEnemies(dt)
	g.collide()

	if g.invuln > 0 {
		g.invuln--
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) movePlayer(in core.InputFrame, dt float64) {
	var dir r2.Vec
	if in.Has(core.ActionLeft) {
		dir.X--
	}
	if in.Has(core.ActionRight) {
		dir.X++
	}
	if in.Has(core.ActionUp) {
		dir.Y--
	}
	if in.Has(core.ActionDown) {
		dir.Y++
	}
	if dir == (r2.Vec{}) {
		return
	}

	// Diagonals are no faster than straight moves.
	dir = r2.Unit(dir)
	g.player = advance(g.player, r2.Scale(g.cfg.Player.Speed, dir), dt)

	g.clampPlayer()
}

// clampPlayer keeps the ship inside the playfield below the HUD.
func (g *Game) clampPlayer() {
	maxX := float64(g.runtime.ScreenW - g.cfg.Player.Width)
	maxY := float64(g.runtime.ScreenH - g.cfg.Player.Height)
	g.player.X = core.ClampF(g.player.X, 0, maxX)
	g.player.Y = core.ClampF(g.player.Y, HUDRows, maxY)
}

// Resize changes the playfield size and keeps the run going. The ship is
// pulled back inside; bullets and enemies left outside leave the field on
// the next step.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW, g.runtime.ScreenH = runtime.ScreenW, runtime.ScreenH
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.clampPlayer()
}

func (g *Game) fire(in core.InputFrame) {
	if g.cooldown > 0 {
		g.cooldown--
	}
	if g.cooldown > 0 || !(in.Has(core.ActionFire) || in.Has(core.ActionJump)) {
		return
	}

	g.bullets.Spawn(Bullet{
		Pos: r2.Vec{X: g.player.X + float64(g.cfg.Player.Width/2), Y: g.player.Y - 1},
		Vel: r2.Vec{Y: -g.cfg.Bullets.Speed},
	})
	g.cooldown = g.cfg.Player.FireCooldown
}

func (g *Game) spawnEnemy() {
	g.spawnTimer--
	if g.spawnTimer > 0 {
		return
	}
	g.spawnTimer = g.difficulty.Interval(g.cfg.Enemies.SpawnInterval, MinSpawnInterval, g.score, g.tick)

	speed := g.difficulty.Speed(g.cfg.Enemies.BaseSpeed, g.score, g.tick)
	x := g.rng.Intn(max(g.runtime.ScreenW-EnemyW, 1))
	sway := (g.rng.Float64()*2 - 1) * speed / 2

	g.enemies.Spawn(Enemy{
		Pos: r2.Vec{X: float64(x), Y: HUDRows},
		Vel: r2.Vec{X: sway, Y: speed},
	})
}

func (g *Game) moveBullets(dt float64) {
	h := float64(g.runtime.ScreenH)
	g.bullets.Each(func(id int, b *Bullet) {
		b.Pos = advance(b.Pos, b.Vel, dt)
		if b.Pos.Y < HUDRows || b.Pos.Y >= h {
			g.bullets.Release(id)
		}
	})
}

func (g *Game) moveEnemies(dt float64) {
	w, h := float64(g.runtime.ScreenW-EnemyW), float64(g.runtime.ScreenH)
	chance := g.cfg.Enemies.FireChance * dt

	g.enemies.Each(func(id int, e *Enemy) {
		e.Pos = advance(e.Pos, e.Vel, dt)

		// Bounce off the side walls.
		if e.Pos.X < 0 || e.Pos.X > w {
			e.Pos.X = core.ClampF(e.Pos.X, 0, w)
			e.Vel.X = -e.Vel.X
		}
		if e.Pos.Y >= h {
			g.enemies.Release(id)
			return
		}

		if g.rng.Float64() < chance {
			g.bullets.Spawn(Bullet{
				Pos:     r2.Vec{X: e.Pos.X + EnemyW/2, Y: e.Pos.Y + EnemyH},
				Vel:     r2.Vec{Y: g.cfg.Bullets.EnemySpeed},
				Hostile: true,
			})
		}
	})
}

func (g *Game) playerRect() core.Rect {
	return cellRect(g.player, g.cfg.Player.Width, g.cfg.Player.Height)
}

func (g *Game) collide() {
	ship := g.playerRect()

	g.bullets.Each(func(bid int, b *Bullet) {
		br := b.rect()
		if b.Hostile {
			if br.Intersects(ship) && g.hit() {
				g.bullets.Release(bid)
			}
			return
		}
		g.enemies.Each(func(eid int, e *Enemy) {
			if !g.bullets.Alive(bid) || !br.Intersects(e.rect()) {
				return
			}
			g.bullets.Release(bid)
			g.enemies.Release(eid)
			g.score += g.cfg.Gameplay.KillPoints
			g.kills++
		})
	})

	g.enemies.Each(func(id int, e *Enemy) {
		if e.rect().Intersects(ship) && g.hit() {
			g.enemies.Release(id)
		}
	})
}

// hit costs the player a life unless they are still in their grace period.
// It reports whether the hit landed.
func (g *Game) hit() bool {
	if g.invuln > 0 || g.gameOver {
		return false
	}
	g.lives--
	g.invuln = g.cfg.Gameplay.Invulnerable
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
	}
	return true
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
	registry.Register("rapidfire", func() registry.Game {
		return New()
	})
}
