package rapidfire

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Visual characters for rendering
const (
	BulletChar      = '|'
	EnemyBulletChar = '•'
	StarChar        = '.'
)

var (
	shipSprite  = []string{" ▲ ", "◢█◣"}
	enemySprite = "╲▼╱"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Screen too small (min %dx%d)", MinScreenW, MinScreenH))
		return
	}

	g.drawStars(dst)

	g.enemies.Each(func(_ int, e *Enemy) {
		r := e.rect()
		dst.DrawTextColored(r.X, r.Y, enemySprite, core.ColorBrightMagenta)
	})

	g.bullets.Each(func(_ int, b *Bullet) {
		r := b.rect()
		if b.Hostile {
			dst.SetColored(r.X, r.Y, EnemyBulletChar, core.ColorBrightRed)
		} else {
			dst.SetColored(r.X, r.Y, BulletChar, core.ColorBrightYellow)
		}
	})

	// Blink while invulnerable.
	if g.invuln == 0 || g.tick/4%2 == 0 {
		r := g.playerRect()
		for dy, row := range shipSprite {
			for dx, ch := range []rune(row) {
				if ch != ' ' {
					dst.SetColored(r.X+dx, r.Y+dy, ch, core.ColorBrightCyan)
				}
			}
		}
	}

	g.drawHUD(dst)

	if g.paused {
		dst.DrawDialog("PAUSED", "Press P to resume")
	}
	if g.gameOver {
		dst.DrawDialog("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawStars scrolls a sparse star field derived from the tick, not the RNG,
// so rendering never perturbs the simulation.
func (g *Game) drawStars(dst *core.Screen) {
	for y := HUDRows; y < dst.Height(); y++ {
		row := y - g.tick/6
		for x := 0; x < dst.Width(); x++ {
			if (x*7+row*13)%53 == 0 {
				dst.SetColored(x, y, StarChar, core.ColorDarkGray)
			}
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	level := int(math.Round(g.difficulty.Level(g.score, g.tick) * 100))
	hud := fmt.Sprintf("SCORE %d  KILLS %d  LEVEL %d%%", g.score, g.kills, level)
	dst.DrawText(1, 0, hud)

	lives := strings.Repeat("♥", g.lives)
	dst.DrawTextColored(dst.Width()-len([]rune(lives))-1, 0, lives, core.ColorRed)
}
