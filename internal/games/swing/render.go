package swing

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Visual characters for rendering
const (
	SurfaceChar = '▀'
	GroundChar  = '█'
	AnchorChar  = '┬'
	HeadChar    = 'o'
	BodyChar    = 'Å'
	WaterChar   = '~'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Screen too small (min %dx%d)", MinScreenW, MinScreenH))
		return
	}

	g.drawGround(dst)
	for i := g.live; i < len(g.course.Pits); i++ {
		p := &g.course.Pits[i]
		if p.Anchor.X-p.Length > g.camX+float64(dst.Width()) {
			break
		}
		g.drawRope(dst, p)
	}
	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		dst.DrawDialog("PAUSED", "Press P to resume")
	}
	if g.gameOver {
		dst.DrawDialog("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// screenX converts a world x to a screen column.
func (g *Game) screenX(x float64) int {
	return int(math.Floor(x - math.Floor(g.camX)))
}

func (g *Game) drawGround(dst *core.Screen) {
	top := int(g.surface)
	for sx := 0; sx < dst.Width(); sx++ {
		// Sample the middle of the column.
		wx := math.Floor(g.camX) + float64(sx) + 0.5
		if _, pit := g.course.PitAt(wx); pit {
			dst.SetColored(sx, dst.Height()-1, WaterChar, core.ColorBlue)
			continue
		}
		dst.SetColored(sx, top, SurfaceChar, core.ColorGreen)
		for y := top + 1; y < dst.Height(); y++ {
			dst.SetColored(sx, y, GroundChar, core.ColorOrange)
		}
	}
}

// drawRope plots the rope from its anchor to its tip.
func (g *Game) drawRope(dst *core.Screen, p *Pit) {
	tip := p.Tip()
	ax, ay := g.screenX(p.Anchor.X), int(math.Floor(p.Anchor.Y))
	dst.SetColored(ax, ay, AnchorChar, core.ColorYellow)

	d := r2.Sub(tip, p.Anchor)
	ch := ropeChar(d)
	steps := int(math.Ceil(max(math.Abs(d.X), math.Abs(d.Y))))
	for i := 1; i <= steps; i++ {
		pt := r2.Add(p.Anchor, r2.Scale(float64(i)/float64(steps), d))
		dst.SetColored(g.screenX(pt.X), int(math.Floor(pt.Y)), ch, core.ColorYellow)
	}
}

// ropeChar picks a line character for a rope with direction d.
func ropeChar(d r2.Vec) rune {
	switch {
	case math.Abs(d.X) < math.Abs(d.Y)/2:
		return '│'
	case math.Abs(d.Y) < math.Abs(d.X)/2:
		return '─'
	case d.X*d.Y > 0:
		return '╲'
	default:
		return '╱'
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	x := g.screenX(g.pos.X)
	y := int(math.Floor(g.pos.Y))
	color := core.ColorBrightCyan
	if g.mode == ModeRope {
		color = core.ColorBrightYellow
	}
	dst.SetColored(x, y-2, HeadChar, color)
	dst.SetColored(x, y-1, BodyChar, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf("SCORE %d  PITS %d  DIST %dm", g.score, g.crossed, int(g.pos.X))
	dst.DrawText(1, 0, hud)

	lives := strings.Repeat("♥", g.lives)
	dst.DrawTextColored(dst.Width()-len([]rune(lives))-1, 0, lives, core.ColorRed)
}
