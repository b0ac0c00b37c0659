package racer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/road"
)

// Palette, indexed by road.Tone.
var (
	roadCells  = [2]core.Cell{{Rune: '█', Color: core.ColorGray}, {Rune: '▓', Color: core.ColorDarkGray}}
	grassCells = [2]core.Cell{{Rune: '░', Color: core.ColorGreen}, {Rune: '▒', Color: core.ColorBrightGreen}}
	kerbCells  = [2]core.Cell{{Rune: '▌', Color: core.ColorBrightRed}, {Rune: '▌', Color: core.ColorBrightWhite}}
)

const skyline = "   ▁▂▃▂▁      ▂▃▅▆▅▃▂        ▁▂▂▁    ▃▄▅▄▃▂▁       ▁▂▃▄▃▂▁  "

// screenSink rasterises road quads into a core.Screen below a HUD.
// Quads arrive nearest first, so they are buffered and painted far to near.
type screenSink struct {
	dst     *core.Screen
	offsetY int
	pts     []core.Point
}

func (s *screenSink) paint(quads []road.Quad) {
	w := s.dst.Width()
	for i := len(quads) - 1; i >= 0; i-- {
		q := quads[i]
		top, bottom := q.Top()+s.offsetY, q.Bottom()+s.offsetY
		s.dst.FillRect(core.NewRect(0, top, w, bottom-top+1), grassCells[q.Tone])

		s.pts = s.pts[:0]
		for _, p := range q.Points {
			s.pts = append(s.pts, core.Point{X: p.X, Y: p.Y + s.offsetY})
		}
		s.dst.FillPolygon(s.pts, roadCells[q.Tone])

		// Kerbs along both edges of the strip.
		s.dst.FillPolygon([]core.Point{s.pts[0], s.pts[3]}, kerbCells[q.Tone])
		s.dst.FillPolygon([]core.Point{s.pts[1], s.pts[2]}, kerbCells[q.Tone])
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Screen too small (min %dx%d)", MinScreenW, MinScreenH))
		return
	}

	viewH := dst.Height() - HUDRows
	horizon := HUDRows + viewH/2

	g.drawSky(dst, horizon)
	dst.FillRect(core.NewRect(0, horizon, dst.Width(), dst.Height()-horizon), grassCells[0])

	g.quads.Reset()
	g.renderer.Render(road.CameraFor(g.player, g.cfg.Camera.Height), &g.quads)
	sink := screenSink{dst: dst, offsetY: HUDRows}
	sink.paint(g.quads.Quads)

	g.drawCar(dst)
	g.drawHUD(dst)

	if g.OffTrack() && g.tick/15%2 == 0 {
		dst.DrawTextColored((dst.Width()-8)/2, horizon+1, "OFF ROAD", core.ColorBrightYellow)
	}
	if g.paused {
		dst.DrawDialog("PAUSED", "Press P to resume")
	}
	if g.gameOver {
		dst.DrawDialog("TIME UP", fmt.Sprintf("Score: %d  Laps: %d  |  Press R to restart", g.score, len(g.laps)))
	}
}

// drawSky draws the scrolling skyline just above the horizon.
func (g *Game) drawSky(dst *core.Screen, horizon int) {
	line := []rune(skyline)
	shift := int(math.Floor(g.horizonX))
	for x := 0; x < dst.Width(); x++ {
		i := ((x-shift)%len(line) + len(line)) % len(line)
		dst.SetColored(x, horizon-1, line[i], core.ColorBlue)
	}
}

var carSprite = []string{
	" ▄▆██▆▄ ",
	"▐█▀▀▀▀█▌",
	"▀▀    ▀▀",
}

// drawCar draws the player's car centred at the bottom of the view.
// The camera follows the car laterally, so it never moves across the screen.
func (g *Game) drawCar(dst *core.Screen) {
	w := len([]rune(carSprite[0]))
	x0 := (dst.Width() - w) / 2
	y0 := dst.Height() - len(carSprite) - 1

	// Lean into steering.
	switch {
	case g.input.Left && !g.input.Right:
		x0--
	case g.input.Right && !g.input.Left:
		x0++
	}

	for dy, row := range carSprite {
		for dx, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			c := core.ColorRed
			if dy == 1 && g.input.Brake && (dx == 0 || dx == w-1) {
				c = core.ColorBrightRed
			}
			dst.SetColored(x0+dx, y0+dy, r, c)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.FillRect(core.NewRect(0, 0, dst.Width(), HUDRows), core.Cell{Rune: ' '})

	kmh := 0
	if g.params.MaxSpeed > 0 {
		kmh = int(math.Round(g.player.Speed / g.params.MaxSpeed * 290))
	}

	best := "--:--.-"
	if b := g.bestLap(); b > 0 {
		best = formatLap(g.runtime.TickDuration(b).Seconds())
	}

	parts := []string{
		fmt.Sprintf("SPEED %3d km/h", kmh),
		fmt.Sprintf("TIME %2d", int(math.Ceil(g.timeLeft))),
		fmt.Sprintf("LAP %d", len(g.laps)+1),
		fmt.Sprintf("BEST %s", best),
		fmt.Sprintf("SCORE %d", g.score),
	}
	dst.DrawText(1, 0, strings.Join(parts, "  "))

	if g.timeLeft < 10 {
		dst.DrawTextColored(1+len(parts[0])+2, 0, parts[1], core.ColorBrightRed)
	}
}

// formatLap renders seconds as m:ss.t.
func formatLap(sec float64) string {
	tenths := int(math.Round(sec * 10))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}
