package rapidfire

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Enemy sprite size in cells.
const (
	EnemyW = 3
	EnemyH = 1
)

// Bullet is a single projectile. Hostile bullets are fired by enemies.
type Bullet struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Hostile bool
}

// Enemy is a descending enemy ship.
type Enemy struct {
	Pos r2.Vec
	Vel r2.Vec
}

// cellRect converts a float position into the grid rectangle it occupies.
func cellRect(pos r2.Vec, w, h int) core.Rect {
	return core.NewRect(int(math.Floor(pos.X)), int(math.Floor(pos.Y)), w, h)
}

func (b *Bullet) rect() core.Rect {
	return cellRect(b.Pos, 1, 1)
}

func (e *Enemy) rect() core.Rect {
	return cellRect(e.Pos, EnemyW, EnemyH)
}

// advance moves pos by vel over dt seconds.
func advance(pos, vel r2.Vec, dt float64) r2.Vec {
	return r2.Add(pos, r2.Scale(dt, vel))
}
