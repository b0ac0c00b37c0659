package swing

// Snapshot is the complete simulation state, in plain values, used to
// compare runs for determinism.
type Snapshot struct {
	Tick     int
	Mode     Mode
	X, Y     float64
	VX, VY   float64
	Rope     int
	Theta    float64
	Omega    float64
	CamX     float64
	NextPit  int
	Crossed  int
	Lives    int
	Score    int
	Pits     []Pit
	GameOver bool
	Paused   bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Mode:     g.mode,
		X:        g.pos.X,
		Y:        g.pos.Y,
		VX:       g.vel.X,
		VY:       g.vel.Y,
		Rope:     g.rope,
		Theta:    g.theta,
		Omega:    g.omega,
		CamX:     g.camX,
		NextPit:  g.nextPit,
		Crossed:  g.crossed,
		Lives:    g.lives,
		Score:    g.score,
		Pits:     append([]Pit(nil), g.course.Pits...),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
