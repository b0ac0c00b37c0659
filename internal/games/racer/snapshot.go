package racer

// Snapshot is the complete simulation state, in plain values, used to
// compare runs for determinism.
type Snapshot struct {
	Tick     int
	Course   int
	Lateral  float64
	Speed    float64
	Distance float64
	TimeLeft float64
	LapStart int
	Laps     []int
	Score    int
	GameOver bool
	Paused   bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Course:   g.course,
		Lateral:  g.player.Lateral,
		Speed:    g.player.Speed,
		Distance: g.player.Distance,
		TimeLeft: g.timeLeft,
		LapStart: g.lapStart,
		Laps:     append([]int(nil), g.laps...),
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
