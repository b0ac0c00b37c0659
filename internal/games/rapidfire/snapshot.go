package rapidfire

// Snapshot is the complete simulation state, in plain values, used to
// compare runs for determinism.
type Snapshot struct {
	Tick       int
	Score      int
	Kills      int
	Lives      int
	Invuln     int
	Cooldown   int
	SpawnTimer int
	PlayerX    float64
	PlayerY    float64
	Bullets    []Bullet
	Enemies    []Enemy
	GameOver   bool
	Paused     bool
}

// Snapshot returns the current game state as a Snapshot. Entities are
// listed in slot order.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Kills:      g.kills,
		Lives:      g.lives,
		Invuln:     g.invuln,
		Cooldown:   g.cooldown,
		SpawnTimer: g.spawnTimer,
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
	g.bullets.Each(func(_ int, b *Bullet) {
		s.Bullets = append(s.Bullets, *b)
	})
	g.enemies.Each(func(_ int, e *Enemy) {
		s.Enemies = append(s.Enemies, *e)
	})
	return s
}
