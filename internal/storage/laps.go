package storage

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// LapEntry is one recorded lap.
type LapEntry struct {
	ID        int64
	ScoreID   int64
	GameID    string
	Course    string
	Lap       int // 1-based lap number within its run
	Time      time.Duration
	CreatedAt time.Time
}

// LapSummary aggregates lap times for a game and course.
type LapSummary struct {
	Count  int
	Best   time.Duration
	Mean   time.Duration
	StdDev time.Duration // sample standard deviation; zero for fewer than two laps
}

// SaveLaps records the laps of one run, linked to the score row scoreID.
// Laps are stored atomically; an empty slice is a no-op.
func (s *Store) SaveLaps(gameID, course string, scoreID int64, laps []time.Duration) error {
	if len(laps) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot save laps: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO laps (score_id, game_id, course, lap, millis) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save laps: %w", err)
	}
	defer stmt.Close()

	for i, d := range laps {
		if _, err := stmt.Exec(scoreID, gameID, course, i+1, d.Milliseconds()); err != nil {
			return fmt.Errorf("storage: cannot save lap %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot save laps: %w", err)
	}
	return nil
}

// BestLaps returns the fastest limit laps for a game and course.
// An empty course matches every course. A non-positive limit means 10.
func (s *Store) BestLaps(gameID, course string, limit int) ([]LapEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, COALESCE(score_id, 0), game_id, course, lap, millis, created_at
		 FROM laps
		 WHERE game_id = ? AND (? = '' OR course = ?)
		 ORDER BY millis ASC, id ASC
		 LIMIT ?`,
		gameID, course, course, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query laps: %w", err)
	}
	defer rows.Close()

	var entries []LapEntry
	for rows.Next() {
		var e LapEntry
		var millis int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ScoreID, &e.GameID, &e.Course, &e.Lap, &millis, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan lap: %w", err)
		}
		e.Time = time.Duration(millis) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// LapStats summarises every lap for a game and course (empty course for all).
func (s *Store) LapStats(gameID, course string) (LapSummary, error) {
	rows, err := s.db.Query(
		`SELECT millis FROM laps WHERE game_id = ? AND (? = '' OR course = ?)`,
		gameID, course, course,
	)
	if err != nil {
		return LapSummary{}, fmt.Errorf("storage: cannot query lap stats: %w", err)
	}
	defer rows.Close()

	var times []float64
	for rows.Next() {
		var millis int64
		if err := rows.Scan(&millis); err != nil {
			return LapSummary{}, fmt.Errorf("storage: cannot scan lap: %w", err)
		}
		times = append(times, float64(millis))
	}
	if err := rows.Err(); err != nil {
		return LapSummary{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summarise(times), nil
}

// summarise reduces lap times in milliseconds to a LapSummary.
func summarise(millis []float64) LapSummary {
	if len(millis) == 0 {
		return LapSummary{}
	}

	best := millis[0]
	for _, m := range millis[1:] {
		best = min(best, m)
	}

	sum := LapSummary{Count: len(millis), Best: ms(best)}
	if len(millis) == 1 {
		sum.Mean = ms(millis[0])
		return sum
	}
	mean, std := stat.MeanStdDev(millis, nil)
	sum.Mean = ms(mean)
	sum.StdDev = ms(std)
	return sum
}

func ms(v float64) time.Duration {
	return time.Duration(v * float64(time.Millisecond))
}
