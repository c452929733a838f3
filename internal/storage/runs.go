package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Run is the record of one finished run.
type Run struct {
	ID         string
	GameID     string
	Seed       int64
	Difficulty string
	Score      int
	Kills      int
	Duration   time.Duration // Simulated time
	Upgrades   int           // Upgrades taken
	Loadout    []string      // Final weapons and scrolls, e.g. "Kunai L3"
	KilledBy   string
	Headless   bool // Produced by the simulate command
	CreatedAt  time.Time
}

// SaveRun stores a run. A missing ID is filled with a new UUID, which is
// returned.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, seed, difficulty, score, kills, duration_ms,
		                   upgrades, loadout, killed_by, headless)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Seed, r.Difficulty, r.Score, r.Kills, r.Duration.Milliseconds(),
		r.Upgrades, strings.Join(r.Loadout, ","), r.KilledBy, r.Headless,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, game_id, seed, difficulty, score, kills, duration_ms,
	upgrades, loadout, killed_by, headless, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		r          Run
		durationMS int64
		loadout    string
		createdAt  any
	)
	err := row.Scan(&r.ID, &r.GameID, &r.Seed, &r.Difficulty, &r.Score, &r.Kills, &durationMS,
		&r.Upgrades, &loadout, &r.KilledBy, &r.Headless, &createdAt)
	if err != nil {
		return Run{}, err
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	if loadout != "" {
		r.Loadout = strings.Split(loadout, ",")
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RecentRuns returns the latest runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunByID looks up a run. It returns nil without error when the run does
// not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}
