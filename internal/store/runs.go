package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsertRun stores a completed run. A missing ID is generated.
func (s *Store) InsertRun(r *Run) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	areas, err := encodeAreas(r.PainAreas)
	if err != nil {
		return fmt.Errorf("encoding pain areas: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO runs (id, date, duration_minutes, distance_km, difficulty, pain_level, pain_areas, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Date.Format(time.RFC3339), r.DurationMinutes, r.DistanceKm,
		r.Difficulty, r.PainLevel, areas, r.Notes)
	return err
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT id, date, duration_minutes, distance_km, difficulty, pain_level, pain_areas, notes
		FROM runs
		WHERE id = ?
	`, id)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	return r, err
}

// ListRuns returns runs ordered by date descending, newest first.
// A limit of 0 returns everything.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT id, date, duration_minutes, distance_km, difficulty, pain_level, pain_areas, notes
		FROM runs
		ORDER BY date DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// DeleteRun removes a run by ID.
func (s *Store) DeleteRun(id string) error {
	result, err := s.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRunNotFound
	}
	return nil
}

// CountRuns returns the total number of stored runs.
func (s *Store) CountRuns() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*Run, error) {
	var r Run
	var date, areas string
	err := row.Scan(&r.ID, &date, &r.DurationMinutes, &r.DistanceKm,
		&r.Difficulty, &r.PainLevel, &areas, &r.Notes)
	if err != nil {
		return nil, err
	}

	r.Date, err = time.Parse(time.RFC3339, date)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}
	r.PainAreas, err = decodeAreas(areas)
	if err != nil {
		return nil, fmt.Errorf("decoding pain areas %q: %w", areas, err)
	}
	return &r, nil
}
