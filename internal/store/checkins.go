package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// SaveCheckIn stores or replaces the check-in for its calendar day.
func (s *Store) SaveCheckIn(c *CheckIn) error {
	areas, err := encodeAreas(c.PainAreas)
	if err != nil {
		return fmt.Errorf("encoding pain areas: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO checkins (day, soreness, sleep_quality, pain_level, pain_areas, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(day) DO UPDATE SET
			soreness = excluded.soreness,
			sleep_quality = excluded.sleep_quality,
			pain_level = excluded.pain_level,
			pain_areas = excluded.pain_areas,
			updated_at = CURRENT_TIMESTAMP
	`, c.Day, c.Soreness, c.SleepQuality, c.PainLevel, areas)
	return err
}

// GetCheckIn retrieves the check-in for a calendar day.
func (s *Store) GetCheckIn(day string) (*CheckIn, error) {
	row := s.db.QueryRow(`
		SELECT day, soreness, sleep_quality, pain_level, pain_areas
		FROM checkins
		WHERE day = ?
	`, day)

	var c CheckIn
	var areas string
	err := row.Scan(&c.Day, &c.Soreness, &c.SleepQuality, &c.PainLevel, &areas)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoCheckIn
	}
	if err != nil {
		return nil, err
	}

	c.PainAreas, err = decodeAreas(areas)
	if err != nil {
		return nil, fmt.Errorf("decoding pain areas %q: %w", areas, err)
	}
	return &c, nil
}
