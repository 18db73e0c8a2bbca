package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"runright/internal/engine"
)

// GetProfile retrieves the stored runner profile.
func (s *Store) GetProfile() (*engine.RunnerProfile, error) {
	row := s.db.QueryRow(`
		SELECT profile_id, display_name, experience_level, distance_unit,
			primary_goal, custom_goal_km, runs_per_week, longest_run_km,
			typical_weekly_km, goal_description, created_at
		FROM profile
		WHERE id = 1
	`)

	var p engine.RunnerProfile
	var level, unit, goal, createdAt string
	err := row.Scan(
		&p.ID, &p.DisplayName, &level, &unit, &goal, &p.CustomGoalKm,
		&p.RunsPerWeek, &p.LongestRunKm, &p.TypicalWeeklyKm,
		&p.GoalDescription, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, err
	}

	p.ExperienceLevel = engine.ExperienceLevel(level)
	p.DistanceUnit = engine.DistanceUnit(unit)
	p.PrimaryGoal = engine.PrimaryGoal(goal)
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	return &p, nil
}

// SaveProfile stores or updates the runner profile. A missing ID or creation
// time is filled in on first save.
func (s *Store) SaveProfile(p *engine.RunnerProfile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO profile (
			id, profile_id, display_name, experience_level, distance_unit,
			primary_goal, custom_goal_km, runs_per_week, longest_run_km,
			typical_weekly_km, goal_description, created_at, updated_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			experience_level = excluded.experience_level,
			distance_unit = excluded.distance_unit,
			primary_goal = excluded.primary_goal,
			custom_goal_km = excluded.custom_goal_km,
			runs_per_week = excluded.runs_per_week,
			longest_run_km = excluded.longest_run_km,
			typical_weekly_km = excluded.typical_weekly_km,
			goal_description = excluded.goal_description,
			updated_at = CURRENT_TIMESTAMP
	`, p.ID, p.DisplayName, string(p.ExperienceLevel), string(p.DistanceUnit),
		string(p.PrimaryGoal), p.CustomGoalKm, p.RunsPerWeek, p.LongestRunKm,
		p.TypicalWeeklyKm, p.GoalDescription, p.CreatedAt.Format(time.RFC3339))
	return err
}

// UpdateExperienceLevel updates just the stored experience level.
func (s *Store) UpdateExperienceLevel(level engine.ExperienceLevel) error {
	result, err := s.db.Exec(`
		UPDATE profile
		SET experience_level = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`, string(level))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNoProfile
	}
	return nil
}
