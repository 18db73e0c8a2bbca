package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Runner profile (singleton row)
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			profile_id TEXT NOT NULL,
			display_name TEXT NOT NULL,
			experience_level TEXT NOT NULL,
			distance_unit TEXT NOT NULL,
			primary_goal TEXT NOT NULL,
			custom_goal_km REAL NOT NULL DEFAULT 0,
			runs_per_week INTEGER NOT NULL,
			longest_run_km REAL NOT NULL DEFAULT 0,
			typical_weekly_km REAL NOT NULL DEFAULT 0,
			goal_description TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Completed runs with post-run feedback
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			duration_minutes REAL NOT NULL,
			distance_km REAL NOT NULL,
			difficulty INTEGER NOT NULL DEFAULT 3,
			pain_level INTEGER NOT NULL DEFAULT 0,
			pain_areas TEXT NOT NULL DEFAULT '[]',
			notes TEXT NOT NULL DEFAULT '',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_runs_date ON runs(date)`,

		// Daily check-ins, one per local calendar day
		`CREATE TABLE IF NOT EXISTS checkins (
			day TEXT PRIMARY KEY,
			soreness INTEGER NOT NULL DEFAULT 0,
			sleep_quality INTEGER NOT NULL DEFAULT 0,
			pain_level INTEGER NOT NULL DEFAULT 0,
			pain_areas TEXT NOT NULL DEFAULT '[]',
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Level-upgrade suggestion state (singleton row)
		`CREATE TABLE IF NOT EXISTS upgrade_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			dismissed INTEGER NOT NULL DEFAULT 0,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
