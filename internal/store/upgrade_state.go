package store

import (
	"database/sql"
	"errors"
)

// GetUpgradeDismissed reports whether the runner has dismissed the pending
// level-up suggestion. A missing row means it was never dismissed.
func (s *Store) GetUpgradeDismissed() (bool, error) {
	var dismissed int64
	err := s.db.QueryRow(`SELECT dismissed FROM upgrade_state WHERE id = 1`).Scan(&dismissed)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return dismissed == 1, nil
}

// SetUpgradeDismissed records (or clears) the dismissal so relaunches don't
// re-prompt the runner.
func (s *Store) SetUpgradeDismissed(dismissed bool) error {
	val := int64(0)
	if dismissed {
		val = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO upgrade_state (id, dismissed, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			dismissed = excluded.dismissed,
			updated_at = CURRENT_TIMESTAMP
	`, val)
	return err
}
