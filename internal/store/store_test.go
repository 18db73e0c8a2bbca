package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"runright/internal/engine"
)

// setupTestStore creates a Store over an in-memory database
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		sqlDB.Close()
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return newStore(sqlDB)
}

func TestProfile_RoundTrip(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.GetProfile(); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("GetProfile on empty store = %v, want ErrNoProfile", err)
	}

	p := &engine.RunnerProfile{
		DisplayName:     "Sam",
		ExperienceLevel: engine.Beginner,
		DistanceUnit:    engine.Kilometers,
		PrimaryGoal:     engine.GoalRace10K,
		RunsPerWeek:     3,
		LongestRunKm:    8.0,
		TypicalWeeklyKm: 20.0,
	}
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if p.ID == "" {
		t.Error("SaveProfile should assign an ID")
	}

	got, err := s.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.ID != p.ID || got.DisplayName != "Sam" || got.ExperienceLevel != engine.Beginner {
		t.Errorf("GetProfile = %+v, want the saved profile", got)
	}
	if got.PrimaryGoal != engine.GoalRace10K || got.RunsPerWeek != 3 {
		t.Errorf("GetProfile goal fields = %v/%d, want race10k/3", got.PrimaryGoal, got.RunsPerWeek)
	}

	// Saving again replaces the singleton row.
	p.DisplayName = "Sam R"
	p.TypicalWeeklyKm = 25.0
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile (update): %v", err)
	}
	got, err = s.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile after update: %v", err)
	}
	if got.DisplayName != "Sam R" || got.TypicalWeeklyKm != 25.0 {
		t.Errorf("updated profile = %+v, want new name and volume", got)
	}
}

func TestUpdateExperienceLevel(t *testing.T) {
	s := setupTestStore(t)

	if err := s.UpdateExperienceLevel(engine.Intermediate); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("UpdateExperienceLevel without a profile = %v, want ErrNoProfile", err)
	}

	if err := s.SaveProfile(&engine.RunnerProfile{
		DisplayName:     "Sam",
		ExperienceLevel: engine.Beginner,
		DistanceUnit:    engine.Kilometers,
		PrimaryGoal:     engine.GoalNone,
		RunsPerWeek:     3,
	}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	if err := s.UpdateExperienceLevel(engine.Intermediate); err != nil {
		t.Fatalf("UpdateExperienceLevel: %v", err)
	}
	got, err := s.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.ExperienceLevel != engine.Intermediate {
		t.Errorf("level = %v, want intermediate", got.ExperienceLevel)
	}
}

func TestRuns_InsertAndList(t *testing.T) {
	s := setupTestStore(t)

	dates := []time.Time{
		time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 12, 7, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 14, 7, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		run := &Run{
			Date:            d,
			DurationMinutes: 30,
			DistanceKm:      5.0,
			Difficulty:      3,
			PainLevel:       i, // 0, 1, 2
			PainAreas:       nil,
		}
		if i == 2 {
			run.PainAreas = []string{"Knees", "Calves"}
		}
		if err := s.InsertRun(run); err != nil {
			t.Fatalf("InsertRun: %v", err)
		}
		if run.ID == "" {
			t.Error("InsertRun should assign an ID")
		}
	}

	runs, err := s.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3", len(runs))
	}
	// Newest first.
	if !runs[0].Date.Equal(dates[2]) || !runs[2].Date.Equal(dates[0]) {
		t.Errorf("runs not ordered newest first: %v", runs)
	}
	if len(runs[0].PainAreas) != 2 || runs[0].PainAreas[0] != "Knees" {
		t.Errorf("pain areas = %v, want [Knees Calves]", runs[0].PainAreas)
	}

	limited, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns(2): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(limited) = %d, want 2", len(limited))
	}

	count, err := s.CountRuns()
	if err != nil {
		t.Fatalf("CountRuns: %v", err)
	}
	if count != 3 {
		t.Errorf("CountRuns = %d, want 3", count)
	}
}

func TestRuns_GetAndDelete(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.GetRun("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("GetRun(missing) = %v, want ErrRunNotFound", err)
	}

	run := &Run{
		Date:            time.Date(2025, 6, 14, 7, 0, 0, 0, time.UTC),
		DurationMinutes: 25,
		DistanceKm:      4.2,
		Difficulty:      2,
	}
	if err := s.InsertRun(run); err != nil {
		t.Fatalf("InsertRun: %v", err)
	}

	got, err := s.GetRun(run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.DistanceKm != 4.2 || got.Difficulty != 2 {
		t.Errorf("GetRun = %+v, want the inserted run", got)
	}

	if err := s.DeleteRun(run.ID); err != nil {
		t.Fatalf("DeleteRun: %v", err)
	}
	if err := s.DeleteRun(run.ID); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("second DeleteRun = %v, want ErrRunNotFound", err)
	}
}

func TestCheckIns_UpsertByDay(t *testing.T) {
	s := setupTestStore(t)

	day := "2025-06-15"
	if _, err := s.GetCheckIn(day); !errors.Is(err, ErrNoCheckIn) {
		t.Fatalf("GetCheckIn(empty) = %v, want ErrNoCheckIn", err)
	}

	if err := s.SaveCheckIn(&CheckIn{Day: day, Soreness: 3, SleepQuality: 4}); err != nil {
		t.Fatalf("SaveCheckIn: %v", err)
	}

	// Same day again replaces, it never duplicates.
	if err := s.SaveCheckIn(&CheckIn{Day: day, Soreness: 6, SleepQuality: 2, PainLevel: 4, PainAreas: []string{"Shins"}}); err != nil {
		t.Fatalf("SaveCheckIn (upsert): %v", err)
	}

	got, err := s.GetCheckIn(day)
	if err != nil {
		t.Fatalf("GetCheckIn: %v", err)
	}
	if got.Soreness != 6 || got.SleepQuality != 2 || got.PainLevel != 4 {
		t.Errorf("check-in = %+v, want the replacement values", got)
	}
	if len(got.PainAreas) != 1 || got.PainAreas[0] != "Shins" {
		t.Errorf("pain areas = %v, want [Shins]", got.PainAreas)
	}
}

func TestUpgradeState(t *testing.T) {
	s := setupTestStore(t)

	dismissed, err := s.GetUpgradeDismissed()
	if err != nil {
		t.Fatalf("GetUpgradeDismissed: %v", err)
	}
	if dismissed {
		t.Error("fresh store should not report a dismissal")
	}

	if err := s.SetUpgradeDismissed(true); err != nil {
		t.Fatalf("SetUpgradeDismissed: %v", err)
	}
	dismissed, err = s.GetUpgradeDismissed()
	if err != nil {
		t.Fatalf("GetUpgradeDismissed: %v", err)
	}
	if !dismissed {
		t.Error("dismissal should persist")
	}

	// Accepting an upgrade clears the flag for the next suggestion.
	if err := s.SetUpgradeDismissed(false); err != nil {
		t.Fatalf("SetUpgradeDismissed(false): %v", err)
	}
	dismissed, _ = s.GetUpgradeDismissed()
	if dismissed {
		t.Error("clearing the dismissal should persist")
	}
}

func TestRunSummaryConversion(t *testing.T) {
	r := Run{
		Date:            time.Date(2025, 6, 14, 7, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		DistanceKm:      5,
		Difficulty:      4,
		PainLevel:       2,
		PainAreas:       []string{"Calves"},
	}
	sum := r.Summary()
	if sum.DistanceKm != 5 || sum.Difficulty != 4 || sum.PainLevel != 2 {
		t.Errorf("Summary() = %+v, want matching fields", sum)
	}
}
