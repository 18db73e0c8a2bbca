package service

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"runright/internal/engine"
	"runright/internal/pace"
	"runright/internal/store"
)

var coachNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// setupCoach builds a CoachService over an in-memory store with a frozen clock
func setupCoach(t *testing.T) (*CoachService, *store.Store) {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := store.Migrate(sqlDB); err != nil {
		sqlDB.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}
	t.Cleanup(func() {
		sqlDB.Close()
	})

	st := store.NewTestStore(sqlDB)
	return newCoachService(st, 0, 0, func() time.Time { return coachNow }), st
}

func saveBeginnerProfile(t *testing.T, c *CoachService) {
	t.Helper()
	if err := c.SaveProfile(&engine.RunnerProfile{
		DisplayName:     "Sam",
		ExperienceLevel: engine.Beginner,
		DistanceUnit:    engine.Kilometers,
		PrimaryGoal:     engine.GoalNone,
		RunsPerWeek:     3,
		LongestRunKm:    8,
		TypicalWeeklyKm: 15,
	}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
}

func logEasyRun(t *testing.T, c *CoachService, daysAgo int) *RunFeedback {
	t.Helper()
	fb, err := c.LogRun(RunInput{
		Date:            coachNow.AddDate(0, 0, -daysAgo),
		DistanceKm:      5.0,
		DurationMinutes: 30,
		Difficulty:      1,
	})
	if err != nil {
		t.Fatalf("LogRun: %v", err)
	}
	return fb
}

func TestDashboard_NoProfile(t *testing.T) {
	c, _ := setupCoach(t)
	if _, err := c.Dashboard(); !errors.Is(err, store.ErrNoProfile) {
		t.Fatalf("Dashboard without a profile = %v, want ErrNoProfile", err)
	}
}

func TestDashboard_BuildsBaselineFirst(t *testing.T) {
	c, _ := setupCoach(t)
	saveBeginnerProfile(t, c)

	data, err := c.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if data.Recommendation.Type != engine.SessionNeedsMoreRuns {
		t.Errorf("type = %v, want needs-more-runs with no history", data.Recommendation.Type)
	}
	if data.HasReadiness {
		t.Error("no runs means no readiness score")
	}
	if data.RunCount != 0 {
		t.Errorf("run count = %d, want 0", data.RunCount)
	}
}

func TestDashboard_FullPipeline(t *testing.T) {
	c, _ := setupCoach(t)
	saveBeginnerProfile(t, c)

	for _, daysAgo := range []int{12, 9, 5, 2} {
		logEasyRun(t, c, daysAgo)
	}

	data, err := c.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	// Last run 2 days ago at difficulty 1 for 30 min:
	// 50 + 2*10*0.7 - (1*30)*0.3 = 55
	if !data.HasReadiness || data.Readiness != 55 {
		t.Errorf("readiness = %v (has=%v), want 55", data.Readiness, data.HasReadiness)
	}
	// Readiness 55 sits below the easy-run band: 5.0 km average x 0.7.
	if data.Recommendation.Type != engine.SessionEasyRun {
		t.Fatalf("type = %v, want easy run", data.Recommendation.Type)
	}
	if data.Recommendation.DistanceKm != 3.5 {
		t.Errorf("distance = %v, want 3.5", data.Recommendation.DistanceKm)
	}
	if data.Weekly.RunCount != 2 {
		t.Errorf("weekly run count = %d, want 2 (runs 2 and 5 days ago)", data.Weekly.RunCount)
	}
	if data.RunCount != 4 {
		t.Errorf("run count = %d, want 4", data.RunCount)
	}
	if len(data.WeeklyDistances) != ChartWeeks || len(data.WeekLabels) != ChartWeeks {
		t.Errorf("chart buckets = %d/%d, want %d", len(data.WeeklyDistances), len(data.WeekLabels), ChartWeeks)
	}
	if data.Level.CompletedWeeks < 2 {
		t.Errorf("completed weeks = %d, want at least 2", data.Level.CompletedWeeks)
	}
}

func TestDashboard_CheckInShiftsReadiness(t *testing.T) {
	c, _ := setupCoach(t)
	saveBeginnerProfile(t, c)
	for _, daysAgo := range []int{12, 9, 5, 2} {
		logEasyRun(t, c, daysAgo)
	}

	if err := c.SaveCheckIn(2, 4, 0, nil); err != nil {
		t.Fatalf("SaveCheckIn: %v", err)
	}

	data, err := c.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if !data.HasCheckIn {
		t.Error("check-in saved today should surface on the dashboard")
	}
	// 55 - 2*2 + 4*3 = 63
	if data.Readiness != 63 {
		t.Errorf("readiness with check-in = %v, want 63", data.Readiness)
	}
}

func TestSaveCheckIn_Validation(t *testing.T) {
	c, _ := setupCoach(t)

	if err := c.SaveCheckIn(3, 0, 0, nil); err == nil {
		t.Error("sleep quality 0 should be rejected")
	}
	if err := c.SaveCheckIn(11, 3, 0, nil); err == nil {
		t.Error("soreness 11 should be rejected")
	}
	if err := c.SaveCheckIn(3, 3, 11, nil); err == nil {
		t.Error("pain 11 should be rejected")
	}
}

func TestLogRun_Validation(t *testing.T) {
	c, _ := setupCoach(t)

	cases := []RunInput{
		{DistanceKm: 0, DurationMinutes: 30},
		{DistanceKm: 600, DurationMinutes: 30},
		{DistanceKm: 5, DurationMinutes: 0},
		{DistanceKm: 5, DurationMinutes: 30, Difficulty: 9},
		{DistanceKm: 5, DurationMinutes: 30, PainLevel: 11},
	}
	for i, in := range cases {
		if _, err := c.LogRun(in); err == nil {
			t.Errorf("case %d: invalid input accepted: %+v", i, in)
		}
	}
}

func TestLogRun_PaceFeedback(t *testing.T) {
	c, _ := setupCoach(t)
	saveBeginnerProfile(t, c)

	// The first three runs have no baseline to compare against.
	for i, daysAgo := range []int{12, 9, 5} {
		fb := logEasyRun(t, c, daysAgo)
		if fb.HasBaseline {
			t.Errorf("run %d should have no baseline yet", i+1)
		}
		if fb.Description == "" {
			t.Errorf("run %d should still describe itself", i+1)
		}
	}

	// The fourth run compares against the 6:00/km baseline at the same pace.
	fb := logEasyRun(t, c, 2)
	if !fb.HasBaseline {
		t.Fatal("fourth run should have a baseline")
	}
	if fb.Category != pace.Normal {
		t.Errorf("category = %v, want normal at the baseline pace", fb.Category.DisplayName())
	}
	if !strings.Contains(fb.Encouragement, "comfortable pace") {
		t.Errorf("encouragement = %q, want the normal-pace advice", fb.Encouragement)
	}
	if fb.Pace.SecPerKm != 360 {
		t.Errorf("pace = %v sec/km, want 360", fb.Pace.SecPerKm)
	}
}

func TestUpgradeFlow(t *testing.T) {
	c, st := setupCoach(t)
	saveBeginnerProfile(t, c)

	// History showing clear growth: 2 km ninety days ago up to 5 km now.
	seed := []struct {
		daysAgo int
		km      float64
	}{
		{90, 2.0}, {20, 4.0}, {15, 4.5}, {10, 4.5}, {5, 4.8}, {1, 5.0},
	}
	for _, s := range seed {
		if err := st.InsertRun(&store.Run{
			Date:            coachNow.AddDate(0, 0, -s.daysAgo),
			DurationMinutes: 30,
			DistanceKm:      s.km,
			Difficulty:      2,
		}); err != nil {
			t.Fatalf("InsertRun: %v", err)
		}
	}

	data, err := c.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if !data.UpgradePending || data.UpgradeTarget != engine.Intermediate {
		t.Fatalf("upgrade = %v/%v, want pending intermediate", data.UpgradePending, data.UpgradeTarget)
	}

	if err := c.AcceptUpgrade(); err != nil {
		t.Fatalf("AcceptUpgrade: %v", err)
	}
	profile, err := c.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.ExperienceLevel != engine.Intermediate {
		t.Errorf("level after accept = %v, want intermediate", profile.ExperienceLevel)
	}

	// No longer a beginner, so nothing re-arms.
	data, err = c.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if data.UpgradePending {
		t.Error("promoted runner should see no pending upgrade")
	}
}

func TestDismissUpgradePersists(t *testing.T) {
	c, st := setupCoach(t)
	saveBeginnerProfile(t, c)

	seed := []struct {
		daysAgo int
		km      float64
	}{
		{90, 2.0}, {20, 4.0}, {15, 4.5}, {10, 4.5}, {5, 4.8}, {1, 5.0},
	}
	for _, s := range seed {
		if err := st.InsertRun(&store.Run{
			Date:            coachNow.AddDate(0, 0, -s.daysAgo),
			DurationMinutes: 30,
			DistanceKm:      s.km,
			Difficulty:      2,
		}); err != nil {
			t.Fatalf("InsertRun: %v", err)
		}
	}

	data, err := c.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if !data.UpgradePending {
		t.Fatal("expected a pending upgrade")
	}
	if err := c.DismissUpgrade(); err != nil {
		t.Fatalf("DismissUpgrade: %v", err)
	}

	// A fresh service over the same store honors the stored dismissal.
	fresh := newCoachService(st, 0, 0, func() time.Time { return coachNow })
	data, err = fresh.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if data.UpgradePending {
		t.Error("dismissal should persist across launches")
	}
}

func TestAcceptUpgrade_NothingPending(t *testing.T) {
	c, _ := setupCoach(t)
	saveBeginnerProfile(t, c)
	if err := c.AcceptUpgrade(); err == nil {
		t.Error("accepting with nothing pending should fail")
	}
}

func TestDeleteRun(t *testing.T) {
	c, _ := setupCoach(t)
	saveBeginnerProfile(t, c)

	for _, daysAgo := range []int{5, 2} {
		logEasyRun(t, c, daysAgo)
	}
	runs, err := c.History(0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("run count before delete = %d, want 2", len(runs))
	}

	deleted, err := c.DeleteRun(runs[0].ID)
	if err != nil {
		t.Fatalf("DeleteRun: %v", err)
	}
	if deleted.ID != runs[0].ID {
		t.Errorf("deleted run id = %q, want %q", deleted.ID, runs[0].ID)
	}

	runs, err = c.History(0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("run count after delete = %d, want 1", len(runs))
	}

	data, err := c.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if data.RunCount != 1 {
		t.Errorf("dashboard run count after delete = %d, want 1", data.RunCount)
	}

	if _, err := c.DeleteRun("no-such-run"); !errors.Is(err, store.ErrRunNotFound) {
		t.Errorf("deleting an unknown run = %v, want ErrRunNotFound", err)
	}
}

func TestSaveProfile_Validation(t *testing.T) {
	c, _ := setupCoach(t)

	bad := []engine.RunnerProfile{
		{RunsPerWeek: 0},
		{RunsPerWeek: 8},
		{RunsPerWeek: 3, TypicalWeeklyKm: 301},
		{RunsPerWeek: 3, LongestRunKm: 501},
	}
	for i, p := range bad {
		p := p
		if err := c.SaveProfile(&p); err == nil {
			t.Errorf("case %d: invalid profile accepted: %+v", i, p)
		}
	}
}
