package service

import (
	"errors"
	"fmt"
	"time"

	"runright/internal/engine"
	"runright/internal/pace"
	"runright/internal/progress"
	"runright/internal/store"
)

// CoachService bridges the store and the decision pipeline. It owns the
// engine, pace analyzer, progress tracker, and the upgrade evaluator so the
// TUI and CLI only deal in view-ready data.
type CoachService struct {
	store       *store.Store
	engine      *engine.Engine
	analyzer    *pace.Analyzer
	tracker     *progress.Tracker
	upgrades    *progress.UpgradeEvaluator
	recentLimit int
	now         func() time.Time
}

// NewCoachService creates a coach over the given store. Zero values for the
// limits fall back to the defaults.
func NewCoachService(st *store.Store, recentLimit, consistencyWeeks int) *CoachService {
	return newCoachService(st, recentLimit, consistencyWeeks, time.Now)
}

func newCoachService(st *store.Store, recentLimit, consistencyWeeks int, now func() time.Time) *CoachService {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentRunsLimit
	}
	return &CoachService{
		store:       st,
		engine:      engine.NewWithClock(engine.DefaultConfig(), now),
		analyzer:    pace.NewAnalyzerWithClock(now),
		tracker:     progress.NewTrackerWithWindow(now, consistencyWeeks),
		upgrades:    progress.NewUpgradeEvaluator(),
		recentLimit: recentLimit,
		now:         now,
	}
}

// DashboardData is everything the dashboard renders in one fetch.
type DashboardData struct {
	Profile        engine.RunnerProfile
	Recommendation engine.SessionRecommendation
	Readiness      float64
	HasReadiness   bool
	Weekly         engine.WeeklyStats
	HasCheckIn     bool
	Level          progress.LevelProgress
	UpgradeTarget  engine.ExperienceLevel
	UpgradePending bool
	RunCount       int

	// Weekly distance chart, oldest bucket first
	WeeklyDistances []float64
	WeekLabels      []string
}

// Dashboard loads the profile and history and runs the full pipeline.
func (c *CoachService) Dashboard() (*DashboardData, error) {
	profile, err := c.store.GetProfile()
	if err != nil {
		return nil, err
	}

	runs, err := c.store.ListRuns(c.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("loading runs: %w", err)
	}
	summaries := summarize(runs)

	today, err := c.todayCheckIn()
	if err != nil {
		return nil, err
	}

	// The engine sees only the recent window; the lifetime count comes
	// from the table itself.
	total, err := c.store.CountRuns()
	if err != nil {
		return nil, fmt.Errorf("counting runs: %w", err)
	}

	data := &DashboardData{
		Profile:        *profile,
		Recommendation: c.engine.NextSession(*profile, summaries, today),
		Weekly:         c.engine.WeeklyStats(summaries),
		HasCheckIn:     today != nil,
		Level:          c.tracker.Consistency(summaries),
		RunCount:       total,
	}

	if len(summaries) > 0 {
		latest := newestRun(summaries)
		data.Readiness = c.engine.Readiness(*profile, latest, today)
		data.HasReadiness = true
	}

	data.WeeklyDistances, data.WeekLabels = weeklyChart(summaries, c.now())

	dismissed, err := c.store.GetUpgradeDismissed()
	if err != nil {
		return nil, fmt.Errorf("loading upgrade state: %w", err)
	}
	if !dismissed && c.upgrades.Evaluate(*profile, summaries) {
		data.UpgradeTarget, data.UpgradePending = c.upgrades.Pending()
	}

	return data, nil
}

// RunInput is a validated run entry from the CLI or TUI.
type RunInput struct {
	Date            time.Time // zero means now
	DistanceKm      float64
	DurationMinutes float64
	Difficulty      int // 0 means unrated, stored as 3
	PainLevel       int
	PainAreas       []string
	Notes           string
}

// RunFeedback is the post-run pace reaction shown after logging.
type RunFeedback struct {
	Pace          pace.Pace
	HasBaseline   bool
	Category      pace.Category
	Description   string
	Encouragement string
}

// LogRun validates and stores a run, then classifies its pace against the
// runner's baseline from the runs that preceded it.
func (c *CoachService) LogRun(in RunInput) (*RunFeedback, error) {
	if in.DistanceKm <= 0 || in.DistanceKm > MaxRunDistanceKm {
		return nil, fmt.Errorf("distance %.1f km is out of range", in.DistanceKm)
	}
	if in.DurationMinutes <= 0 || in.DurationMinutes > MaxRunDurationMinutes {
		return nil, fmt.Errorf("duration %.1f min is out of range", in.DurationMinutes)
	}
	if in.Difficulty != 0 {
		if err := ValidateRating("difficulty", in.Difficulty, 1, 5); err != nil {
			return nil, err
		}
	}
	if err := ValidateRating("pain level", in.PainLevel, 0, 10); err != nil {
		return nil, err
	}

	if in.Date.IsZero() {
		in.Date = c.now()
	}
	difficulty := in.Difficulty
	if difficulty == 0 {
		difficulty = 3
	}

	// Baseline comes from the history before this run lands in it.
	prior, err := c.store.ListRuns(c.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("loading runs: %w", err)
	}
	baseline, hasBaseline := c.analyzer.Baseline(summarize(prior))

	run := &store.Run{
		Date:            in.Date,
		DurationMinutes: in.DurationMinutes,
		DistanceKm:      in.DistanceKm,
		Difficulty:      difficulty,
		PainLevel:       in.PainLevel,
		PainAreas:       in.PainAreas,
		Notes:           in.Notes,
	}
	if err := c.store.InsertRun(run); err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}

	runPace := pace.FromKm(in.DistanceKm, in.DurationMinutes*60)
	feedback := &RunFeedback{Pace: runPace, HasBaseline: hasBaseline}
	if hasBaseline {
		feedback.Category = pace.Categorize(runPace, baseline)
		feedback.Description = feedback.Category.Description()
		feedback.Encouragement = pace.Encouragement(feedback.Category, in.Difficulty, in.PainLevel)
	} else {
		feedback.Description = "Run saved. Log a few more and you'll unlock pace insights."
	}
	return feedback, nil
}

// SaveCheckIn validates and upserts today's check-in.
func (c *CoachService) SaveCheckIn(soreness, sleepQuality, painLevel int, painAreas []string) error {
	if err := ValidateRating("soreness", soreness, 0, 10); err != nil {
		return err
	}
	if err := ValidateRating("sleep quality", sleepQuality, 1, 5); err != nil {
		return err
	}
	if err := ValidateRating("pain level", painLevel, 0, 10); err != nil {
		return err
	}

	return c.store.SaveCheckIn(&store.CheckIn{
		Day:          store.DayKey(c.now()),
		Soreness:     soreness,
		SleepQuality: sleepQuality,
		PainLevel:    painLevel,
		PainAreas:    painAreas,
	})
}

// todayCheckIn loads the current day's check-in, nil when none exists.
func (c *CoachService) todayCheckIn() (*engine.TodayCheckIn, error) {
	ci, err := c.store.GetCheckIn(store.DayKey(c.now()))
	if errors.Is(err, store.ErrNoCheckIn) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading check-in: %w", err)
	}
	today := ci.Today()
	return &today, nil
}

// PaceInsight is the runner's baseline and derived training zones.
type PaceInsight struct {
	Baseline    pace.Pace
	HasBaseline bool
	Zones       pace.Zones
	RunCount    int
}

// PaceInsight computes the rolling baseline and zone bands.
func (c *CoachService) PaceInsight() (*PaceInsight, error) {
	runs, err := c.store.ListRuns(c.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("loading runs: %w", err)
	}

	insight := &PaceInsight{RunCount: len(runs)}
	baseline, ok := c.analyzer.Baseline(summarize(runs))
	if ok {
		insight.Baseline = baseline
		insight.HasBaseline = true
		insight.Zones = pace.ZonesFor(baseline)
	}
	return insight, nil
}

// History returns stored runs, newest first.
func (c *CoachService) History(limit int) ([]store.Run, error) {
	return c.store.ListRuns(limit)
}

// DeleteRun removes a stored run and returns the deleted record so the
// caller can describe what went away.
func (c *CoachService) DeleteRun(id string) (*store.Run, error) {
	run, err := c.store.GetRun(id)
	if err != nil {
		return nil, err
	}
	if err := c.store.DeleteRun(id); err != nil {
		return nil, err
	}
	return run, nil
}

// Profile returns the stored runner profile.
func (c *CoachService) Profile() (*engine.RunnerProfile, error) {
	return c.store.GetProfile()
}

// SaveProfile stores the runner profile after bounds checks.
func (c *CoachService) SaveProfile(p *engine.RunnerProfile) error {
	if p.RunsPerWeek < 1 || p.RunsPerWeek > 7 {
		return fmt.Errorf("runs per week must be between 1 and 7, got %d", p.RunsPerWeek)
	}
	if p.TypicalWeeklyKm < 0 || p.TypicalWeeklyKm > MaxWeeklyDistanceKm {
		return fmt.Errorf("typical weekly distance %.1f km is out of range", p.TypicalWeeklyKm)
	}
	if p.LongestRunKm < 0 || p.LongestRunKm > MaxRunDistanceKm {
		return fmt.Errorf("longest run %.1f km is out of range", p.LongestRunKm)
	}
	return c.store.SaveProfile(p)
}

// AcceptUpgrade promotes the stored experience level to the pending
// suggestion and clears the suggestion state.
func (c *CoachService) AcceptUpgrade() error {
	level, ok := c.upgrades.Accept()
	if !ok {
		return errors.New("no upgrade suggestion pending")
	}
	if err := c.store.UpdateExperienceLevel(level); err != nil {
		return fmt.Errorf("promoting experience level: %w", err)
	}
	return c.store.SetUpgradeDismissed(false)
}

// DismissUpgrade clears the suggestion and remembers the dismissal so the
// runner isn't re-prompted on the next launch.
func (c *CoachService) DismissUpgrade() error {
	c.upgrades.Dismiss()
	return c.store.SetUpgradeDismissed(true)
}

func summarize(runs []store.Run) []engine.RunSummary {
	summaries := make([]engine.RunSummary, len(runs))
	for i, r := range runs {
		summaries[i] = r.Summary()
	}
	return summaries
}

func newestRun(summaries []engine.RunSummary) engine.RunSummary {
	newest := summaries[0]
	for _, r := range summaries[1:] {
		if r.Date.After(newest.Date) {
			newest = r
		}
	}
	return newest
}

// weeklyChart buckets distance into trailing Monday-start weeks for the
// dashboard chart, oldest bucket first.
func weeklyChart(summaries []engine.RunSummary, now time.Time) ([]float64, []string) {
	distances := make([]float64, ChartWeeks)
	labels := make([]string, ChartWeeks)

	currentWeekStart := getMonday(now)
	for i := 0; i < ChartWeeks; i++ {
		weekStart := currentWeekStart.AddDate(0, 0, -7*(ChartWeeks-1-i))
		labels[i] = weekStart.Format("Jan 02")
	}

	windowStart := currentWeekStart.AddDate(0, 0, -7*(ChartWeeks-1))
	for _, r := range summaries {
		if r.Date.Before(windowStart) {
			continue
		}
		idx := int(r.Date.Sub(windowStart).Hours() / (24 * 7))
		if idx >= 0 && idx < ChartWeeks {
			distances[idx] += r.DistanceKm
		}
	}
	return distances, labels
}

// getMonday returns the start of the week (Monday 00:00) containing t.
func getMonday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started 6 days back
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
