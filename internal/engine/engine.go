package engine

import (
	"fmt"
	"sort"
	"time"
)

// Engine produces session recommendations from a profile, a run history
// snapshot, and an optional same-day check-in. It performs no I/O, keeps no
// state between calls, and is safe to invoke concurrently as long as each
// call gets an immutable snapshot of its inputs.
type Engine struct {
	cfg Config
	now func() time.Time
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg, now: time.Now}
}

// NewWithClock creates an engine with an injected clock for deterministic
// day arithmetic in tests.
func NewWithClock(cfg Config, now func() time.Time) *Engine {
	return &Engine{cfg: cfg, now: now}
}

// NextSession computes the recommendation for the runner's next session.
// today may be nil when no check-in was recorded for the current day.
func (e *Engine) NextSession(profile RunnerProfile, recentRuns []RunSummary, today *TodayCheckIn) SessionRecommendation {
	if len(recentRuns) < e.cfg.RequiredRuns {
		return e.buildingBaseline(len(recentRuns))
	}

	sorted := make([]RunSummary, len(recentRuns))
	copy(sorted, recentRuns)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	lastRun := sorted[0]

	if rec, risky := e.CheckInjuryRisk(lastRun, today); risky {
		return rec
	}

	weekly := e.WeeklyStats(sorted)
	readiness := e.Readiness(profile, lastRun, today)
	daysSinceLastRun := daysBetween(lastRun.Date, e.now())

	return e.generate(profile, weekly, readiness, daysSinceLastRun, sorted)
}

// generate runs the rest gates, distance progression, and classifier once
// the injury guard and minimum-history gate have passed.
func (e *Engine) generate(profile RunnerProfile, weekly WeeklyStats, readiness float64, daysSinceLastRun int, sorted []RunSummary) SessionRecommendation {
	var warnings []string
	isBeginner := profile.ExperienceLevel == Beginner

	avgRecent := avgRecentDistance(sorted)
	safeMax := e.SafeWeeklyMax(profile, avgRecent)
	remainingBudget := safeMax - weekly.TotalDistanceKm
	if remainingBudget < 0 {
		remainingBudget = 0
	}

	if weekly.TotalDistanceKm > safeMax {
		warnings = append(warnings, "You've exceeded your safe weekly volume")
	}

	if readiness < e.cfg.ReadinessFullRest {
		return SessionRecommendation{
			Type:        SessionFullRest,
			Explanation: "Your body needs rest today. Recovery is when you get stronger!",
			Warnings:    warnings,
		}
	}

	if readiness < e.cfg.ReadinessLightActivity {
		if isBeginner {
			return SessionRecommendation{
				Type:        SessionStrengthMobility,
				Explanation: "Take it easy today. Light stretching or mobility work is ideal.",
				Warnings:    warnings,
			}
		}
		dist := min3(avgRecent*0.5, remainingBudget, 4.0)
		if dist < e.cfg.MinRunDistanceKm {
			dist = e.cfg.MinRunDistanceKm
		}
		return SessionRecommendation{
			Type:        SessionEasyRun,
			DistanceKm:  dist,
			HasDistance: true,
			Explanation: "A short recovery run if you feel up to it, otherwise rest.",
			Warnings:    warnings,
		}
	}

	if daysSinceLastRun == 0 {
		return SessionRecommendation{
			Type:        SessionFullRest,
			Explanation: "You already ran today. Rest and recover for tomorrow!",
			Warnings:    warnings,
		}
	}

	if weekly.RunCount >= profile.RunsPerWeek {
		return SessionRecommendation{
			Type:        SessionFullRest,
			Explanation: "You've hit your weekly run target. Take a rest day!",
			Warnings:    warnings,
		}
	}

	target := e.TargetDistance(profile, avgRecent, remainingBudget, readiness)
	sessionType := e.ClassifySession(profile, readiness, target, avgRecent, weekly)
	explanation := e.Explain(sessionType, profile, target, readiness, weekly)

	return SessionRecommendation{
		Type:        sessionType,
		DistanceKm:  target,
		HasDistance: true,
		Explanation: explanation,
		Warnings:    warnings,
	}
}

// buildingBaseline covers histories too short for personalization. The
// message varies with how many runs the user has logged.
func (e *Engine) buildingBaseline(runsCompleted int) SessionRecommendation {
	remaining := e.cfg.RequiredRuns - runsCompleted

	var message string
	switch runsCompleted {
	case 0:
		message = "Welcome! Complete your first 3 runs at an easy pace so we can learn your fitness level and give you personalized recommendations."
	case 1:
		message = fmt.Sprintf("Great first run! Complete %d more easy runs so we can personalize your training.", remaining)
	case 2:
		message = "One more run to go! After this, you'll unlock personalized recommendations."
	default:
		message = fmt.Sprintf("Complete %d more runs to unlock personalized recommendations.", remaining)
	}

	return SessionRecommendation{
		Type:        SessionNeedsMoreRuns,
		Explanation: message,
		Warnings:    []string{"Run at a pace where you can hold a conversation"},
	}
}

// avgRecentDistance is the mean distance of the 5 most recent runs.
// The input must be sorted newest first.
func avgRecentDistance(sorted []RunSummary) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n > 5 {
		n = 5
	}
	var total float64
	for _, r := range sorted[:n] {
		total += r.DistanceKm
	}
	return total / float64(n)
}

// daysBetween counts whole calendar days between two instants. The date
// components are re-anchored in UTC before subtracting so that a 23-hour
// DST day still counts as one full day. A run later today yields 0; the
// result is never negative.
func daysBetween(from, to time.Time) int {
	fromDay := dateOnly(from)
	toDay := dateOnly(to)
	days := int(toDay.Sub(fromDay).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
