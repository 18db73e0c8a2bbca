// Package progress tracks training consistency and decides when a runner
// has earned a suggested experience-level promotion.
package progress

import (
	"time"

	"runright/internal/engine"
)

// DefaultRequiredWeeks is the consistency window used for the level
// progress bar.
const DefaultRequiredWeeks = 8

// LevelProgress summarizes how many of the required trailing weeks held at
// least one run.
type LevelProgress struct {
	RequiredWeeks  int
	CompletedWeeks int
}

// Fraction returns completion as a value clamped to [0, 1].
func (p LevelProgress) Fraction() float64 {
	if p.RequiredWeeks <= 0 {
		return 0
	}
	f := float64(p.CompletedWeeks) / float64(p.RequiredWeeks)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Tracker computes consistency progress over a trailing window.
type Tracker struct {
	now           func() time.Time
	requiredWeeks int
}

// NewTracker creates a tracker over the default window using the wall clock.
func NewTracker() *Tracker {
	return NewTrackerWithClock(time.Now)
}

// NewTrackerWithClock creates a tracker with an injected clock for tests.
func NewTrackerWithClock(now func() time.Time) *Tracker {
	return NewTrackerWithWindow(now, DefaultRequiredWeeks)
}

// NewTrackerWithWindow creates a tracker over a custom trailing window. A
// non-positive window falls back to the default.
func NewTrackerWithWindow(now func() time.Time, weeks int) *Tracker {
	if weeks <= 0 {
		weeks = DefaultRequiredWeeks
	}
	return &Tracker{now: now, requiredWeeks: weeks}
}

// Consistency counts the distinct ISO weeks holding at least one run inside
// the trailing window. A window of N weeks can straddle N+1 calendar weeks,
// so the completed count is clamped to the requirement.
func (t *Tracker) Consistency(runs []engine.RunSummary) LevelProgress {
	cutoff := t.now().AddDate(0, 0, -t.requiredWeeks*7)

	weeks := make(map[[2]int]struct{})
	for _, r := range runs {
		if r.Date.Before(cutoff) {
			continue
		}
		year, week := r.Date.ISOWeek()
		weeks[[2]int{year, week}] = struct{}{}
	}

	completed := len(weeks)
	if completed > t.requiredWeeks {
		completed = t.requiredWeeks
	}
	return LevelProgress{RequiredWeeks: t.requiredWeeks, CompletedWeeks: completed}
}
