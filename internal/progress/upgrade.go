package progress

import (
	"sort"
	"sync"
	"time"

	"runright/internal/engine"
)

// Auto-upgrade criteria: sustained history plus clear distance growth.
const (
	upgradeMinRuns       = 5
	upgradeMinSpan       = 60 * 24 * time.Hour
	upgradeDistanceRatio = 2.5
)

// UpgradeEvaluator holds the pending level-up suggestion. It is the only
// mutable session state outside a single engine call, so transitions go
// through a mutex and the last writer wins.
type UpgradeEvaluator struct {
	mu      sync.Mutex
	pending bool
	target  engine.ExperienceLevel
}

// NewUpgradeEvaluator starts with no pending suggestion.
func NewUpgradeEvaluator() *UpgradeEvaluator {
	return &UpgradeEvaluator{}
}

// Evaluate checks whether a beginner's history has outgrown their level and,
// if so, arms a pending suggestion to move to intermediate. It reports
// whether a suggestion is pending afterwards.
//
// The criteria: at least 5 runs, at least 60 days between the earliest and
// latest run, and the latest run at least 2.5x the earliest run's distance.
func (e *UpgradeEvaluator) Evaluate(profile engine.RunnerProfile, runs []engine.RunSummary) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending {
		return true
	}
	if profile.ExperienceLevel != engine.Beginner || len(runs) < upgradeMinRuns {
		return false
	}

	sorted := make([]engine.RunSummary, len(runs))
	copy(sorted, runs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	earliest := sorted[0]
	latest := sorted[len(sorted)-1]
	if latest.Date.Sub(earliest.Date) < upgradeMinSpan {
		return false
	}
	if earliest.DistanceKm <= 0 || latest.DistanceKm < earliest.DistanceKm*upgradeDistanceRatio {
		return false
	}

	e.pending = true
	e.target = engine.Intermediate
	return true
}

// Pending returns the suggested level, if any.
func (e *UpgradeEvaluator) Pending() (engine.ExperienceLevel, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.target, e.pending
}

// Accept resolves the suggestion and returns the level to promote to. It
// reports false when nothing was pending.
func (e *UpgradeEvaluator) Accept() (engine.ExperienceLevel, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.pending {
		return "", false
	}
	e.pending = false
	return e.target, true
}

// Dismiss clears the suggestion without acting on it. Dismissing when
// nothing is pending is a no-op.
func (e *UpgradeEvaluator) Dismiss() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = false
}
