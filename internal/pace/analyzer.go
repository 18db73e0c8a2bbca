package pace

import (
	"sort"
	"time"

	"runright/internal/engine"
)

// Baseline window and history requirements.
const (
	baselineWeeks   = 8
	baselineMinRuns = 3

	upgradeMinRuns        = 10
	upgradeImprovementPct = 10
)

// painConcernLevel is the post-run pain level at which encouragement gives
// way to rest advice regardless of how the pace compares.
const painConcernLevel = 6

// Category classifies a run's pace relative to the runner's own baseline.
type Category int

const (
	VeryFast Category = iota
	Fast
	Normal
	Easy
	Recovery
)

// DisplayName returns a label suitable for UI surfaces.
func (c Category) DisplayName() string {
	switch c {
	case VeryFast:
		return "Very Fast"
	case Fast:
		return "Fast"
	case Normal:
		return "Normal"
	case Easy:
		return "Easy"
	case Recovery:
		return "Recovery"
	}
	return "Unknown"
}

// Description returns the one-line effort summary for the category.
func (c Category) Description() string {
	switch c {
	case VeryFast:
		return "This was a hard effort for you"
	case Fast:
		return "This was faster than your usual pace"
	case Normal:
		return "This was your typical training pace"
	case Easy:
		return "This was an easy effort for you"
	case Recovery:
		return "This was a nice recovery pace"
	}
	return ""
}

// Advice returns the default coaching line for the category.
func (c Category) Advice() string {
	switch c {
	case VeryFast:
		return "Great work! Make sure to balance hard efforts with easy days."
	case Fast:
		return "Nice pickup! Remember to recover properly before your next hard run."
	case Normal:
		return "Solid run at your comfortable pace. Perfect for building fitness."
	case Easy:
		return "Perfect! Easy runs build your aerobic base safely."
	case Recovery:
		return "Smart pacing! Recovery runs help you adapt and improve."
	}
	return ""
}

// Analyzer classifies run paces against the runner's rolling baseline.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates an analyzer using the wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// NewAnalyzerWithClock creates an analyzer with an injected clock for tests.
func NewAnalyzerWithClock(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

// Baseline computes the runner's distance-weighted average pace over the
// trailing 8 weeks. It requires at least 3 runs in the window; otherwise it
// reports false.
func (a *Analyzer) Baseline(runs []engine.RunSummary) (Pace, bool) {
	if len(runs) < baselineMinRuns {
		return Pace{}, false
	}

	cutoff := a.now().AddDate(0, 0, -baselineWeeks*7)
	var relevant []engine.RunSummary
	for _, r := range runs {
		if !r.Date.Before(cutoff) {
			relevant = append(relevant, r)
		}
	}
	if len(relevant) < baselineMinRuns {
		return Pace{}, false
	}

	return weightedPace(relevant)
}

// weightedPace is total duration over total distance, so longer runs weigh
// more than short ones.
func weightedPace(runs []engine.RunSummary) (Pace, bool) {
	var totalKm, totalSec float64
	for _, r := range runs {
		totalKm += r.DistanceKm
		totalSec += r.DurationMinutes * 60
	}
	if totalKm <= 0 {
		return Pace{}, false
	}
	return FromKm(totalKm, totalSec), true
}

// Categorize buckets a pace by its percent difference from the baseline:
// below -15% veryFast, [-15,-5) fast, [-5,5] normal, (5,15) easy, 15% and
// beyond recovery.
func Categorize(p, baseline Pace) Category {
	diff := p.PercentDiff(baseline)
	switch {
	case diff < -15:
		return VeryFast
	case diff < -5:
		return Fast
	case diff <= 5:
		return Normal
	case diff < 15:
		return Easy
	default:
		return Recovery
	}
}

// Encouragement picks the feedback line for a categorized run. Pain at or
// above the concern level overrides everything with rest advice. A zero
// difficulty means the runner skipped the rating and only the category
// default applies.
func Encouragement(category Category, difficulty, painLevel int) string {
	if painLevel >= painConcernLevel {
		return "Listen to your body. Rest and recovery are part of training!"
	}

	if difficulty > 0 {
		if (category == Fast || category == VeryFast) && difficulty <= 2 {
			return "Amazing! You're getting stronger - this pace felt easier than before!"
		}
		if (category == Easy || category == Recovery) && difficulty >= 4 {
			return "This felt harder than usual. Make sure you're getting enough rest and recovery."
		}
		if category == Normal && difficulty == 3 {
			return "Perfect balance! This is exactly the kind of sustainable training that builds fitness."
		}
	}

	return category.Advice()
}

// ShouldSuggestUpgrade reports whether the runner's pace has improved enough
// to suggest a level up: at least 10 runs, with the distance-weighted pace of
// the latest 5 at least 10% faster than that of the earliest 5.
func ShouldSuggestUpgrade(runs []engine.RunSummary) bool {
	if len(runs) < upgradeMinRuns {
		return false
	}

	sorted := make([]engine.RunSummary, len(runs))
	copy(sorted, runs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	earlyPace, okEarly := weightedPace(sorted[:5])
	latePace, okLate := weightedPace(sorted[len(sorted)-5:])
	if !okEarly || !okLate {
		return false
	}

	return latePace.PercentDiff(earlyPace) < -upgradeImprovementPct
}
