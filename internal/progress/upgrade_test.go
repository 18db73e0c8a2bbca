package progress

import (
	"testing"
	"time"

	"runright/internal/engine"
)

var upgradeBase = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

// growthRuns builds a history whose earliest run is firstKm and latest run
// is lastKm, spread evenly over spanDays.
func growthRuns(count, spanDays int, firstKm, lastKm float64) []engine.RunSummary {
	runs := make([]engine.RunSummary, count)
	for i := range runs {
		frac := float64(i) / float64(count-1)
		runs[i] = engine.RunSummary{
			Date:       upgradeBase.AddDate(0, 0, int(frac*float64(spanDays))),
			DistanceKm: firstKm + (lastKm-firstKm)*frac,
		}
	}
	return runs
}

func TestEvaluate_AllCriteriaMet(t *testing.T) {
	e := NewUpgradeEvaluator()
	beginner := engine.RunnerProfile{ExperienceLevel: engine.Beginner}

	if !e.Evaluate(beginner, growthRuns(6, 90, 2.0, 5.0)) {
		t.Fatal("expected a pending suggestion")
	}

	level, ok := e.Pending()
	if !ok || level != engine.Intermediate {
		t.Errorf("Pending() = %v, %v, want intermediate pending", level, ok)
	}
}

func TestEvaluate_EachViolationSuppresses(t *testing.T) {
	beginner := engine.RunnerProfile{ExperienceLevel: engine.Beginner}

	tests := []struct {
		name    string
		profile engine.RunnerProfile
		runs    []engine.RunSummary
	}{
		{"not a beginner", engine.RunnerProfile{ExperienceLevel: engine.Intermediate}, growthRuns(6, 90, 2.0, 5.0)},
		{"too few runs", beginner, growthRuns(4, 90, 2.0, 5.0)},
		{"span under sixty days", beginner, growthRuns(6, 59, 2.0, 5.0)},
		{"ratio under two and a half", beginner, growthRuns(6, 90, 2.0, 4.9)},
		{"earliest distance is zero", beginner, growthRuns(6, 90, 0, 5.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewUpgradeEvaluator()
			if e.Evaluate(tt.profile, tt.runs) {
				t.Error("suggestion should be suppressed")
			}
			if _, ok := e.Pending(); ok {
				t.Error("nothing should be pending")
			}
		})
	}
}

func TestEvaluate_RatioBoundaryIsInclusive(t *testing.T) {
	e := NewUpgradeEvaluator()
	beginner := engine.RunnerProfile{ExperienceLevel: engine.Beginner}

	if !e.Evaluate(beginner, growthRuns(6, 60, 2.0, 5.0)) {
		t.Error("exactly 2.5x over exactly 60 days should still suggest")
	}
}

func TestAcceptAndDismiss(t *testing.T) {
	beginner := engine.RunnerProfile{ExperienceLevel: engine.Beginner}

	t.Run("accept resolves and reports the level", func(t *testing.T) {
		e := NewUpgradeEvaluator()
		e.Evaluate(beginner, growthRuns(6, 90, 2.0, 5.0))

		level, ok := e.Accept()
		if !ok || level != engine.Intermediate {
			t.Fatalf("Accept() = %v, %v, want intermediate", level, ok)
		}
		if _, still := e.Pending(); still {
			t.Error("accepting must clear the suggestion")
		}
	})

	t.Run("dismiss clears without acting", func(t *testing.T) {
		e := NewUpgradeEvaluator()
		e.Evaluate(beginner, growthRuns(6, 90, 2.0, 5.0))

		e.Dismiss()
		if _, still := e.Pending(); still {
			t.Error("dismissing must clear the suggestion")
		}
		if _, ok := e.Accept(); ok {
			t.Error("accept after dismiss must report nothing pending")
		}
	})

	t.Run("accept with nothing pending is a no-op", func(t *testing.T) {
		e := NewUpgradeEvaluator()
		if _, ok := e.Accept(); ok {
			t.Error("nothing should be pending")
		}
		e.Dismiss()
	})
}
