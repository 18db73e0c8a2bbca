package pace

import (
	"strings"
	"testing"
	"time"

	"runright/internal/engine"
)

var analyzerNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testAnalyzer() *Analyzer {
	return NewAnalyzerWithClock(func() time.Time { return analyzerNow })
}

func runAt(daysAgo int, distanceKm, durationMin float64) engine.RunSummary {
	return engine.RunSummary{
		Date:            analyzerNow.AddDate(0, 0, -daysAgo),
		DistanceKm:      distanceKm,
		DurationMinutes: durationMin,
	}
}

func TestBaseline_RequiresThreeRecentRuns(t *testing.T) {
	a := testAnalyzer()

	if _, ok := a.Baseline(nil); ok {
		t.Error("no runs should yield no baseline")
	}
	if _, ok := a.Baseline([]engine.RunSummary{runAt(1, 5, 25), runAt(3, 5, 25)}); ok {
		t.Error("two runs should yield no baseline")
	}

	// Three runs total but one falls outside the eight-week window.
	stale := []engine.RunSummary{runAt(1, 5, 25), runAt(3, 5, 25), runAt(63, 5, 25)}
	if _, ok := a.Baseline(stale); ok {
		t.Error("runs outside the window must not count toward the minimum")
	}
}

func TestBaseline_DistanceWeighted(t *testing.T) {
	a := testAnalyzer()

	// 10 km at 360 sec/km, 5 km at 240, 5 km at 300:
	// 20 km over 6300 sec = 315 sec/km.
	runs := []engine.RunSummary{
		runAt(2, 10, 60),
		runAt(5, 5, 20),
		runAt(9, 5, 25),
	}

	got, ok := a.Baseline(runs)
	if !ok {
		t.Fatal("expected a baseline")
	}
	if got.SecPerKm != 315 {
		t.Errorf("baseline = %v sec/km, want 315", got.SecPerKm)
	}
}

func TestCategorize(t *testing.T) {
	baseline := FromSecPerKm(360)

	tests := []struct {
		name     string
		secPerKm float64
		want     Category
	}{
		{"well past the fast threshold", 305, VeryFast},
		{"exactly fifteen percent faster", 306, Fast},
		{"moderately faster", 340, Fast},
		{"exactly five percent faster", 342, Normal},
		{"at the baseline", 360, Normal},
		{"exactly five percent slower", 378, Normal},
		{"moderately slower", 380, Easy},
		{"just under fifteen percent slower", 413, Easy},
		{"exactly fifteen percent slower", 414, Recovery},
		{"well past the easy threshold", 450, Recovery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(FromSecPerKm(tt.secPerKm), baseline)
			if got != tt.want {
				t.Errorf("Categorize(%v vs 360) = %v, want %v", tt.secPerKm, got.DisplayName(), tt.want.DisplayName())
			}
		})
	}
}

func TestEncouragement(t *testing.T) {
	tests := []struct {
		name       string
		category   Category
		difficulty int
		painLevel  int
		wantSub    string
	}{
		{"pain overrides everything", VeryFast, 1, 6, "Rest and recovery"},
		{"fast run that felt easy", Fast, 2, 0, "getting stronger"},
		{"very fast run that felt easy", VeryFast, 1, 0, "getting stronger"},
		{"easy pace that felt hard", Easy, 4, 0, "felt harder than usual"},
		{"recovery pace that felt hard", Recovery, 5, 0, "felt harder than usual"},
		{"normal pace at moderate effort", Normal, 3, 0, "Perfect balance"},
		{"unrated run falls back to category advice", Normal, 0, 0, "comfortable pace"},
		{"no special combo falls back", Recovery, 2, 0, "Recovery runs help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encouragement(tt.category, tt.difficulty, tt.painLevel)
			if !strings.Contains(got, tt.wantSub) {
				t.Errorf("Encouragement() = %q, want it to contain %q", got, tt.wantSub)
			}
		})
	}
}

func TestShouldSuggestUpgrade(t *testing.T) {
	// Five early runs at 360 sec/km, five late at 300: a 16.7% improvement.
	improved := make([]engine.RunSummary, 0, 10)
	for i := 0; i < 5; i++ {
		improved = append(improved, runAt(50-i, 5, 30))
	}
	for i := 0; i < 5; i++ {
		improved = append(improved, runAt(10-i, 5, 25))
	}

	if !ShouldSuggestUpgrade(improved) {
		t.Error("a 16.7%% pace improvement over ten runs should suggest an upgrade")
	}

	// Order of the input must not matter.
	shuffled := []engine.RunSummary{
		improved[7], improved[2], improved[9], improved[0], improved[4],
		improved[6], improved[1], improved[8], improved[3], improved[5],
	}
	if !ShouldSuggestUpgrade(shuffled) {
		t.Error("upgrade check must sort by date, not input order")
	}

	// Nine runs is below the history requirement.
	if ShouldSuggestUpgrade(improved[1:]) {
		t.Error("fewer than ten runs must not suggest an upgrade")
	}

	// Late runs at 330 sec/km are only an 8.3% improvement.
	modest := make([]engine.RunSummary, 0, 10)
	for i := 0; i < 5; i++ {
		modest = append(modest, runAt(50-i, 5, 30))
	}
	for i := 0; i < 5; i++ {
		modest = append(modest, runAt(10-i, 5, 27.5))
	}
	if ShouldSuggestUpgrade(modest) {
		t.Error("an improvement under ten percent must not suggest an upgrade")
	}

	// Paces getting slower never suggest an upgrade.
	regressed := make([]engine.RunSummary, 0, 10)
	for i := 0; i < 5; i++ {
		regressed = append(regressed, runAt(50-i, 5, 25))
	}
	for i := 0; i < 5; i++ {
		regressed = append(regressed, runAt(10-i, 5, 30))
	}
	if ShouldSuggestUpgrade(regressed) {
		t.Error("a slowing runner must not be suggested an upgrade")
	}
}
