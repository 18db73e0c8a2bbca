package store

import (
	"encoding/json"
	"time"

	"runright/internal/engine"
)

// Run is a persisted run record with the runner's post-run feedback.
type Run struct {
	ID              string
	Date            time.Time
	DurationMinutes float64
	DistanceKm      float64
	Difficulty      int
	PainLevel       int
	PainAreas       []string
	Notes           string
}

// Summary converts the record into the engine's immutable snapshot form.
func (r Run) Summary() engine.RunSummary {
	return engine.RunSummary{
		Date:            r.Date,
		DurationMinutes: r.DurationMinutes,
		DistanceKm:      r.DistanceKm,
		Difficulty:      r.Difficulty,
		PainLevel:       r.PainLevel,
		PainAreas:       r.PainAreas,
	}
}

// CheckIn is the persisted daily check-in, keyed by local calendar day.
type CheckIn struct {
	Day          string // YYYY-MM-DD
	Soreness     int
	SleepQuality int
	PainLevel    int
	PainAreas    []string
}

// Today converts the record into the engine's check-in form.
func (c CheckIn) Today() engine.TodayCheckIn {
	return engine.TodayCheckIn{
		Soreness:     c.Soreness,
		SleepQuality: c.SleepQuality,
		PainLevel:    c.PainLevel,
		PainAreas:    c.PainAreas,
	}
}

// DayKey formats a timestamp as the check-in table's local calendar day key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Pain areas are stored as a JSON array in a TEXT column.

func encodeAreas(areas []string) (string, error) {
	if len(areas) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(areas)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeAreas(s string) ([]string, error) {
	if s == "" || s == "[]" {
		return nil, nil
	}
	var areas []string
	if err := json.Unmarshal([]byte(s), &areas); err != nil {
		return nil, err
	}
	return areas, nil
}
