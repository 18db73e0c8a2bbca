package service

// Input bounds applied at the entry surfaces. The engine itself assumes
// validated values, so nothing past these limits may reach it.
const (
	// MaxRunDistanceKm is the longest single run accepted from input.
	MaxRunDistanceKm = 500.0

	// MaxWeeklyDistanceKm is the largest typical weekly volume accepted.
	MaxWeeklyDistanceKm = 300.0

	// MaxRunDurationMinutes caps a single logged run's duration.
	MaxRunDurationMinutes = 24 * 60.0
)

// DefaultRecentRunsLimit is how many recent runs feed the engine when the
// config doesn't override it.
const DefaultRecentRunsLimit = 50

// ChartWeeks is the number of weekly buckets on the dashboard chart.
const ChartWeeks = 8
