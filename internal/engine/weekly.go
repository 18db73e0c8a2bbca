package engine

// WeeklyStats aggregates the runs that fall within the trailing 7 calendar
// days. Means are 0 for an empty window; there is no division fault.
func (e *Engine) WeeklyStats(runs []RunSummary) WeeklyStats {
	weekAgo := e.now().AddDate(0, 0, -7)

	var stats WeeklyStats
	var difficultyTotal float64
	for _, r := range runs {
		if r.Date.Before(weekAgo) {
			continue
		}
		stats.TotalDistanceKm += r.DistanceKm
		difficultyTotal += float64(r.Difficulty)
		stats.RunCount++
	}

	if stats.RunCount > 0 {
		stats.AvgDistanceKm = stats.TotalDistanceKm / float64(stats.RunCount)
		stats.AvgDifficulty = difficultyTotal / float64(stats.RunCount)
	}
	return stats
}

// SafeWeeklyMax is a heuristic ceiling on weekly distance: the greater of
// 1.5x the typical historical weekly volume and the recent average session
// size scaled to the runs-per-week target with a 10% allowance. It guards
// against sudden training-load spikes and is derived fresh on each call,
// never stored.
func (e *Engine) SafeWeeklyMax(profile RunnerProfile, avgRecentDistance float64) float64 {
	historical := profile.TypicalWeeklyKm * e.cfg.SafeWeeklyMultiplier
	recent := avgRecentDistance * float64(profile.RunsPerWeek) * 1.1
	if historical > recent {
		return historical
	}
	return recent
}
