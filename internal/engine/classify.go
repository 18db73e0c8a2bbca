package engine

// ClassifySession maps readiness, the distance relationship, and goal
// context to a session type. It is entered only after the injury guard,
// minimum-history gate, and rest gates have passed, so the remaining
// outcomes all prescribe movement.
//
// The intervals category exists in the SessionType enumeration with full
// display and explanation support but no branch here produces it; it is a
// future extension point for structured speedwork.
func (e *Engine) ClassifySession(profile RunnerProfile, readiness, targetDistance, avgRecentDistance float64, weekly WeeklyStats) SessionType {
	isBeginner := profile.ExperienceLevel == Beginner

	if targetDistance > avgRecentDistance*1.2 {
		return SessionLongRun
	}

	if profile.PrimaryGoal.IsRaceOrPB() && readiness >= e.cfg.ReadinessTempoRun && !isBeginner {
		if weekly.RunCount >= e.cfg.TempoMinWeeklyRuns && weekly.AvgDifficulty < e.cfg.TempoMaxAvgDifficulty {
			return SessionTempoRun
		}
	}

	if readiness >= e.cfg.ReadinessNormalRun {
		return SessionNormalRun
	}

	return SessionEasyRun
}
