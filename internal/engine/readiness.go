package engine

// Readiness estimates how recovered the runner is today as a 0-100 score.
//
//	base 50
//	+ days since last run x rest bonus x experience factor
//	+ sleep quality bonus - soreness impact - current pain impact (check-in only)
//	- last session load (difficulty x minutes) x load factor
//	- last run pain x 5 x pain penalty factor
//
// The result is clamped to [0, 100] regardless of input magnitude.
func (e *Engine) Readiness(profile RunnerProfile, lastRun RunSummary, today *TodayCheckIn) float64 {
	daysSinceLastRun := daysBetween(lastRun.Date, e.now())

	sessionLoad := float64(lastRun.Difficulty) * lastRun.DurationMinutes
	painPenalty := float64(lastRun.PainLevel) * 5.0

	restScore := float64(daysSinceLastRun) * e.cfg.RestDayBonus
	expFactor := e.cfg.experienceFactor(profile.ExperienceLevel)

	var todayModifier float64
	if today != nil {
		todayModifier -= float64(today.Soreness) * e.cfg.SorenessImpact
		todayModifier += float64(today.SleepQuality) * e.cfg.SleepQualityBonus
		todayModifier -= float64(today.PainLevel) * e.cfg.PainImpact
	}

	readiness := 50.0
	readiness += restScore * expFactor
	readiness += todayModifier
	readiness -= sessionLoad * e.cfg.SessionLoadFactor
	readiness -= painPenalty * e.cfg.PainPenaltyFactor

	return clamp(readiness, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
