package engine

import "fmt"

// Explain renders the rationale for a session. Distances are shown in the
// profile's preferred unit to one decimal; for goal-aware easy runs the
// message includes percent progress toward the goal distance, capped at 100.
func (e *Engine) Explain(sessionType SessionType, profile RunnerProfile, targetDistance, readiness float64, weekly WeeklyStats) string {
	displayStr := fmt.Sprintf("%.1f %s", profile.DistanceUnit.Display(targetDistance), profile.DistanceUnit.Label())

	switch sessionType {
	case SessionEasyRun:
		if goalDistance, ok := profile.GoalDistanceKm(); ok {
			progress := int(targetDistance / goalDistance * 100)
			if progress > 100 {
				progress = 100
			}
			return fmt.Sprintf("Easy run of %s. You're %d%% of the way to your %s goal distance. Keep it conversational!",
				displayStr, progress, profile.PrimaryGoal.DisplayName())
		}
		return fmt.Sprintf("Easy run of %s. Focus on keeping a comfortable pace where you can hold a conversation.", displayStr)

	case SessionNormalRun:
		return fmt.Sprintf("Normal run of %s. You're feeling good today - enjoy a solid effort at your comfortable pace.", displayStr)

	case SessionLongRun:
		return fmt.Sprintf("Long run of %s. This builds your endurance! Start slow and stay relaxed.", displayStr)

	case SessionTempoRun:
		return fmt.Sprintf("Tempo run of %s. Push yourself to a comfortably hard pace - challenging but sustainable.", displayStr)

	case SessionIntervals:
		return "Interval workout. Warm up, then alternate between hard efforts and recovery."

	case SessionFullRest:
		return "Rest day. Your body builds fitness during recovery!"

	case SessionStrengthMobility:
		return "Light stretching and mobility work today. Give your legs a break."

	case SessionRestWithInjuryAdvice:
		return "Rest and monitor your pain. If it persists, consider seeing a professional."

	case SessionNeedsMoreRuns:
		return "Complete a few more runs so we can personalize your training."
	}

	return ""
}
