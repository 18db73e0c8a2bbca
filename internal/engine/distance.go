package engine

import "math"

// TargetDistance computes the next session's distance in km, rounded to one
// decimal. Goal-aware progression steps toward the goal distance in caps
// keyed to how close the runner already is; goal-less progression adds a
// flat per-level increment when readiness allows. Safety clamps apply in
// order: remaining weekly budget, the sudden-jump ceiling, the beginner
// long-run cap, and finally the minimum safe distance floor.
func (e *Engine) TargetDistance(profile RunnerProfile, avgRecentDistance, remainingWeeklyBudget, readiness float64) float64 {
	isBeginner := profile.ExperienceLevel == Beginner

	baseDistance := avgRecentDistance

	if goalDistance, ok := profile.GoalDistanceKm(); ok {
		progress := avgRecentDistance / goalDistance

		switch {
		case progress < 0.5:
			increment := 0.5
			if isBeginner {
				increment = 0.3
			}
			baseDistance = math.Min(avgRecentDistance+increment, goalDistance*0.6)
		case progress < 0.8:
			increment := 0.8
			if isBeginner {
				increment = 0.5
			}
			baseDistance = math.Min(avgRecentDistance+increment, goalDistance*0.9)
		default:
			baseDistance = math.Min(avgRecentDistance*1.05, goalDistance)
		}
	} else if readiness >= e.cfg.ReadinessEasyRun {
		increment := e.cfg.NormalIncrementKm
		if isBeginner {
			increment = e.cfg.BeginnerIncrementKm
		}
		baseDistance = avgRecentDistance + increment
	}

	var multiplier float64
	switch {
	case readiness >= 80:
		multiplier = 1.1
	case readiness >= e.cfg.ReadinessEasyRun:
		multiplier = 1.0
	case readiness >= e.cfg.ReadinessLightActivity:
		multiplier = 0.7
	default:
		multiplier = 0.5
	}

	target := baseDistance * multiplier

	target = math.Min(target, remainingWeeklyBudget)

	maxSafeIncrease := avgRecentDistance * (1 + e.cfg.MaxWeeklyIncreasePct*2)
	target = math.Min(target, maxSafeIncrease)

	if isBeginner {
		target = math.Min(target, math.Max(profile.LongestRunKm*1.1, 5.0))
	}

	target = math.Max(e.cfg.MinRunDistanceKm, target)

	return math.Round(target*10) / 10
}
