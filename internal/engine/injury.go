package engine

import "strings"

// CheckInjuryRisk gates every recommendation. It returns a terminal rest
// recommendation and true when an override applies; otherwise the zero value
// and false. Rules are evaluated in order and the first match wins. When no
// check-in exists the same-day rules are simply not evaluated.
func (e *Engine) CheckInjuryRisk(lastRun RunSummary, today *TodayCheckIn) (SessionRecommendation, bool) {
	if today != nil {
		if today.PainLevel >= e.cfg.CriticalPain {
			return SessionRecommendation{
				Type:        SessionRestWithInjuryAdvice,
				Explanation: "You reported significant pain. Rest today and consider seeing a doctor if pain persists.",
				Warnings:    []string{"High pain level - do not run"},
			}, true
		}

		if today.PainLevel >= e.cfg.ModeratePain && e.hasHighRiskArea(today.PainAreas) {
			return SessionRecommendation{
				Type:        SessionRestWithInjuryAdvice,
				Explanation: "You have pain in a high-risk area. Rest today to prevent injury.",
				Warnings:    []string{"Pain in critical area - rest recommended"},
			}, true
		}
	}

	if lastRun.PainLevel >= e.cfg.CriticalPain {
		return SessionRecommendation{
			Type:        SessionRestWithInjuryAdvice,
			Explanation: "Your last run caused significant pain. Take a rest day and monitor how you feel.",
			Warnings:    []string{"Previous run caused pain"},
		}, true
	}

	return SessionRecommendation{}, false
}

// hasHighRiskArea matches case-insensitively: pain areas arrive as free
// text from the CLI and TUI forms, not from a fixed picker.
func (e *Engine) hasHighRiskArea(areas []string) bool {
	for _, a := range areas {
		for _, risk := range e.cfg.HighRiskAreas {
			if strings.EqualFold(strings.TrimSpace(a), risk) {
				return true
			}
		}
	}
	return false
}
