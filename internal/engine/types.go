package engine

import "time"

// ExperienceLevel is the runner's self-reported training experience.
type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "beginner"
	Intermediate ExperienceLevel = "intermediate"
	Advanced     ExperienceLevel = "advanced"
)

// DisplayName returns a label suitable for UI surfaces.
func (l ExperienceLevel) DisplayName() string {
	switch l {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	}
	return string(l)
}

// DistanceUnit is the user's preferred display unit. All internal math is
// kilometers; the unit only affects rendered output.
type DistanceUnit string

const (
	Kilometers DistanceUnit = "kilometers"
	Miles      DistanceUnit = "miles"
)

// KmToMiles converts a kilometer distance to miles.
const KmToMiles = 0.621371

// Display converts a kilometer value into the unit's display value.
func (u DistanceUnit) Display(km float64) float64 {
	if u == Miles {
		return km * KmToMiles
	}
	return km
}

// Label returns the short unit label ("km" or "mi").
func (u DistanceUnit) Label() string {
	if u == Miles {
		return "mi"
	}
	return "km"
}

// PrimaryGoal is the runner's declared training goal.
type PrimaryGoal string

const (
	GoalNone           PrimaryGoal = "none"
	GoalGeneralFitness PrimaryGoal = "generalFitness"
	GoalWeightLoss     PrimaryGoal = "weightLoss"
	GoalRace5K         PrimaryGoal = "race5k"
	GoalRace10K        PrimaryGoal = "race10k"
	GoalRaceHalf       PrimaryGoal = "raceHalfMarathon"
	GoalRaceMarathon   PrimaryGoal = "raceMarathon"
	GoalPersonalBest   PrimaryGoal = "personalBest"
)

// DisplayName returns a label suitable for UI surfaces.
func (g PrimaryGoal) DisplayName() string {
	switch g {
	case GoalNone:
		return "None"
	case GoalGeneralFitness:
		return "General Fitness"
	case GoalWeightLoss:
		return "Weight Loss"
	case GoalRace5K:
		return "5k Race"
	case GoalRace10K:
		return "10k Race"
	case GoalRaceHalf:
		return "Half Marathon"
	case GoalRaceMarathon:
		return "Marathon"
	case GoalPersonalBest:
		return "Personal Best"
	}
	return string(g)
}

// raceDistanceKm returns the standard race distance for race goals.
func (g PrimaryGoal) raceDistanceKm() (float64, bool) {
	switch g {
	case GoalRace5K:
		return 5.0, true
	case GoalRace10K:
		return 10.0, true
	case GoalRaceHalf:
		return 21.1, true
	case GoalRaceMarathon:
		return 42.2, true
	}
	return 0, false
}

// TargetDistanceKm resolves the numeric goal distance. Standard race goals
// use the fixed race table; a personal-best goal uses the user-supplied
// custom distance. Other goals have no numeric distance.
func (g PrimaryGoal) TargetDistanceKm(customKm float64) (float64, bool) {
	if km, ok := g.raceDistanceKm(); ok {
		return km, true
	}
	if g == GoalPersonalBest && customKm > 0 {
		return customKm, true
	}
	return 0, false
}

// IsRaceOrPB reports whether the goal is race or personal-best oriented.
func (g PrimaryGoal) IsRaceOrPB() bool {
	switch g {
	case GoalRace5K, GoalRace10K, GoalRaceHalf, GoalRaceMarathon, GoalPersonalBest:
		return true
	}
	return false
}

// RunnerProfile is the runner's settings snapshot. The engine only reads it;
// mutations happen through explicit update operations on the settings surface.
type RunnerProfile struct {
	ID              string
	DisplayName     string
	ExperienceLevel ExperienceLevel
	DistanceUnit    DistanceUnit
	PrimaryGoal     PrimaryGoal
	CustomGoalKm    float64 // only meaningful for GoalPersonalBest
	RunsPerWeek     int
	LongestRunKm    float64
	TypicalWeeklyKm float64
	GoalDescription string
	CreatedAt       time.Time
}

// GoalDistanceKm resolves the profile's numeric goal distance, if any.
func (p RunnerProfile) GoalDistanceKm() (float64, bool) {
	return p.PrimaryGoal.TargetDistanceKm(p.CustomGoalKm)
}

// RunSummary is an immutable snapshot of one completed run.
type RunSummary struct {
	Date            time.Time
	DurationMinutes float64
	DistanceKm      float64
	Difficulty      int // 1-5, 3 if the runner skipped the rating
	PainLevel       int // 0-10
	PainAreas       []string
}

// TodayCheckIn is the runner's same-day subjective state. Its absence is
// valid and treated as a set of zero-effect defaults.
type TodayCheckIn struct {
	Soreness     int // 0-10
	SleepQuality int // 1-5
	PainLevel    int // 0-10
	PainAreas    []string
}

// SessionType is the discrete category of the prescribed session.
type SessionType int

const (
	SessionFullRest SessionType = iota
	SessionEasyRun
	SessionNormalRun
	SessionLongRun
	SessionTempoRun
	SessionIntervals
	SessionStrengthMobility
	SessionRestWithInjuryAdvice
	SessionNeedsMoreRuns
)

// String returns the stable tag for the session type.
func (t SessionType) String() string {
	switch t {
	case SessionFullRest:
		return "fullRest"
	case SessionEasyRun:
		return "easyRun"
	case SessionNormalRun:
		return "normalRun"
	case SessionLongRun:
		return "longRun"
	case SessionTempoRun:
		return "tempoRun"
	case SessionIntervals:
		return "intervals"
	case SessionStrengthMobility:
		return "strengthAndMobility"
	case SessionRestWithInjuryAdvice:
		return "restWithInjuryAdvice"
	case SessionNeedsMoreRuns:
		return "needsMoreRuns"
	}
	return "unknown"
}

// DisplayName returns a label suitable for UI surfaces.
func (t SessionType) DisplayName() string {
	switch t {
	case SessionFullRest:
		return "Rest Day"
	case SessionEasyRun:
		return "Easy Run"
	case SessionNormalRun:
		return "Normal Run"
	case SessionLongRun:
		return "Long Run"
	case SessionTempoRun:
		return "Tempo Run"
	case SessionIntervals:
		return "Intervals"
	case SessionStrengthMobility:
		return "Strength & Mobility"
	case SessionRestWithInjuryAdvice:
		return "Rest (Injury Caution)"
	case SessionNeedsMoreRuns:
		return "Building Baseline"
	}
	return "Unknown"
}

// IsRest reports whether the session prescribes no running distance.
func (t SessionType) IsRest() bool {
	switch t {
	case SessionFullRest, SessionStrengthMobility, SessionRestWithInjuryAdvice, SessionNeedsMoreRuns:
		return true
	}
	return false
}

// SessionRecommendation is the engine's single output value. It is produced
// fresh on every invocation and never mutated afterward.
type SessionRecommendation struct {
	Type        SessionType
	DistanceKm  float64 // 0 when HasDistance is false
	HasDistance bool
	Explanation string
	Warnings    []string
}

// WeeklyStats aggregates the trailing 7 calendar days of running.
type WeeklyStats struct {
	TotalDistanceKm float64
	RunCount        int
	AvgDistanceKm   float64
	AvgDifficulty   float64
}
