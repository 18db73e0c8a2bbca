package engine

// Config carries every threshold, weight, and increment the engine uses.
// Passing it in (rather than compiling constants into the decision code)
// keeps the engine deterministic and lets tests override single knobs.
type Config struct {
	// RequiredRuns is the minimum history size before personalized
	// recommendations unlock.
	RequiredRuns int

	// Readiness band boundaries.
	ReadinessFullRest      float64 // below: complete rest day
	ReadinessLightActivity float64 // below: mobility work / short recovery run
	ReadinessEasyRun       float64 // below: easy run; at or above: normal pace work
	ReadinessNormalRun     float64 // at or above: normal run
	ReadinessTempoRun      float64 // at or above (plus goal/level gates): tempo run

	// Readiness formula weights.
	RestDayBonus      float64 // points gained per full rest day
	SorenessImpact    float64 // per point on the 0-10 soreness scale
	SleepQualityBonus float64 // per point on the 1-5 sleep scale
	PainImpact        float64 // per point of current pain
	SessionLoadFactor float64 // applied to difficulty x duration of the last run
	PainPenaltyFactor float64 // applied to the last run's pain penalty

	// Recovery multipliers by experience level.
	ExperienceFactors map[ExperienceLevel]float64

	// Injury guard thresholds.
	CriticalPain  int      // triggers complete rest
	ModeratePain  int      // triggers rest when paired with a high-risk area
	HighRiskAreas []string // injury-prone body parts

	// Distance progression.
	BeginnerIncrementKm float64
	NormalIncrementKm   float64
	MinRunDistanceKm    float64

	// Weekly load safety.
	SafeWeeklyMultiplier  float64 // applied to the typical historical weekly volume
	MaxWeeklyIncreasePct  float64 // base percentage for the sudden-jump ceiling
	TempoMinWeeklyRuns    int     // runs this week required before a tempo session
	TempoMaxAvgDifficulty float64 // weekly difficulty ceiling for a tempo session
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		RequiredRuns: 3,

		ReadinessFullRest:      20,
		ReadinessLightActivity: 40,
		ReadinessEasyRun:       60,
		ReadinessNormalRun:     70,
		ReadinessTempoRun:      75,

		RestDayBonus:      10.0,
		SorenessImpact:    2.0,
		SleepQualityBonus: 3.0,
		PainImpact:        3.0,
		SessionLoadFactor: 0.3,
		PainPenaltyFactor: 0.5,

		ExperienceFactors: map[ExperienceLevel]float64{
			Beginner:     0.7,
			Intermediate: 1.0,
			Advanced:     1.3,
		},

		CriticalPain:  8,
		ModeratePain:  6,
		HighRiskAreas: []string{"Knees", "Shins", "Achilles"},

		BeginnerIncrementKm: 0.5,
		NormalIncrementKm:   1.0,
		MinRunDistanceKm:    2.0,

		SafeWeeklyMultiplier:  1.5,
		MaxWeeklyIncreasePct:  0.10,
		TempoMinWeeklyRuns:    2,
		TempoMaxAvgDifficulty: 3.5,
	}
}

// experienceFactor returns the recovery multiplier for a level, defaulting
// to the intermediate baseline for unknown values.
func (c Config) experienceFactor(level ExperienceLevel) float64 {
	if f, ok := c.ExperienceFactors[level]; ok {
		return f
	}
	return 1.0
}
