package performance

// Load buckets the estimated script cost.
type Load string

const (
	LoadLow      Load = "low"
	LoadMedium   Load = "medium"
	LoadHigh     Load = "high"
	LoadCritical Load = "critical"
)

// String returns the string representation.
func (l Load) String() string {
	return string(l)
}

// Weights are the per-counter cost factors and classification boundaries.
type Weights struct {
	Event     float64 `json:"event"`
	Condition float64 `json:"condition"`
	Timer     float64 `json:"timer"`
	Spawner   float64 `json:"spawner"`

	MediumScore   float64 `json:"medium_score"`
	HighScore     float64 `json:"high_score"`
	CriticalScore float64 `json:"critical_score"`
}

// DefaultWeights returns the standard cost model.
func DefaultWeights() Weights {
	return Weights{
		Event:         1,
		Condition:     0.5,
		Timer:         2,
		Spawner:       3,
		MediumScore:   20,
		HighScore:     50,
		CriticalScore: 100,
	}
}

// Metrics is the derived performance profile of a script. It is recomputed
// on every run and never persisted.
type Metrics struct {
	Events              int      `json:"events"`
	ConditionComplexity int      `json:"condition_complexity"`
	Timers              int      `json:"timers"`
	Spawners            int      `json:"spawners"`
	Score               float64  `json:"score"`
	Load                Load     `json:"estimated_load"`
	Suggestions         []string `json:"suggestions,omitempty"`
}
