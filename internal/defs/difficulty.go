package defs

// DifficultyStep holds the stat multipliers of one difficulty level.
type DifficultyStep struct {
	SpeedMult     float64 `json:"speed_mult"`
	HealthMult    float64 `json:"health_mult"`
	SpawnRateMult float64 `json:"spawn_rate_mult"`
	ScoreMult     float64 `json:"score_mult"`
}

// DifficultySteps is the step table indexed by level-1. Past the last
// entry the controller stays on the final step.
var DifficultySteps = []DifficultyStep{
	{SpeedMult: 1.00, HealthMult: 1.00, SpawnRateMult: 1.00, ScoreMult: 1.0},
	{SpeedMult: 1.10, HealthMult: 1.10, SpawnRateMult: 1.05, ScoreMult: 1.1},
	{SpeedMult: 1.20, HealthMult: 1.25, SpawnRateMult: 1.10, ScoreMult: 1.2},
	{SpeedMult: 1.30, HealthMult: 1.40, SpawnRateMult: 1.20, ScoreMult: 1.35},
	{SpeedMult: 1.40, HealthMult: 1.60, SpawnRateMult: 1.30, ScoreMult: 1.5},
	{SpeedMult: 1.50, HealthMult: 1.80, SpawnRateMult: 1.40, ScoreMult: 1.7},
	{SpeedMult: 1.60, HealthMult: 2.00, SpawnRateMult: 1.55, ScoreMult: 1.9},
	{SpeedMult: 1.70, HealthMult: 2.30, SpawnRateMult: 1.70, ScoreMult: 2.1},
	{SpeedMult: 1.85, HealthMult: 2.60, SpawnRateMult: 1.85, ScoreMult: 2.4},
	{SpeedMult: 2.00, HealthMult: 3.00, SpawnRateMult: 2.00, ScoreMult: 2.8},
}
