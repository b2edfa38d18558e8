package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Health        int             `json:"health"`
	Speed         float64         `json:"speed"`
	Pattern       MovementPattern `json:"pattern"`
	ContactDamage int             `json:"contact_damage"`
	ScoreValue    int             `json:"score_value"`
	FireInterval  float64         `json:"fire_interval"` // seconds between shots, 0 = never fires
	Visuals       Visuals         `json:"visuals"`
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
// The built-in table can be replaced wholesale by LoadEnemyDefinitions.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_SCOUT": {
		ID: "ENEMY_SCOUT", Name: "Scout",
		Health: 25, Speed: 120, Pattern: PatternSideToSide,
		ContactDamage: 1, ScoreValue: 100,
		Visuals: Visuals{ColorIndex: 0, Width: 28, Height: 20},
	},
	"ENEMY_DIVER": {
		ID: "ENEMY_DIVER", Name: "Diver",
		Health: 50, Speed: 90, Pattern: PatternDownward,
		ContactDamage: 1, ScoreValue: 150,
		Visuals: Visuals{ColorIndex: 1, Width: 24, Height: 26},
	},
	"ENEMY_WEAVER": {
		ID: "ENEMY_WEAVER", Name: "Weaver",
		Health: 40, Speed: 70, Pattern: PatternZigzag,
		ContactDamage: 1, ScoreValue: 200,
		Visuals: Visuals{ColorIndex: 2, Width: 26, Height: 22},
	},
	"ENEMY_TURRET": {
		ID: "ENEMY_TURRET", Name: "Turret",
		Health: 80, Speed: 0, Pattern: PatternStationary,
		ContactDamage: 1, ScoreValue: 250, FireInterval: 1.4,
		Visuals: Visuals{ColorIndex: 3, Width: 30, Height: 30},
	},
}
