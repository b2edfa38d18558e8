// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadEnemyDefinitions reads an enemy configuration file and replaces the
// built-in EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if err := validateEnemy(def); err != nil {
			return err
		}
		lib[def.ID] = def
	}
	EnemyLibrary = lib
	return nil
}

// LoadWavePatterns reads a wave configuration file and replaces the
// built-in WavePatterns table.
func LoadWavePatterns(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read wave patterns file: %w", err)
	}

	var patterns map[int]WaveDefinition
	if err := json.Unmarshal(file, &patterns); err != nil {
		return fmt.Errorf("failed to unmarshal wave patterns: %w", err)
	}

	for number, def := range patterns {
		if def.Count <= 0 {
			return fmt.Errorf("wave %d: count must be positive, got %d", number, def.Count)
		}
		if def.SpawnInterval <= 0 {
			return fmt.Errorf("wave %d: spawn interval must be positive, got %s", number, def.SpawnInterval)
		}
		if len(def.EnemyIDs) == 0 {
			return fmt.Errorf("wave %d: no enemy types listed", number)
		}
	}
	WavePatterns = patterns
	return nil
}

func validateEnemy(def EnemyDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("enemy definition with empty id")
	}
	if def.Health <= 0 {
		return fmt.Errorf("enemy %s: health must be positive, got %d", def.ID, def.Health)
	}
	if def.Speed < 0 {
		return fmt.Errorf("enemy %s: speed must not be negative, got %g", def.ID, def.Speed)
	}
	if def.Visuals.Width <= 0 || def.Visuals.Height <= 0 {
		return fmt.Errorf("enemy %s: visual size must be positive", def.ID)
	}
	switch def.Pattern {
	case PatternSideToSide, PatternDownward, PatternZigzag, PatternStationary:
	default:
		return fmt.Errorf("enemy %s: unknown movement pattern %q", def.ID, def.Pattern)
	}
	return nil
}
