// internal/config/config.go
package config

import (
	"image/color"
	"os"
	"strconv"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// Тайминги игрового цикла
	FixedTimeStep     = 1.0 / 60.0
	MaxDeltaTime      = 0.25 // защита от "спирали смерти" после фриза
	MaxUpdatesPerTick = 5

	PlayerSpeedMax      = 420.0 // px/s
	PlayerThrustAccel   = 900.0 // px/s^2 при полной тяге
	PlayerRotationSpeed = 4.5   // рад/с
	PlayerDrag          = 0.02  // доля скорости, остающаяся через секунду без тяги
	PlayerStopThreshold = 2.0   // ниже этой скорости корабль останавливается
	PlayerRadius        = 14.0
	PlayerFireRate      = 0.18 // секунд между выстрелами
	PlayerLives         = 3
	PlayerHitCooldown   = 2.0 // секунды неуязвимости после попадания

	ProjectileSpeed    = 560.0 // pixels per second
	ProjectileRadius   = 4.0
	ProjectileLifetime = 1.6 // seconds of simulation time
	ProjectileDamage   = 25
	ProjectilePoolSize = 64

	EnemyPoolSize        = 48
	EnemyProjectileSpeed = 220.0
	EnemySpawnMarginTop  = -40.0
	EnemyDespawnMargin   = 60.0

	ExplosionPoolSize = 32
	ExplosionLifetime = 0.45

	WaveStartDelay = 2.0 // пауза между волнами, секунды

	DifficultyInterval = 60.0 // секунд игрового времени между шагами сложности
	DifficultyScaling  = 1.15
	DifficultyMaxLevel = 10

	HighScoreFile = "highscores.json"
	HighScoreMax  = 10

	TouchSwipeThreshold = 24.0 // px: меньше — tap, больше — swipe

	IndicatorOffsetX = 16
	IndicatorOffsetY = 24
	LifeIconSize     = 10.0
	LifeIconSpacing  = 6.0

	MusicVolume  = 0.7
	EffectVolume = 0.9
)

var (
	BackgroundColor  = color.RGBA{12, 12, 24, 255}
	StarColor        = color.RGBA{200, 200, 220, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextAccentColor  = color.RGBA{255, 215, 0, 255}
	PlayerColor      = color.RGBA{80, 200, 255, 255}
	PlayerHitColor   = color.RGBA{255, 255, 255, 160}
	ProjectileColor  = color.RGBA{255, 240, 120, 255}
	EnemyShotColor   = color.RGBA{255, 90, 90, 255}
	ExplosionColor   = color.RGBA{255, 160, 40, 255}
	LifeIconColor    = color.RGBA{80, 200, 255, 255}
	ButtonColor      = color.RGBA{70, 100, 120, 220}
	ButtonHoverColor = color.RGBA{90, 130, 160, 220}
	UIBorderColor    = color.RGBA{240, 240, 240, 255}
	EnemyColors      = []color.RGBA{
		{90, 220, 90, 255},   // скаут
		{220, 90, 220, 255},  // дайвер
		{230, 160, 60, 255},  // зигзаг
		{160, 160, 200, 255}, // турель
	}
)

// GetEnv returns the value of an environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// GetEnvBool parses a boolean environment variable.
func GetEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// GetEnvInt parses an integer environment variable.
func GetEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
