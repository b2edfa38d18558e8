// internal/app/listener.go
package app

import (
	"go-arcade-shooter/internal/audio"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/pkg/geom"
	"math"
)

// GameEventListener реагирует на игровые события и обновляет состояние Game.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.EnemyDestroyed:
		data, ok := e.Data.(event.EnemyDestroyedData)
		if !ok {
			return
		}
		if data.ScoreValue > 0 {
			mult := g.DifficultySystem.Step().ScoreMult
			g.Score.Add(int(math.Round(float64(data.ScoreValue) * mult)))
		}
		g.ExplosionSystem.Burst(geom.V(data.X, data.Y), config.ExplosionLifetime, 26)
		g.Audio.Play(audio.SoundExplosion)

	case event.PlayerHit:
		if g.GameOver {
			return
		}
		data, _ := e.Data.(event.PlayerHitData)
		damage := data.Damage
		if damage < 1 {
			damage = 1
		}
		g.Lives -= damage
		g.Ship.HitCooldown = config.PlayerHitCooldown
		g.Audio.Play(audio.SoundPlayerHit)
		if g.Lives <= 0 {
			g.Lives = 0
			g.GameOver = true
			g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
			g.Audio.Play(audio.SoundGameOver)
		}

	case event.WaveStarted:
		g.Audio.Play(audio.SoundWaveStart)

	case event.WaveCompleted:
		g.waveDelay = config.WaveStartDelay
	}
}
