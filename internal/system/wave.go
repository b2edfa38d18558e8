// internal/system/wave.go
package system

import (
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/utils"
	"go-arcade-shooter/pkg/geom"
)

// SpawnFunc places one enemy into the world. It returns the enemy's
// tracking ID and false when the spawn was skipped (pool exhausted).
type SpawnFunc func(defID string, pos geom.Vec2, scalar float64) (uint64, bool)

// WaveSystem запускает волны по таблице defs.WavePatterns, спавнит врагов
// по таймеру и отслеживает живых по ID. Волна завершена, когда множество
// живых врагов опустело.
type WaveSystem struct {
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	spawn      SpawnFunc
	onComplete func(number int)

	fieldWidth float64
	spawnY     float64

	number     int // последняя запущенная волна
	active     bool
	def        defs.WaveDefinition
	toSpawn    int
	spawned    int
	spawnTimer float64
	alive      map[uint64]struct{}
}

func NewWaveSystem(dispatcher *event.Dispatcher, rng *utils.PRNGService, fieldWidth, spawnY float64, spawn SpawnFunc) *WaveSystem {
	ws := &WaveSystem{
		dispatcher: dispatcher,
		rng:        rng,
		spawn:      spawn,
		fieldWidth: fieldWidth,
		spawnY:     spawnY,
		alive:      make(map[uint64]struct{}),
	}
	dispatcher.Subscribe(event.EnemyDestroyed, ws)
	dispatcher.Subscribe(event.EnemyEscaped, ws)
	return ws
}

// SetCompletionHook installs a hook fired once per completed wave.
func (s *WaveSystem) SetCompletionHook(fn func(number int)) {
	s.onComplete = fn
}

// Number returns the most recently started wave number.
func (s *WaveSystem) Number() int { return s.number }

// Active reports whether a wave is currently running.
func (s *WaveSystem) Active() bool { return s.active }

// Remaining returns how many tracked enemies of the wave are still alive.
func (s *WaveSystem) Remaining() int { return len(s.alive) }

// StartNextWave advances to the next wave. The failure result (not an
// error) covers the two expected refusals: a wave is already active, or
// the table has no entry for the next number.
func (s *WaveSystem) StartNextWave() bool {
	if s.active {
		return false
	}
	def, ok := defs.WavePatterns[s.number+1]
	if !ok {
		return false
	}
	s.number++
	s.def = def
	s.active = true
	s.toSpawn = def.Count
	s.spawned = 0
	s.spawnTimer = 0
	clear(s.alive)
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: s.number}})
	return true
}

// Update accumulates fixed-step time into the spawn timer and checks wave
// completion once per tick. spawnRateMult comes from the difficulty
// controller and shortens the interval.
func (s *WaveSystem) Update(dt float64, spawnRateMult float64) {
	if !s.active {
		return
	}
	if s.toSpawn > 0 {
		interval := s.def.SpawnInterval.Seconds()
		if spawnRateMult > 0 {
			interval /= spawnRateMult
		}
		s.spawnTimer += dt
		if s.spawnTimer >= interval {
			s.spawnOne()
			s.toSpawn--
			s.spawnTimer = 0
		}
		return
	}
	if len(s.alive) == 0 {
		s.active = false
		s.dispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveData{Number: s.number}})
		if s.onComplete != nil {
			s.onComplete(s.number)
		}
	}
}

func (s *WaveSystem) spawnOne() {
	defID := s.rng.Pick(s.def.EnemyIDs)
	pos := s.formationPos(s.spawned, s.def.Count)
	s.spawned++
	// Exhausted pool: the spawn is skipped, the wave just gets smaller.
	if id, ok := s.spawn(defID, pos, s.def.DifficultyScalar); ok {
		s.alive[id] = struct{}{}
	}
}

// formationPos lays spawn points out by the wave's formation kind.
func (s *WaveSystem) formationPos(index, count int) geom.Vec2 {
	if count < 1 {
		count = 1
	}
	switch s.def.Formation {
	case defs.FormationColumn:
		return geom.V(s.fieldWidth/2, s.spawnY)
	case defs.FormationVee:
		// Alternating offsets widening from the center.
		step := float64((index+1)/2) * (s.fieldWidth / float64(count+1)) / 2
		if index%2 == 1 {
			step = -step
		}
		return geom.V(s.fieldWidth/2+step, s.spawnY)
	default: // line
		slot := s.fieldWidth / float64(count+1)
		return geom.V(slot*float64(index+1), s.spawnY)
	}
}

// OnEvent removes destroyed or escaped enemies from the tracked set.
func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		if data, ok := e.Data.(event.EnemyDestroyedData); ok {
			delete(s.alive, data.ID)
		}
	case event.EnemyEscaped:
		if id, ok := e.Data.(uint64); ok {
			delete(s.alive, id)
		}
	}
}
