// internal/app/game.go
package app

import (
	"fmt"
	"go-arcade-shooter/internal/assets"
	"go-arcade-shooter/internal/audio"
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/score"
	"go-arcade-shooter/internal/system"
	"go-arcade-shooter/internal/utils"
	"go-arcade-shooter/pkg/collision"
	"go-arcade-shooter/pkg/geom"
	"go-arcade-shooter/pkg/pool"
	"log"
	"math"
)

// Game holds the simulation state and wires the systems together. All
// collaborators (score, audio, sprites, rng) are injected: the game never
// reaches for globals.
type Game struct {
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Score           *score.Manager
	Audio           *audio.Manager
	Sprites         *assets.SpriteManager

	Ship        *component.Ship
	Projectiles *pool.Pool[component.Projectile]
	Enemies     *pool.Pool[component.Enemy]
	Explosions  *pool.Pool[component.Explosion]

	PlayerSystem     *system.PlayerSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	CollisionSystem  *system.CollisionSystem
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ExplosionSystem  *system.ExplosionSystem
	DifficultySystem *system.DifficultySystem

	Lives      int
	GameOver   bool
	AllCleared bool

	gameTime    float64
	waveDelay   float64 // пауза до старта следующей волны
	nextEnemyID uint64
}

// NewGame initializes a new game instance.
func NewGame(scoreMgr *score.Manager, audioMgr *audio.Manager, sprites *assets.SpriteManager, rng *utils.PRNGService) (*Game, error) {
	dispatcher := event.NewDispatcher()

	projectiles, err := pool.New(config.ProjectilePoolSize, func() *component.Projectile { return &component.Projectile{} })
	if err != nil {
		return nil, fmt.Errorf("game: projectile pool: %w", err)
	}
	enemies, err := pool.New(config.EnemyPoolSize, func() *component.Enemy { return &component.Enemy{} })
	if err != nil {
		return nil, fmt.Errorf("game: enemy pool: %w", err)
	}
	explosions, err := pool.New(config.ExplosionPoolSize, func() *component.Explosion { return &component.Explosion{} })
	if err != nil {
		return nil, fmt.Errorf("game: explosion pool: %w", err)
	}

	shipShape, err := collision.NewCircleShape(geom.V(0, 0), config.PlayerRadius)
	if err != nil {
		return nil, fmt.Errorf("game: ship shape: %w", err)
	}
	ship := &component.Ship{
		Shape:         shipShape,
		ThrustAccel:   config.PlayerThrustAccel,
		RotationSpeed: config.PlayerRotationSpeed,
		MaxSpeed:      config.PlayerSpeedMax,
		Drag:          config.PlayerDrag,
		StopThreshold: config.PlayerStopThreshold,
		FireRate:      config.PlayerFireRate,
		Bounds:        geom.V(config.ScreenWidth, config.ScreenHeight),
	}
	ship.Place(geom.V(config.ScreenWidth/2, config.ScreenHeight-80))
	ship.SetRot(-math.Pi / 2) // носом вверх

	difficulty, err := system.NewDifficultySystem(
		config.DifficultyInterval, config.DifficultyScaling,
		config.DifficultyMaxLevel, defs.DifficultySteps,
	)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		EventDispatcher:  dispatcher,
		Rng:              rng,
		Score:            scoreMgr,
		Audio:            audioMgr,
		Sprites:          sprites,
		Ship:             ship,
		Projectiles:      projectiles,
		Enemies:          enemies,
		Explosions:       explosions,
		DifficultySystem: difficulty,
		Lives:            config.PlayerLives,
		waveDelay:        config.WaveStartDelay,
	}

	bounds := geom.V(config.ScreenWidth, config.ScreenHeight)
	g.PlayerSystem = system.NewPlayerSystem(ship)
	g.MovementSystem = system.NewMovementSystem()
	g.ProjectileSystem = system.NewProjectileSystem(projectiles, bounds, config.EnemyDespawnMargin)
	g.CollisionSystem = system.NewCollisionSystem(projectiles, enemies, dispatcher)
	g.ExplosionSystem = system.NewExplosionSystem(explosions)
	g.WaveSystem = system.NewWaveSystem(dispatcher, rng, config.ScreenWidth, config.EnemySpawnMarginTop, g.spawnEnemy)
	g.CombatSystem = system.NewCombatSystem(config.EnemyProjectileSpeed, g.fireEnemyShot)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.EnemyDestroyed, listener)
	dispatcher.Subscribe(event.PlayerHit, listener)
	dispatcher.Subscribe(event.WaveStarted, listener)
	dispatcher.Subscribe(event.WaveCompleted, listener)

	// Счёт живёт в своём менеджере; шина событий получает дубликат
	// изменений для UI и прочих подписчиков.
	scoreMgr.AddListener(func(total int) {
		dispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: total})
	})

	return g, nil
}

// Step advances the simulation by one fixed step. After game over only the
// explosion visuals keep aging.
func (g *Game) Step(dt float64, in system.ShipInput, firing bool) error {
	if g.GameOver {
		g.ExplosionSystem.Update(dt)
		return nil
	}
	g.gameTime += dt
	g.DifficultySystem.Update(dt)

	if err := g.PlayerSystem.Update(dt, in); err != nil {
		return err
	}
	if firing && g.PlayerSystem.TryFire() {
		g.firePlayerShot()
	}

	diffStep := g.DifficultySystem.Step()
	enemies := g.Enemies.Active()
	g.MovementSystem.Update(dt, enemies, diffStep.SpeedMult)
	g.CombatSystem.Update(dt, enemies, g.Ship.Pos)
	g.ProjectileSystem.Update(dt)
	g.CollisionSystem.Update(g.Ship)
	g.WaveSystem.Update(dt, diffStep.SpawnRateMult)
	g.ExplosionSystem.Update(dt)
	g.advanceWaveSchedule(dt)
	return nil
}

// GameTime returns cumulative simulation time since the run started.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// Wave returns the number of the most recently started wave.
func (g *Game) Wave() int {
	return g.WaveSystem.Number()
}

func (g *Game) advanceWaveSchedule(dt float64) {
	if g.WaveSystem.Active() || g.AllCleared {
		return
	}
	if g.waveDelay > 0 {
		g.waveDelay -= dt
		if g.waveDelay > 0 {
			return
		}
	}
	if !g.WaveSystem.StartNextWave() {
		// Таблица волн исчерпана — победа.
		g.AllCleared = true
	}
}

func (g *Game) firePlayerShot() {
	ship := g.Ship
	dir := geom.FromAngle(ship.Rot)
	muzzle := ship.Pos.Add(dir.Mul(config.PlayerRadius + config.ProjectileRadius + 2))
	shape := collision.CircleShape{R: config.ProjectileRadius}
	ok := g.ProjectileSystem.Fire(
		muzzle, dir.Mul(config.ProjectileSpeed),
		component.SidePlayer, config.ProjectileDamage,
		config.ProjectileLifetime, shape,
	)
	if ok {
		g.Audio.Play(audio.SoundShoot)
	}
}

func (g *Game) fireEnemyShot(pos, vel geom.Vec2) {
	shape := collision.CircleShape{R: 3}
	g.ProjectileSystem.Fire(pos, vel, component.SideEnemy, 1, 3.0, shape)
}

// spawnEnemy places one enemy from its definition. A false result means the
// spawn was skipped (unknown definition or exhausted pool).
func (g *Game) spawnEnemy(defID string, pos geom.Vec2, scalar float64) (uint64, bool) {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("game: unknown enemy definition %q, spawn skipped", defID)
		return 0, false
	}
	e := g.Enemies.Acquire()
	if e == nil {
		return 0, false
	}

	g.nextEnemyID++
	diffStep := g.DifficultySystem.Step()
	speed := def.Speed * scalar

	*e = component.Enemy{
		ID:            g.nextEnemyID,
		DefID:         def.ID,
		Pattern:       def.Pattern,
		Shape:         collision.BoxShape{W: def.Visuals.Width, H: def.Visuals.Height},
		Health:        int(math.Round(float64(def.Health) * scalar * diffStep.HealthMult)),
		ContactDamage: def.ContactDamage,
		ScoreValue:    def.ScoreValue,
		FireInterval:  def.FireInterval,
	}
	e.MaxHealth = e.Health

	halfW := def.Visuals.Width / 2
	switch def.Pattern {
	case defs.PatternSideToSide:
		// Горизонтальные паттерны спавнятся уже в видимой полосе,
		// иначе они навсегда остались бы за верхней границей.
		e.MinX = halfW
		e.MaxX = config.ScreenWidth - halfW
		e.Vel = geom.V(speed, 0)
		if g.Rng.Float64() < 0.5 {
			e.Vel = geom.V(-speed, 0)
		}
		e.Place(geom.V(pos.X(), g.Rng.Range(60, 160)))
	case defs.PatternStationary:
		e.Place(geom.V(pos.X(), g.Rng.Range(60, 200)))
	case defs.PatternZigzag:
		e.AnchorX = pos.X()
		e.WobbleAmp = 60
		e.WobbleFreq = 2.2
		e.TopY = config.EnemySpawnMarginTop
		e.BottomY = config.ScreenHeight + config.EnemyDespawnMargin
		e.Vel = geom.V(0, speed)
		e.Place(pos)
	default: // downward
		e.TopY = config.EnemySpawnMarginTop
		e.BottomY = config.ScreenHeight + config.EnemyDespawnMargin
		e.Vel = geom.V(0, speed)
		e.Place(pos)
	}
	return e.ID, true
}
