// cmd/game/main.go
package main

import (
	"go-arcade-shooter/internal/assets"
	"go-arcade-shooter/internal/audio"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/score"
	"go-arcade-shooter/internal/state"
	"go-arcade-shooter/internal/ui"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// loadDefinitions подменяет встроенные таблицы врагов и волн внешними
// JSON-файлами, если они заданы через окружение.
func loadDefinitions() {
	if path := config.GetEnv("NOVA_ENEMIES_FILE", ""); path != "" {
		if err := defs.LoadEnemyDefinitions(path); err != nil {
			log.Fatalf("enemy definitions: %v", err)
		}
	}
	if path := config.GetEnv("NOVA_WAVES_FILE", ""); path != "" {
		if err := defs.LoadWavePatterns(path); err != nil {
			log.Fatalf("wave patterns: %v", err)
		}
	}
}

// loadSounds пытается загрузить звуковые ассеты; отсутствующие файлы
// остаются на синтезированных фолбэках.
func loadSounds(audioMgr *audio.Manager) {
	files := map[string]string{
		audio.SoundShoot:     "assets/sounds/shoot.wav",
		audio.SoundExplosion: "assets/sounds/explosion.wav",
		audio.SoundPlayerHit: "assets/sounds/player_hit.wav",
		audio.SoundWaveStart: "assets/sounds/wave_start.wav",
		audio.SoundGameOver:  "assets/sounds/game_over.wav",
		audio.MusicTheme:     "assets/sounds/theme.ogg",
	}
	for name, path := range files {
		if err := audioMgr.Load(name, path); err != nil {
			log.Printf("sound %s: %v", name, err)
		}
	}
}

func main() {
	if config.GetEnvBool("NOVA_PPROF", false) {
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}
	loadDefinitions()

	audioMgr := audio.NewManager(config.MusicVolume, config.EffectVolume)
	if err := audioMgr.Init(); err == nil {
		loadSounds(audioMgr)
	}
	defer audioMgr.Cleanup()

	sprites := assets.NewSpriteManager()
	sprites.LoadEnemySprites(defs.EnemyLibrary)

	store, err := score.NewStore(config.GetEnv("NOVA_HIGHSCORE_FILE", config.HighScoreFile), config.HighScoreMax)
	if err != nil {
		log.Fatalf("high score store: %v", err)
	}

	ctx := &state.Context{
		Audio:     audioMgr,
		Store:     store,
		Sprites:   sprites,
		Face:      ui.LoadFontFace("assets/fonts/main.ttf", 16),
		TitleFace: ui.LoadFontFace("assets/fonts/main.ttf", 36),
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, ctx))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Nova Strike")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
