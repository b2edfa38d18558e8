// internal/state/game_state.go
package state

import (
	"fmt"
	game "go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/input"
	"go-arcade-shooter/internal/loop"
	"go-arcade-shooter/internal/score"
	"go-arcade-shooter/internal/system"
	"go-arcade-shooter/internal/ui"
	"go-arcade-shooter/internal/utils"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры. Симуляция идёт с фиксированным шагом внутри
// loop.Loop; кадровый Update лишь подаёт в него текущее время.
type GameState struct {
	sm       *StateMachine
	ctx      *Context
	game     *game.Game
	gameLoop *loop.Loop
	input    *input.Manager
	scoreMgr *score.Manager

	scoreInd *ui.ScoreIndicator
	waveInd  *ui.WaveIndicator
	livesInd *ui.LivesIndicator
	pauseBtn *ui.Button
	muteBtn  *ui.Button

	alpha          float64 // интерполяция последнего кадра
	curInput       system.ShipInput
	firing         bool
	pauseRequested bool
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	scoreMgr := score.NewManager()
	gameLogic, err := game.NewGame(scoreMgr, ctx.Audio, ctx.Sprites, utils.NewPRNGService(0))
	if err != nil {
		panic(fmt.Sprintf("game construction failed: %v", err))
	}
	gameLoop, err := loop.New(config.FixedTimeStep, config.MaxDeltaTime, config.MaxUpdatesPerTick)
	if err != nil {
		panic(fmt.Sprintf("loop construction failed: %v", err))
	}

	gs := &GameState{
		sm:       sm,
		ctx:      ctx,
		game:     gameLogic,
		gameLoop: gameLoop,
		input:    input.NewManager(config.TouchSwipeThreshold),
		scoreMgr: scoreMgr,
		scoreInd: ui.NewScoreIndicator(config.IndicatorOffsetX, config.IndicatorOffsetY, ctx.Face),
		waveInd:  ui.NewWaveIndicator(config.ScreenWidth/2, config.IndicatorOffsetY, ctx.Face),
		livesInd: ui.NewLivesIndicator(config.IndicatorOffsetX, config.IndicatorOffsetY+12),
		pauseBtn: ui.NewButton(config.ScreenWidth-124, 8, 54, 22, "II", ctx.Face),
		muteBtn:  ui.NewButton(config.ScreenWidth-62, 8, 54, 22, "SND", ctx.Face),
	}

	gameLoop.SetUpdate(func(dt float64) error {
		return gs.game.Step(dt, gs.curInput, gs.firing)
	})
	gameLoop.SetRender(func(alpha float64) error {
		gs.alpha = alpha
		return nil
	})

	gs.input.AddObserver(func(a input.Action) {
		if a == input.ActionPause {
			gs.pauseRequested = true
		}
	})
	return gs
}

func (g *GameState) Enter() {
	// Start переустанавливает часы цикла, поэтому возврат из паузы не
	// приводит к рывку накопленного времени.
	if err := g.gameLoop.Start(); err != nil {
		panic(fmt.Sprintf("loop start failed: %v", err))
	}
}

func (g *GameState) Update(deltaTime float64) error {
	g.input.Update()
	st := g.input.State()
	thrust := 0.0
	if st.Thrust {
		thrust = 1.0
	}
	g.curInput = system.ShipInput{TurnLeft: st.Left, TurnRight: st.Right, Thrust: thrust}
	g.firing = st.Shoot

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case g.pauseBtn.Contains(x, y):
			g.pauseRequested = true
		case g.muteBtn.Contains(x, y):
			g.ctx.Audio.ToggleMute()
		}
	}

	if g.pauseRequested {
		g.pauseRequested = false
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	if err := g.gameLoop.Tick(time.Now()); err != nil {
		return err
	}

	if g.game.GameOver || g.game.AllCleared {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, g.scoreMgr.Total(), g.game.AllCleared))
	}
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.Render(screen, g.alpha)

	g.scoreInd.Draw(screen, g.scoreMgr.Total())
	g.waveInd.Draw(screen, g.game.Wave())
	g.livesInd.Draw(screen, g.game.Lives)
	g.pauseBtn.Draw(screen)
	g.muteBtn.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %d", g.gameLoop.FPS()), 8, config.ScreenHeight-18)
}

func (g *GameState) Exit() {
	g.gameLoop.Stop()
}
