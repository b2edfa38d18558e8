// internal/state/game_over_state.go
package state

import (
	"fmt"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/score"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxNameLength = 12

// GameOverState показывает итог забега, принимает имя для таблицы рекордов
// и предлагает начать заново.
type GameOverState struct {
	sm         *StateMachine
	ctx        *Context
	finalScore int
	victory    bool

	entries   []score.Entry
	needsName bool
	submitted bool
	name      []rune
	elapsed   float64
	chars     []rune // scratch для AppendInputChars
}

func NewGameOverState(sm *StateMachine, ctx *Context, finalScore int, victory bool) *GameOverState {
	return &GameOverState{
		sm:         sm,
		ctx:        ctx,
		finalScore: finalScore,
		victory:    victory,
		entries:    ctx.Store.Load(),
		needsName:  ctx.Store.IsHighScore(finalScore),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) error {
	s.elapsed += deltaTime

	if s.needsName && !s.submitted {
		s.readName()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			s.submit()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
	return nil
}

func (s *GameOverState) readName() {
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, r := range s.chars {
		if len(s.name) >= maxNameLength {
			break
		}
		if r > 0x20 && r < 0x7f {
			s.name = append(s.name, r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(s.name) > 0 {
		s.name = s.name[:len(s.name)-1]
	}
}

func (s *GameOverState) submit() {
	name := string(s.name)
	if name == "" {
		name = "PLAYER"
	}
	if err := s.ctx.Store.Submit(name, s.finalScore, time.Now().UnixMilli()); err != nil {
		log.Printf("game over: high score submit failed: %v", err)
	}
	s.submitted = true
	s.entries = s.ctx.Store.Load()
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "GAME OVER"
	if s.victory {
		title = "SECTOR CLEARED"
	}
	drawCentered(screen, s.ctx.TitleFace, title, 140, config.TextAccentColor)
	drawCentered(screen, s.ctx.Face, fmt.Sprintf("SCORE: %d", s.finalScore), 190, config.TextLightColor)

	if s.needsName && !s.submitted {
		drawCentered(screen, s.ctx.Face, "NEW HIGH SCORE - ENTER YOUR NAME", 250, config.TextLightColor)
		entry := string(s.name)
		if int(s.elapsed*2)%2 == 0 {
			entry += "_"
		}
		drawCentered(screen, s.ctx.Face, entry, 280, config.TextAccentColor)
		return
	}

	limit := len(s.entries)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		line := fmt.Sprintf("%d. %-12s %8d", i+1, s.entries[i].PlayerName, s.entries[i].Score)
		drawCentered(screen, s.ctx.Face, line, 250+i*24, config.TextLightColor)
	}
	drawCentered(screen, s.ctx.Face, "SPACE - RESTART    ESC - MENU", 420, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
