// internal/state/menu_state.go
package state

import (
	"fmt"
	"go-arcade-shooter/internal/audio"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const menuStarCount = 80

type star struct {
	x, y  float64
	speed float64
}

// MenuState — стартовый экран со звёздным фоном и таблицей рекордов.
type MenuState struct {
	sm    *StateMachine
	ctx   *Context
	stars []star
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	rng := utils.NewPRNGService(0)
	stars := make([]star, menuStarCount)
	for i := range stars {
		stars[i] = star{
			x:     rng.Range(0, config.ScreenWidth),
			y:     rng.Range(0, config.ScreenHeight),
			speed: rng.Range(15, 70),
		}
	}
	return &MenuState{sm: sm, ctx: ctx, stars: stars}
}

func (m *MenuState) Enter() {
	m.ctx.Audio.PlayMusic(audio.MusicTheme)
}

func (m *MenuState) Update(deltaTime float64) error {
	for i := range m.stars {
		m.stars[i].y += m.stars[i].speed * deltaTime
		if m.stars[i].y > config.ScreenHeight {
			m.stars[i].y = 0
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	for _, s := range m.stars {
		vector.DrawFilledRect(screen, float32(s.x), float32(s.y), 2, 2, config.StarColor, false)
	}

	drawCentered(screen, m.ctx.TitleFace, "NOVA STRIKE", 160, config.TextAccentColor)
	drawCentered(screen, m.ctx.Face, "PRESS SPACE TO START", 220, config.TextLightColor)

	entries := m.ctx.Store.Load()
	if len(entries) > 0 {
		drawCentered(screen, m.ctx.Face, "HIGH SCORES", 300, config.TextLightColor)
		limit := len(entries)
		if limit > 5 {
			limit = 5
		}
		for i := 0; i < limit; i++ {
			line := fmt.Sprintf("%d. %-12s %8d", i+1, entries[i].PlayerName, entries[i].Score)
			drawCentered(screen, m.ctx.Face, line, 330+i*24, config.TextLightColor)
		}
	}
}

func (m *MenuState) Exit() {}
