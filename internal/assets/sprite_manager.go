package assets

import (
	"fmt"
	"go-arcade-shooter/internal/defs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteManager управляет загрузкой и кэшированием спрайтов.
// Отсутствующий спрайт не является ошибкой: рендер рисует
// векторную фигуру вместо него.
type SpriteManager struct {
	sprites map[string]*ebiten.Image
	missing map[string]bool // чтобы логировать каждый пропуск один раз
}

// NewSpriteManager создает новый экземпляр SpriteManager.
func NewSpriteManager() *SpriteManager {
	return &SpriteManager{
		sprites: make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// loadSingleSprite безопасно загружает один спрайт.
func (m *SpriteManager) loadSingleSprite(id string) {
	if _, ok := m.sprites[id]; ok {
		return
	}

	path := filepath.Join("assets", "sprites", fmt.Sprintf("%s.png", id))
	if _, err := os.Stat(path); err != nil {
		m.markMissing(id, path)
		return
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("WARNING: failed to load sprite %s from %s: %v", id, path, err)
		m.markMissing(id, path)
		return
	}
	m.sprites[id] = img
}

func (m *SpriteManager) markMissing(id, path string) {
	if m.missing[id] {
		return
	}
	m.missing[id] = true
	log.Printf("sprite %s not found at %s, using vector fallback", id, path)
}

// LoadEnemySprites загружает спрайты для всех определений врагов.
func (m *SpriteManager) LoadEnemySprites(enemyDefs map[string]defs.EnemyDefinition) {
	for id := range enemyDefs {
		m.loadSingleSprite(id)
	}
}

// LoadSprite загружает произвольный спрайт по ID (корабль, снаряды).
func (m *SpriteManager) LoadSprite(id string) {
	m.loadSingleSprite(id)
}

// Get возвращает спрайт по ID. false означает векторный фолбэк.
func (m *SpriteManager) Get(id string) (*ebiten.Image, bool) {
	img, ok := m.sprites[id]
	return img, ok
}

// Cleanup освобождает все загруженные спрайты.
func (m *SpriteManager) Cleanup() {
	for id, img := range m.sprites {
		img.Deallocate()
		delete(m.sprites, id)
	}
	m.missing = make(map[string]bool)
}
