// internal/input/manager.go
package input

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultBindings возвращает раскладку клавиатуры по умолчанию.
// Таблица настраиваемая: Bind переопределяет клавишу.
func DefaultBindings() map[ebiten.Key]Action {
	return map[ebiten.Key]Action{
		ebiten.KeyArrowLeft:  ActionLeft,
		ebiten.KeyA:          ActionLeft,
		ebiten.KeyArrowRight: ActionRight,
		ebiten.KeyD:          ActionRight,
		ebiten.KeyArrowUp:    ActionThrust,
		ebiten.KeyW:          ActionThrust,
		ebiten.KeySpace:      ActionShoot,
		ebiten.KeyEscape:     ActionPause,
	}
}

type touchTrack struct {
	startX, startY float64
}

// Manager translates keyboard and touch input into game actions. Held keys
// feed the State snapshot; discrete triggers (just-pressed keys, finished
// gestures) go to the observer list.
type Manager struct {
	bindings       map[ebiten.Key]Action
	swipeThreshold float64
	touches        map[ebiten.TouchID]*touchTrack
	observers      []func(Action)

	state       State
	touchIDs    []ebiten.TouchID // scratch, reused between frames
	justPressed []ebiten.TouchID
}

func NewManager(swipeThreshold float64) *Manager {
	return &Manager{
		bindings:       DefaultBindings(),
		swipeThreshold: swipeThreshold,
		touches:        make(map[ebiten.TouchID]*touchTrack),
	}
}

// Bind maps a key to an action, replacing any previous binding of the key.
func (m *Manager) Bind(key ebiten.Key, action Action) {
	m.bindings[key] = action
}

// AddObserver subscribes to discrete action triggers. Panicking observers
// are logged and skipped.
func (m *Manager) AddObserver(fn func(Action)) {
	m.observers = append(m.observers, fn)
}

// State returns the held-control snapshot of the last Update.
func (m *Manager) State() State {
	return m.state
}

// Update polls the host input once per frame.
func (m *Manager) Update() {
	m.state = State{}
	for key, action := range m.bindings {
		if ebiten.IsKeyPressed(key) {
			m.applyHeld(action)
		}
		if inpututil.IsKeyJustPressed(key) {
			m.emit(action)
		}
	}
	m.pollTouches()
}

func (m *Manager) applyHeld(action Action) {
	switch action {
	case ActionLeft:
		m.state.Left = true
	case ActionRight:
		m.state.Right = true
	case ActionThrust:
		m.state.Thrust = true
	case ActionShoot:
		m.state.Shoot = true
	}
}

func (m *Manager) pollTouches() {
	m.justPressed = inpututil.AppendJustPressedTouchIDs(m.justPressed[:0])
	for _, id := range m.justPressed {
		x, y := ebiten.TouchPosition(id)
		m.touches[id] = &touchTrack{startX: float64(x), startY: float64(y)}
	}

	for id, track := range m.touches {
		if !inpututil.IsTouchJustReleased(id) {
			continue
		}
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g := ClassifyGesture(track.startX, track.startY, float64(x), float64(y), m.swipeThreshold)
		if action, ok := gestureAction(g); ok {
			m.applyHeld(action)
			m.emit(action)
		}
		delete(m.touches, id)
	}

	// A finger held on the lower screen half keeps thrusting.
	m.touchIDs = ebiten.AppendTouchIDs(m.touchIDs[:0])
	for _, id := range m.touchIDs {
		if _, tracked := m.touches[id]; !tracked {
			continue
		}
		_, y := ebiten.TouchPosition(id)
		if float64(y) > screenHalfY() {
			m.state.Thrust = true
		}
	}
}

func (m *Manager) emit(action Action) {
	for _, fn := range m.observers {
		m.safeEmit(fn, action)
	}
}

func (m *Manager) safeEmit(fn func(Action), action Action) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("input: observer panicked on %s: %v", action, r)
		}
	}()
	fn(action)
}

func screenHalfY() float64 {
	_, h := ebiten.WindowSize()
	if h <= 0 {
		return 0
	}
	return float64(h) / 2
}
