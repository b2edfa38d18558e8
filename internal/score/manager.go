// internal/score/manager.go
package score

import "log"

// Listener receives the new total after every score change.
type Listener func(total int)

// Manager держит текущий счёт и рассылает изменения подписчикам.
// Счёт никогда не уходит ниже нуля — вычитание обрезается (задокументированное
// исключение из правила "не зажимать значения молча").
type Manager struct {
	total     int
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}

// Total returns the current score.
func (m *Manager) Total() int {
	return m.total
}

// Add increases the score by n points; negative n deducts. The result is
// clamped at zero.
func (m *Manager) Add(n int) {
	next := m.total + n
	if next < 0 {
		next = 0
	}
	if next == m.total {
		return
	}
	m.total = next
	m.notify()
}

// Reset zeroes the score for a new run.
func (m *Manager) Reset() {
	if m.total == 0 {
		return
	}
	m.total = 0
	m.notify()
}

// AddListener subscribes to score changes. A panicking listener is logged
// and skipped; the others are still notified.
func (m *Manager) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Manager) notify() {
	for _, l := range m.listeners {
		m.safeNotify(l)
	}
}

func (m *Manager) safeNotify(l Listener) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("score: listener panicked: %v", r)
		}
	}()
	l(m.total)
}
