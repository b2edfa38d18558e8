// internal/event/types.go
package event

const (
	WaveStarted    EventType = "WaveStarted"    // Волна началась
	WaveCompleted  EventType = "WaveCompleted"  // Все враги волны уничтожены
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен
	EnemyEscaped   EventType = "EnemyEscaped"   // Враг покинул экран
	PlayerHit      EventType = "PlayerHit"      // Игрок получил урон
	PlayerDied     EventType = "PlayerDied"     // Жизни закончились
	ScoreChanged   EventType = "ScoreChanged"
)

// EnemyDestroyedData accompanies EnemyDestroyed.
type EnemyDestroyedData struct {
	ID         uint64
	ScoreValue int
	X, Y       float64
}

// PlayerHitData accompanies PlayerHit.
type PlayerHitData struct {
	Damage int
}

// WaveData accompanies WaveStarted and WaveCompleted.
type WaveData struct {
	Number int
}
