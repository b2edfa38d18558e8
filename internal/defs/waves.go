package defs

import "time"

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	EnemyIDs         []string      `json:"enemy_ids"`         // Допустимые типы врагов в волне
	Count            int           `json:"count"`             // Количество врагов в волне
	SpawnInterval    time.Duration `json:"spawn_interval"`    // Интервал между появлением врагов
	Formation        FormationKind `json:"formation"`         // Расстановка точек спавна
	DifficultyScalar float64       `json:"difficulty_scalar"` // Множитель статов для этой волны
}

// WavePatterns определяет последовательность волн в игре.
// Ключ карты — это номер волны. Запуск волны без записи в таблице
// возвращает отказ, а не ошибку.
var WavePatterns = map[int]WaveDefinition{
	1: {EnemyIDs: []string{"ENEMY_SCOUT"}, Count: 5, SpawnInterval: time.Millisecond * 900, Formation: FormationLine, DifficultyScalar: 1.0},
	2: {EnemyIDs: []string{"ENEMY_SCOUT", "ENEMY_DIVER"}, Count: 7, SpawnInterval: time.Millisecond * 800, Formation: FormationLine, DifficultyScalar: 1.0},
	3: {EnemyIDs: []string{"ENEMY_DIVER"}, Count: 8, SpawnInterval: time.Millisecond * 700, Formation: FormationColumn, DifficultyScalar: 1.1},
	4: {EnemyIDs: []string{"ENEMY_WEAVER"}, Count: 8, SpawnInterval: time.Millisecond * 700, Formation: FormationVee, DifficultyScalar: 1.1},
	5: {EnemyIDs: []string{"ENEMY_SCOUT", "ENEMY_WEAVER"}, Count: 10, SpawnInterval: time.Millisecond * 600, Formation: FormationLine, DifficultyScalar: 1.2},
	6: {EnemyIDs: []string{"ENEMY_TURRET", "ENEMY_DIVER"}, Count: 10, SpawnInterval: time.Millisecond * 600, Formation: FormationColumn, DifficultyScalar: 1.25},
	7: {EnemyIDs: []string{"ENEMY_WEAVER", "ENEMY_DIVER"}, Count: 12, SpawnInterval: time.Millisecond * 500, Formation: FormationVee, DifficultyScalar: 1.3},
	8: {EnemyIDs: []string{"ENEMY_SCOUT", "ENEMY_DIVER", "ENEMY_WEAVER", "ENEMY_TURRET"}, Count: 15, SpawnInterval: time.Millisecond * 450, Formation: FormationLine, DifficultyScalar: 1.4},
}
