// internal/event/types.go
package event

// EventType — имя сигнала, используется в логах
type EventType string

const (
	BaseHealthChanged   EventType = "BaseHealthChanged"   // Здоровье базы изменилось
	EnemyDestroyed      EventType = "EnemyDestroyed"      // Враг уничтожен, payload: награда
	NewWaveIsComing     EventType = "NewWaveIsComing"     // Началась новая волна
	LevelFinished       EventType = "LevelFinished"       // Уровень пройден
	NewTurretWasCreated EventType = "NewTurretWasCreated" // Построена турель, payload: цена
)
