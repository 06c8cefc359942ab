// internal/event/bus.go
package event

// Bus — шина игровых событий. Владелец создаёт её явно и передаёт
// в конструкторы; глобального экземпляра нет.
type Bus struct {
	OnBaseHealthChanged   *Signal[float32]
	OnEnemyDestroyed      *Signal[uint32]
	OnNewWaveIsComing     *Signal[int]
	OnLevelFinished       *Signal[struct{}]
	OnNewTurretWasCreated *Signal[uint32]
}

// NewBus создаёт шину без подписчиков
func NewBus() *Bus {
	return &Bus{
		OnBaseHealthChanged:   NewSignal[float32](BaseHealthChanged),
		OnEnemyDestroyed:      NewSignal[uint32](EnemyDestroyed),
		OnNewWaveIsComing:     NewSignal[int](NewWaveIsComing),
		OnLevelFinished:       NewSignal[struct{}](LevelFinished),
		OnNewTurretWasCreated: NewSignal[uint32](NewTurretWasCreated),
	}
}

func (b *Bus) NotifyOnBaseHealthChanged(health float32) {
	b.OnBaseHealthChanged.Notify(health)
}

func (b *Bus) NotifyOnEnemyDestroyed(reward uint32) {
	b.OnEnemyDestroyed.Notify(reward)
}

func (b *Bus) NotifyOnNewWaveIsComing(waveIndex int) {
	b.OnNewWaveIsComing.Notify(waveIndex)
}

func (b *Bus) NotifyOnLevelFinished() {
	b.OnLevelFinished.Notify(struct{}{})
}

func (b *Bus) NotifyOnNewTurretWasCreated(price uint32) {
	b.OnNewTurretWasCreated.Notify(price)
}
