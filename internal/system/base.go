// internal/system/base.go
package system

import "go-tower-defense-hud/internal/event"

// BaseSystem хранит здоровье базы и сообщает о его изменениях.
type BaseSystem struct {
	bus       *event.Bus
	health    float32
	maxHealth float32
}

func NewBaseSystem(bus *event.Bus, maxHealth float32) *BaseSystem {
	return &BaseSystem{bus: bus, health: maxHealth, maxHealth: maxHealth}
}

// Damage уменьшает здоровье, не опускаясь ниже нуля.
func (s *BaseSystem) Damage(amount float32) {
	s.setHealth(s.health - amount)
}

// Heal восстанавливает здоровье, не выше максимума.
func (s *BaseSystem) Heal(amount float32) {
	s.setHealth(s.health + amount)
}

func (s *BaseSystem) setHealth(h float32) {
	if h < 0 {
		h = 0
	}
	if h > s.maxHealth {
		h = s.maxHealth
	}
	if h == s.health {
		return
	}
	s.health = h
	s.bus.NotifyOnBaseHealthChanged(h)
}

func (s *BaseSystem) Health() float32 {
	return s.health
}

func (s *BaseSystem) IsDestroyed() bool {
	return s.health <= 0
}
