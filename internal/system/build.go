// internal/system/build.go
package system

import (
	"log"

	"go-tower-defense-hud/internal/component"
	"go-tower-defense-hud/internal/event"
	"go-tower-defense-hud/internal/ui"
)

// BuildSystem покупает турели из слотов панели. Доступность слота
// берётся из GameUIView, который обновляет контроллер HUD.
type BuildSystem struct {
	bus     *event.Bus
	view    *ui.GameUIView
	turrets *component.TurretsCollection
	built   []string
}

func NewBuildSystem(bus *event.Bus, view *ui.GameUIView, turrets *component.TurretsCollection) *BuildSystem {
	return &BuildSystem{bus: bus, view: view, turrets: turrets}
}

// TryBuild строит турель из слота slotIndex, если слот доступен.
func (s *BuildSystem) TryBuild(slotIndex int) bool {
	slots := s.view.TurretUIEntityViewArray
	if slotIndex < 0 || slotIndex >= len(slots) {
		return false
	}
	slot := slots[slotIndex]
	if !slot.IsEnabled {
		return false
	}
	turret := s.turrets.Get(slot.TurretEntityID)
	if turret == nil {
		return false
	}

	s.built = append(s.built, turret.DefID)
	log.Printf("Turret %s built for %d", turret.DefID, turret.Price())
	s.bus.NotifyOnNewTurretWasCreated(turret.Price())
	return true
}

// BuildCheapest строит самую дешёвую доступную турель.
func (s *BuildSystem) BuildCheapest() bool {
	best := -1
	var bestPrice uint32
	for i, slot := range s.view.TurretUIEntityViewArray {
		if !slot.IsEnabled {
			continue
		}
		turret := s.turrets.Get(slot.TurretEntityID)
		if turret == nil {
			continue
		}
		if best < 0 || turret.Price() < bestPrice {
			best, bestPrice = i, turret.Price()
		}
	}
	if best < 0 {
		return false
	}
	return s.TryBuild(best)
}

// Built возвращает DefID построенных турелей по порядку
func (s *BuildSystem) Built() []string {
	return s.built
}
