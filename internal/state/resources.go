// internal/state/resources.go
package state

import (
	"go-tower-defense-hud/internal/defs"
	"go-tower-defense-hud/internal/storage"
)

// Resources содержит данные, общие для всех состояний
type Resources struct {
	Turrets []defs.TurretDefinition
	Level   *defs.LevelDefinition
	Store   *storage.ProgressStore
}
