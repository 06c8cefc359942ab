// internal/defs/levels.go
package defs

// LevelDefinition describes the starting conditions of a level and the
// turrets offered on its build panel.
type LevelDefinition struct {
	Name         string   `yaml:"name"`
	InitialScore uint32   `yaml:"initial_score"`
	BaseHealth   float32  `yaml:"base_health"`
	Waves        int      `yaml:"waves"`
	Slots        []string `yaml:"slots"` // turret definition IDs, in panel order
}

// SlotTurretIDs resolves panel slots into turret IDs. Unknown
// definitions map to -1, which never resolves to a turret.
func (l *LevelDefinition) SlotTurretIDs(turrets []TurretDefinition) []int {
	ids := make([]int, len(l.Slots))
	for i, slot := range l.Slots {
		ids[i] = -1
		for j, d := range turrets {
			if d.ID == slot {
				ids[i] = j
				break
			}
		}
	}
	return ids
}
