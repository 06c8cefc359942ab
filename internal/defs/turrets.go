// internal/defs/turrets.go
package defs

import "go-tower-defense-hud/internal/component"

// TurretDefinition holds the static data for a turret type.
type TurretDefinition struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Price    uint32  `yaml:"price"`
	Damage   int     `yaml:"damage"`
	FireRate float64 `yaml:"fire_rate"` // Shots per second
	Range    int     `yaml:"range"`
}

// NewTurret builds the runtime turret for this definition.
func (d TurretDefinition) NewTurret() *component.Turret {
	return &component.Turret{
		DefID: d.ID,
		Name:  d.Name,
		Gun: component.GunComponent{
			Configs: component.GunConfig{
				Price:    d.Price,
				Damage:   d.Damage,
				FireRate: d.FireRate,
				Range:    d.Range,
			},
		},
	}
}

// NewTurretsCollection builds a collection where a turret's ID is the
// position of its definition in defs.
func NewTurretsCollection(defs []TurretDefinition) *component.TurretsCollection {
	c := component.NewTurretsCollection()
	for _, d := range defs {
		c.Add(d.NewTurret())
	}
	return c
}
