// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type turretFile struct {
	Turrets []TurretDefinition `yaml:"turrets"`
}

// LoadTurretDefinitions reads the turret configuration file. The order of
// the returned slice defines turret IDs.
func LoadTurretDefinitions(path string) ([]TurretDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read turret definitions file: %w", err)
	}

	defs, err := ParseTurretDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Loaded %d turret definitions", len(defs))
	return defs, nil
}

// ParseTurretDefinitions parses and validates turret definitions from YAML.
func ParseTurretDefinitions(data []byte) ([]TurretDefinition, error) {
	var file turretFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal turret definitions: %w", err)
	}
	if err := validateTurrets(file.Turrets); err != nil {
		return nil, fmt.Errorf("invalid turret definitions: %w", err)
	}
	return file.Turrets, nil
}

func validateTurrets(turrets []TurretDefinition) error {
	if len(turrets) == 0 {
		return fmt.Errorf("at least one turret is required")
	}
	seen := make(map[string]bool, len(turrets))
	for i, t := range turrets {
		if t.ID == "" {
			return fmt.Errorf("turret #%d: id is required", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("turret %s: duplicate id", t.ID)
		}
		seen[t.ID] = true
		if t.FireRate < 0 {
			return fmt.Errorf("turret %s: fire_rate cannot be negative, got %v", t.ID, t.FireRate)
		}
		if t.Range < 0 {
			return fmt.Errorf("turret %s: range cannot be negative, got %d", t.ID, t.Range)
		}
	}
	return nil
}

// LoadLevelDefinition reads a level file and checks its slots against the
// known turrets.
func LoadLevelDefinition(path string, turrets []TurretDefinition) (*LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}

	level, err := ParseLevelDefinition(data, turrets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Loaded level %q: %d slots, %d waves", level.Name, len(level.Slots), level.Waves)
	return level, nil
}

// ParseLevelDefinition parses and validates a level from YAML.
func ParseLevelDefinition(data []byte, turrets []TurretDefinition) (*LevelDefinition, error) {
	var level LevelDefinition
	if err := yaml.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if level.BaseHealth <= 0 {
		return nil, fmt.Errorf("base_health must be positive, got %v", level.BaseHealth)
	}
	if level.Waves < 1 {
		return nil, fmt.Errorf("waves must be at least 1, got %d", level.Waves)
	}
	known := make(map[string]bool, len(turrets))
	for _, t := range turrets {
		known[t.ID] = true
	}
	for i, slot := range level.Slots {
		if !known[slot] {
			return nil, fmt.Errorf("slot %d: unknown turret %q", i, slot)
		}
	}
	return &level, nil
}
