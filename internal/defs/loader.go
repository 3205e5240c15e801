// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadEnemyDefinitions reads an enemy override file and merges it into
// EnemyLibrary. Entries with an unknown id reject the whole file.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := DefaultEnemyDefinitions()
	for _, def := range enemyDefs {
		if !IsKnownEnemy(def.ID) {
			return fmt.Errorf("unknown enemy id %q in %s", def.ID, path)
		}
		if def.Health <= 0 || def.Size <= 0 {
			return fmt.Errorf("enemy %q: health and size must be positive", def.ID)
		}
		lib[def.ID] = def
	}
	EnemyLibrary = lib

	slog.Info("loaded enemy definitions", "path", path, "overrides", len(enemyDefs))
	return nil
}

// LoadWeaponDefinitions reads a weapon override file and merges it into
// WeaponLibrary. Only the four built-in weapon ids are accepted.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	lib := DefaultWeaponDefinitions()
	for _, def := range weaponDefs {
		if _, ok := lib[def.ID]; !ok {
			return fmt.Errorf("unknown weapon id %q in %s", def.ID, path)
		}
		if def.FireInterval <= 0 || def.BulletSpeed <= 0 {
			return fmt.Errorf("weapon %q: fire interval and bullet speed must be positive", def.ID)
		}
		lib[def.ID] = def
	}
	WeaponLibrary = lib

	slog.Info("loaded weapon definitions", "path", path, "overrides", len(weaponDefs))
	return nil
}
