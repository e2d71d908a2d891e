// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

//go:embed enemies.json
var defaultEnemies []byte

// EnemyLibrary holds all enemy definitions, keyed by kind.
var EnemyLibrary = mustParseEnemies(defaultEnemies)

// LoadEnemyDefinitions reads an enemy definition file and replaces EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	lib, err := ParseEnemyDefinitions(file)
	if err != nil {
		return err
	}
	EnemyLibrary = lib
	log.Printf("Loaded %d enemy definitions from %s", len(lib), path)
	return nil
}

// ParseEnemyDefinitions decodes and validates a definition list. Every kind
// in AllKinds must be present.
func ParseEnemyDefinitions(data []byte) (map[EnemyKind]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(map[EnemyKind]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if err := def.validate(); err != nil {
			return nil, err
		}
		lib[def.ID] = def
	}
	for _, kind := range AllKinds {
		if _, ok := lib[kind]; !ok {
			return nil, fmt.Errorf("missing definition for enemy %q", kind)
		}
	}
	return lib, nil
}

func mustParseEnemies(data []byte) map[EnemyKind]EnemyDefinition {
	lib, err := ParseEnemyDefinitions(data)
	if err != nil {
		panic(err)
	}
	return lib
}
