package gamedata

import (
	"errors"
	"math/rand"
)

// EnemyRegistry holds the hostile archetypes and rolls weighted spawns.
type EnemyRegistry struct {
	byID        map[string]*EnemyDef
	all         []EnemyDef
	spawnWeight int
}

// NewEnemyRegistry creates a registry from loaded archetype definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	registry := &EnemyRegistry{
		byID: make(map[string]*EnemyDef),
		all:  enemies,
	}
	for i := range enemies {
		registry.byID[enemies[i].ID] = &enemies[i]
		registry.spawnWeight += enemies[i].SpawnWeight
	}
	return registry
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom picks an archetype proportionally to its spawnWeight.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.spawnWeight <= 0 || len(r.all) == 0 {
		return nil
	}

	roll := rng.Intn(r.spawnWeight)
	for i := range r.all {
		roll -= r.all[i].SpawnWeight
		if roll < 0 {
			return &r.all[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.all[0]
}

// GetByID returns the archetype with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	return r.byID[id]
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.all
}

// Count returns the number of enemy archetypes in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds loaded item definitions and provides lookup and
// loot-roll utilities.
type ItemRegistry struct {
	items      map[string]*ItemDef
	all        []ItemDef
	lootWeight int
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef),
		all:   items,
	}
	for i := range items {
		registry.items[items[i].ID] = &items[i]
		registry.lootWeight += items[i].LootWeight
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.items[id]
}

// LootRandom selects a random item definition using weighted probability.
// Items with lootWeight 0 never appear in containers.
func (r *ItemRegistry) LootRandom(rng *rand.Rand) *ItemDef {
	if r.lootWeight <= 0 || len(r.all) == 0 {
		return nil
	}

	roll := rng.Intn(r.lootWeight)

	cumulative := 0
	for i := range r.all {
		if r.all[i].LootWeight <= 0 {
			continue
		}
		cumulative += r.all[i].LootWeight
		if roll < cumulative {
			return &r.all[i]
		}
	}

	// Fallback (shouldn't happen)
	return nil
}

// Base returns the definitions flagged as part of the starting loadout.
func (r *ItemRegistry) Base() []*ItemDef {
	var base []*ItemDef
	for i := range r.all {
		if r.all[i].Base {
			base = append(base, &r.all[i])
		}
	}
	return base
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.all
}

// Count returns the number of item types in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.all)
}
