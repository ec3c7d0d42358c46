package gamedata

import (
	"math/rand"
	"testing"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 3 {
		t.Errorf("Expected 3 enemies, got %d", len(enemies))
	}

	// Verify expected archetypes exist
	expectedIDs := map[string]bool{"husk": false, "stalker": false, "ravager": false}
	for _, e := range enemies {
		if _, ok := expectedIDs[e.ID]; ok {
			expectedIDs[e.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected enemy %q not found", id)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 enemy types, got %d", registry.Count())
	}

	// Test GetByID
	husk := registry.GetByID("husk")
	if husk == nil {
		t.Error("Husk not found by ID")
	} else if husk.Name != "Husk" {
		t.Errorf("Expected name 'Husk', got %q", husk.Name)
	}
	if registry.GetByID("wyvern") != nil {
		t.Error("Expected nil for unknown enemy ID")
	}

	// Test weighted spawning is deterministic with same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	spawns1 := make([]string, 10)
	spawns2 := make([]string, 10)

	for i := 0; i < 10; i++ {
		spawns1[i] = registry.SpawnRandom(rng1).ID
		spawns2[i] = registry.SpawnRandom(rng2).ID
	}

	for i := 0; i < 10; i++ {
		if spawns1[i] != spawns2[i] {
			t.Errorf("Spawn %d mismatch: %s != %s", i, spawns1[i], spawns2[i])
		}
	}
}

func TestLoadItems(t *testing.T) {
	items, err := LoadItems()
	if err != nil {
		t.Fatalf("Failed to load items: %v", err)
	}

	if len(items) == 0 {
		t.Fatal("Expected items, got none")
	}

	kinds := map[ItemKind]bool{}
	for _, it := range items {
		kinds[it.Kind] = true
	}
	for _, k := range []ItemKind{KindWeapon, KindArmor, KindConsumable, KindValuable} {
		if !kinds[k] {
			t.Errorf("No item of kind %q in items.json", k)
		}
	}
}

func TestItemRegistry(t *testing.T) {
	registry, err := LoadItemRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	medkit := registry.GetByID("medkit")
	if medkit == nil {
		t.Fatal("Medkit not found by ID")
	}
	if medkit.Kind != KindConsumable {
		t.Errorf("Expected medkit kind %q, got %q", KindConsumable, medkit.Kind)
	}
	if medkit.Heal != 50 {
		t.Errorf("Expected medkit heal 50, got %d", medkit.Heal)
	}

	if registry.GetByID("no_such_item") != nil {
		t.Error("Expected nil for unknown item ID")
	}

	// The starting loadout must contain at least one weapon
	base := registry.Base()
	if len(base) == 0 {
		t.Fatal("Expected base loadout items, got none")
	}
	hasWeapon := false
	for _, def := range base {
		if def.Kind == KindWeapon {
			hasWeapon = true
		}
	}
	if !hasWeapon {
		t.Error("Base loadout has no weapon")
	}
}

func TestLootRandom(t *testing.T) {
	registry := MustLoadItemRegistry()

	// Deterministic with the same seed
	rng1 := rand.New(rand.NewSource(99))
	rng2 := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		a := registry.LootRandom(rng1)
		b := registry.LootRandom(rng2)
		if a == nil || b == nil {
			t.Fatal("LootRandom returned nil with lootable items present")
		}
		if a.ID != b.ID {
			t.Errorf("Roll %d mismatch: %s != %s", i, a.ID, b.ID)
		}
	}

	// Zero-weight items never roll
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		def := registry.LootRandom(rng)
		if def.LootWeight <= 0 {
			t.Fatalf("Item %q with lootWeight %d rolled from container", def.ID, def.LootWeight)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#8b4513", true}, // lowercase accepted
		{"#FFFFFF", true},
		{"#000000", true},
		{"", false},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestEnemyDefMethods(t *testing.T) {
	def := EnemyDef{
		ID:          "test",
		Name:        "Test Enemy",
		Glyph:       "T",
		Color:       "#FF0000",
		HP:          10,
		Damage:      5,
		SpawnWeight: 50,
	}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}
}

func TestItemDefMaxStack(t *testing.T) {
	def := ItemDef{ID: "gear", Stack: 0}
	if def.MaxStack() != 1 {
		t.Errorf("Expected zero stack to clamp to 1, got %d", def.MaxStack())
	}
	def.Stack = 5
	if def.MaxStack() != 5 {
		t.Errorf("Expected stack 5, got %d", def.MaxStack())
	}
}
