package gamedata

import "github.com/gdamore/tcell/v2"

// ItemKind classifies what an item does.
type ItemKind string

const (
	KindWeapon     ItemKind = "weapon"
	KindArmor      ItemKind = "armor"
	KindConsumable ItemKind = "consumable"
	KindValuable   ItemKind = "valuable"
)

// ItemDef defines an item type loaded from JSON.
type ItemDef struct {
	ID    string   `json:"id"`    // Unique identifier (e.g., "medkit")
	Name  string   `json:"name"`  // Display name (e.g., "Field Medkit")
	Glyph string   `json:"glyph"` // Single character for list rendering
	Color string   `json:"color"` // Hex color code (e.g., "#D0312D")
	Kind  ItemKind `json:"kind"`  // weapon | armor | consumable | valuable

	// Weapon fields
	Damage  int `json:"damage,omitempty"`  // Per-shot damage
	MagSize int `json:"magSize,omitempty"` // Rounds per magazine
	Reserve int `json:"reserve,omitempty"` // Reserve rounds at raid start

	// Armor fields
	Armor int `json:"armor,omitempty"` // Flat damage reduction while equipped

	// Consumable fields
	Heal  int `json:"heal,omitempty"`  // Health restored on use
	Regen int `json:"regen,omitempty"` // Regeneration window in ticks after use

	// Valuable fields
	Value int `json:"value,omitempty"` // Scrip value when extracted

	Stack      int  `json:"stack"`      // Max count per inventory slot (gear is 1)
	Base       bool `json:"base"`       // Part of the starting loadout, kept on death
	LootWeight int  `json:"lootWeight"` // Relative chance in loot containers (0 = never)
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ItemDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (d *ItemDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// MaxStack returns the per-slot stack limit, treating zero as 1.
func (d *ItemDef) MaxStack() int {
	if d.Stack < 1 {
		return 1
	}
	return d.Stack
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// MustLoadItems loads item definitions, panicking on error.
func MustLoadItems() []ItemDef {
	items, err := LoadItems()
	if err != nil {
		panic(err)
	}
	return items
}
