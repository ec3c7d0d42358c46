// Package item provides runtime item stacks, the player inventory, and
// loot containers scattered through the zone.
package item

import (
	"fmt"

	"github.com/ashgrowen/blackzone/internal/gamedata"
)

// Item is one inventory stack of a single definition. Weapons carry their
// own magazine and reserve ammo state per instance.
type Item struct {
	Def   *gamedata.ItemDef
	Count int

	// Weapon state (zero for non-weapons)
	Mag     int
	Reserve int
}

// New creates a single-count stack of the given definition. Weapons start
// with a full magazine and their listed reserve.
func New(def *gamedata.ItemDef) *Item {
	it := &Item{Def: def, Count: 1}
	if def.Kind == gamedata.KindWeapon {
		it.Mag = def.MagSize
		it.Reserve = def.Reserve
	}
	return it
}

// NewStack creates a stack with the given count, clamped to the
// definition's stack limit.
func NewStack(def *gamedata.ItemDef, count int) *Item {
	it := New(def)
	if count < 1 {
		count = 1
	}
	if count > def.MaxStack() {
		count = def.MaxStack()
	}
	it.Count = count
	return it
}

// Name returns the display name.
func (it *Item) Name() string {
	return it.Def.Name
}

// Detail returns the short stat string shown next to the item in lists.
func (it *Item) Detail() string {
	switch it.Def.Kind {
	case gamedata.KindWeapon:
		return fmt.Sprintf("dmg %d", it.Def.Damage)
	case gamedata.KindArmor:
		return fmt.Sprintf("def %d", it.Def.Armor)
	case gamedata.KindConsumable:
		return fmt.Sprintf("heal %d", it.Def.Heal)
	case gamedata.KindValuable:
		return fmt.Sprintf("val %d", it.Def.Value)
	default:
		return ""
	}
}
