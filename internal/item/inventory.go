package item

import "github.com/ashgrowen/blackzone/internal/gamedata"

const (
	// MaxSlots is the inventory stack limit.
	MaxSlots = 20
	// QuickSlots is the number of quick-use bindings (keys 1-5).
	QuickSlots = 5
)

// Inventory is the player's bounded item storage plus the equipped gear
// and quickslot bindings. Bindings and equipment point at stacks held in
// the slot list; removing a stack clears anything referring to it.
type Inventory struct {
	slots []*Item

	weapon *Item
	armor  *Item
	quick  [QuickSlots]*Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{slots: make([]*Item, 0, MaxSlots)}
}

// Items returns the stacks in slot order.
func (inv *Inventory) Items() []*Item {
	return inv.slots
}

// Used returns the number of occupied slots.
func (inv *Inventory) Used() int {
	return len(inv.slots)
}

// Capacity returns the slot limit.
func (inv *Inventory) Capacity() int {
	return MaxSlots
}

// Add stores a stack, merging into an existing stack of the same
// definition when it fits. Returns false when the inventory is full;
// the stack is never partially applied.
func (inv *Inventory) Add(it *Item) bool {
	if it.Def.MaxStack() > 1 {
		for _, s := range inv.slots {
			if s.Def == it.Def && s.Count+it.Count <= s.Def.MaxStack() {
				s.Count += it.Count
				return true
			}
		}
	}
	if len(inv.slots) >= MaxSlots {
		return false
	}
	inv.slots = append(inv.slots, it)
	return true
}

// Remove deletes a stack from the inventory, unequipping it and clearing
// any quickslot bound to it.
func (inv *Inventory) Remove(it *Item) {
	for i, s := range inv.slots {
		if s == it {
			inv.slots = append(inv.slots[:i], inv.slots[i+1:]...)
			break
		}
	}
	if inv.weapon == it {
		inv.weapon = nil
	}
	if inv.armor == it {
		inv.armor = nil
	}
	for i, q := range inv.quick {
		if q == it {
			inv.quick[i] = nil
		}
	}
}

// Consume removes one count from a stack, deleting the stack when it
// reaches zero.
func (inv *Inventory) Consume(it *Item) {
	it.Count--
	if it.Count <= 0 {
		inv.Remove(it)
	}
}

// Equip makes the stack the active weapon or armor depending on its kind.
// Returns false for kinds that cannot be equipped.
func (inv *Inventory) Equip(it *Item) bool {
	switch it.Def.Kind {
	case gamedata.KindWeapon:
		inv.weapon = it
		return true
	case gamedata.KindArmor:
		inv.armor = it
		return true
	default:
		return false
	}
}

// Weapon returns the equipped weapon stack, or nil.
func (inv *Inventory) Weapon() *Item {
	return inv.weapon
}

// Armor returns the equipped armor stack, or nil.
func (inv *Inventory) Armor() *Item {
	return inv.armor
}

// ArmorValue returns the flat damage reduction of the equipped armor.
func (inv *Inventory) ArmorValue() int {
	if inv.armor == nil {
		return 0
	}
	return inv.armor.Def.Armor
}

// Weapons returns all weapon stacks in slot order.
func (inv *Inventory) Weapons() []*Item {
	var out []*Item
	for _, s := range inv.slots {
		if s.Def.Kind == gamedata.KindWeapon {
			out = append(out, s)
		}
	}
	return out
}

// CycleWeapon equips the next weapon after the current one in slot order
// and returns it. Returns nil when no weapon is carried.
func (inv *Inventory) CycleWeapon() *Item {
	weapons := inv.Weapons()
	if len(weapons) == 0 {
		return nil
	}
	next := 0
	for i, w := range weapons {
		if w == inv.weapon {
			next = (i + 1) % len(weapons)
			break
		}
	}
	inv.weapon = weapons[next]
	return inv.weapon
}

// BindQuick assigns a stack to a quickslot (0-based). A stack may occupy
// only one slot; binding moves it.
func (inv *Inventory) BindQuick(slot int, it *Item) bool {
	if slot < 0 || slot >= QuickSlots {
		return false
	}
	for i, q := range inv.quick {
		if q == it {
			inv.quick[i] = nil
		}
	}
	inv.quick[slot] = it
	return true
}

// Quick returns the stack bound to a quickslot (0-based), or nil.
func (inv *Inventory) Quick(slot int) *Item {
	if slot < 0 || slot >= QuickSlots {
		return nil
	}
	return inv.quick[slot]
}

// QuickIndex returns the 1-based quickslot the stack is bound to, or 0.
func (inv *Inventory) QuickIndex(it *Item) int {
	for i, q := range inv.quick {
		if q == it {
			return i + 1
		}
	}
	return 0
}

// StripMissionLoot removes every stack not flagged as base loadout and
// returns the number of stacks lost. Called when a raid is failed.
func (inv *Inventory) StripMissionLoot() int {
	kept := inv.slots[:0]
	lost := 0
	for _, s := range inv.slots {
		if s.Def.Base {
			kept = append(kept, s)
			continue
		}
		lost++
		if inv.weapon == s {
			inv.weapon = nil
		}
		if inv.armor == s {
			inv.armor = nil
		}
		for i, q := range inv.quick {
			if q == s {
				inv.quick[i] = nil
			}
		}
	}
	inv.slots = kept

	// Fall back to a base weapon so the operator is never unarmed.
	if inv.weapon == nil {
		for _, w := range inv.Weapons() {
			inv.weapon = w
			break
		}
	}
	return lost
}

// HasDef reports whether any stack uses the given definition.
func (inv *Inventory) HasDef(def *gamedata.ItemDef) bool {
	for _, s := range inv.slots {
		if s.Def == def {
			return true
		}
	}
	return false
}
