package item

import (
	"testing"

	"github.com/ashgrowen/blackzone/internal/gamedata"
)

func testRegistry(t *testing.T) *gamedata.ItemRegistry {
	t.Helper()
	return gamedata.MustLoadItemRegistry()
}

func TestItemNewWeaponStartsLoaded(t *testing.T) {
	registry := testRegistry(t)
	def := registry.GetByID("m9_pistol")
	if def == nil {
		t.Fatal("m9_pistol not found")
	}

	it := New(def)

	if it.Mag != def.MagSize {
		t.Errorf("Expected full magazine %d, got %d", def.MagSize, it.Mag)
	}
	if it.Reserve != def.Reserve {
		t.Errorf("Expected reserve %d, got %d", def.Reserve, it.Reserve)
	}
	if it.Count != 1 {
		t.Errorf("Expected count 1, got %d", it.Count)
	}
}

func TestNewStackClampsToLimit(t *testing.T) {
	registry := testRegistry(t)
	def := registry.GetByID("bandage")
	if def == nil {
		t.Fatal("bandage not found")
	}

	it := NewStack(def, 999)

	if it.Count != def.MaxStack() {
		t.Errorf("Expected count clamped to %d, got %d", def.MaxStack(), it.Count)
	}
}

func TestInventoryAddMergesStacks(t *testing.T) {
	registry := testRegistry(t)
	def := registry.GetByID("bandage")
	inv := NewInventory()

	if !inv.Add(New(def)) {
		t.Fatal("first add failed")
	}
	if !inv.Add(New(def)) {
		t.Fatal("second add failed")
	}

	// Bandages stack, so two singles should merge into one slot.
	if inv.Used() != 1 {
		t.Errorf("Expected 1 occupied slot, got %d", inv.Used())
	}
	if inv.Items()[0].Count != 2 {
		t.Errorf("Expected merged count 2, got %d", inv.Items()[0].Count)
	}
}

func TestInventoryWeaponsNeverMerge(t *testing.T) {
	registry := testRegistry(t)
	def := registry.GetByID("m9_pistol")
	inv := NewInventory()

	inv.Add(New(def))
	inv.Add(New(def))

	if inv.Used() != 2 {
		t.Errorf("Expected 2 slots for 2 weapons, got %d", inv.Used())
	}
}

func TestInventoryAddFull(t *testing.T) {
	registry := testRegistry(t)
	def := registry.GetByID("m9_pistol")
	inv := NewInventory()

	for i := 0; i < MaxSlots; i++ {
		if !inv.Add(New(def)) {
			t.Fatalf("add %d failed before capacity", i)
		}
	}

	if inv.Add(New(def)) {
		t.Error("add should fail when inventory is full")
	}
	if inv.Used() != MaxSlots {
		t.Errorf("Expected %d slots used, got %d", MaxSlots, inv.Used())
	}
}

func TestInventoryRemoveClearsBindings(t *testing.T) {
	registry := testRegistry(t)
	inv := NewInventory()

	weapon := New(registry.GetByID("m9_pistol"))
	heal := New(registry.GetByID("bandage"))
	inv.Add(weapon)
	inv.Add(heal)
	inv.Equip(weapon)
	inv.BindQuick(0, heal)

	inv.Remove(weapon)
	inv.Remove(heal)

	if inv.Weapon() != nil {
		t.Error("removed weapon should be unequipped")
	}
	if inv.Quick(0) != nil {
		t.Error("removed item should be unbound from quickslot")
	}
	if inv.Used() != 0 {
		t.Errorf("Expected empty inventory, got %d slots", inv.Used())
	}
}

func TestInventoryConsumeRemovesEmptyStack(t *testing.T) {
	registry := testRegistry(t)
	inv := NewInventory()

	heal := NewStack(registry.GetByID("bandage"), 2)
	inv.Add(heal)
	inv.BindQuick(2, heal)

	inv.Consume(heal)
	if inv.Used() != 1 {
		t.Errorf("Expected stack to survive at count 1, got %d slots", inv.Used())
	}
	if inv.Quick(2) != heal {
		t.Error("quickslot binding should survive partial consumption")
	}

	inv.Consume(heal)
	if inv.Used() != 0 {
		t.Errorf("Expected stack removed at count 0, got %d slots", inv.Used())
	}
	if inv.Quick(2) != nil {
		t.Error("quickslot should clear when the stack is consumed")
	}
}

func TestInventoryEquipRejectsNonGear(t *testing.T) {
	registry := testRegistry(t)
	inv := NewInventory()

	heal := New(registry.GetByID("bandage"))
	inv.Add(heal)

	if inv.Equip(heal) {
		t.Error("consumables should not be equippable")
	}
}

func TestInventoryCycleWeapon(t *testing.T) {
	registry := testRegistry(t)
	inv := NewInventory()

	first := New(registry.GetByID("m9_pistol"))
	second := New(registry.GetByID("m9_pistol"))
	inv.Add(first)
	inv.Add(second)
	inv.Equip(first)

	if got := inv.CycleWeapon(); got != second {
		t.Error("cycle should move to the next weapon in slot order")
	}
	if got := inv.CycleWeapon(); got != first {
		t.Error("cycle should wrap back to the first weapon")
	}
}

func TestInventoryCycleWeaponEmpty(t *testing.T) {
	inv := NewInventory()
	if inv.CycleWeapon() != nil {
		t.Error("cycling with no weapons should return nil")
	}
}

func TestInventoryBindQuickMovesBinding(t *testing.T) {
	registry := testRegistry(t)
	inv := NewInventory()

	heal := New(registry.GetByID("bandage"))
	inv.Add(heal)

	inv.BindQuick(0, heal)
	inv.BindQuick(3, heal)

	if inv.Quick(0) != nil {
		t.Error("old quickslot should clear when rebinding")
	}
	if inv.Quick(3) != heal {
		t.Error("new quickslot should hold the item")
	}
	if inv.QuickIndex(heal) != 4 {
		t.Errorf("Expected 1-based quick index 4, got %d", inv.QuickIndex(heal))
	}
}

func TestInventoryBindQuickOutOfRange(t *testing.T) {
	registry := testRegistry(t)
	inv := NewInventory()
	heal := New(registry.GetByID("bandage"))
	inv.Add(heal)

	if inv.BindQuick(-1, heal) {
		t.Error("negative slot should be rejected")
	}
	if inv.BindQuick(QuickSlots, heal) {
		t.Error("slot past the limit should be rejected")
	}
}

func TestStripMissionLootKeepsBaseGear(t *testing.T) {
	registry := testRegistry(t)
	inv := NewInventory()

	// Base loadout plus raid loot: a better weapon (equipped) and scrap.
	pistol := New(registry.GetByID("m9_pistol"))
	bandage := New(registry.GetByID("bandage"))
	carbine := New(registry.GetByID("carbine"))
	scrap := NewStack(registry.GetByID("scrap"), 3)
	inv.Add(pistol)
	inv.Add(bandage)
	inv.Add(carbine)
	inv.Add(scrap)
	inv.Equip(carbine)
	inv.BindQuick(0, scrap)

	lost := inv.StripMissionLoot()

	if lost != 2 {
		t.Errorf("Expected 2 stacks lost, got %d", lost)
	}
	if !inv.HasDef(pistol.Def) || !inv.HasDef(bandage.Def) {
		t.Error("base loadout should survive the strip")
	}
	if inv.HasDef(carbine.Def) || inv.HasDef(scrap.Def) {
		t.Error("raid loot should be gone after the strip")
	}
	if inv.Weapon() != pistol {
		t.Error("the base pistol should be re-equipped after losing the carbine")
	}
	if inv.Quick(0) != nil {
		t.Error("quickslot bound to lost loot should clear")
	}
}
