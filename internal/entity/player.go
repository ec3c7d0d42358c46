// Package entity provides the operator and the hostiles stalking the zone.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ashgrowen/blackzone/internal/combat"
	"github.com/ashgrowen/blackzone/internal/gamedata"
	"github.com/ashgrowen/blackzone/internal/item"
	"github.com/ashgrowen/blackzone/internal/ui"
)

const (
	baseMaxHealth    = 100
	healthPerLevel   = 10
	xpPerLevel       = 1000 // threshold scales with level
	regenTickDivisor = 10   // 1 HP per this many regen ticks
)

// Shot describes a fired round for the object pool to simulate.
type Shot struct {
	X, Y   int // muzzle tile
	DX, DY int // travel direction
	Damage int
}

// Player is the operator deployed into the zone. Level, XP and the base
// loadout survive between raids; position and health reset on deploy.
type Player struct {
	X, Y             int
	FacingX, FacingY int

	Health    int
	MaxHealth int
	Level     int
	XP        int

	inv        *item.Inventory
	regenTicks int
}

// NewPlayer creates a level-1 operator carrying the base loadout from the
// item registry.
func NewPlayer(items *gamedata.ItemRegistry) *Player {
	p := &Player{
		FacingX:   1,
		Health:    baseMaxHealth,
		MaxHealth: baseMaxHealth,
		Level:     1,
		inv:       item.NewInventory(),
	}
	for _, def := range items.Base() {
		it := item.New(def)
		p.inv.Add(it)
		if def.Kind == gamedata.KindWeapon && p.inv.Weapon() == nil {
			p.inv.Equip(it)
		}
	}
	return p
}

// Deploy places the operator at the raid insertion point with full health.
func (p *Player) Deploy(x, y int) {
	p.X = x
	p.Y = y
	p.FacingX, p.FacingY = 1, 0
	p.Health = p.MaxHealth
	p.regenTicks = 0
}

// Move turns the operator toward the direction and steps if the target
// tile is open. Returns true if the step was taken.
func (p *Player) Move(dx, dy int, open func(x, y int) bool) bool {
	p.FacingX, p.FacingY = dx, dy
	nx, ny := p.X+dx, p.Y+dy
	if open != nil && !open(nx, ny) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

// Fire spends one round from the equipped weapon's magazine. Returns the
// shot to simulate, or false on an empty magazine or bare hands.
func (p *Player) Fire() (Shot, bool) {
	w := p.inv.Weapon()
	if w == nil || w.Mag <= 0 {
		return Shot{}, false
	}
	w.Mag--
	return Shot{
		X:      p.X,
		Y:      p.Y,
		DX:     p.FacingX,
		DY:     p.FacingY,
		Damage: w.Def.Damage,
	}, true
}

// Reload tops up the magazine from reserve ammo and returns the number of
// rounds moved.
func (p *Player) Reload() int {
	w := p.inv.Weapon()
	if w == nil {
		return 0
	}
	need := w.Def.MagSize - w.Mag
	if need > w.Reserve {
		need = w.Reserve
	}
	if need <= 0 {
		return 0
	}
	w.Mag += need
	w.Reserve -= need
	return need
}

// CycleWeapon switches to the next carried weapon and returns its name,
// or "" when unarmed.
func (p *Player) CycleWeapon() string {
	w := p.inv.CycleWeapon()
	if w == nil {
		return ""
	}
	return w.Name()
}

// EquippedWeapon returns the current weapon stack, or nil.
func (p *Player) EquippedWeapon() *item.Item {
	return p.inv.Weapon()
}

// ArmorValue returns the flat melee mitigation from equipped armor.
func (p *Player) ArmorValue() int {
	return p.inv.ArmorValue()
}

// Inventory exposes the operator's inventory for overlay screens.
func (p *Player) Inventory() *item.Inventory {
	return p.inv
}

// QuickUse consumes the item bound to the 0-based quickslot. Returns the
// used definition for logging, or false if the slot is empty or the item
// is not consumable.
func (p *Player) QuickUse(slot int) (*gamedata.ItemDef, bool) {
	it := p.inv.Quick(slot)
	if it == nil {
		return nil, false
	}
	def := it.Def
	if !p.Consume(it) {
		return nil, false
	}
	return def, true
}

// Consume applies a consumable's effect and spends one from the stack.
// Returns false for non-consumables.
func (p *Player) Consume(it *item.Item) bool {
	if it.Def.Kind != gamedata.KindConsumable {
		return false
	}
	p.Heal(it.Def.Heal)
	if it.Def.Regen > 0 {
		p.regenTicks += it.Def.Regen
	}
	p.inv.Consume(it)
	return true
}

// Update advances per-tick player state: active regeneration from stims.
func (p *Player) Update() {
	if p.regenTicks <= 0 {
		return
	}
	p.regenTicks--
	if p.regenTicks%regenTickDivisor == 0 {
		p.Heal(1)
	}
}

// GrantXP awards experience and returns the number of levels gained.
// Each level requires Level*1000 XP and raises max health.
func (p *Player) GrantXP(amount int) int {
	p.XP += amount
	levels := 0
	for p.XP >= p.XPThreshold() {
		p.XP -= p.XPThreshold()
		p.Level++
		p.MaxHealth += healthPerLevel
		p.Health = p.MaxHealth
		levels++
	}
	return levels
}

// XPThreshold returns the experience needed to reach the next level.
func (p *Player) XPThreshold() int {
	return p.Level * xpPerLevel
}

// RestoreProgress applies persisted level and experience, scaling max
// health to match.
func (p *Player) RestoreProgress(level, xp int) {
	if level < 1 {
		level = 1
	}
	if xp < 0 {
		xp = 0
	}
	p.Level = level
	p.XP = xp
	p.MaxHealth = baseMaxHealth + (level-1)*healthPerLevel
	p.Health = p.MaxHealth
}

// IsAlive returns true if the operator has health remaining.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// TakeDamage reduces health and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}

// Heal restores health and returns the actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.Health+actual > p.MaxHealth {
		actual = p.MaxHealth - p.Health
	}
	p.Health += actual
	return actual
}

// Render draws the operator glyph.
func (p *Player) Render(v *ui.View) {
	v.SetWorld(p.X, p.Y, '@', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
}

// Ensure Player can be shot and struck
var _ combat.Target = (*Player)(nil)
