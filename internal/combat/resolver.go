// Package combat provides damage resolution for raid encounters.
package combat

// Target is the interface for anything that can be shot or struck.
// The player and enemies both implement it.
type Target interface {
	IsAlive() bool
	TakeDamage(amount int) int // Returns actual damage taken
}

// Result contains the outcome of a resolved hit.
type Result struct {
	Damage int
	Killed bool
}

// Resolver calculates and applies weapon and melee damage.
type Resolver struct{}

// NewResolver creates a new damage resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveShot applies projectile damage to the target. Shots are not
// mitigated; armor only matters against melee.
func (r *Resolver) ResolveShot(power int, target Target) Result {
	if power < 1 {
		power = 1
	}
	actual := target.TakeDamage(power)
	return Result{
		Damage: actual,
		Killed: !target.IsAlive(),
	}
}

// ResolveMelee applies a melee strike, reduced by the target's flat armor
// value. A connecting strike always deals at least 1 damage.
func (r *Resolver) ResolveMelee(power, armor int, target Target) Result {
	actual := target.TakeDamage(r.CalculateMelee(power, armor))
	return Result{
		Damage: actual,
		Killed: !target.IsAlive(),
	}
}

// CalculateMelee returns the mitigated melee damage without applying it.
func (r *Resolver) CalculateMelee(power, armor int) int {
	damage := power - armor
	if damage < 1 {
		damage = 1
	}
	return damage
}
