package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/ashgrowen/blackzone/internal/combat"
	"github.com/ashgrowen/blackzone/internal/gamedata"
	"github.com/ashgrowen/blackzone/internal/msglog"
	"github.com/ashgrowen/blackzone/internal/ui"
	"github.com/ashgrowen/blackzone/internal/world"
)

const (
	minSpawnDistance = 10 // tiles between a fresh spawn and the player
	spawnAttempts    = 200
)

// Enemy is one hostile in the zone, driven by its archetype definition.
type Enemy struct {
	Def   *gamedata.EnemyDef
	Name  string
	X, Y  int
	HP    int
	MaxHP int

	phase int // cadence offset so packs don't act in lockstep
}

// NewEnemyFromDef creates an enemy from an archetype at the position.
func NewEnemyFromDef(def *gamedata.EnemyDef, x, y int) *Enemy {
	return &Enemy{
		Def:   def,
		Name:  def.Name,
		X:     x,
		Y:     y,
		HP:    def.HP,
		MaxHP: def.HP,
	}
}

// Position returns the enemy's current x, y coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// TakeDamage reduces HP and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.HP {
		actual = e.HP
	}
	e.HP -= actual
	return actual
}

// Ensure enemies can be shot
var _ combat.Target = (*Enemy)(nil)

// Manager owns the hostile population of the current raid.
type Manager struct {
	enemies  []*Enemy
	registry *gamedata.EnemyRegistry
	resolver *combat.Resolver
	msgs     *msglog.Log
	rng      *rand.Rand
}

// NewManager creates an empty manager spawning from the given registry.
func NewManager(registry *gamedata.EnemyRegistry, resolver *combat.Resolver, msgs *msglog.Log) *Manager {
	return &Manager{
		registry: registry,
		resolver: resolver,
		msgs:     msgs,
	}
}

// Reset clears the population and installs the raid's rng stream.
func (m *Manager) Reset(rng *rand.Rand) {
	m.enemies = m.enemies[:0]
	m.rng = rng
}

// Generate spawns the initial population, each at least minSpawnDistance
// tiles from the player.
func (m *Manager) Generate(zone *world.Zone, count, px, py int) {
	for i := 0; i < count; i++ {
		m.SpawnOne(zone, px, py)
	}
}

// SpawnOne places one weighted-random enemy on open ground away from the
// player. Returns nil if no spot could be found.
func (m *Manager) SpawnOne(zone *world.Zone, px, py int) *Enemy {
	def := m.registry.SpawnRandom(m.rng)
	if def == nil {
		return nil
	}

	minDist := minSpawnDistance
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		if attempt == spawnAttempts/2 {
			minDist = minSpawnDistance / 2 // crowded zone, relax
		}
		x := 1 + m.rng.Intn(zone.Width-2)
		y := 1 + m.rng.Intn(zone.Height-2)
		if !zone.IsPassable(x, y) || zone.ExtractionAt(x, y) {
			continue
		}
		if chebyshev(x-px, y-py) < minDist {
			continue
		}
		if m.EnemyAt(x, y) != nil {
			continue
		}
		e := NewEnemyFromDef(def, x, y)
		e.phase = m.rng.Intn(100)
		m.enemies = append(m.enemies, e)
		return e
	}
	return nil
}

// Update runs one tick of chase-and-claw behavior for every living enemy:
// close on the player when sensed, strike when adjacent.
func (m *Manager) Update(tick uint64, zone *world.Zone, player *Player) {
	for _, e := range m.enemies {
		if !e.IsAlive() || !player.IsAlive() {
			continue
		}

		dist := chebyshev(e.X-player.X, e.Y-player.Y)
		if dist > e.Def.Sense {
			continue
		}

		if dist <= 1 {
			if e.Def.AttackEvery > 0 && (tick+uint64(e.phase))%uint64(e.Def.AttackEvery) == 0 {
				result := m.resolver.ResolveMelee(e.Def.Damage, player.ArmorValue(), player)
				m.msgs.Pushf(msglog.LevelWarning, "%s claws you for %d.", e.Name, result.Damage)
			}
			continue
		}

		if e.Def.MoveEvery > 0 && (tick+uint64(e.phase))%uint64(e.Def.MoveEvery) == 0 {
			m.stepToward(e, zone, player.X, player.Y)
		}
	}
}

// stepToward moves one tile toward the target, preferring the diagonal
// and falling back to the dominant axis.
func (m *Manager) stepToward(e *Enemy, zone *world.Zone, tx, ty int) {
	dx := sign(tx - e.X)
	dy := sign(ty - e.Y)

	steps := [3][2]int{{dx, dy}, {dx, 0}, {0, dy}}
	for _, s := range steps {
		if s[0] == 0 && s[1] == 0 {
			continue
		}
		nx, ny := e.X+s[0], e.Y+s[1]
		if nx == tx && ny == ty {
			continue // never share the player's tile
		}
		if !zone.IsPassable(nx, ny) {
			continue
		}
		if m.EnemyAt(nx, ny) != nil {
			continue
		}
		e.X, e.Y = nx, ny
		return
	}
}

// AliveCount returns the number of living enemies.
func (m *Manager) AliveCount() int {
	alive := 0
	for _, e := range m.enemies {
		if e.IsAlive() {
			alive++
		}
	}
	return alive
}

// EnemyAt returns the living enemy on the tile, or nil.
func (m *Manager) EnemyAt(x, y int) *Enemy {
	for _, e := range m.enemies {
		if e.IsAlive() && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// Remove deletes an enemy from the population (after a kill).
func (m *Manager) Remove(victim *Enemy) {
	for i, e := range m.enemies {
		if e == victim {
			m.enemies = append(m.enemies[:i], m.enemies[i+1:]...)
			return
		}
	}
}

// Enemies returns the current population, dead ones included until removed.
func (m *Manager) Enemies() []*Enemy {
	return m.enemies
}

// Render draws living enemies in their archetype glyph and color.
func (m *Manager) Render(v *ui.View) {
	for _, e := range m.enemies {
		if !e.IsAlive() {
			continue
		}
		v.SetWorld(e.X, e.Y, e.Def.GlyphRune(), tcell.StyleDefault.Foreground(e.Def.TCellColor()))
	}
}

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
