// Package objects provides the pooled transient world objects: rounds in
// flight and the impact flashes they leave behind.
package objects

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"

	"github.com/ashgrowen/blackzone/internal/ui"
)

const (
	projectileTTL  = 30 // ticks before a round is lost to the zone
	flashTTL       = 3  // ticks an impact marker lingers
	projectileStep = 2  // tiles advanced per tick
)

// Position is a tile coordinate component.
type Position struct {
	X, Y int
}

// Velocity is a per-tick direction component.
type Velocity struct {
	DX, DY int
}

// Projectile marks an entity as a round in flight.
type Projectile struct {
	Damage int
	TTL    int
}

// Flash marks an entity as a fading impact marker.
type Flash struct {
	TTL int
}

var (
	projectileStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	flashStyle      = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
)

// Manager owns the entity pool for transient objects. Everything in it
// lives for a handful of ticks and is cleared wholesale between raids.
type Manager struct {
	world ecs.World

	projectiles ecs.Map3[Position, Velocity, Projectile]
	flashes     ecs.Map2[Position, Flash]

	projFilter  *ecs.Filter3[Position, Velocity, Projectile]
	flashFilter *ecs.Filter2[Position, Flash]
}

// NewManager creates an empty object pool.
func NewManager() *Manager {
	m := &Manager{world: ecs.NewWorld(256)}
	m.projectiles = ecs.NewMap3[Position, Velocity, Projectile](&m.world)
	m.flashes = ecs.NewMap2[Position, Flash](&m.world)
	m.projFilter = ecs.NewFilter3[Position, Velocity, Projectile](&m.world)
	m.flashFilter = ecs.NewFilter2[Position, Flash](&m.world)
	return m
}

// SpawnProjectile adds a round at the muzzle tile heading along (dx, dy).
func (m *Manager) SpawnProjectile(x, y, dx, dy, damage int) {
	if dx == 0 && dy == 0 {
		return
	}
	m.projectiles.NewEntity(
		&Position{X: x, Y: y},
		&Velocity{DX: dx, DY: dy},
		&Projectile{Damage: damage, TTL: projectileTTL},
	)
}

// SpawnFlash adds an impact marker at the tile.
func (m *Manager) SpawnFlash(x, y int) {
	m.flashes.NewEntity(&Position{X: x, Y: y}, &Flash{TTL: flashTTL})
}

// Update advances every pooled object one tick. passable reports whether
// a tile can be flown through; strike is called for each tile a round
// enters and returns true when it hit something there, consuming the
// round. Structural changes are deferred until iteration finishes
// because the world is locked during queries.
func (m *Manager) Update(passable func(x, y int) bool, strike func(x, y, damage int) bool) {
	var dead []ecs.Entity
	var impacts []Position

	query := m.projFilter.Query()
	for query.Next() {
		pos, vel, proj := query.Get()

		removed := false
		for step := 0; step < projectileStep; step++ {
			nx, ny := pos.X+vel.DX, pos.Y+vel.DY

			if strike != nil && strike(nx, ny, proj.Damage) {
				impacts = append(impacts, Position{X: nx, Y: ny})
				dead = append(dead, query.Entity())
				removed = true
				break
			}
			if passable != nil && !passable(nx, ny) {
				impacts = append(impacts, Position{X: nx, Y: ny})
				dead = append(dead, query.Entity())
				removed = true
				break
			}
			pos.X, pos.Y = nx, ny
		}
		if removed {
			continue
		}

		proj.TTL--
		if proj.TTL <= 0 {
			dead = append(dead, query.Entity())
		}
	}

	flashQuery := m.flashFilter.Query()
	for flashQuery.Next() {
		_, f := flashQuery.Get()
		f.TTL--
		if f.TTL <= 0 {
			dead = append(dead, flashQuery.Entity())
		}
	}

	for _, e := range dead {
		m.world.RemoveEntity(e)
	}
	for _, p := range impacts {
		m.SpawnFlash(p.X, p.Y)
	}
}

// Render draws rounds over the world, then impact flashes over the rounds.
func (m *Manager) Render(v *ui.View) {
	query := m.projFilter.Query()
	for query.Next() {
		pos, vel, _ := query.Get()
		glyph := '-'
		if vel.DX == 0 {
			glyph = '|'
		}
		v.SetWorld(pos.X, pos.Y, glyph, projectileStyle)
	}

	flashQuery := m.flashFilter.Query()
	for flashQuery.Next() {
		pos, _ := flashQuery.Get()
		v.SetWorld(pos.X, pos.Y, '*', flashStyle)
	}
}

// Reset removes every pooled object. Called when a raid starts.
func (m *Manager) Reset() {
	var all []ecs.Entity

	query := m.projFilter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	flashQuery := m.flashFilter.Query()
	for flashQuery.Next() {
		all = append(all, flashQuery.Entity())
	}

	for _, e := range all {
		m.world.RemoveEntity(e)
	}
}

// ProjectileCount returns the number of rounds in flight.
func (m *Manager) ProjectileCount() int {
	n := 0
	query := m.projFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// FlashCount returns the number of live impact markers.
func (m *Manager) FlashCount() int {
	n := 0
	query := m.flashFilter.Query()
	for query.Next() {
		n++
	}
	return n
}
