// Package mission provides the objective set handed to the operator at
// the start of each raid.
package mission

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/ashgrowen/blackzone/internal/msglog"
	"github.com/ashgrowen/blackzone/internal/ui"
	"github.com/ashgrowen/blackzone/internal/world"
)

// Kind identifies an objective archetype.
type Kind int

const (
	// KindEliminate counts hostile kills.
	KindEliminate Kind = iota
	// KindScavenge counts items taken from containers.
	KindScavenge
	// KindBeacon requires activating a specific signal beacon.
	KindBeacon
	// KindSurvive requires staying alive for a tick count.
	KindSurvive
)

// ticksPerSecond matches the game loop cadence for survive labels.
const ticksPerSecond = 20

// Objective is one task in the raid's objective set.
type Objective struct {
	Kind     Kind
	Name     string
	Target   int
	Progress int
	X, Y     int // beacon site, only for KindBeacon
	Done     bool
}

// Manager owns the current raid's objectives and their progress.
type Manager struct {
	objectives []*Objective
	msgs       *msglog.Log
}

// NewManager creates a manager logging completions to the message log.
func NewManager(msgs *msglog.Log) *Manager {
	return &Manager{msgs: msgs}
}

// Setup rolls a fresh objective set for a raid: an elimination and a
// scavenge count, the zone's first signal beacon, and sometimes a
// survival timer.
func (m *Manager) Setup(zone *world.Zone, rng *rand.Rand) {
	m.objectives = m.objectives[:0]

	kills := 5 + rng.Intn(4)
	m.objectives = append(m.objectives, &Objective{
		Kind:   KindEliminate,
		Name:   fmt.Sprintf("Eliminate %d hostiles", kills),
		Target: kills,
	})

	items := 3 + rng.Intn(3)
	m.objectives = append(m.objectives, &Objective{
		Kind:   KindScavenge,
		Name:   fmt.Sprintf("Recover %d items", items),
		Target: items,
	})

	if beacons := zone.Beacons(); len(beacons) > 0 {
		b := beacons[rng.Intn(len(beacons))]
		m.objectives = append(m.objectives, &Objective{
			Kind:   KindBeacon,
			Name:   "Activate the signal beacon",
			Target: 1,
			X:      b.X,
			Y:      b.Y,
		})
	}

	if rng.Intn(2) == 0 {
		ticks := 1200 + rng.Intn(3)*600
		m.objectives = append(m.objectives, &Objective{
			Kind:   KindSurvive,
			Name:   fmt.Sprintf("Survive %d seconds", ticks/ticksPerSecond),
			Target: ticks,
		})
	}
}

// Update advances time-based objectives. tick is the raid tick counter.
func (m *Manager) Update(tick uint64) {
	for _, o := range m.objectives {
		if o.Done || o.Kind != KindSurvive {
			continue
		}
		o.Progress = int(tick)
		if o.Progress >= o.Target {
			m.complete(o)
		}
	}
}

// MarkKill credits one hostile kill.
func (m *Manager) MarkKill() {
	m.credit(KindEliminate, 1)
}

// MarkLoot credits items taken from containers.
func (m *Manager) MarkLoot(count int) {
	m.credit(KindScavenge, count)
}

// MarkBeacon reports a beacon activation at the tile. Returns true when
// it completed the beacon objective.
func (m *Manager) MarkBeacon(x, y int) bool {
	for _, o := range m.objectives {
		if o.Kind != KindBeacon || o.Done {
			continue
		}
		if o.X != x || o.Y != y {
			continue
		}
		o.Progress = o.Target
		m.complete(o)
		return true
	}
	return false
}

func (m *Manager) credit(kind Kind, count int) {
	for _, o := range m.objectives {
		if o.Kind != kind || o.Done {
			continue
		}
		o.Progress += count
		if o.Progress >= o.Target {
			o.Progress = o.Target
			m.complete(o)
		}
	}
}

func (m *Manager) complete(o *Objective) {
	o.Done = true
	m.msgs.Pushf(msglog.LevelInfo, "Objective complete: %s", o.Name)
}

// CompletedCount returns the number of finished objectives.
func (m *Manager) CompletedCount() int {
	done := 0
	for _, o := range m.objectives {
		if o.Done {
			done++
		}
	}
	return done
}

// Total returns the number of objectives in the set.
func (m *Manager) Total() int {
	return len(m.objectives)
}

// Objectives returns the raid's objective set.
func (m *Manager) Objectives() []*Objective {
	return m.objectives
}

// RenderMarkers highlights pending objective sites on the world view.
func (m *Manager) RenderMarkers(v *ui.View) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	for _, o := range m.objectives {
		if o.Kind != KindBeacon || o.Done {
			continue
		}
		v.SetWorld(o.X, o.Y, '!', style)
	}
}
