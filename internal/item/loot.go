package item

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/ashgrowen/blackzone/internal/gamedata"
	"github.com/ashgrowen/blackzone/internal/ui"
	"github.com/ashgrowen/blackzone/internal/world"
)

// Container is a lootable cache placed somewhere in the zone.
type Container struct {
	X, Y  int
	Name  string
	Items []*Item
}

// Empty reports whether everything has been taken.
func (c *Container) Empty() bool {
	return len(c.Items) == 0
}

// Remove deletes a stack from the container.
func (c *Container) Remove(it *Item) {
	for i, s := range c.Items {
		if s == it {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

var containerNames = []string{
	"Supply Crate",
	"Ammo Box",
	"Field Cache",
	"Abandoned Pack",
}

var (
	containerStyle = tcell.StyleDefault.Foreground(tcell.ColorTan)
	emptyStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
)

// LootManager places containers for a raid and answers proximity queries.
type LootManager struct {
	registry   *gamedata.ItemRegistry
	containers []*Container
}

// NewLootManager creates a manager rolling loot from the given registry.
func NewLootManager(registry *gamedata.ItemRegistry) *LootManager {
	return &LootManager{registry: registry}
}

// Containers returns the containers placed for the current raid.
func (lm *LootManager) Containers() []*Container {
	return lm.containers
}

// Generate discards the previous raid's containers and rolls new ones into
// roughly half the buildings, each holding 1-4 random items.
func (lm *LootManager) Generate(zone *world.Zone, rng *rand.Rand) {
	lm.containers = lm.containers[:0]

	for _, b := range zone.Buildings() {
		if rng.Intn(100) >= 55 {
			continue
		}
		if b.Width < 4 || b.Height < 4 {
			continue
		}
		x := b.X + 1 + rng.Intn(b.Width-2)
		y := b.Y + 1 + rng.Intn(b.Height-2)
		if !zone.IsPassable(x, y) {
			continue
		}

		c := &Container{
			X:    x,
			Y:    y,
			Name: containerNames[rng.Intn(len(containerNames))],
		}
		rolls := 1 + rng.Intn(4)
		for i := 0; i < rolls; i++ {
			def := lm.registry.LootRandom(rng)
			if def == nil {
				continue
			}
			c.Items = append(c.Items, New(def))
		}
		if len(c.Items) > 0 {
			lm.containers = append(lm.containers, c)
		}
	}
}

// ContainerNear returns a container within one cell of the position, or
// nil. Looted-out containers still count so the player can re-check them.
func (lm *LootManager) ContainerNear(x, y int) *Container {
	for _, c := range lm.containers {
		dx, dy := c.X-x, c.Y-y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx <= 1 && dy <= 1 {
			return c
		}
	}
	return nil
}

// Render draws container glyphs into the world view. Emptied containers
// dim out but stay visible.
func (lm *LootManager) Render(v *ui.View) {
	for _, c := range lm.containers {
		st := containerStyle
		if c.Empty() {
			st = emptyStyle
		}
		v.SetWorld(c.X, c.Y, '□', st)
	}
}
