package game

import (
	"context"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/ashgrowen/blackzone/internal/gamedata"
	"github.com/ashgrowen/blackzone/internal/item"
	"github.com/ashgrowen/blackzone/internal/msglog"
	"github.com/ashgrowen/blackzone/internal/ui"
	"github.com/ashgrowen/blackzone/internal/world"
)

// handleEvent routes one terminal event. Key events go to the current
// mode's handler; unmapped keys are ignored.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			g.running = false
			return
		}
		if handler, ok := g.inputHandlers[g.sm.Current()]; ok {
			handler(ctx, ev)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// buildInputHandlers returns the closed mode-to-handler mapping.
func (g *Game) buildInputHandlers() map[Mode]func(context.Context, *tcell.EventKey) {
	return map[Mode]func(context.Context, *tcell.EventKey){
		ModeMainMenu:  g.handleMainMenuKey,
		ModeActive:    g.handleActiveKey,
		ModeInventory: g.handleInventoryKey,
		ModeLooting:   g.handleLootingKey,
		ModeGameOver:  g.handleGameOverKey,
		ModePaused:    g.handlePausedKey,
		ModeMap:       g.handleMapKey,
		ModeCharacter: g.handleCharacterKey,
		ModeHelp:      g.handleHelpKey,
	}
}

// keyRune returns the lowercased rune of a character key, or 0 for
// special keys.
func keyRune(ev *tcell.EventKey) rune {
	if ev.Key() != tcell.KeyRune {
		return 0
	}
	return unicode.ToLower(ev.Rune())
}

func (g *Game) handleMainMenuKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		g.startRaid(ctx)
		return
	case tcell.KeyEscape:
		g.running = false
		return
	}
	if keyRune(ev) == 'h' {
		g.transition(ModeHelp)
	}
}

func (g *Game) handleActiveKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		g.transition(ModeMainMenu)
		return
	case tcell.KeyTab:
		if name := g.player.CycleWeapon(); name != "" {
			g.msgs.Pushf(msglog.LevelInfo, "Switched to %s.", name)
		}
		return
	}

	switch r := keyRune(ev); r {
	case 'w':
		g.movePlayer(0, -1)
	case 's':
		g.movePlayer(0, 1)
	case 'a':
		g.movePlayer(-1, 0)
	case 'd':
		g.movePlayer(1, 0)
	case ' ':
		g.fire()
	case 'r':
		g.reload()
	case 'e':
		g.interact()
	case 'f':
		g.tryExtract(ctx)
	case 'i':
		g.invScreen.Reset()
		g.transition(ModeInventory)
	case 'c':
		g.transition(ModeCharacter)
	case 'm':
		g.transition(ModeMap)
	case 'h':
		g.transition(ModeHelp)
	case 'p':
		g.transition(ModePaused)
	case '1', '2', '3', '4', '5':
		g.quickUse(int(r - '1'))
	}
}

func (g *Game) handleInventoryKey(_ context.Context, ev *tcell.EventKey) {
	items := g.inventoryItems()

	switch ev.Key() {
	case tcell.KeyEscape:
		g.transition(ModeActive)
		return
	case tcell.KeyUp:
		g.invScreen.MoveCursor(-1, len(items))
		return
	case tcell.KeyDown:
		g.invScreen.MoveCursor(1, len(items))
		return
	case tcell.KeyLeft:
		g.invScreen.SwitchTab(-1)
		return
	case tcell.KeyRight:
		g.invScreen.SwitchTab(1)
		return
	case tcell.KeyEnter:
		if it := selectedItem(items, g.invScreen.Cursor); it != nil {
			if g.player.Consume(it) {
				g.msgs.Pushf(msglog.LevelInfo, "Used %s.", it.Name())
				g.invScreen.MoveCursor(0, len(g.inventoryItems()))
			}
		}
		return
	case tcell.KeyTab:
		if it := selectedItem(items, g.invScreen.Cursor); it != nil {
			if g.player.Inventory().Equip(it) {
				g.msgs.Pushf(msglog.LevelInfo, "Equipped %s.", it.Name())
			}
		}
		return
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		if it := selectedItem(items, g.invScreen.Cursor); it != nil {
			g.player.Inventory().Remove(it)
			g.msgs.Pushf(msglog.LevelInfo, "Dropped %s.", it.Name())
			g.invScreen.MoveCursor(0, len(g.inventoryItems()))
		}
		return
	}

	switch r := keyRune(ev); r {
	case 'i':
		g.transition(ModeActive)
	case '1', '2', '3', '4', '5':
		if it := selectedItem(items, g.invScreen.Cursor); it != nil {
			if g.player.Inventory().BindQuick(int(r-'1'), it) {
				g.msgs.Pushf(msglog.LevelInfo, "%s bound to slot %c.", it.Name(), r)
			}
		}
	}
}

func (g *Game) handleLootingKey(_ context.Context, ev *tcell.EventKey) {
	c := g.openContainer
	if c == nil {
		g.transition(ModeActive)
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		g.transition(ModeActive)
		return
	case tcell.KeyUp:
		g.lootScreen.MoveCursor(-1, len(c.Items))
		return
	case tcell.KeyDown:
		g.lootScreen.MoveCursor(1, len(c.Items))
		return
	case tcell.KeyEnter:
		g.takeSelected(c)
		return
	}

	switch keyRune(ev) {
	case 'e':
		g.transition(ModeActive)
	case 't':
		g.takeAll(c)
	}
}

func (g *Game) handleGameOverKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		g.startRaid(ctx)
	case tcell.KeyEscape:
		g.transition(ModeMainMenu)
	}
}

func (g *Game) handlePausedKey(_ context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		g.transition(ModeActive)
		return
	}
	switch keyRune(ev) {
	case 'p':
		g.transition(ModeActive)
	case 'm':
		g.transition(ModeMainMenu)
	}
}

func (g *Game) handleMapKey(_ context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || keyRune(ev) == 'm' {
		g.transition(ModeActive)
	}
}

func (g *Game) handleCharacterKey(_ context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || keyRune(ev) == 'c' {
		g.transition(ModeActive)
	}
}

func (g *Game) handleHelpKey(_ context.Context, ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyEscape && keyRune(ev) != 'h' {
		return
	}
	// Help returns to wherever it was opened from.
	if g.sm.Previous() == ModeMainMenu {
		g.transition(ModeMainMenu)
	} else {
		g.transition(ModeActive)
	}
}

// movePlayer steps the operator, blocked by terrain and hostiles.
func (g *Game) movePlayer(dx, dy int) {
	g.player.Move(dx, dy, func(x, y int) bool {
		return g.zone.IsPassable(x, y) && g.enemies.EnemyAt(x, y) == nil
	})
}

// fire spawns a projectile along the operator's facing.
func (g *Game) fire() {
	shot, ok := g.player.Fire()
	if !ok {
		g.msgs.Push(msglog.LevelWarning, "Click. Magazine empty.")
		return
	}
	g.objects.SpawnProjectile(shot.X, shot.Y, shot.DX, shot.DY, shot.Damage)
	g.cues.Shot()
}

func (g *Game) reload() {
	w := g.player.EquippedWeapon()
	if w == nil || w.Mag >= w.Def.MagSize {
		return
	}
	if moved := g.player.Reload(); moved > 0 {
		g.msgs.Pushf(msglog.LevelInfo, "Reloaded %d rounds.", moved)
	} else {
		g.msgs.Push(msglog.LevelWarning, "No reserve ammo.")
	}
}

// interact checks what is next to the operator, one target per press:
// containers first, then map features, then the extraction pad.
func (g *Game) interact() {
	if c := g.loot.ContainerNear(g.player.X, g.player.Y); c != nil {
		g.openContainer = c
		g.lootScreen.Reset()
		g.transition(ModeLooting)
		return
	}
	if f := g.zone.FeatureNear(g.player.X, g.player.Y); f != nil {
		g.useFeature(f)
		return
	}
	if g.zone.ExtractionAt(g.player.X, g.player.Y) {
		g.msgs.Push(msglog.LevelInfo, "Extraction pad ready. Press F to get out.")
		return
	}
	g.msgs.Push(msglog.LevelInfo, "Nothing to interact with here.")
}

func (g *Game) useFeature(f *world.Feature) {
	switch f.Kind {
	case world.FeatureMedStation:
		if f.Used {
			g.msgs.Push(msglog.LevelInfo, "The med station is spent.")
			return
		}
		healed := g.player.Heal(g.player.MaxHealth)
		f.Used = true
		g.msgs.Pushf(msglog.LevelInfo, "The med station hisses. +%d HP.", healed)

	case world.FeatureCache:
		if f.Used {
			g.msgs.Push(msglog.LevelInfo, "The cache has been stripped.")
			return
		}
		def := g.itemReg.LootRandom(g.rng)
		if def == nil {
			f.Used = true
			g.msgs.Push(msglog.LevelInfo, "The cache has been stripped.")
			return
		}
		if !g.player.Inventory().Add(item.New(def)) {
			g.msgs.Push(msglog.LevelWarning, "Inventory full.")
			return
		}
		f.Used = true
		g.cues.Pickup()
		g.raid.lootTaken++
		g.missions.MarkLoot(1)
		g.msgs.Pushf(msglog.LevelLoot, "Found %s in the cache.", def.Name)

	case world.FeatureBeacon:
		if g.missions.MarkBeacon(f.X, f.Y) {
			f.Used = true
			return
		}
		g.msgs.Push(msglog.LevelInfo, "The beacon crackles. Wrong frequency.")
	}
}

// tryExtract runs the extraction hold and rolls straight into the next
// raid on success.
func (g *Game) tryExtract(ctx context.Context) {
	if !g.zone.ExtractionAt(g.player.X, g.player.Y) {
		g.msgs.Push(msglog.LevelInfo, "No extraction pad here.")
		return
	}
	g.msgs.Push(msglog.LevelCritical, "Extracting...")
	time.Sleep(extractionDelay)
	g.finishRaid(ctx, true)
	g.startRaid(ctx)
}

func (g *Game) quickUse(slot int) {
	if def, ok := g.player.QuickUse(slot); ok {
		g.msgs.Pushf(msglog.LevelInfo, "Used %s.", def.Name)
	}
}

// takeSelected moves the highlighted item into the inventory and closes
// the container when it empties.
func (g *Game) takeSelected(c *item.Container) {
	if g.lootScreen.Cursor >= len(c.Items) {
		return
	}
	it := c.Items[g.lootScreen.Cursor]
	if !g.player.Inventory().Add(it) {
		g.msgs.Push(msglog.LevelWarning, "Inventory full.")
		return
	}
	c.Remove(it)
	g.msgs.Pushf(msglog.LevelLoot, "Took %s.", it.Name())
	g.cues.Pickup()
	g.raid.lootTaken++
	g.missions.MarkLoot(1)

	g.lootScreen.MoveCursor(0, len(c.Items))
	if c.Empty() {
		g.transition(ModeActive)
	}
}

// takeAll drains the container in order, stopping at the first item
// that no longer fits.
func (g *Game) takeAll(c *item.Container) {
	snapshot := append([]*item.Item(nil), c.Items...)
	taken := 0
	full := false
	for _, it := range snapshot {
		if !g.player.Inventory().Add(it) {
			full = true
			break
		}
		c.Remove(it)
		taken++
	}

	g.msgs.Pushf(msglog.LevelLoot, "Took %d items.", taken)
	if full {
		g.msgs.Push(msglog.LevelWarning, "Inventory full.")
	}
	if taken > 0 {
		g.cues.Pickup()
		g.raid.lootTaken += taken
		g.missions.MarkLoot(taken)
	}

	g.lootScreen.MoveCursor(0, len(c.Items))
	if c.Empty() {
		g.transition(ModeActive)
	}
}

// inventoryItems returns the stacks on the current inventory tab: gear
// on one, consumables and valuables on the other.
func (g *Game) inventoryItems() []*item.Item {
	var out []*item.Item
	for _, it := range g.player.Inventory().Items() {
		gear := it.Def.Kind == gamedata.KindWeapon || it.Def.Kind == gamedata.KindArmor
		if (g.invScreen.Tab == ui.TabGear) == gear {
			out = append(out, it)
		}
	}
	return out
}

func selectedItem(items []*item.Item, cursor int) *item.Item {
	if cursor < 0 || cursor >= len(items) {
		return nil
	}
	return items[cursor]
}
