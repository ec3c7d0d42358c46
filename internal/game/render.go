package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ashgrowen/blackzone/internal/ui"
)

// buildRenderFuncs returns the closed mode-to-renderer mapping.
func (g *Game) buildRenderFuncs() map[Mode]func() {
	return map[Mode]func(){
		ModeMainMenu:  g.renderMainMenu,
		ModeActive:    g.renderActive,
		ModeInventory: g.renderInventory,
		ModeLooting:   g.renderLooting,
		ModeGameOver:  g.renderGameOver,
		ModePaused:    g.renderPaused,
		ModeMap:       g.renderMap,
		ModeCharacter: g.renderCharacter,
		ModeHelp:      g.renderHelp,
	}
}

// render draws the current mode and flushes the screen once.
func (g *Game) render() {
	if draw, ok := g.renderFuncs[g.sm.Current()]; ok {
		draw()
	}
	g.screen.Show()
}

// composeWorld draws the raid scene: terrain, loot, hostiles, operator,
// projectiles and markers, camera centered on the operator.
func (g *Game) composeWorld(withHUD bool) {
	g.screen.Clear()

	wv := g.renderer.WorldView()
	ui.CenterWorldOn(wv, g.player.X, g.player.Y, g.zone.Width, g.zone.Height)

	g.zone.Render(wv, g.weather.Tint)
	g.loot.Render(wv)
	g.enemies.Render(wv)
	g.player.Render(wv)
	g.objects.Render(wv)
	g.zone.RenderFeatures(wv)
	g.missions.RenderMarkers(wv)

	if withHUD {
		ui.DrawHUD(g.renderer.HUDView(), g.hudData())
	}
}

func (g *Game) renderActive() {
	g.composeWorld(true)
}

func (g *Game) renderInventory() {
	if g.sm.OverlayOnWorld() {
		g.composeWorld(false)
	} else {
		g.screen.Clear()
	}
	g.invScreen.Draw(g.renderer.FullView(), g.inventoryData())
}

func (g *Game) renderLooting() {
	if g.sm.OverlayOnWorld() {
		g.composeWorld(false)
	} else {
		g.screen.Clear()
	}
	g.lootScreen.Draw(g.renderer.FullView(), g.lootData())
}

func (g *Game) renderMainMenu() {
	g.screen.Clear()
	ui.DrawMainMenu(g.renderer.FullView(), ui.MenuData{
		Level:       g.player.Level,
		Raids:       g.prof.Raids,
		Extractions: g.prof.Extractions,
	})
}

func (g *Game) renderGameOver() {
	g.screen.Clear()
	ui.DrawGameOver(g.renderer.FullView(), ui.GameOverData{
		Kills:    g.lastSummary.kills,
		Seconds:  g.lastSummary.seconds,
		LootLost: g.lastSummary.lootLost,
		Level:    g.lastSummary.level,
	})
}

func (g *Game) renderPaused() {
	g.screen.Clear()
	ui.DrawPaused(g.renderer.FullView())
}

func (g *Game) renderMap() {
	g.screen.Clear()
	v := g.renderer.FullView()
	g.zone.RenderOverview(v, g.player.X, g.player.Y)
	_, h := v.Size()
	v.SetText(1, h-1, "[M/ESC] back", tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (g *Game) renderCharacter() {
	g.screen.Clear()

	inv := g.player.Inventory()
	var weapons []string
	for _, w := range inv.Weapons() {
		line := fmt.Sprintf("%s %d/%d [%d]", w.Name(), w.Mag, w.Def.MagSize, w.Reserve)
		if w == inv.Weapon() {
			line = "* " + line
		}
		weapons = append(weapons, line)
	}
	armorName := "none"
	if a := inv.Armor(); a != nil {
		armorName = a.Name()
	}

	ui.DrawCharacter(g.renderer.FullView(), ui.CharacterData{
		OperatorID: g.prof.OperatorID,
		Level:      g.player.Level,
		XP:         g.player.XP,
		XPNext:     g.player.XPThreshold(),
		Health:     g.player.Health,
		MaxHealth:  g.player.MaxHealth,
		Armor:      g.player.ArmorValue(),
		Weapons:    weapons,
		ArmorName:  armorName,
		Kills:      g.prof.Kills,
		Raids:      g.prof.Raids,
		Extracts:   g.prof.Extractions,
	})
}

func (g *Game) renderHelp() {
	g.screen.Clear()
	ret := ui.HelpReturnRaid
	if g.sm.Previous() == ModeMainMenu {
		ret = ui.HelpReturnMenu
	}
	ui.DrawHelp(g.renderer.FullView(), ret)
}

// hudData snapshots the per-frame HUD contents.
func (g *Game) hudData() ui.HUDData {
	d := ui.HUDData{
		Health:          g.player.Health,
		MaxHealth:       g.player.MaxHealth,
		Armor:           g.player.ArmorValue(),
		WeaponName:      "Unarmed",
		Level:           g.player.Level,
		XP:              g.player.XP,
		XPNext:          g.player.XPThreshold(),
		Seconds:         int(g.ticks) / ticksPerSecond,
		Weather:         g.weather.Current().String(),
		Kills:           g.raid.kills,
		LootTaken:       g.raid.lootTaken,
		ObjectivesDone:  g.missions.CompletedCount(),
		ObjectivesTotal: g.missions.Total(),
		OnExtraction:    g.zone.ExtractionAt(g.player.X, g.player.Y),
		Messages:        g.msgs.Recent(4),
	}
	if w := g.player.EquippedWeapon(); w != nil {
		d.WeaponName = w.Name()
		d.Mag = w.Mag
		d.MagSize = w.Def.MagSize
		d.Reserve = w.Reserve
	}
	return d
}

// inventoryData builds the rows for the current inventory tab.
func (g *Game) inventoryData() ui.InventoryData {
	inv := g.player.Inventory()
	items := g.inventoryItems()
	rows := make([]ui.InventoryRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, ui.InventoryRow{
			Name:     it.Name(),
			Count:    it.Count,
			Detail:   it.Detail(),
			Equipped: it == inv.Weapon() || it == inv.Armor(),
			Quick:    inv.QuickIndex(it),
		})
	}
	return ui.InventoryData{
		Rows:     rows,
		Used:     inv.Used(),
		Capacity: inv.Capacity(),
	}
}

func (g *Game) lootData() ui.LootData {
	c := g.openContainer
	if c == nil {
		return ui.LootData{ContainerName: "CONTAINER"}
	}
	rows := make([]ui.InventoryRow, 0, len(c.Items))
	for _, it := range c.Items {
		rows = append(rows, ui.InventoryRow{
			Name:   it.Name(),
			Count:  it.Count,
			Detail: it.Detail(),
		})
	}
	return ui.LootData{
		ContainerName: c.Name,
		Items:         rows,
	}
}
