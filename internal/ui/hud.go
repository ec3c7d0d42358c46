package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ashgrowen/blackzone/internal/msglog"
)

// HUDHeight is the number of screen rows the HUD occupies at the bottom.
const HUDHeight = 7

// HUDData carries everything the HUD displays for one frame.
type HUDData struct {
	Health    int
	MaxHealth int
	Armor     int

	WeaponName string
	Mag        int
	MagSize    int
	Reserve    int

	Level  int
	XP     int
	XPNext int

	Seconds         int // raid clock derived from the tick counter
	Weather         string
	Kills           int
	LootTaken       int
	ObjectivesDone  int
	ObjectivesTotal int
	OnExtraction    bool

	Messages []msglog.Entry
}

var levelStyles = map[msglog.Level]tcell.Style{
	msglog.LevelInfo:     tcell.StyleDefault.Foreground(tcell.ColorSilver),
	msglog.LevelWarning:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	msglog.LevelCritical: tcell.StyleDefault.Foreground(tcell.ColorRed),
	msglog.LevelLoot:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
}

// DrawHUD renders the status rows and the message pane into the view.
// The view is expected to be HUDHeight rows tall.
func DrawHUD(v *View, d HUDData) {
	w, _ := v.Size()
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for x := 0; x < w; x++ {
		v.SetCell(x, 0, '─', dim)
	}

	// Status row: health, armor, weapon, level
	hpStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if d.MaxHealth > 0 {
		switch ratio := float64(d.Health) / float64(d.MaxHealth); {
		case ratio < 0.25:
			hpStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
		case ratio < 0.5:
			hpStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
	}
	col := 1
	v.SetText(col, 1, fmt.Sprintf("HP %s %d/%d", meter(d.Health, d.MaxHealth, 10), d.Health, d.MaxHealth), hpStyle)
	col += 22
	v.SetText(col, 1, fmt.Sprintf("AR %d", d.Armor), dim)
	col += 6
	v.SetText(col, 1, fmt.Sprintf("%s %d/%d [%d]", d.WeaponName, d.Mag, d.MagSize, d.Reserve),
		tcell.StyleDefault.Foreground(tcell.ColorWhite))
	v.SetText(w-20, 1, fmt.Sprintf("LV %d  XP %d/%d", d.Level, d.XP, d.XPNext), dim)

	// Raid row: clock, weather, counters, objectives
	v.SetText(1, 2, fmt.Sprintf("T %02d:%02d", d.Seconds/60, d.Seconds%60), dim)
	v.SetText(10, 2, d.Weather, tcell.StyleDefault.Foreground(tcell.ColorTeal))
	v.SetText(22, 2, fmt.Sprintf("Kills %d", d.Kills), dim)
	v.SetText(33, 2, fmt.Sprintf("Loot %d", d.LootTaken), dim)
	v.SetText(44, 2, fmt.Sprintf("OBJ %d/%d", d.ObjectivesDone, d.ObjectivesTotal), dim)
	if d.OnExtraction {
		v.SetText(w-22, 2, "[F] HOLD TO EXTRACT", tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}

	// Message pane: most recent line at the bottom
	msgRows := HUDHeight - 3
	start := len(d.Messages) - msgRows
	if start < 0 {
		start = 0
	}
	row := 3
	for _, entry := range d.Messages[start:] {
		style, ok := levelStyles[entry.Level]
		if !ok {
			style = levelStyles[msglog.LevelInfo]
		}
		v.SetText(1, row, entry.Text, style)
		row++
	}
}

// meter builds a fixed-width bar out of filled and empty block runes.
func meter(value, max, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := value * width / max
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}
