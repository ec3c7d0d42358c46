package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	promptStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// MenuData carries the profile summary shown on the main menu.
type MenuData struct {
	Level       int
	Raids       int
	Extractions int
}

// DrawMainMenu renders the title screen.
func DrawMainMenu(v *View, d MenuData) {
	_, h := v.Size()
	cy := h/2 - 5

	center(v, cy, "B L A C K Z O N E", titleStyle)
	center(v, cy+1, "terminal extraction raids", dimStyle)

	center(v, cy+4, "[ENTER]  deploy to the zone", promptStyle)
	center(v, cy+5, "[H]      help", promptStyle)
	center(v, cy+6, "[ESC]    quit", promptStyle)

	summary := fmt.Sprintf("operator LV %d   raids %d   extractions %d", d.Level, d.Raids, d.Extractions)
	center(v, cy+9, summary, dimStyle)
}

// GameOverData carries the death summary.
type GameOverData struct {
	Kills    int
	Seconds  int
	LootLost int
	Level    int
}

// DrawGameOver renders the death screen with raid stats.
func DrawGameOver(v *View, d GameOverData) {
	_, h := v.Size()
	cy := h/2 - 4

	center(v, cy, "K . I . A .", alertStyle)
	center(v, cy+2, fmt.Sprintf("survived %02d:%02d", d.Seconds/60, d.Seconds%60), promptStyle)
	center(v, cy+3, fmt.Sprintf("kills %d", d.Kills), promptStyle)
	center(v, cy+4, fmt.Sprintf("loot lost %d", d.LootLost), promptStyle)
	center(v, cy+5, fmt.Sprintf("operator LV %d", d.Level), dimStyle)

	center(v, cy+8, "[ENTER] redeploy    [ESC] main menu", promptStyle)
}

// DrawPaused renders the pause screen.
func DrawPaused(v *View) {
	_, h := v.Size()
	cy := h / 2

	center(v, cy-1, "P A U S E D", titleStyle)
	center(v, cy+2, "[P/ESC] resume    [M] abandon raid", promptStyle)
}

// HelpReturn names where Escape leads from the help screen.
type HelpReturn int

const (
	HelpReturnMenu HelpReturn = iota
	HelpReturnRaid
)

// DrawHelp renders the key reference.
func DrawHelp(v *View, ret HelpReturn) {
	center(v, 1, "KEY REFERENCE", titleStyle)

	lines := []struct {
		key, desc string
	}{
		{"W/A/S/D", "move"},
		{"SPACE", "fire"},
		{"R", "reload"},
		{"TAB", "cycle weapons"},
		{"E", "interact (containers, features, extraction)"},
		{"F", "extract while on a pad"},
		{"1-5", "quickslot use"},
		{"I", "inventory"},
		{"C", "character sheet"},
		{"M", "zone map"},
		{"P", "pause"},
		{"ESC", "leave raid to menu"},
	}

	w, _ := v.Size()
	startX := w/2 - 24
	if startX < 1 {
		startX = 1
	}
	for i, l := range lines {
		v.SetText(startX, 3+i, fmt.Sprintf("%-8s", l.key), promptStyle)
		v.SetText(startX+9, 3+i, l.desc, dimStyle)
	}

	back := "[H/ESC] back to menu"
	if ret == HelpReturnRaid {
		back = "[H/ESC] back to raid"
	}
	center(v, 3+len(lines)+2, back, promptStyle)
}

// CharacterData carries the character sheet contents.
type CharacterData struct {
	OperatorID string
	Level      int
	XP         int
	XPNext     int
	Health     int
	MaxHealth  int
	Armor      int
	Weapons    []string
	ArmorName  string
	Kills      int
	Raids      int
	Extracts   int
}

// DrawCharacter renders the character sheet.
func DrawCharacter(v *View, d CharacterData) {
	center(v, 1, "OPERATOR", titleStyle)
	center(v, 2, d.OperatorID, dimStyle)

	w, _ := v.Size()
	x := w/2 - 18
	if x < 1 {
		x = 1
	}

	row := 4
	put := func(label, value string) {
		v.SetText(x, row, fmt.Sprintf("%-12s", label), dimStyle)
		v.SetText(x+12, row, value, promptStyle)
		row++
	}

	put("level", fmt.Sprintf("%d  (%d/%d xp)", d.Level, d.XP, d.XPNext))
	put("health", fmt.Sprintf("%d/%d", d.Health, d.MaxHealth))
	put("armor", fmt.Sprintf("%d  %s", d.Armor, d.ArmorName))
	row++
	for i, weapon := range d.Weapons {
		label := ""
		if i == 0 {
			label = "weapons"
		}
		put(label, weapon)
	}
	row++
	put("kills", fmt.Sprintf("%d", d.Kills))
	put("raids", fmt.Sprintf("%d", d.Raids))
	put("extractions", fmt.Sprintf("%d", d.Extracts))

	center(v, row+2, "[C/ESC] back to raid", promptStyle)
}

// DrawFrame draws a single-line border with a title along the view edge.
// Content belongs strictly inside the border.
func DrawFrame(v *View, title string) {
	w, h := v.Size()
	style := dimStyle

	for x := 1; x < w-1; x++ {
		v.SetCell(x, 0, '─', style)
		v.SetCell(x, h-1, '─', style)
	}
	for y := 1; y < h-1; y++ {
		v.SetCell(0, y, '│', style)
		v.SetCell(w-1, y, '│', style)
	}
	v.SetCell(0, 0, '┌', style)
	v.SetCell(w-1, 0, '┐', style)
	v.SetCell(0, h-1, '└', style)
	v.SetCell(w-1, h-1, '┘', style)

	if title != "" {
		v.SetText(2, 0, " "+title+" ", titleStyle)
	}
}

// center writes a line horizontally centered in the view.
func center(v *View, cy int, text string, style tcell.Style) {
	w, _ := v.Size()
	cx := (w - len([]rune(text))) / 2
	if cx < 0 {
		cx = 0
	}
	v.SetText(cx, cy, text, style)
}
