package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Overlay screens own their selection state. Input handlers mutate the
// state through the small command methods here, then redraw.

// InventoryTab selects which list the inventory screen shows.
type InventoryTab int

const (
	TabItems InventoryTab = iota
	TabGear

	tabCount
)

func (t InventoryTab) String() string {
	if t == TabGear {
		return "GEAR"
	}
	return "ITEMS"
}

// InventoryRow is one display line of the inventory list.
type InventoryRow struct {
	Name     string
	Count    int
	Detail   string
	Equipped bool
	Quick    int // bound quickslot 1-5, 0 when unbound
}

// InventoryData is the per-frame content of the inventory screen.
type InventoryData struct {
	Rows     []InventoryRow
	Used     int
	Capacity int
}

// InventoryScreen holds the cursor and tab between frames.
type InventoryScreen struct {
	Cursor int
	Tab    InventoryTab
}

// Reset returns the screen to its initial selection, called on open.
func (s *InventoryScreen) Reset() {
	s.Cursor = 0
	s.Tab = TabItems
}

// MoveCursor shifts the selection, clamped to the row count.
func (s *InventoryScreen) MoveCursor(delta, rows int) {
	s.Cursor += delta
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= rows {
		s.Cursor = rows - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// SwitchTab cycles between tabs and resets the cursor.
func (s *InventoryScreen) SwitchTab(delta int) {
	s.Tab = InventoryTab((int(s.Tab) + delta + int(tabCount)) % int(tabCount))
	s.Cursor = 0
}

// Draw renders the inventory panel centered in the view.
func (s *InventoryScreen) Draw(v *View, d InventoryData) {
	panel := centeredPanel(v, 52, 18)
	panel.Fill(' ', tcell.StyleDefault)
	DrawFrame(panel, fmt.Sprintf("INVENTORY %d/%d", d.Used, d.Capacity))

	// Tab header
	x := 2
	for t := TabItems; t < tabCount; t++ {
		style := dimStyle
		if t == s.Tab {
			style = titleStyle
		}
		label := fmt.Sprintf("[%s]", t)
		panel.SetText(x, 1, label, style)
		x += len(label) + 2
	}

	if len(d.Rows) == 0 {
		panel.SetText(2, 3, "(empty)", dimStyle)
	}

	w, h := panel.Size()
	maxRows := h - 5
	for i, row := range d.Rows {
		if i >= maxRows {
			break
		}
		style := promptStyle
		marker := ' '
		if i == s.Cursor {
			style = style.Reverse(true)
			marker = '>'
		}
		panel.SetCell(1, 3+i, marker, promptStyle)

		name := row.Name
		if row.Count > 1 {
			name = fmt.Sprintf("%s x%d", name, row.Count)
		}
		if row.Equipped {
			name = "* " + name
		}
		panel.SetText(3, 3+i, name, style)
		if row.Quick > 0 {
			panel.SetText(w-12, 3+i, fmt.Sprintf("[%d]", row.Quick), titleStyle)
		}
		panel.SetText(w-9, 3+i, row.Detail, dimStyle)
	}

	panel.SetText(2, h-2, "ENTER use  TAB equip  DEL drop  1-5 bind  ESC close", dimStyle)
}

// LootData is the per-frame content of the looting screen.
type LootData struct {
	ContainerName string
	Items         []InventoryRow
}

// LootScreen holds the loot cursor between frames.
type LootScreen struct {
	Cursor int
}

// Reset returns the selection to the top, called on open.
func (s *LootScreen) Reset() {
	s.Cursor = 0
}

// MoveCursor shifts the selection, clamped to the row count.
func (s *LootScreen) MoveCursor(delta, rows int) {
	s.Cursor += delta
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= rows {
		s.Cursor = rows - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// Draw renders the loot panel centered in the view.
func (s *LootScreen) Draw(v *View, d LootData) {
	panel := centeredPanel(v, 44, 14)
	panel.Fill(' ', tcell.StyleDefault)
	DrawFrame(panel, d.ContainerName)

	if len(d.Items) == 0 {
		panel.SetText(2, 2, "(empty)", dimStyle)
	}

	w, h := panel.Size()
	maxRows := h - 4
	for i, row := range d.Items {
		if i >= maxRows {
			break
		}
		style := promptStyle
		marker := ' '
		if i == s.Cursor {
			style = style.Reverse(true)
			marker = '>'
		}
		panel.SetCell(1, 2+i, marker, promptStyle)

		name := row.Name
		if row.Count > 1 {
			name = fmt.Sprintf("%s x%d", name, row.Count)
		}
		panel.SetText(3, 2+i, name, style)
		panel.SetText(w-9, 2+i, row.Detail, dimStyle)
	}

	panel.SetText(2, h-2, "ENTER take  T take all  ESC close", dimStyle)
}

// centeredPanel returns a sub-view of the given size centered in v,
// shrunk to fit small screens.
func centeredPanel(v *View, w, h int) *View {
	vw, vh := v.Size()
	if w > vw {
		w = vw
	}
	if h > vh {
		h = vh
	}
	return v.Sub((vw-w)/2, (vh-h)/2, w, h)
}
