package ui

import "github.com/gdamore/tcell/v2"

// View is a rectangular region of the screen that collaborators draw into.
// It clips writes to its bounds and can map world coordinates through a
// camera offset, so renderers never deal with screen layout directly.
type View struct {
	screen *Screen
	x, y   int // top-left corner on the screen
	w, h   int

	offX, offY int // world coordinate of the view's top-left cell
}

// NewView creates a view over the given screen rectangle.
func NewView(screen *Screen, x, y, w, h int) *View {
	return &View{screen: screen, x: x, y: y, w: w, h: h}
}

// SetOffset sets the world coordinate that maps to the view's top-left cell.
func (v *View) SetOffset(ox, oy int) {
	v.offX, v.offY = ox, oy
}

// Offset returns the current camera offset.
func (v *View) Offset() (int, int) {
	return v.offX, v.offY
}

// Size returns the view dimensions in cells.
func (v *View) Size() (int, int) {
	return v.w, v.h
}

// SetCell writes a rune at view-local coordinates. Out-of-bounds writes
// are dropped.
func (v *View) SetCell(cx, cy int, r rune, style tcell.Style) {
	if cx < 0 || cx >= v.w || cy < 0 || cy >= v.h {
		return
	}
	v.screen.SetContent(v.x+cx, v.y+cy, r, style)
}

// SetWorld writes a rune at world coordinates, mapped through the camera
// offset and clipped to the view.
func (v *View) SetWorld(wx, wy int, r rune, style tcell.Style) {
	v.SetCell(wx-v.offX, wy-v.offY, r, style)
}

// WorldVisible reports whether a world coordinate falls inside the view.
func (v *View) WorldVisible(wx, wy int) bool {
	cx, cy := wx-v.offX, wy-v.offY
	return cx >= 0 && cx < v.w && cy >= 0 && cy < v.h
}

// SetText writes a string left-to-right from view-local coordinates,
// clipped at the view edge.
func (v *View) SetText(cx, cy int, text string, style tcell.Style) {
	i := 0
	for _, r := range text {
		v.SetCell(cx+i, cy, r, style)
		i++
	}
}

// Fill paints every cell of the view with the given rune.
func (v *View) Fill(r rune, style tcell.Style) {
	for cy := 0; cy < v.h; cy++ {
		for cx := 0; cx < v.w; cx++ {
			v.SetCell(cx, cy, r, style)
		}
	}
}

// Sub returns a view over a rectangle inside this view, sharing the screen.
func (v *View) Sub(cx, cy, w, h int) *View {
	return &View{screen: v.screen, x: v.x + cx, y: v.y + cy, w: w, h: h}
}
