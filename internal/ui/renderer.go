package ui

// Renderer owns the screen layout: where the world viewport and the HUD
// panel live, and how the camera tracks the operator.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// FullView returns a view covering the whole screen.
func (r *Renderer) FullView() *View {
	w, h := r.screen.Size()
	return NewView(r.screen, 0, 0, w, h)
}

// WorldView returns the viewport above the HUD panel.
func (r *Renderer) WorldView() *View {
	w, h := r.screen.Size()
	vh := h - HUDHeight
	if vh < 1 {
		vh = 1
	}
	return NewView(r.screen, 0, 0, w, vh)
}

// HUDView returns the panel spanning the bottom HUDHeight rows.
func (r *Renderer) HUDView() *View {
	w, h := r.screen.Size()
	y := h - HUDHeight
	if y < 0 {
		y = 0
	}
	return NewView(r.screen, 0, y, w, HUDHeight)
}

// CenterWorldOn points the view's camera at the world coordinate,
// clamped so the viewport never scrolls past the world edge.
func CenterWorldOn(v *View, wx, wy, worldW, worldH int) {
	vw, vh := v.Size()
	v.SetOffset(
		clampOffset(wx-vw/2, worldW, vw),
		clampOffset(wy-vh/2, worldH, vh),
	)
}

// clampOffset keeps a camera axis inside [0, world-view]. A world axis
// smaller than the view pins to the origin.
func clampOffset(o, world, view int) int {
	if world <= view {
		return 0
	}
	if o < 0 {
		return 0
	}
	if o > world-view {
		return world - view
	}
	return o
}
