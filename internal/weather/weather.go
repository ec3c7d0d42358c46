// Package weather tracks the ambient condition over the zone and tints
// world colors to match it.
package weather

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Condition is the ambient weather state over the zone.
type Condition int

const (
	Clear Condition = iota
	Fog
	Rain
	Storm
	Ash

	conditionCount
)

// String returns the display name of the condition.
func (c Condition) String() string {
	switch c {
	case Clear:
		return "Clear"
	case Fog:
		return "Fog"
	case Rain:
		return "Rain"
	case Storm:
		return "Storm"
	case Ash:
		return "Ashfall"
	default:
		return "Unknown"
	}
}

// tintSpec pairs a blend target with how strongly it pulls world colors.
type tintSpec struct {
	target colorful.Color
	factor float64
}

var tints = map[Condition]tintSpec{
	Fog:   {target: hexColor("#9AA3AD"), factor: 0.35},
	Rain:  {target: hexColor("#4A6A8A"), factor: 0.25},
	Storm: {target: hexColor("#2E3A4E"), factor: 0.40},
	Ash:   {target: hexColor("#6E5E52"), factor: 0.30},
}

var descriptions = map[Condition]string{
	Clear: "The sky clears over the zone.",
	Fog:   "Fog rolls in. Visibility drops.",
	Rain:  "Rain starts hammering the rooftops.",
	Storm: "A storm front moves in. Thunder somewhere east.",
	Ash:   "Ash begins to fall. The air tastes burnt.",
}

// System tracks the current condition and advances it on a schedule
// driven by the game loop.
type System struct {
	current Condition
	rng     *rand.Rand
}

// NewSystem creates a weather system starting at Clear.
func NewSystem(rng *rand.Rand) *System {
	return &System{current: Clear, rng: rng}
}

// Current returns the active condition.
func (s *System) Current() Condition {
	return s.current
}

// Advance shifts to a different condition chosen at random and returns it.
func (s *System) Advance() Condition {
	next := Condition(s.rng.Intn(int(conditionCount)))
	for next == s.current {
		next = Condition(s.rng.Intn(int(conditionCount)))
	}
	s.current = next
	return next
}

// Reset returns the system to Clear, used at raid start.
func (s *System) Reset() {
	s.current = Clear
}

// Describe returns the message-log line announcing the current condition.
func (s *System) Describe() string {
	return descriptions[s.current]
}

// Tint shifts a color toward the current condition's cast. Clear weather
// and colors without RGB components pass through unchanged.
func (s *System) Tint(c tcell.Color) tcell.Color {
	spec, ok := tints[s.current]
	if !ok {
		return c
	}
	if c.Hex() < 0 {
		return c
	}
	r, g, b := c.RGB()
	base := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	blended := base.BlendLab(spec.target, spec.factor).Clamped()
	rr, gg, bb := blended.RGB255()
	return tcell.NewRGBColor(int32(rr), int32(gg), int32(bb))
}

func hexColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
