package world

import "github.com/gdamore/tcell/v2"

// FeatureKind identifies a type of interactive map feature.
type FeatureKind int

const (
	// FeatureMedStation heals the player once when used.
	FeatureMedStation FeatureKind = iota
	// FeatureCache holds a one-time loot roll.
	FeatureCache
	// FeatureBeacon is a signal point used by mission objectives.
	FeatureBeacon
)

// Feature is an interactive point placed during generation.
type Feature struct {
	Kind FeatureKind
	X, Y int
	Used bool
}

// Glyph returns the feature's display character.
func (f *Feature) Glyph() rune {
	switch f.Kind {
	case FeatureMedStation:
		return '+'
	case FeatureCache:
		return '?'
	case FeatureBeacon:
		return '!'
	default:
		return '•'
	}
}

// Name returns the feature's display name.
func (f *Feature) Name() string {
	switch f.Kind {
	case FeatureMedStation:
		return "med station"
	case FeatureCache:
		return "supply cache"
	case FeatureBeacon:
		return "signal beacon"
	default:
		return "feature"
	}
}

// Color returns the feature's base foreground color.
func (f *Feature) Color() tcell.Color {
	if f.Used {
		return tcell.NewRGBColor(90, 90, 90)
	}
	switch f.Kind {
	case FeatureMedStation:
		return tcell.NewRGBColor(220, 80, 80)
	case FeatureCache:
		return tcell.NewRGBColor(200, 180, 60)
	case FeatureBeacon:
		return tcell.NewRGBColor(80, 180, 240)
	default:
		return tcell.ColorWhite
	}
}
