// Package world provides raid-zone generation and map management.
package world

import "github.com/gdamore/tcell/v2"

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable building wall.
	TileWall Tile = '#'
	// TileRoad represents open street ground.
	TileRoad Tile = '.'
	// TileFloor represents a building interior floor.
	TileFloor Tile = '·'
	// TileRubble represents passable debris on the street.
	TileRubble Tile = ','
	// TileExtraction represents an extraction pad.
	TileExtraction Tile = '▒'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Color returns the tile's base foreground color, before weather tinting.
func (t Tile) Color() tcell.Color {
	switch t {
	case TileWall:
		return tcell.NewRGBColor(120, 120, 130)
	case TileRoad:
		return tcell.NewRGBColor(90, 90, 90)
	case TileFloor:
		return tcell.NewRGBColor(140, 130, 110)
	case TileRubble:
		return tcell.NewRGBColor(110, 100, 80)
	case TileExtraction:
		return tcell.NewRGBColor(80, 200, 120)
	default:
		return tcell.ColorWhite
	}
}
