package world

// Building represents a rectangular ruined structure in the zone,
// including its perimeter walls.
type Building struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions including walls
}

// Center returns the center coordinates of the building.
func (b Building) Center() (int, int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Contains returns true if the given point is inside the building.
func (b Building) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Interior returns true if the given point is inside the building's
// walls, on floor rather than perimeter.
func (b Building) Interior(x, y int) bool {
	return x > b.X && x < b.X+b.Width-1 && y > b.Y && y < b.Y+b.Height-1
}

// Intersects returns true if this building overlaps with another.
func (b Building) Intersects(other Building) bool {
	return b.X < other.X+other.Width &&
		b.X+b.Width > other.X &&
		b.Y < other.Y+other.Height &&
		b.Y+b.Height > other.Y
}
