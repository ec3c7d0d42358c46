package world

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ashgrowen/blackzone/internal/telemetry"
	"github.com/ashgrowen/blackzone/internal/ui"
)

const (
	// Default zone dimensions
	DefaultWidth  = 96
	DefaultHeight = 44

	// BSP parameters
	minBuildingSize = 6  // Minimum building dimension including walls
	maxBuildingSize = 14 // Maximum building dimension
	minLeafSize     = 9  // Minimum BSP leaf size before stopping split

	rubbleChance = 4 // percent chance per open street tile
)

// Pad is one 2x2 extraction pad, addressed by its top-left tile.
type Pad struct {
	X, Y int
}

// Zone represents one raid map: streets, ruined buildings, extraction
// pads, and interactive features.
type Zone struct {
	Width  int
	Height int
	Tiles  [][]Tile

	buildings []Building
	features  []*Feature
	pads      []Pad
	rng       *rand.Rand
}

// NewZone creates a zone of open streets ringed by a boundary wall.
// Generation is deterministic for a given rng.
func NewZone(width, height int, rng *rand.Rand) *Zone {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				tiles[y][x] = TileWall
			} else {
				tiles[y][x] = TileRoad
			}
		}
	}

	return &Zone{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		rng:    rng,
	}
}

// Generate lays out the zone: BSP-partitioned city blocks with walled
// buildings, rubble on the streets, extraction pads near the perimeter,
// and interactive features inside the ruins.
func (z *Zone) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "zone.generate")
	defer span.End()

	startTime := time.Now()

	// Partition the interior into city blocks
	root := &bspNode{
		x:      1,
		y:      1,
		width:  z.Width - 2,
		height: z.Height - 2,
	}
	z.splitNode(root)

	// One ruined building per block, then street debris
	z.placeBuildings(root)
	z.scatterRubble()

	z.placeExtractions()
	z.placeFeatures()

	span.SetAttributes(
		attribute.Int("zone.width", z.Width),
		attribute.Int("zone.height", z.Height),
		attribute.Int("zone.building_count", len(z.buildings)),
		attribute.Int("zone.extraction_count", len(z.pads)),
		attribute.Int("zone.feature_count", len(z.features)),
		attribute.Int64("zone.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// IsPassable returns true if the given position can be walked on.
func (z *Zone) IsPassable(x, y int) bool {
	if x < 0 || x >= z.Width || y < 0 || y >= z.Height {
		return false
	}
	return z.Tiles[y][x].IsPassable()
}

// TileAt returns the tile at the given position.
func (z *Zone) TileAt(x, y int) Tile {
	if x < 0 || x >= z.Width || y < 0 || y >= z.Height {
		return TileWall
	}
	return z.Tiles[y][x]
}

// ExtractionAt returns true if the position is on an extraction pad.
func (z *Zone) ExtractionAt(x, y int) bool {
	return z.TileAt(x, y) == TileExtraction
}

// Buildings returns the ruined buildings placed during generation.
func (z *Zone) Buildings() []Building {
	return z.buildings
}

// Features returns every interactive feature in the zone.
func (z *Zone) Features() []*Feature {
	return z.features
}

// Pads returns the extraction pads placed during generation.
func (z *Zone) Pads() []Pad {
	return z.pads
}

// FeatureAt returns the feature on the exact tile, or nil.
func (z *Zone) FeatureAt(x, y int) *Feature {
	for _, f := range z.features {
		if f.X == x && f.Y == y {
			return f
		}
	}
	return nil
}

// FeatureNear returns a feature within one tile of the position, or nil.
func (z *Zone) FeatureNear(x, y int) *Feature {
	for _, f := range z.features {
		dx, dy := f.X-x, f.Y-y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx <= 1 && dy <= 1 {
			return f
		}
	}
	return nil
}

// Beacons returns the signal beacons, used as mission objective sites.
func (z *Zone) Beacons() []*Feature {
	var beacons []*Feature
	for _, f := range z.features {
		if f.Kind == FeatureBeacon {
			beacons = append(beacons, f)
		}
	}
	return beacons
}

// Center returns the middle of the zone.
func (z *Zone) Center() (int, int) {
	return z.Width / 2, z.Height / 2
}

// SpawnPoint returns the deployment tile: the zone center, or the first
// passable non-pad tile spiraling outward from it. The search order is
// deterministic.
func (z *Zone) SpawnPoint() (int, int) {
	cx, cy := z.Center()
	if z.deployable(cx, cy) {
		return cx, cy
	}
	for r := 1; r < z.Width+z.Height; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx != -r && dx != r && dy != -r && dy != r {
					continue // ring perimeter only
				}
				if z.deployable(cx+dx, cy+dy) {
					return cx + dx, cy + dy
				}
			}
		}
	}
	return cx, cy
}

func (z *Zone) deployable(x, y int) bool {
	return z.IsPassable(x, y) && z.TileAt(x, y) != TileExtraction
}

// Render draws the tile grid into the world view, running each tile's
// base color through the weather tint.
func (z *Zone) Render(v *ui.View, tint func(tcell.Color) tcell.Color) {
	ox, oy := v.Offset()
	w, h := v.Size()
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			wx, wy := ox+cx, oy+cy
			if wx < 0 || wx >= z.Width || wy < 0 || wy >= z.Height {
				continue
			}
			t := z.Tiles[wy][wx]
			color := t.Color()
			if tint != nil {
				color = tint(color)
			}
			v.SetCell(cx, cy, t.Rune(), tcell.StyleDefault.Foreground(color))
		}
	}
}

// RenderFeatures draws feature glyphs over the tile layer.
func (z *Zone) RenderFeatures(v *ui.View) {
	for _, f := range z.features {
		v.SetWorld(f.X, f.Y, f.Glyph(), tcell.StyleDefault.Foreground(f.Color()))
	}
}

// RenderOverview draws a sampled miniature of the whole zone with the
// player position marked, for the map screen.
func (z *Zone) RenderOverview(v *ui.View, px, py int) {
	w, h := v.Size()
	if w <= 0 || h <= 0 {
		return
	}
	stepX := (z.Width + w - 1) / w
	stepY := (z.Height + h - 1) / h
	if stepX < 1 {
		stepX = 1
	}
	if stepY < 1 {
		stepY = 1
	}

	for wy := 0; wy < z.Height; wy += stepY {
		for wx := 0; wx < z.Width; wx += stepX {
			t := z.sampleBlock(wx, wy, stepX, stepY)
			v.SetCell(wx/stepX, wy/stepY, t.Rune(), tcell.StyleDefault.Foreground(t.Color()))
		}
	}

	v.SetCell(px/stepX, py/stepY, '@', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
}

// sampleBlock picks the most informative tile in a sample block.
func (z *Zone) sampleBlock(x, y, w, h int) Tile {
	best := TileRoad
	for dy := 0; dy < h && y+dy < z.Height; dy++ {
		for dx := 0; dx < w && x+dx < z.Width; dx++ {
			if t := z.Tiles[y+dy][x+dx]; tileRank(t) > tileRank(best) {
				best = t
			}
		}
	}
	return best
}

func tileRank(t Tile) int {
	switch t {
	case TileExtraction:
		return 4
	case TileWall:
		return 3
	case TileFloor:
		return 2
	case TileRubble:
		return 1
	default:
		return 0
	}
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node into city blocks.
func (z *Zone) splitNode(node *bspNode) {
	// Stop if too small to split
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	// Determine split direction
	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false // Split vertically (left/right)
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true // Split horizontally (top/bottom)
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return // Can't split
	}

	// Calculate split position
	var splitPos int
	if splitHorizontally {
		min := minLeafSize
		max := node.height - minLeafSize
		if max <= min {
			return
		}
		splitPos = min + z.rng.Intn(max-min+1)
	} else {
		min := minLeafSize
		max := node.width - minLeafSize
		if max <= min {
			return
		}
		splitPos = min + z.rng.Intn(max-min+1)
	}

	// Create child nodes
	if splitHorizontally {
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  node.width,
			height: splitPos,
		}
		node.right = &bspNode{
			x:      node.x,
			y:      node.y + splitPos,
			width:  node.width,
			height: node.height - splitPos,
		}
	} else {
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  splitPos,
			height: node.height,
		}
		node.right = &bspNode{
			x:      node.x + splitPos,
			y:      node.y,
			width:  node.width - splitPos,
			height: node.height,
		}
	}

	// Recursively split children
	z.splitNode(node.left)
	z.splitNode(node.right)
}

// placeBuildings erects one walled building inside each leaf block,
// leaving street margins around it.
func (z *Zone) placeBuildings(node *bspNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		z.placeBuildings(node.left)
		z.placeBuildings(node.right)
		return
	}

	bw := minBuildingSize + z.rng.Intn(min(maxBuildingSize-minBuildingSize+1, node.width-minBuildingSize+1))
	bh := minBuildingSize + z.rng.Intn(min(maxBuildingSize-minBuildingSize+1, node.height-minBuildingSize+1))

	// Keep a street margin inside the block
	if bw > node.width-2 {
		bw = node.width - 2
	}
	if bh > node.height-2 {
		bh = node.height - 2
	}
	if bw < minBuildingSize || bh < minBuildingSize {
		return // Block too small for a building
	}

	bx := node.x + 1 + z.rng.Intn(node.width-bw-1)
	by := node.y + 1 + z.rng.Intn(node.height-bh-1)

	b := Building{
		X:      bx,
		Y:      by,
		Width:  bw,
		Height: bh,
	}
	z.buildings = append(z.buildings, b)
	z.carveBuilding(b)
}

// carveBuilding writes the building footprint: perimeter walls around an
// interior floor, then doorway gaps.
func (z *Zone) carveBuilding(b Building) {
	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			if x <= 0 || x >= z.Width-1 || y <= 0 || y >= z.Height-1 {
				continue
			}
			if b.Interior(x, y) {
				z.Tiles[y][x] = TileFloor
			} else {
				z.Tiles[y][x] = TileWall
			}
		}
	}
	z.carveDoors(b)
}

// carveDoors opens 1-2 gaps in the building perimeter, never at corners.
func (z *Zone) carveDoors(b Building) {
	doors := 1 + z.rng.Intn(2)
	for i := 0; i < doors; i++ {
		switch z.rng.Intn(4) {
		case 0: // top
			x := b.X + 1 + z.rng.Intn(b.Width-2)
			z.Tiles[b.Y][x] = TileFloor
		case 1: // bottom
			x := b.X + 1 + z.rng.Intn(b.Width-2)
			z.Tiles[b.Y+b.Height-1][x] = TileFloor
		case 2: // left
			y := b.Y + 1 + z.rng.Intn(b.Height-2)
			z.Tiles[y][b.X] = TileFloor
		case 3: // right
			y := b.Y + 1 + z.rng.Intn(b.Height-2)
			z.Tiles[y][b.X+b.Width-1] = TileFloor
		}
	}
}

// scatterRubble drops debris on a small fraction of street tiles.
func (z *Zone) scatterRubble() {
	for y := 1; y < z.Height-1; y++ {
		for x := 1; x < z.Width-1; x++ {
			if z.Tiles[y][x] != TileRoad {
				continue
			}
			if z.rng.Intn(100) < rubbleChance {
				z.Tiles[y][x] = TileRubble
			}
		}
	}
}

// placeExtractions places 2-3 2x2 extraction pads on open ground near
// the zone perimeter.
func (z *Zone) placeExtractions() {
	want := 2 + z.rng.Intn(2)
	for attempt := 0; attempt < 200 && len(z.pads) < want; attempt++ {
		var x, y int
		switch z.rng.Intn(4) {
		case 0: // north edge
			x, y = 1+z.rng.Intn(z.Width-4), 1+z.rng.Intn(3)
		case 1: // south edge
			x, y = 1+z.rng.Intn(z.Width-4), z.Height-5+z.rng.Intn(3)
		case 2: // west edge
			x, y = 1+z.rng.Intn(3), 1+z.rng.Intn(z.Height-4)
		case 3: // east edge
			x, y = z.Width-5+z.rng.Intn(3), 1+z.rng.Intn(z.Height-4)
		}
		z.tryPad(x, y)
	}

	// Random placement cannot realistically miss the open perimeter ring,
	// but a raid without pads is unwinnable, so sweep as a fallback.
	if len(z.pads) < 2 {
		for y := 1; y < z.Height-2 && len(z.pads) < 2; y++ {
			for x := 1; x < z.Width-2 && len(z.pads) < 2; x++ {
				z.tryPad(x, y)
			}
		}
	}
}

// tryPad places a pad if the 2x2 region is clear street.
func (z *Zone) tryPad(x, y int) bool {
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			tx, ty := x+dx, y+dy
			if tx <= 0 || ty <= 0 || tx >= z.Width-1 || ty >= z.Height-1 {
				return false
			}
			if t := z.Tiles[ty][tx]; t != TileRoad && t != TileRubble {
				return false
			}
		}
	}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			z.Tiles[y+dy][x+dx] = TileExtraction
		}
	}
	z.pads = append(z.pads, Pad{X: x, Y: y})
	return true
}

// placeFeatures scatters interactive features through the buildings. A
// raid always gets at least one beacon for objective placement.
func (z *Zone) placeFeatures() {
	wants := []struct {
		kind FeatureKind
		n    int
	}{
		{FeatureMedStation, 1 + z.rng.Intn(2)},
		{FeatureCache, 2 + z.rng.Intn(2)},
		{FeatureBeacon, 1 + z.rng.Intn(2)},
	}
	for _, w := range wants {
		for i := 0; i < w.n; i++ {
			if f := z.rollFeature(w.kind); f != nil {
				z.features = append(z.features, f)
			}
		}
	}

	if len(z.Beacons()) == 0 {
		z.features = append(z.features, z.fallbackBeacon())
	}
}

// rollFeature picks a random interior floor tile for a feature.
func (z *Zone) rollFeature(kind FeatureKind) *Feature {
	if len(z.buildings) == 0 {
		return nil
	}
	for attempt := 0; attempt < 100; attempt++ {
		b := z.buildings[z.rng.Intn(len(z.buildings))]
		if b.Width < 4 || b.Height < 4 {
			continue
		}
		x := b.X + 1 + z.rng.Intn(b.Width-2)
		y := b.Y + 1 + z.rng.Intn(b.Height-2)
		if z.Tiles[y][x] != TileFloor {
			continue
		}
		if z.FeatureAt(x, y) != nil {
			continue
		}
		return &Feature{Kind: kind, X: x, Y: y}
	}
	return nil
}

// fallbackBeacon deterministically claims the first free passable tile.
func (z *Zone) fallbackBeacon() *Feature {
	for y := 1; y < z.Height-1; y++ {
		for x := 1; x < z.Width-1; x++ {
			if z.Tiles[y][x].IsPassable() && z.Tiles[y][x] != TileExtraction && z.FeatureAt(x, y) == nil {
				return &Feature{Kind: FeatureBeacon, X: x, Y: y}
			}
		}
	}
	cx, cy := z.Center()
	return &Feature{Kind: FeatureBeacon, X: cx, Y: cy}
}
