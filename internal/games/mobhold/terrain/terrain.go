// Package terrain generates the infinite Mobhold tile map.
// Tiles are derived from a coordinate hash and memoized, so the same
// coordinates always produce the same tile for the generator's lifetime.
package terrain

import "math"

// Kind identifies a tile variant.
type Kind uint8

const (
	Grass Kind = iota
	GrassDecorated
	Plant
	MountainTop    // Vertical run, north end
	MountainMiddle // Vertical run, middle
	MountainBase   // Vertical run, south end (the triggering tile)
	RidgeLeft      // Horizontal run, west end
	RidgeMiddle    // Horizontal run, middle
	RidgeRight     // Horizontal run, east end (the triggering tile)
)

// Probability bands for the coordinate hash.
const (
	bandVertical   = 0.01
	bandHorizontal = 0.02
	bandDecorated  = 0.04
	bandPlant      = 0.045
)

// Tile is a single generated map cell.
type Tile struct {
	Kind     Kind
	Blocking bool
	Overlay  bool // Drawn over a grass base
	Plant    bool
}

func tileOf(k Kind) Tile {
	switch k {
	case MountainTop, MountainMiddle, MountainBase, RidgeLeft, RidgeMiddle, RidgeRight:
		return Tile{Kind: k, Blocking: true, Overlay: true}
	case GrassDecorated:
		return Tile{Kind: k}
	case Plant:
		return Tile{Kind: k, Overlay: true, Plant: true}
	default:
		return Tile{Kind: Grass}
	}
}

// Coord is an integer tile coordinate.
type Coord struct {
	X, Y int
}

// Generator produces and caches tiles.
type Generator struct {
	tileSize float64
	safeZone int
	tiles    map[Coord]Tile
}

// New creates a generator for the given tile size (world units) and
// safe-zone half-width (tiles).
func New(tileSize float64, safeZone int) *Generator {
	return &Generator{
		tileSize: tileSize,
		safeZone: safeZone,
		tiles:    make(map[Coord]Tile),
	}
}

// TileSize returns the world size of one tile.
func (g *Generator) TileSize() float64 {
	return g.tileSize
}

// SafeZone returns the safe-zone half-width in tiles.
func (g *Generator) SafeZone() int {
	return g.safeZone
}

// Cached returns the number of materialized tiles.
func (g *Generator) Cached() int {
	return len(g.tiles)
}

// Hash maps a coordinate to [0, 1) using xorshift-multiply mixing.
func Hash(x, y int) float64 {
	n := int32(x)*374761393 + int32(y)*668265263
	n = (n ^ (n >> 13)) * 1274126177
	n ^= n >> 16
	return float64(n&0x7fffffff) / (1 << 31)
}

// InSafeZone reports whether a tile coordinate lies in the protected
// area around the origin.
func (g *Generator) InSafeZone(x, y int) bool {
	return abs(x) <= g.safeZone && abs(y) <= g.safeZone
}

// TileAt returns the tile at (x, y), generating it on first access.
func (g *Generator) TileAt(x, y int) Tile {
	c := Coord{x, y}
	if t, ok := g.tiles[c]; ok {
		return t
	}

	r := Hash(x, y)
	kind := Grass
	safe := g.InSafeZone(x, y)

	switch {
	case !safe && r < bandVertical:
		if g.placeFormation(
			[]Coord{{x, y - 2}, {x, y - 1}},
			[]Kind{MountainTop, MountainMiddle},
		) {
			kind = MountainBase
		}
	case !safe && r < bandHorizontal:
		if g.placeFormation(
			[]Coord{{x - 2, y}, {x - 1, y}},
			[]Kind{RidgeLeft, RidgeMiddle},
		) {
			kind = RidgeRight
		}
	case r < bandDecorated:
		kind = GrassDecorated
	case r < bandPlant:
		kind = Plant
	}

	t := tileOf(kind)
	g.tiles[c] = t
	return t
}

// placeFormation writes the extra members of a mountain run. It refuses
// when any member is already materialized or falls in the safe zone.
func (g *Generator) placeFormation(members []Coord, kinds []Kind) bool {
	for _, m := range members {
		if _, taken := g.tiles[m]; taken {
			return false
		}
		if g.InSafeZone(m.X, m.Y) {
			return false
		}
	}
	for i, m := range members {
		g.tiles[m] = tileOf(kinds[i])
	}
	return true
}

// TileCoord converts a world position to the tile containing it.
func (g *Generator) TileCoord(wx, wy float64) (int, int) {
	return int(math.Floor(wx / g.tileSize)), int(math.Floor(wy / g.tileSize))
}

// IsBlocked reports whether the world position lies on a blocking tile.
func (g *Generator) IsBlocked(wx, wy float64) bool {
	tx, ty := g.TileCoord(wx, wy)
	return g.TileAt(tx, ty).Blocking
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
