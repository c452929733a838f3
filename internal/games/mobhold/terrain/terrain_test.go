package terrain

import "testing"

func TestHashRange(t *testing.T) {
	for x := -200; x <= 200; x += 7 {
		for y := -200; y <= 200; y += 11 {
			h := Hash(x, y)
			if h < 0 || h >= 1 {
				t.Fatalf("Hash(%d, %d) = %v, expected [0, 1)", x, y, h)
			}
			if h != Hash(x, y) {
				t.Fatalf("Hash(%d, %d) is not stable", x, y)
			}
		}
	}
}

func TestTileAtIdempotent(t *testing.T) {
	g := New(48, 3)

	first := make(map[Coord]Tile)
	for x := -40; x <= 40; x++ {
		for y := -40; y <= 40; y++ {
			first[Coord{x, y}] = g.TileAt(x, y)
		}
	}
	for c, tile := range first {
		if got := g.TileAt(c.X, c.Y); got != tile {
			t.Fatalf("TileAt(%d, %d) changed from %+v to %+v", c.X, c.Y, tile, got)
		}
	}
}

func TestSafeZoneNeverBlocks(t *testing.T) {
	// Approach from several directions so formations anchored just
	// outside the zone get a chance to reach into it.
	orders := []struct {
		name  string
		query func(g *Generator)
	}{
		{"inside first", func(g *Generator) {}},
		{"south first", func(g *Generator) {
			for y := 10; y >= -10; y-- {
				for x := -10; x <= 10; x++ {
					g.TileAt(x, y)
				}
			}
		}},
		{"east first", func(g *Generator) {
			for x := 10; x >= -10; x-- {
				for y := -10; y <= 10; y++ {
					g.TileAt(x, y)
				}
			}
		}},
	}

	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			g := New(48, 3)
			tt.query(g)
			for x := -3; x <= 3; x++ {
				for y := -3; y <= 3; y++ {
					if g.TileAt(x, y).Blocking {
						t.Errorf("tile (%d, %d) inside the safe zone is blocking", x, y)
					}
				}
			}
		})
	}
}

func TestVerticalFormation(t *testing.T) {
	x, y, ok := findAnchor(bandVertical, 0)
	if !ok {
		t.Skip("no vertical anchor in search window")
	}

	g := New(48, 3)
	base := g.TileAt(x, y)
	if base.Kind != MountainBase || !base.Blocking {
		t.Fatalf("anchor (%d, %d) = %+v, expected blocking MountainBase", x, y, base)
	}
	if got := g.TileAt(x, y-1).Kind; got != MountainMiddle {
		t.Errorf("tile north of base = %v, expected MountainMiddle", got)
	}
	if got := g.TileAt(x, y-2).Kind; got != MountainTop {
		t.Errorf("tile two north of base = %v, expected MountainTop", got)
	}
}

func TestHorizontalFormation(t *testing.T) {
	x, y, ok := findAnchor(bandHorizontal, bandVertical)
	if !ok {
		t.Skip("no horizontal anchor in search window")
	}

	g := New(48, 3)
	if got := g.TileAt(x, y).Kind; got != RidgeRight {
		t.Fatalf("anchor (%d, %d) = %v, expected RidgeRight", x, y, got)
	}
	if got := g.TileAt(x-1, y).Kind; got != RidgeMiddle {
		t.Errorf("tile west of anchor = %v, expected RidgeMiddle", got)
	}
	if got := g.TileAt(x-2, y).Kind; got != RidgeLeft {
		t.Errorf("tile two west of anchor = %v, expected RidgeLeft", got)
	}
}

func TestFormationRespectsCachedTiles(t *testing.T) {
	x, y, ok := findAnchor(bandVertical, 0)
	if !ok {
		t.Skip("no vertical anchor in search window")
	}

	g := New(48, 3)
	above := g.TileAt(x, y-1) // materialize a member first
	if got := g.TileAt(x, y); got.Blocking {
		t.Errorf("anchor with an occupied member should fall back to grass, got %+v", got)
	}
	if g.TileAt(x, y-1) != above {
		t.Error("pre-existing tile was overwritten by a formation")
	}
}

func TestIsBlockedFloorDivision(t *testing.T) {
	g := New(48, 3)
	tests := []struct {
		wx, wy float64
		tx, ty int
	}{
		{0, 0, 0, 0},
		{47.9, 47.9, 0, 0},
		{48, 0, 1, 0},
		{-0.1, -0.1, -1, -1},
		{-48, -48.1, -1, -2},
	}
	for _, tt := range tests {
		tx, ty := g.TileCoord(tt.wx, tt.wy)
		if tx != tt.tx || ty != tt.ty {
			t.Errorf("TileCoord(%v, %v) = (%d, %d), expected (%d, %d)", tt.wx, tt.wy, tx, ty, tt.tx, tt.ty)
		}
		if g.IsBlocked(tt.wx, tt.wy) != g.TileAt(tt.tx, tt.ty).Blocking {
			t.Errorf("IsBlocked(%v, %v) disagrees with TileAt", tt.wx, tt.wy)
		}
	}
}

// findAnchor scans for a coordinate whose hash falls in [lo, hi) and
// whose formation members are clear of the safe zone.
func findAnchor(hi, lo float64) (int, int, bool) {
	for x := 10; x < 400; x++ {
		for y := 10; y < 60; y++ {
			h := Hash(x, y)
			if h >= lo && h < hi {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
