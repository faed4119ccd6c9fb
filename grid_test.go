package sandcore

import "testing"

func newTestGrid(w, h int) *Grid {
	step := false
	chunks := newChunks(w, h, 16)
	return newGrid(w, h, chunks, newSeededRNG(7, 11), &elementMetadata, &step)
}

func TestGridStartsFullyEmpty(t *testing.T) {
	g := newTestGrid(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if g.GetType(x, y) != Empty {
				t.Fatalf("(%d,%d) = %s, want Empty", x, y, g.GetType(x, y))
			}
		}
	}
}

func TestGridInBounds(t *testing.T) {
	g := newTestGrid(4, 4)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {3, 3, true}, {-1, 0, false}, {0, -1, false}, {4, 0, false}, {0, 4, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestGridPlaceIdempotent(t *testing.T) {
	g := newTestGrid(4, 4)
	g.Place(Sand, 1, 1)
	before := g.Get(1, 1)
	g.Place(Sand, 1, 1)
	after := g.Get(1, 1)
	if before.X != after.X || before.Y != after.Y || before.Type != after.Type {
		t.Error("re-placing the same type should be a no-op")
	}
}

func TestGridPlaceOutOfBoundsNoOp(t *testing.T) {
	g := newTestGrid(4, 4)
	g.Place(Sand, -1, 0)
	g.Place(Sand, 100, 100)
}

func TestGridDestroyYieldsEmpty(t *testing.T) {
	g := newTestGrid(4, 4)
	g.Place(Sand, 2, 2)
	g.Destroy(2, 2)
	if g.GetType(2, 2) != Empty {
		t.Errorf("after destroy, type = %s, want Empty", g.GetType(2, 2))
	}
}

func TestGridSwapExchangesAndUpdatesPositions(t *testing.T) {
	g := newTestGrid(4, 4)
	g.Place(Sand, 0, 0)
	g.Place(Water, 1, 0)
	g.Swap(0, 0, 1, 0, true)

	if g.GetType(0, 0) != Water || g.GetType(1, 0) != Sand {
		t.Fatal("swap did not exchange element types")
	}
	a, b := g.Get(0, 0), g.Get(1, 0)
	if a.X != 0 || a.Y != 0 || b.X != 1 || b.Y != 0 {
		t.Errorf("swap did not rewrite stored positions: a=(%d,%d) b=(%d,%d)", a.X, a.Y, b.X, b.Y)
	}
}

func TestGridSwapSameCoordinateNoOp(t *testing.T) {
	g := newTestGrid(4, 4)
	g.Place(Sand, 1, 1)
	g.Swap(1, 1, 1, 1, true)
	if g.GetType(1, 1) != Sand {
		t.Error("swap with identical coordinates must be a no-op")
	}
}

func TestGridSwapTwiceRestoresIdentities(t *testing.T) {
	g := newTestGrid(4, 4)
	g.Place(Sand, 0, 0)
	g.Place(Water, 1, 0)
	g.Swap(0, 0, 1, 0, true)
	g.Swap(0, 0, 1, 0, true)
	if g.GetType(0, 0) != Sand || g.GetType(1, 0) != Water {
		t.Error("swapping twice should restore original element identities")
	}
}

func TestGridPlaceAreaDegenerateRadiusOne(t *testing.T) {
	g := newTestGrid(9, 9)
	g.PlaceArea(Sand, 4, 4, 1)
	n := 0
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if g.GetType(x, y) == Sand {
				n++
			}
		}
	}
	if n != 1 {
		t.Errorf("radius-1 PlaceArea touched %d cells, want 1", n)
	}
}

func TestGridPlaceAreaDisk(t *testing.T) {
	g := newTestGrid(11, 11)
	g.PlaceArea(Sand, 5, 5, 3)
	if g.GetType(5, 5) != Sand {
		t.Error("center of PlaceArea disk should be filled")
	}
	if g.GetType(0, 0) == Sand {
		t.Error("PlaceArea should not touch cells far outside the radius")
	}
}

func TestGridDestroyAreaClears(t *testing.T) {
	g := newTestGrid(9, 9)
	g.PlaceArea(Sand, 4, 4, 3)
	g.DestroyArea(4, 4, 3)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if g.GetType(x, y) != Empty {
				t.Errorf("(%d,%d) = %s after DestroyArea, want Empty", x, y, g.GetType(x, y))
			}
		}
	}
}
