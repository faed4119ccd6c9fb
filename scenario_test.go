package sandcore

import "testing"

// legend maps the ASCII characters used by spec.md §8's scenario tests to
// element types: '.' Empty, 'S' Sand, 'W' Water, '#' Stone, 'O' Oil, 'F'
// Fire, 's' Steam, 'k' Smoke.
var legend = map[byte]ElementType{
	'.': Empty,
	'S': Sand,
	'W': Water,
	'#': Stone,
	'O': Oil,
	'F': Fire,
	's': Steam,
	'k': Smoke,
}

// placeGrid stamps a literal ASCII grid onto eng starting at (0,0); rows[0]
// is the top row, matching spec.md §8's convention.
func placeGrid(eng *Engine, rows []string) {
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			t, ok := legend[row[x]]
			if !ok {
				continue
			}
			if t != Empty {
				eng.Place(t, x, y)
			}
		}
	}
}

func countType(eng *Engine, t ElementType) int {
	n := 0
	for y := 0; y < eng.cfg.H; y++ {
		for x := 0; x < eng.cfg.W; x++ {
			if eng.GetTypeAt(x, y) == t {
				n++
			}
		}
	}
	return n
}

// --- Property 9: single sand falls ---

func TestScenarioSingleSandFalls(t *testing.T) {
	eng := newEngineWithRNG(Config{W: 3, H: 3, ChunkSize: 16}, newSeededRNG(1, 2))
	placeGrid(eng, []string{
		".S.",
		"...",
		"...",
	})

	eng.Update()
	if eng.GetTypeAt(1, 0) == Sand {
		t.Fatal("after 1 step, sand should have moved down at least one row")
	}
	if eng.ActiveChunkCount() == 0 {
		t.Error("a chunk should be active after the first step")
	}

	for i := 0; i < 20; i++ {
		eng.Update()
	}
	if eng.GetTypeAt(1, 2) != Sand {
		t.Errorf("final resting position: got %s at (1,2), want Sand", eng.GetTypeAt(1, 2))
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if eng.GetTypeAt(x, y) == Sand {
				t.Errorf("unexpected sand at (%d,%d)", x, y)
			}
		}
	}
}

// --- Property 10: pile forms ---

func TestScenarioPileForms(t *testing.T) {
	eng := New(Config{W: 11, H: 11, ChunkSize: 16})
	for x := 0; x < 11; x++ {
		eng.Place(Stone, x, 10)
	}

	for i := 0; i < 20; i++ {
		eng.PlaceArea(Sand, 5, 0, 1)
		for s := 0; s < 15; s++ {
			eng.Update()
		}
	}
	for i := 0; i < 200; i++ {
		eng.Update()
	}

	if got := countType(eng, Sand); got != 20 {
		t.Fatalf("sand count = %d, want 20 (none lost or duplicated)", got)
	}

	colHeight := func(x int) int {
		h := 0
		for y := 9; y >= 0; y-- {
			if eng.GetTypeAt(x, y) == Sand {
				h++
			} else {
				break
			}
		}
		return h
	}

	if h := colHeight(5); h < 4 {
		t.Errorf("column 5 height = %d, want >= 4", h)
	}

	halfWidth := 0
	for d := 1; d <= 5; d++ {
		if countColumnSand(eng, 5+d) > 0 || countColumnSand(eng, 5-d) > 0 {
			halfWidth = d
		}
	}
	if halfWidth < 2 {
		t.Errorf("pile half-width = %d, want >= 2", halfWidth)
	}
}

func countColumnSand(eng *Engine, x int) int {
	if x < 0 || x >= eng.cfg.W {
		return 0
	}
	n := 0
	for y := 0; y < eng.cfg.H; y++ {
		if eng.GetTypeAt(x, y) == Sand {
			n++
		}
	}
	return n
}

// --- Property 11: water spreads ---

func TestScenarioWaterSpreads(t *testing.T) {
	eng := New(Config{W: 10, H: 5, ChunkSize: 16})
	for x := 0; x < 10; x++ {
		eng.Place(Stone, x, 4)
	}
	eng.Place(Water, 5, 0)

	for i := 0; i < 30; i++ {
		eng.Update()
	}

	floorWidth := 0
	for x := 0; x < 10; x++ {
		if eng.GetTypeAt(x, 3) == Water {
			floorWidth++
		}
	}
	if floorWidth < 5 {
		t.Errorf("floor water width = %d, want >= 5", floorWidth)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			if eng.GetTypeAt(x, y) == Water {
				t.Errorf("unexpected water above floor at (%d,%d)", x, y)
			}
		}
	}
}

// --- Property 12: oil floats on water ---

func TestScenarioOilFloatsOnWater(t *testing.T) {
	eng := New(Config{W: 3, H: 6, ChunkSize: 16})
	placeGrid(eng, []string{
		".O.",
		".W.",
		".W.",
		".W.",
		"...",
		"###",
	})
	// Seal the column with walls so oil can't escape sideways.
	for y := 0; y < 6; y++ {
		eng.Place(Stone, 0, y)
		eng.Place(Stone, 2, y)
	}

	for i := 0; i < 60; i++ {
		eng.Update()
	}

	oilY, waterMinY := -1, 99
	for y := 0; y < 6; y++ {
		switch eng.GetTypeAt(1, y) {
		case Oil:
			oilY = y
		case Water:
			if y < waterMinY {
				waterMinY = y
			}
		}
	}
	if oilY < 0 {
		t.Fatal("oil not found in column after settling")
	}
	if waterMinY < 99 && oilY >= waterMinY {
		t.Errorf("oil at row %d should sit above all water (topmost water row %d)", oilY, waterMinY)
	}
}

// --- Property 13: gas rises and dies ---

func TestScenarioGasRisesAndDies(t *testing.T) {
	const h = 12
	eng := New(Config{W: 5, H: h, ChunkSize: 16})
	eng.Place(Smoke, 0, h-1)

	reachedTop := false
	for i := 0; i < h*4; i++ {
		eng.Update()
		if eng.GetTypeAt(0, 0) == Smoke {
			reachedTop = true
			break
		}
		found := false
		for x := 0; x < 5; x++ {
			if eng.GetTypeAt(x, 0) == Smoke {
				found = true
			}
		}
		if found {
			reachedTop = true
			break
		}
	}
	if !reachedTop {
		t.Error("smoke did not reach the top row within H*4 steps")
	}

	eng2 := New(Config{W: 5, H: 5, ChunkSize: 16})
	eng2.Place(Smoke, 2, 2)
	lifetimeBound := elementMetadata[Smoke].InitialLifetime * 3
	for i := 0; i < lifetimeBound; i++ {
		eng2.Update()
		if countType(eng2, Smoke) == 0 {
			return
		}
	}
	t.Error("smoke was not destroyed within its lifetime bound")
}

// --- Property 14: fire consumes wood ---

func TestScenarioFireConsumesWood(t *testing.T) {
	eng := New(Config{W: 5, H: 5, ChunkSize: 16})
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			eng.Place(Wood, x, y)
		}
	}
	eng.Place(Fire, 2, 2)

	woodBefore := countType(eng, Wood)
	smokeSeen := false
	for i := 0; i < 300; i++ {
		eng.Update()
		if countType(eng, Smoke) > 0 {
			smokeSeen = true
		}
	}
	woodAfter := countType(eng, Wood)
	if woodAfter >= woodBefore {
		t.Errorf("wood count = %d after 300 steps, want < %d", woodAfter, woodBefore)
	}
	if !smokeSeen {
		t.Error("expected smoke to have appeared above a burning cell within 300 steps")
	}
}

// --- Phase-change reaction: fire converts adjacent water to steam ---

func TestScenarioFireConvertsWaterToSteam(t *testing.T) {
	eng := newEngineWithRNG(Config{W: 3, H: 3, ChunkSize: 16}, newSeededRNG(7, 8))
	placeGrid(eng, []string{
		"...",
		"WFW",
		"...",
	})

	for i := 0; i < 200; i++ {
		eng.Update()
		if countType(eng, Steam) > 0 {
			return
		}
	}
	t.Error("fire adjacent to water never produced steam within 200 steps")
}
