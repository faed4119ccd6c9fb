package sandcore

import "testing"

func newTestEngine(w, h int) *Engine {
	return newEngineWithRNG(Config{W: w, H: h, ChunkSize: 16, DebugAsserts: true}, newSeededRNG(42, 99))
}

// Property 1: every cell's stored position matches its coordinate.
func TestInvariantCellPositionsMatchCoordinates(t *testing.T) {
	eng := newTestEngine(8, 8)
	eng.PlaceArea(Sand, 4, 4, 3)
	for i := 0; i < 10; i++ {
		eng.Update()
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			el := eng.grid.Get(x, y)
			if el.X != x || el.Y != y {
				t.Fatalf("cell (%d,%d) stores position (%d,%d)", x, y, el.X, el.Y)
			}
		}
	}
}

// Property 2: no cell is ever null; destroy yields Empty.
func TestInvariantDestroyYieldsEmpty(t *testing.T) {
	eng := newTestEngine(4, 4)
	eng.Place(Sand, 1, 1)
	eng.Destroy(1, 1)
	if eng.GetTypeAt(1, 1) != Empty {
		t.Errorf("GetTypeAt after Destroy = %s, want Empty", eng.GetTypeAt(1, 1))
	}
}

// Property 3: the step bit toggles exactly once per Update().
func TestInvariantStepBitTogglesOnce(t *testing.T) {
	eng := newTestEngine(4, 4)
	before := eng.step
	eng.Update()
	if eng.step == before {
		t.Error("step bit should have toggled after Update()")
	}
	eng.Update()
	if eng.step != before {
		t.Error("step bit should be back to its original value after two Update() calls")
	}
}

// Property 4: active chunk count never exceeds the total.
func TestInvariantActiveChunkCountBounded(t *testing.T) {
	eng := newTestEngine(32, 32)
	eng.PlaceArea(Sand, 16, 16, 10)
	eng.Update()
	total := eng.chunks.ChunksX * eng.chunks.ChunksY
	if n := eng.ActiveChunkCount(); n > total {
		t.Errorf("ActiveChunkCount() = %d exceeds total %d", n, total)
	}
}

// Property 5: particle count never exceeds capacity; no negative lifetime.
func TestInvariantParticlePoolBounded(t *testing.T) {
	eng := newTestEngine(8, 8)
	for i := 0; i < 5; i++ {
		eng.SpawnParticle(Particle{X: 1, Y: 1, Lifetime: 10})
	}
	if eng.pool.AliveCount() > len(eng.pool.particles) {
		t.Error("alive particle count exceeds capacity")
	}
	for i := 0; i < eng.pool.AliveCount(); i++ {
		if eng.pool.particles[i].Lifetime < 0 {
			t.Error("found particle with negative lifetime")
		}
	}
}

// Property 6: place(T) then place(T) is idempotent (one construction).
func TestIdempotentPlace(t *testing.T) {
	eng := newTestEngine(4, 4)
	eng.Place(Sand, 1, 1)
	first := *eng.grid.Get(1, 1)
	eng.Place(Sand, 1, 1)
	second := *eng.grid.Get(1, 1)
	if first.Color != second.Color {
		t.Error("re-placing the same type should not reconstruct the element")
	}
}

// Property 7: place then destroy leaves Empty; update does not resurrect it.
func TestPlaceThenDestroyThenUpdateStaysEmpty(t *testing.T) {
	eng := newTestEngine(4, 4)
	eng.Place(Sand, 1, 1)
	eng.Destroy(1, 1)
	eng.Update()
	if eng.GetTypeAt(1, 1) != Empty {
		t.Errorf("GetTypeAt after destroy+update = %s, want Empty", eng.GetTypeAt(1, 1))
	}
}

// Property 8: swap then swap again restores original identities/positions.
func TestSwapTwiceRestoresEngine(t *testing.T) {
	eng := newTestEngine(4, 4)
	eng.Place(Sand, 0, 0)
	eng.Place(Water, 1, 0)
	eng.grid.Swap(0, 0, 1, 0, eng.step)
	eng.grid.Swap(0, 0, 1, 0, eng.step)
	if eng.GetTypeAt(0, 0) != Sand || eng.GetTypeAt(1, 0) != Water {
		t.Error("double swap should restore original element identities")
	}
}

func TestUpdateAtOnceGuardsDoubleDispatch(t *testing.T) {
	eng := newTestEngine(3, 3)
	eng.Place(Sand, 1, 1)
	el := eng.grid.Get(1, 1)
	el.stepFlag = eng.step // pretend already updated this step
	before := *el
	eng.updateAt(1, 1)
	after := *eng.grid.Get(1, 1)
	if before != after {
		t.Error("updateAt should no-op on a cell already marked updated this step")
	}
}

func TestComposeFrameLengthMatchesGrid(t *testing.T) {
	eng := newTestEngine(10, 6)
	frame := eng.ComposeFrame()
	if len(frame) != 60 {
		t.Errorf("frame length = %d, want 60", len(frame))
	}
}

func TestSpawnParticleRejectsAtCapacity(t *testing.T) {
	eng := newEngineWithRNG(Config{W: 4, H: 4, ParticleCapacity: 1}, newSeededRNG(1, 1))
	if !eng.SpawnParticle(Particle{Lifetime: 5}) {
		t.Fatal("first spawn should succeed")
	}
	if eng.SpawnParticle(Particle{Lifetime: 5}) {
		t.Error("spawn at capacity should fail")
	}
}
