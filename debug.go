package sandcore

import "fmt"

// assertInvariants checks the per-frame invariants from spec.md §3/§8 and
// panics with a descriptive message on violation. Only called when
// Config.DebugAsserts is set (engine.go's Update); a violation here is a
// programming error in the engine itself, never user input, so the design
// treats it as fatal rather than recoverable (spec.md §7).
func assertInvariants(e *Engine) {
	assertCellPositions(e)
	assertNoNullCells(e)
	assertActiveChunkBound(e)
	assertParticlePoolBound(e)
}

// assertCellPositions checks invariant 1: every cell's stored (X,Y) matches
// the coordinate it lives at.
func assertCellPositions(e *Engine) {
	g := e.grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			el := g.Get(x, y)
			if el.X != x || el.Y != y {
				panic(fmt.Sprintf("sandcore: invariant violation: cell (%d,%d) stores position (%d,%d)", x, y, el.X, el.Y))
			}
		}
	}
}

// assertNoNullCells checks invariant 2: every cell resolves to a known
// element type (the grid is created fully populated and never holds a
// zero-value / out-of-range tag).
func assertNoNullCells(e *Engine) {
	g := e.grid
	for i := range g.cells {
		if int(g.cells[i].Type) >= len(elementMetadata) {
			panic(fmt.Sprintf("sandcore: invariant violation: cell %d has unknown type %d", i, g.cells[i].Type))
		}
	}
}

// assertActiveChunkBound checks invariant 4: active chunk count never
// exceeds the total chunk count.
func assertActiveChunkBound(e *Engine) {
	total := e.chunks.ChunksX * e.chunks.ChunksY
	if n := e.chunks.ActiveCount(); n > total {
		panic(fmt.Sprintf("sandcore: invariant violation: %d active chunks exceeds %d total", n, total))
	}
}

// assertParticlePoolBound checks invariant 6: live particle count never
// exceeds pool capacity, and no live particle has negative lifetime.
func assertParticlePoolBound(e *Engine) {
	p := e.pool
	if p.alive > len(p.particles) {
		panic(fmt.Sprintf("sandcore: invariant violation: %d alive particles exceeds capacity %d", p.alive, len(p.particles)))
	}
	for i := 0; i < p.alive; i++ {
		if p.particles[i].Lifetime < 0 {
			panic(fmt.Sprintf("sandcore: invariant violation: particle %d has negative lifetime %f", i, p.particles[i].Lifetime))
		}
	}
}
