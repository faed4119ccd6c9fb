package sandcore

// Engine owns one simulation instance: the grid, the chunk scheduler, the
// RNG, and the particle pool. It is not safe for concurrent use — exactly
// one caller drives Update, matching spec.md §5's single-threaded
// cooperative model.
type Engine struct {
	cfg Config

	grid   *Grid
	chunks *Chunks
	rng    RNG
	pool   *ParticlePool
	meta   [elementTypeCount]ElementMetadata

	step bool // toggles exactly once per Update() call

	frame []uint32 // W*H packed RGBA8888, valid until the next ComposeFrame call
}

// New constructs an Engine for a W×H grid. W and H are fixed for the life of
// the Engine; there is no resize operation.
func New(cfg Config) *Engine {
	return newEngine(cfg, newEntropyRNG())
}

// newEngine is the shared constructor behind New. Tests reach it through
// newEngineWithRNG to substitute a deterministic generator for the
// production entropy-seeded one (spec.md §4.1's injection seam, matching
// the teacher's Range.Random() swappable-source pattern).
func newEngine(cfg Config, rng RNG) *Engine {
	if cfg.W <= 0 || cfg.H <= 0 {
		panic("sandcore: New requires W > 0 and H > 0")
	}
	cfg = cfg.resolve()

	e := &Engine{cfg: cfg, meta: defaultMetadata()}
	resolveTextures(&e.meta)

	e.rng = rng
	e.chunks = newChunks(cfg.W, cfg.H, cfg.ChunkSize)
	e.grid = newGrid(cfg.W, cfg.H, e.chunks, e.rng, &e.meta, &e.step)
	e.pool = newParticlePool(cfg.ParticleCapacity)
	e.frame = make([]uint32, cfg.W*cfg.H)
	return e
}

// newEngineWithRNG constructs an Engine backed by a caller-supplied RNG,
// for deterministic tests of rule scenarios that would otherwise depend on
// entropy-seeded randomness.
func newEngineWithRNG(cfg Config, rng RNG) *Engine {
	return newEngine(cfg, rng)
}

// --- Mutation API (component G) ---

// Place constructs element t at (x,y), idempotent if the cell already holds
// t. Silent no-op out of bounds.
func (e *Engine) Place(t ElementType, x, y int) { e.grid.Place(t, x, y) }

// PlaceArea places t within the disk of the given radius centered at
// (cx,cy) (spec.md §4.3's r²-1 semantics).
func (e *Engine) PlaceArea(t ElementType, cx, cy, radius int) { e.grid.PlaceArea(t, cx, cy, radius) }

// DestroyArea clears every cell within the same disk PlaceArea uses.
func (e *Engine) DestroyArea(cx, cy, radius int) { e.grid.DestroyArea(cx, cy, radius) }

// Destroy replaces the cell at (x,y) with Empty.
func (e *Engine) Destroy(x, y int) { e.grid.Destroy(x, y) }

// --- Stepping ---

// Update advances the simulation by one step: every active chunk's rows are
// processed bottom-up, columns in a fresh random permutation per row, each
// cell updated at most once. The global step bit toggles exactly once
// before returning.
func (e *Engine) Update() {
	perm := e.chunks.permScratch
	for cy := e.chunks.ChunksY - 1; cy >= 0; cy-- {
		// Process a chunk row's worth of grid rows together, bottom-up, so
		// gravity converges within a single pass across chunk boundaries.
		top := e.chunks.Cs * cy
		bottom := top + e.chunks.Cs - 1
		if bottom > e.grid.H-1 {
			bottom = e.grid.H - 1
		}
		for y := bottom; y >= top; y-- {
			perm = permutation(perm, e.grid.W, e.rng)
			for _, xi := range perm {
				chunkX := xi / e.chunks.Cs
				if !e.chunks.at(chunkX, cy).active {
					continue
				}
				e.updateAt(xi, y)
			}
		}
	}
	e.chunks.permScratch = perm

	e.pool.updateAll(e.grid.W, e.grid.H)

	e.step = !e.step
	e.chunks.endFrame()

	if e.cfg.DebugAsserts {
		assertInvariants(e)
	}
}

// updateAt dispatches the cell at (x,y) to its category's rule function,
// guarded by the once-per-cell per-step flag (spec.md §4.2's update_at).
func (e *Engine) updateAt(x, y int) {
	el := e.grid.Get(x, y)
	if el.stepFlag == e.step {
		return
	}
	el.stepFlag = e.step

	switch el.Type.Category() {
	case CategoryStatic:
		// no-op; Fire's fuel-consumption path (updateFire) is the only way
		// a static cell changes, and that happens from the Fire side.
	case CategoryPowder:
		updatePowder(e, x, y)
	case CategoryLiquid:
		updateLiquid(e, x, y)
	case CategoryGas:
		updateGas(e, x, y)
	case CategoryReactive:
		updateFire(e, x, y)
	case CategoryParticle:
		updatePhysicsParticle(e, x, y)
	}
}

// --- Frame output (component F) ---

// ComposeFrame packs every cell whose containing chunk was active this
// frame into the RGBA8888 pixel buffer, alpha-composites live particles
// over it with "over" blending, and returns the buffer. The buffer is
// valid until the next ComposeFrame call; cells outside active chunks keep
// their last-written pixel, per spec.md §4.6.
func (e *Engine) ComposeFrame() []uint32 {
	for cy := 0; cy < e.chunks.ChunksY; cy++ {
		for cx := 0; cx < e.chunks.ChunksX; cx++ {
			ch := e.chunks.at(cx, cy)
			if !ch.wasActive {
				continue
			}
			for y := ch.Top; y <= ch.Bottom; y++ {
				base := y * e.grid.W
				for x := ch.Left; x <= ch.Right; x++ {
					idx := base + x
					e.frame[idx] = e.grid.cells[idx].Color.pack()
				}
			}
		}
	}
	compositeParticles(e.frame, e.grid.W, e.grid.H, e.pool)
	return e.frame
}

// --- Introspection ---

// ActiveChunkCount returns the number of chunks that will be processed this
// frame.
func (e *Engine) ActiveChunkCount() int { return e.chunks.ActiveCount() }

// ChunkGridSize returns the chunk grid's dimensions (ChunksX, ChunksY).
func (e *Engine) ChunkGridSize() (int, int) { return e.chunks.ChunksX, e.chunks.ChunksY }

// PhysicsHz returns the configured fixed-timestep rate a presenter should
// pace Update() at (spec.md §6's Config constant; the core never reads it).
func (e *Engine) PhysicsHz() int { return e.cfg.PhysicsHz }

// GridSize returns the engine's fixed grid dimensions (W, H).
func (e *Engine) GridSize() (int, int) { return e.grid.W, e.grid.H }

// GetTypeAt returns the element type at (x,y), or Empty if out of bounds.
func (e *Engine) GetTypeAt(x, y int) ElementType { return e.grid.GetType(x, y) }

// ActiveChunkRects returns the bounding rectangles of currently active
// chunks, for a debug HUD overlay.
func (e *Engine) ActiveChunkRects() []Chunk { return e.chunks.activeRects() }

// --- Particle injection ---

// SpawnParticle appends p to the free-flying particle pool. Returns false if
// the pool is at capacity.
func (e *Engine) SpawnParticle(p Particle) bool { return e.pool.spawn(p) }
