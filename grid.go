package sandcore

// Grid is the fixed W×H array of elements. It is created fully populated
// with Empty cells and never resized; swap and place are its only mutation
// primitives, and both keep the chunk scheduler informed via activateAt so
// that update() confines its work to regions with recent activity.
type Grid struct {
	W, H int
	cells []Element

	chunks *Chunks
	rng    RNG
	meta   *[elementTypeCount]ElementMetadata

	// stepPtr points at the owning Engine's step bit. A freshly constructed
	// element is stamped with the opposite of *stepPtr so that it is never
	// mistaken for "already updated this frame" (see updateAt in engine.go).
	stepPtr *bool
}

func newGrid(w, h int, chunks *Chunks, rng RNG, meta *[elementTypeCount]ElementMetadata, stepPtr *bool) *Grid {
	g := &Grid{W: w, H: h, cells: make([]Element, w*h), chunks: chunks, rng: rng, meta: meta, stepPtr: stepPtr}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[g.index(x, y)] = g.construct(Empty, x, y)
		}
	}
	return g
}

// construct builds a fresh element stamped as not-yet-updated for the
// current step.
func (g *Grid) construct(t ElementType, x, y int) Element {
	e := newElement(t, x, y, g.rng, g.meta)
	e.stepFlag = !*g.stepPtr
	return e
}

func (g *Grid) index(x, y int) int { return y*g.W + x }

// updatedThisStep reports whether the cell at (x,y) has already been
// processed during the current update() pass.
func (g *Grid) updatedThisStep(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)].stepFlag == *g.stepPtr
}

// InBounds reports whether (x,y) names a cell in the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// IsEmpty reports whether (x,y) holds Empty. Out-of-bounds is never empty.
func (g *Grid) IsEmpty(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)].Type == Empty
}

// Get returns a pointer to the cell at (x,y), or nil if out of bounds. The
// returned pointer is valid only until the next swap/place/destroy touching
// that cell.
func (g *Grid) Get(x, y int) *Element {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.index(x, y)]
}

// GetType returns the element type at (x,y), or Empty if out of bounds.
func (g *Grid) GetType(x, y int) ElementType {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[g.index(x, y)].Type
}

// Destroy replaces the cell at (x,y) with a fresh Empty instance. Silent
// no-op out of bounds.
func (g *Grid) Destroy(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = g.construct(Empty, x, y)
	g.chunks.activateAt(x, y)
}

// Place constructs a new element of type t at (x,y), destroying whatever was
// there. No-op if the cell already holds t (idempotent, invariant 2) or if
// out of bounds.
func (g *Grid) Place(t ElementType, x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	idx := g.index(x, y)
	if g.cells[idx].Type == t {
		return
	}
	g.cells[idx] = g.construct(t, x, y)
	g.chunks.activateAt(x, y)
}

// PlaceArea places t within the open disk of the given radius centered at
// (cx,cy): dx²+dy² ≤ max(1, r²-1). Radius 1 degenerates to a single cell.
func (g *Grid) PlaceArea(t ElementType, cx, cy, radius int) {
	if radius <= 1 {
		g.Place(t, cx, cy)
		return
	}
	limit := radius*radius - 1
	if limit < 1 {
		limit = 1
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= limit {
				g.Place(t, cx+dx, cy+dy)
			}
		}
	}
}

// DestroyArea clears every cell within the same disk PlaceArea uses, for the
// brush tool's right-click erase.
func (g *Grid) DestroyArea(cx, cy, radius int) {
	if radius <= 1 {
		g.Destroy(cx, cy)
		return
	}
	limit := radius*radius - 1
	if limit < 1 {
		limit = 1
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= limit {
				g.Destroy(cx+dx, cy+dy)
			}
		}
	}
}

// Swap exchanges the elements at the two coordinates, rewrites each
// element's stored position to match its new cell, marks both updated this
// step, and activates the chunks containing both cells (plus border
// neighbors). A no-op if the two coordinates are equal. Both coordinates
// must be in bounds; callers (the rule functions) only ever call Swap after
// an eligibility check that already verified bounds.
func (g *Grid) Swap(x1, y1, x2, y2 int, step bool) {
	if x1 == x2 && y1 == y2 {
		return
	}
	i1, i2 := g.index(x1, y1), g.index(x2, y2)
	g.cells[i1], g.cells[i2] = g.cells[i2], g.cells[i1]

	g.cells[i1].X, g.cells[i1].Y = x1, y1
	g.cells[i2].X, g.cells[i2].Y = x2, y2
	g.cells[i1].stepFlag = step
	g.cells[i2].stepFlag = step

	g.chunks.activateAt(x1, y1)
	g.chunks.activateAt(x2, y2)
}
