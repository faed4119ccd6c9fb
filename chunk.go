package sandcore

// chunkCountdown is the number of frames a chunk stays active after its last
// reported activity, per spec.md's countdown lifecycle policy (preferred
// over immediate-on-inactive because it keeps settling piles from quiescing
// on a single quiet frame — see DESIGN.md's Open Question resolution).
const chunkCountdown = 10

// Chunk is a Cs×Cs tile of the grid and the unit of update scheduling.
type Chunk struct {
	CX, CY int // chunk coordinates

	Left, Top, Right, Bottom int // world-space extents, inclusive

	active           bool
	activeNextFrame  bool
	wasActive        bool // true iff this chunk was processed during the frame just finished
	countdown        int
}

// Chunks tiles a W×H grid into Cs×Cs chunks and tracks which are active.
type Chunks struct {
	W, H, Cs int
	ChunksX, ChunksY int
	chunks []Chunk

	// permScratch is reused per update() call by the row traversal in
	// engine.go to avoid per-row allocation (spec.md §5's "zero per-frame
	// allocation in the steady state").
	permScratch []int
}

func newChunks(w, h, cs int) *Chunks {
	if cs <= 0 {
		cs = 16
	}
	cx := ceilDiv(w, cs)
	cy := ceilDiv(h, cs)
	c := &Chunks{W: w, H: h, Cs: cs, ChunksX: cx, ChunksY: cy, chunks: make([]Chunk, cx*cy)}
	for gy := 0; gy < cy; gy++ {
		for gx := 0; gx < cx; gx++ {
			left := gx * cs
			top := gy * cs
			right := left + cs - 1
			bottom := top + cs - 1
			if right > w-1 {
				right = w - 1
			}
			if bottom > h-1 {
				bottom = h - 1
			}
			c.chunks[gy*cx+gx] = Chunk{CX: gx, CY: gy, Left: left, Top: top, Right: right, Bottom: bottom}
		}
	}
	return c
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (c *Chunks) chunkIndexAt(x, y int) int {
	return (y/c.Cs)*c.ChunksX + (x / c.Cs)
}

// activateAt marks the chunk containing (x,y) active and active-next-frame,
// refreshing its countdown. If (x,y) lies on a chunk edge, the adjacent
// chunk on that side is activated too — this is the sole mechanism by which
// rules propagate work into neighboring regions (spec.md §4.4).
func (c *Chunks) activateAt(x, y int) {
	if x < 0 || x >= c.W || y < 0 || y >= c.H {
		return
	}
	c.activateOne(x / c.Cs, y / c.Cs)

	localX := x % c.Cs
	localY := y % c.Cs
	if localX == 0 && x > 0 {
		c.activateOne((x-1)/c.Cs, y/c.Cs)
	}
	if localX == c.Cs-1 && x < c.W-1 {
		c.activateOne((x+1)/c.Cs, y/c.Cs)
	}
	if localY == 0 && y > 0 {
		c.activateOne(x/c.Cs, (y-1)/c.Cs)
	}
	if localY == c.Cs-1 && y < c.H-1 {
		c.activateOne(x/c.Cs, (y+1)/c.Cs)
	}
}

func (c *Chunks) activateOne(cx, cy int) {
	if cx < 0 || cx >= c.ChunksX || cy < 0 || cy >= c.ChunksY {
		return
	}
	ch := &c.chunks[cy*c.ChunksX+cx]
	ch.active = true
	ch.activeNextFrame = true
	ch.countdown = chunkCountdown
}

// at returns the chunk at chunk-space (cx,cy).
func (c *Chunks) at(cx, cy int) *Chunk {
	return &c.chunks[cy*c.ChunksX+cx]
}

// endFrame applies the countdown policy: a chunk stays active as long as its
// countdown has not reached zero, even if nothing re-activated it this
// frame; only when the countdown expires does it deactivate.
func (c *Chunks) endFrame() {
	for i := range c.chunks {
		ch := &c.chunks[i]
		ch.wasActive = ch.active
		if ch.activeNextFrame {
			ch.active = true
		} else if ch.countdown > 0 {
			ch.countdown--
			ch.active = ch.countdown > 0
		} else {
			ch.active = false
		}
		ch.activeNextFrame = false
	}
}

// ActiveCount returns the number of chunks that will be processed this frame.
func (c *Chunks) ActiveCount() int {
	n := 0
	for i := range c.chunks {
		if c.chunks[i].active {
			n++
		}
	}
	return n
}

// activeRects returns the bounding rectangles of every currently active
// chunk, for the debug HUD overlay (spec.md §4.8 / SPEC_FULL.md §4.8).
func (c *Chunks) activeRects() []Chunk {
	var out []Chunk
	for i := range c.chunks {
		if c.chunks[i].active {
			out = append(out, c.chunks[i])
		}
	}
	return out
}
