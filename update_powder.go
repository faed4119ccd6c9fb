package sandcore

// updatePowder implements spec.md §4.2.2 for Sand, Dirt, Coal, Salt, Ash:
// buoyancy against less-dense movables, accumulator-driven fall, grounded
// diagonal piling, and neighbor wake notification.
func updatePowder(e *Engine, x, y int) {
	g := e.grid
	el := g.Get(x, y)
	meta := &e.meta[el.Type]

	if el.notifiedBy {
		el.notifiedBy = false
		if !e.rng.Chance(meta.InertialResistance) {
			el.IsMoving = true
		}
	}

	if tryPowderBuoyancy(e, x, y) {
		return
	}

	if tryPowderFall(e, x, y) {
		return
	}

	// Grounded: either stop (friction) or slide diagonally.
	if e.rng.Chance(meta.Friction) {
		el.IsMoving = false
		return
	}

	d := e.rng.Direction()
	if tryPowderDiagonal(e, x, y, d) {
		return
	}
	tryPowderDiagonal(e, x, y, -d)
}

// powderSwapEligible reports whether a powder of fromType may swap into
// (tx,ty): in bounds, not the same type, never against another powder or a
// static (Empty excepted — it always accepts), and never against a non-Empty
// cell already updated this step.
func powderSwapEligible(e *Engine, fromType ElementType, tx, ty int) bool {
	g := e.grid
	if !g.InBounds(tx, ty) {
		return false
	}
	target := g.GetType(tx, ty)
	if target == fromType {
		return false
	}
	if target == Empty {
		return true
	}
	if g.updatedThisStep(tx, ty) {
		return false
	}
	switch target.Category() {
	case CategoryLiquid, CategoryGas:
		return true
	default:
		return false
	}
}

func tryPowderBuoyancy(e *Engine, x, y int) bool {
	g := e.grid
	el := g.Get(x, y)
	meta := &e.meta[el.Type]

	above := g.Get(x, y-1)
	if above == nil || !above.movable() || g.updatedThisStep(x, y-1) {
		return false
	}
	if above.Type == el.Type {
		return false
	}
	aboveMeta := &e.meta[above.Type]
	diff := meta.Density - aboveMeta.Density
	if diff > 0 {
		if e.rng.Chance(diff) {
			g.Swap(x, y, x, y-1, e.step)
			return true
		}
		return false
	}
	if diff < 0 {
		if e.rng.Chance(-diff) {
			d := e.rng.Direction()
			if g.InBounds(x+d, y) && powderSwapEligible(e, el.Type, x+d, y) {
				g.Swap(x, y, x+d, y, e.step)
				return true
			}
		}
	}
	return false
}

func tryPowderFall(e *Engine, x, y int) bool {
	g := e.grid
	el := g.Get(x, y)

	if !powderSwapEligible(e, el.Type, x, y+1) {
		el.IsMoving = false
		return false
	}

	var rows int
	el.VelocityY, el.AccumY, rows = applyGravity(el.VelocityY, el.AccumY)
	if rows < 1 {
		rows = 1
	}

	cy := y
	moved := false
	for i := 0; i < rows; i++ {
		if !powderSwapEligible(e, el.Type, x, cy+1) {
			break
		}
		// Share momentum with whatever movable sits directly above before
		// moving out from under it (spec.md §4.2.2 step 2: any movable, not
		// just another powder).
		if above := g.Get(x, cy-1); above != nil && above.movable() {
			above.VelocityY = el.VelocityY
		}
		g.Swap(x, cy, x, cy+1, e.step)
		cy++
		moved = true
	}
	if moved {
		el2 := g.Get(x, cy)
		el2.IsMoving = true
	}
	return moved
}

func tryPowderDiagonal(e *Engine, x, y, d int) bool {
	g := e.grid
	el := g.Get(x, y)
	tx, ty := x+d, y+1
	if !powderSwapEligible(e, el.Type, tx, ty) {
		return false
	}
	g.Swap(x, y, tx, ty, e.step)
	el2 := g.Get(tx, ty)
	el2.IsMoving = true
	notifyHorizontalNeighbors(e, tx, ty)
	return true
}

// notifyHorizontalNeighbors wakes the two horizontal neighbors of (x,y),
// each choosing independently whether to respond (spec.md §4.2.2 step 3/4).
func notifyHorizontalNeighbors(e *Engine, x, y int) {
	g := e.grid
	for _, dx := range [2]int{-1, 1} {
		if n := g.Get(x+dx, y); n != nil && n.Type.Category() == CategoryPowder {
			n.notifiedBy = true
		}
	}
}
