package sandcore

// updateLiquid implements spec.md §4.2.3 for Water and Oil: buoyancy against
// a denser liquid above, accumulator-driven fall, grounded dispersion along
// a weighted-random column distance, and dissolved-tag diffusion.
func updateLiquid(e *Engine, x, y int) {
	if tryLiquidBuoyancy(e, x, y) {
		return
	}
	if tryLiquidFall(e, x, y) {
		return
	}
	if tryLiquidSpread(e, x, y) {
		return
	}
	tryLiquidDissolve(e, x, y)
}

// liquidSwapEligible: same type no; Empty yes; another liquid yes iff this
// cell's density strictly exceeds the target's and the target has not
// updated this step; powders/gases/statics no (liquids don't sink through
// density here — PowderElement rules handle that side of the interaction).
func liquidSwapEligible(e *Engine, fromType ElementType, tx, ty int) bool {
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
	if target.Category() != CategoryLiquid {
		return false
	}
	if g.updatedThisStep(tx, ty) {
		return false
	}
	return e.meta[fromType].Density > e.meta[target].Density
}

func tryLiquidBuoyancy(e *Engine, x, y int) bool {
	g := e.grid
	el := g.Get(x, y)
	above := g.Get(x, y-1)
	if above == nil || above.Type.Category() != CategoryLiquid || above.Type == el.Type {
		return false
	}
	if g.updatedThisStep(x, y-1) {
		return false
	}
	diff := e.meta[above.Type].Density - e.meta[el.Type].Density
	if diff <= 0 {
		return false
	}
	if e.rng.Chance(diff) {
		g.Swap(x, y, x, y-1, e.step)
		return true
	}
	return false
}

func tryLiquidFall(e *Engine, x, y int) bool {
	g := e.grid
	el := g.Get(x, y)
	if !liquidSwapEligible(e, el.Type, x, y+1) {
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
		if !liquidSwapEligible(e, el.Type, x, cy+1) {
			break
		}
		g.Swap(x, cy, x, cy+1, e.step)
		cy++
		moved = true
	}
	return moved
}

// tryLiquidSpread implements grounded spreading: try both down-diagonals
// first, then a weighted-random max horizontal distance, sliding down from
// the farthest reachable column.
func tryLiquidSpread(e *Engine, x, y int) bool {
	g := e.grid
	el := g.Get(x, y)
	d := e.rng.Direction()

	for _, dir := range [2]int{d, -d} {
		if liquidSwapEligible(e, el.Type, x+dir, y+1) {
			g.Swap(x, y, x+dir, y+1, e.step)
			return true
		}
	}

	meta := &e.meta[el.Type]
	if meta.DispersionRate < 1 {
		return false
	}
	k := weightedDispersionDistance(e, meta.DispersionRate)

	for _, dir := range [2]int{d, -d} {
		landingX := x
		found := false
		for step := 1; step <= k; step++ {
			tx := x + dir*step
			if !liquidSwapEligible(e, el.Type, tx, y) {
				break
			}
			landingX = tx
			found = true
		}
		if !found {
			continue
		}
		// Slide downward from the landing column as far as possible.
		ly := y
		for liquidSwapEligible(e, el.Type, landingX, ly+1) {
			ly++
		}
		g.Swap(x, y, landingX, ly, e.step)
		return true
	}
	return false
}

// weightedDispersionDistance picks k in [1, maxRate] with weights
// proportional to k, so farther distances are more likely but not certain.
func weightedDispersionDistance(e *Engine, maxRate int) int {
	total := maxRate * (maxRate + 1) / 2
	roll := e.rng.Int(1, total)
	cumulative := 0
	for k := 1; k <= maxRate; k++ {
		cumulative += k
		if roll <= cumulative {
			return k
		}
	}
	return maxRate
}

// tryLiquidDissolve propagates a non-Empty DissolvedElement tag to a
// uniformly-chosen same-type neighbor with an Empty tag, with probability
// 0.2 per step (spec.md §4.2.3 step 4).
func tryLiquidDissolve(e *Engine, x, y int) bool {
	g := e.grid
	el := g.Get(x, y)
	if el.DissolvedElement == Empty {
		return false
	}

	var candidates [8]vec2i
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			neighbor := g.Get(nx, ny)
			if neighbor == nil || neighbor.Type != el.Type || neighbor.DissolvedElement != Empty {
				continue
			}
			candidates[n] = vec2i{nx, ny}
			n++
		}
	}
	if n < e.meta[el.Type].DissolveThreshold {
		return false
	}
	if !e.rng.Chance(0.2) {
		return false
	}
	target := candidates[e.rng.Int(0, n-1)]
	neighbor := g.Get(target.X, target.Y)
	neighbor.DissolvedElement = el.DissolvedElement
	return true
}
