package sandcore

// updateGas implements spec.md §4.2.4 for Smoke and Steam: lifetime aging
// with probabilistic death, upward/diagonal rise, and horizontal spread when
// ceilinged.
func updateGas(e *Engine, x, y int) {
	g := e.grid
	el := g.Get(x, y)
	meta := &e.meta[el.Type]

	el.TimeUntilDeath--
	if el.TimeUntilDeath <= 0 && e.rng.Chance(meta.ChanceOfDeathPerFrame) {
		g.Destroy(x, y)
		return
	}

	if e.rng.Chance(1 - meta.ChanceOfHorizontal) {
		if gasSwapEligible(e, el.Type, x, y-1) {
			g.Swap(x, y, x, y-1, e.step)
			return
		}
	} else {
		d := e.rng.Direction()
		candidates := [4]vec2i{{x + d, y - 1}, {x - d, y - 1}, {x + d, y}, {x - d, y}}
		for _, c := range candidates {
			if gasSwapEligible(e, el.Type, c.X, c.Y) {
				g.Swap(x, y, c.X, c.Y, e.step)
				return
			}
		}
	}

	// Can't rise further: flat, left-then-right spread only, no diagonal.
	el.IsMoving = false
	handleCeilingedGas(e, el.Type, x, y)
}

// handleCeilingedGas implements spec.md §4.2.4 step 3: when rising fails, a
// gas tries to spread horizontally only (left, then right); failing that it
// stays put.
func handleCeilingedGas(e *Engine, t ElementType, x, y int) {
	g := e.grid
	if gasSwapEligible(e, t, x-1, y) {
		g.Swap(x, y, x-1, y, e.step)
		return
	}
	if gasSwapEligible(e, t, x+1, y) {
		g.Swap(x, y, x+1, y, e.step)
	}
}

// gasSwapEligible: Empty yes; same type or already-updated no; everything
// else (liquids, powders, statics, other gases) no — gases yield only to
// Empty in the standard ruleset.
func gasSwapEligible(e *Engine, fromType ElementType, tx, ty int) bool {
	g := e.grid
	if !g.InBounds(tx, ty) {
		return false
	}
	if g.GetType(tx, ty) != Empty {
		return false
	}
	return !g.updatedThisStep(tx, ty)
}
