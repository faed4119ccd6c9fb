package sandcore

// updatePhysicsParticle implements spec.md §4.2.6: an in-grid ballistic cell
// that overlays the grid and reverts to its represented type once nearly
// stationary. Unlike the free-flying particle pool (component E), this is a
// real grid cell subject to swap eligibility against Empty/Gas/Liquid.
func updatePhysicsParticle(e *Engine, x, y int) {
	g := e.grid
	el := g.Get(x, y)

	el.VelocityX *= airResistance
	el.VelocityY *= airResistance
	el.VelocityY += gravityAccel
	if el.VelocityY > maxFallVelocity {
		el.VelocityY = maxFallVelocity
	}

	el.AccumX += el.VelocityX
	el.AccumY += el.VelocityY
	dx := int(el.AccumX)
	dy := int(el.AccumY)

	moved := false

	if dx != 0 {
		sx := sign(dx)
		steps := abs(dx)
		cx := x
		blocked := false
		for i := 0; i < steps; i++ {
			if !physicsParticleSwapEligible(e, cx+sx, y) {
				blocked = true
				break
			}
			g.Swap(cx, y, cx+sx, y, e.step)
			cx += sx
			moved = true
		}
		if blocked {
			el = g.Get(cx, y)
			el.VelocityX = -el.VelocityX * bounceDamping
			el.AccumX = 0
		} else {
			el = g.Get(cx, y)
			el.AccumX -= float64(dx)
		}
		x = cx
	}

	if dy != 0 {
		sy := sign(dy)
		steps := abs(dy)
		cy := y
		blocked := false
		for i := 0; i < steps; i++ {
			if !physicsParticleSwapEligible(e, x, cy+sy) {
				blocked = true
				break
			}
			g.Swap(x, cy, x, cy+sy, e.step)
			cy += sy
			moved = true
		}
		el = g.Get(x, cy)
		if blocked {
			el.VelocityY = -el.VelocityY * bounceDamping
			el.AccumY = 0
		} else {
			el.AccumY -= float64(dy)
		}
		y = cy
	}

	el = g.Get(x, y)
	if !moved && absF(el.VelocityX) < minVelocityThreshold && absF(el.VelocityY) < minVelocityThreshold {
		represented := el.RepresentedType
		color := el.Color
		g.Place(represented, x, y)
		reverted := g.Get(x, y)
		reverted.Color = color
	}
}

// physicsParticleSwapEligible: Empty, Gas, or Liquid accept an in-grid
// physics particle; statics, powders, other particles, and already-updated
// cells do not.
func physicsParticleSwapEligible(e *Engine, tx, ty int) bool {
	g := e.grid
	if !g.InBounds(tx, ty) {
		return false
	}
	if g.updatedThisStep(tx, ty) {
		return false
	}
	switch g.GetType(tx, ty) {
	case Empty:
		return true
	default:
		switch g.GetType(tx, ty).Category() {
		case CategoryGas, CategoryLiquid:
			return true
		default:
			return false
		}
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
