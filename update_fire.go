package sandcore

// defaultFireSmokeCadence is the smoke-generation cadence (frames) a Fire
// cell uses when it wasn't lit by a fuel entry (e.g. brush-placed), matching
// the original implementation's bare Fire constructor default.
const defaultFireSmokeCadence = 5

// waterToSteamChance is the per-frame, per-adjacent-Water probability Fire
// converts that neighbor to Steam (spec.md §4.2.7's phase-change reaction;
// there is no heat-diffusion field in this engine, so "above a threshold" is
// modeled as "adjacent to Fire, each frame, at this chance" the same way
// fuel ignition chances stand in for the original's temperature checks).
const waterToSteamChance = 0.05

// updateFire implements spec.md §4.2.5. Fire never moves: it activates its
// own chunk each step (so churn keeps rendering even with no neighbor
// motion), ages, consumes fuel from its eight neighbors via the fuel table,
// converts adjacent Water to Steam, emits smoke on a cadence, and flickers
// through a small color palette.
func updateFire(e *Engine, x, y int) {
	g := e.grid
	el := g.Get(x, y)
	meta := &e.meta[el.Type]

	e.chunks.activateAt(x, y)

	el.Lifetime--
	if el.Lifetime <= 0 {
		extinguish(e, x, y, el)
		return
	}

	foundFuel := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			neighbor := g.Get(nx, ny)
			if neighbor == nil {
				continue
			}

			if neighbor.Type == Water {
				if e.rng.Chance(waterToSteamChance) {
					g.Place(Steam, nx, ny)
				}
				continue
			}

			for _, fuel := range meta.FuelTable {
				if neighbor.Type != fuel.FuelType {
					continue
				}
				foundFuel = true
				if e.rng.Chance(fuel.ChanceOfConsumption) {
					igniteFuel(e, nx, ny, fuel)
				}
			}
		}
	}
	if !foundFuel {
		el.Lifetime--
	}

	el.FramesSinceSmoke++
	if el.FramesPerSmokeSpawn > 0 && el.FramesSinceSmoke >= el.FramesPerSmokeSpawn {
		el.FramesSinceSmoke = 0
		if g.IsEmpty(x, y-1) {
			g.Place(Smoke, x, y-1)
		}
	}

	el.Color = fireFlickerPalette[e.rng.Int(0, len(fireFlickerPalette)-1)]

	if e.rng.Chance(0.3) {
		spawnFireParticle(e, x, y)
	}
}

// igniteFuel replaces a matched neighbor with a fresh Fire cell, inheriting
// the triggering fuel entry's lifetime gain, smoke cadence, and
// spawn-on-death policy onto the new cell's own instance fields (spec.md
// §4.2.5 step 3) rather than a shared metadata lookup, so a Fire lit from
// Oil keeps Oil's cadence/death-spawn even while burning next to Wood.
func igniteFuel(e *Engine, x, y int, fuel FuelEntry) {
	g := e.grid
	g.Place(Fire, x, y)
	lit := g.Get(x, y)
	lit.Lifetime = fuel.LifeGained
	lit.FramesSinceSmoke = 0
	lit.FramesPerSmokeSpawn = fuel.FramesPerSmokeSpawn
	lit.SpawnOnDeath = fuel.SpawnOnDeath
	lit.ChanceToSpawnOnDeath = fuel.ChanceToSpawnOnDeath
}

// extinguish destroys a burnt-out Fire cell, optionally spawning its own
// spawn-on-death replacement (e.g. Ash for Wood-lit fires, Smoke for
// Oil-lit ones).
func extinguish(e *Engine, x, y int, el *Element) {
	g := e.grid
	if el.SpawnOnDeath != Empty && e.rng.Chance(el.ChanceToSpawnOnDeath) {
		g.Place(el.SpawnOnDeath, x, y)
		return
	}
	g.Destroy(x, y)
}

// spawnFireParticle emits a short-lived spark drifting upward with a small
// random horizontal velocity (spec.md §4.2.5 step 7).
func spawnFireParticle(e *Engine, x, y int) {
	c := fireFlickerPalette[e.rng.Int(0, len(fireFlickerPalette)-1)]
	e.pool.spawn(Particle{
		X: x, Y: y,
		VX: e.rng.Float(-0.4, 0.4), VY: -e.rng.Float(0.5, 1.4),
		AY:            -0.02,
		Color:         c,
		Lifetime:      float64(e.rng.Int(10, 30)),
		FadeThreshold: 0.5,
		InitialAlpha:  1,
	})
}
