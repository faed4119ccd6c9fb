// Package sandcore is a real-time falling-sand cellular automaton engine.
//
// A [Grid] of fixed W×H cells, each holding exactly one [Element], evolves
// under simple local physics — gravity, buoyancy, dispersion, dissolution,
// combustion — driven one step at a time by [Engine.Update]. A chunk-based
// scheduler confines each step's work to regions with recent activity, so a
// mostly-settled grid costs close to nothing per frame. A small pool of
// free-flying particles (sparks, debris) is composited over the grid's
// pixel output for effects that don't belong in the cell model itself.
//
// sandcore is a library, not a program: windowing, input capture, the brush
// tool, and the debug overlay are the caller's responsibility. See
// cmd/sandbox for a reference [Ebitengine]-based presenter that exercises
// the whole surface.
//
// # Quick start
//
//	eng := sandcore.New(sandcore.Config{W: 256, H: 144})
//	eng.PlaceArea(sandcore.Sand, 50, 10, 6)
//	for {
//		eng.Update()
//		pixels := eng.ComposeFrame()
//		// copy pixels into a *ebiten.Image, or any W*H RGBA8888 target
//	}
//
// # Element taxonomy
//
// Every cell holds one [ElementType]: Empty, Sand, Dirt, Coal, Salt, Ash
// (powders), Stone, Wood (statics), Water, Oil (liquids), Smoke, Steam
// (gases), Fire (reactive), and PhysicsParticle (in-grid ballistic cells).
// Adding a type is a local change: a tag in types.go, a row in
// elementMetadata, and an arm in updateAt's dispatch.
//
// # Scheduling
//
// [Engine.Update] processes grid rows bottom-up and, within each row, a
// fresh random permutation of columns — this is what keeps gravity
// convergent in one pass and removes left-right bias from piling and
// spreading. A per-cell step flag, compared against the engine's global
// step bit, guarantees each cell updates at most once per frame. Only
// chunks marked active by a recent swap or place are dispatched at all.
//
// [Ebitengine]: https://ebitengine.org
package sandcore
