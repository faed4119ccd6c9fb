package sandcore

// Element is one grid cell's contents. It is a tagged variant: Type selects
// which of the rule-specific fields below are meaningful, dispatched in
// updateAt (see update_*.go). Every cell in the grid owns one Element by
// value — there are no nulls and no per-cell allocation (spec's "owned
// contiguous array" design, replacing a virtual-inheritance element
// hierarchy with a flat struct and a switch on Type).
type Element struct {
	Type ElementType

	Color         RGBA
	OriginalColor RGBA

	X, Y int

	stepFlag bool // compared against Engine.step; see updateAt

	// Powder/liquid motion state.
	VelocityY  float64
	AccumY     float64
	IsMoving   bool
	notifiedBy bool // set when a horizontal neighbor asked this cell to wake up

	// Liquid-only.
	DissolvedElement ElementType

	// Gas-only.
	TimeUntilDeath int

	// Fire-only. FramesPerSmokeSpawn, SpawnOnDeath, and ChanceToSpawnOnDeath
	// are carried per-instance rather than read from a shared metadata table,
	// since they vary by which FuelEntry ignited this particular cell (a Fire
	// lit from Oil behaves differently on death than one lit from Wood).
	Lifetime             int
	FramesSinceSmoke     int
	FramesPerSmokeSpawn  int
	SpawnOnDeath         ElementType
	ChanceToSpawnOnDeath float64

	// PhysicsParticle-only.
	RepresentedType ElementType
	VelocityX       float64
	AccumX          float64
}

// newElement constructs a fresh Element of the given type at (x,y), deriving
// its color and per-type initial state from elementMetadata.
func newElement(t ElementType, x, y int, rng RNG, meta *[elementTypeCount]ElementMetadata) Element {
	m := &meta[t]
	c := colorFor(m, x, y, rng)
	e := Element{
		Type:          t,
		Color:         c,
		OriginalColor: c,
		X:             x,
		Y:             y,
	}
	switch m.Category {
	case CategoryGas:
		e.TimeUntilDeath = m.InitialLifetime
	case CategoryReactive:
		e.Lifetime = m.InitialLifetime
		// A freshly placed Fire (e.g. from the brush) has no igniting fuel
		// entry to inherit from: it dies silently and spawns smoke on the
		// same default cadence the original's bare Fire constructor uses.
		e.FramesPerSmokeSpawn = defaultFireSmokeCadence
		e.SpawnOnDeath = Empty
		e.ChanceToSpawnOnDeath = 0
	}
	return e
}

// movable reports whether this element's category has motion rules at all
// (used by buoyancy/fall eligibility checks across rule families).
func (e *Element) movable() bool {
	switch e.Type.Category() {
	case CategoryPowder, CategoryLiquid, CategoryGas, CategoryParticle:
		return true
	default:
		return false
	}
}
