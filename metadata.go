package sandcore

// textureTile is a small square raster sampled with wrap for textured
// element types (Stone, Wood). Populated by texture.go's loader; nil means
// "use color jitter instead" (spec's fallback policy).
type textureTile struct {
	w, h int
	pix  []RGBA // row-major, len == w*h
}

func (t *textureTile) sample(x, y int) RGBA {
	w, h := t.w, t.h
	sx := ((x % w) + w) % w
	sy := ((y % h) + h) % h
	return t.pix[sy*w+sx]
}

// ElementMetadata is the per-type data populated once at startup from which
// an element's construction color and movement profile are derived.
type ElementMetadata struct {
	Name     string
	Category Category

	BaseColor   RGBA
	ColorJitter int // per-channel jitter in [-ColorJitter, +ColorJitter]; unused when a texture resolved
	TexturePath string
	texture     *textureTile // resolved by resolveTextures in newEngine; nil if unset or load failed

	Density           float64 // 0..1
	Friction          float64 // 0..1, powder grounded-stop probability
	ImpactAbsorption  float64 // 0..1, reserved for future heat/impact rules
	InertialResistance float64 // 0..1, powder wake-up resistance

	// Liquid-only.
	DispersionRate   int // max column distance attempted per step
	DissolveThreshold int // neighbors needed before dissolution propagates; default 1

	// Gas-only.
	InitialLifetime      int     // frames
	ChanceOfDeathPerFrame float64
	ChanceOfHorizontal    float64 // probability of NOT rising straight up

	// Fire-only.
	FuelTable []FuelEntry

	// PhysicsParticle-only: none, represented type is carried on the instance.
}

// FuelEntry describes one flammable neighbor type Fire may consume.
type FuelEntry struct {
	FuelType               ElementType
	ChanceOfConsumption    float64
	LifeGained             int
	SpawnOnDeath           ElementType
	ChanceToSpawnOnDeath   float64
	FramesPerSmokeSpawn    int
}

// elementMetadata is indexed by ElementType. Populated in init(); see
// defaultMetadata below. resolveTextures mutates the texture field of
// a private copy held per-Engine (elementMetadata itself stays the read-only
// default so tests and multiple engines never race on it).
var elementMetadata [elementTypeCount]ElementMetadata

func init() {
	elementMetadata = defaultMetadata()
}

func defaultMetadata() [elementTypeCount]ElementMetadata {
	var m [elementTypeCount]ElementMetadata

	m[Empty] = ElementMetadata{Name: "Empty", Category: CategoryStatic}

	m[Stone] = ElementMetadata{
		Name: "Stone", Category: CategoryStatic,
		BaseColor: RGBA{120, 120, 128, 255}, ColorJitter: 6,
		TexturePath: "assets/textures/stone.png",
		Density: 1.0, Friction: 1, ImpactAbsorption: 0.9, InertialResistance: 1,
	}
	m[Wood] = ElementMetadata{
		Name: "Wood", Category: CategoryStatic,
		BaseColor: RGBA{117, 79, 45, 255}, ColorJitter: 10,
		TexturePath: "assets/textures/wood.png",
		Density: 0.9, Friction: 1, ImpactAbsorption: 0.5, InertialResistance: 1,
	}

	m[Sand] = ElementMetadata{
		Name: "Sand", Category: CategoryPowder,
		BaseColor: RGBA{219, 193, 113, 255}, ColorJitter: 14,
		Density: 0.6, Friction: 0.22, ImpactAbsorption: 0.1, InertialResistance: 0.55,
	}
	m[Dirt] = ElementMetadata{
		Name: "Dirt", Category: CategoryPowder,
		BaseColor: RGBA{92, 64, 42, 255}, ColorJitter: 12,
		Density: 0.65, Friction: 0.35, ImpactAbsorption: 0.1, InertialResistance: 0.6,
	}
	m[Coal] = ElementMetadata{
		Name: "Coal", Category: CategoryPowder,
		BaseColor: RGBA{34, 34, 36, 255}, ColorJitter: 10,
		Density: 0.7, Friction: 0.3, ImpactAbsorption: 0.1, InertialResistance: 0.65,
	}
	m[Salt] = ElementMetadata{
		Name: "Salt", Category: CategoryPowder,
		BaseColor: RGBA{235, 235, 235, 255}, ColorJitter: 8,
		Density: 0.55, Friction: 0.18, ImpactAbsorption: 0.1, InertialResistance: 0.5,
	}
	m[Ash] = ElementMetadata{
		Name: "Ash", Category: CategoryPowder,
		BaseColor: RGBA{150, 150, 150, 255}, ColorJitter: 10,
		Density: 0.2, Friction: 0.12, ImpactAbsorption: 0.1, InertialResistance: 0.35,
	}

	m[Water] = ElementMetadata{
		Name: "Water", Category: CategoryLiquid,
		BaseColor: RGBA{40, 110, 220, 170}, ColorJitter: 6,
		Density: 0.5, Friction: 0, ImpactAbsorption: 0, InertialResistance: 0,
		DispersionRate: 5, DissolveThreshold: 1,
	}
	m[Oil] = ElementMetadata{
		Name: "Oil", Category: CategoryLiquid,
		BaseColor: RGBA{90, 70, 30, 190}, ColorJitter: 6,
		Density: 0.35, Friction: 0, ImpactAbsorption: 0, InertialResistance: 0,
		DispersionRate: 3, DissolveThreshold: 1,
	}

	m[Smoke] = ElementMetadata{
		Name: "Smoke", Category: CategoryGas,
		BaseColor: RGBA{90, 90, 90, 140}, ColorJitter: 10,
		Density: 0.1, InitialLifetime: 180, ChanceOfDeathPerFrame: 0.04, ChanceOfHorizontal: 0.3,
	}
	m[Steam] = ElementMetadata{
		Name: "Steam", Category: CategoryGas,
		BaseColor: RGBA{220, 220, 225, 120}, ColorJitter: 8,
		Density: 0.05, InitialLifetime: 140, ChanceOfDeathPerFrame: 0.05, ChanceOfHorizontal: 0.35,
	}

	m[Fire] = ElementMetadata{
		Name: "Fire", Category: CategoryReactive,
		BaseColor: RGBA{255, 140, 20, 255}, ColorJitter: 0,
		Density: 0, InitialLifetime: 40,
		FuelTable: []FuelEntry{
			{FuelType: Wood, ChanceOfConsumption: 0.02, LifeGained: 60, SpawnOnDeath: Ash, ChanceToSpawnOnDeath: 0.5, FramesPerSmokeSpawn: 12},
			{FuelType: Oil, ChanceOfConsumption: 0.9, LifeGained: 20, SpawnOnDeath: Smoke, ChanceToSpawnOnDeath: 0.8, FramesPerSmokeSpawn: 4},
			{FuelType: Coal, ChanceOfConsumption: 0.05, LifeGained: 90, SpawnOnDeath: Ash, ChanceToSpawnOnDeath: 0.6, FramesPerSmokeSpawn: 16},
		},
	}

	m[PhysicsParticle] = ElementMetadata{Name: "PhysicsParticle", Category: CategoryParticle}

	return m
}

// fireFlickerPalette is the small uniform-weight palette Fire cycles through
// each step for visual churn (spec.md §4.2.5 step 6).
var fireFlickerPalette = []RGBA{
	{255, 220, 60, 255},  // yellow
	{255, 180, 40, 255},  // orange-yellow
	{255, 140, 20, 255},  // orange
	{230, 90, 20, 255},   // orange-red
	{200, 40, 20, 255},   // red
}

// colorFor computes an element's construction color: texture sample when a
// texture resolved, otherwise per-channel jitter around BaseColor.
func colorFor(meta *ElementMetadata, x, y int, rng RNG) RGBA {
	if meta.texture != nil {
		c := meta.texture.sample(x, y)
		c.A = meta.BaseColor.A
		return c
	}
	if meta.ColorJitter == 0 {
		return meta.BaseColor
	}
	jitter := func(ch uint8) uint8 {
		delta := rng.Int(-meta.ColorJitter, meta.ColorJitter)
		v := int(ch) + delta
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return RGBA{
		R: jitter(meta.BaseColor.R),
		G: jitter(meta.BaseColor.G),
		B: jitter(meta.BaseColor.B),
		A: meta.BaseColor.A,
	}
}
