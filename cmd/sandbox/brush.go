package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cindersim/sandcore"
)

// palette is the first ten selectable element types, bound to keys 1-9,0
// (spec's SPEC_FULL.md §4.9, grounded in the teacher's processPointer/
// number-key patterns in input.go).
var palette = [10]sandcore.ElementType{
	sandcore.Sand, sandcore.Water, sandcore.Stone, sandcore.Wood, sandcore.Oil,
	sandcore.Coal, sandcore.Salt, sandcore.Dirt, sandcore.Ash, sandcore.Fire,
}

var paletteKeys = [10]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0,
}

const (
	minBrushRadius = 1
	maxBrushRadius = 12
)

// brush binds the left mouse button to place_area(selected, cursor, radius)
// and the right button to an equivalent destroy over the same disk. The
// mouse wheel adjusts the radius; number keys pick the palette element. The
// brush only ever calls the engine's component-G mutation operations — it
// never touches the grid directly (SPEC_FULL.md §4.9).
type brush struct {
	eng      *sandcore.Engine
	selected sandcore.ElementType
	radius   int
}

func newBrush(eng *sandcore.Engine) *brush {
	return &brush{eng: eng, selected: sandcore.Sand, radius: 3}
}

func (b *brush) poll() {
	for i, key := range paletteKeys {
		if inpututil.IsKeyJustPressed(key) {
			b.selected = palette[i]
		}
	}

	_, wheelY := ebiten.Wheel()
	if wheelY > 0 {
		b.radius++
	} else if wheelY < 0 {
		b.radius--
	}
	if b.radius < minBrushRadius {
		b.radius = minBrushRadius
	}
	if b.radius > maxBrushRadius {
		b.radius = maxBrushRadius
	}

	mx, my := ebiten.CursorPosition()
	cx, cy := mx/pixelScale, my/pixelScale

	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		b.eng.PlaceArea(b.selected, cx, cy, b.radius)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		b.eng.DestroyArea(cx, cy, b.radius)
	}
}
