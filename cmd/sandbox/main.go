// Command sandbox is a reference presenter for sandcore: it owns one
// sandcore.Engine, paces Update() at a fixed timestep, drives a brush tool
// from mouse/keyboard input, and overlays a debug HUD. It exists because a
// complete repository ships a runnable program, not just a library — the
// same role the teacher stack's demos/ and examples/ trees play for it.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cindersim/sandcore"
)

const (
	windowTitle = "sandcore — sandbox"
	gridW       = 320
	gridH       = 200
	pixelScale  = 3
)

func main() {
	eng := sandcore.New(sandcore.Config{
		W:                gridW,
		H:                gridH,
		ChunkSize:        16,
		PhysicsHz:        60,
		ParticleCapacity: 4096,
	})

	g := &game{
		eng:   eng,
		brush: newBrush(eng),
		hud:   newHUD(),
		image: ebiten.NewImage(gridW, gridH),
		pix:   make([]byte, gridW*gridH*4),
	}

	ebiten.SetWindowSize(gridW*pixelScale, gridH*pixelScale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(g.eng.PhysicsHz())

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("sandcore: sandbox: %v", err)
	}
}

// game implements ebiten.Game by delegating stepping to the engine and
// input to the brush. There is no scene graph here: the engine's
// ComposeFrame output is blitted directly onto an *ebiten.Image each draw.
type game struct {
	eng   *sandcore.Engine
	brush *brush
	hud   *hud

	image *ebiten.Image
	pix   []byte // scratch RGBA buffer reused every Draw
}

func (g *game) Update() error {
	g.brush.poll()
	g.eng.Update()
	g.hud.tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.eng.ComposeFrame()
	packFrameRGBA(frame, g.pix)
	g.image.WritePixels(g.pix)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(pixelScale, pixelScale)
	screen.DrawImage(g.image, &op)

	g.hud.draw(screen, g.eng, g.brush)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gridW * pixelScale, gridH * pixelScale
}

// packFrameRGBA unpacks the engine's []uint32 RGBA8888 pixels into the
// byte-per-channel slice ebiten.Image.WritePixels expects.
func packFrameRGBA(frame []uint32, dst []byte) {
	for i, p := range frame {
		o := i * 4
		dst[o] = byte(p >> 24)
		dst[o+1] = byte(p >> 16)
		dst[o+2] = byte(p >> 8)
		dst[o+3] = byte(p)
	}
}
