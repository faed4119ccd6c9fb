package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/cindersim/sandcore"
)

// hud is the toggleable (F1) debug overlay: active-chunk rectangles plus a
// text block of FPS/TPS, chunk stats, and the brush's selected element
// (SPEC_FULL.md §4.8, grounded in the teacher's NewFPSWidget/debugStats
// pattern in fps.go and debug.go).
type hud struct {
	enabled bool
	face    *text.GoTextFace
	source  *text.GoTextFaceSource

	whitePixel *ebiten.Image
}

func newHUD() *hud {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		// The embedded font is part of the binary, so a failure here means the
		// build itself is broken. Logged rather than fatal so the sim still
		// runs, with the HUD text left undrawn.
		log.Printf("sandcore: sandbox: load HUD font: %v", err)
	}

	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)

	h := &hud{source: source, whitePixel: px}
	if source != nil {
		h.face = &text.GoTextFace{Source: source, Size: 12}
	}
	return h
}

func (h *hud) tick() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.enabled = !h.enabled
	}
}

func (h *hud) draw(screen *ebiten.Image, eng *sandcore.Engine, b *brush) {
	if !h.enabled {
		return
	}

	for _, r := range eng.ActiveChunkRects() {
		h.strokeRect(screen, r.Left*pixelScale, r.Top*pixelScale,
			(r.Right-r.Left+1)*pixelScale, (r.Bottom-r.Top+1)*pixelScale)
	}

	cx, cy := eng.ChunkGridSize()
	label := fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nactive chunks: %d / %d (%dx%d)\nbrush: %s  radius: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		eng.ActiveChunkCount(), cx*cy, cx, cy,
		b.selected, b.radius,
	)
	h.drawText(screen, label, 8, 8)
}

func (h *hud) drawText(screen *ebiten.Image, s string, x, y float64) {
	if h.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(1, 1, 1, 0.9)
	text.Draw(screen, s, h.face, op)
}

// strokeRect draws a one-pixel-wide rectangle outline by blitting a scaled
// 1x1 white image along each edge, translucent so it reads as an overlay
// rather than obscuring the simulation underneath.
func (h *hud) strokeRect(screen *ebiten.Image, x, y, w, hgt int) {
	edge := func(ex, ey, ew, eh int) {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(float64(ew), float64(eh))
		op.GeoM.Translate(float64(ex), float64(ey))
		op.ColorScale.Scale(80.0/255, 220.0/255, 120.0/255, 160.0/255)
		screen.DrawImage(h.whitePixel, &op)
	}
	edge(x, y, w, 1)
	edge(x, y+hgt-1, w, 1)
	edge(x, y, 1, hgt)
	edge(x+w-1, y, 1, hgt)
}
