package sandcore

import (
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"
)

// resolveTextures loads the PNG tile referenced by each metadata row's
// TexturePath (only Stone and Wood carry one in the default table) and
// populates its texture field. A failed load is logged once and that row's
// texture stays nil, which routes construction color to channel jitter
// instead (spec.md §7's "texture load failure" policy, grounded in the
// teacher's LoadAtlas/Region fallback-on-miss pattern in atlas.go).
func resolveTextures(meta *[elementTypeCount]ElementMetadata) {
	for i := range meta {
		m := &meta[i]
		if m.TexturePath == "" {
			continue
		}
		tile, err := loadTextureTile(m.TexturePath)
		if err != nil {
			log.Printf("sandcore: texture %q for %s: %v (falling back to color jitter)", m.TexturePath, m.Name, err)
			continue
		}
		m.texture = tile
	}
}

// loadTextureTile decodes a PNG file and copies it into a tightly packed
// RGBA tile. draw.Draw normalizes whatever concrete image.Image the decoder
// produced (paletted, NRGBA, ...) into a single straightforward RGBA source
// the sampler can index directly.
func loadTextureTile(path string) (*textureTile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, image.ErrFormat
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	pix := make([]RGBA, w*h)
	for y := 0; y < h; y++ {
		rowOff := rgba.PixOffset(0, y)
		row := rgba.Pix[rowOff : rowOff+w*4]
		for x := 0; x < w; x++ {
			o := x * 4
			pix[y*w+x] = RGBA{R: row[o], G: row[o+1], B: row[o+2], A: row[o+3]}
		}
	}
	return &textureTile{w: w, h: h, pix: pix}, nil
}
