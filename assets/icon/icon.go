package icon

import (
	"bytes"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// appSVG is the window icon: two wheels with a lightning bolt between them.
const appSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
  <rect x="0" y="0" width="64" height="64" rx="14" ry="14" fill="#F5F3FF"/>
  <circle cx="20" cy="32" r="13" fill="#3B82F6"/>
  <circle cx="20" cy="32" r="5" fill="#DBEAFE"/>
  <circle cx="44" cy="32" r="13" fill="#A855F7"/>
  <circle cx="44" cy="32" r="5" fill="#F3E8FF"/>
  <path d="M35 8 L23 35 L31 35 L28 56 L42 27 L33 27 Z" fill="#FACC15" stroke="#B45309" stroke-width="1.5" stroke-linejoin="round"/>
</svg>`

// zapSVG is a white lightning bolt, tinted when drawn.
const zapSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <path d="M13 2 L3 14 L12 14 L11 22 L21 10 L12 10 Z" fill="#FFFFFF"/>
</svg>`

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	var out []image.Image
	for _, size := range []int{64, 32} {
		img, err := Render(appSVG, size, size)
		if err != nil {
			continue
		}
		out = append(out, img)
	}
	return out
}

// Zap returns the lightning glyph rasterized at size pixels.
func Zap(size int) (*image.RGBA, error) {
	return Render(zapSVG, size, size)
}

// Render rasterizes an SVG document into a w×h image.
func Render(svg string, w, h int) (*image.RGBA, error) {
	ic, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
	if err != nil {
		return nil, err
	}
	ic.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	ic.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
