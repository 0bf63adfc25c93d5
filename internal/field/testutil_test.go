package field

import (
	"image"
	"image/color"
)

// solidImage returns a w×h image filled with c.
func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

var opaque = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// loadedField returns a field that skips image rendering and holds the
// given points and particles directly. The pointer is parked far outside
// the canvas so particles stay idle until a test moves it.
func loadedField(touchCapable bool, pts []Point, ps ...Particle) *Field {
	f := New(DefaultParams(), 42, touchCapable, nil)
	f.Handle(MouseMove(5000, 5000))
	f.loaded = true
	f.width, f.height = 1000, 600
	f.points = pts
	f.particles = append(f.particles, ps...)
	return f
}

func particleAt(x, y, baseX, baseY float64, life int) Particle {
	return Particle{
		X: x, Y: y, BaseX: baseX, BaseY: baseY,
		Size: 1, Life: life,
		Color: Palette.Idle, ScatteredColor: Palette.Scattered,
	}
}
