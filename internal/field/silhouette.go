package field

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Point is a canvas pixel coordinate.
type Point struct {
	X, Y int
}

// IsMobile reports whether a canvas of width w falls in the small-screen class.
func (p Params) IsMobile(w int) bool {
	return w < p.MobileBreakpoint
}

// LogoHeight is the rendered source-image height for a canvas of width w.
func (p Params) LogoHeight(w int) float64 {
	h := p.LogoHeightDesktop
	if p.IsMobile(w) {
		h = p.LogoHeightMobile
	}
	return h * p.LogoScaleFactor
}

// LogoRect is where a src-sized image lands when scaled to logoH and
// centred in a w×h canvas. The rectangle may extend past the canvas.
func LogoRect(src image.Rectangle, w, h int, logoH float64) image.Rectangle {
	if src.Dx() <= 0 || src.Dy() <= 0 {
		return image.Rectangle{}
	}
	logoW := logoH * float64(src.Dx()) / float64(src.Dy())
	x0 := float64(w)/2 - logoW/2
	y0 := float64(h)/2 - logoH/2
	return image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x0+logoW)), int(math.Round(y0+logoH)),
	)
}

// RenderMask draws img scaled and centred into an off-screen w×h buffer
// and returns it with the scale factor logoH / image height. The buffer
// is only ever sampled, never shown.
func RenderMask(img image.Image, w, h int, logoH float64) (*image.RGBA, float64) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	mask := image.NewRGBA(image.Rect(0, 0, w, h))
	if img == nil {
		return mask, 0
	}
	sb := img.Bounds()
	if sb.Dx() <= 0 || sb.Dy() <= 0 {
		return mask, 0
	}
	dr := LogoRect(sb, w, h, logoH)
	if !dr.Empty() && w > 0 && h > 0 {
		draw.BiLinear.Scale(mask, dr, img, sb, draw.Over, nil)
	}
	return mask, logoH / float64(sb.Dy())
}

// ExtractPoints scans the mask row-major and returns every pixel whose
// alpha exceeds threshold.
func ExtractPoints(mask *image.RGBA, threshold uint8) []Point {
	if mask == nil {
		return nil
	}
	b := mask.Bounds()
	var pts []Point
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] > threshold {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}
