package field

import (
	"image"
	"image/color"
	"testing"
)

func TestLogoHeight(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name  string
		width int
		want  float64
	}{
		{"desktop", 1920, 300},
		{"breakpoint is desktop", 768, 300},
		{"mobile", 767, 150},
		{"tiny", 320, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.LogoHeight(tt.width); got != tt.want {
				t.Errorf("LogoHeight(%d) = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}

func TestLogoRectCentred(t *testing.T) {
	r := LogoRect(image.Rect(0, 0, 100, 50), 1000, 600, 300)
	want := image.Rect(200, 150, 800, 450)
	if r != want {
		t.Errorf("LogoRect = %v, want %v", r, want)
	}
}

func TestRenderMaskScale(t *testing.T) {
	_, scale := RenderMask(solidImage(100, 50, opaque), 1000, 600, 300)
	if scale != 6 {
		t.Errorf("scale = %v, want 6", scale)
	}

	_, scale = RenderMask(nil, 1000, 600, 300)
	if scale != 0 {
		t.Errorf("nil image scale = %v, want 0", scale)
	}
}

func TestExtractPointsOpaqueImage(t *testing.T) {
	mask, _ := RenderMask(solidImage(100, 50, opaque), 1000, 600, 300)
	pts := ExtractPoints(mask, AlphaThreshold)

	rect := image.Rect(200, 150, 800, 450)
	if len(pts) != rect.Dx()*rect.Dy() {
		t.Fatalf("got %d points, want %d", len(pts), rect.Dx()*rect.Dy())
	}
	for i, pt := range pts {
		if !(image.Point{X: pt.X, Y: pt.Y}).In(rect) {
			t.Fatalf("point %d %v outside logo rect %v", i, pt, rect)
		}
		if pt.X < 0 || pt.X >= 1000 || pt.Y < 0 || pt.Y >= 600 {
			t.Fatalf("point %d %v outside canvas", i, pt)
		}
	}
	// Row-major order.
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if b.Y < a.Y || (b.Y == a.Y && b.X <= a.X) {
			t.Fatalf("points %d,%d out of row-major order: %v %v", i-1, i, a, b)
		}
	}
}

func TestExtractPointsClippedToCanvas(t *testing.T) {
	// A wide image on a narrow canvas overflows both sides.
	mask, _ := RenderMask(solidImage(400, 10, opaque), 300, 400, 150)
	pts := ExtractPoints(mask, AlphaThreshold)
	if len(pts) == 0 {
		t.Fatal("expected points")
	}
	for _, pt := range pts {
		if pt.X < 0 || pt.X >= 300 || pt.Y < 0 || pt.Y >= 400 {
			t.Fatalf("point %v outside canvas", pt)
		}
	}
}

func TestExtractPointsThreshold(t *testing.T) {
	mask := image.NewRGBA(image.Rect(0, 0, 4, 1))
	mask.SetRGBA(0, 0, color.RGBA{A: 128})
	mask.SetRGBA(1, 0, color.RGBA{A: 129})
	mask.SetRGBA(2, 0, color.RGBA{A: 0})
	mask.SetRGBA(3, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	pts := ExtractPoints(mask, AlphaThreshold)
	want := []Point{{1, 0}, {3, 0}}
	if len(pts) != len(want) {
		t.Fatalf("got %v, want %v", pts, want)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestExtractPointsTransparentImage(t *testing.T) {
	mask, _ := RenderMask(solidImage(64, 64, color.NRGBA{}), 800, 600, 300)
	if pts := ExtractPoints(mask, AlphaThreshold); len(pts) != 0 {
		t.Errorf("got %d points from a transparent image", len(pts))
	}
	if pts := ExtractPoints(nil, AlphaThreshold); pts != nil {
		t.Errorf("nil mask: got %v", pts)
	}
}
