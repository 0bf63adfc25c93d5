package field

import "math"

// Mode is the per-frame state of a particle.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeScattered
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeScattered:
		return "scattered"
	}
	return "unknown"
}

type Particle struct {
	X, Y         float64
	BaseX, BaseY float64

	Size float64
	Life int

	Color          RGB
	ScatteredColor RGB
	Mode           Mode
}

// FillColor is the colour the particle is painted with this frame.
func (p *Particle) FillColor() RGB {
	if p.Mode == ModeScattered {
		return p.ScatteredColor
	}
	return p.Color
}

// ParticleCount is the pool size for a w×h canvas: a fixed areal density
// normalised to the reference resolution.
func (p Params) ParticleCount(w, h int) int {
	if w <= 0 || h <= 0 || p.ReferenceWidth <= 0 || p.ReferenceHeight <= 0 {
		return 0
	}
	area := float64(w) * float64(h)
	ref := float64(p.ReferenceWidth) * float64(p.ReferenceHeight)
	return int(math.Floor(float64(p.BaseCount) * math.Sqrt(area/ref)))
}

// newParticle anchors a particle at a uniformly random silhouette point.
// It reports false when there is nothing to sample from.
func newParticle(pts []Point, p *Params, r *Rand) (Particle, bool) {
	if len(pts) == 0 {
		return Particle{}, false
	}
	pt := pts[r.Intn(len(pts))]
	x, y := float64(pt.X), float64(pt.Y)
	return Particle{
		X: x, Y: y,
		BaseX: x, BaseY: y,
		Size:           r.RangeF(p.SizeMin, p.SizeMax),
		Life:           r.RangeI(p.LifeMin, p.LifeMax),
		Color:          p.Idle,
		ScatteredColor: p.Scattered,
	}, true
}
