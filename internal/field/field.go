// Package field simulates a particle cloud that settles into the opaque
// silhouette of an image and scatters away from a pointer.
package field

import (
	"image"
	"math"
	"slices"
)

// Field is an image-shaped particle cloud. It owns all simulation state and
// is driven by a single goroutine: Handle for input, Step once per frame.
type Field struct {
	params       Params
	rng          *Rand
	bus          *EventBus
	touchCapable bool

	width, height int
	mobile        bool

	img    image.Image
	points []Point
	scale  float64
	loaded bool

	pointer   Pointer
	particles []Particle
	spare     []Particle
	scattered int
}

// New creates an empty field. bus may be nil.
func New(p Params, seed uint64, touchCapable bool, bus *EventBus) *Field {
	if bus == nil {
		bus = NewEventBus()
	}
	return &Field{
		params:       p,
		rng:          NewRand(seed),
		bus:          bus,
		touchCapable: touchCapable,
	}
}

// Load installs the source image, sizes the canvas, builds the silhouette
// and seeds the pool. An image with no opaque pixels at the rendered size
// yields an empty field. Returns the seeded particle count.
func (f *Field) Load(img image.Image, w, h int) int {
	f.img = img
	f.loaded = true
	f.updateCanvasSize(w, h)
	f.scale = f.buildSilhouette()
	f.reseed()
	return len(f.particles)
}

// Resize replaces the silhouette and the whole pool for a new canvas size.
// Before Load it only records the size.
func (f *Field) Resize(w, h int) {
	f.updateCanvasSize(w, h)
	if !f.loaded {
		return
	}
	f.scale = f.buildSilhouette()
	f.reseed()
}

func (f *Field) updateCanvasSize(w, h int) {
	f.width = max(w, 0)
	f.height = max(h, 0)
	f.mobile = f.params.IsMobile(f.width)
}

func (f *Field) buildSilhouette() float64 {
	mask, scale := RenderMask(f.img, f.width, f.height, f.params.LogoHeight(f.width))
	f.points = ExtractPoints(mask, f.params.AlphaThreshold)
	return scale
}

func (f *Field) reseed() {
	f.particles = f.particles[:0]
	f.spare = f.spare[:0]
	f.scattered = 0
	n := f.params.ParticleCount(f.width, f.height)
	f.particles = slices.Grow(f.particles, n)
	for i := 0; i < n; i++ {
		p, ok := newParticle(f.points, &f.params, f.rng)
		if !ok {
			continue
		}
		f.particles = append(f.particles, p)
	}
	f.bus.Emit(Event{Type: EventSeeded, Data: len(f.particles)})
}

// Handle applies one host input message.
func (f *Field) Handle(in Input) {
	switch in.Kind {
	case InputMouseMove, InputTouchMove:
		f.pointer.X = in.X
		f.pointer.Y = in.Y
	case InputTouchStart:
		f.pointer.Touching = true
	case InputTouchEnd:
		f.pointer.Touching = false
		f.pointer.X = 0
		f.pointer.Y = 0
	case InputResize:
		f.Resize(in.W, in.H)
	}
}

// Step advances every particle by one frame and appends what was painted
// to buf (see appendSprite for the layout). Expired particles are painted
// at their final position, then replaced by a fresh sample or dropped.
// The next pool is built into a second slice, so a drop never shifts the
// particle that follows it.
func (f *Field) Step(buf []float32) []float32 {
	buf = buf[:0]
	if !f.loaded {
		return buf
	}
	buf = slices.Grow(buf, len(f.particles)*spriteStride)

	active := f.pointer.Active(f.touchCapable)
	next := f.spare[:0]
	scattered := 0
	for i := range f.particles {
		p := f.particles[i]
		f.advance(&p, active)
		if p.Mode == ModeScattered {
			scattered++
		}
		buf = appendSprite(buf, &p)

		p.Life--
		if p.Life <= 0 {
			np, ok := newParticle(f.points, &f.params, f.rng)
			if !ok {
				continue
			}
			p = np
		}
		next = append(next, p)
	}
	f.particles, f.spare = next, f.particles

	switch {
	case f.scattered == 0 && scattered > 0:
		f.bus.Emit(Event{Type: EventScatterBegin, X: f.pointer.X, Y: f.pointer.Y, Data: scattered})
	case f.scattered > 0 && scattered == 0:
		f.bus.Emit(Event{Type: EventScatterEnd, X: f.pointer.X, Y: f.pointer.Y})
	}
	f.scattered = scattered
	return buf
}

// advance applies pointer repulsion or relaxation toward the base position.
// A repelled particle sits on the line from the pointer through its base,
// pushed out by (1 - dist/radius) * strength.
func (f *Field) advance(p *Particle, active bool) {
	dx := f.pointer.X - p.X
	dy := f.pointer.Y - p.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	radius := f.params.RepelRadius

	if active && dist < radius {
		force := (radius - dist) / radius
		angle := math.Atan2(dy, dx)
		p.X = p.BaseX - math.Cos(angle)*force*f.params.RepelStrength
		p.Y = p.BaseY - math.Sin(angle)*force*f.params.RepelStrength
		p.Mode = ModeScattered
		return
	}
	p.X += (p.BaseX - p.X) * f.params.RelaxRate
	p.Y += (p.BaseY - p.Y) * f.params.RelaxRate
	p.Mode = ModeIdle
}

const spriteStride = 8

// appendSprite writes [cx, cy, size, r, g, b, a, rotation] for a square
// whose top-left corner is the particle position.
func appendSprite(buf []float32, p *Particle) []float32 {
	r, g, b := p.FillColor().Floats()
	half := p.Size * 0.5
	return append(buf,
		float32(p.X+half), float32(p.Y+half), float32(p.Size),
		r, g, b, 1, 0,
	)
}

func (f *Field) Particles() []Particle { return f.particles }
func (f *Field) Points() []Point { return f.points }
func (f *Field) Pointer() Pointer { return f.pointer }
func (f *Field) Size() (int, int) { return f.width, f.height }
func (f *Field) Mobile() bool { return f.mobile }
func (f *Field) Loaded() bool { return f.loaded }
func (f *Field) Params() Params { return f.params }

// Scale is the rendered logo height over the natural image height.
func (f *Field) Scale() float64 { return f.scale }

// Scattered is the number of particles repelled in the last Step.
func (f *Field) Scattered() int { return f.scattered }

// Events returns the bus the field publishes on.
func (f *Field) Events() *EventBus { return f.bus }
