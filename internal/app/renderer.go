//go:build !android

package app

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"particlefield/internal/field"
)

// spriteStride is the byte size of one [x, y, size, r, g, b, a, rotation] sprite.
const spriteStride = 8 * 4

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the particle field as square point sprites.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uCanvas     int32
	uPixelScale int32

	vboCap int // bytes allocated for vbo
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	r := &Renderer{prog: prog}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, spriteStride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, spriteStride, glOffset(2*4))
	// aColor (vec4); the trailing rotation float is unused.
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, spriteStride, glOffset(3*4))

	gl.UseProgram(prog)
	r.uCanvas = gl.GetUniformLocation(prog, gl.Str("uCanvas\x00"))
	r.uPixelScale = gl.GetUniformLocation(prog, gl.Str("uPixelScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// BeginFrame clears the framebuffer to bg.
func (r *Renderer) BeginFrame(bg field.RGB, fbW, fbH int) {
	cr, cg, cb := bg.Floats()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawSprites renders buf in canvas pixel space. canvasW/H is the logical
// canvas size and pixelScale the framebuffer pixels per canvas pixel.
func (r *Renderer) DrawSprites(buf []float32, canvasW, canvasH int, pixelScale float32) {
	count := len(buf) / 8
	if count == 0 || canvasW <= 0 || canvasH <= 0 {
		return
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.Uniform2f(r.uCanvas, float32(canvasW), float32(canvasH))
	gl.Uniform1f(r.uPixelScale, pixelScale)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	// Grow the buffer only when the pool outgrows it; otherwise orphan and refill.
	size := count * spriteStride
	if size > r.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(buf), gl.STREAM_DRAW)
		r.vboCap = size
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, r.vboCap, nil, gl.STREAM_DRAW)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(buf))
	}
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
