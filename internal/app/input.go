//go:build !android

package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"particlefield/internal/field"
)

// Input queues GLFW callbacks as field messages. Callbacks fire inside
// glfw.PollEvents on the main thread, so the queue needs no locking.
type Input struct {
	queue    []field.Input
	prevKeys map[glfw.Key]bool
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{prevKeys: make(map[glfw.Key]bool)}
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		in.queue = append(in.queue, field.MouseMove(x, y))
	})
	window.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		if w <= 0 || h <= 0 {
			return // minimised
		}
		// A drag-resize fires many sizes per frame; only the last one matters.
		msg := field.Resize(w, h)
		if n := len(in.queue); n > 0 && in.queue[n-1].Kind == field.InputResize {
			in.queue[n-1] = msg
			return
		}
		in.queue = append(in.queue, msg)
	})
	return in
}

// Drain delivers queued messages to f in arrival order.
func (in *Input) Drain(f *field.Field) {
	for _, msg := range in.queue {
		f.Handle(msg)
	}
	in.queue = in.queue[:0]
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}
