//go:build !android

// Package app hosts the particle field in a native window: GLFW and
// OpenGL on desktop, golang.org/x/mobile on Android.
package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"particlefield/internal/config"
	"particlefield/internal/field"
)

// RunDesktop opens the window and animates until it is closed, Escape is
// pressed or ctx is cancelled. A missing or unreadable image leaves the
// window empty rather than failing.
func RunDesktop(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	params, err := cfg.FieldParams()
	if err != nil {
		return err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Debug("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	var audio *Audio
	if cfg.Audio.Enabled {
		if audio, err = NewAudio(cfg.Audio.Volume); err != nil {
			logger.Warn("audio init failed, continuing without sound", "err", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Desktop has no touch input, so the cursor always repels.
	bus := field.NewEventBus()
	pf := field.New(params, seed, false, bus)
	subscribe(bus, logger, audio, func() int { w, _ := pf.Size(); return w })

	input := NewInput(window)
	winW, winH := window.GetSize()
	pf.Resize(winW, winH)

	img, format, err := field.LoadImage(cfg.Image.Path)
	if err != nil {
		logger.Error("image not loaded; nothing will be drawn", "path", cfg.Image.Path, "err", err)
	} else {
		n := pf.Load(img, winW, winH)
		b := img.Bounds()
		logger.Info("image loaded",
			"path", cfg.Image.Path, "format", format,
			"size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
			"points", len(pf.Points()), "particles", n,
			"scale", pf.Scale(),
		)
	}

	var sprites []float32
	for !window.ShouldClose() {
		select {
		case <-ctx.Done():
			logger.Debug("cancelled", "err", ctx.Err())
			return ctx.Err()
		default:
		}

		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}
		input.Drain(pf)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimised: keep the loop alive without spinning.
			glfw.WaitEventsTimeout(0.1)
			continue
		}

		sprites = pf.Step(sprites)

		canvasW, canvasH := pf.Size()
		pixelScale := float32(1)
		if canvasW > 0 {
			pixelScale = float32(fbW) / float32(canvasW)
		}
		rend.BeginFrame(bg, fbW, fbH)
		rend.DrawSprites(sprites, canvasW, canvasH, pixelScale)
		window.SwapBuffers()
	}
	return nil
}
