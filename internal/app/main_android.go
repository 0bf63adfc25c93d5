//go:build android

package app

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/asset"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"particlefield/internal/config"
	"particlefield/internal/field"
)

const spriteVertSrcMobile = `
attribute vec2 aPos;
attribute float aSize;
attribute vec4 aColor;
uniform vec2 uCanvas;
uniform float uPixelScale;
varying vec4 vColor;
void main() {
  vec2 ndc = (aPos / uCanvas) * 2.0 - 1.0;
  ndc.y = -ndc.y;
  gl_Position = vec4(ndc, 0.0, 1.0);
  gl_PointSize = max(1.0, aSize * uPixelScale);
  float cover = clamp(aSize * uPixelScale, 0.0, 1.0);
  vColor = vec4(aColor.rgb, aColor.a * cover * cover);
}`

const spriteFragSrcMobile = `
precision mediump float;
varying vec4 vColor;
void main() {
  gl_FragColor = vColor;
}`

// mobileHost drives the field from x/mobile events. Canvas units are
// points, so the logo keeps the same on-screen size across densities.
type mobileHost struct {
	logger *log.Logger
	field  *field.Field
	img    image.Image
	bg     field.RGB

	sprites []float32

	activeTouch touch.Sequence
	touchDown   bool

	pixelsPerPt float32
	fbWidth     int
	fbHeight    int

	prog        gl.Program
	vbo         gl.Buffer
	aPos        gl.Attrib
	aSize       gl.Attrib
	aColor      gl.Attrib
	uCanvas     gl.Uniform
	uPixelScale gl.Uniform
	glReady     bool
}

func loadAsset(name string) (image.Image, error) {
	f, err := asset.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open asset: %w", err)
	}
	defer f.Close()
	img, _, err := field.DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

func (h *mobileHost) handleSize(e size.Event) {
	h.fbWidth, h.fbHeight = e.WidthPx, e.HeightPx
	h.pixelsPerPt = e.PixelsPerPt
	if h.pixelsPerPt <= 0 {
		h.pixelsPerPt = 1
	}
	w, ht := int(e.WidthPt), int(e.HeightPt)
	if h.img != nil && !h.field.Loaded() {
		n := h.field.Load(h.img, w, ht)
		h.logger.Info("image loaded", "points", len(h.field.Points()), "particles", n)
		return
	}
	h.field.Handle(field.Resize(w, ht))
}

func (h *mobileHost) handleTouch(e touch.Event) {
	x := float64(e.X / h.pixelsPerPt)
	y := float64(e.Y / h.pixelsPerPt)
	switch e.Type {
	case touch.TypeBegin:
		if !h.touchDown {
			h.activeTouch = e.Sequence
			h.touchDown = true
			h.field.Handle(field.TouchStart())
		}
	case touch.TypeMove:
		if h.touchDown && e.Sequence == h.activeTouch {
			h.field.Handle(field.TouchMove(x, y))
		}
	case touch.TypeEnd:
		if h.touchDown && e.Sequence == h.activeTouch {
			h.touchDown = false
			h.field.Handle(field.TouchEnd())
		}
	}
}

func f32bytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		msg := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compile failed: %s", msg)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		msg := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("program link failed: %s", msg)
	}
	return prog, nil
}

func (h *mobileHost) initGL(glctx gl.Context) error {
	if h.glReady {
		return nil
	}
	prog, err := linkProgram(glctx, spriteVertSrcMobile, spriteFragSrcMobile)
	if err != nil {
		return err
	}
	h.prog = prog
	h.vbo = glctx.CreateBuffer()
	h.aPos = glctx.GetAttribLocation(prog, "aPos")
	h.aSize = glctx.GetAttribLocation(prog, "aSize")
	h.aColor = glctx.GetAttribLocation(prog, "aColor")
	h.uCanvas = glctx.GetUniformLocation(prog, "uCanvas")
	h.uPixelScale = glctx.GetUniformLocation(prog, "uPixelScale")
	h.glReady = true
	return nil
}

func (h *mobileHost) destroyGL(glctx gl.Context) {
	if !h.glReady {
		return
	}
	glctx.DeleteBuffer(h.vbo)
	glctx.DeleteProgram(h.prog)
	h.glReady = false
}

func (h *mobileHost) drawGL(glctx gl.Context) {
	cr, cg, cb := h.bg.Floats()
	glctx.Viewport(0, 0, h.fbWidth, h.fbHeight)
	glctx.ClearColor(cr, cg, cb, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	w, ht := h.field.Size()
	if len(h.sprites) == 0 || w <= 0 || ht <= 0 {
		return
	}
	const stride = 8 * 4
	glctx.UseProgram(h.prog)
	glctx.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(h.sprites), gl.STREAM_DRAW)
	glctx.EnableVertexAttribArray(h.aPos)
	glctx.EnableVertexAttribArray(h.aSize)
	glctx.EnableVertexAttribArray(h.aColor)
	glctx.VertexAttribPointer(h.aPos, 2, gl.FLOAT, false, stride, 0)
	glctx.VertexAttribPointer(h.aSize, 1, gl.FLOAT, false, stride, 8)
	glctx.VertexAttribPointer(h.aColor, 4, gl.FLOAT, false, stride, 12)
	glctx.Uniform2f(h.uCanvas, float32(w), float32(ht))
	glctx.Uniform1f(h.uPixelScale, h.pixelsPerPt)
	glctx.Enable(gl.BLEND)
	glctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	glctx.DrawArrays(gl.POINTS, 0, len(h.sprites)/8)
	glctx.Disable(gl.BLEND)
	glctx.DisableVertexAttribArray(h.aPos)
	glctx.DisableVertexAttribArray(h.aSize)
	glctx.DisableVertexAttribArray(h.aColor)
}

// RunAndroid runs the x/mobile event loop. The image is read from the
// app's asset directory; touch devices only repel while a finger is down.
func RunAndroid(cfg config.Config, logger *log.Logger) {
	params, err := cfg.FieldParams()
	if err != nil {
		logger.Error("invalid field config, using defaults", "err", err)
		params = field.DefaultParams()
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		bg = field.Palette.Background
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var audio *Audio
	if cfg.Audio.Enabled {
		if audio, err = NewAudio(cfg.Audio.Volume); err != nil {
			logger.Warn("audio init failed, continuing without sound", "err", err)
		}
	}

	bus := field.NewEventBus()
	host := &mobileHost{
		logger:      logger,
		field:       field.New(params, seed, true, bus),
		bg:          bg,
		pixelsPerPt: 1,
	}
	subscribe(bus, logger, audio, func() int { w, _ := host.field.Size(); return w })

	if host.img, err = loadAsset(cfg.Image.Path); err != nil {
		logger.Error("image not loaded; nothing will be drawn", "path", cfg.Image.Path, "err", err)
	}

	app.Main(func(a app.App) {
		var glctx gl.Context

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					if err := host.initGL(glctx); err != nil {
						logger.Fatal("gl init", "err", err)
					}
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if glctx != nil {
						host.destroyGL(glctx)
						glctx = nil
					}
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				host.handleSize(e)

			case touch.Event:
				host.handleTouch(e)

			case paint.Event:
				if glctx == nil || host.fbWidth <= 0 || host.fbHeight <= 0 || e.External {
					continue
				}
				host.sprites = host.field.Step(host.sprites)
				host.drawGL(glctx)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
