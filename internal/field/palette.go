package field

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as normalised GL components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// Hex formats the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex accepts "#RRGGBB", "RRGGBB", "#RGB" and a few CSS names.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("parse colour %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

var namedColors = map[string]RGB{
	"white": {R: 255, G: 255, B: 255},
	"black": {R: 0, G: 0, B: 0},
}

var Palette = struct {
	Idle       RGB
	Scattered  RGB
	Background RGB
}{
	Idle:       RGB{R: 255, G: 255, B: 255},
	Scattered:  RGB{R: 0x4B, G: 0x9C, B: 0xD3},
	Background: RGB{R: 0, G: 0, B: 0},
}
