// Package config loads particlefield settings from defaults, an optional TOML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"particlefield/internal/field"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Environment overrides.
const (
	EnvSeed  = "PARTICLEFIELD_SEED"
	EnvImage = "PARTICLEFIELD_IMAGE"
)

type Config struct {
	// Seed for particle sampling; 0 seeds from the clock.
	Seed uint64 `toml:"seed"`

	Image  ImageConfig  `toml:"image"`
	Window WindowConfig `toml:"window"`
	Field  FieldConfig  `toml:"field"`
	Audio  AudioConfig  `toml:"audio"`
}

type ImageConfig struct {
	Path string `toml:"path"`
}

type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"`
	Background string `toml:"background"`
}

type FieldConfig struct {
	BaseCount       int `toml:"base_count"`
	ReferenceWidth  int `toml:"reference_width"`
	ReferenceHeight int `toml:"reference_height"`
	AlphaThreshold  int `toml:"alpha_threshold"`

	RepelRadius   float64 `toml:"repel_radius"`
	RepelStrength float64 `toml:"repel_strength"`
	RelaxRate     float64 `toml:"relax_rate"`

	MobileBreakpoint  int     `toml:"mobile_breakpoint"`
	LogoHeightDesktop float64 `toml:"logo_height_desktop"`
	LogoHeightMobile  float64 `toml:"logo_height_mobile"`
	LogoScale         float64 `toml:"logo_scale"`

	SizeMin float64 `toml:"size_min"`
	SizeMax float64 `toml:"size_max"`
	LifeMin int     `toml:"life_min"`
	LifeMax int     `toml:"life_max"`

	IdleColor      string `toml:"idle_color"`
	ScatteredColor string `toml:"scattered_color"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

func Default() Config {
	p := field.DefaultParams()
	return Config{
		Image: ImageConfig{Path: field.DefaultImagePath},
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Title:      "particlefield",
			Background: field.Palette.Background.Hex(),
		},
		Field: FieldConfig{
			BaseCount:         p.BaseCount,
			ReferenceWidth:    p.ReferenceWidth,
			ReferenceHeight:   p.ReferenceHeight,
			AlphaThreshold:    int(p.AlphaThreshold),
			RepelRadius:       p.RepelRadius,
			RepelStrength:     p.RepelStrength,
			RelaxRate:         p.RelaxRate,
			MobileBreakpoint:  p.MobileBreakpoint,
			LogoHeightDesktop: p.LogoHeightDesktop,
			LogoHeightMobile:  p.LogoHeightMobile,
			LogoScale:         p.LogoScaleFactor,
			SizeMin:           p.SizeMin,
			SizeMax:           p.SizeMax,
			LifeMin:           p.LifeMin,
			LifeMax:           p.LifeMax,
			IdleColor:         "white",
			ScatteredColor:    p.Scattered.Hex(),
		},
		Audio: AudioConfig{Volume: 0.35},
	}
}

// Load returns the defaults overlaid with the TOML file at path. Keys the
// file sets that Config does not know are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if s := getenv(EnvSeed); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvSeed, s, err)
		}
		c.Seed = v
	}
	if s := getenv(EnvImage); s != "" {
		c.Image.Path = s
	}
	return nil
}

// Validate reports every problem at once, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Image.Path == "" {
		bad("image.path is empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if _, err := field.ParseHex(c.Window.Background); err != nil {
		bad("window.background: %v", err)
	}

	f := &c.Field
	if f.BaseCount < 0 {
		bad("field.base_count %d is negative", f.BaseCount)
	}
	if f.ReferenceWidth <= 0 || f.ReferenceHeight <= 0 {
		bad("field reference size %dx%d must be positive", f.ReferenceWidth, f.ReferenceHeight)
	}
	if f.AlphaThreshold < 0 || f.AlphaThreshold > 255 {
		bad("field.alpha_threshold %d outside [0, 255]", f.AlphaThreshold)
	}
	if f.RepelRadius <= 0 {
		bad("field.repel_radius %v must be positive", f.RepelRadius)
	}
	if f.RepelStrength < 0 {
		bad("field.repel_strength %v is negative", f.RepelStrength)
	}
	if f.MobileBreakpoint < 0 {
		bad("field.mobile_breakpoint %d is negative", f.MobileBreakpoint)
	}
	if f.RelaxRate < 0 || f.RelaxRate > 1 {
		bad("field.relax_rate %v outside [0, 1]", f.RelaxRate)
	}
	if f.LogoHeightDesktop <= 0 || f.LogoHeightMobile <= 0 || f.LogoScale <= 0 {
		bad("field logo heights and scale must be positive")
	}
	if f.SizeMin <= 0 || f.SizeMax <= f.SizeMin {
		bad("field size range [%v, %v) is empty", f.SizeMin, f.SizeMax)
	}
	if f.LifeMin <= 0 || f.LifeMax <= f.LifeMin {
		bad("field life range [%d, %d) is empty", f.LifeMin, f.LifeMax)
	}
	if _, err := field.ParseHex(f.IdleColor); err != nil {
		bad("field.idle_color: %v", err)
	}
	if _, err := field.ParseHex(f.ScatteredColor); err != nil {
		bad("field.scattered_color: %v", err)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		bad("audio.volume %v outside [0, 1]", c.Audio.Volume)
	}
	return errors.Join(errs...)
}

// FieldParams converts the [field] section. Call Validate first.
func (c *Config) FieldParams() (field.Params, error) {
	idle, err := field.ParseHex(c.Field.IdleColor)
	if err != nil {
		return field.Params{}, fmt.Errorf("idle colour: %w", err)
	}
	scattered, err := field.ParseHex(c.Field.ScatteredColor)
	if err != nil {
		return field.Params{}, fmt.Errorf("scattered colour: %w", err)
	}
	f := &c.Field
	return field.Params{
		BaseCount:         f.BaseCount,
		ReferenceWidth:    f.ReferenceWidth,
		ReferenceHeight:   f.ReferenceHeight,
		AlphaThreshold:    uint8(f.AlphaThreshold),
		RepelRadius:       f.RepelRadius,
		RepelStrength:     f.RepelStrength,
		RelaxRate:         f.RelaxRate,
		MobileBreakpoint:  f.MobileBreakpoint,
		LogoHeightDesktop: f.LogoHeightDesktop,
		LogoHeightMobile:  f.LogoHeightMobile,
		LogoScaleFactor:   f.LogoScale,
		SizeMin:           f.SizeMin,
		SizeMax:           f.SizeMax,
		LifeMin:           f.LifeMin,
		LifeMax:           f.LifeMax,
		Idle:              idle,
		Scattered:         scattered,
	}, nil
}

// BackgroundColor parses window.background.
func (c *Config) BackgroundColor() (field.RGB, error) {
	return field.ParseHex(c.Window.Background)
}
