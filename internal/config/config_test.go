package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"particlefield/internal/field"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "particlefield.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Image.Path != "SPa.png" {
		t.Errorf("image path = %q", cfg.Image.Path)
	}
}

func TestDefaultFieldParams(t *testing.T) {
	cfg := Default()
	got, err := cfg.FieldParams()
	if err != nil {
		t.Fatal(err)
	}
	if want := field.DefaultParams(); got != want {
		t.Errorf("FieldParams() = %+v\nwant %+v", got, want)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
seed = 77

[image]
path = "logo.webp"

[window]
width = 640
fullscreen = true

[field]
repel_radius = 250.0
scattered_color = "#FF0000"

[audio]
enabled = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 77 || cfg.Image.Path != "logo.webp" {
		t.Errorf("seed/image = %d %q", cfg.Seed, cfg.Image.Path)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 720 || !cfg.Window.Fullscreen {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Field.RepelRadius != 250 || cfg.Field.BaseCount != 10000 {
		t.Errorf("field = %+v", cfg.Field)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 0.35 {
		t.Errorf("audio = %+v", cfg.Audio)
	}

	p, err := cfg.FieldParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.Scattered != (field.RGB{R: 255}) {
		t.Errorf("scattered = %v", p.Scattered)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[field]\nrepel_radiuss = 3.0\n")
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	if !strings.Contains(err.Error(), "repel_radiuss") {
		t.Errorf("error does not name the key: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "seed = ")); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSeed:  "12345",
		EnvImage: "/tmp/other.png",
	}
	cfg := Default()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 12345 || cfg.Image.Path != "/tmp/other.png" {
		t.Errorf("after env: seed %d image %q", cfg.Seed, cfg.Image.Path)
	}

	env[EnvSeed] = "not-a-number"
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad seed err = %v", err)
	}
}

func TestApplyEnvEmptyKeepsValues(t *testing.T) {
	cfg := Default()
	cfg.Seed = 5
	if err := cfg.ApplyEnv(func(string) string { return "" }); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 5 || cfg.Image.Path != "SPa.png" {
		t.Errorf("empty env changed config: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty image", func(c *Config) { c.Image.Path = "" }, "image.path"},
		{"zero window", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"bad background", func(c *Config) { c.Window.Background = "blue-ish" }, "window.background"},
		{"zero radius", func(c *Config) { c.Field.RepelRadius = 0 }, "repel_radius"},
		{"zero reference", func(c *Config) { c.Field.ReferenceHeight = 0 }, "reference size"},
		{"threshold", func(c *Config) { c.Field.AlphaThreshold = 300 }, "alpha_threshold"},
		{"negative strength", func(c *Config) { c.Field.RepelStrength = -2 }, "repel_strength"},
		{"negative breakpoint", func(c *Config) { c.Field.MobileBreakpoint = -1 }, "mobile_breakpoint"},
		{"relax", func(c *Config) { c.Field.RelaxRate = 1.5 }, "relax_rate"},
		{"size range", func(c *Config) { c.Field.SizeMax = c.Field.SizeMin }, "size range"},
		{"life range", func(c *Config) { c.Field.LifeMax = 10 }, "life range"},
		{"idle colour", func(c *Config) { c.Field.IdleColor = "#12" }, "idle_color"},
		{"volume", func(c *Config) { c.Audio.Volume = -1 }, "audio.volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Image.Path = ""
	cfg.Field.RepelRadius = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"image.path", "repel_radius"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("missing %q in %v", want, err)
		}
	}
}
