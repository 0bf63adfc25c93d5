package config

import "testing"

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load("../../configs/particlefield.example.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if want := Default(); cfg != want {
		t.Errorf("example config drifted from defaults:\n got %+v\nwant %+v", cfg, want)
	}
}
