package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML PhotonConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultPhotonConfig() {
		t.Errorf("embedded YAML and DefaultPhotonConfig() differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultPhotonConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultPhotonConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestDetectorMaxX(t *testing.T) {
	cfg := DefaultPhotonConfig()
	// WIDTH - 250 - width
	if got := cfg.DetectorMaxX(); got != 650 {
		t.Errorf("DetectorMaxX() = %d, expected 650", got)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photon.yaml")
	data := []byte("detector:\n  speed: 9\nphoton:\n  spawn_one_in: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Detector.Speed != 9 {
		t.Errorf("Detector.Speed = %d, expected 9", cfg.Detector.Speed)
	}
	if cfg.Photon.SpawnOneIn != 10 {
		t.Errorf("Photon.SpawnOneIn = %d, expected 10", cfg.Photon.SpawnOneIn)
	}
	// Untouched keys keep their defaults
	if cfg.Detector.Width != 100 {
		t.Errorf("Detector.Width = %d, expected default 100", cfg.Detector.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("photon:\n  spawn_one_in: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() of invalid values should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultPhotonConfig() {
		t.Error("Load(\"\") without any config files should return the defaults")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PhotonConfig)
	}{
		{"zero width", func(c *PhotonConfig) { c.World.Width = 0 }},
		{"empty detector range", func(c *PhotonConfig) { c.Detector.MinX = 900 }},
		{"inverted photon speed", func(c *PhotonConfig) { c.Photon.MaxSpeed = 1 }},
		{"zero move frames", func(c *PhotonConfig) { c.Band.MoveFrames = 0 }},
		{"inverted box", func(c *PhotonConfig) { c.Band.HoleBox.MinY = 500 }},
		{"zero draw radius", func(c *PhotonConfig) { c.Band.HoleDrawRadius = 0 }},
		{"electrons overlap", func(c *PhotonConfig) { c.Band.ElectronDrawRadius = c.Band.ElectronRadius }},
		{"holes overlap", func(c *PhotonConfig) { c.Band.HoleDrawRadius = c.Band.HoleRadius/2 + 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPhotonConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultPhotonConfig()
	ApplyPreset(&cfg, "")
	if cfg != DefaultPhotonConfig() {
		t.Error("empty preset should not change the config")
	}

	cfg = DefaultPhotonConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%f", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if cfg.Detector.Width != 80 {
		t.Errorf("hard preset should narrow the detector, got %d", cfg.Detector.Width)
	}

	cfg = DefaultPhotonConfig()
	cfg.Difficulty.Enabled = true
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("ParsePreset(easy) should return DifficultyEasy")
	}
	if ParsePreset("impossible") != "" {
		t.Error("unknown presets should parse to empty")
	}
}
