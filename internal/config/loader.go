package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file name searched for in the config directories.
const ConfigFileName = "photon.yaml"

// Load loads the photon game configuration.
// Search order: customPath -> ~/.photonics/configs/photon.yaml -> ./configs/photon.yaml -> embedded default
func Load(customPath string) (PhotonConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if cfg, err := parseFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := parseFile(filepath.Join("configs", ConfigFileName)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultPhotonConfig()
	if err := yaml.Unmarshal(defaultPhotonYAML, &cfg); err != nil {
		return DefaultPhotonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile reads a YAML file over the hardcoded defaults,
// so a partial file only overrides the keys it names.
func parseFile(path string) (PhotonConfig, error) {
	cfg := DefaultPhotonConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".photonics", "configs", filename)
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the simulation divides by or samples from.
func (c PhotonConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.Detector.Width <= 0 || c.Detector.Height <= 0:
		return fmt.Errorf("%w: detector size must be positive", ErrInvalidConfig)
	case c.DetectorMaxX() < c.Detector.MinX:
		return fmt.Errorf("%w: detector range [%d, %d] is empty", ErrInvalidConfig, c.Detector.MinX, c.DetectorMaxX())
	case c.Photon.SpawnOneIn <= 0:
		return fmt.Errorf("%w: photon.spawn_one_in must be positive", ErrInvalidConfig)
	case c.Photon.MinSpeed <= 0 || c.Photon.MaxSpeed < c.Photon.MinSpeed:
		return fmt.Errorf("%w: photon speed range is invalid", ErrInvalidConfig)
	case c.World.Width-c.Photon.RightMargin < c.Photon.MinX:
		return fmt.Errorf("%w: photon spawn range is empty", ErrInvalidConfig)
	case c.Band.MoveFrames <= 0:
		return fmt.Errorf("%w: band.move_frames must be positive", ErrInvalidConfig)
	case !c.Band.ElectronBox.valid() || !c.Band.HoleBox.valid() ||
		!c.Band.ElectronFallback.valid() || !c.Band.HoleFallback.valid():
		return fmt.Errorf("%w: band sampling boxes must have min <= max", ErrInvalidConfig)
	case c.Band.ElectronDrawRadius <= 0 || c.Band.HoleDrawRadius <= 0:
		return fmt.Errorf("%w: band draw radii must be positive", ErrInvalidConfig)
	case 2*c.Band.ElectronDrawRadius > c.Band.ElectronRadius || 2*c.Band.HoleDrawRadius > c.Band.HoleRadius:
		return fmt.Errorf("%w: settled carriers would overlap; draw radius must be at most half the spacing radius", ErrInvalidConfig)
	case c.Timing.ApplicationTicks <= 0:
		return fmt.Errorf("%w: timing.application_ticks must be positive", ErrInvalidConfig)
	}
	return nil
}

func (b Box) valid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *PhotonConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the paddle so easier presets are more forgiving
	switch preset {
	case DifficultyEasy:
		cfg.Detector.Width = 130
	case DifficultyHard:
		cfg.Detector.Width = 80
		cfg.Detector.Speed = 7
	}
}
