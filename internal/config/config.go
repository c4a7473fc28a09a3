// Package config provides YAML-based configuration loading and
// difficulty management for the photon game.
package config

// PhotonConfig contains all tuning parameters for the photon game.
// Distances are in world pixels and durations in simulation ticks.
type PhotonConfig struct {
	World      WorldConfig      `yaml:"world"`
	Detector   DetectorConfig   `yaml:"detector"`
	Photon     PhotonSpawn      `yaml:"photon"`
	Spark      SparkConfig      `yaml:"spark"`
	Pair       PairConfig       `yaml:"pair"`
	Band       BandConfig       `yaml:"band"`
	Timing     TimingConfig     `yaml:"timing"`
	Quiz       QuizConfig       `yaml:"quiz"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield and background.
type WorldConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	PanelWidth   int     `yaml:"panel_width"` // Right-hand applications panel
	StarCount    int     `yaml:"star_count"`
	StarMinSpeed float64 `yaml:"star_min_speed"`
	StarMaxSpeed float64 `yaml:"star_max_speed"`
}

// DetectorConfig defines the player paddle.
type DetectorConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`
	BottomOffset int `yaml:"bottom_offset"`
	MinX         int `yaml:"min_x"`
	RightMargin  int `yaml:"right_margin"` // Max x is width - right_margin - detector width
}

// PhotonSpawn defines falling photons.
type PhotonSpawn struct {
	Radius      int `yaml:"radius"`
	MinSpeed    int `yaml:"min_speed"`
	MaxSpeed    int `yaml:"max_speed"`
	SpawnOneIn  int `yaml:"spawn_one_in"` // A photon spawns with probability 1/spawn_one_in per tick
	MinX        int `yaml:"min_x"`
	RightMargin int `yaml:"right_margin"`
}

// SparkConfig defines the particle burst on a catch.
type SparkConfig struct {
	Particles   int     `yaml:"particles"`
	Lifetime    int     `yaml:"lifetime"`
	MaxVelocity float64 `yaml:"max_velocity"`
}

// PairConfig defines the drifting electron-hole pair on a catch.
type PairConfig struct {
	Lifetime int     `yaml:"lifetime"`
	Drift    float64 `yaml:"drift"`
}

// Box is an inclusive integer sampling area.
type Box struct {
	MinX int `yaml:"min_x"`
	MaxX int `yaml:"max_x"`
	MinY int `yaml:"min_y"`
	MaxY int `yaml:"max_y"`
}

// BandConfig defines the energy-band diagram animation.
type BandConfig struct {
	ElectronX   int `yaml:"electron_x"`
	ValenceY    int `yaml:"valence_y"`
	ConductionY int `yaml:"conduction_y"`
	MoveFrames  int `yaml:"move_frames"`
	StayFrames  int `yaml:"stay_frames"`

	ElectronBox    Box `yaml:"electron_box"`
	ElectronRadius int `yaml:"electron_radius"`
	HoleBox        Box `yaml:"hole_box"`
	HoleRadius     int `yaml:"hole_radius"`
	MaxAttempts    int `yaml:"max_attempts"`

	// Drawn sizes. Spacing radii above keep carriers of these sizes apart.
	ElectronDrawRadius int `yaml:"electron_draw_radius"` // Electrons and the rising pair
	HoleDrawRadius     int `yaml:"hole_draw_radius"`     // Ring of a settled hole

	// Fallback areas used when rejection sampling gives up.
	ElectronFallback Box `yaml:"electron_fallback"`
	HoleFallback     Box `yaml:"hole_fallback"`
}

// TimingConfig defines session pacing.
type TimingConfig struct {
	IntroTicks           int `yaml:"intro_ticks"`
	CountdownFrom        int `yaml:"countdown_from"`
	CountdownTicks       int `yaml:"countdown_ticks"` // Ticks per countdown number
	QuizAfterTicks       int `yaml:"quiz_after_ticks"`
	QuizResultTicks      int `yaml:"quiz_result_ticks"`
	ApplicationTicks     int `yaml:"application_ticks"`
	BulbGlowTicks        int `yaml:"bulb_glow_ticks"`
	LegendHighlightTicks int `yaml:"legend_highlight_ticks"`
}

// QuizConfig defines the end-of-round quiz.
type QuizConfig struct {
	Enabled       bool   `yaml:"enabled"`
	PassMark      int    `yaml:"pass_mark"`
	QuestionsPath string `yaml:"questions_path"` // Empty uses the built-in bank
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
	SpawnBoost      int     `yaml:"spawn_boost"`      // Reduction of spawn_one_in at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value to a preset.
// Unknown or empty values return "" which keeps the config's own settings.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// DetectorMaxX returns the largest x the detector's left edge may take.
func (c PhotonConfig) DetectorMaxX() int {
	return c.World.Width - c.Detector.RightMargin - c.Detector.Width
}
