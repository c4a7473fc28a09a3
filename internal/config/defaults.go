package config

import (
	_ "embed"
)

//go:embed defaults/photon.yaml
var defaultPhotonYAML []byte

// DefaultPhotonConfig returns the built-in photon game configuration.
// Values match the embedded defaults/photon.yaml.
func DefaultPhotonConfig() PhotonConfig {
	return PhotonConfig{
		World: WorldConfig{
			Width:        1000,
			Height:       600,
			PanelWidth:   200,
			StarCount:    120,
			StarMinSpeed: 0.2,
			StarMaxSpeed: 1.0,
		},
		Detector: DetectorConfig{
			Width:        100,
			Height:       15,
			Speed:        6,
			BottomOffset: 30,
			MinX:         100,
			RightMargin:  250,
		},
		Photon: PhotonSpawn{
			Radius:      8,
			MinSpeed:    2,
			MaxSpeed:    4,
			SpawnOneIn:  25,
			MinX:        50,
			RightMargin: 250,
		},
		Spark: SparkConfig{
			Particles:   10,
			Lifetime:    10,
			MaxVelocity: 2.0,
		},
		Pair: PairConfig{
			Lifetime: 80,
			Drift:    1.5,
		},
		Band: BandConfig{
			ElectronX:          50,
			ValenceY:           470,
			ConductionY:        220,
			MoveFrames:         60,
			StayFrames:         30,
			ElectronBox:        Box{MinX: 42, MaxX: 68, MinY: 152, MaxY: 238},
			ElectronRadius:     12,
			HoleBox:            Box{MinX: 40, MaxX: 70, MinY: 450, MaxY: 470},
			HoleRadius:         10,
			MaxAttempts:        50,
			ElectronDrawRadius: 6,
			HoleDrawRadius:     5,
			ElectronFallback:   Box{MinX: 30, MaxX: 70, MinY: 150, MaxY: 260},
			HoleFallback:       Box{MinX: 30, MaxX: 70, MinY: 450, MaxY: 470},
		},
		Timing: TimingConfig{
			IntroTicks:           120,
			CountdownFrom:        3,
			CountdownTicks:       60,
			QuizAfterTicks:       1800, // 30 seconds at 60fps
			QuizResultTicks:      180,
			ApplicationTicks:     120,
			BulbGlowTicks:        30,
			LegendHighlightTicks: 120,
		},
		Quiz: QuizConfig{
			Enabled:  true,
			PassMark: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600, // 1 minute at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnBoost:      15,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPhotonYAML
}
