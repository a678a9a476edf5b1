// Package config provides YAML-based tuning and difficulty management for
// the block puzzle.
package config

// BlocksConfig contains all tuning for the block puzzle game.
type BlocksConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Tray       TrayConfig       `yaml:"tray"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Patterns   PatternsConfig   `yaml:"patterns"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines board parameters.
type BoardConfig struct {
	Size      int `yaml:"size"`      // board dimension for classic mode
	BigSize   int `yaml:"big_size"`  // board dimension for big mode
	Obstacles int `yaml:"obstacles"` // locked cells seeded in obstacle mode
}

// TrayConfig defines the piece tray.
type TrayConfig struct {
	Slots      int `yaml:"slots"`       // pieces offered at a time
	SnapRadius int `yaml:"snap_radius"` // Chebyshev radius of the placement assist
}

// ScoringConfig defines the point values. Mirrors engine.ScoreWeights.
type ScoringConfig struct {
	CellPoint         int `yaml:"cell_point"`
	LineBase          int `yaml:"line_base"`
	MultiLineBonus    int `yaml:"multi_line_bonus"`
	ComboBonus        int `yaml:"combo_bonus"`
	NearFullBonus     int `yaml:"near_full_bonus"`
	NearFullAt        int `yaml:"near_full_at"`
	PerfectClearBonus int `yaml:"perfect_clear_bonus"`
}

// PatternsConfig defines the tray draw distribution. Weights index by the
// engine's pattern type tags; shapes with zero or missing weight never drop.
type PatternsConfig struct {
	Weights map[string]int `yaml:"weights"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// BigPieceBias shifts the draw distribution toward larger shapes at max
	// difficulty: each shape's weight gains bias*level*cellCount.
	BigPieceBias float64 `yaml:"big_piece_bias"`
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a preset.
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

// ApplyBlocksPreset modifies the config for a difficulty preset.
// The "fixed" preset disables progression entirely.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
