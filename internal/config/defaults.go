package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the hardcoded fallback tuning, used when even
// the embedded YAML fails to parse.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Size:      8,
			BigSize:   10,
			Obstacles: 6,
		},
		Tray: TrayConfig{
			Slots:      3,
			SnapRadius: 2,
		},
		Scoring: ScoringConfig{
			CellPoint:         1,
			LineBase:          10,
			MultiLineBonus:    5,
			ComboBonus:        8,
			NearFullBonus:     2,
			NearFullAt:        2,
			PerfectClearBonus: 50,
		},
		Patterns: PatternsConfig{
			Weights: map[string]int{
				"single": 4,
				"line2_h": 3, "line2_v": 3,
				"line3_h": 3, "line3_v": 3,
				"line4_h": 2, "line4_v": 2,
				"line5_h": 1, "line5_v": 1,
				"square2": 3, "square3": 1,
				"corner_tl": 2, "corner_tr": 2, "corner_bl": 2, "corner_br": 2,
				"tee": 2, "ess": 1, "zed": 1,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 600,
			},
			Scaling: ScalingConfig{
				BigPieceBias: 0.6,
			},
		},
	}
}
