package blocks

import (
	"math"
	"testing"

	"github.com/pkorman/blockline/internal/engine"
)

func TestDifficultyLevel(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.cfg.Difficulty.Enabled = true
	g.cfg.Difficulty.InitialLevel = 0.3
	g.cfg.Difficulty.Progression.Type = "score"
	g.cfg.Difficulty.Progression.MaxAt = 600

	tests := []struct {
		name  string
		score int
		want  float64
	}{
		{"start", 0, 0.3},
		{"midway", 300, 0.65},
		{"maxed", 600, 1.0},
		{"past max", 2000, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.score = tt.score
			if got := g.difficultyLevel(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("difficultyLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDifficultyLevelDisabled(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.cfg.Difficulty.Enabled = false
	g.score = 10000

	if got := g.difficultyLevel(); got != 0 {
		t.Errorf("disabled difficulty level = %v, want 0", got)
	}
}

func TestDrawWeightBias(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.cfg.Patterns.Weights = map[string]int{"square3": 4}
	g.cfg.Difficulty.Enabled = true
	g.cfg.Difficulty.InitialLevel = 1.0
	g.cfg.Difficulty.Scaling.BigPieceBias = 0.5

	// 4 + 0.5 * 1.0 * 9 cells = 8.
	if got := g.drawWeight(engine.PatternSquare3, 9); got != 8 {
		t.Errorf("drawWeight = %d, want 8", got)
	}
	if got := g.drawWeight(engine.PatternSingle, 1); got != 0 {
		t.Errorf("unweighted shape should never drop, got %d", got)
	}
}

func TestDrawPatternRespectsWeights(t *testing.T) {
	g := newTestGame(t, New(), 3)
	g.cfg.Patterns.Weights = map[string]int{"line3_h": 1}

	for i := 0; i < 50; i++ {
		pat := g.drawPattern()
		if pat.Type() != engine.PatternLine3H {
			t.Fatalf("draw %d produced %q, want only line3_h", i, pat.Type())
		}
	}
}

func TestDrawPatternFallbackOnEmptyWeights(t *testing.T) {
	g := newTestGame(t, New(), 3)
	g.cfg.Patterns.Weights = nil

	pat := g.drawPattern()
	if pat == nil || pat.Type() != engine.PatternSingle {
		t.Errorf("empty weights should fall back to the single block, got %v", pat)
	}
}
