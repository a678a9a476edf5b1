package blocks

import "github.com/pkorman/blockline/internal/engine"

// difficultyLevel returns the current difficulty in [0, 1], driven by score
// when progression is enabled.
func (g *Game) difficultyLevel() float64 {
	d := g.cfg.Difficulty
	if !d.Enabled {
		return 0
	}
	level := d.InitialLevel
	if d.Progression.Type == "score" && d.Progression.MaxAt > 0 {
		progress := float64(g.score) / float64(d.Progression.MaxAt)
		if progress > 1 {
			progress = 1
		}
		level += (1 - level) * progress
	}
	return clamp01(level)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// drawWeight returns the effective weight of a catalog shape at the current
// difficulty. Bigger shapes get heavier as the level rises.
func (g *Game) drawWeight(t engine.PatternType, cellCount int) int {
	base, ok := g.cfg.Patterns.Weights[string(t)]
	if !ok || base <= 0 {
		return 0
	}
	bias := g.cfg.Difficulty.Scaling.BigPieceBias
	extra := int(bias * g.difficultyLevel() * float64(cellCount))
	return base + extra
}

// drawPattern picks one weighted-random catalog shape in a random color.
func (g *Game) drawPattern() *engine.BlockPattern {
	types := engine.CatalogTypes()
	weights := make([]int, len(types))
	total := 0
	for i, t := range types {
		pat, ok := engine.PatternOf(t, engine.ColorRed)
		if !ok {
			continue
		}
		weights[i] = g.drawWeight(t, pat.CellCount())
		total += weights[i]
	}
	if total == 0 {
		// Misconfigured weights; fall back to the single block so the game
		// stays playable.
		pat, _ := engine.PatternOf(engine.PatternSingle, g.randomColor())
		return &pat
	}

	pick := g.rng.Intn(total)
	for i, w := range weights {
		if pick < w {
			pat, _ := engine.PatternOf(types[i], g.randomColor())
			return &pat
		}
		pick -= w
	}
	pat, _ := engine.PatternOf(engine.PatternSingle, g.randomColor())
	return &pat
}

func (g *Game) randomColor() engine.Color {
	colors := engine.Colors()
	return colors[g.rng.Intn(len(colors))]
}

// refillTray fills every empty slot with a fresh draw.
func (g *Game) refillTray() {
	for i := range g.tray {
		if g.tray[i] == nil {
			g.tray[i] = g.drawPattern()
		}
	}
}

// trayExhausted reports whether every slot has been consumed.
func (g *Game) trayExhausted() bool {
	for _, pat := range g.tray {
		if pat != nil {
			return false
		}
	}
	return true
}

// firstOccupiedSlot returns the lowest non-empty slot index, 0 when the tray
// is empty.
func (g *Game) firstOccupiedSlot() int {
	for i, pat := range g.tray {
		if pat != nil {
			return i
		}
	}
	return 0
}

// nextOccupiedSlot returns the next non-empty slot after from, wrapping
// around. Returns from when no other slot holds a piece.
func (g *Game) nextOccupiedSlot(from int) int {
	n := len(g.tray)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if g.tray[idx] != nil {
			return idx
		}
	}
	return from
}
