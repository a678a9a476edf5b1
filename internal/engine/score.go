package engine

// ScoreWeights tunes the scoring rules. All values are plain points unless
// noted; they come from the game config so modes can rebalance freely.
type ScoreWeights struct {
	CellPoint         int // points per placed cell
	LineBase          int // points per cleared line
	MultiLineBonus    int // extra points per line beyond the first in one pass
	ComboBonus        int // extra points per consecutive clearing placement
	NearFullBonus     int // points per line brought within NearFullAt of full
	NearFullAt        int // how many holes still count as "near full"
	PerfectClearBonus int // awarded when a clear empties the whole board
}

// DefaultScoreWeights returns the classic-mode balance.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		CellPoint:         1,
		LineBase:          10,
		MultiLineBonus:    5,
		ComboBonus:        8,
		NearFullBonus:     2,
		NearFullAt:        2,
		PerfectClearBonus: 50,
	}
}

// Scorer accumulates placement and clear points, tracking the combo streak
// (consecutive placements that each cleared at least one line).
type Scorer struct {
	weights ScoreWeights
	combo   int
}

// NewScorer creates a scorer with the given weights.
func NewScorer(w ScoreWeights) *Scorer {
	return &Scorer{weights: w}
}

// Combo returns the current streak length.
func (s *Scorer) Combo() int {
	return s.combo
}

// Reset clears the streak for a new game.
func (s *Scorer) Reset() {
	s.combo = 0
}

// SetCombo restores a streak when resuming a saved run.
func (s *Scorer) SetCombo(n int) {
	if n < 0 {
		n = 0
	}
	s.combo = n
}

// Placement returns the points for committing a pattern of the given size.
func (s *Scorer) Placement(cellCount int) int {
	return cellCount * s.weights.CellPoint
}

// NearFull rewards how close a placement brought its rows and columns to
// completion. The counts must be taken BEFORE the placement committed, plus
// the cells the placement added per line, so the bonus reflects what this
// placement contributed rather than double counting its own cells.
//
// preRows/preCols map line index to pre-placement occupancy for every line
// the placement touched; added maps the same lines to how many cells the
// placement put there. size is the board dimension.
func (s *Scorer) NearFull(size int, preRows, preCols, addedRows, addedCols map[int]int) int {
	bonus := 0
	for r, pre := range preRows {
		after := pre + addedRows[r]
		if after < size && size-after <= s.weights.NearFullAt {
			bonus += s.weights.NearFullBonus
		}
	}
	for c, pre := range preCols {
		after := pre + addedCols[c]
		if after < size && size-after <= s.weights.NearFullAt {
			bonus += s.weights.NearFullBonus
		}
	}
	return bonus
}

// Clears returns the points for one resolution pass and advances the combo
// streak. A pass with no lines resets the streak.
func (s *Scorer) Clears(res LineClearResult, perfect bool) int {
	lines := res.TotalLines()
	if lines == 0 {
		s.combo = 0
		return 0
	}

	points := lines * s.weights.LineBase
	if lines > 1 {
		points += (lines - 1) * s.weights.MultiLineBonus
	}
	points += s.combo * s.weights.ComboBonus
	s.combo++

	if perfect {
		points += s.weights.PerfectClearBonus
	}
	return points
}
