package engine

// InvalidReason explains why a placement was rejected.
type InvalidReason uint8

const (
	// ReasonNone means the placement was valid.
	ReasonNone InvalidReason = iota
	// ReasonOutOfBounds means a target cell falls outside the board.
	// Reported in preference to collision when both apply.
	ReasonOutOfBounds
	// ReasonCollision means a target cell is already occupied.
	ReasonCollision
	// ReasonInvalidPattern means the pattern has no occupied cells.
	ReasonInvalidPattern
	// ReasonNoValidPosition means the nearest-placement search exhausted its
	// radius without finding a legal origin.
	ReasonNoValidPosition
)

// String returns a short name for test failures and logs.
func (r InvalidReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonOutOfBounds:
		return "out_of_bounds"
	case ReasonCollision:
		return "collision"
	case ReasonInvalidPattern:
		return "invalid_pattern"
	case ReasonNoValidPosition:
		return "no_valid_position"
	default:
		return "unknown"
	}
}

// PlacementResult is the outcome of testing a pattern at an origin.
// Rejection is an ordinary value, not an error: most placements a player
// attempts are expected to be invalid.
type PlacementResult struct {
	Valid     bool
	Positions []Position // every absolute cell the pattern occupies; nil when invalid
	Reason    InvalidReason
}

func invalidPlacement(r InvalidReason) PlacementResult {
	return PlacementResult{Reason: r}
}

// Validate decides whether the pattern fits at origin on the given board.
// Pure: the board is only read.
//
// Bounds are checked for every target cell before any occupancy is consulted,
// so an out-of-bounds failure is reported even when an in-bounds cell would
// also collide. The bounds pass short-circuits on the first offending cell.
func Validate(g *Grid, pat BlockPattern, origin Position) PlacementResult {
	offsets := pat.Offsets()
	if len(offsets) == 0 {
		return invalidPlacement(ReasonInvalidPattern)
	}

	targets := make([]Position, 0, len(offsets))
	for _, o := range offsets {
		p, ok := g.Position(origin.Row+o.Row, origin.Col+o.Col)
		if !ok {
			return invalidPlacement(ReasonOutOfBounds)
		}
		targets = append(targets, p)
	}

	for _, p := range targets {
		if g.IsOccupied(p) {
			return invalidPlacement(ReasonCollision)
		}
	}

	return PlacementResult{Valid: true, Positions: targets, Reason: ReasonNone}
}

// NearestValid searches for the closest legal origin to the desired one.
// The exact origin is tried first, then Chebyshev rings of growing distance
// up to maxRadius. Candidates inside a ring are visited in row-major order,
// so the same board always yields the same suggestion.
func NearestValid(g *Grid, pat BlockPattern, desired Position, maxRadius int) PlacementResult {
	if pat.CellCount() == 0 {
		return invalidPlacement(ReasonInvalidPattern)
	}

	if res := Validate(g, pat, desired); res.Valid {
		return res
	}

	for d := 1; d <= maxRadius; d++ {
		for dr := -d; dr <= d; dr++ {
			for dc := -d; dc <= d; dc++ {
				if max(abs(dr), abs(dc)) != d {
					continue // interior of the ring, already visited
				}
				origin, ok := g.Position(desired.Row+dr, desired.Col+dc)
				if !ok {
					continue
				}
				if res := Validate(g, pat, origin); res.Valid {
					return res
				}
			}
		}
	}

	return invalidPlacement(ReasonNoValidPosition)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
