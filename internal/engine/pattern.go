package engine

import "fmt"

// PatternType identifies a block shape. The value doubles as the
// serialization tag for saved trays.
type PatternType string

const (
	PatternSingle  PatternType = "single"
	PatternLine2H  PatternType = "line2_h"
	PatternLine2V  PatternType = "line2_v"
	PatternLine3H  PatternType = "line3_h"
	PatternLine3V  PatternType = "line3_v"
	PatternLine4H  PatternType = "line4_h"
	PatternLine4V  PatternType = "line4_v"
	PatternLine5H  PatternType = "line5_h"
	PatternLine5V  PatternType = "line5_v"
	PatternSquare2 PatternType = "square2"
	PatternSquare3 PatternType = "square3"
	PatternCornerTL PatternType = "corner_tl"
	PatternCornerTR PatternType = "corner_tr"
	PatternCornerBL PatternType = "corner_bl"
	PatternCornerBR PatternType = "corner_br"
	PatternTee     PatternType = "tee"
	PatternEss     PatternType = "ess"
	PatternZed     PatternType = "zed"
)

// shapeMasks holds the bounding-box mask of every catalog shape.
// true marks an occupied sub-cell; offsets are relative to the top-left.
var shapeMasks = map[PatternType][][]bool{
	PatternSingle:  {{true}},
	PatternLine2H:  {{true, true}},
	PatternLine2V:  {{true}, {true}},
	PatternLine3H:  {{true, true, true}},
	PatternLine3V:  {{true}, {true}, {true}},
	PatternLine4H:  {{true, true, true, true}},
	PatternLine4V:  {{true}, {true}, {true}, {true}},
	PatternLine5H:  {{true, true, true, true, true}},
	PatternLine5V:  {{true}, {true}, {true}, {true}, {true}},
	PatternSquare2: {{true, true}, {true, true}},
	PatternSquare3: {{true, true, true}, {true, true, true}, {true, true, true}},
	PatternCornerTL: {{true, true}, {true, false}},
	PatternCornerTR: {{true, true}, {false, true}},
	PatternCornerBL: {{true, false}, {true, true}},
	PatternCornerBR: {{false, true}, {true, true}},
	PatternTee:     {{true, true, true}, {false, true, false}},
	PatternEss:     {{false, true, true}, {true, true, false}},
	PatternZed:     {{true, true, false}, {false, true, true}},
}

// Offset is a non-negative (row, col) displacement inside a pattern's
// bounding box, relative to its top-left origin.
type Offset struct {
	Row int
	Col int
}

// BlockPattern is an immutable placeable piece: a shape tag, a color and the
// occupied offsets of its bounding-box mask. The zero value has an empty mask
// and is rejected by the validator as an invalid pattern.
type BlockPattern struct {
	typ     PatternType
	color   Color
	rows    int
	cols    int
	offsets []Offset
}

// NewPattern builds a pattern from an explicit boolean mask.
// The mask must contain at least one occupied entry and rectangular rows.
func NewPattern(t PatternType, color Color, mask [][]bool) (BlockPattern, error) {
	p := BlockPattern{typ: t, color: color, rows: len(mask)}
	for r, row := range mask {
		if r == 0 {
			p.cols = len(row)
		} else if len(row) != p.cols {
			return BlockPattern{}, fmt.Errorf("engine: ragged mask for pattern %q", t)
		}
		for c, on := range row {
			if on {
				p.offsets = append(p.offsets, Offset{Row: r, Col: c})
			}
		}
	}
	if len(p.offsets) == 0 {
		return BlockPattern{}, fmt.Errorf("engine: pattern %q has no occupied cells", t)
	}
	return p, nil
}

// PatternOf builds a catalog shape in the given color.
func PatternOf(t PatternType, color Color) (BlockPattern, bool) {
	mask, ok := shapeMasks[t]
	if !ok {
		return BlockPattern{}, false
	}
	p, err := NewPattern(t, color, mask)
	if err != nil {
		return BlockPattern{}, false
	}
	return p, true
}

// CatalogTypes returns every catalog shape tag in a stable order.
func CatalogTypes() []PatternType {
	return []PatternType{
		PatternSingle,
		PatternLine2H, PatternLine2V,
		PatternLine3H, PatternLine3V,
		PatternLine4H, PatternLine4V,
		PatternLine5H, PatternLine5V,
		PatternSquare2, PatternSquare3,
		PatternCornerTL, PatternCornerTR, PatternCornerBL, PatternCornerBR,
		PatternTee, PatternEss, PatternZed,
	}
}

// Type returns the shape tag.
func (p BlockPattern) Type() PatternType {
	return p.typ
}

// Color returns the pattern color.
func (p BlockPattern) Color() Color {
	return p.color
}

// CellCount returns how many cells the pattern occupies.
func (p BlockPattern) CellCount() int {
	return len(p.offsets)
}

// Rows returns the bounding-box height.
func (p BlockPattern) Rows() int {
	return p.rows
}

// Cols returns the bounding-box width.
func (p BlockPattern) Cols() int {
	return p.cols
}

// Offsets returns a copy of the occupied offsets, top-left relative,
// in row-major order.
func (p BlockPattern) Offsets() []Offset {
	out := make([]Offset, len(p.offsets))
	copy(out, p.offsets)
	return out
}

// Mask rebuilds the boolean bounding-box mask, for serialization and display.
func (p BlockPattern) Mask() [][]bool {
	mask := make([][]bool, p.rows)
	for r := range mask {
		mask[r] = make([]bool, p.cols)
	}
	for _, o := range p.offsets {
		mask[o.Row][o.Col] = true
	}
	return mask
}
