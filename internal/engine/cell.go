package engine

// Color is an opaque palette tag carried on cells and patterns.
// The engine only compares colors; rendering decides what they look like.
type Color uint8

// Palette of block colors. ColorNone is used for empty cells.
const (
	ColorNone Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorPurple
)

// String returns the serialization name of the color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	default:
		return ""
	}
}

// ParseColor maps a serialized color name back to a Color.
// The empty string parses to ColorNone.
func ParseColor(name string) (Color, bool) {
	switch name {
	case "":
		return ColorNone, true
	case "red":
		return ColorRed, true
	case "orange":
		return ColorOrange, true
	case "yellow":
		return ColorYellow, true
	case "green":
		return ColorGreen, true
	case "cyan":
		return ColorCyan, true
	case "blue":
		return ColorBlue, true
	case "purple":
		return ColorPurple, true
	default:
		return ColorNone, false
	}
}

// Colors returns every placeable color, in palette order.
func Colors() []Color {
	return []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorPurple}
}

// CellState is the occupancy state of a single grid cell.
type CellState uint8

const (
	// CellEmpty is a free cell.
	CellEmpty CellState = iota
	// CellOccupied holds a placed block cell.
	CellOccupied
	// CellLocked is a pre-filled obstacle cell. It blocks placement but is
	// never removed by a line clear.
	CellLocked
	// CellPreview is a transient ghost cell shown while aiming a placement.
	// It never blocks placement and is never persisted.
	CellPreview
)

// String returns the serialization name of the state.
func (s CellState) String() string {
	switch s {
	case CellOccupied:
		return "occupied"
	case CellLocked:
		return "locked"
	case CellPreview:
		return "preview"
	default:
		return "empty"
	}
}

// Cell is one slot of the grid: a state tag plus the color it carries.
// The color is meaningful only for non-empty states.
type Cell struct {
	State CellState
	Color Color
}

// EmptyCell returns a free cell.
func EmptyCell() Cell {
	return Cell{State: CellEmpty}
}

// OccupiedCell returns a placed cell of the given color.
func OccupiedCell(c Color) Cell {
	return Cell{State: CellOccupied, Color: c}
}

// LockedCell returns an obstacle cell of the given color.
func LockedCell(c Color) Cell {
	return Cell{State: CellLocked, Color: c}
}

// PreviewCell returns a ghost cell of the given color.
func PreviewCell(c Color) Cell {
	return Cell{State: CellPreview, Color: c}
}

// Occupies reports whether the cell blocks placement.
// Preview cells are UI feedback only and never block.
func (c Cell) Occupies() bool {
	return c.State == CellOccupied || c.State == CellLocked
}
