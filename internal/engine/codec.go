package engine

import "fmt"

// Flat save shapes. A serialized board is a row-major list of cell records;
// a serialized tray is a list of optional pattern records where nil marks an
// empty slot. Preview cells are UI-transient and always encode as empty.

// CellRecord is one persisted cell.
type CellRecord struct {
	State string `json:"state"`
	Color string `json:"color,omitempty"`
}

// GridPayload is a persisted board.
type GridPayload struct {
	Size  int          `json:"size"`
	Cells []CellRecord `json:"cells"`
}

// PatternRecord is one persisted tray piece.
type PatternRecord struct {
	Type  string   `json:"type"`
	Color string   `json:"color"`
	Mask  [][]bool `json:"mask"`
}

// TrayPayload is a persisted tray; nil entries are empty slots.
type TrayPayload []*PatternRecord

func errSizeMismatch(want, got int) error {
	return fmt.Errorf("engine: payload board size %d, engine expects %d", got, want)
}

// EncodeGrid converts a board to its flat payload.
// Preview cells collapse to empty records.
func EncodeGrid(g *Grid) GridPayload {
	payload := GridPayload{
		Size:  g.size,
		Cells: make([]CellRecord, len(g.cells)),
	}
	for i, c := range g.cells {
		switch c.State {
		case CellOccupied, CellLocked:
			payload.Cells[i] = CellRecord{State: c.State.String(), Color: c.Color.String()}
		default:
			payload.Cells[i] = CellRecord{State: CellEmpty.String()}
		}
	}
	return payload
}

// DecodeGrid rebuilds a board from its flat payload.
// A stray "preview" record decodes to an empty cell.
func DecodeGrid(payload GridPayload) (*Grid, error) {
	g, err := NewGrid(payload.Size)
	if err != nil {
		return nil, err
	}
	if len(payload.Cells) != payload.Size*payload.Size {
		return nil, fmt.Errorf("engine: payload has %d cells, want %d", len(payload.Cells), payload.Size*payload.Size)
	}

	for i, rec := range payload.Cells {
		color, ok := ParseColor(rec.Color)
		if !ok {
			return nil, fmt.Errorf("engine: unknown color %q at cell %d", rec.Color, i)
		}
		switch rec.State {
		case "empty", "preview":
			g.cells[i] = EmptyCell()
		case "occupied":
			g.cells[i] = OccupiedCell(color)
		case "locked":
			g.cells[i] = LockedCell(color)
		default:
			return nil, fmt.Errorf("engine: unknown cell state %q at cell %d", rec.State, i)
		}
	}
	return g, nil
}

// EncodePattern converts a pattern to its persisted record.
func EncodePattern(p BlockPattern) PatternRecord {
	return PatternRecord{
		Type:  string(p.Type()),
		Color: p.Color().String(),
		Mask:  p.Mask(),
	}
}

// DecodePattern rebuilds a pattern from its persisted record.
// The mask is authoritative; the type tag is carried through as-is so saves
// from newer catalogs still load.
func DecodePattern(rec PatternRecord) (BlockPattern, error) {
	color, ok := ParseColor(rec.Color)
	if !ok {
		return BlockPattern{}, fmt.Errorf("engine: unknown pattern color %q", rec.Color)
	}
	return NewPattern(PatternType(rec.Type), color, rec.Mask)
}

// EncodeTray converts a tray to its persisted shape. Nil slots stay nil.
func EncodeTray(tray []*BlockPattern) TrayPayload {
	payload := make(TrayPayload, len(tray))
	for i, p := range tray {
		if p == nil {
			continue
		}
		rec := EncodePattern(*p)
		payload[i] = &rec
	}
	return payload
}

// DecodeTray rebuilds a tray from its persisted shape.
func DecodeTray(payload TrayPayload) ([]*BlockPattern, error) {
	tray := make([]*BlockPattern, len(payload))
	for i, rec := range payload {
		if rec == nil {
			continue
		}
		p, err := DecodePattern(*rec)
		if err != nil {
			return nil, fmt.Errorf("engine: tray slot %d: %w", i, err)
		}
		tray[i] = &p
	}
	return tray, nil
}
