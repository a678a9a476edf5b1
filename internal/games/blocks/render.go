package blocks

import (
	"fmt"

	"github.com/pkorman/blockline/internal/core"
	"github.com/pkorman/blockline/internal/engine"
)

const (
	boardX = 2
	boardY = 2
)

// cellColor maps the engine palette to screen colors.
func cellColor(c engine.Color) core.Color {
	switch c {
	case engine.ColorRed:
		return core.ColorRed
	case engine.ColorOrange:
		return core.ColorOrange
	case engine.ColorYellow:
		return core.ColorYellow
	case engine.ColorGreen:
		return core.ColorGreen
	case engine.ColorCyan:
		return core.ColorCyan
	case engine.ColorBlue:
		return core.ColorBlue
	case engine.ColorPurple:
		return core.ColorMagenta
	default:
		return core.ColorGray
	}
}

// Render draws the board, tray and HUD into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize and press r to restart")
		return
	}

	dst.DrawText(boardX, 0, g.Title())

	size := g.eng.Size()
	dst.DrawBox(core.NewRect(boardX-1, boardY-1, size*2+2, size+2))
	g.renderBoard(dst)
	g.renderHUD(dst)
	g.renderTray(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, " GAME OVER ")
	case g.paused:
		g.renderOverlay(dst, " PAUSED ")
	}
}

// renderBoard draws the grid cells, two runes per cell.
func (g *Game) renderBoard(dst *core.Screen) {
	size := g.eng.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := engine.MustPosition(row, col, size)
			cell := g.eng.CellState(p)
			x, y := boardX+col*2, boardY+row

			switch cell.State {
			case engine.CellOccupied:
				c := cellColor(cell.Color)
				dst.SetColored(x, y, '█', c)
				dst.SetColored(x+1, y, '█', c)
			case engine.CellLocked:
				dst.SetColored(x, y, '▒', core.ColorGray)
				dst.SetColored(x+1, y, '▒', core.ColorGray)
			case engine.CellPreview:
				c := cellColor(cell.Color)
				dst.SetColored(x, y, '░', c)
				dst.SetColored(x+1, y, '░', c)
			default:
				dst.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}
}

// renderHUD draws score and combo to the right of the board.
func (g *Game) renderHUD(dst *core.Screen) {
	x := boardX + g.eng.Size()*2 + 4
	dst.DrawText(x, boardY, fmt.Sprintf("Score: %d", g.score))

	if combo := g.scorer.Combo(); combo > 1 {
		dst.DrawTextColored(x, boardY+1, fmt.Sprintf("Combo x%d", combo), core.ColorBrightYellow)
	}
	if g.clearTicks > 0 && !g.lastClear.IsEmpty() {
		msg := fmt.Sprintf("+%d lines!", g.lastClear.TotalLines())
		dst.DrawTextColored(x, boardY+2, msg, core.ColorBrightGreen)
	}
}

// renderTray draws the three piece slots below the HUD, the selected one
// marked with an arrow.
func (g *Game) renderTray(dst *core.Screen) {
	x := boardX + g.eng.Size()*2 + 4
	y := boardY + 4
	dst.DrawText(x, y, "Tray:")
	y++

	for i, pat := range g.tray {
		marker := ' '
		if i == g.slot && pat != nil {
			marker = '>'
		}
		dst.SetColored(x, y, marker, core.ColorBrightWhite)

		if pat == nil {
			dst.DrawTextColored(x+2, y, "--", core.ColorGray)
			y += 2
			continue
		}

		c := cellColor(pat.Color())
		for _, o := range pat.Offsets() {
			dst.SetColored(x+2+o.Col*2, y+o.Row, '█', c)
			dst.SetColored(x+3+o.Col*2, y+o.Row, '█', c)
		}
		y += pat.Rows() + 1
	}
}

// renderOverlay draws a centered banner over the board.
func (g *Game) renderOverlay(dst *core.Screen, text string) {
	size := g.eng.Size()
	x := boardX + (size*2-len(text))/2
	y := boardY + size/2
	dst.DrawTextColored(x, y, text, core.ColorBrightWhite)
	if g.gameOver {
		dst.DrawText(boardX, boardY+size+2, "r restart · b back · q quit")
	}
}
