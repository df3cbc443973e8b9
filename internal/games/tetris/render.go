package tetris

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth   = 2  // Screen columns per board cell
	panelWidth  = 14 // Side panel width
	panelHeight = 18 // Rows used by the side panel
	panelGap    = 1
)

// Visual characters for rendering
const (
	blockChar = '█'
	emptyChar = '·'
)

// kindColors gives every tetromino its conventional color.
var kindColors = map[engine.Kind]core.Color{
	engine.I: core.ColorCyan,
	engine.O: core.ColorYellow,
	engine.T: core.ColorMagenta,
	engine.S: core.ColorGreen,
	engine.Z: core.ColorRed,
	engine.J: core.ColorBlue,
	engine.L: core.ColorOrange,
}

// MinScreenSize returns the smallest screen that fits the well and panel.
func MinScreenSize(rules engine.Rules) (int, int) {
	w := rules.Width*cellWidth + 2 + panelGap + panelWidth
	h := core.Max(rules.Height+2, panelHeight)
	return w, h
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := MinScreenSize(g.eng.Rules())
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.eng != nil {
		g.checkScreenSize()
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	totalW, totalH := MinScreenSize(g.eng.Rules())
	wellX := core.Max(0, (dst.Width()-totalW)/2)
	wellY := core.Max(0, (dst.Height()-totalH)/2)
	well := core.NewRect(wellX, wellY, g.eng.Width()*cellWidth+2, g.eng.Height()+2)

	g.renderWell(dst, well)
	g.renderPanel(dst, well.Right()+panelGap, wellY)
	g.renderOverlays(dst, well)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")

	minW, minH := MinScreenSize(g.eng.Rules())
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderWell draws the border, locked cells and the falling piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well, core.ColorGray)

	for y, row := range g.eng.Grid() {
		for x, kind := range row {
			g.drawCell(dst, well, x, y, kind)
		}
	}

	if g.eng.IsGameOver() {
		return
	}
	cells, kind := g.eng.ActiveCells()
	for _, c := range cells {
		if c.Y >= 0 {
			g.drawCell(dst, well, c.X, c.Y, kind)
		}
	}
}

// drawCell paints one board cell inside the well border.
func (g *Game) drawCell(dst *core.Screen, well core.Rect, x, y int, kind engine.Kind) {
	sx := well.X + 1 + x*cellWidth
	sy := well.Y + 1 + y

	if kind == engine.None {
		dst.SetWithColor(sx, sy, emptyChar, core.ColorGray)
		dst.Set(sx+1, sy, ' ')
		return
	}
	color := kindColors[kind]
	dst.SetWithColor(sx, sy, blockChar, color)
	dst.SetWithColor(sx+1, sy, blockChar, color)
}

// renderPanel draws the title, next-piece preview and stats.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawTextWithColor(x, y, "TETRIS", core.ColorCyan)

	// Rotation 0 of every kind fits in 4x2 cells
	preview := core.NewRect(x, y+2, 4*cellWidth+2, 4)
	dst.DrawBox(preview, core.ColorGray)
	dst.DrawText(x+2, y+2, "NEXT")

	next := g.eng.Next()
	for _, c := range engine.ShapeCells(next, 0) {
		sx := preview.X + 1 + c.X*cellWidth
		sy := preview.Y + 1 + c.Y
		dst.SetWithColor(sx, sy, blockChar, kindColors[next])
		dst.SetWithColor(sx+1, sy, blockChar, kindColors[next])
	}

	stats := []struct {
		label string
		value string
	}{
		{"Score", humanize.Comma(int64(g.eng.Score()))},
		{"Level", fmt.Sprintf("%d", g.eng.Level())},
		{"Lines", fmt.Sprintf("%d", g.eng.Lines())},
		{"Speed", fmt.Sprintf("%dms", g.eng.TickIntervalMs())},
	}
	for i, st := range stats {
		row := y + 7 + i*3
		dst.DrawTextWithColor(x, row, st.label, core.ColorGray)
		dst.DrawTextWithColor(x, row+1, st.value, core.ColorWhite)
	}
}

// renderOverlays draws pause and game over messages over the well.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	midY := well.Y + well.H/2

	switch {
	case g.eng.IsGameOver():
		dst.DrawRect(core.NewRect(well.X+1, midY-1, well.W-2, 3), ' ')
		g.drawInWell(dst, well, midY-1, "GAME OVER", core.ColorRed)
		g.drawInWell(dst, well, midY, "Score "+humanize.Comma(int64(g.eng.Score())), core.ColorWhite)
		g.drawInWell(dst, well, midY+1, "R restart", core.ColorGray)
	case g.paused:
		dst.DrawRect(core.NewRect(well.X+1, midY, well.W-2, 1), ' ')
		g.drawInWell(dst, well, midY, "PAUSED", core.ColorYellow)
	}
}

// drawInWell centers text horizontally inside the well.
func (g *Game) drawInWell(dst *core.Screen, well core.Rect, y int, text string, c core.Color) {
	x := well.X + (well.W-len(text))/2
	dst.DrawTextWithColor(x, y, text, c)
}
