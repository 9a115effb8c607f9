package t2048

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = engine.BoardSize*cellWidth + 1
	boardH = engine.BoardSize*cellHeight + 1

	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 2
)

// tileColors maps tile values to display colors.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorBrightGreen,
	512:  core.ColorGreen,
	1024: core.ColorBrightCyan,
	2048: core.ColorBrightMagenta,
}

// TileColor returns the color used to draw a tile value.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	if value > 2048 {
		return core.ColorMagenta
	}
	return core.ColorDefault
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderGrid(dst, boardX, boardY)
	g.renderTiles(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)

	dst.DrawTextCentered(boardY+boardH, g.Controls())
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	score := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawText(boardX, 1, score)
	if g.flash.visible() {
		dst.DrawTextColored(boardX+len(score)+1, 1, fmt.Sprintf("+%d", g.flash.amount), core.ColorBrightGreen)
	}

	best := fmt.Sprintf("Best: %d", g.session.BestScore())
	dst.DrawText(boardX+boardW-len(best), 1, best)

	var info string
	switch {
	case g.lastError != nil:
		info = "progress not saved"
	case g.session.State().CanUndo:
		info = "U: undo"
	}
	if info != "" {
		dst.DrawTextColored(boardX+(boardW-len(info))/2, 2, info, core.ColorGray)
	}
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	for y := range engine.BoardSize + 1 {
		for x := range engine.BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == engine.BoardSize:
				corner = '┐'
			case y == engine.BoardSize && x == 0:
				corner = '└'
			case y == engine.BoardSize && x == engine.BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == engine.BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == engine.BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < engine.BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < engine.BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws settled tiles, then any tiles in flight.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	board := g.session.Board()

	for _, t := range board.Tiles() {
		p := t.Pos()
		if g.anim.covers(p) {
			continue
		}
		g.drawTile(dst, boardX, boardY, float64(p.Row), float64(p.Col), t.Value, g.anim.popping(p))
	}

	if g.anim.phase != PhaseSlide {
		return
	}
	progress := g.anim.progress()
	for _, s := range g.anim.slides {
		row, col := slidePosition(s, progress)
		g.drawTile(dst, boardX, boardY, row, col, s.Value, false)
	}
}

// drawTile draws a value centered in the cell at fractional grid coordinates.
func (g *Game) drawTile(dst *core.Screen, boardX, boardY int, row, col float64, value int, pop bool) {
	text := strconv.Itoa(value)
	if pop {
		text = "[" + text + "]"
	}

	inner := cellWidth - 1
	cellX := boardX + int(math.Round(col*cellWidth)) + 1
	cellY := boardY + int(math.Round(row*cellHeight)) + 1

	pad := max((inner-len(text))/2, 0)
	dst.DrawTextColored(cellX+pad, cellY, text, TileColor(value))
}

// renderOverlays draws pause, win and game over boxes.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		drawOverlay(dst, centerX, centerY, core.ColorDefault, "PAUSED", "Press P to resume")
		return
	}

	switch g.session.Status() {
	case StatusWon:
		drawOverlay(dst, centerX, centerY, core.ColorBrightYellow,
			"YOU WIN!",
			fmt.Sprintf("Score: %d", g.session.Score()),
			"C: continue  R: restart")
	case StatusLost:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.session.Score())}
		if g.newBest() {
			lines = append(lines, "New best!")
		}
		if g.session.State().CanUndo {
			lines = append(lines, "U: undo  R: restart")
		} else {
			lines = append(lines, "R: restart")
		}
		drawOverlay(dst, centerX, centerY, core.ColorBrightRed, lines...)
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.CenteredRect(centerX, centerY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | U: Undo | R: Restart | P: Pause | Q: Quit"
}
