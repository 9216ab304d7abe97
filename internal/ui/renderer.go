package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/remotepong/internal/game"
	"github.com/diegok/remotepong/internal/session"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
	LineChar   = '\u250A' // ┊
)

var (
	barStyle    = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	noticeStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	boxStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	boxFill     = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
)

// HelpLines is the instructions text shown by the help overlay.
var HelpLines = []string{
	"Player One: Up and Down arrow keys (or w/s)",
	"Player Two: Mouse",
	"",
	"Controller:",
	"D-Pad Up/Down: Move paddle",
	"A: Toggle rumble",
	"B: LED light show",
	"+/-: Change background color",
	"Home: Reset the game",
	"",
	"Keyboard controller (--controller keyboard):",
	"i/k or l/j: Move paddle  a: rumble  b: lights",
	"+/-: Background color  h: Home",
}

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Layout returns the current field to screen mapping.
func (r *Renderer) Layout(f game.Field) Layout {
	w, h := r.screen.Size()
	return NewLayout(f, w, h)
}

// RenderMenu displays the start screen shown while no match is running.
func (r *Renderer) RenderMenu(v session.View) {
	r.screen.Clear()
	_, screenH := r.screen.Size()
	mid := screenH / 2

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	r.screen.DrawCentered(mid-6, "=== REMOTE PONG ===", titleStyle)

	if v.LastWinner != game.SideNone {
		winStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
		r.screen.DrawCentered(mid-4, WinnerBanner(v.LastWinner), winStyle)
	}

	optStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	r.screen.DrawCentered(mid-2, "[1] Single player vs AI", optStyle)
	r.screen.DrawCentered(mid-1, "[2] Two players", optStyle)

	r.screen.DrawCentered(mid+1, fmt.Sprintf("Wins VS AI: %d", v.WinsVsAI), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if v.Notice != "" {
		r.screen.DrawCentered(mid+3, v.Notice, noticeStyle)
	}

	r.screen.DrawCentered(screenH-3, "[c] colors  [?] help  [q] quit", hintStyle)
	r.renderStatus(v, "Location: Main Screen")
	r.screen.Show()
}

// RenderGame displays the playing field.
func (r *Renderer) RenderGame(v session.View, colors Colors) {
	r.screen.Clear()
	screenW, _ := r.screen.Size()
	st := v.State
	l := r.Layout(st.Field)

	fieldStyle := tcell.StyleDefault.Background(FieldColor(v.Background))
	r.screen.FillRect(0, l.OffsetY, l.Cols, l.Rows, fieldStyle, ' ')

	lineStyle := fieldStyle.Foreground(LineColor(v.Background))
	centerX := l.CellX(st.Field.Left + st.Field.Width/2)
	r.screen.DrawVerticalLine(centerX, l.OffsetY, l.OffsetY+l.Rows-1, lineStyle, LineChar)

	r.renderPaddle(l, st.Left, fieldStyle.Foreground(SwatchColor(colors.Left)))
	r.renderPaddle(l, st.Right, fieldStyle.Foreground(SwatchColor(colors.Right)))

	bx := l.CellX(st.Ball.X + game.BallSize/2)
	by := l.CellY(st.Ball.Y + game.BallSize/2)
	if bx >= 0 && bx < l.Cols && by >= l.OffsetY && by < l.OffsetY+l.Rows {
		r.screen.SetCell(bx, by, fieldStyle.Foreground(SwatchColor(colors.Ball)), BallChar)
	}

	r.screen.FillRect(0, 0, screenW, 1, barStyle, ' ')
	r.screen.DrawText(1, 0, fmt.Sprintf("Player 1 Score: %d", st.LeftScore), barStyle.Foreground(SwatchColor(colors.Left)).Bold(true))
	right := fmt.Sprintf("Player 2 Score: %d", st.RightScore)
	r.screen.DrawText(screenW-len(right)-1, 0, right, barStyle.Foreground(SwatchColor(colors.Right)).Bold(true))
	r.screen.DrawCentered(0, fmt.Sprintf("First to %d", st.PointsToWin), barStyle)

	r.renderStatus(v, "Location: Playing Game")
	if v.Paused {
		r.screen.DrawCentered(l.OffsetY+l.Rows/2, " PAUSED ", boxFill.Bold(true))
	}
	r.screen.Show()
}

func (r *Renderer) renderPaddle(l Layout, p game.Paddle, style tcell.Style) {
	x := l.CellX(p.X)
	top := l.CellY(p.Top)
	for dy := 0; dy < l.Height(p.Height); dy++ {
		y := top + dy
		if y >= l.OffsetY && y < l.OffsetY+l.Rows && x >= 0 && x < l.Cols {
			r.screen.SetCell(x, y, style, PaddleChar)
		}
	}
}

func (r *Renderer) renderStatus(v session.View, location string) {
	screenW, screenH := r.screen.Size()
	y := screenH - 1
	r.screen.FillRect(0, y, screenW, 1, barStyle, ' ')

	ctrl := "no controller"
	if v.ControllerConnected {
		ctrl = "controller: " + v.Controller
		if v.Rumble {
			ctrl += " (rumble)"
		}
	}
	r.screen.DrawText(1, y, fmt.Sprintf("%s | %s | %s", location, v.Mode, ctrl), barStyle)
}

// RenderChooser draws the color chooser on top of whatever is on screen.
func (r *Renderer) RenderChooser(c *Chooser) {
	screenW, screenH := r.screen.Size()
	boxW, boxH := 40, len(Palette)+7
	x := (screenW - boxW) / 2
	y := (screenH - boxH) / 2
	r.screen.FillRect(x+1, y+1, boxW-2, boxH-2, boxFill, ' ')
	r.screen.DrawBox(x, y, boxW, boxH, boxStyle)

	r.screen.DrawText(x+2, y+1, "Colors for: "+c.Target().String(), boxFill.Bold(true))
	selected := c.Selected()
	for i, sw := range Palette {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		r.screen.DrawText(x+2, y+3+i, fmt.Sprintf("%s%d ", marker, i+1), boxFill)
		r.screen.DrawText(x+7, y+3+i, string(PaddleChar)+" "+sw.Name, boxFill.Foreground(sw.Color))
	}
	r.screen.DrawText(x+2, y+boxH-2, "tab: next  1-9: pick  enter/esc", boxFill)
	r.screen.Show()
}

// RenderHelp draws the instructions overlay.
func (r *Renderer) RenderHelp() {
	screenW, screenH := r.screen.Size()
	boxW, boxH := 50, len(HelpLines)+5
	x := (screenW - boxW) / 2
	y := (screenH - boxH) / 2
	r.screen.FillRect(x+1, y+1, boxW-2, boxH-2, boxFill, ' ')
	r.screen.DrawBox(x, y, boxW, boxH, boxStyle)
	r.screen.DrawText(x+2, y+1, "Instructions", boxFill.Bold(true))
	for i, line := range HelpLines {
		r.screen.DrawText(x+2, y+2+i, line, boxFill)
	}
	r.screen.DrawText(x+2, y+boxH-2, "Press any key to continue", boxFill.Foreground(tcell.ColorGreen))
	r.screen.Show()
}

// WinnerBanner is the message announcing a finished match.
func WinnerBanner(s game.Side) string {
	switch s {
	case game.SideLeft:
		return "Player 1 Wins!"
	case game.SideRight:
		return "Player 2 Wins!"
	}
	return ""
}
