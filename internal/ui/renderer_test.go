package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/remotepong/internal/game"
	"github.com/diegok/remotepong/internal/session"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(72, 30)
	t.Cleanup(sim.Fini)
	return NewRenderer(NewScreen(sim)), sim
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func TestRenderGame_Sprites(t *testing.T) {
	r, sim := newTestRenderer(t)
	v := session.View{State: game.NewState(7), Mode: session.ModeTwoPlayer}
	r.RenderGame(v, DefaultColors())

	if c, _, _, _ := sim.GetContent(35, 14); c != BallChar {
		t.Errorf("ball cell = %q, want %q", c, BallChar)
	}
	for y := 12; y < 18; y++ {
		if c, _, _, _ := sim.GetContent(2, y); c != PaddleChar {
			t.Errorf("left paddle row %d = %q, want %q", y, c, PaddleChar)
		}
		if c, _, _, _ := sim.GetContent(68, y); c != PaddleChar {
			t.Errorf("right paddle row %d = %q, want %q", y, c, PaddleChar)
		}
	}
	if c, _, _, _ := sim.GetContent(2, 18); c == PaddleChar {
		t.Error("left paddle drawn past its height")
	}
}

func TestRenderGame_CenterLine(t *testing.T) {
	r, sim := newTestRenderer(t)
	v := session.View{State: game.NewState(7), Mode: session.ModeTwoPlayer}
	r.RenderGame(v, DefaultColors())

	for y := 1; y < 29; y++ {
		if c, _, _, _ := sim.GetContent(36, y); c != LineChar {
			t.Errorf("center line row %d = %q, want %q", y, c, LineChar)
		}
	}
	if c, _, _, _ := sim.GetContent(36, 0); c == LineChar {
		t.Error("center line drawn over the score bar")
	}
}

func TestRenderHelp(t *testing.T) {
	r, sim := newTestRenderer(t)
	r.RenderHelp()

	text := screenText(sim)
	for _, want := range []string{"Instructions", "Home: Reset the game", "i/k or l/j", "h: Home"} {
		if !strings.Contains(text, want) {
			t.Errorf("help screen missing %q", want)
		}
	}
}

func TestRenderGame_ScoresAndStatus(t *testing.T) {
	r, sim := newTestRenderer(t)
	st := game.NewState(7)
	st.LeftScore, st.RightScore = 3, 5
	r.RenderGame(session.View{State: st, Mode: session.ModeSinglePlayer}, DefaultColors())

	top := rowText(sim, 0)
	if !strings.Contains(top, "Player 1 Score: 3") || !strings.Contains(top, "Player 2 Score: 5") {
		t.Errorf("score bar = %q", top)
	}
	status := rowText(sim, 29)
	if !strings.Contains(status, "Location: Playing Game") {
		t.Errorf("status bar = %q", status)
	}
	if !strings.Contains(status, "no controller") {
		t.Errorf("status bar should report the missing controller: %q", status)
	}
}

func TestRenderGame_Background(t *testing.T) {
	r, sim := newTestRenderer(t)
	v := session.View{State: game.NewState(7), Mode: session.ModeTwoPlayer, Background: session.BackgroundGold}
	r.RenderGame(v, DefaultColors())

	_, _, style, _ := sim.GetContent(10, 5)
	_, bg, _ := style.Decompose()
	if bg != FieldColor(session.BackgroundGold) {
		t.Errorf("field background = %v, want goldenrod", bg)
	}
}

func TestRenderGame_Paused(t *testing.T) {
	r, sim := newTestRenderer(t)
	r.RenderGame(session.View{State: game.NewState(7), Paused: true}, DefaultColors())

	if !strings.Contains(screenText(sim), "PAUSED") {
		t.Error("paused banner missing")
	}
}

func TestRenderMenu(t *testing.T) {
	r, sim := newTestRenderer(t)
	r.RenderMenu(session.View{
		WinsVsAI:   3,
		LastWinner: game.SideLeft,
		Notice:     "Unable to connect to the controller. Is one on?",
	})

	text := screenText(sim)
	for _, want := range []string{
		"Player 1 Wins!",
		"Wins VS AI: 3",
		"[1] Single player vs AI",
		"Unable to connect to the controller",
		"Location: Main Screen",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("menu missing %q", want)
		}
	}
}

func TestRenderChooser(t *testing.T) {
	r, sim := newTestRenderer(t)
	c := NewChooser(DefaultColors())
	c.HandleKey(tcell.KeyTab, 0)
	r.RenderChooser(c)

	text := screenText(sim)
	if !strings.Contains(text, "Colors for: player 1 paddle") {
		t.Error("chooser should name the target")
	}
	if !strings.Contains(text, "> 1") {
		t.Error("chooser should mark the current swatch")
	}
}

func TestWinnerBanner(t *testing.T) {
	if got := WinnerBanner(game.SideRight); got != "Player 2 Wins!" {
		t.Errorf("WinnerBanner(right) = %q", got)
	}
	if got := WinnerBanner(game.SideNone); got != "" {
		t.Errorf("WinnerBanner(none) = %q", got)
	}
}
