package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/remotepong/internal/audio"
	"github.com/diegok/remotepong/internal/config"
	"github.com/diegok/remotepong/internal/controller"
	"github.com/diegok/remotepong/internal/logger"
	"github.com/diegok/remotepong/internal/session"
	"github.com/diegok/remotepong/internal/ui"
)

func newTestApp(t *testing.T, device controller.Device) *App {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(72, 30)

	a := NewApp(config.Default())
	a.log = logger.Discard()
	a.player = &audio.Recorder{}
	a.attach(ui.NewScreen(sim), device)
	return a
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestApp_MenuKeysStartAndReset(t *testing.T) {
	a := newTestApp(t, nil)

	a.handleEvent(key('1'))
	if a.session.Mode() != session.ModeSinglePlayer {
		t.Fatalf("mode = %v, want single-player", a.session.Mode())
	}
	a.render()

	a.handleEvent(key('n'))
	if a.session.Mode() != session.ModeIdle {
		t.Fatalf("mode after new game = %v, want idle", a.session.Mode())
	}
	a.render()
}

func TestApp_QuitKey(t *testing.T) {
	a := newTestApp(t, nil)
	if !a.handleEvent(key('q')) {
		t.Error("'q' should quit")
	}
	if a.handleEvent(key('x')) {
		t.Error("'x' should not quit")
	}
}

func TestApp_ArrowMovesPlayerOne(t *testing.T) {
	a := newTestApp(t, nil)
	a.handleEvent(key('2'))
	before := a.session.State().Left.Top

	a.handleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if got := a.session.State().Left.Top; got != before-25 {
		t.Errorf("left top = %d, want %d", got, before-25)
	}
}

func TestApp_MouseMovesPlayerTwo(t *testing.T) {
	a := newTestApp(t, nil)
	a.handleEvent(key('2'))

	a.handleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if got := a.session.State().Right.Top; got != 45 {
		t.Errorf("right top = %d, want 45", got)
	}
}

func TestApp_ChooserPausesAndApplies(t *testing.T) {
	a := newTestApp(t, nil)
	a.handleEvent(key('2'))

	a.handleEvent(key('c'))
	if a.chooser == nil {
		t.Fatal("chooser should be open")
	}
	if ball, _, _ := a.session.Running(); ball {
		t.Error("ball should be paused while choosing")
	}
	a.render()

	if a.handleEvent(key('q')) {
		t.Error("keys go to the chooser while it is open")
	}
	a.handleEvent(key('3'))
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if a.chooser != nil {
		t.Fatal("chooser should be closed")
	}
	if a.colors.Ball != 2 {
		t.Errorf("ball color = %d, want 2", a.colors.Ball)
	}
	if ball, _, _ := a.session.Running(); !ball {
		t.Error("ball should resume after choosing")
	}
}

func TestApp_ChooserCancel(t *testing.T) {
	a := newTestApp(t, nil)
	a.handleEvent(key('c'))
	a.handleEvent(key('5'))
	a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	if a.colors != ui.DefaultColors() {
		t.Errorf("colors = %+v, want defaults after cancel", a.colors)
	}
	if a.session.Mode() != session.ModeIdle {
		t.Error("cancelling on the menu must not start a game")
	}
}

func TestApp_HelpOverlay(t *testing.T) {
	a := newTestApp(t, nil)
	a.handleEvent(key('1'))
	a.handleEvent(key('?'))
	if !a.help {
		t.Fatal("help should be open")
	}
	if ball, ai, _ := a.session.Running(); ball || ai {
		t.Error("timers should be paused under the help overlay")
	}
	a.render()

	a.handleEvent(key('x'))
	if a.help {
		t.Fatal("any key should close help")
	}
	if ball, ai, _ := a.session.Running(); !ball || !ai {
		t.Error("timers should resume after help")
	}
}

func TestApp_KeyboardControllerGetsKeys(t *testing.T) {
	kb := controller.NewKeyboard()
	a := newTestApp(t, kb)
	if a.keyboard != kb {
		t.Fatal("keyboard device should be wired")
	}
	if !a.session.ControllerConnected() {
		t.Fatal("keyboard controller should connect")
	}

	a.handleEvent(key('h'))
	b, err := kb.Poll()
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if !b.Home {
		t.Error("'h' should reach the emulated controller as Home")
	}
}

func TestApp_ResizeRerenders(t *testing.T) {
	a := newTestApp(t, nil)
	if a.handleEvent(tcell.NewEventResize(80, 40)) {
		t.Error("resize should not quit")
	}
}

func TestApp_CleanupClosesController(t *testing.T) {
	mock := controller.NewMock()
	a := newTestApp(t, mock)
	a.cleanup()
	if mock.Connected() {
		t.Error("controller should be disconnected on cleanup")
	}
}
