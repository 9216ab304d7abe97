package app

import (
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/diegok/remotepong/internal/audio"
	"github.com/diegok/remotepong/internal/config"
	"github.com/diegok/remotepong/internal/controller"
	"github.com/diegok/remotepong/internal/game"
	"github.com/diegok/remotepong/internal/logger"
	"github.com/diegok/remotepong/internal/scheduler"
	"github.com/diegok/remotepong/internal/session"
	"github.com/diegok/remotepong/internal/ui"
)

const frameInterval = 16 * time.Millisecond

// App wires the terminal, the session and its timers into one event loop.
type App struct {
	cfg       *config.Config
	log       *logrus.Entry
	logCloser io.Closer
	screen    *ui.Screen
	renderer  *ui.Renderer
	sched     *scheduler.Scheduler
	session   *session.Session
	keyboard  *controller.Keyboard
	player    audio.Player

	colors  ui.Colors
	chooser *ui.Chooser
	help    bool
	pause   session.Pause

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		colors: ui.DefaultColors(),
		quit:   make(chan struct{}),
	}
}

// Run opens every resource, runs the event loop until the player quits and
// then releases everything in reverse order.
func (a *App) Run() error {
	log, closer, err := logger.Setup(a.cfg.LoggerOptions())
	if err != nil {
		return errors.Wrap(err, "setup logging")
	}
	a.log, a.logCloser = log, closer

	a.player = a.openAudio()
	device := a.openController()

	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.attach(screen, device)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	a.log.WithField("controller", a.cfg.Controller).Info("remotepong started")
	err = a.mainLoop()
	a.stop()
	a.cleanup()
	return err
}

func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.quit) })
}

// attach builds the session on top of an opened screen.
func (a *App) attach(screen *ui.Screen, device controller.Device) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.sched = scheduler.New()
	if kb, ok := device.(*controller.Keyboard); ok {
		a.keyboard = kb
	}
	a.session = session.New(session.Options{
		PointsToWin:        a.cfg.PointsToWin,
		BallInterval:       a.cfg.BallInterval,
		AIInterval:         a.cfg.AIInterval,
		ControllerInterval: a.cfg.ControllerInterval,
	}, a.sched, device, a.player, a.log)
}

func (a *App) openAudio() audio.Player {
	sp, err := audio.NewSpeaker(a.cfg.AssetsDir, a.log)
	if err != nil {
		a.log.WithError(err).Warn("audio unavailable, playing silently")
		return audio.Silent{}
	}
	return sp
}

func (a *App) openController() controller.Device {
	dev, err := controller.New(a.cfg.Controller, a.cfg.JoystickPath)
	if err != nil {
		a.log.WithError(err).WithField("controller", a.cfg.Controller).Warn("controller disabled")
		return nil
	}
	return dev
}

// mainLoop is the only goroutine that touches the session. Terminal events
// arrive over a channel and the frame ticker advances the scheduler.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.sched.Advance(time.Now())
	a.render()
	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			a.sched.Advance(now)
			a.render()
		}
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		if a.chooser != nil || a.help {
			return false
		}
		_, y := ev.Position()
		if fy, ok := a.renderer.Layout(a.session.State().Field).FieldY(y); ok {
			a.session.PointerMove(fy)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.render()
	}
	return false
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	if a.chooser != nil {
		switch a.chooser.HandleKey(key, r) {
		case ui.ChooserApplied:
			a.colors = a.chooser.Colors()
			a.closeModal()
		case ui.ChooserCancelled:
			a.closeModal()
		}
		return false
	}
	if a.help {
		a.closeModal()
		return false
	}

	if ui.IsQuitKey(key, r) {
		return true
	}
	if a.keyboard != nil && a.keyboard.Press(key, r) {
		return false
	}
	if dir := ui.KeyToDirection(key, r); dir != game.DirNone {
		a.session.MovePlayer1(dir)
		return false
	}

	switch ui.KeyToAction(key, r) {
	case ui.ActionSinglePlayer:
		a.session.StartSinglePlayer()
	case ui.ActionTwoPlayer:
		a.session.StartTwoPlayer()
	case ui.ActionNewGame:
		a.session.Reset()
	case ui.ActionColors:
		a.pause = a.session.Pause()
		a.chooser = ui.NewChooser(a.colors)
	case ui.ActionHelp:
		a.pause = a.session.Pause()
		a.help = true
	}
	return false
}

func (a *App) closeModal() {
	a.chooser = nil
	a.help = false
	a.session.Resume(a.pause)
	a.pause = session.Pause{}
}

func (a *App) render() {
	v := a.session.View()
	if v.Mode == session.ModeIdle {
		a.renderer.RenderMenu(v)
	} else {
		a.renderer.RenderGame(v, a.colors)
	}
	switch {
	case a.chooser != nil:
		a.renderer.RenderChooser(a.chooser)
	case a.help:
		a.renderer.RenderHelp()
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.session != nil {
		a.session.Close()
	}

	if sp, ok := a.player.(*audio.Speaker); ok {
		sp.Close()
	}

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}

	if a.logCloser != nil {
		if err := a.logCloser.Close(); err != nil {
			a.log.WithError(err).Warn("close log file")
		}
	}
}
