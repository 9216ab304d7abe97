// Package session runs one game window's worth of state: the current match,
// which player 2 is in use, the timers that drive play and the optional
// controller. All methods must be called from the same goroutine.
package session

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/diegok/remotepong/internal/audio"
	"github.com/diegok/remotepong/internal/controller"
	"github.com/diegok/remotepong/internal/game"
	"github.com/diegok/remotepong/internal/scheduler"
)

// Mode selects who controls player 2.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSinglePlayer
	ModeTwoPlayer
)

func (m Mode) String() string {
	switch m {
	case ModeSinglePlayer:
		return "single-player"
	case ModeTwoPlayer:
		return "two-player"
	}
	return "idle"
}

// Background is the cosmetic field color.
type Background int

const (
	BackgroundDefault Background = iota
	BackgroundGold
	BackgroundPink
)

// Pause records which timers were running when play was suspended.
type Pause struct {
	BallRunning bool
	AIRunning   bool
}

// Options are the timing and scoring settings.
type Options struct {
	PointsToWin        int
	BallInterval       time.Duration
	AIInterval         time.Duration
	ControllerInterval time.Duration
}

// View is a read-only snapshot for rendering.
type View struct {
	State               game.State
	Mode                Mode
	WinsVsAI            int
	LastWinner          game.Side
	Background          Background
	Notice              string
	Controller          string
	ControllerConnected bool
	Rumble              bool
	Paused              bool
}

// Session owns the game state and everything that mutates it.
type Session struct {
	state      game.State
	mode       Mode
	winsVsAI   int
	lastWinner game.Side
	background Background
	notice     string
	paused     bool

	sched           *scheduler.Scheduler
	ballTimer       *scheduler.Timer
	aiTimer         *scheduler.Timer
	controllerTimer *scheduler.Timer

	device controller.Device
	rumble bool

	player audio.Player
	log    *logrus.Entry
}

// New creates an idle session and registers its timers on sched. A non-nil
// device is connected immediately; if that fails the session carries on
// without it and Notice explains why.
func New(opts Options, sched *scheduler.Scheduler, device controller.Device, player audio.Player, log *logrus.Entry) *Session {
	if player == nil {
		player = audio.Silent{}
	}
	s := &Session{
		state:  game.NewState(opts.PointsToWin),
		sched:  sched,
		player: player,
		log:    log,
	}

	s.ballTimer = sched.Add("ball", opts.BallInterval, s.tickBall)
	s.aiTimer = sched.Add("ai", opts.AIInterval, s.tickAI)
	s.controllerTimer = sched.Add("controller", opts.ControllerInterval, s.pollController)

	if device != nil {
		s.connect(device)
	}
	return s
}

func (s *Session) connect(device controller.Device) {
	log := s.log.WithField("controller", device.Name())
	if err := device.Connect(); err != nil {
		log.WithError(err).Warn("controller unavailable, continuing without it")
		s.notice = "Unable to connect to the controller. Is one on?"
		return
	}
	if err := device.SetLEDs(controller.PlayerOne); err != nil {
		log.WithError(err).Debug("set LEDs")
	}
	s.device = device
	log.Info("controller connected")
}

// StartSinglePlayer begins a match against the AI.
func (s *Session) StartSinglePlayer() bool {
	if !s.start(ModeSinglePlayer) {
		return false
	}
	s.sched.Enable(s.aiTimer)
	return true
}

// StartTwoPlayer begins a match with player 2 on the mouse.
func (s *Session) StartTwoPlayer() bool {
	return s.start(ModeTwoPlayer)
}

// start is a no-op while a match is already running.
func (s *Session) start(mode Mode) bool {
	if s.mode != ModeIdle {
		return false
	}
	s.mode = mode
	s.notice = ""
	s.lastWinner = game.SideNone
	if s.ControllerConnected() {
		// presses latched on the menu belong to no game
		if f, ok := s.device.(controller.Flusher); ok {
			f.Flush()
		}
		s.sched.Enable(s.controllerTimer)
	}
	s.sched.Enable(s.ballTimer)
	s.log.WithField("mode", mode.String()).Info("game started")
	return true
}

// Reset stops play and returns everything but the AI win count to its
// initial state.
func (s *Session) Reset() {
	s.sched.Disable(s.ballTimer)
	s.sched.Disable(s.controllerTimer)
	if s.mode == ModeSinglePlayer {
		s.sched.Disable(s.aiTimer)
	}
	s.state.Reset()
	s.background = BackgroundDefault
	s.mode = ModeIdle
	s.paused = false
	s.log.Debug("game reset")
}

// MovePlayer1 moves the left paddle one keyboard step.
func (s *Session) MovePlayer1(dir game.Direction) bool {
	if s.mode == ModeIdle || s.paused {
		return false
	}
	return s.state.Left.Step(dir, game.P1PaddleSpeed, s.state.Field)
}

// PointerMove places player 2's paddle at y when player 2 is on the mouse and
// the ball is in play.
func (s *Session) PointerMove(y int) bool {
	if s.mode != ModeTwoPlayer || !s.ballTimer.Enabled() {
		return false
	}
	return s.state.Right.PlaceAt(y, s.state.Field)
}

// Pause suspends the ball and AI timers for a modal choice.
func (s *Session) Pause() Pause {
	p := Pause{
		BallRunning: s.ballTimer.Enabled(),
		AIRunning:   s.aiTimer.Enabled(),
	}
	s.sched.Disable(s.ballTimer)
	s.sched.Disable(s.aiTimer)
	s.paused = p.BallRunning || p.AIRunning
	return p
}

// Resume restarts exactly the timers recorded by Pause. A game that was reset
// in the meantime stays stopped.
func (s *Session) Resume(p Pause) {
	s.paused = false
	if s.mode == ModeIdle {
		return
	}
	if p.BallRunning {
		s.sched.Enable(s.ballTimer)
	}
	if p.AIRunning {
		s.sched.Enable(s.aiTimer)
	}
}

func (s *Session) tickBall() {
	next, events := game.Tick(s.state)
	s.state = next

	for _, ev := range events {
		switch ev.Kind {
		case game.EventPaddleHit, game.EventWallBounce:
			s.player.Play(audio.CuePaddleHit)
		case game.EventScore:
			s.player.Play(audio.CueScore)
			s.log.WithFields(logrus.Fields{
				"scorer": ev.Side.String(),
				"p1":     s.state.LeftScore,
				"p2":     s.state.RightScore,
			}).Info("point scored")
		case game.EventWin:
			s.win(ev.Side)
		}
	}
}

func (s *Session) win(winner game.Side) {
	if s.mode == ModeSinglePlayer && winner == game.SideLeft {
		s.winsVsAI++
	}
	s.lastWinner = winner
	s.Reset()
	s.player.Play(audio.CueVictory)
	s.log.WithFields(logrus.Fields{
		"winner":     winner.String(),
		"wins_vs_ai": s.winsVsAI,
	}).Info("game over")
}

func (s *Session) tickAI() {
	s.state = game.StepAI(s.state)
}

func (s *Session) pollController() {
	if !s.ControllerConnected() {
		return
	}

	buttons, err := s.device.Poll()
	if err != nil {
		s.log.WithError(err).Error("controller lost")
		s.dropController()
		return
	}

	acts := controller.Map(buttons)
	if acts.Move != game.DirNone {
		s.state.Left.Step(acts.Move, game.P1PaddleSpeed, s.state.Field)
	}
	if acts.ToggleRumble {
		s.rumble = !s.rumble
		s.output(s.device.SetRumble(s.rumble))
	}
	if acts.LightShow {
		for _, leds := range controller.LightShow {
			s.output(s.device.SetLEDs(leds))
		}
	}
	if acts.Reset {
		s.Reset()
	}
	switch acts.Background {
	case controller.BackgroundGold:
		s.background = BackgroundGold
	case controller.BackgroundPink:
		s.background = BackgroundPink
	}
}

// output logs a failed fire-and-forget write to the controller.
func (s *Session) output(err error) {
	if err != nil {
		s.log.WithError(err).Debug("controller output")
	}
}

func (s *Session) dropController() {
	s.sched.Disable(s.controllerTimer)
	s.device = nil
	s.rumble = false
}

// Close puts the controller in a neutral state and disconnects it. The
// session must not be used afterwards.
func (s *Session) Close() {
	s.sched.Disable(s.ballTimer)
	s.sched.Disable(s.aiTimer)
	s.sched.Disable(s.controllerTimer)
	if !s.ControllerConnected() {
		return
	}
	s.output(s.device.SetLEDs(controller.LEDs{}))
	s.output(s.device.SetRumble(false))
	if err := s.device.Disconnect(); err != nil {
		s.log.WithError(err).Warn("controller disconnect")
	}
	s.device = nil
	s.rumble = false
	s.log.Info("controller disconnected")
}

func (s *Session) ControllerConnected() bool {
	return s.device != nil && s.device.Connected()
}

func (s *Session) State() game.State {
	return s.state
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) WinsVsAI() int {
	return s.winsVsAI
}

// Running reports which timers are enabled.
func (s *Session) Running() (ball, ai, ctrl bool) {
	return s.ballTimer.Enabled(), s.aiTimer.Enabled(), s.controllerTimer.Enabled()
}

// View returns a snapshot for the renderer.
func (s *Session) View() View {
	v := View{
		State:               s.state,
		Mode:                s.mode,
		WinsVsAI:            s.winsVsAI,
		LastWinner:          s.lastWinner,
		Background:          s.background,
		Notice:              s.notice,
		ControllerConnected: s.ControllerConnected(),
		Rumble:              s.rumble,
		Paused:              s.paused,
	}
	if s.device != nil {
		v.Controller = s.device.Name()
	}
	return v
}
