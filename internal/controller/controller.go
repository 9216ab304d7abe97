// Package controller abstracts the optional external input device used by
// player 1: a paddle-and-buttons peripheral with four indicator lights and a
// rumble motor.
package controller

import (
	"github.com/pkg/errors"
)

// ErrNotConnected is returned by device operations after Disconnect or before
// a successful Connect.
var ErrNotConnected = errors.New("controller not connected")

// Buttons is the discrete input state reported by a poll.
type Buttons struct {
	Up, Down, Left, Right bool
	Primary, Secondary    bool
	Home, Plus, Minus     bool
}

// Any reports whether any button is held.
func (b Buttons) Any() bool {
	return b != Buttons{}
}

// LEDs is the state of the four indicator lights, player 1 first.
type LEDs [4]bool

// PlayerOne lights only the first indicator.
var PlayerOne = LEDs{true, false, false, false}

// LightShow is the pattern played when the secondary button is held.
var LightShow = []LEDs{
	{false, true, false, false},
	{false, false, true, false},
	{false, false, false, true},
	{false, false, true, false},
	{false, true, false, false},
	{true, false, false, false},
}

// Device is an input source. Implementations need not be safe for concurrent
// use; the game calls them from a single goroutine.
type Device interface {
	Name() string
	Connect() error
	Disconnect() error
	Connected() bool
	Poll() (Buttons, error)
	SetLEDs(LEDs) error
	SetRumble(on bool) error
}

// Flusher is implemented by devices that latch input between polls.
type Flusher interface {
	// Flush drops input that has not been polled yet.
	Flush()
}

// Device kinds accepted by New.
const (
	KindNone     = "none"
	KindKeyboard = "keyboard"
	KindJoystick = "joystick"
)

// New builds an unconnected device of the given kind. KindNone yields nil.
func New(kind, path string) (Device, error) {
	switch kind {
	case KindNone, "":
		return nil, nil
	case KindKeyboard:
		return NewKeyboard(), nil
	case KindJoystick:
		return NewJoystick(path), nil
	}
	return nil, errors.Errorf("unknown controller kind %q", kind)
}
