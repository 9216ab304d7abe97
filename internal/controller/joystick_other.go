//go:build !linux

package controller

import "github.com/pkg/errors"

// Joystick is only supported on Linux; elsewhere Connect always fails and the
// game runs without a controller.
type Joystick struct {
	path string
}

func NewJoystick(path string) *Joystick {
	if path == "" {
		path = DefaultJoystickPath
	}
	return &Joystick{path: path}
}

func (j *Joystick) Name() string {
	return "joystick " + j.path
}

func (j *Joystick) Connect() error {
	return errors.Errorf("joystick %s: unsupported on this platform", j.path)
}

func (j *Joystick) Disconnect() error {
	return ErrNotConnected
}

func (j *Joystick) Connected() bool {
	return false
}

func (j *Joystick) Poll() (Buttons, error) {
	return Buttons{}, ErrNotConnected
}

func (j *Joystick) SetLEDs(LEDs) error {
	return ErrNotConnected
}

func (j *Joystick) SetRumble(bool) error {
	return ErrNotConnected
}
