//go:build linux

package controller

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Joystick reads a Linux joystick device without blocking. The device has no
// lights or motor; those outputs are accepted and remembered.
type Joystick struct {
	path   string
	fd     int
	open   bool
	state  *joystickState
	leds   LEDs
	rumble bool
}

func NewJoystick(path string) *Joystick {
	if path == "" {
		path = DefaultJoystickPath
	}
	return &Joystick{path: path, fd: -1}
}

func (j *Joystick) Name() string {
	return "joystick " + j.path
}

func (j *Joystick) Connect() error {
	if j.open {
		return nil
	}
	fd, err := unix.Open(j.path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return errors.Wrapf(err, "open %s", j.path)
	}
	j.fd = fd
	j.open = true
	j.state = newJoystickState()
	return nil
}

func (j *Joystick) Disconnect() error {
	if !j.open {
		return ErrNotConnected
	}
	j.open = false
	err := unix.Close(j.fd)
	j.fd = -1
	return errors.Wrapf(err, "close %s", j.path)
}

func (j *Joystick) Connected() bool {
	return j.open
}

// Poll drains every pending event and returns the resulting state.
func (j *Joystick) Poll() (Buttons, error) {
	if !j.open {
		return Buttons{}, ErrNotConnected
	}

	buf := make([]byte, jsEventSize*32)
	for {
		n, err := unix.Read(j.fd, buf)
		if err == unix.EAGAIN || err == unix.EINTR {
			break
		}
		if err != nil {
			return Buttons{}, errors.Wrapf(err, "read %s", j.path)
		}
		if n == 0 {
			return Buttons{}, errors.Errorf("%s: device closed", j.path)
		}
		for off := 0; off+jsEventSize <= n; off += jsEventSize {
			ev, err := decodeEvent(buf[off : off+jsEventSize])
			if err != nil {
				return Buttons{}, err
			}
			j.state.apply(ev)
		}
	}
	return j.state.snapshot(), nil
}

func (j *Joystick) SetLEDs(l LEDs) error {
	if !j.open {
		return ErrNotConnected
	}
	j.leds = l
	return nil
}

func (j *Joystick) SetRumble(on bool) error {
	if !j.open {
		return ErrNotConnected
	}
	j.rumble = on
	return nil
}
