package controller

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// DefaultJoystickPath is the first Linux joystick device.
const DefaultJoystickPath = "/dev/input/js0"

// Linux joystick API event layout (struct js_event).
const (
	jsEventSize   = 8
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80

	axisThreshold = 16000
)

// Button and axis numbers for the common xpad layout.
const (
	jsButtonA     = 0
	jsButtonB     = 1
	jsButtonBack  = 6
	jsButtonStart = 7
	jsButtonGuide = 8

	jsAxisX    = 0
	jsAxisY    = 1
	jsAxisHatX = 6
	jsAxisHatY = 7
)

type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

func decodeEvent(buf []byte) (jsEvent, error) {
	if len(buf) < jsEventSize {
		return jsEvent{}, errors.Errorf("short joystick event: %d bytes", len(buf))
	}
	return jsEvent{
		Time:   binary.LittleEndian.Uint32(buf[0:4]),
		Value:  int16(binary.LittleEndian.Uint16(buf[4:6])),
		Type:   buf[6],
		Number: buf[7],
	}, nil
}

// joystickState accumulates events into the current button and axis values.
type joystickState struct {
	buttons map[uint8]bool
	axes    map[uint8]int16
}

func newJoystickState() *joystickState {
	return &joystickState{
		buttons: make(map[uint8]bool),
		axes:    make(map[uint8]int16),
	}
}

func (s *joystickState) apply(ev jsEvent) {
	switch ev.Type &^ jsEventInit {
	case jsEventButton:
		s.buttons[ev.Number] = ev.Value != 0
	case jsEventAxis:
		s.axes[ev.Number] = ev.Value
	}
}

func (s *joystickState) snapshot() Buttons {
	x := int(s.axes[jsAxisX]) + int(s.axes[jsAxisHatX])
	y := int(s.axes[jsAxisY]) + int(s.axes[jsAxisHatY])
	return Buttons{
		Up:        y <= -axisThreshold,
		Down:      y >= axisThreshold,
		Left:      x <= -axisThreshold,
		Right:     x >= axisThreshold,
		Primary:   s.buttons[jsButtonA],
		Secondary: s.buttons[jsButtonB],
		Home:      s.buttons[jsButtonGuide],
		Plus:      s.buttons[jsButtonStart],
		Minus:     s.buttons[jsButtonBack],
	}
}
