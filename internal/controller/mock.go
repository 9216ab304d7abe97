package controller

import "github.com/pkg/errors"

// Mock is a scripted device. Each Poll returns the next queued state, then
// repeats the last one. Outputs are recorded for inspection.
type Mock struct {
	ConnectErr error
	PollErr    error

	queue     []Buttons
	last      Buttons
	connected bool

	LEDHistory []LEDs
	Rumbling   bool
	Polls      int
}

func NewMock(states ...Buttons) *Mock {
	return &Mock{queue: states}
}

func (m *Mock) Name() string {
	return "mock"
}

// Queue appends states to be returned by later polls.
func (m *Mock) Queue(states ...Buttons) {
	m.queue = append(m.queue, states...)
}

func (m *Mock) Connect() error {
	if m.ConnectErr != nil {
		return m.ConnectErr
	}
	m.connected = true
	return nil
}

func (m *Mock) Disconnect() error {
	if !m.connected {
		return ErrNotConnected
	}
	m.connected = false
	return nil
}

func (m *Mock) Connected() bool {
	return m.connected
}

func (m *Mock) Poll() (Buttons, error) {
	if !m.connected {
		return Buttons{}, ErrNotConnected
	}
	m.Polls++
	if m.PollErr != nil {
		return Buttons{}, errors.Wrap(m.PollErr, "mock poll")
	}
	if len(m.queue) > 0 {
		m.last = m.queue[0]
		m.queue = m.queue[1:]
	}
	return m.last, nil
}

func (m *Mock) SetLEDs(l LEDs) error {
	if !m.connected {
		return ErrNotConnected
	}
	m.LEDHistory = append(m.LEDHistory, l)
	return nil
}

func (m *Mock) SetRumble(on bool) error {
	if !m.connected {
		return ErrNotConnected
	}
	m.Rumbling = on
	return nil
}

// LastLEDs returns the most recent indicator state sent to the device.
func (m *Mock) LastLEDs() LEDs {
	if len(m.LEDHistory) == 0 {
		return LEDs{}
	}
	return m.LEDHistory[len(m.LEDHistory)-1]
}
