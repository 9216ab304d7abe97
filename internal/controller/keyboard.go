package controller

import "github.com/gdamore/tcell/v2"

// Keyboard emulates the device from terminal keys. Presses are latched until
// the next Poll, so a tap is seen exactly once.
//
//	i/k      up/down      j/l   left/right
//	a        primary      b     secondary
//	h        home         +/-   plus/minus
type Keyboard struct {
	pending   Buttons
	connected bool
	leds      LEDs
	rumble    bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Name() string {
	return "keyboard"
}

func (k *Keyboard) Connect() error {
	k.connected = true
	return nil
}

func (k *Keyboard) Disconnect() error {
	if !k.connected {
		return ErrNotConnected
	}
	k.connected = false
	k.pending = Buttons{}
	return nil
}

func (k *Keyboard) Connected() bool {
	return k.connected
}

// Press records a key. It returns false for keys the emulator does not use.
func (k *Keyboard) Press(key tcell.Key, r rune) bool {
	if !k.connected || key != tcell.KeyRune {
		return false
	}
	switch r {
	case 'i', 'I':
		k.pending.Up = true
	case 'k', 'K':
		k.pending.Down = true
	case 'j', 'J':
		k.pending.Left = true
	case 'l', 'L':
		k.pending.Right = true
	case 'a', 'A':
		k.pending.Primary = true
	case 'b', 'B':
		k.pending.Secondary = true
	case 'h', 'H':
		k.pending.Home = true
	case '+', '=':
		k.pending.Plus = true
	case '-', '_':
		k.pending.Minus = true
	default:
		return false
	}
	return true
}

// Flush drops presses that have not been polled yet.
func (k *Keyboard) Flush() {
	k.pending = Buttons{}
}

func (k *Keyboard) Poll() (Buttons, error) {
	if !k.connected {
		return Buttons{}, ErrNotConnected
	}
	b := k.pending
	k.pending = Buttons{}
	return b, nil
}

func (k *Keyboard) SetLEDs(l LEDs) error {
	if !k.connected {
		return ErrNotConnected
	}
	k.leds = l
	return nil
}

func (k *Keyboard) SetRumble(on bool) error {
	if !k.connected {
		return ErrNotConnected
	}
	k.rumble = on
	return nil
}

// LEDs returns the last indicator state, for display.
func (k *Keyboard) LEDs() LEDs {
	return k.leds
}

func (k *Keyboard) Rumbling() bool {
	return k.rumble
}
