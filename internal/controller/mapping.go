package controller

import "github.com/diegok/remotepong/internal/game"

// Background is a cosmetic field color chosen from the controller.
type Background int

const (
	BackgroundUnchanged Background = iota
	BackgroundGold
	BackgroundPink
)

// Actions is what one poll asks the game to do.
type Actions struct {
	Move         game.Direction
	ToggleRumble bool
	LightShow    bool
	Reset        bool
	Background   Background
}

// None reports whether the poll requested nothing.
func (a Actions) None() bool {
	return a == Actions{}
}

// Map translates a button state into game actions. The device can be held
// sideways, so right doubles as up and left as down. When plus and minus are
// both held, minus wins because it is applied last.
func Map(b Buttons) Actions {
	var a Actions

	switch {
	case b.Up || b.Right:
		a.Move = game.DirUp
	case b.Down || b.Left:
		a.Move = game.DirDown
	}

	a.ToggleRumble = b.Primary
	a.LightShow = b.Secondary
	a.Reset = b.Home

	if b.Plus {
		a.Background = BackgroundGold
	}
	if b.Minus {
		a.Background = BackgroundPink
	}
	return a
}
