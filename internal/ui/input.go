package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/remotepong/internal/game"
)

// Action is a menu-level command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionSinglePlayer
	ActionTwoPlayer
	ActionNewGame
	ActionColors
	ActionHelp
)

// KeyToDirection converts a key event to a movement direction
// For Pong, only up/down movement is allowed
func KeyToDirection(key tcell.Key, r rune) game.Direction {
	switch key {
	case tcell.KeyUp:
		return game.DirUp
	case tcell.KeyDown:
		return game.DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.DirUp
		case 's', 'S':
			return game.DirDown
		}
	}
	return game.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// KeyToAction maps the menu shortcuts. They work in every mode; the
// session decides whether the action applies.
func KeyToAction(key tcell.Key, r rune) Action {
	if key == tcell.KeyF1 {
		return ActionHelp
	}
	if key != tcell.KeyRune {
		return ActionNone
	}
	switch r {
	case '1':
		return ActionSinglePlayer
	case '2':
		return ActionTwoPlayer
	case 'n', 'N':
		return ActionNewGame
	case 'c', 'C':
		return ActionColors
	case '?':
		return ActionHelp
	}
	return ActionNone
}
