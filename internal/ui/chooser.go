package ui

import "github.com/gdamore/tcell/v2"

// Target is the sprite the chooser is editing.
type Target int

const (
	TargetBall Target = iota
	TargetLeft
	TargetRight
	targetCount
)

func (t Target) String() string {
	switch t {
	case TargetLeft:
		return "player 1 paddle"
	case TargetRight:
		return "player 2 paddle"
	}
	return "ball"
}

// ChooserResult reports what a key did to an open chooser.
type ChooserResult int

const (
	ChooserOpen ChooserResult = iota
	ChooserApplied
	ChooserCancelled
)

// Chooser is the modal color picker. It edits a draft copy so that
// cancelling leaves the caller's colors untouched.
type Chooser struct {
	target Target
	draft  Colors
}

func NewChooser(current Colors) *Chooser {
	return &Chooser{draft: current}
}

func (c *Chooser) Target() Target {
	return c.target
}

// Colors returns the draft, which only becomes real on ChooserApplied.
func (c *Chooser) Colors() Colors {
	return c.draft
}

// Selected is the palette index currently assigned to the target.
func (c *Chooser) Selected() int {
	return *c.slot()
}

func (c *Chooser) slot() *int {
	switch c.target {
	case TargetLeft:
		return &c.draft.Left
	case TargetRight:
		return &c.draft.Right
	}
	return &c.draft.Ball
}

func (c *Chooser) HandleKey(key tcell.Key, r rune) ChooserResult {
	switch key {
	case tcell.KeyEnter:
		return ChooserApplied
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ChooserCancelled
	case tcell.KeyTab, tcell.KeyRight:
		c.target = (c.target + 1) % targetCount
	case tcell.KeyBacktab, tcell.KeyLeft:
		c.target = (c.target + targetCount - 1) % targetCount
	case tcell.KeyDown:
		*c.slot() = (*c.slot() + 1) % len(Palette)
	case tcell.KeyUp:
		*c.slot() = (*c.slot() + len(Palette) - 1) % len(Palette)
	case tcell.KeyRune:
		if r >= '1' && int(r-'1') < len(Palette) {
			*c.slot() = int(r - '1')
		}
	}
	return ChooserOpen
}
