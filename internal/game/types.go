package game

// Direction is a paddle movement request.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// Side identifies a player. Player 1 is always on the left.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "player 1"
	case SideRight:
		return "player 2"
	}
	return "none"
}

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventWallBounce
	EventScore
	EventWin
)

func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddle-hit"
	case EventWallBounce:
		return "wall-bounce"
	case EventScore:
		return "score"
	case EventWin:
		return "win"
	}
	return "unknown"
}

// Event is reported by Tick. Side is the paddle that was hit, the side that
// scored, or the winner, depending on Kind.
type Event struct {
	Kind EventKind
	Side Side
}
