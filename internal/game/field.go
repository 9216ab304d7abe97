package game

// Field geometry and motion constants, in pixels relative to the field origin.
const (
	FieldWidth  = 720
	FieldHeight = 280

	BallSize     = 15
	PaddleWidth  = 15
	PaddleHeight = 60
	LeftPaddleX  = 20
	RightPaddleX = 685

	BallSpeed     = 5 // vertical speed set by any deflection
	InitialSpeedX = 5

	MinimumHeight   = 5   // ceiling
	MaximumHeight   = 250 // floor, measured from the field top
	ScoringMargin   = 20
	RightWallOffset = 705

	P1PaddleSpeed = 25
	AIPaddleSpeed = 5
	WinningScore  = 7
)

// Field is the playable rectangle. Only its origin and size matter to the engine.
type Field struct {
	Left, Top     int
	Width, Height int
}

// DefaultField returns the standard 720x280 field at the origin.
func DefaultField() Field {
	return Field{Width: FieldWidth, Height: FieldHeight}
}

// BallHome is where the ball is served from.
func (f Field) BallHome() (x, y int) {
	return f.Left + (f.Width-BallSize)/2, f.Top + (f.Height-BallSize)/2
}

// PaddleHome is the top of a centered paddle.
func (f Field) PaddleHome() int {
	return f.Top + (f.Height-PaddleHeight)/2
}

func (f Field) CeilingY() int {
	return f.Top + MinimumHeight
}

func (f Field) FloorY() int {
	return f.Top + MaximumHeight
}

// LeftGoalX is the x at or beyond which the ball counts as a point for player 2.
func (f Field) LeftGoalX() int {
	return f.Left - ScoringMargin
}

// RightGoalX is the x at or beyond which the ball counts as a point for player 1.
func (f Field) RightGoalX() int {
	return f.Left + RightWallOffset
}

// MaxPaddleTop is the lowest a paddle top may go and still fit inside the field.
func (f Field) MaxPaddleTop(height int) int {
	return f.Top + f.Height - height
}
