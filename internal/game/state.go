package game

// State is the complete gameplay state. It is a plain value: Tick and StepAI
// take a State and return the next one, so the engine runs without any UI.
type State struct {
	Field       Field
	Ball        Ball
	Left        Paddle
	Right       Paddle
	LeftScore   int
	RightScore  int
	PointsToWin int
	Tick        int
}

// NewState creates a state on the default field.
func NewState(pointsToWin int) State {
	return NewStateOnField(DefaultField(), pointsToWin)
}

// NewStateOnField creates a state with ball and paddles at their home positions.
func NewStateOnField(f Field, pointsToWin int) State {
	if pointsToWin < 1 {
		pointsToWin = WinningScore
	}
	s := State{
		Field:       f,
		PointsToWin: pointsToWin,
	}
	s.Reset()
	return s
}

// Reset restores scores, positions and velocities to their initial values.
func (s *State) Reset() {
	x, y := s.Field.BallHome()
	s.Ball = NewBall(x, y)
	s.Left = NewPaddle(s.Field.Left+LeftPaddleX, s.Field.PaddleHome())
	s.Right = NewPaddle(s.Field.Left+RightPaddleX, s.Field.PaddleHome())
	s.LeftScore = 0
	s.RightScore = 0
}

// Winner returns the side that has reached the winning score, if any.
func (s State) Winner() Side {
	if s.LeftScore >= s.PointsToWin {
		return SideLeft
	}
	if s.RightScore >= s.PointsToWin {
		return SideRight
	}
	return SideNone
}

// check inspects the state and reports an event when it fires.
type check func(s *State) (Event, bool)

// collisionChecks run in priority order; the first one that fires ends the
// cascade for that tick.
var collisionChecks = []check{
	func(s *State) (Event, bool) {
		return Event{Kind: EventPaddleHit, Side: SideLeft}, s.HitLeftPaddle()
	},
	func(s *State) (Event, bool) {
		return Event{Kind: EventPaddleHit, Side: SideRight}, s.HitRightPaddle()
	},
	func(s *State) (Event, bool) {
		return Event{Kind: EventWallBounce}, s.HitFloorOrCeiling()
	},
	func(s *State) (Event, bool) {
		scorer := s.HitGoal()
		return Event{Kind: EventScore, Side: scorer}, scorer != SideNone
	},
}

// Tick advances the game by one fixed step.
//
// A pending win is handled first: the state is reset and a single EventWin is
// returned. Otherwise the collision checks run in order until one fires, and
// then the ball moves.
func Tick(s State) (State, []Event) {
	s.Tick++

	if winner := s.Winner(); winner != SideNone {
		s.Reset()
		return s, []Event{{Kind: EventWin, Side: winner}}
	}

	var events []Event
	for _, c := range collisionChecks {
		if ev, hit := c(&s); hit {
			events = append(events, ev)
			break
		}
	}

	s.Ball.Move()
	return s, events
}

// HitLeftPaddle bounces the ball off player 1's paddle when its left edge has
// reached the paddle's right edge within the paddle's span. The direction of
// travel is not checked.
func (s *State) HitLeftPaddle() bool {
	b := &s.Ball
	p := s.Left
	if b.Left() > p.Right() || !p.ContainsY(b.Y) {
		return false
	}

	s.deflect(p)
	b.X++
	b.Accelerate()
	return true
}

// HitRightPaddle is the mirror of HitLeftPaddle for player 2.
func (s *State) HitRightPaddle() bool {
	b := &s.Ball
	p := s.Right
	if b.Right() < p.X || !p.ContainsY(b.Y) {
		return false
	}

	s.deflect(p)
	b.X--
	b.Accelerate()
	return true
}

// deflect reverses horizontal travel and angles the ball by which half of the
// paddle it met.
func (s *State) deflect(p Paddle) {
	b := &s.Ball
	b.VX = -b.VX
	if p.UpperHalf(b.Y) {
		b.VY = -BallSpeed
	} else {
		b.VY = BallSpeed
	}
	b.Deflected = true
}

// HitFloorOrCeiling sends the ball back into the field vertically. It does not
// set Deflected, so before the first paddle hit of a serve the new VY has no
// effect on position.
func (s *State) HitFloorOrCeiling() bool {
	switch {
	case s.Ball.Y <= s.Field.CeilingY():
		s.Ball.VY = BallSpeed
		return true
	case s.Ball.Y >= s.Field.FloorY():
		s.Ball.VY = -BallSpeed
		return true
	}
	return false
}

// HitGoal awards a point when the ball has passed a scoring line and serves
// the ball again. It returns the side that scored.
func (s *State) HitGoal() Side {
	var scorer Side
	switch {
	case s.Ball.X <= s.Field.LeftGoalX():
		s.RightScore++
		scorer = SideRight
	case s.Ball.X >= s.Field.RightGoalX():
		s.LeftScore++
		scorer = SideLeft
	default:
		return SideNone
	}

	s.Ball.Serve(s.Field.BallHome())
	return scorer
}

// StepAI moves player 2's paddle one AI step toward the ball.
func StepAI(s State) State {
	s.Right.Follow(s.Ball.Y, AIPaddleSpeed, s.Field)
	return s
}

// InEnvelope reports whether the ball and both paddles are where a tick can
// leave them: paddles inside the field and the ball no more than one vertical
// step outside it. A ball caught behind a paddle rides it to the field edge,
// which is why the bound is the field and not the floor and ceiling lines.
// Horizontally the ball only leaves the field past a scoring line, where the
// point is awarded on the first tick no paddle or wall check fires.
func (s State) InEnvelope() bool {
	f := s.Field
	if s.Ball.Y < f.Top-BallSpeed || s.Ball.Y > f.Top+f.Height+BallSpeed {
		return false
	}
	for _, p := range []Paddle{s.Left, s.Right} {
		if p.Top < f.Top || p.Top > f.MaxPaddleTop(p.Height) {
			return false
		}
	}
	return true
}
