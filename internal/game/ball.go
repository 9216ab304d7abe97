package game

// Ball position is its top-left corner. Deflected gates vertical motion: until
// a paddle has been hit since the last serve, VY is not applied.
type Ball struct {
	X, Y      int
	VX, VY    int
	Deflected bool
}

func NewBall(x, y int) Ball {
	return Ball{X: x, Y: y, VX: InitialSpeedX}
}

// Move advances the ball by one tick of velocity
func (b *Ball) Move() {
	if b.Deflected {
		b.Y += b.VY
	}
	b.X += b.VX
}

// Left returns the leading edge when travelling toward player 1.
func (b Ball) Left() int {
	return b.X
}

// Right returns the leading edge when travelling toward player 2.
func (b Ball) Right() int {
	return b.X + BallSize
}

// Speed returns the horizontal speed magnitude
func (b Ball) Speed() int {
	if b.VX < 0 {
		return -b.VX
	}
	return b.VX
}

// Accelerate grows the horizontal speed by one in its current direction.
func (b *Ball) Accelerate() {
	if b.VX > 0 {
		b.VX++
	} else {
		b.VX--
	}
}

// Serve puts the ball back at (x, y) with the initial horizontal speed,
// keeping the direction it was travelling in.
func (b *Ball) Serve(x, y int) {
	b.X = x
	b.Y = y
	b.VY = 0
	b.Deflected = false
	if b.VX > 0 {
		b.VX = InitialSpeedX
	} else {
		b.VX = -InitialSpeedX
	}
}
