package game

// Paddle is positioned by its top edge; X never changes.
type Paddle struct {
	X      int
	Top    int
	Width  int
	Height int
}

func NewPaddle(x, top int) Paddle {
	return Paddle{X: x, Top: top, Width: PaddleWidth, Height: PaddleHeight}
}

func (p Paddle) Right() int {
	return p.X + p.Width
}

func (p Paddle) Bottom() int {
	return p.Top + p.Height
}

// ContainsY reports whether y lies within the paddle's vertical span, edges included
func (p Paddle) ContainsY(y int) bool {
	return y >= p.Top && y <= p.Bottom()
}

// UpperHalf reports whether y lies in [Top, Top+Height/2].
func (p Paddle) UpperHalf(y int) bool {
	return y >= p.Top && y <= p.Top+p.Height/2
}

// Clamp keeps the paddle inside the field.
func (p *Paddle) Clamp(f Field) {
	if p.Top < f.Top {
		p.Top = f.Top
	}
	if max := f.MaxPaddleTop(p.Height); p.Top > max {
		p.Top = max
	}
}

// Step moves the paddle by step pixels unless it already sits at the edge it
// is moving toward. Reports whether the paddle moved.
func (p *Paddle) Step(dir Direction, step int, f Field) bool {
	before := p.Top
	switch dir {
	case DirUp:
		if p.Top > f.Top {
			p.Top -= step
		}
	case DirDown:
		if p.Top < f.MaxPaddleTop(p.Height) {
			p.Top += step
		}
	}
	p.Clamp(f)
	return p.Top != before
}

// PlaceAt sets the paddle top to y when the whole paddle fits strictly inside
// the field at that height. Out-of-range positions are ignored.
func (p *Paddle) PlaceAt(y int, f Field) bool {
	if y <= f.Top || y >= f.MaxPaddleTop(p.Height) {
		return false
	}
	p.Top = y
	return true
}

// Follow moves the paddle one step toward target. It never jumps straight to
// target, which keeps the AI beatable.
func (p *Paddle) Follow(target, step int, f Field) {
	switch {
	case p.Top > target && p.Top > f.Top:
		p.Top -= step
	case p.Top < target && p.Top < f.MaxPaddleTop(p.Height):
		p.Top += step
	}
	p.Clamp(f)
}
