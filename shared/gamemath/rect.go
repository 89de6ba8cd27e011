package gamemath

// Rect is an axis-aligned box in integer pixel coordinates.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int    { return r.X }
func (r Rect) Right() int   { return r.X + r.W }
func (r Rect) Top() int     { return r.Y }
func (r Rect) Bottom() int  { return r.Y + r.H }
func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

func (r *Rect) SetLeft(x int)   { r.X = x }
func (r *Rect) SetRight(x int)  { r.X = x - r.W }
func (r *Rect) SetTop(y int)    { r.Y = y }
func (r *Rect) SetBottom(y int) { r.Y = y - r.H }

// Offset returns a copy moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether the two boxes share interior area. Touching edges
// do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Touches reports whether the two boxes overlap or share an edge.
func (r Rect) Touches(o Rect) bool {
	return r.Left() <= o.Right() && r.Right() >= o.Left() &&
		r.Top() <= o.Bottom() && r.Bottom() >= o.Top()
}

// Vec is a float velocity or displacement in pixels.
type Vec struct {
	X, Y float64
}
