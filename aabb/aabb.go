// Package aabb holds the axis-aligned bounding box geometry shared by every
// entity and by the playfield itself.
package aabb

import "github.com/lguibr/duopong/utils"

// Rect is an axis-aligned box in playfield units. X, Y is the top-left corner.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Edge names one side of a Rect. None is returned by queries that found no
// relevant intersection.
type Edge int

const (
	None Edge = iota
	Left
	Top
	Right
	Bottom
)

func (e Edge) String() string {
	switch e {
	case None:
		return "None"
	case Left:
		return "Left"
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	default:
		return "Edge(?)"
	}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the midpoint of the box (integer division).
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SetCenter moves the box so that its center sits at (x, y). Size is kept.
func (r *Rect) SetCenter(x, y int) {
	r.X = x - r.W/2
	r.Y = y - r.H/2
}

// ContainsPoint reports whether (x, y) lies strictly inside the box.
func (r Rect) ContainsPoint(x, y int) bool {
	return r.X < x && x < r.Right() && r.Y < y && y < r.Bottom()
}

// IsBeyondEdge reports whether inner has reached or crossed outer's boundary on
// the given edge. Touching counts as beyond.
func IsBeyondEdge(inner, outer Rect, edge Edge) bool {
	switch edge {
	case Left:
		return outer.X >= inner.X
	case Top:
		return outer.Y >= inner.Y
	case Right:
		return outer.Right() <= inner.Right()
	case Bottom:
		return outer.Bottom() <= inner.Bottom()
	default:
		return false
	}
}

// IsIntersecting is the inclusive separating-axis test: boxes that share only
// a border still intersect.
func IsIntersecting(a, b Rect) bool {
	overlapX := a.X <= b.Right() && b.X <= a.Right()
	overlapY := a.Y <= b.Bottom() && b.Y <= a.Bottom()
	return overlapX && overlapY
}

// MinkowskiDifference returns the box a - b. The origin lies inside it exactly
// when a and b overlap.
func MinkowskiDifference(a, b Rect) Rect {
	return Rect{
		X: a.X - b.Right(),
		Y: a.Y - b.Bottom(),
		W: a.W + b.W,
		H: a.H + b.H,
	}
}

// GetIntersection returns the edge of least penetration when a collides with
// b, or None. Ties resolve in the order Left, Right, Top, Bottom.
func GetIntersection(a, b Rect) Edge {
	diff := MinkowskiDifference(a, b)
	if !diff.ContainsPoint(0, 0) {
		return None
	}

	left := utils.Abs(diff.X)
	right := utils.Abs(diff.Right())
	top := utils.Abs(diff.Y)
	bottom := utils.Abs(diff.Bottom())

	smallest := left
	for _, d := range [...]int{right, top, bottom} {
		if d < smallest {
			smallest = d
		}
	}

	switch smallest {
	case left:
		return Left
	case right:
		return Right
	case top:
		return Top
	default:
		return Bottom
	}
}
