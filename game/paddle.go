// File: game/paddle.go
package game

import (
	"github.com/lguibr/duopong/aabb"
	"github.com/lguibr/duopong/utils"
)

// Side is the field edge a paddle defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

type Paddle struct {
	Body
	Side  Side `json:"side"`
	Speed int  `json:"speed"` // Units per second while steering

	fieldRatio int
	field      aabb.Rect
}

func NewPaddle(cfg utils.Config, field aabb.Rect, side Side) *Paddle {
	paddle := &Paddle{
		Body: Body{
			Transform: aabb.Rect{W: cfg.PaddleWidth, H: cfg.PaddleHeight},
		},
		Side:       side,
		Speed:      cfg.PaddleSpeed,
		fieldRatio: cfg.PaddleFieldRatio,
	}
	paddle.Configure(field)
	return paddle
}

// Section is the vertical slice of the field the paddle is centered in.
func (paddle *Paddle) Section() aabb.Rect {
	width := paddle.field.W / paddle.fieldRatio
	section := aabb.Rect{X: paddle.field.X, Y: paddle.field.Y, W: width, H: paddle.field.H}
	if paddle.Side == SideRight {
		section.X = paddle.field.Right() - width
	}
	return section
}

// Configure centers the paddle in its section and stops it. Size is fixed.
func (paddle *Paddle) Configure(field aabb.Rect) {
	paddle.field = field
	cx, cy := paddle.Section().Center()
	paddle.Transform.SetCenter(cx, cy)
	paddle.SetVelocity(0, 0)
}

// Steer sets the vertical velocity from the two move intents. Both or
// neither held means stop.
func (paddle *Paddle) Steer(up, down bool) {
	switch {
	case up && !down:
		paddle.Vy = -paddle.Speed
	case down && !up:
		paddle.Vy = paddle.Speed
	default:
		paddle.Vy = 0
	}
}

// OutOfBounds seats the paddle on the top or bottom edge and cancels any
// motion further out.
func (paddle *Paddle) OutOfBounds(edge aabb.Edge) {
	switch edge {
	case aabb.Top:
		paddle.Transform.Y = paddle.field.Y
		if paddle.Vy < 0 {
			paddle.Vy = 0
		}
	case aabb.Bottom:
		paddle.Transform.Y = paddle.field.Bottom() - paddle.Transform.H
		if paddle.Vy > 0 {
			paddle.Vy = 0
		}
	}
}
