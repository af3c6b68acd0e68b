package game

import (
	"math"
	"math/rand"

	"github.com/lguibr/duopong/aabb"
	"github.com/lguibr/duopong/utils"
)

type Ball struct {
	Body
	Speed float64 `json:"speed"` // Scalar speed, compounds on every paddle hit

	// Hits counts paddle-face hits and Bounces counts vertical deflections.
	// The game diffs them per frame to emit events.
	Hits    int `json:"hits"`
	Bounces int `json:"bounces"`

	startSpeed float64
	hitFactor  float64
	sizeRatio  int
	rng        *rand.Rand
}

// NewBall builds a ball already configured for field.
func NewBall(cfg utils.Config, field aabb.Rect, rng *rand.Rand) *Ball {
	ball := &Ball{
		startSpeed: cfg.BallStartSpeed,
		hitFactor:  cfg.BallHitSpeedFactor,
		sizeRatio:  cfg.BallSizeRatio,
		rng:        rng,
	}
	ball.Configure(field)
	return ball
}

// Configure resizes the ball to the field, centers it, resets its speed and
// draws a new launch vector.
func (ball *Ball) Configure(field aabb.Rect) {
	size := max(field.W, field.H) / ball.sizeRatio
	ball.Transform.W = size
	ball.Transform.H = size

	cx, cy := field.Center()
	ball.Transform.SetCenter(cx, cy)

	ball.Speed = ball.startSpeed
	vx, vy := utils.NewClampedStochasticVector(ball.rng)
	ball.setScaledVelocity(vx, vy)
}

// Collide reacts to touching other. edge is the side of the ball that was hit.
func (ball *Ball) Collide(other Entity, edge aabb.Edge) {
	switch edge {
	case aabb.Left, aabb.Right:
		ball.collidePaddle(other, edge)
	case aabb.Top:
		ball.HandleCollideTop()
	case aabb.Bottom:
		ball.HandleCollideBottom()
	}
}

// OutOfBounds bounces off the top and bottom of the field. Left and right are
// goals and are judged by the game.
func (ball *Ball) OutOfBounds(edge aabb.Edge) {
	switch edge {
	case aabb.Top:
		ball.HandleCollideTop()
	case aabb.Bottom:
		ball.HandleCollideBottom()
	}
}

func (ball *Ball) collidePaddle(paddle Entity, edge aabb.Edge) {
	ball.Speed *= ball.hitFactor

	vx, vy := ball.BounceVector(paddle.Box())
	ball.setScaledVelocity(vx, vy)

	// Leave the struck paddle whatever the angle says.
	if edge == aabb.Right {
		ball.HandleCollideRight()
	} else {
		ball.HandleCollideLeft()
	}
	ball.Hits++
}

// BounceVector maps where the ball sits along the paddle to an outgoing unit
// vector: the top of the paddle sends it up, the bottom sends it down.
func (ball *Ball) BounceVector(paddle aabb.Rect) (float64, float64) {
	normalized := 0.5
	if paddle.H != 0 {
		normalized = float64(ball.Transform.Y-paddle.Y) / float64(paddle.H)
	}
	phi := utils.DegreesToRadians((normalized - 0.5) * utils.BounceSpreadDegrees)
	return math.Cos(phi), math.Sin(phi)
}

func (ball *Ball) setScaledVelocity(ux, uy float64) {
	limit := utils.MaxVelocityComponent
	ball.SetVelocity(
		utils.SaturatingInt(ux*ball.Speed, limit),
		utils.SaturatingInt(uy*ball.Speed, limit),
	)
}

func (ball *Ball) HandleCollideRight() {
	ball.SetDirection(DirLeft)
}

func (ball *Ball) HandleCollideLeft() {
	ball.SetDirection(DirRight)
}

func (ball *Ball) HandleCollideTop() {
	if ball.SetDirection(DirDown) {
		ball.Bounces++
	}
}

func (ball *Ball) HandleCollideBottom() {
	if ball.SetDirection(DirUp) {
		ball.Bounces++
	}
}
