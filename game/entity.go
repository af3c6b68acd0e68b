// File: game/entity.go
package game

import (
	"github.com/lguibr/duopong/aabb"
	"github.com/lguibr/duopong/utils"
)

// Direction names the velocity sign SetDirection forces.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Entity is anything the engine moves and draws.
type Entity interface {
	Box() aabb.Rect
	Update(delta float64)
}

// Collider is implemented by entities that react to touching another entity.
// edge is the side of the receiver that was struck.
type Collider interface {
	Collide(other Entity, edge aabb.Edge)
}

// BoundsReactor is implemented by entities that react to reaching the field
// boundary.
type BoundsReactor interface {
	OutOfBounds(edge aabb.Edge)
}

// Body is the shared transform and integer velocity of every entity.
type Body struct {
	Transform aabb.Rect `json:"transform"`
	Vx        int       `json:"vx"`
	Vy        int       `json:"vy"`
}

func (b *Body) Box() aabb.Rect { return b.Transform }

func (b *Body) Velocity() (int, int) { return b.Vx, b.Vy }

// SetVelocity stores the components, saturated to MaxVelocityComponent.
func (b *Body) SetVelocity(vx, vy int) {
	limit := utils.MaxVelocityComponent
	b.Vx = utils.Clamp(vx, -limit, limit)
	b.Vy = utils.Clamp(vy, -limit, limit)
}

// SetDirection forces the sign of one velocity axis, keeping its magnitude and
// leaving the other axis alone. It reports whether the velocity changed.
func (b *Body) SetDirection(d Direction) bool {
	vx, vy := b.Vx, b.Vy
	switch d {
	case DirLeft:
		b.Vx = -utils.Abs(b.Vx)
	case DirRight:
		b.Vx = utils.Abs(b.Vx)
	case DirUp:
		b.Vy = -utils.Abs(b.Vy)
	case DirDown:
		b.Vy = utils.Abs(b.Vy)
	}
	return vx != b.Vx || vy != b.Vy
}

// Update integrates position, truncating the per-frame step toward zero.
func (b *Body) Update(delta float64) {
	limit := utils.MaxVelocityComponent
	b.Transform.X += utils.TruncatingInt(float64(b.Vx)*delta, limit)
	b.Transform.Y += utils.TruncatingInt(float64(b.Vy)*delta, limit)
}
