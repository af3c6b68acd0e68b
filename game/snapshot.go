package game

import "github.com/lguibr/duopong/aabb"

// Sprite is one entity as the renderer sees it.
type Sprite struct {
	Rect  aabb.Rect `json:"rect"`
	Alpha float64   `json:"alpha"`
}

// Overlay is banner text drawn over the field.
type Overlay struct {
	Text  string  `json:"text"`
	Alpha float64 `json:"alpha"`
}

type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventWallBounce
	EventGoal
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "PaddleHit"
	case EventWallBounce:
		return "WallBounce"
	case EventGoal:
		return "Goal"
	case EventGameOver:
		return "GameOver"
	default:
		return "Event(?)"
	}
}

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is something that happened during a frame. Player is the scorer for
// EventGoal and the winner for EventGameOver, otherwise 0.
type Event struct {
	Kind   EventKind `json:"kind"`
	Player int       `json:"player,omitempty"`
}

// Snapshot is the read-only view of one frame handed to the frontends.
// Entities are ordered ball, left paddle, right paddle.
type Snapshot struct {
	State    State     `json:"state"`
	Field    aabb.Rect `json:"field"`
	Entities []Sprite  `json:"entities"`
	Scores   [2]string `json:"scores"`
	Overlay  *Overlay  `json:"overlay,omitempty"`
	Events   []Event   `json:"events,omitempty"`
}

// HasEvent reports whether the frame produced an event of kind.
func (s Snapshot) HasEvent(kind EventKind) bool {
	for _, e := range s.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
