package game

import "github.com/lguibr/duopong/aabb"

// boundsOrder is the priority in which field edges are tested.
var boundsOrder = [...]aabb.Edge{aabb.Top, aabb.Bottom, aabb.Left, aabb.Right}

// ProcessPairs tests every ordered pair and calls Collide on the subject when
// the boxes overlap. Both directions of a pair are visited.
func ProcessPairs(entities []Entity) {
	processPairs(entities, nil)
}

// ProcessPairsTracked is ProcessPairs with contact debouncing: a pair reacts
// on the first frame it overlaps and again only after it has separated.
// Keys are entity indices, so the slice order must be stable across frames.
func ProcessPairsTracked(entities []Entity, tracker *CollisionTracker) {
	processPairs(entities, tracker)
}

func processPairs(entities []Entity, tracker *CollisionTracker) {
	for i, subject := range entities {
		collider, reacts := subject.(Collider)
		for j, other := range entities {
			if i == j {
				continue
			}

			edge := aabb.GetIntersection(subject.Box(), other.Box())
			key := CollisionKey{SubjectID: i, ColliderID: j}

			if edge == aabb.None {
				if tracker != nil {
					tracker.EndCollision(key)
				}
				continue
			}
			if !reacts {
				continue
			}
			if tracker != nil && !tracker.BeginCollision(key) {
				continue
			}
			collider.Collide(other, edge)
		}
	}
}

// ProcessBounds calls OutOfBounds with the first edge of field each entity
// has reached, testing Top, Bottom, Left, Right in that order.
func ProcessBounds(entities []Entity, field aabb.Rect) {
	for _, e := range entities {
		reactor, ok := e.(BoundsReactor)
		if !ok {
			continue
		}
		box := e.Box()
		for _, edge := range boundsOrder {
			if aabb.IsBeyondEdge(box, field, edge) {
				reactor.OutOfBounds(edge)
				break
			}
		}
	}
}
