// File: game/collision_tracker.go
package game

// CollisionKey represents an ordered collision pair.
// SubjectID is the entity that reacts, ColliderID the one it touched.
type CollisionKey struct {
	SubjectID  int
	ColliderID int
}

// CollisionTracker remembers which pairs are currently touching, so a contact
// that lasts several frames is reacted to only once until it ends and
// restarts. It is owned by a single game loop and is not synchronized.
type CollisionTracker struct {
	activeCollisions map[CollisionKey]bool
}

// NewCollisionTracker creates a new, empty collision tracker.
func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{
		activeCollisions: make(map[CollisionKey]bool),
	}
}

// BeginCollision registers the start of a contact. It returns true only if
// the key was not already active.
func (ct *CollisionTracker) BeginCollision(key CollisionKey) bool {
	if ct.activeCollisions[key] {
		return false
	}
	ct.activeCollisions[key] = true
	return true
}

// EndCollision forgets the contact for key. Unknown keys are ignored.
func (ct *CollisionTracker) EndCollision(key CollisionKey) {
	delete(ct.activeCollisions, key)
}

// ClearAll removes all tracked contacts, e.g. when the ball is re-served.
func (ct *CollisionTracker) ClearAll() {
	ct.activeCollisions = make(map[CollisionKey]bool)
}
