package game

// Move advances a single entity by delta seconds.
func Move(e Entity, delta float64) {
	e.Update(delta)
}

// MoveAll advances every entity. Collision reactions for the frame must
// already have run.
func MoveAll(entities []Entity, delta float64) {
	for _, e := range entities {
		Move(e, delta)
	}
}
