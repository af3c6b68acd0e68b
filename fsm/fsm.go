// Package fsm is a small table-driven finite state machine over enumerated
// state and trigger ids.
//
// State id 0 is reserved as the "no transition" sentinel: it can never be the
// current state, and a table cell holding it means the trigger is ignored.
package fsm

import "fmt"

// ID is the constraint for state and trigger enumerations.
type ID interface {
	~int
}

// None is the sentinel state id stored in unmapped table cells.
const None = 0

// ActivityFunc drives a state. It receives the machine so it can fire
// triggers itself, and the context registered with it.
type ActivityFunc[S, T ID] func(m *Machine[S, T], ctx any)

// Observer is notified after every mapped transition, self-loops included.
type Observer[S, T ID] func(from S, trigger T, to S)

type activity[S, T ID] struct {
	fn  ActivityFunc[S, T]
	ctx any
}

// Machine holds a [state][trigger] -> state table and the current state.
// It is not safe for concurrent use.
type Machine[S, T ID] struct {
	table      [][]S
	activities []activity[S, T]
	current    S

	stateCount   int
	triggerCount int

	observer Observer[S, T]
}

// New builds a machine with every cell unmapped. stateCount includes the
// None sentinel, so valid states are 1..stateCount-1. Panics on counts or a
// start state that cannot form a usable machine.
func New[S, T ID](stateCount, triggerCount int, start S) *Machine[S, T] {
	if stateCount < 2 {
		panic(fmt.Sprintf("fsm: stateCount must be at least 2, got %d", stateCount))
	}
	if triggerCount < 1 {
		panic(fmt.Sprintf("fsm: triggerCount must be at least 1, got %d", triggerCount))
	}

	m := &Machine[S, T]{
		table:        make([][]S, stateCount),
		activities:   make([]activity[S, T], stateCount),
		stateCount:   stateCount,
		triggerCount: triggerCount,
	}
	for i := range m.table {
		m.table[i] = make([]S, triggerCount)
	}

	m.checkState(start, "start")
	m.current = start
	return m
}

// On registers from --trigger--> to. Registering None unmaps the cell.
func (m *Machine[S, T]) On(from S, trigger T, to S) {
	m.checkState(from, "from")
	m.checkTrigger(trigger)
	if to != None {
		m.checkState(to, "to")
	}
	m.table[int(from)][int(trigger)] = to
}

// OnAll maps every trigger of from to the same target.
func (m *Machine[S, T]) OnAll(from S, to S) {
	for t := 0; t < m.triggerCount; t++ {
		m.On(from, T(t), to)
	}
}

// Trigger fires trigger against the current state. An unmapped trigger
// leaves the state unchanged and reports false.
func (m *Machine[S, T]) Trigger(trigger T) bool {
	m.checkTrigger(trigger)

	next := m.table[int(m.current)][int(trigger)]
	if next == None {
		return false
	}

	from := m.current
	m.current = next
	if m.observer != nil {
		m.observer(from, trigger, next)
	}
	return true
}

// State returns the current state.
func (m *Machine[S, T]) State() S {
	return m.current
}

// SetActivity registers fn to run when DoActivity is called while in state.
// A nil fn clears it.
func (m *Machine[S, T]) SetActivity(state S, fn ActivityFunc[S, T], ctx any) {
	m.checkState(state, "activity")
	m.activities[int(state)] = activity[S, T]{fn: fn, ctx: ctx}
}

// DoActivity runs the current state's activity once, if any, and reports
// whether one ran.
func (m *Machine[S, T]) DoActivity() bool {
	a := m.activities[int(m.current)]
	if a.fn == nil {
		return false
	}
	a.fn(m, a.ctx)
	return true
}

// SetObserver installs fn as the transition observer. nil removes it.
func (m *Machine[S, T]) SetObserver(fn Observer[S, T]) {
	m.observer = fn
}

func (m *Machine[S, T]) checkState(s S, role string) {
	if int(s) <= None || int(s) >= m.stateCount {
		panic(fmt.Sprintf("fsm: %s state %d out of range [1, %d)", role, int(s), m.stateCount))
	}
}

func (m *Machine[S, T]) checkTrigger(t T) {
	if int(t) < 0 || int(t) >= m.triggerCount {
		panic(fmt.Sprintf("fsm: trigger %d out of range [0, %d)", int(t), m.triggerCount))
	}
}
