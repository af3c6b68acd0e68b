// File: game/states.go
package game

import "github.com/lguibr/duopong/fsm"

// State is a macro phase of a match. StateNone is the machine's reserved
// "no transition" id and is never current.
type State int

const (
	StateNone State = iota
	StateStart
	StateFieldSetup
	StateCountdown
	StatePlaying
	StatePause
	StateGameOver
	StateTerminate
	stateCount
)

var stateNames = [...]string{
	StateNone:       "None",
	StateStart:      "Start",
	StateFieldSetup: "FieldSetup",
	StateCountdown:  "Countdown",
	StatePlaying:    "Playing",
	StatePause:      "Pause",
	StateGameOver:   "GameOver",
	StateTerminate:  "Terminate",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(?)"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Trigger is an event fed to the match state machine.
type Trigger int

const (
	TriggerAlways Trigger = iota
	TriggerConfirm
	TriggerCancel
	TriggerSetupDone
	TriggerCountdownDone
	TriggerPauseToggle
	TriggerGoal
	TriggerGameOver
	TriggerQuit
	triggerCount
)

var triggerNames = [...]string{
	TriggerAlways:        "Always",
	TriggerConfirm:       "Confirm",
	TriggerCancel:        "Cancel",
	TriggerSetupDone:     "SetupDone",
	TriggerCountdownDone: "CountdownDone",
	TriggerPauseToggle:   "PauseToggle",
	TriggerGoal:          "Goal",
	TriggerGameOver:      "GameOver",
	TriggerQuit:          "Quit",
}

func (t Trigger) String() string {
	if t >= 0 && int(t) < len(triggerNames) {
		return triggerNames[t]
	}
	return "Trigger(?)"
}

// Machine is the match state machine.
type Machine = fsm.Machine[State, Trigger]

// NewMachine builds the match transition table, starting at StateStart.
func NewMachine() *Machine {
	m := fsm.New[State, Trigger](int(stateCount), int(triggerCount), StateStart)

	m.On(StateStart, TriggerConfirm, StateFieldSetup)
	m.On(StateStart, TriggerCancel, StateTerminate)
	m.On(StateStart, TriggerQuit, StateTerminate)

	m.On(StateFieldSetup, TriggerSetupDone, StateCountdown)
	m.On(StateFieldSetup, TriggerQuit, StateTerminate)

	m.On(StateCountdown, TriggerCountdownDone, StatePlaying)
	m.On(StateCountdown, TriggerQuit, StateTerminate)

	m.On(StatePlaying, TriggerPauseToggle, StatePause)
	m.On(StatePlaying, TriggerGoal, StateFieldSetup)
	m.On(StatePlaying, TriggerGameOver, StateGameOver)
	m.On(StatePlaying, TriggerQuit, StateTerminate)

	m.On(StatePause, TriggerPauseToggle, StatePlaying)
	m.On(StatePause, TriggerQuit, StateTerminate)

	m.On(StateGameOver, TriggerConfirm, StateTerminate)
	m.On(StateGameOver, TriggerCancel, StateTerminate)
	m.On(StateGameOver, TriggerQuit, StateTerminate)

	m.OnAll(StateTerminate, StateTerminate)
	return m
}
