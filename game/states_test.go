package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMachine_Table(t *testing.T) {
	expected := map[State]map[Trigger]State{
		StateStart: {
			TriggerConfirm: StateFieldSetup,
			TriggerCancel:  StateTerminate,
			TriggerQuit:    StateTerminate,
		},
		StateFieldSetup: {
			TriggerSetupDone: StateCountdown,
			TriggerQuit:      StateTerminate,
		},
		StateCountdown: {
			TriggerCountdownDone: StatePlaying,
			TriggerQuit:          StateTerminate,
		},
		StatePlaying: {
			TriggerPauseToggle: StatePause,
			TriggerGoal:        StateFieldSetup,
			TriggerGameOver:    StateGameOver,
			TriggerQuit:        StateTerminate,
		},
		StatePause: {
			TriggerPauseToggle: StatePlaying,
			TriggerQuit:        StateTerminate,
		},
		StateGameOver: {
			TriggerConfirm: StateTerminate,
			TriggerCancel:  StateTerminate,
			TriggerQuit:    StateTerminate,
		},
	}

	for from := StateStart; from < stateCount; from++ {
		for trigger := TriggerAlways; trigger < triggerCount; trigger++ {
			m := NewMachine()
			m.On(StateStart, TriggerAlways, from) // jump straight to from
			m.Trigger(TriggerAlways)
			m.On(StateStart, TriggerAlways, StateNone)

			want, mapped := expected[from][trigger]
			switch {
			case from == StateTerminate:
				want = StateTerminate
			case !mapped:
				want = from
			}

			m.Trigger(trigger)
			assert.Equal(t, want, m.State(), "%v --%v-->", from, trigger)
		}
	}
}

func TestNewMachine_StartsAtStart(t *testing.T) {
	assert.Equal(t, StateStart, NewMachine().State())
}

func TestNewMachine_TerminateIsClosed(t *testing.T) {
	m := NewMachine()
	m.Trigger(TriggerQuit)
	assert.Equal(t, StateTerminate, m.State())

	for trigger := TriggerAlways; trigger < triggerCount; trigger++ {
		assert.True(t, m.Trigger(trigger), "Terminate self-loops on %v", trigger)
		assert.Equal(t, StateTerminate, m.State())
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Playing", StatePlaying.String())
	assert.Equal(t, "None", StateNone.String())
	assert.Equal(t, "State(?)", State(99).String())
	assert.Equal(t, "GameOver", TriggerGameOver.String())
	assert.Equal(t, "Trigger(?)", Trigger(-1).String())

	text, err := StatePause.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Pause", string(text))
}
