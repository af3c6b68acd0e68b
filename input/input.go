// Package input turns terminal key events into per-frame game intents.
package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/duopong/game"
)

// Action is one bindable player command.
type Action int

const (
	ActionNone Action = iota
	ActionP1Up
	ActionP1Down
	ActionP2Up
	ActionP2Down
	ActionPause
	ActionConfirm
	ActionCancel
	ActionQuit
	actionCount
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionP1Up:    "P1Up",
	ActionP1Down:  "P1Down",
	ActionP2Up:    "P2Up",
	ActionP2Down:  "P2Down",
	ActionPause:   "Pause",
	ActionConfirm: "Confirm",
	ActionCancel:  "Cancel",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Action(?)"
	}
	return actionNames[a]
}

// runeBindings maps lower-cased printable keys to actions.
var runeBindings = map[rune]Action{
	'a': ActionP1Up,
	'z': ActionP1Down,
	'k': ActionP2Up,
	'm': ActionP2Down,
	'p': ActionPause,
	'q': ActionQuit,
}

// ActionForKey maps a tcell key event to its action, ActionNone when unbound.
func ActionForKey(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	switch ev.Key() {
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyBackspace:
		return ActionCancel
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		return runeBindings[unicode.ToLower(ev.Rune())]
	}
	return ActionNone
}

// KeyState remembers when each action was last pressed. Terminals deliver no
// key-up events, so an action counts as held until hold has passed since its
// most recent press or auto-repeat.
type KeyState struct {
	hold    time.Duration
	pressed [actionCount]bool
	last    [actionCount]time.Duration
}

func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{hold: hold}
}

// Press records action at now on the same clock later passed to Intents.
func (k *KeyState) Press(action Action, now time.Duration) {
	if action <= ActionNone || action >= actionCount {
		return
	}
	k.pressed[action] = true
	k.last[action] = now
}

// HandleKey records the action bound to ev and returns it.
func (k *KeyState) HandleKey(ev *tcell.EventKey, now time.Duration) Action {
	action := ActionForKey(ev)
	k.Press(action, now)
	return action
}

// Held reports whether action is still inside its hold window at now.
func (k *KeyState) Held(action Action, now time.Duration) bool {
	if action <= ActionNone || action >= actionCount || !k.pressed[action] {
		return false
	}
	if now-k.last[action] < k.hold {
		return true
	}
	k.pressed[action] = false
	return false
}

// Release forgets every pressed action.
func (k *KeyState) Release() {
	k.pressed = [actionCount]bool{}
}

// HandleFocus releases every action when the terminal loses focus, since the
// key-up that ends a hold will never arrive.
func (k *KeyState) HandleFocus(ev *tcell.EventFocus) {
	if ev != nil && !ev.Focused {
		k.Release()
	}
}

// Intents samples the held actions at now.
func (k *KeyState) Intents(now time.Duration) game.Intents {
	return game.Intents{
		P1Up:    k.Held(ActionP1Up, now),
		P1Down:  k.Held(ActionP1Down, now),
		P2Up:    k.Held(ActionP2Up, now),
		P2Down:  k.Held(ActionP2Down, now),
		Pause:   k.Held(ActionPause, now),
		Confirm: k.Held(ActionConfirm, now),
		Cancel:  k.Held(ActionCancel, now),
		Quit:    k.Held(ActionQuit, now),
	}
}
