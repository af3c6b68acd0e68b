// File: game/game_test.go
package game

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/lguibr/duopong/aabb"
	"github.com/lguibr/duopong/fsm"
	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New(utils.DefaultConfig(), testField(), rand.New(rand.NewSource(1)))

	assert.Equal(t, StateStart, g.State())
	assert.False(t, g.Done())
	p1, p2 := g.Scores()
	assert.Equal(t, uint(0), p1)
	assert.Equal(t, uint(0), p2)
	assert.Equal(t, 0, g.Winner())
	assert.Len(t, g.Entities(), 3)
	assert.Equal(t, SideLeft, g.Player(1).Paddle.Side)
	assert.Equal(t, SideRight, g.Player(2).Paddle.Side)
}

func TestNew_NilRandomSource(t *testing.T) {
	g := New(utils.DefaultConfig(), testField(), nil)
	assert.NotZero(t, g.Ball().Vx)
}

func TestGame_StartScreen(t *testing.T) {
	h := newHarness(t)

	snap := h.step(Intents{})
	assert.Equal(t, StateStart, snap.State)
	require.NotNil(t, snap.Overlay)
	assert.Equal(t, "PRESS ENTER", snap.Overlay.Text)
	assert.GreaterOrEqual(t, snap.Overlay.Alpha, 0.25)
	assert.LessOrEqual(t, snap.Overlay.Alpha, 1.0)
	assert.Equal(t, [2]string{"0", "0"}, snap.Scores)
}

func TestGame_StartCancelTerminates(t *testing.T) {
	h := newHarness(t)
	h.step(Intents{Cancel: true})
	assert.True(t, h.g.Done())
}

func TestGame_Countdown(t *testing.T) {
	g := New(utils.DefaultConfig(), testField(), rand.New(rand.NewSource(1)))
	at := func(ms int) Snapshot {
		return g.Update(Frame{Delta: 0.016, Now: time.Duration(ms) * time.Millisecond})
	}

	snap := g.Update(Frame{Now: 0, Intents: Intents{Confirm: true}})
	assert.Equal(t, StateFieldSetup, snap.State)

	// Field setup runs and hands over to the countdown in the same frame.
	snap = at(10)
	assert.Equal(t, StateCountdown, snap.State)

	steps := []struct {
		ms    int
		label string
	}{
		{10, "3"},
		{609, "3"},
		{610, "2"},
		{1209, "2"},
		{1210, "1"},
		{1810, "GO"},
		{2409, "GO"},
	}
	for _, s := range steps {
		snap = at(s.ms)
		require.Equal(t, StateCountdown, snap.State, "at %dms", s.ms)
		require.NotNil(t, snap.Overlay)
		assert.Equal(t, s.label, snap.Overlay.Text, "at %dms", s.ms)
	}

	snap = at(2410)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Nil(t, snap.Overlay)
}

func TestGame_CountdownIgnoresDelta(t *testing.T) {
	g := New(utils.DefaultConfig(), testField(), rand.New(rand.NewSource(1)))
	g.Update(Frame{Intents: Intents{Confirm: true}})
	g.Update(Frame{Now: time.Millisecond})

	// Huge simulation deltas do not speed the countdown up.
	for i := 0; i < 10; i++ {
		g.Update(Frame{Delta: 100, Now: 2 * time.Millisecond})
	}
	assert.Equal(t, StateCountdown, g.State())
}

func TestGame_SetupCentersBall(t *testing.T) {
	h := newHarness(t)
	h.park(-400, 900, 1, 1)
	h.toPlaying()

	bx, by := h.g.Ball().Transform.Center()
	fx, fy := h.g.Field().Center()
	assert.Equal(t, fx, bx)
	assert.Equal(t, fy, by)
}

func TestGame_PaddleSteering(t *testing.T) {
	testCases := []struct {
		name     string
		in       Intents
		p1Vy     int
		p2Vy     int
		p1Center bool
	}{
		{"P1Up", Intents{P1Up: true}, -200, 0, false},
		{"P1Down", Intents{P1Down: true}, 200, 0, false},
		{"P1Both", Intents{P1Up: true, P1Down: true}, 0, 0, true},
		{"Neither", Intents{}, 0, 0, true},
		{"P2Up", Intents{P2Up: true}, 0, -200, true},
		{"P2Down_P1Up", Intents{P2Down: true, P1Up: true}, -200, 200, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.toPlaying()
			startY := h.g.Player(1).Paddle.Transform.Y

			h.step(tc.in)

			assert.Equal(t, tc.p1Vy, h.g.Player(1).Paddle.Vy)
			assert.Equal(t, tc.p2Vy, h.g.Player(2).Paddle.Vy)
			if tc.p1Center {
				assert.Equal(t, startY, h.g.Player(1).Paddle.Transform.Y)
			}
		})
	}
}

func TestGame_GoalLeftScoresPlayerTwo(t *testing.T) {
	h := newHarness(t)
	h.toPlaying()
	h.park(-20, 232, -300, 0)

	snap := h.step(Intents{})

	p1, p2 := h.g.Scores()
	assert.Equal(t, uint(0), p1)
	assert.Equal(t, uint(1), p2)
	assert.Equal(t, [2]string{"0", "1"}, snap.Scores)
	assert.Equal(t, StateFieldSetup, snap.State)
	assert.Contains(t, snap.Events, Event{Kind: EventGoal, Player: 2})

	bx, by := h.g.Ball().Transform.Center()
	fx, fy := h.g.Field().Center()
	assert.Equal(t, fx, bx, "ball is served again from the middle")
	assert.Equal(t, fy, by)

	// The point is counted exactly once while the field resets.
	for i := 0; i < 10; i++ {
		h.step(Intents{})
	}
	_, p2 = h.g.Scores()
	assert.Equal(t, uint(1), p2)
	assert.Equal(t, StateCountdown, h.g.State())
}

func TestGame_GoalRightScoresPlayerOne(t *testing.T) {
	h := newHarness(t)
	h.toPlaying()
	h.park(640, 232, 300, 0)

	snap := h.step(Intents{})

	p1, p2 := h.g.Scores()
	assert.Equal(t, uint(1), p1)
	assert.Equal(t, uint(0), p2)
	assert.Contains(t, snap.Events, Event{Kind: EventGoal, Player: 1})
}

func TestGame_OneGoalPerFrameLeftFirst(t *testing.T) {
	h := newHarness(t)
	h.toPlaying()
	// A ball spanning the whole field is beyond both goal lines at once.
	h.g.Ball().Transform = aabb.Rect{X: -10, Y: 10, W: 700, H: 16}
	h.g.Ball().Vx, h.g.Ball().Vy = 0, 0

	snap := h.step(Intents{})

	p1, p2 := h.g.Scores()
	assert.Equal(t, uint(0), p1)
	assert.Equal(t, uint(1), p2)
	goals := 0
	for _, e := range snap.Events {
		if e.Kind == EventGoal {
			goals++
		}
	}
	assert.Equal(t, 1, goals)
}

func TestGame_WinningThresholdEndsMatch(t *testing.T) {
	h := newHarness(t)
	h.toPlaying()
	h.g.Player(1).Score = 4
	h.g.Player(2).Score = 4
	h.g.Ball().Transform = aabb.Rect{X: -10, Y: 10, W: 700, H: 16}

	snap := h.step(Intents{})

	assert.Equal(t, StateGameOver, snap.State)
	p1, p2 := h.g.Scores()
	assert.Equal(t, uint(4), p1)
	assert.Equal(t, uint(5), p2)
	assert.Equal(t, 2, h.g.Winner())
	assert.True(t, snap.HasEvent(EventGameOver))
	require.NotNil(t, snap.Overlay)
	assert.Equal(t, "PLAYER 2 WINS", snap.Overlay.Text)

	// GameOver freezes the field.
	before := h.g.Ball().Transform
	h.step(Intents{})
	assert.Equal(t, before, h.g.Ball().Transform)
	assert.Equal(t, StateGameOver, h.g.State())

	h.step(Intents{Confirm: true})
	assert.True(t, h.g.Done())
}

func TestGame_GameOverCancelTerminates(t *testing.T) {
	h := newHarness(t)
	h.toPlaying()
	h.g.Player(1).Score = 4
	h.park(640, 232, 300, 0)
	h.step(Intents{})
	require.Equal(t, StateGameOver, h.g.State())
	assert.Equal(t, 1, h.g.Winner())

	h.step(Intents{Cancel: true})
	assert.True(t, h.g.Done())
}

func TestGame_Pause(t *testing.T) {
	h := newHarness(t)
	h.toPlaying()
	h.park(300, 200, 120, 60)

	snap := h.step(Intents{Pause: true})
	assert.Equal(t, StatePause, snap.State)
	require.NotNil(t, snap.Overlay)
	assert.Equal(t, "PAUSED", snap.Overlay.Text)
	for _, s := range snap.Entities {
		assert.Equal(t, pausedAlpha, s.Alpha)
	}

	// Holding the key toggles only once, and nothing moves.
	h.step(Intents{Pause: true})
	h.step(Intents{})
	assert.Equal(t, StatePause, h.g.State())
	assert.Equal(t, 300, h.g.Ball().Transform.X)
	assert.Equal(t, 200, h.g.Ball().Transform.Y)

	snap = h.step(Intents{Pause: true})
	assert.Equal(t, StatePlaying, snap.State)
	for _, s := range snap.Entities {
		assert.Equal(t, 1.0, s.Alpha)
	}

	h.step(Intents{})
	assert.Greater(t, h.g.Ball().Transform.X, 300, "simulation resumes")
}

func TestGame_Quit(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(h *harness)
	}{
		{"FromStart", func(h *harness) {}},
		{"FromCountdown", func(h *harness) {
			h.step(Intents{Confirm: true})
			h.step(Intents{})
		}},
		{"FromPlaying", func(h *harness) { h.toPlaying() }},
		{"FromPause", func(h *harness) {
			h.toPlaying()
			h.step(Intents{Pause: true})
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			tc.setup(h)

			h.step(Intents{Quit: true})
			assert.True(t, h.g.Done())

			// Terminate is final whatever arrives next.
			h.step(Intents{Confirm: true, Pause: true, Cancel: true})
			h.step(Intents{})
			assert.Equal(t, StateTerminate, h.g.State())
		})
	}
}

func TestGame_PaddleHitEvent(t *testing.T) {
	h := newHarness(t)
	h.toPlaying()
	h.park(54, 240, -300, 0)

	snap := h.step(Intents{})

	assert.True(t, snap.HasEvent(EventPaddleHit))
	assert.Greater(t, h.g.Ball().Vx, 0)
	assert.InDelta(t, 330.0, h.g.Ball().Speed, 1e-9)
}

func TestGame_WallBounceEvent(t *testing.T) {
	h := newHarness(t)
	h.toPlaying()
	h.park(300, -2, 100, -100)

	snap := h.step(Intents{})

	assert.True(t, snap.HasEvent(EventWallBounce))
	assert.Equal(t, 100, h.g.Ball().Vy)

	snap = h.step(Intents{})
	assert.False(t, snap.HasEvent(EventWallBounce), "events are per frame")
}

func TestGame_UnknownStateIsReported(t *testing.T) {
	h := newHarness(t)
	orphan := stateCount
	h.g.machine = fsm.New[State, Trigger](int(stateCount)+1, int(triggerCount), orphan)

	snap := h.step(Intents{})
	h.step(Intents{Quit: true})

	assert.Equal(t, 2, h.g.UnknownStateFrames())
	assert.Equal(t, orphan, snap.State)
	assert.Equal(t, orphan, h.g.State())
}

func TestGame_SnapshotJSON(t *testing.T) {
	h := newHarness(t)
	h.toPlaying()
	h.park(54, 240, -300, 0)
	snap := h.step(Intents{})

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"state":"Playing"`)
	assert.Contains(t, string(data), `"kind":"PaddleHit"`)
	assert.Contains(t, string(data), `"scores":["0","0"]`)
	assert.NotContains(t, string(data), `"overlay"`)
}

func TestGame_LongRunInvariants(t *testing.T) {
	h := newHarness(t)
	h.toPlaying()
	field := h.g.Field()
	rng := rand.New(rand.NewSource(42))

	var lastP1, lastP2 uint
	for i := 0; i < 5000 && !h.g.Done(); i++ {
		in := Intents{
			P1Up:   rng.Intn(3) == 0,
			P1Down: rng.Intn(3) == 0,
			P2Up:   rng.Intn(3) == 0,
			P2Down: rng.Intn(3) == 0,
		}
		if h.g.State() == StateGameOver {
			in.Confirm = i%2 == 0
		}
		h.step(in)

		for _, p := range []*Player{h.g.Player(1), h.g.Player(2)} {
			box := p.Paddle.Transform
			require.GreaterOrEqual(t, box.Y, field.Y-4, "frame %d", i)
			require.LessOrEqual(t, box.Bottom(), field.Bottom()+4, "frame %d", i)
		}

		p1, p2 := h.g.Scores()
		require.GreaterOrEqual(t, p1, lastP1)
		require.GreaterOrEqual(t, p2, lastP2)
		require.LessOrEqual(t, p1+p2-lastP1-lastP2, uint(1), "at most one goal per frame")
		require.LessOrEqual(t, p1, uint(5))
		require.LessOrEqual(t, p2, uint(5))
		lastP1, lastP2 = p1, p2
	}
	assert.Zero(t, h.g.UnknownStateFrames())
}
