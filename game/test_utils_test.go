// File: game/test_utils_test.go
package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lguibr/duopong/aabb"
	"github.com/lguibr/duopong/utils"
)

// --- Test Helpers ---

const testFrame = 16 * time.Millisecond

func testField() aabb.Rect {
	return NewField(640, 480)
}

func newTestBall(seed int64) *Ball {
	return NewBall(utils.DefaultConfig(), testField(), rand.New(rand.NewSource(seed)))
}

// harness drives a Game with a fake monotonic clock.
type harness struct {
	t   *testing.T
	g   *Game
	now time.Duration
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	g := New(utils.DefaultConfig(), testField(), rand.New(rand.NewSource(1)))
	return &harness{t: t, g: g}
}

// step advances the clock by one frame and updates the game.
func (h *harness) step(in Intents) Snapshot {
	h.now += testFrame
	return h.g.Update(Frame{Delta: testFrame.Seconds(), Now: h.now, Intents: in})
}

// toPlaying confirms the title screen and waits out the countdown.
func (h *harness) toPlaying() {
	h.t.Helper()
	h.step(Intents{Confirm: true})
	for i := 0; i < 1000 && h.g.State() != StatePlaying; i++ {
		h.step(Intents{})
	}
	if h.g.State() != StatePlaying {
		h.t.Fatalf("game never reached Playing, stuck in %v", h.g.State())
	}
}

// park places the ball at (x, y) with the given velocity, keeping its size.
func (h *harness) park(x, y, vx, vy int) {
	ball := h.g.Ball()
	ball.Transform.X = x
	ball.Transform.Y = y
	ball.Vx, ball.Vy = vx, vy
}
