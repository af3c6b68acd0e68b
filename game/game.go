// File: game/game.go
package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/lguibr/duopong/aabb"
	"github.com/lguibr/duopong/utils"
)

// Intents are the player inputs sampled for one frame.
type Intents struct {
	P1Up    bool `json:"p1Up"`
	P1Down  bool `json:"p1Down"`
	P2Up    bool `json:"p2Up"`
	P2Down  bool `json:"p2Down"`
	Pause   bool `json:"pause"`
	Confirm bool `json:"confirm"`
	Cancel  bool `json:"cancel"`
	Quit    bool `json:"quit"`
}

// rising returns the intents that are held now but were not held in prev.
func (in Intents) rising(prev Intents) Intents {
	return Intents{
		P1Up:    in.P1Up && !prev.P1Up,
		P1Down:  in.P1Down && !prev.P1Down,
		P2Up:    in.P2Up && !prev.P2Up,
		P2Down:  in.P2Down && !prev.P2Down,
		Pause:   in.Pause && !prev.Pause,
		Confirm: in.Confirm && !prev.Confirm,
		Cancel:  in.Cancel && !prev.Cancel,
		Quit:    in.Quit && !prev.Quit,
	}
}

// Frame is everything the game consumes per update.
type Frame struct {
	Delta   float64       // Seconds since the previous frame
	Now     time.Duration // Monotonic clock, only used for real-time gating
	Intents Intents
}

const (
	pausedAlpha  = 0.35
	bannerPeriod = time.Second
	blinkPeriod  = 500 * time.Millisecond
)

// Game owns every piece of match state and is advanced one frame at a time by
// a single caller.
type Game struct {
	cfg   utils.Config
	field aabb.Rect

	ball     *Ball
	players  [2]*Player
	entities []Entity
	tracker  *CollisionTracker

	machine   *Machine
	countdown countdown

	now           time.Duration
	prev          Intents
	events        []Event
	winner        int
	unknownFrames int
}

// New builds a match on field sitting in StateStart. A nil rng is seeded
// from the clock.
func New(cfg utils.Config, field aabb.Rect, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	left := NewPaddle(cfg, field, SideLeft)
	right := NewPaddle(cfg, field, SideRight)

	g := &Game{
		cfg:       cfg,
		field:     field,
		ball:      NewBall(cfg, field, rng),
		players:   [2]*Player{NewPlayer(1, left), NewPlayer(2, right)},
		tracker:   NewCollisionTracker(),
		machine:   NewMachine(),
		countdown: newCountdown(cfg.CountdownLabels, cfg.CountdownTick),
	}
	g.entities = []Entity{g.ball, left, right}

	g.machine.SetObserver(g.onTransition)
	g.machine.SetActivity(StateFieldSetup, setupField, g)
	return g
}

// setupField serves a fresh ball from the middle and re-centers the paddles.
func setupField(m *Machine, ctx any) {
	g := ctx.(*Game)
	g.ball.Configure(g.field)
	for _, p := range g.players {
		p.Paddle.Configure(g.field)
	}
	g.tracker.ClearAll()
	m.Trigger(TriggerSetupDone)
}

func (g *Game) onTransition(from State, trigger Trigger, to State) {
	if from == to {
		return
	}
	log.Printf("[fsm] %v --%v--> %v", from, trigger, to)
	if to == StateCountdown {
		g.countdown.Reset(g.now)
	}
}

// Update advances the match by one frame and returns what to draw.
func (g *Game) Update(f Frame) Snapshot {
	g.now = f.Now
	g.events = nil

	pressed := f.Intents.rising(g.prev)
	g.prev = f.Intents

	if f.Intents.Quit {
		g.machine.Trigger(TriggerQuit)
	}

	switch state := g.machine.State(); state {
	case StateStart:
		g.updateStart(pressed)
	case StateFieldSetup:
		g.machine.DoActivity()
	case StateCountdown:
		g.updateCountdown()
	case StatePlaying:
		g.updatePlaying(f, pressed)
	case StatePause:
		g.updatePause(pressed)
	case StateGameOver:
		g.updateGameOver(pressed)
	case StateTerminate:
	default:
		g.unknownFrames++
		log.Printf("[game] ERROR: no behavior mapped for state %d (%v), frame skipped", int(state), state)
	}

	return g.Snapshot()
}

func (g *Game) updateStart(pressed Intents) {
	switch {
	case pressed.Confirm:
		g.machine.Trigger(TriggerConfirm)
	case pressed.Cancel:
		g.machine.Trigger(TriggerCancel)
	}
}

func (g *Game) updateCountdown() {
	if _, done := g.countdown.Label(g.now); done {
		g.machine.Trigger(TriggerCountdownDone)
	}
}

func (g *Game) updatePlaying(f Frame, pressed Intents) {
	if pressed.Pause {
		g.machine.Trigger(TriggerPauseToggle)
		return
	}

	in := f.Intents
	g.players[0].Paddle.Steer(in.P1Up, in.P1Down)
	g.players[1].Paddle.Steer(in.P2Up, in.P2Down)

	hits, bounces := g.ball.Hits, g.ball.Bounces

	ProcessPairsTracked(g.entities, g.tracker)
	ProcessBounds(g.entities, g.field)
	MoveAll(g.entities, f.Delta)

	if g.ball.Hits != hits {
		g.emit(EventPaddleHit, 0)
	}
	if g.ball.Bounces != bounces {
		g.emit(EventWallBounce, 0)
	}

	g.judgeGoal()
}

// judgeGoal scores at most one goal per frame, left goal first, then checks
// the winning threshold player 1 first.
func (g *Game) judgeGoal() {
	box := g.ball.Box()

	var scorer *Player
	switch {
	case aabb.IsBeyondEdge(box, g.field, aabb.Left):
		scorer = g.players[1]
	case aabb.IsBeyondEdge(box, g.field, aabb.Right):
		scorer = g.players[0]
	default:
		return
	}

	scorer.AddPoint()
	g.ball.Configure(g.field)
	g.tracker.ClearAll()
	g.emit(EventGoal, scorer.Index)
	log.Printf("[game] goal for player %d, score %s-%s", scorer.Index, g.players[0].ScoreString(), g.players[1].ScoreString())

	for _, p := range g.players {
		if p.HasWon(g.cfg.WinningScore) {
			g.winner = p.Index
			g.emit(EventGameOver, p.Index)
			log.Printf("[game] player %d wins", p.Index)
			g.machine.Trigger(TriggerGameOver)
			return
		}
	}
	g.machine.Trigger(TriggerGoal)
}

func (g *Game) updatePause(pressed Intents) {
	if pressed.Pause {
		g.machine.Trigger(TriggerPauseToggle)
	}
}

func (g *Game) updateGameOver(pressed Intents) {
	switch {
	case pressed.Confirm:
		g.machine.Trigger(TriggerConfirm)
	case pressed.Cancel:
		g.machine.Trigger(TriggerCancel)
	}
}

func (g *Game) emit(kind EventKind, player int) {
	g.events = append(g.events, Event{Kind: kind, Player: player})
}

// Snapshot renders the current state without advancing it.
func (g *Game) Snapshot() Snapshot {
	state := g.machine.State()

	alpha := 1.0
	var overlay *Overlay
	switch state {
	case StateStart:
		overlay = &Overlay{Text: "PRESS ENTER", Alpha: pulse(g.now, bannerPeriod)}
	case StateCountdown:
		if label, done := g.countdown.Label(g.now); !done {
			overlay = &Overlay{Text: label, Alpha: 1}
		}
	case StatePause:
		alpha = pausedAlpha
		overlay = &Overlay{Text: "PAUSED", Alpha: blink(g.now, blinkPeriod)}
	case StateGameOver:
		overlay = &Overlay{Text: fmt.Sprintf("PLAYER %d WINS", g.winner), Alpha: 1}
	}

	sprites := make([]Sprite, len(g.entities))
	for i, e := range g.entities {
		sprites[i] = Sprite{Rect: e.Box(), Alpha: alpha}
	}

	return Snapshot{
		State:    state,
		Field:    g.field,
		Entities: sprites,
		Scores:   [2]string{g.players[0].ScoreString(), g.players[1].ScoreString()},
		Overlay:  overlay,
		Events:   g.events,
	}
}

// pulse eases between 0.25 and 1 over period.
func pulse(now, period time.Duration) float64 {
	phase := float64(now%period) / float64(period)
	return 0.625 + 0.375*math.Cos(2*math.Pi*phase)
}

// blink alternates between fully visible and hidden every half period.
func blink(now, period time.Duration) float64 {
	if now%period < period/2 {
		return 1
	}
	return 0
}

func (g *Game) State() State { return g.machine.State() }

// Done reports whether the match reached Terminate.
func (g *Game) Done() bool { return g.machine.State() == StateTerminate }

func (g *Game) Scores() (uint, uint) {
	return g.players[0].Score, g.players[1].Score
}

// Winner is the 1-based index of the winning player, or 0 while undecided.
func (g *Game) Winner() int { return g.winner }

// UnknownStateFrames counts frames spent in a state with no behavior.
func (g *Game) UnknownStateFrames() int { return g.unknownFrames }

func (g *Game) Field() aabb.Rect { return g.field }

func (g *Game) Ball() *Ball { return g.ball }

func (g *Game) Player(index int) *Player { return g.players[index-1] }

func (g *Game) Entities() []Entity { return g.entities }
