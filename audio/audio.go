// Package audio plays short sine cues for game events.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
)

// Tone is one beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var tones = map[game.EventKind]Tone{
	game.EventPaddleHit:  {Freq: 880, Duration: 50 * time.Millisecond},
	game.EventWallBounce: {Freq: 440, Duration: 40 * time.Millisecond},
	game.EventGoal:       {Freq: 220, Duration: 250 * time.Millisecond},
	game.EventGameOver:   {Freq: 330, Duration: 600 * time.Millisecond},
}

// ToneFor returns the cue for an event kind.
func ToneFor(kind game.EventKind) (Tone, bool) {
	t, ok := tones[kind]
	return t, ok
}

// Player turns snapshot events into sounds. The zero value is muted.
type Player struct {
	sampleRate beep.SampleRate
	play       func(...beep.Streamer)
	close      func()
}

// New opens the speaker at the configured sample rate. A muted config, or a
// speaker that fails to open, yields a silent player; the error is returned
// so callers can log it and carry on.
func New(cfg utils.Config) (*Player, error) {
	if cfg.Muted {
		return &Player{}, nil
	}
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	log.Printf("[audio] speaker ready at %d Hz", cfg.SampleRate)
	return &Player{sampleRate: sr, play: speaker.Play, close: speaker.Close}, nil
}

// NewWithSink builds a player that hands streamers to play instead of the
// speaker.
func NewWithSink(sr beep.SampleRate, play func(...beep.Streamer)) *Player {
	return &Player{sampleRate: sr, play: play}
}

func (p *Player) Muted() bool { return p.play == nil }

// Play queues one cue per event.
func (p *Player) Play(events []game.Event) {
	if p.Muted() {
		return
	}
	for _, ev := range events {
		tone, ok := ToneFor(ev.Kind)
		if !ok {
			continue
		}
		s, err := p.stream(tone)
		if err != nil {
			log.Printf("[audio] %v cue skipped: %v", ev.Kind, err)
			continue
		}
		p.play(s)
	}
}

func (p *Player) stream(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(p.sampleRate, t.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(p.sampleRate.N(t.Duration), sine), nil
}

// Close releases the speaker, if one was opened.
func (p *Player) Close() {
	if p.close != nil {
		p.close()
		p.close = nil
	}
	p.play = nil
}
