// Package gui runs the match in a desktop window with ebiten.
package gui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lguibr/duopong/audio"
	"github.com/lguibr/duopong/game"
)

// Debug font is approximately 6x13 pixels per character
const (
	charWidth  = 6
	charHeight = 13
)

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	foreground = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	centerLine = color.RGBA{0x40, 0x40, 0x48, 0xff}
)

// Adapter implements ebiten.Game on top of a game.Game. Ebiten calls Update
// at a fixed tick rate, so every tick is one frame of 1/TPS seconds.
type Adapter struct {
	game  *game.Game
	sound *audio.Player
	now   time.Duration
	last  game.Snapshot
}

func NewAdapter(g *game.Game, sound *audio.Player) *Adapter {
	if sound == nil {
		sound = &audio.Player{}
	}
	return &Adapter{game: g, sound: sound, last: g.Snapshot()}
}

// Run opens the window and blocks until the match terminates or the window
// closes.
func Run(a *Adapter, title string) error {
	field := a.game.Field()
	ebiten.SetWindowSize(field.W, field.H)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(a)
}

// Update implements ebiten.Game.
func (a *Adapter) Update() error {
	tick := time.Second / time.Duration(ebiten.TPS())
	a.now += tick

	a.last = a.game.Update(game.Frame{
		Delta:   tick.Seconds(),
		Now:     a.now,
		Intents: keyIntents(ebiten.IsKeyPressed),
	})
	a.sound.Play(a.last.Events)

	if a.game.Done() {
		return ebiten.Termination
	}
	return nil
}

// keyIntents reads the bindings shared with the terminal frontend.
func keyIntents(pressed func(ebiten.Key) bool) game.Intents {
	return game.Intents{
		P1Up:    pressed(ebiten.KeyA),
		P1Down:  pressed(ebiten.KeyZ),
		P2Up:    pressed(ebiten.KeyK),
		P2Down:  pressed(ebiten.KeyM),
		Pause:   pressed(ebiten.KeyP),
		Confirm: pressed(ebiten.KeyEnter),
		Cancel:  pressed(ebiten.KeyBackspace),
		Quit:    pressed(ebiten.KeyEscape) || pressed(ebiten.KeyQ),
	}
}

// Draw implements ebiten.Game.
func (a *Adapter) Draw(screen *ebiten.Image) {
	snap := a.last
	screen.Fill(background)

	f := snap.Field
	for y := f.Y; y < f.Bottom(); y += 16 {
		vector.FillRect(screen, float32(f.X+f.W/2-1), float32(y), 2, 8, centerLine, false)
	}

	for _, s := range snap.Entities {
		clr := fade(foreground, s.Alpha)
		vector.FillRect(screen, float32(s.Rect.X-f.X), float32(s.Rect.Y-f.Y), float32(s.Rect.W), float32(s.Rect.H), clr, false)
	}

	ebitenutil.DebugPrintAt(screen, "P1 "+snap.Scores[0], f.W/4, 8)
	ebitenutil.DebugPrintAt(screen, "P2 "+snap.Scores[1], 3*f.W/4, 8)

	if o := snap.Overlay; o != nil && o.Alpha >= 0.5 {
		x := (f.W - len(o.Text)*charWidth) / 2
		y := (f.H - charHeight) / 2
		ebitenutil.DebugPrintAt(screen, o.Text, x, y)
	}
}

// Layout implements ebiten.Game. The logical screen is the field itself.
func (a *Adapter) Layout(_, _ int) (int, int) {
	f := a.game.Field()
	return f.W, f.H
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
