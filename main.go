package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/duopong/audio"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/input"
	"github.com/lguibr/duopong/render"
	"github.com/lguibr/duopong/utils"
)

var (
	configPath  = flag.String("config", "duopong.toml", "Path to a TOML config file (missing file uses defaults)")
	writeConfig = flag.String("write-config", "", "Write the effective config as TOML to this path and exit")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/duopong.log")
	headless    = flag.Bool("headless", false, "Run without a terminal UI and print ASCII frames")
	frames      = flag.Int("frames", 600, "Frames to simulate in headless mode")
	every       = flag.Int("every", 60, "Print every Nth frame in headless mode")
	cols        = flag.Int("cols", 64, "Headless frame width in characters")
	rows        = flag.Int("rows", 24, "Headless frame height in characters")
	mute        = flag.Bool("mute", false, "Disable sound")
	seed        = flag.Int64("seed", 0, "Random seed for ball launches, 0 uses the clock")
)

const finalMarker = "--- final snapshot ---"

type options struct {
	ConfigPath  string
	WriteConfig string
	Debug       bool
	Headless    bool
	Mute        bool
	Seed        int64
	Frames      int
	Every       int
	Cols        int
	Rows        int
}

func main() {
	flag.Parse()

	opts := options{
		ConfigPath:  *configPath,
		WriteConfig: *writeConfig,
		Debug:       *debugFlag,
		Headless:    *headless,
		Mute:        *mute,
		Seed:        *seed,
		Frames:      *frames,
		Every:       *every,
		Cols:        *cols,
		Rows:        *rows,
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "duopong: %v\n", err)
		os.Exit(1)
	}
}

// run closes everything it opens before returning.
func run(opts options, stdout io.Writer) error {
	if logFile := utils.SetupLogging(opts.Debug, utils.LogDir); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := utils.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Mute || opts.Headless {
		cfg.Muted = true
	}

	if opts.WriteConfig != "" {
		if err := utils.SaveConfig(opts.WriteConfig, cfg); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote config to %s\n", opts.WriteConfig)
		return nil
	}

	g := game.New(cfg, game.NewField(cfg.FieldWidth, cfg.FieldHeight), newRand(opts.Seed))

	if opts.Headless {
		hopts := headlessOptions{Frames: opts.Frames, Every: opts.Every, Cols: opts.Cols, Rows: opts.Rows, Period: cfg.FramePeriod}
		_, err := runHeadless(g, hopts, stdout)
		return err
	}

	sound, err := audio.New(cfg)
	if err != nil {
		log.Printf("[audio] initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := runTerminal(screen, g, cfg, sound); err != nil {
		return err
	}
	p1, p2 := g.Scores()
	fmt.Fprintf(stdout, "Final score %d-%d\n", p1, p2)
	return nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[game] seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

type headlessOptions struct {
	Frames int
	Every  int
	Cols   int
	Rows   int
	Period time.Duration
}

// runHeadless confirms the title screen on the first frame and then lets the
// match run on its own with a fixed frame period. Every Nth frame is printed
// as ASCII, followed by the last snapshot as JSON.
func runHeadless(g *game.Game, opts headlessOptions, out io.Writer) (game.Snapshot, error) {
	if opts.Period <= 0 {
		return game.Snapshot{}, fmt.Errorf("frame period must be positive, got %v", opts.Period)
	}

	snap := g.Snapshot()
	for i := 0; i < opts.Frames && !g.Done(); i++ {
		snap = g.Update(game.Frame{
			Delta:   opts.Period.Seconds(),
			Now:     time.Duration(i) * opts.Period,
			Intents: game.Intents{Confirm: i == 0},
		})
		if opts.Every > 0 && i%opts.Every == 0 {
			if _, err := fmt.Fprintf(out, "frame %d\n%s", i, render.RenderToASCII(snap, opts.Cols, opts.Rows)); err != nil {
				return snap, fmt.Errorf("write frame %d: %w", i, err)
			}
		}
	}

	fmt.Fprintln(out, finalMarker)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return snap, fmt.Errorf("encode snapshot: %w", err)
	}
	return snap, nil
}

// runTerminal drives the match on an initialized screen until it terminates,
// and finalizes the screen on return. A panic in the loop is returned as an
// error once the terminal has been restored.
func runTerminal(screen tcell.Screen, g *game.Game, cfg utils.Config, sound *audio.Player) (err error) {
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			stack := debug.Stack()
			log.Printf("[game] panic: %v\n%s", r, stack)
			err = fmt.Errorf("panic: %v\n%s", r, stack)
		}
	}()

	screen.HideCursor()
	screen.EnableFocus()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	keys := input.NewKeyState(cfg.InputHoldTimeout)
	term := render.NewTerminal(screen)

	start := time.Now()
	last := start
	ticker := time.NewTicker(cfg.FramePeriod)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.HandleKey(ev, time.Since(start))
			case *tcell.EventFocus:
				keys.HandleFocus(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case tick := <-ticker.C:
			// Cap the step after a stall.
			delta := min(tick.Sub(last), 4*cfg.FramePeriod)
			last = tick
			now := tick.Sub(start)

			snap := g.Update(game.Frame{Delta: delta.Seconds(), Now: now, Intents: keys.Intents(now)})
			sound.Play(snap.Events)
			term.Draw(snap)
			screen.Show()

			if g.Done() {
				return nil
			}
		}
	}
}
