package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/lguibr/duopong/audio"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/gui"
	"github.com/lguibr/duopong/utils"
)

func main() {
	configPath := flag.String("config", "duopong.toml", "Path to a TOML config file (missing file uses defaults)")
	debugFlag := flag.Bool("debug", false, "Write logs to logs/duopong.log")
	mute := flag.Bool("mute", false, "Disable sound")
	seed := flag.Int64("seed", 0, "Random seed for ball launches, 0 uses the clock")
	flag.Parse()

	if err := run(*configPath, *debugFlag, *mute, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "duopong-gui: %v\n", err)
		os.Exit(1)
	}
}

// run closes everything it opens before returning.
func run(configPath string, debug, mute bool, seed int64) error {
	if logFile := utils.SetupLogging(debug, utils.LogDir); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if mute {
		cfg.Muted = true
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := game.New(cfg, game.NewField(cfg.FieldWidth, cfg.FieldHeight), rand.New(rand.NewSource(seed)))

	sound, err := audio.New(cfg)
	if err != nil {
		log.Printf("[audio] initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Close()

	log.Printf("[game] starting window, seed %d", seed)
	if err := gui.Run(gui.NewAdapter(g, sound), "duopong - A/Z vs K/M"); err != nil {
		log.Printf("[game] window closed with error: %v", err)
		return err
	}
	p1, p2 := g.Scores()
	fmt.Printf("Final score %d-%d\n", p1, p2)
	return nil
}
