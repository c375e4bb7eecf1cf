package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/labyrinth/audio"
	"github.com/lixenwraith/labyrinth/config"
	"github.com/lixenwraith/labyrinth/difficulty"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/logging"
	"github.com/lixenwraith/labyrinth/render"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	// Flags override environment
	flag.IntVar(&cfg.PlayWidth, "width", cfg.PlayWidth, "play area width in units")
	flag.IntVar(&cfg.PlayHeight, "height", cfg.PlayHeight, "play area height in units")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "maze seed, 0 = time based")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path, empty disables logging")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error")
	flag.StringVar(&cfg.KeymapPath, "keymap", cfg.KeymapPath, "TOML keymap overrides")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	log, err := logging.New(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	keys, err := input.LoadKeyTable(cfg.KeymapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load keymap: %v\n", err)
		os.Exit(1)
	}

	session, err := engine.NewSession(engine.SessionConfig{
		Width:  cfg.PlayWidth,
		Height: cfg.PlayHeight,
		Seed:   cfg.Seed,
		Logger: log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	audioCfg := audio.LoadAudioConfig()
	if *mute {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.WithError(err).Warn("audio initialization failed, continuing without audio")
	}
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer crashGuard(screen, "LABYRINTH")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := &game{
		screen:   screen,
		session:  session,
		keys:     keys,
		renderer: render.NewRenderer(screen),
		sounds:   sounds,
		log:      log,
	}
	err = g.run(ctx)
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("exit")
		fmt.Fprintf(os.Stderr, "exit reason: %v\n", err)
	}

	for _, t := range difficulty.All() {
		if best, ok := session.Ledger().Best(t); ok {
			log.WithFields(logrus.Fields{
				"tier":    t.String(),
				"seconds": best.Seconds,
				"runs":    session.Ledger().Len(t),
			}).Info("best time")
		}
	}
}
