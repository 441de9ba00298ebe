package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/void191/v0-game-engine/audio"
	"github.com/void191/v0-game-engine/config"
	"github.com/void191/v0-game-engine/engine"
	"github.com/void191/v0-game-engine/input"
	"github.com/void191/v0-game-engine/physics"
	"github.com/void191/v0-game-engine/scene"
)

var (
	sceneFlag  = flag.String("scene", "", "Scene file to load (overrides config)")
	configFlag = flag.String("config", "", "Config file path")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/polyforge.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *sceneFlag != "" {
		cfg.ScenePath = *sceneFlag
	}

	logger, logFile := setupLogging(*debugFlag, cfg.LogPath)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Reset the terminal before reporting a crash, otherwise the trace is
	// unreadable in raw mode.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	screen.EnableMouse()

	var player *audio.Player
	if cfg.Audio.Enabled && !*muteFlag {
		player, err = audio.NewPlayer(cfg.Audio.SampleRate, cfg.Audio.MasterVolume)
		if err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing silent")
			player = nil
		} else {
			defer player.Close()
		}
	}

	state := input.NewState()
	library := scene.NewLibrary()
	if cfg.PrefabDir != "" {
		if err := library.LoadDir(cfg.PrefabDir); err != nil {
			logger.Warn().Err(err).Str("dir", cfg.PrefabDir).Msg("prefab load failed")
		}
	}

	world := engine.NewWorld(
		engine.WithLogger(logger),
		engine.WithGravity(cfg.GravityVec()),
		engine.WithFixedDt(cfg.FixedDelta()),
		engine.WithMaxCatchUp(cfg.MaxCatchUpSteps),
		engine.WithInput(state),
		engine.WithSpawner(library),
	)
	world.Clock().TimeScale = cfg.TimeScale

	doc, err := scene.Load(cfg.ScenePath)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "scene: %v\n", err)
		os.Exit(1)
	}
	if _, err := doc.Spawn(world); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "scene spawn: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Str("scene", doc.Name).Int("entities", len(doc.Entities)).Msg("scene loaded")

	// Terminal events arrive on their own goroutine; the frame loop only
	// ever reads the captured snapshot.
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyCtrlC || e.Key() == tcell.KeyEscape {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				continue
			}
			input.Feed(state, ev)
		}
	}()

	view := newTerminalView(screen)
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			frameDt := now.Sub(last).Seconds()
			last = now

			report := world.Step(frameDt)
			playCues(player, report)
			view.draw(world.Snapshot())
		}
	}
}

// playCues maps this frame's overlap transitions to tone cues. Stays are
// silent; a continuous tone per resting contact would be noise.
func playCues(player *audio.Player, report engine.StepReport) {
	for _, ev := range report.Events {
		if ev.Kind != physics.PairEnter {
			continue
		}
		if ev.Trigger {
			player.Play(audio.CueTrigger)
		} else {
			player.Play(audio.CueCollision)
		}
	}
}
