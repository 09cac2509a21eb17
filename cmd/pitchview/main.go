package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitchview/audio"
	"github.com/lixenwraith/pitchview/config"
	"github.com/lixenwraith/pitchview/constants"
	"github.com/lixenwraith/pitchview/engine"
	"github.com/lixenwraith/pitchview/input"
	"github.com/lixenwraith/pitchview/match"
	"github.com/lixenwraith/pitchview/render"
)

var (
	configFlag = flag.String("config", "", "Path to config file (default: ./config.yaml if present)")
	dataFlag   = flag.String("data", "", "Telemetry file to replay (overrides config)")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	dataFile := cfg.DataFile
	if *dataFlag != "" {
		dataFile = *dataFlag
	}

	// A rejected file is reported, never patched; the UI still comes up
	// and shows the no-data message
	store, err := match.LoadFile(dataFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", dataFile, err)
	} else if store.FrameCount() > constants.SmoothFrameLimit {
		fmt.Fprintf(os.Stderr, "note: %d frames loaded, playback may stutter above %d\n",
			store.FrameCount(), constants.SmoothFrameLimit)
	}

	controller := engine.NewController(store, cfg.Playback)

	cues, err := audio.NewCues(cfg.AudioEnabled && !*muteFlag)
	if err != nil {
		// Non-fatal, the visualizer runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Error: failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Error: failed to initialize screen: %v", err)
	}

	// Panic recovery: restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nPITCHVIEW CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	pipeline := render.NewPipeline(screen)
	pipeline.Register(render.NewPitchRenderer(), render.PriorityPitch)
	pipeline.Register(render.NewEntityRenderer(), render.PriorityEntities)
	pipeline.Register(render.NewHUDRenderer(), render.PriorityHUD)

	keys := input.DefaultKeyTable()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if !handleIntent(keys.Lookup(ev), controller, cues) {
					return
				}
			}

		case now := <-frameTicker.C:
			// One tick: exactly one advance, then one snapshot for the draw
			controller.Advance(now.Sub(last).Seconds())
			last = now
			pipeline.RenderFrame(controller.Snapshot())
		}
	}
}

// handleIntent applies one playback command; false means quit
func handleIntent(intent input.Intent, controller *engine.Controller, cues *audio.Cues) bool {
	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentTogglePlay:
		controller.TogglePlayPause()
		if controller.State() == engine.StatePlaying {
			cues.Play()
		} else {
			cues.Pause()
		}
	case input.IntentRestart:
		controller.Restart()
	case input.IntentStepForward:
		controller.StepForward()
		cues.Step()
	case input.IntentStepBackward:
		controller.StepBackward()
		cues.Step()
	case input.IntentFastForward:
		controller.ToggleFastForward()
	case input.IntentRewind:
		controller.ToggleRewind()
	}
	return true
}
