package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/pitchview/constants"
	"github.com/lixenwraith/pitchview/engine"
	"github.com/lixenwraith/pitchview/match"
)

// Command is a playback command accepted over the control API
type Command string

const (
	CommandToggle       Command = "toggle"
	CommandRestart      Command = "restart"
	CommandStepForward  Command = "step-forward"
	CommandStepBackward Command = "step-backward"
	CommandFastForward  Command = "fast-forward"
	CommandRewind       Command = "rewind"
)

// ParseCommand validates a command name from the URL
func ParseCommand(s string) (Command, error) {
	switch c := Command(s); c {
	case CommandToggle, CommandRestart, CommandStepForward,
		CommandStepBackward, CommandFastForward, CommandRewind:
		return c, nil
	default:
		return "", fmt.Errorf("server: unknown command %q", s)
	}
}

// snapshotMessage is the wire form of one tick's snapshot
type snapshotMessage struct {
	State      string      `json:"state"`
	Elapsed    float64     `json:"elapsed"`
	FrameIndex int         `json:"frame_index"`
	FrameCount int         `json:"frame_count"`
	NoData     bool        `json:"no_data,omitempty"`
	FastFwd    bool        `json:"fast_forward,omitempty"`
	Rewind     bool        `json:"rewind,omitempty"`
	Time       float64     `json:"time"`
	Ball       []float64   `json:"ball"`
	Players    [][]float64 `json:"players"`
}

func encodeSnapshot(snap engine.Snapshot) ([]byte, error) {
	msg := snapshotMessage{
		State:      snap.State.String(),
		Elapsed:    snap.Elapsed,
		FrameIndex: snap.FrameIndex,
		FrameCount: snap.FrameCount,
		NoData:     snap.NoData,
		FastFwd:    snap.FastForward,
		Rewind:     snap.Rewind,
		Time:       snap.Frame.Time,
		Ball:       []float64{snap.Frame.Ball.X, snap.Frame.Ball.Y, snap.Frame.Ball.Z},
		Players:    make([][]float64, len(snap.Frame.Players)),
	}
	for i, p := range snap.Frame.Players {
		msg.Players[i] = []float64{p.X, p.Y}
	}
	return json.Marshal(msg)
}

// Session owns a controller and drives it on a fixed tick, broadcasting
// each snapshot. Commands arrive over a channel so the controller is only
// ever touched from the session goroutine: one tick stays one Advance
// followed by one Snapshot.
type Session struct {
	controller *engine.Controller
	hub        *Hub
	commands   chan Command
}

// NewSession builds a session over a loaded store
func NewSession(store *match.Store, cfg engine.PlaybackConfig, hub *Hub) *Session {
	return &Session{
		controller: engine.NewController(store, cfg),
		hub:        hub,
		commands:   make(chan Command, 16),
	}
}

// Dispatch queues a command for the next tick boundary
func (s *Session) Dispatch(cmd Command) error {
	select {
	case s.commands <- cmd:
		return nil
	default:
		return fmt.Errorf("server: command queue full")
	}
}

// Run ticks the session until the context is canceled
func (s *Session) Run(ctx context.Context) {
	ticker := time.NewTicker(constants.BroadcastInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return

		case cmd := <-s.commands:
			s.apply(cmd)

		case now := <-ticker.C:
			s.controller.Advance(now.Sub(last).Seconds())
			last = now

			msg, err := encodeSnapshot(s.controller.Snapshot())
			if err != nil {
				log.Printf("snapshot encode error: %v", err)
				continue
			}
			s.hub.Broadcast(msg)
		}
	}
}

func (s *Session) apply(cmd Command) {
	switch cmd {
	case CommandToggle:
		s.controller.TogglePlayPause()
	case CommandRestart:
		s.controller.Restart()
	case CommandStepForward:
		s.controller.StepForward()
	case CommandStepBackward:
		s.controller.StepBackward()
	case CommandFastForward:
		s.controller.ToggleFastForward()
	case CommandRewind:
		s.controller.ToggleRewind()
	}
}
