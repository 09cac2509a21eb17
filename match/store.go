package match

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIndexOutOfRange reports a frame access outside [0, FrameCount).
// It indicates a caller bug, not bad data.
var ErrIndexOutOfRange = errors.New("match: frame index out of range")

// FormatError describes why a telemetry file was rejected at load time.
// Loading never patches or re-sorts bad input; producer bugs must surface.
type FormatError struct {
	// Index is the offending frame index, or -1 when the list itself is malformed
	Index  int
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("match: invalid telemetry: %s", e.Reason)
	}
	return fmt.Sprintf("match: invalid telemetry: frame %d: %s", e.Index, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// rawFrame mirrors the wire format. Pointer fields distinguish a missing
// key from a present zero value.
type rawFrame struct {
	Time    *float64    `json:"time"`
	Ball    []float64   `json:"ball"`
	Players [][]float64 `json:"players"`
}

// Store is an immutable, ascending-by-timestamp sequence of frames.
// It is loaded once and read-only for its lifetime.
type Store struct {
	frames []Frame
}

// Load decodes and validates a telemetry stream. The input must be a
// non-empty JSON list of frame objects; every frame needs a time, a ball
// coordinate of 2 or 3 numbers (2 means ground level) and exactly
// PlayerCount 2-number player coordinates. Timestamps must not decrease.
// Any violation returns a *FormatError and no Store.
func Load(r io.Reader) (*Store, error) {
	var raw []rawFrame
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &FormatError{Index: -1, Reason: "not a list of frame objects", Err: err}
	}
	if len(raw) == 0 {
		return nil, &FormatError{Index: -1, Reason: "frame list is empty"}
	}

	frames := make([]Frame, 0, len(raw))
	prev := 0.0
	for i, rf := range raw {
		f, err := buildFrame(i, rf)
		if err != nil {
			return nil, err
		}
		if i > 0 && f.Time < prev {
			return nil, &FormatError{
				Index:  i,
				Reason: fmt.Sprintf("timestamp %v decreases below %v", f.Time, prev),
			}
		}
		prev = f.Time
		frames = append(frames, f)
	}

	return &Store{frames: frames}, nil
}

// LoadFile opens and loads a telemetry file from disk.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func buildFrame(i int, rf rawFrame) (Frame, error) {
	if rf.Time == nil {
		return Frame{}, &FormatError{Index: i, Reason: "missing time field"}
	}
	if rf.Ball == nil {
		return Frame{}, &FormatError{Index: i, Reason: "missing ball field"}
	}
	if rf.Players == nil {
		return Frame{}, &FormatError{Index: i, Reason: "missing players field"}
	}

	var ball BallPosition
	switch len(rf.Ball) {
	case 2:
		// Old 2D format, ball assumed on the ground
		ball = BallPosition{X: rf.Ball[0], Y: rf.Ball[1]}
	case 3:
		ball = BallPosition{X: rf.Ball[0], Y: rf.Ball[1], Z: rf.Ball[2]}
	default:
		return Frame{}, &FormatError{
			Index:  i,
			Reason: fmt.Sprintf("ball coordinate has %d components, want 2 or 3", len(rf.Ball)),
		}
	}

	if len(rf.Players) != PlayerCount {
		return Frame{}, &FormatError{
			Index:  i,
			Reason: fmt.Sprintf("player list has %d entries, want %d", len(rf.Players), PlayerCount),
		}
	}

	players := make([]Position, PlayerCount)
	for j, p := range rf.Players {
		if len(p) != 2 {
			return Frame{}, &FormatError{
				Index:  i,
				Reason: fmt.Sprintf("player %d coordinate has %d components, want 2", j, len(p)),
			}
		}
		players[j] = Position{X: p[0], Y: p[1]}
	}

	return Frame{Time: *rf.Time, Ball: ball, Players: players}, nil
}

// FrameCount returns the number of stored frames.
func (s *Store) FrameCount() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// FrameAt returns the frame at index i. The frame shares the store's
// player slice; callers must treat it as read-only or Clone it.
func (s *Store) FrameAt(i int) (Frame, error) {
	if s == nil || i < 0 || i >= len(s.frames) {
		return Frame{}, ErrIndexOutOfRange
	}
	return s.frames[i], nil
}

// LastTimestamp returns the timestamp of the final frame, 0 when empty.
func (s *Store) LastTimestamp() float64 {
	if s == nil || len(s.frames) == 0 {
		return 0
	}
	return s.frames[len(s.frames)-1].Time
}
