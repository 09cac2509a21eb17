package engine

import (
	"fmt"

	"github.com/lixenwraith/pitchview/match"
)

// PlaybackState is the controller's top-level mode
type PlaybackState uint8

const (
	// StateStopped means no data is loaded; all commands are no-ops
	StateStopped PlaybackState = iota

	// StatePlaying means elapsed time advances with each tick
	StatePlaying

	// StatePaused means elapsed time is frozen at its current value
	StatePaused
)

// String returns the state name as shown in the HUD
func (s PlaybackState) String() string {
	switch s {
	case StateStopped:
		return "STOPPED"
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	}
	return fmt.Sprintf("PlaybackState(%d)", uint8(s))
}

// PlaybackConfig tunes controller timing. DataRate is a hint only: the
// bracketing pair is always derived from timestamps, so the controller
// stays agnostic to the actual spacing of the data.
type PlaybackConfig struct {
	// DataRate is the nominal telemetry rate in frames per second,
	// used as an O(1) starting estimate for bracket lookup
	DataRate float64

	// FastForwardSpeed is the scrub multiplier applied while fast-forwarding
	FastForwardSpeed float64

	// RewindSpeed is the scrub multiplier applied while rewinding
	RewindSpeed float64
}

// DefaultPlaybackConfig matches the nominal 30 fps telemetry feed with 5x scrubbing.
func DefaultPlaybackConfig() PlaybackConfig {
	return PlaybackConfig{
		DataRate:         30.0,
		FastForwardSpeed: 5.0,
		RewindSpeed:      5.0,
	}
}

// Snapshot is the controller's externally visible state for one tick.
// Adapters hold it as a read-only view; Frame is a fresh copy each tick.
type Snapshot struct {
	Frame       match.Frame
	State       PlaybackState
	Elapsed     float64
	FrameIndex  int // lower index of the bracketing pair
	FrameCount  int
	FastForward bool
	Rewind      bool

	// NoData flags an empty store. Non-fatal: the UI renders a message
	// and keeps running.
	NoData bool
}

// Controller owns the playback clock: elapsed time, playback state and the
// bracketing frame index. It is the sole mutator of that clock. All methods
// are total over valid stores and must be called from one goroutine; a tick
// is one Advance followed by one Snapshot.
type Controller struct {
	store *match.Store
	cfg   PlaybackConfig

	state       PlaybackState
	elapsed     float64
	index       int
	fastForward bool
	rewind      bool
}

// NewController creates a controller over a loaded store. A nil or empty
// store is accepted: the controller starts Stopped and reports NoData.
// Otherwise it starts Paused at time zero showing frame 0.
func NewController(store *match.Store, cfg PlaybackConfig) *Controller {
	c := &Controller{store: store, cfg: cfg, state: StateStopped}
	if store.FrameCount() > 0 {
		c.state = StatePaused
	}
	return c
}

func (c *Controller) empty() bool {
	return c.store.FrameCount() == 0
}

// frame fetches by index. The controller keeps its indices inside the
// store's bounds, so a failure here is a corrupted invariant.
func (c *Controller) frame(i int) match.Frame {
	f, err := c.store.FrameAt(i)
	if err != nil {
		panic(fmt.Sprintf("engine: controller index %d invalid: %v", i, err))
	}
	return f
}

// State returns the current playback state without materializing a snapshot
func (c *Controller) State() PlaybackState {
	return c.state
}

// TogglePlayPause switches between Playing and Paused, leaving any scrub
// mode. No-op when no data is loaded.
func (c *Controller) TogglePlayPause() {
	if c.empty() {
		return
	}
	c.fastForward = false
	c.rewind = false
	if c.state == StatePlaying {
		c.state = StatePaused
	} else {
		c.state = StatePlaying
	}
}

// Restart rewinds to time zero and pauses. Calling it twice is the same as
// calling it once. No-op when no data is loaded.
func (c *Controller) Restart() {
	if c.empty() {
		return
	}
	c.state = StatePaused
	c.elapsed = 0
	c.index = 0
	c.fastForward = false
	c.rewind = false
}

// StepForward pauses if needed and moves elapsed time to the next frame's
// exact timestamp. At the last frame it is a no-op.
func (c *Controller) StepForward() {
	if c.empty() {
		return
	}
	c.pauseForStep()
	last := c.store.FrameCount() - 1
	if c.index >= last {
		return
	}
	c.index++
	c.elapsed = c.frame(c.index).Time
}

// StepBackward pauses if needed and moves elapsed time to the previous
// frame's exact timestamp. Mid-bracket it first snaps back onto the lower
// frame. At the first frame it is a no-op.
func (c *Controller) StepBackward() {
	if c.empty() {
		return
	}
	c.pauseForStep()
	if cur := c.frame(c.index); c.elapsed > cur.Time {
		c.elapsed = cur.Time
		return
	}
	if c.index == 0 {
		return
	}
	c.index--
	c.elapsed = c.frame(c.index).Time
}

// pauseForStep makes stepping predictable: a step while Playing pauses
// first, then steps.
func (c *Controller) pauseForStep() {
	c.state = StatePaused
	c.fastForward = false
	c.rewind = false
}

// ToggleFastForward enters or leaves fast-forward scrubbing. Entering from
// Playing pauses normal playback; rewind and fast-forward are exclusive.
func (c *Controller) ToggleFastForward() {
	if c.empty() {
		return
	}
	if c.fastForward {
		c.fastForward = false
		return
	}
	c.state = StatePaused
	c.rewind = false
	c.fastForward = true
}

// ToggleRewind enters or leaves rewind scrubbing.
func (c *Controller) ToggleRewind() {
	if c.empty() {
		return
	}
	if c.rewind {
		c.rewind = false
		return
	}
	c.state = StatePaused
	c.fastForward = false
	c.rewind = true
}

// Advance moves the playback clock by the host tick's measured delta.
// Normal playback only advances while Playing and clamps at the last
// timestamp, pausing there; playback never loops on its own and time never
// goes negative. Scrub modes move time at their configured multiplier and
// clear themselves at the boundary they run into.
func (c *Controller) Advance(deltaSeconds float64) {
	if c.empty() || deltaSeconds <= 0 {
		return
	}
	last := c.store.LastTimestamp()

	switch {
	case c.fastForward:
		c.elapsed += deltaSeconds * c.cfg.FastForwardSpeed
		if c.elapsed >= last {
			c.elapsed = last
			c.fastForward = false
			c.state = StatePaused
		}
	case c.rewind:
		c.elapsed -= deltaSeconds * c.cfg.RewindSpeed
		if c.elapsed <= 0 {
			c.elapsed = 0
			c.rewind = false
			c.state = StatePaused
		}
	case c.state == StatePlaying:
		c.elapsed += deltaSeconds
		if c.elapsed >= last {
			c.elapsed = last
			c.state = StatePaused
		}
	default:
		return
	}

	c.index = c.lowerIndex(c.elapsed)
}

// lowerIndex finds i such that frame[i].Time <= elapsed < frame[i+1].Time,
// or the final index when elapsed sits at or past the last timestamp.
// The data rate hint gives an O(1) estimate for the evenly spaced case;
// the correction loops handle uneven spacing, and clamping the estimate
// covers a hint that lands outside the sequence.
func (c *Controller) lowerIndex(elapsed float64) int {
	n := c.store.FrameCount()
	if n == 0 {
		return 0
	}

	est := 0
	if c.cfg.DataRate > 0 {
		est = int(elapsed * c.cfg.DataRate)
	}
	if est < 0 {
		est = 0
	}
	if est > n-1 {
		est = n - 1
	}

	for est > 0 && c.frame(est).Time > elapsed {
		est--
	}
	for est < n-1 && c.frame(est+1).Time <= elapsed {
		est++
	}
	return est
}

// Snapshot materializes the current interpolated frame together with the
// playback state. At exactly the last timestamp the final frame is returned
// verbatim, the final index bracketing itself with t=0.
func (c *Controller) Snapshot() Snapshot {
	if c.empty() {
		return Snapshot{State: StateStopped, NoData: true}
	}

	snap := Snapshot{
		State:       c.state,
		Elapsed:     c.elapsed,
		FrameIndex:  c.index,
		FrameCount:  c.store.FrameCount(),
		FastForward: c.fastForward,
		Rewind:      c.rewind,
	}

	last := c.store.FrameCount() - 1
	if c.index >= last {
		snap.FrameIndex = last
		snap.Frame = c.frame(last).Clone()
		return snap
	}

	a := c.frame(c.index)
	b := c.frame(c.index + 1)
	t := 0.0
	if width := b.Time - a.Time; width > 0 {
		t = (c.elapsed - a.Time) / width
	}
	// Clamp float drift at the bracket edges; Interpolate's contract is a bare [0,1]
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	f, err := Interpolate(a, b, t)
	if err != nil {
		panic(fmt.Sprintf("engine: interpolation over store frames %d,%d: %v", c.index, c.index+1, err))
	}
	snap.Frame = f
	return snap
}
