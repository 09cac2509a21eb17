package constants

import "time"

// Timing
const (
	// FrameUpdateInterval is the render tick interval (~60 FPS). The
	// controller is advanced once per tick with the measured delta.
	FrameUpdateInterval = 16 * time.Millisecond

	// BroadcastInterval is the snapshot push rate of the websocket
	// adapter, matching the nominal telemetry rate
	BroadcastInterval = 33 * time.Millisecond
)

// Data expectations
const (
	// DefaultDataRate is the nominal telemetry rate in frames per second
	DefaultDataRate = 30.0

	// SmoothFrameLimit is where playback smoothness degrades in practice.
	// Documented, not enforced: larger files still load.
	SmoothFrameLimit = 1000
)
