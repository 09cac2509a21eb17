package match

// PlayerCount is the number of player positions every frame must carry
const PlayerCount = 22

// Team index ranges within Frame.Players. Fixed at load time, never recomputed.
const (
	// HomeStart is the first index of the home side
	HomeStart = 0

	// HomeEnd is one past the last index of the home side
	HomeEnd = 11

	// AwayStart is the first index of the away side
	AwayStart = 11

	// AwayEnd is one past the last index of the away side
	AwayEnd = 22
)

// Position is a 2D pitch coordinate normalized to [0,1] on both axes.
// The range is advisory: out-of-range values pass through unchanged
// because the source format does not clamp.
type Position struct {
	X float64
	Y float64
}

// BallPosition is a pitch coordinate plus normalized height.
// Z is 0 at ground level and 1 at maximum height.
type BallPosition struct {
	X float64
	Y float64
	Z float64
}

// Frame is one timestamped snapshot of all entity positions.
// Immutable after load; the store and controller hand out copies only.
type Frame struct {
	// Time is the frame timestamp in seconds, non-decreasing across a sequence
	Time float64

	Ball BallPosition

	// Players holds exactly PlayerCount entries,
	// [HomeStart,HomeEnd) home and [AwayStart,AwayEnd) away
	Players []Position
}

// Clone returns a deep copy of the frame so callers can hand it across
// goroutine boundaries without aliasing the store's data.
func (f Frame) Clone() Frame {
	players := make([]Position, len(f.Players))
	copy(players, f.Players)
	f.Players = players
	return f
}
