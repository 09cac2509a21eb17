package engine

import (
	"errors"

	"github.com/lixenwraith/pitchview/match"
)

// ErrInterpolationMismatch reports frames with differing player counts.
// A store built by match.Load cannot produce this; hitting it means the
// frame data was corrupted after load.
var ErrInterpolationMismatch = errors.New("engine: frames have differing player counts")

// Interpolate computes the fractional frame between a and b at t in [0,1].
// t=0 returns a exactly and t=1 returns b exactly; every coordinate of the
// ball and each player is blended independently per axis. t is not clamped
// here: callers own boundary drift, which keeps this function pure.
func Interpolate(a, b match.Frame, t float64) (match.Frame, error) {
	if len(a.Players) != len(b.Players) {
		return match.Frame{}, ErrInterpolationMismatch
	}

	out := match.Frame{
		Time: lerp(a.Time, b.Time, t),
		Ball: match.BallPosition{
			X: lerp(a.Ball.X, b.Ball.X, t),
			Y: lerp(a.Ball.Y, b.Ball.Y, t),
			Z: lerp(a.Ball.Z, b.Ball.Z, t),
		},
		Players: make([]match.Position, len(a.Players)),
	}
	for i := range a.Players {
		out.Players[i] = match.Position{
			X: lerp(a.Players[i].X, b.Players[i].X, t),
			Y: lerp(a.Players[i].Y, b.Players[i].Y, t),
		}
	}
	return out, nil
}

// lerp blends a toward b. The endpoints short-circuit so that t=1 yields
// b bit-exact; a+(b-a) alone can miss b by one ulp.
func lerp(a, b, t float64) float64 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a + (b-a)*t
}
