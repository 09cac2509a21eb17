package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/pitchview/match"
)

func testFrame(time float64, fill float64) match.Frame {
	players := make([]match.Position, match.PlayerCount)
	for i := range players {
		players[i] = match.Position{X: fill + float64(i)*0.01, Y: fill}
	}
	return match.Frame{
		Time:    time,
		Ball:    match.BallPosition{X: fill, Y: fill, Z: fill / 2},
		Players: players,
	}
}

func framesEqual(a, b match.Frame) bool {
	if a.Time != b.Time || a.Ball != b.Ball || len(a.Players) != len(b.Players) {
		return false
	}
	for i := range a.Players {
		if a.Players[i] != b.Players[i] {
			return false
		}
	}
	return true
}

func TestInterpolateIdentity(t *testing.T) {
	// interpolate(f, f, t) == f exactly for any t
	f := testFrame(1.5, 0.3)
	for _, tf := range []float64{0, 0.25, 0.5, 0.999, 1} {
		got, err := Interpolate(f, f, tf)
		if err != nil {
			t.Fatalf("t=%v: %v", tf, err)
		}
		if !framesEqual(got, f) {
			t.Errorf("t=%v: interpolation of a frame with itself diverged: %+v", tf, got.Ball)
		}
	}
}

func TestInterpolateEndpointsExact(t *testing.T) {
	// Values chosen so a+(b-a) != b in float64 without the endpoint short-circuit
	a := testFrame(0, 0.1)
	b := testFrame(5, 0.3)

	got, err := Interpolate(a, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !framesEqual(got, a) {
		t.Errorf("t=0 does not reproduce frame a exactly")
	}

	got, err = Interpolate(a, b, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !framesEqual(got, b) {
		t.Errorf("t=1 does not reproduce frame b exactly")
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	a := testFrame(0, 0)
	b := testFrame(2, 1)
	b.Ball = match.BallPosition{X: 1, Y: 1, Z: 1}

	got, err := Interpolate(a, b, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Ball.X != 0.5 || got.Ball.Y != 0.5 || got.Ball.Z != 0.5 {
		t.Errorf("midpoint ball = %+v, want (0.5, 0.5, 0.5)", got.Ball)
	}
	if got.Time != 1 {
		t.Errorf("midpoint time = %v, want 1", got.Time)
	}
}

func TestInterpolateMismatchedPlayerCounts(t *testing.T) {
	a := testFrame(0, 0)
	b := testFrame(1, 1)
	b.Players = b.Players[:match.PlayerCount-1]

	if _, err := Interpolate(a, b, 0.5); !errors.Is(err, ErrInterpolationMismatch) {
		t.Errorf("err = %v, want ErrInterpolationMismatch", err)
	}
}
