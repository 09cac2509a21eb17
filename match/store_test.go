package match

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// frameJSON builds one frame object with the given time, ball literal and
// player count filled with valid coordinates.
func frameJSON(time float64, ball string, playerCount int) string {
	players := make([]string, playerCount)
	for i := range players {
		players[i] = "[0.5, 0.5]"
	}
	return fmt.Sprintf(`{"time": %v, "ball": %s, "players": [%s]}`,
		time, ball, strings.Join(players, ", "))
}

func TestLoadValidSequence(t *testing.T) {
	input := "[" + strings.Join([]string{
		frameJSON(0.0, "[0.1, 0.2, 0.3]", PlayerCount),
		frameJSON(0.5, "[0.4, 0.5]", PlayerCount),
		frameJSON(1.0, "[0.7, 0.8, 0.9]", PlayerCount),
	}, ",") + "]"

	store, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := store.FrameCount(); got != 3 {
		t.Errorf("FrameCount = %d, want 3", got)
	}
	if got := store.LastTimestamp(); got != 1.0 {
		t.Errorf("LastTimestamp = %v, want 1.0", got)
	}

	f0, err := store.FrameAt(0)
	if err != nil {
		t.Fatalf("FrameAt(0) failed: %v", err)
	}
	if f0.Ball != (BallPosition{X: 0.1, Y: 0.2, Z: 0.3}) {
		t.Errorf("frame 0 ball = %+v", f0.Ball)
	}
	if len(f0.Players) != PlayerCount {
		t.Errorf("frame 0 has %d players", len(f0.Players))
	}

	// 2-component ball falls back to ground level
	f1, _ := store.FrameAt(1)
	if f1.Ball != (BallPosition{X: 0.4, Y: 0.5, Z: 0}) {
		t.Errorf("frame 1 ball = %+v, want ground-level fallback", f1.Ball)
	}
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "this is not json"},
		{"not a list", `{"time": 0}`},
		{"empty list", "[]"},
		{"missing time", "[" + `{"ball": [0,0], "players": []}` + "]"},
		{"missing ball", `[{"time": 0, "players": []}]`},
		{"missing players", `[{"time": 0, "ball": [0,0]}]`},
		{"ball with one component", "[" + frameJSON(0, "[0.5]", PlayerCount) + "]"},
		{"ball with four components", "[" + frameJSON(0, "[1,2,3,4]", PlayerCount) + "]"},
		{"non-numeric coordinate", "[" + frameJSON(0, `["a", "b"]`, PlayerCount) + "]"},
		{"21 players", "[" + frameJSON(0, "[0,0]", PlayerCount-1) + "]"},
		{"23 players", "[" + frameJSON(0, "[0,0]", PlayerCount+1) + "]"},
		{"descending timestamps", "[" +
			frameJSON(1.0, "[0,0]", PlayerCount) + "," +
			frameJSON(0.5, "[0,0]", PlayerCount) + "]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Load(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Load accepted malformed input")
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("error is %T, want *FormatError", err)
			}
			if store != nil {
				t.Error("store produced despite format error")
			}
		})
	}
}

func TestLoadBadPlayerPair(t *testing.T) {
	players := make([]string, PlayerCount)
	for i := range players {
		players[i] = "[0.5, 0.5]"
	}
	players[7] = "[0.5, 0.5, 0.5]"
	input := fmt.Sprintf(`[{"time": 0, "ball": [0,0], "players": [%s]}]`,
		strings.Join(players, ","))

	_, err := Load(strings.NewReader(input))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FormatError", err)
	}
	if fe.Index != 0 {
		t.Errorf("FormatError.Index = %d, want 0", fe.Index)
	}
}

func TestLoadAllowsEqualTimestamps(t *testing.T) {
	// Non-decreasing, not strictly increasing: equal neighbors are legal
	input := "[" +
		frameJSON(1.0, "[0,0]", PlayerCount) + "," +
		frameJSON(1.0, "[1,1]", PlayerCount) + "]"
	if _, err := Load(strings.NewReader(input)); err != nil {
		t.Fatalf("equal timestamps rejected: %v", err)
	}
}

func TestLoadPassesThroughOutOfRangeCoordinates(t *testing.T) {
	// Range is advisory; the loader must not clamp
	input := "[" + frameJSON(0, "[-0.5, 1.5]", PlayerCount) + "]"
	store, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	f, _ := store.FrameAt(0)
	if f.Ball.X != -0.5 || f.Ball.Y != 1.5 {
		t.Errorf("ball = %+v, want unclamped pass-through", f.Ball)
	}
}

func TestFrameAtBounds(t *testing.T) {
	input := "[" + frameJSON(0, "[0,0]", PlayerCount) + "]"
	store, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, i := range []int{-1, 1, 100} {
		if _, err := store.FrameAt(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("FrameAt(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestNilStoreIsEmpty(t *testing.T) {
	var s *Store
	if s.FrameCount() != 0 {
		t.Error("nil store has frames")
	}
	if s.LastTimestamp() != 0 {
		t.Error("nil store has a last timestamp")
	}
	if _, err := s.FrameAt(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Error("nil store FrameAt(0) did not fail")
	}
}
