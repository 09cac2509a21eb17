// Command genmatch generates synthetic match telemetry for testing the
// visualizer: two 11-player formations shadowing a wandering ball that gets
// kicked into the air now and then.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/lixenwraith/pitchview/match"
)

var (
	outFlag      = flag.String("out", "sample_match.json", "Output file")
	durationFlag = flag.Float64("duration", 30.0, "Match duration in seconds")
	fpsFlag      = flag.Float64("fps", 30.0, "Telemetry rate in frames per second")
	seedFlag     = flag.Int64("seed", 0, "Random seed (0: nondeterministic)")
)

type frameData struct {
	Time    float64     `json:"time"`
	Ball    []float64   `json:"ball"`
	Players [][]float64 `json:"players"`
}

type vec struct{ x, y float64 }

// formation is a 5-5-1 anchored to one half, mirrored via sign
func formation(mirror bool) []vec {
	base := []vec{
		{0.1, 0.1}, {0.15, 0.1}, {0.2, 0.1}, {0.25, 0.1}, {0.3, 0.1},
		{0.1, 0.3}, {0.15, 0.3}, {0.2, 0.3}, {0.25, 0.3}, {0.3, 0.3},
		{0.1, 0.5},
	}
	if !mirror {
		return base
	}
	out := make([]vec, len(base))
	for i, p := range base {
		out[i] = vec{1 - p.x, p.y}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func generate(rng *rand.Rand, duration, fps float64) []frameData {
	total := int(duration * fps)
	home := formation(false)
	away := formation(true)

	ball := vec{0.5, 0.5}
	ballDir := rng.Float64() * 2 * math.Pi
	ballHeight := 0.0
	ballVelZ := 0.0

	const (
		ballSpeed = 0.02
		gravity   = -0.02
		kickOdds  = 0.05
	)

	frames := make([]frameData, 0, total)
	for i := 0; i < total; i++ {
		if i > 0 {
			ballDir += rng.Float64()*0.2 - 0.1
			ball.x = clamp(ball.x+ballSpeed*math.Cos(ballDir), 0.05, 0.95)
			ball.y = clamp(ball.y+ballSpeed*math.Sin(ballDir), 0.05, 0.95)

			// Crude vertical physics: gravity plus the occasional kick
			ballVelZ += gravity
			if rng.Float64() < kickOdds {
				ballVelZ = 0.1 + rng.Float64()*0.2
			}
			ballHeight += ballVelZ
			if ballHeight < 0 {
				ballHeight, ballVelZ = 0, 0
			}
			if ballHeight > 1 {
				ballHeight, ballVelZ = 1, 0
			}

			drift(rng, home, ball, 0.05, 0.45)
			drift(rng, away, ball, 0.55, 0.95)
		}

		players := make([][]float64, 0, match.PlayerCount)
		for _, p := range home {
			players = append(players, []float64{p.x, p.y})
		}
		for _, p := range away {
			players = append(players, []float64{p.x, p.y})
		}

		frames = append(frames, frameData{
			Time:    float64(i) / fps,
			Ball:    []float64{ball.x, ball.y, ballHeight},
			Players: players,
		})
	}
	return frames
}

// drift nudges each player toward the ball with a little jitter, kept
// inside the team's own half span [loX, hiX]
func drift(rng *rand.Rand, team []vec, ball vec, loX, hiX float64) {
	for i, p := range team {
		dx := (ball.x-p.x)*0.01 + (rng.Float64()*0.01 - 0.005)
		dy := (ball.y-p.y)*0.01 + (rng.Float64()*0.01 - 0.005)
		team[i] = vec{
			x: clamp(p.x+dx, loX, hiX),
			y: clamp(p.y+dy, 0.05, 0.95),
		}
	}
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	frames := generate(rng, *durationFlag, *fpsFlag)

	data, err := json.MarshalIndent(frames, "", "  ")
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := os.WriteFile(*outFlag, data, 0o644); err != nil {
		log.Fatalf("Error: %v", err)
	}
	log.Printf("generated %d frames to %s (seed %d)", len(frames), *outFlag, seed)
}
