// Package audio plays short feedback tones for playback commands. Audio is
// never load-bearing: initialization failure leaves a muted cue player and
// the visualizer runs without sound.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const cueSampleRate = beep.SampleRate(44100)

// Cues produces the feedback tones
type Cues struct {
	enabled bool
}

// NewCues initializes the speaker. Any failure is swallowed into a muted
// player; callers log it and move on.
func NewCues(enabled bool) (*Cues, error) {
	c := &Cues{}
	if !enabled {
		return c, nil
	}
	if err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.enabled = true
	return c, nil
}

// Play sounds the resume cue
func (c *Cues) Play() { c.tone(660, 60*time.Millisecond) }

// Pause sounds the pause cue
func (c *Cues) Pause() { c.tone(440, 60*time.Millisecond) }

// Step sounds the single-step click
func (c *Cues) Step() { c.tone(880, 30*time.Millisecond) }

func (c *Cues) tone(freq float64, d time.Duration) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(cueSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(cueSampleRate.N(d), sine))
}
