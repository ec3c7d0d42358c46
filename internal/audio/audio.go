// Package audio plays short synthesized cues for raid events.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cues plays fire-and-forget tones through a shared mixer. When the
// speaker is unavailable every cue is a no-op, the game keeps running.
type Cues struct {
	mixer       *beep.Mixer
	initialized bool
}

// New prepares the audio device. Disabled audio or a failed speaker
// init yields a silent but usable Cues.
func New(enabled bool) *Cues {
	c := &Cues{mixer: &beep.Mixer{}}
	if !enabled {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return c
}

// Enabled reports whether the speaker came up.
func (c *Cues) Enabled() bool {
	return c.initialized
}

// Close silences the mixer. beep has no speaker close, clearing the
// mixer is enough to stop output.
func (c *Cues) Close() {
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// tone queues a sine burst. The mixer drops finished streamers on its
// own, so bursts need no bookkeeping here.
func (c *Cues) tone(freq float64, d time.Duration) {
	if !c.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(beep.Take(sampleRate.N(d), sine))
	speaker.Unlock()
}

// Shot plays the weapon discharge cue.
func (c *Cues) Shot() {
	c.tone(180, 40*time.Millisecond)
}

// Impact plays the projectile hit cue.
func (c *Cues) Impact() {
	c.tone(880, 30*time.Millisecond)
}

// Kill plays the hostile down cue.
func (c *Cues) Kill() {
	c.tone(520, 60*time.Millisecond)
}

// Pickup plays the loot taken cue.
func (c *Cues) Pickup() {
	c.tone(660, 35*time.Millisecond)
}

// Extract plays the successful extraction sting.
func (c *Cues) Extract() {
	c.tone(740, 250*time.Millisecond)
}

// Death plays the operator down sting.
func (c *Cues) Death() {
	c.tone(110, 500*time.Millisecond)
}
