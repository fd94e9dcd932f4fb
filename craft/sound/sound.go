// Package sound maps block cues to audio assets and rate-limits playback.
package sound

import (
	"path"
	"time"

	"blockfield/craft/logging"
	"blockfield/craft/world"
	"blockfield/hal"
)

// DefaultCooldown is the minimum gap between two accepted cues.
const DefaultCooldown = 300 * time.Millisecond

// Assets maps every cue to its Ogg Vorbis file, relative to the asset root.
func Assets() map[string]string {
	m := map[string]string{
		world.CueBackground: "sound/background/forest.ogg",
		world.CueHurt:       "sound/hurt.ogg",
		world.CueStepGrass:  "sound/step/grass4.ogg",
		world.CueStepSnow:   "sound/step/snow2.ogg",
		world.CueStepSand:   "sound/step/sand2.ogg",
		world.CueStepStone:  "sound/step/stone4.ogg",
		world.CueStepWood:   "sound/step/wood2.ogg",
	}
	for _, kind := range []string{"grass", "glass", "snow", "sand", "stone", "wood", "tnt"} {
		m["break_"+kind] = path.Join("sound/break", kind+".ogg")
		if kind != "tnt" {
			m["place_"+kind] = path.Join("sound/place", kind+".ogg")
		}
	}
	return m
}

// Gate plays cues through a speaker, dropping any cue that arrives within
// Cooldown of the last accepted one. The cooldown is shared by all cues.
type Gate struct {
	Speaker  hal.Speaker
	Cooldown time.Duration
	Clock    func() time.Duration
	Log      *logging.Logger

	last   time.Duration
	played bool
}

// NewGate returns a gate timed by the wall clock since creation.
func NewGate(s hal.Speaker, log *logging.Logger) *Gate {
	start := time.Now()
	return &Gate{
		Speaker:  s,
		Cooldown: DefaultCooldown,
		Clock:    func() time.Duration { return time.Since(start) },
		Log:      log,
	}
}

// Play reports whether the cue was handed to the speaker.
func (g *Gate) Play(cue string, volume float64) bool {
	if cue == "" || g.Speaker == nil {
		return false
	}
	now := g.Clock()
	if g.played && now-g.last <= g.Cooldown {
		return false
	}
	g.last, g.played = now, true
	if err := g.Speaker.Play(cue, clamp(volume)); err != nil {
		g.Log.Warnf("play %s: %v", cue, err)
	}
	return true
}

// Background starts the looping ambience. It bypasses the cooldown.
func (g *Gate) Background(volume float64) error {
	if g.Speaker == nil {
		return nil
	}
	return g.Speaker.Loop(world.CueBackground, clamp(volume))
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
