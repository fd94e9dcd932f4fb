package sound

import (
	"errors"
	"strings"
	"testing"
	"time"

	"blockfield/craft/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type played struct {
	cue    string
	volume float64
	loop   bool
}

type fakeSpeaker struct {
	calls []played
	err   error
}

func (s *fakeSpeaker) Play(cue string, v float64) error {
	s.calls = append(s.calls, played{cue, v, false})
	return s.err
}

func (s *fakeSpeaker) Loop(cue string, v float64) error {
	s.calls = append(s.calls, played{cue, v, true})
	return s.err
}

func newTestGate() (*Gate, *fakeSpeaker, *time.Duration) {
	spk := &fakeSpeaker{}
	now := new(time.Duration)
	g := &Gate{Speaker: spk, Cooldown: DefaultCooldown, Clock: func() time.Duration { return *now }}
	return g, spk, now
}

func TestGateCooldownIsGlobalAndStrict(t *testing.T) {
	g, spk, now := newTestGate()

	assert.True(t, g.Play(world.CueStepGrass, 1))
	*now = 100 * time.Millisecond
	assert.False(t, g.Play(world.CueBreakStone, 1), "different cue, still cooling down")
	*now = 300 * time.Millisecond
	assert.False(t, g.Play(world.CueStepGrass, 1), "exactly the cooldown is not enough")
	*now = 301 * time.Millisecond
	assert.True(t, g.Play(world.CueBreakStone, 1))

	require.Len(t, spk.calls, 2)
	assert.Equal(t, world.CueBreakStone, spk.calls[1].cue)
}

func TestGateClampsVolume(t *testing.T) {
	g, spk, now := newTestGate()
	g.Play(world.CueHurt, 3)
	*now = time.Second
	g.Play(world.CueHurt, -1)
	require.Len(t, spk.calls, 2)
	assert.Equal(t, 1.0, spk.calls[0].volume)
	assert.Equal(t, 0.0, spk.calls[1].volume)
}

func TestGateIgnoresEmptyCue(t *testing.T) {
	g, spk, _ := newTestGate()
	assert.False(t, g.Play("", 1))
	assert.True(t, g.Play(world.CueHurt, 1))
	assert.Len(t, spk.calls, 1)
}

func TestGateSpeakerErrorStillCounts(t *testing.T) {
	g, spk, _ := newTestGate()
	spk.err = errors.New("no device")
	assert.True(t, g.Play(world.CueHurt, 1))
	assert.False(t, g.Play(world.CueHurt, 1))
}

func TestBackgroundLoops(t *testing.T) {
	g, spk, _ := newTestGate()
	require.NoError(t, g.Background(0.5))
	assert.Equal(t, []played{{world.CueBackground, 0.5, true}}, spk.calls)
	assert.True(t, g.Play(world.CueHurt, 1), "background does not start the cooldown")
}

func TestAssetsCoverEveryBlockCue(t *testing.T) {
	assets := Assets()
	for b := world.Empty; b <= world.Cloud; b++ {
		info := b.Info()
		for _, cue := range []string{info.Break, info.Place, info.Step} {
			if cue == "" {
				continue
			}
			p, ok := assets[cue]
			require.True(t, ok, "%s cue %q", info.Name, cue)
			assert.True(t, strings.HasSuffix(p, ".ogg"), p)
		}
	}
	assert.Equal(t, "sound/break/tnt.ogg", assets[world.CueBreakTNT])
	_, ok := assets["place_tnt"]
	assert.False(t, ok)
}
