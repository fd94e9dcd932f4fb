package game

import (
	"math"
	"testing"

	"blockfield/craft/config"
	"blockfield/craft/picking"
	"blockfield/craft/render"
	"blockfield/craft/world"
	"blockfield/hal"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) ClearRGB(r, g, b uint8)  {}
func (f *fakeFB) Present() error          { f.presents++; return nil }

type fakeKeys chan hal.KeyEvent

func (k fakeKeys) Events() <-chan hal.KeyEvent { return k }

type fakePointer chan hal.PointerEvent

func (p fakePointer) Events() <-chan hal.PointerEvent { return p }

type fakeSpeaker struct{ plays, loops []string }

func (s *fakeSpeaker) Play(cue string, _ float64) error { s.plays = append(s.plays, cue); return nil }
func (s *fakeSpeaker) Loop(cue string, _ float64) error { s.loops = append(s.loops, cue); return nil }

type fakeTime chan uint64

func (t fakeTime) Ticks() <-chan uint64 { return t }

type fakeHAL struct {
	fb   *fakeFB
	keys fakeKeys
	ptr  fakePointer
	spk  *fakeSpeaker
	tick fakeTime
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		fb:   &fakeFB{w: w, h: h, buf: make([]byte, w*h*2)},
		keys: make(fakeKeys, 16),
		ptr:  make(fakePointer, 16),
		spk:  &fakeSpeaker{},
		tick: make(fakeTime, 64),
	}
}

func (f *fakeHAL) Logger() hal.Logger           { return nil }
func (f *fakeHAL) Display() hal.Display         { return f }
func (f *fakeHAL) Framebuffer() hal.Framebuffer { return f.fb }
func (f *fakeHAL) Input() hal.Input             { return f }
func (f *fakeHAL) Keyboard() hal.Keyboard       { return f.keys }
func (f *fakeHAL) Pointer() hal.Pointer         { return f.ptr }
func (f *fakeHAL) Speaker() hal.Speaker         { return f.spk }
func (f *fakeHAL) Time() hal.Time               { return f.tick }

func newGame(t *testing.T, mode string) (*Game, *fakeHAL) {
	t.Helper()
	h := newFakeHAL(64, 48)
	cfg := config.Default()
	cfg.Picking.Mode = mode
	g, err := New(h, cfg, Options{Version: "test"})
	require.NoError(t, err)
	return g, h
}

// standOver puts the avatar on the grass at cell (10,10,1), looking down.
func standOver(g *Game) {
	g.Avatar.Pos = mgl64.Vec3{21, 21, 5}
	g.Avatar.Falling = false
	g.Avatar.Pitch = math.Pi / 2
}

func TestNewSpawnsAndStartsAmbience(t *testing.T) {
	g, h := newGame(t, "render")
	assert.Equal(t, mgl64.Vec3{20, 20, 6}, g.Avatar.Pos)
	assert.True(t, g.Avatar.Falling)
	assert.Equal(t, world.Unbreakable, g.Grid.Get(0, 0, 0))
	assert.Equal(t, world.Grass, g.Placeable())
	assert.Equal(t, []string{world.CueBackground}, h.spk.loops)
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.World.Generator = "caves"
	_, err := New(newFakeHAL(8, 8), cfg, Options{})
	assert.Error(t, err)

	cfg = config.Default()
	cfg.World.Length = 0
	_, err = New(newFakeHAL(8, 8), cfg, Options{})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestAvatarSettlesOnGround(t *testing.T) {
	g, _ := newGame(t, "render")
	for i := 0; i < 30; i++ {
		require.NoError(t, g.Update(1.0/60))
	}
	assert.GreaterOrEqual(t, g.Avatar.Pos[2], 5.0)
	assert.LessOrEqual(t, g.Avatar.Pos[2], 5.2)
}

func TestEscapeQuits(t *testing.T) {
	g, h := newGame(t, "render")
	h.keys <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	assert.ErrorIs(t, g.Update(1.0/60), hal.ErrQuit)
}

func TestFunctionKeysToggleOverlay(t *testing.T) {
	g, h := newGame(t, "render")
	h.keys <- hal.KeyEvent{Code: hal.KeyF3, Press: true}
	require.NoError(t, g.Update(0))
	assert.True(t, g.hud.ShowDebug)

	standOver(g)
	require.NoError(t, g.Update(0))
	assert.True(t, g.hasTarget)
	assert.Equal(t, world.Coord{X: 10, Y: 10, Z: 1}, g.target)

	h.keys <- hal.KeyEvent{Code: hal.KeyF3, Press: false}
	h.keys <- hal.KeyEvent{Code: hal.KeyF1, Press: true}
	require.NoError(t, g.Update(0))
	assert.True(t, g.hud.ShowDebug, "release does not toggle")
	assert.True(t, g.hud.ShowHelp)
}

func TestClickBreaksAndPlaces(t *testing.T) {
	for _, mode := range []string{"render", "ray"} {
		t.Run(mode, func(t *testing.T) {
			g, h := newGame(t, mode)
			standOver(g)

			out := g.Click(picking.ButtonLeft, 32, 24)
			assert.Equal(t, 1, out.Changed)
			assert.Equal(t, world.CueBreakGrass, out.Cue)
			assert.Equal(t, world.Empty, g.Grid.Get(10, 10, 1))
			assert.Contains(t, h.spk.plays, world.CueBreakGrass)

			out = g.Click(picking.ButtonLeft, 32, 24)
			assert.Zero(t, out.Changed, "unbreakable floor below")

			out = g.Click(picking.ButtonRight, 32, 24)
			assert.Equal(t, 1, out.Changed)
			assert.Equal(t, world.Grass, g.Grid.Get(10, 10, 1))
		})
	}
}

func TestPointerClicksReachInteractor(t *testing.T) {
	g, h := newGame(t, "ray")
	standOver(g)
	h.ptr <- hal.PointerEvent{X: 32, Y: 24, Button: 1, Press: true}
	require.NoError(t, g.Update(0))
	assert.Equal(t, world.Empty, g.Grid.Get(10, 10, 1))
}

func TestStepDrawsAndPresents(t *testing.T) {
	g, h := newGame(t, "render")
	h.tick <- 16
	require.NoError(t, g.Step())
	assert.Equal(t, 1, h.fb.presents)
	assert.Equal(t, uint64(16), g.lastTick)

	screen := &render.RGB565Target{Buf: h.fb.buf, Stride: 128, W: 64, H: 48}
	sky := render.Unpack565(render.Pack565(Sky))
	assert.NotEqual(t, sky, screen.At(32, 47), "ground fills the bottom row")
	assert.Equal(t, render.RGB(255, 255, 255), screen.At(32, 24), "crosshair")
}

func TestElapsedFromTicks(t *testing.T) {
	g, h := newGame(t, "render")
	h.tick <- 10
	h.tick <- 26
	assert.InDelta(t, 0.026, g.elapsed(), 1e-12)
	assert.Zero(t, g.elapsed())
}
