// Package game owns the simulation state and advances it one frame at a
// time: input, look, movement, clicks, then the render pass and overlay.
package game

import (
	"fmt"
	"math"

	"blockfield/craft/config"
	"blockfield/craft/hud"
	"blockfield/craft/input"
	"blockfield/craft/linalg"
	"blockfield/craft/logging"
	"blockfield/craft/movement"
	"blockfield/craft/picking"
	"blockfield/craft/render"
	"blockfield/craft/sound"
	"blockfield/craft/world"
	"blockfield/hal"
)

// Sky is the clear color of the main pass.
var Sky = render.RGB(166, 204, 255)

// CloudAlpha is the opacity of the cloud layer.
const CloudAlpha = 170

// maxDT bounds a single frame step after a stall.
const maxDT = 0.1

// Game is the simulation-state object.
type Game struct {
	Grid   *world.Grid
	Avatar movement.Avatar

	cfg  config.Config
	log  *logging.Logger
	h    hal.HAL
	fb   hal.Framebuffer
	proj linalg.Mat

	ctrl     *movement.Controller
	input    *input.Manager
	gate     *sound.Gate
	picker   picking.Picker
	aim      picking.RayPicker
	interact *picking.Interactor

	screen *render.RGB565Target
	device *render.Device
	hud    *hud.HUD
	clouds []render.Box

	target    world.Coord
	hasTarget bool
	lastTick  uint64
	version   string
	frames    uint64
}

// Options carries what New needs beyond the config.
type Options struct {
	Log     *logging.Logger
	Version string
}

// New generates the world, spawns the avatar and starts the ambience.
func New(h hal.HAL, cfg config.Config, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fb := h.Display().Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("game: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("game: unsupported pixel format %d", fb.Format())
	}

	wc := cfg.World
	gen, err := world.NewGenerator(wc.Generator, wc.Ground, wc.Seed)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	grid := world.NewGrid(wc.Length, wc.Width, wc.Height)
	gen.Generate(grid)

	log := opts.Log
	g := &Game{
		Grid:    grid,
		Avatar:  movement.Spawn(wc.Length, wc.Width, wc.Ground),
		cfg:     cfg,
		log:     log.With("game"),
		h:       h,
		fb:      fb,
		input:   input.NewManager(),
		hud:     hud.New(),
		clouds:  render.DefaultClouds,
		version: opts.Version,
		aim:     picking.RayPicker{MaxDist: cfg.Picking.MaxDist},
	}
	g.input.Divisor = cfg.Camera.LookDivisor
	g.input.Smoothing = cfg.Camera.LookSmoothing

	g.ctrl = movement.NewController(grid, movement.Params{
		Gravity:  cfg.Physics.Gravity,
		Terminal: cfg.Physics.Terminal,
		Jump:     cfg.Physics.Jump,
		Speed:    cfg.Physics.Speed,
	})

	g.gate = sound.NewGate(h.Speaker(), log.With("sound"))
	g.gate.Cooldown = cfg.Audio.Cooldown
	g.interact = picking.NewInteractor(grid, volumeSounds{g.gate, cfg.Audio.Volume})

	g.screen = &render.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	g.device = render.NewDevice(g.screen)
	g.device.SetClearColor(Sky)

	switch cfg.Picking.Mode {
	case "ray":
		g.picker = g.aim
	default:
		g.picker = picking.NewRenderPicker(g.device)
	}

	aspect := float64(fb.Width()) / float64(fb.Height())
	g.proj = linalg.Perspective(cfg.Camera.FOV*math.Pi/180, aspect, cfg.Camera.Near, cfg.Camera.Far)
	if _, err := linalg.Inverse(g.proj); err != nil {
		return nil, fmt.Errorf("game: projection: %w", err)
	}

	if err := g.gate.Background(cfg.Audio.Background); err != nil {
		g.log.Warnf("background: %v", err)
	}
	g.log.Infof("world %dx%dx%d (%s), %d solid cells, spawn %v",
		wc.Length, wc.Width, wc.Height, wc.Generator, grid.Count(), g.Avatar.Pos)
	return g, nil
}

// volumeSounds applies the configured effects volume to interactor cues.
type volumeSounds struct {
	gate   *sound.Gate
	volume float64
}

func (s volumeSounds) Play(cue string, _ float64) bool { return s.gate.Play(cue, s.volume) }

// Step runs one frame. It returns hal.ErrQuit when the player asks to leave.
func (g *Game) Step() error {
	if err := g.Update(g.elapsed()); err != nil {
		return err
	}
	return g.Draw()
}

// elapsed converts the millisecond HAL ticks seen since the last frame
// into seconds. Without a time source every frame counts as 1/60s.
func (g *Game) elapsed() float64 {
	t := g.h.Time()
	if t == nil {
		return 1.0 / 60
	}
	prev := g.lastTick
	ch := t.Ticks()
	for drained := false; !drained; {
		select {
		case seq := <-ch:
			g.lastTick = seq
		default:
			drained = true
		}
	}
	return float64(g.lastTick-prev) / 1000
}

// Update advances the simulation by dt seconds.
func (g *Game) Update(dt float64) error {
	g.frames++
	if dt < 0 {
		dt = 0
	}
	if dt > maxDT {
		dt = maxDT
	}

	in := g.h.Input()
	g.input.Sample()
	if in != nil {
		g.input.Drain(in.Keyboard(), in.Pointer())
	}
	if g.input.IsPressed(hal.KeyEscape) {
		return hal.ErrQuit
	}
	if g.input.IsPressed(hal.KeyF1) {
		g.hud.ShowHelp = !g.hud.ShowHelp
	}
	if g.input.IsPressed(hal.KeyF3) {
		g.hud.ShowDebug = !g.hud.ShowDebug
	}

	a := &g.Avatar
	a.Yaw, a.Pitch = g.input.Aim(a.Yaw, a.Pitch)

	f := g.ctrl.Step(a, dt, g.input.Intent())
	for _, cue := range f.Cues {
		g.gate.Play(cue, g.cfg.Audio.Volume)
	}
	if f.Hurt {
		g.log.Debugf("hard landing at %v", a.Pos)
	}

	for _, c := range g.input.Clicks() {
		g.Click(picking.Button(c.Button), float64(c.X), float64(c.Y))
	}

	g.hasTarget = false
	if g.hud.ShowDebug {
		w, h := float64(g.fb.Width()), float64(g.fb.Height())
		g.target, g.hasTarget = g.aim.Pick(g.Grid, a.Camera(), g.proj, w/2, h/2, w, h)
	}
	return nil
}

// Click picks the voxel under framebuffer point (x, y) and applies button b.
func (g *Game) Click(b picking.Button, x, y float64) picking.Outcome {
	w, h := float64(g.fb.Width()), float64(g.fb.Height())
	c, ok := g.picker.Pick(g.Grid, g.Avatar.Camera(), g.proj, x, y, w, h)
	if !ok {
		return picking.Outcome{}
	}
	out := g.interact.Click(b, c)
	if out.Changed > 0 {
		g.log.Debugf("button %d at %v changed %d cells", b, c, out.Changed)
	}
	return out
}

// Placeable is the block a right click would place.
func (g *Game) Placeable() world.Block { return g.interact.Placeable }

// DrawScene clears the bound target of d and draws the shaded grid with
// clouds on top. viewProj is the row-major projection times view.
func DrawScene(d *render.Device, g render.Grid, viewProj linalg.Mat, clouds []render.Box) {
	mvp := render.FromLinalg(viewProj)
	d.Clear()
	d.DrawVoxels(g, mvp, render.BlockColors, true)
	d.DrawClouds(mvp, clouds, CloudAlpha)
}

// Draw renders the world, the clouds and the overlay, then presents.
func (g *Game) Draw() error {
	DrawScene(g.device, g.Grid, g.proj.Mul(g.Avatar.Camera()), g.clouds)

	a := g.Avatar
	g.hud.Draw(g.screen, hud.Status{
		Placeable: g.interact.Placeable,
		Pos:       a.Pos,
		Yaw:       a.Yaw,
		Pitch:     a.Pitch,
		Target:    g.target,
		HasTarget: g.hasTarget,
		Version:   g.version,
	})
	return g.fb.Present()
}
