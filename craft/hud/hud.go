// Package hud draws the text overlay and crosshair over a finished frame.
package hud

import (
	"fmt"
	"image/color"

	"blockfield/craft/render"
	"blockfield/craft/world"

	"github.com/go-gl/mathgl/mgl64"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// display adapts a render.Target for tinyfont.
type display struct {
	t render.Target
}

var _ drivers.Displayer = (*display)(nil)

func (d *display) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *display) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), render.Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (d *display) Display() error { return nil }

// Status is what the overlay reports for one frame.
type Status struct {
	Placeable world.Block
	Pos       mgl64.Vec3
	Yaw       float64
	Pitch     float64
	Target    world.Coord
	HasTarget bool
	Version   string
}

type HUD struct {
	Font      tinyfont.Fonter
	Fg        color.RGBA
	Shadow    color.RGBA
	Crosshair int // arm length in pixels; 0 hides it

	ShowDebug bool
	ShowHelp  bool
}

func New() *HUD {
	return &HUD{
		Font:      &tinyfont.TomThumb,
		Fg:        color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Shadow:    color.RGBA{A: 0xFF},
		Crosshair: 4,
	}
}

var helpLines = []string{
	"wasd/arrows move, space jump",
	"shift+mouse look",
	"left click break, right click place",
	"f1 help, f3 debug, esc quit",
}

// Lines returns the text rows Draw would print, top to bottom.
func (h *HUD) Lines(s Status) []string {
	lines := []string{"block: " + s.Placeable.String()}
	if h.ShowDebug {
		lines = append(lines,
			fmt.Sprintf("pos %.1f %.1f %.1f", s.Pos[0], s.Pos[1], s.Pos[2]),
			fmt.Sprintf("yaw %.2f pitch %.2f", s.Yaw, s.Pitch),
		)
		if s.HasTarget {
			lines = append(lines, "target "+s.Target.String())
		}
		if s.Version != "" {
			lines = append(lines, s.Version)
		}
	}
	if h.ShowHelp {
		lines = append(lines, helpLines...)
	}
	return lines
}

func (h *HUD) Draw(t render.Target, s Status) {
	d := &display{t: t}
	adv := int16(h.Font.GetYAdvance()) + 1
	y := adv
	for _, line := range h.Lines(s) {
		tinyfont.WriteLine(d, h.Font, 3, y+1, line, h.Shadow)
		tinyfont.WriteLine(d, h.Font, 2, y, line, h.Fg)
		y += adv
	}
	h.drawCrosshair(t)
}

func (h *HUD) drawCrosshair(t render.Target) {
	if h.Crosshair <= 0 {
		return
	}
	w, ht := t.Size()
	cx, cy := w/2, ht/2
	fg := render.Color{R: h.Fg.R, G: h.Fg.G, B: h.Fg.B, A: 0xFF}
	for i := -h.Crosshair; i <= h.Crosshair; i++ {
		t.SetPixel(cx+i, cy, fg)
		t.SetPixel(cx, cy+i, fg)
	}
}
