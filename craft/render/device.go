package render

import (
	"blockfield/craft/linalg"

	"github.com/go-gl/mathgl/mgl32"
)

// FromLinalg converts a row-major 4x4 matrix to mgl32's column-major layout.
func FromLinalg(m linalg.Mat) mgl32.Mat4 {
	return mgl32.Mat4(linalg.ColumnMajor(m))
}

// Device is the render-state machine: one bound target, viewport and clear
// color at a time, each with its own depth buffer.
type Device struct {
	Light Light

	r        *Renderer
	target   Target
	viewport Viewport
	clear    Color
	spare    []*Renderer
}

// NewDevice binds t with a full viewport and a black clear color.
func NewDevice(t Target) *Device {
	return &Device{
		Light:    DefaultLight(),
		r:        NewRenderer(),
		target:   t,
		viewport: Full(t),
		clear:    RGB(0, 0, 0),
	}
}

func (d *Device) Target() Target        { return d.target }
func (d *Device) Viewport() Viewport    { return d.viewport }
func (d *Device) ClearColor() Color     { return d.clear }
func (d *Device) Renderer() *Renderer   { return d.r }
func (d *Device) SetClearColor(c Color) { d.clear = c }

// Bind makes t the current target until the returned func runs, which
// restores the previous target, viewport, clear color and depth buffer.
// Bindings nest; callers restore in reverse order, usually with defer.
func (d *Device) Bind(t Target, vp Viewport, clear Color) (restore func()) {
	prevR, prevT, prevVP, prevClear := d.r, d.target, d.viewport, d.clear

	var r *Renderer
	if n := len(d.spare); n > 0 {
		r, d.spare = d.spare[n-1], d.spare[:n-1]
	} else {
		r = NewRenderer()
	}
	r.Depth, r.Cull = prevR.Depth, prevR.Cull

	d.r, d.target, d.viewport, d.clear = r, t, vp, clear
	return func() {
		d.spare = append(d.spare, d.r)
		d.r, d.target, d.viewport, d.clear = prevR, prevT, prevVP, prevClear
	}
}

// Clear fills the bound target with the clear color and resets depth.
func (d *Device) Clear() {
	d.r.Begin(d.target, d.clear)
}

// DrawBox draws the selected faces of b. With shade set, each face is lit
// by d.Light; otherwise c is written exactly.
func (d *Device) DrawBox(mvp mgl32.Mat4, b Box, faces FaceMask, c Color, shade bool) {
	for f := FaceNegX; f <= FacePosZ; f++ {
		if !faces.Has(f) {
			continue
		}
		col := c
		if shade {
			col = c.Shade(d.Light.Intensity(f.Normal()))
		}
		q := b.Quad(f)
		d.r.Triangle(d.target, d.viewport, mvp, q[0], q[1], q[2], col)
		d.r.Triangle(d.target, d.viewport, mvp, q[0], q[2], q[3], col)
	}
}

// ReadPixel reads the bound target at viewport-relative (x, y) with y
// counted up from the bottom row.
func (d *Device) ReadPixel(x, y int) Color {
	vp := d.viewport
	return d.target.At(vp.X+x, vp.Y+vp.H-1-y)
}
