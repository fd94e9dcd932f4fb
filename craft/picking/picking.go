// Package picking resolves a screen position to the voxel drawn there and
// applies break and place clicks to the grid.
package picking

import (
	"blockfield/craft/linalg"
	"blockfield/craft/render"
	"blockfield/craft/world"
)

// Grid is the voxel store the pickers read.
type Grid interface {
	render.Grid
	Dims() (length, width, height int)
}

// Picker maps a screen point (sx, sy) on a sw by sh surface to a voxel.
type Picker interface {
	Pick(g Grid, view, proj linalg.Mat, sx, sy, sw, sh float64) (world.Coord, bool)
}

// Encode packs a cell into an opaque identity color. Each coordinate must
// fit in a byte.
func Encode(c world.Coord) render.Color {
	return render.RGBA(uint8(c.X), uint8(c.Y), uint8(c.Z), 0xFF)
}

// Decode reverses Encode. Pixels the identity pass never wrote keep alpha 0
// and report no hit.
func Decode(c render.Color) (world.Coord, bool) {
	if c.A != 0xFF {
		return world.Coord{}, false
	}
	return world.Coord{X: int(c.R), Y: int(c.G), Z: int(c.B)}, true
}

func identity(c world.Coord, _ world.Block) (render.Color, bool) {
	return Encode(c), true
}

// PickSize is the edge length of the offscreen identity target.
const PickSize = 512

// RenderPicker draws every voxel in its identity color into an offscreen
// target and reads back the texel under the cursor.
type RenderPicker struct {
	Device *render.Device
	Size   int

	target *render.Image
}

func NewRenderPicker(d *render.Device) *RenderPicker {
	return &RenderPicker{Device: d, Size: PickSize}
}

func (p *RenderPicker) Pick(g Grid, view, proj linalg.Mat, sx, sy, sw, sh float64) (world.Coord, bool) {
	if sw <= 0 || sh <= 0 {
		return world.Coord{}, false
	}
	size := p.Size
	if size <= 0 {
		size = PickSize
	}
	if p.target == nil {
		p.target = render.NewImage(size, size)
	} else if w, _ := p.target.Size(); w != size {
		p.target = render.NewImage(size, size)
	}

	restore := p.Device.Bind(p.target, render.Full(p.target), render.RGBA(0, 0, 0, 0))
	defer restore()

	p.Device.Clear()
	p.Device.DrawVoxels(g, render.FromLinalg(proj.Mul(view)), identity, false)

	tx := texel(sx/sw*float64(size), size)
	ty := texel((1-sy/sh)*float64(size), size)
	return Decode(p.Device.ReadPixel(tx, ty))
}

func texel(v float64, size int) int {
	i := int(v)
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
