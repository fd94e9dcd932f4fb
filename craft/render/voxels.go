package render

import (
	"blockfield/craft/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid is the voxel source read by the voxel pass.
type Grid interface {
	At(c world.Coord) world.Block
	ForEachSolid(fn func(c world.Coord, b world.Block))
}

// Paint chooses the color of a voxel. Returning false skips it.
type Paint func(c world.Coord, b world.Block) (Color, bool)

// BlockColors paints each block with its table color.
func BlockColors(_ world.Coord, b world.Block) (Color, bool) {
	rgb := b.Info().Color
	return RGB(rgb.R, rgb.G, rgb.B), true
}

// VoxelBox returns the render-space cube occupied by cell c.
func VoxelBox(c world.Coord) Box {
	x, y, z := c.Origin()
	min := mgl32.Vec3{float32(x), float32(y), float32(z)}
	return Box{Min: min, Max: min.Add(mgl32.Vec3{world.CellSize, world.CellSize, world.CellSize})}
}

var faceNeighbors = [6]world.Coord{
	FaceNegX: {Y: -1},
	FacePosX: {Y: 1},
	FaceNegY: {Z: -1},
	FacePosY: {Z: 1},
	FaceNegZ: {X: -1},
	FacePosZ: {X: 1},
}

// ExposedFaces returns the faces of c whose neighbor cell is empty.
func ExposedFaces(g Grid, c world.Coord) FaceMask {
	var m FaceMask
	for f, off := range faceNeighbors {
		if !g.At(c.Add(off)).Solid() {
			m = m.With(Face(f))
		}
	}
	return m
}

// DrawVoxels draws the exposed faces of every solid cell.
func (d *Device) DrawVoxels(g Grid, mvp mgl32.Mat4, paint Paint, shade bool) {
	g.ForEachSolid(func(c world.Coord, b world.Block) {
		col, ok := paint(c, b)
		if !ok {
			return
		}
		if faces := ExposedFaces(g, c); faces != 0 {
			d.DrawBox(mvp, VoxelBox(c), faces, col, shade)
		}
	})
}

// DefaultClouds are flat translucent slabs high over the default 20x20 map.
var DefaultClouds = []Box{
	CenteredBox(mgl32.Vec3{12, 40, 6}, mgl32.Vec3{6, 1, 12}),
	CenteredBox(mgl32.Vec3{0, 26, 30}, mgl32.Vec3{8, 1, 5}),
	CenteredBox(mgl32.Vec3{30, 30, 15}, mgl32.Vec3{3, 1, 9}),
	CenteredBox(mgl32.Vec3{38, 22, 25}, mgl32.Vec3{3, 1, 9}),
	CenteredBox(mgl32.Vec3{17, 30, 38}, mgl32.Vec3{4, 1, 16}),
}

// DrawClouds blends boxes over the frame. Call it after all opaque geometry.
func (d *Device) DrawClouds(mvp mgl32.Mat4, clouds []Box, alpha uint8) {
	rgb := world.Cloud.Info().Color
	c := RGBA(rgb.R, rgb.G, rgb.B, alpha)
	for _, b := range clouds {
		d.DrawBox(mvp, b, AllFaces, c, false)
	}
}
