package collision

import (
	"math"

	"blockfield/craft/world"

	"github.com/go-gl/mathgl/mgl64"
)

// Grid is the read side of the voxel store the resolver needs.
type Grid interface {
	At(c world.Coord) world.Block
	Dims() (length, width, height int)
}

// Axis names the horizontal physics axis a wall is perpendicular to.
type Axis int

const (
	AxisX Axis = iota // wall is the line px = Line
	AxisY             // wall is the line py = Line
)

// Wall is one exposed vertical face of a solid cell, seen from above as a
// segment. Normal points out of the cell into the empty neighbor.
type Wall struct {
	Axis     Axis
	Line     float64
	Normal   float64
	Min, Max float64 // extent along the other horizontal axis
	Bottom   float64 // vertical band of the emitting cell
	Top      float64
}

// Rect is an axis-aligned rectangle in the horizontal (px, py) plane.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Overlaps reports strict interior overlap; touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX && r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Slab is the top (Normal +1) or bottom (Normal -1) face of a solid cell.
type Slab struct {
	Z      float64
	Normal float64
	Rect   Rect
}

// HalfExtent is half the avatar's edge length in every axis.
const HalfExtent = 1.0

func cellOf(pos mgl64.Vec3) world.Coord {
	return world.CellOf(pos[0], pos[1], pos[2])
}

func cellRect(c world.Coord) Rect {
	return Rect{
		MinX: world.CellSize * float64(c.Y),
		MinY: world.CellSize * float64(c.X),
		MaxX: world.CellSize * float64(c.Y+1),
		MaxY: world.CellSize * float64(c.X+1),
	}
}

// Walls lists the exposed vertical faces of the solid cells in the 3x3x3
// neighborhood around pos.
func Walls(g Grid, pos mgl64.Vec3) []Wall {
	var walls []Wall
	center := cellOf(pos)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				c := center.Add(world.Coord{X: dx, Y: dy, Z: dz})
				if !g.At(c).Solid() {
					continue
				}
				walls = appendWalls(walls, g, c)
			}
		}
	}
	return walls
}

func appendWalls(walls []Wall, g Grid, c world.Coord) []Wall {
	r := cellRect(c)
	bottom := world.CellSize * float64(c.Z)
	top := bottom + world.CellSize
	empty := func(dx, dy int) bool {
		return !g.At(c.Add(world.Coord{X: dx, Y: dy})).Solid()
	}

	if empty(0, -1) {
		walls = append(walls, Wall{AxisX, r.MinX, -1, r.MinY, r.MaxY, bottom, top})
	}
	if empty(0, 1) {
		walls = append(walls, Wall{AxisX, r.MaxX, 1, r.MinY, r.MaxY, bottom, top})
	}
	if empty(-1, 0) {
		walls = append(walls, Wall{AxisY, r.MinY, -1, r.MinX, r.MaxX, bottom, top})
	}
	if empty(1, 0) {
		walls = append(walls, Wall{AxisY, r.MaxY, 1, r.MinX, r.MaxX, bottom, top})
	}
	return walls
}

// Slabs lists the floor faces under the feet and the ceiling faces over the
// head after a vertical move of vz, over the 3x3 horizontal neighborhood.
func Slabs(g Grid, pos mgl64.Vec3, vz float64) []Slab {
	var slabs []Slab
	center := cellOf(pos)
	z := pos[2] + vz
	feet := int(math.Ceil((z-HalfExtent)/world.CellSize)) - 1
	head := int(math.Floor((z + HalfExtent) / world.CellSize))

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			c := world.Coord{X: center.X + dx, Y: center.Y + dy}
			c.Z = feet
			if g.At(c).Solid() {
				slabs = append(slabs, Slab{Z: world.CellSize * float64(feet+1), Normal: 1, Rect: cellRect(c)})
			}
			c.Z = head
			if g.At(c).Solid() {
				slabs = append(slabs, Slab{Z: world.CellSize * float64(head), Normal: -1, Rect: cellRect(c)})
			}
		}
	}
	return slabs
}
