package world

import (
	"fmt"
	"math"
)

// CellSize is the world-space edge length of one voxel.
const CellSize = 2

// Coord indexes a voxel. X runs along the grid length, Y along the width and
// Z is the vertical level.
type Coord struct {
	X, Y, Z int
}

func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }

func (c Coord) Above() Coord { return Coord{c.X, c.Y, c.Z + 1} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z) }

// Origin returns the minimum corner of the cell in render space
// (X, Y-up, Z). Grid y maps to render X, grid z to render Y and grid x to
// render Z.
func (c Coord) Origin() (x, y, z float64) {
	return CellSize * float64(c.Y), CellSize * float64(c.Z), CellSize * float64(c.X)
}

// CellOf returns the cell containing a physics-frame point, where px and py
// are the horizontal axes and pz is up. px runs along grid y and py along
// grid x.
func CellOf(px, py, pz float64) Coord {
	return Coord{
		X: int(math.Floor(py / CellSize)),
		Y: int(math.Floor(px / CellSize)),
		Z: int(math.Floor(pz / CellSize)),
	}
}

// Grid is a fixed-size dense voxel store.
type Grid struct {
	length, width, height int
	cells                 []Block
}

// NewGrid allocates an all-empty grid.
func NewGrid(length, width, height int) *Grid {
	if length <= 0 || width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%dx%d", length, width, height))
	}
	return &Grid{
		length: length,
		width:  width,
		height: height,
		cells:  make([]Block, length*width*height),
	}
}

func (g *Grid) Dims() (length, width, height int) { return g.length, g.width, g.height }

func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < g.length && y < g.width && z < g.height
}

func (g *Grid) index(x, y, z int) int { return (x*g.width+y)*g.height + z }

// Get returns the block at (x,y,z), or Empty outside the grid.
func (g *Grid) Get(x, y, z int) Block {
	if !g.InBounds(x, y, z) {
		return Empty
	}
	return g.cells[g.index(x, y, z)]
}

func (g *Grid) At(c Coord) Block { return g.Get(c.X, c.Y, c.Z) }

// Set writes a block. Writing outside the grid is a programming error.
func (g *Grid) Set(x, y, z int, b Block) {
	if !g.InBounds(x, y, z) {
		panic(fmt.Sprintf("world: set out of range (%d,%d,%d)", x, y, z))
	}
	g.cells[g.index(x, y, z)] = b
}

func (g *Grid) Put(c Coord, b Block) { g.Set(c.X, c.Y, c.Z, b) }

// Fill sets every cell to b.
func (g *Grid) Fill(b Block) {
	for i := range g.cells {
		g.cells[i] = b
	}
}

// ForEachSolid visits every non-empty cell in x, y, z order.
func (g *Grid) ForEachSolid(fn func(c Coord, b Block)) {
	i := 0
	for x := 0; x < g.length; x++ {
		for y := 0; y < g.width; y++ {
			for z := 0; z < g.height; z++ {
				if b := g.cells[i]; b != Empty {
					fn(Coord{x, y, z}, b)
				}
				i++
			}
		}
	}
}

// Count returns the number of solid cells.
func (g *Grid) Count() int {
	n := 0
	for _, b := range g.cells {
		if b != Empty {
			n++
		}
	}
	return n
}
