package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridGetSet(t *testing.T) {
	g := NewGrid(4, 5, 6)
	l, w, h := g.Dims()
	require.Equal(t, []int{4, 5, 6}, []int{l, w, h})

	g.Set(3, 4, 5, Stone)
	g.Put(Coord{1, 2, 3}, Glass)
	assert.Equal(t, Stone, g.Get(3, 4, 5))
	assert.Equal(t, Glass, g.At(Coord{1, 2, 3}))
	assert.Equal(t, Empty, g.Get(0, 0, 0))
	assert.Equal(t, 2, g.Count())
}

func TestGridOutOfRange(t *testing.T) {
	g := NewGrid(2, 2, 2)
	g.Fill(Stone)
	for _, c := range []Coord{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {2, 0, 0}, {0, 2, 0}, {0, 0, 2}} {
		assert.False(t, g.InBounds(c.X, c.Y, c.Z), "%v", c)
		assert.Equal(t, Empty, g.At(c), "%v", c)
	}
	assert.Panics(t, func() { g.Set(2, 0, 0, Grass) })
}

func TestGridLayoutDistinctCells(t *testing.T) {
	g := NewGrid(3, 4, 5)
	n := 0
	for x := 0; x < 3; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 5; z++ {
				g.Set(x, y, z, Block(1+n%int(Cloud)))
				n++
			}
		}
	}
	n = 0
	var order []Coord
	g.ForEachSolid(func(c Coord, b Block) {
		assert.Equal(t, Block(1+n%int(Cloud)), b, "%v", c)
		order = append(order, c)
		n++
	})
	require.Len(t, order, 60)
	assert.Equal(t, Coord{0, 0, 1}, order[1])
	assert.Equal(t, Coord{0, 1, 0}, order[5])
	assert.Equal(t, Coord{1, 0, 0}, order[20])
}

func TestCoordMapping(t *testing.T) {
	x, y, z := Coord{3, 4, 5}.Origin()
	assert.Equal(t, []float64{8, 10, 6}, []float64{x, y, z})
	assert.Equal(t, Coord{3, 4, 5}, CellOf(9, 7, 11))
	assert.Equal(t, Coord{-1, 0, 0}, CellOf(0, -0.5, 0))
	assert.Equal(t, Coord{3, 4, 6}, Coord{3, 4, 5}.Above())
}

func TestBlockTable(t *testing.T) {
	for b := Empty; b < blockCount; b++ {
		info := b.Info()
		require.NotEmpty(t, info.Name, "block %d", b)
		got, ok := Lookup(info.Name)
		require.True(t, ok)
		assert.Equal(t, b, got)
	}

	assert.False(t, Unbreakable.Breakable())
	assert.False(t, Empty.Solid())
	assert.True(t, Cloud.Solid())
	assert.Equal(t, CueBreakTNT, TNT.Info().Break)
	assert.Equal(t, CuePlaceWood, TNT.Info().Place)
	assert.Equal(t, CueBreakGrass, SnowyGround.Info().Break)
	assert.Equal(t, CueStepSnow, SnowyGround.Info().Step)
	assert.Equal(t, CueStepStone, Glass.Info().Step)
	assert.Equal(t, "empty", Block(200).String())

	_, ok := Lookup("lava")
	assert.False(t, ok)
}

func TestShowcase(t *testing.T) {
	g := NewGrid(20, 20, 100)
	Showcase{GroundHeight: 2}.Generate(g)

	assert.Equal(t, Unbreakable, g.Get(7, 7, 0))
	assert.Equal(t, Grass, g.Get(7, 7, 1))
	assert.Equal(t, Empty, g.Get(7, 12, 2))

	for x := 0; x < 18; x++ {
		assert.Equal(t, Pumpkin, g.Get(x, 8, 2))
		assert.Equal(t, TNT, g.Get(x, 3, 7))
		assert.Equal(t, Bricks, g.Get(x, 1, 9))
	}
	assert.Equal(t, Empty, g.Get(18, 8, 2))

	assert.Equal(t, SnowyGround, g.Get(1, 19, 2))
	assert.Equal(t, DiamondOre, g.Get(11, 19, 2))
	assert.Equal(t, Wood, g.Get(19, 19, 2))
	assert.Equal(t, Tree, g.Get(1, 17, 2))
	assert.Equal(t, Glass, g.Get(9, 17, 2))
}

func TestTerrainDeterministic(t *testing.T) {
	a := NewGrid(16, 16, 32)
	b := NewGrid(16, 16, 32)
	gen := Terrain{Seed: 42, Base: 4, Amplitude: 8}
	gen.Generate(a)
	gen.Generate(b)
	assert.Equal(t, a.cells, b.cells)

	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			assert.Equal(t, Unbreakable, a.Get(x, y, 0))
			assert.NotEqual(t, Empty, a.Get(x, y, 4), "column (%d,%d) below base", x, y)
			assert.Equal(t, Empty, a.Get(x, y, 13), "column (%d,%d) above peak", x, y)
		}
	}
}

func TestNewGenerator(t *testing.T) {
	for _, name := range []string{"", "showcase", "perlin", "flat"} {
		gen, err := NewGenerator(name, 2, 1)
		require.NoError(t, err, name)
		g := NewGrid(4, 4, 16)
		gen.Generate(g)
		assert.Equal(t, Unbreakable, g.Get(0, 0, 0), name)
	}
	_, err := NewGenerator("caves", 2, 1)
	assert.Error(t, err)
}
