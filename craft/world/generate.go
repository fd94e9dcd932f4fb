package world

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
)

// Generator fills a freshly allocated grid.
type Generator interface {
	Generate(g *Grid)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(g *Grid)

func (f GeneratorFunc) Generate(g *Grid) { f(g) }

// Showcase lays a flat ground with a staircase of every placeable block and
// a sample row, so each block family can be walked on and broken.
type Showcase struct {
	GroundHeight int
}

var staircase = []Block{Pumpkin, SnowyGround, Sand, Glass, GoldOre, TNT, Wood, Bricks}

var sampleRow = []Block{SnowyGround, Sand, Snow, CopperOre, GoldOre, DiamondOre, RubyOre, Stone, Pumpkin, Wood}

var sampleRow2 = []Block{Tree, Coal, TNT, Bricks, Glass}

func (s Showcase) Generate(g *Grid) {
	length, width, _ := g.Dims()
	if s.GroundHeight < 1 {
		s.GroundHeight = 1
	}
	ground := s.GroundHeight
	s.ground(g)

	// Step i sits at (y=8-i, z=ground+i) for every x short of the far edge.
	for x := 0; x < length-2; x++ {
		for i, b := range staircase {
			putIf(g, x, 8-i, ground+i, b)
		}
	}
	for i, b := range sampleRow {
		putIf(g, 1+2*i, width-1, ground, b)
	}
	for i, b := range sampleRow2 {
		putIf(g, 1+2*i, width-3, ground, b)
	}
}

func putIf(g *Grid, x, y, z int, b Block) {
	if g.InBounds(x, y, z) {
		g.Set(x, y, z, b)
	}
}

// Terrain builds rolling height-mapped land from 2D perlin noise. Columns
// are capped with sand near the base, grass in the middle band, stone above
// and snow on the peaks.
type Terrain struct {
	Seed      int64
	Base      int
	Amplitude int
	Scale     float64
}

func (t Terrain) Generate(g *Grid) {
	length, width, height := g.Dims()
	scale := t.Scale
	if scale <= 0 {
		scale = 0.08
	}
	noise := perlin.NewPerlin(2, 2, 3, t.Seed)

	for x := 0; x < length; x++ {
		for y := 0; y < width; y++ {
			n := (noise.Noise2D(float64(x)*scale, float64(y)*scale) + 1) / 2
			n = math.Max(0, math.Min(1, n))
			top := t.Base + int(math.Round(n*float64(t.Amplitude)))
			if top >= height {
				top = height - 1
			}
			g.Set(x, y, 0, Unbreakable)
			for z := 1; z <= top; z++ {
				g.Set(x, y, z, t.band(z, top))
			}
		}
	}
}

func (t Terrain) band(z, top int) Block {
	rel := top - t.Base
	switch {
	case z < top-2:
		return Stone
	case rel >= t.Amplitude*3/4:
		if z == top {
			return Snow
		}
		return Stone
	case rel <= t.Amplitude/5:
		return Sand
	case z == top:
		return Grass
	default:
		return Stone
	}
}

// NewGenerator resolves a generator by name.
func NewGenerator(name string, groundHeight int, seed int64) (Generator, error) {
	switch name {
	case "", "showcase":
		return Showcase{GroundHeight: groundHeight}, nil
	case "perlin":
		return Terrain{Seed: seed, Base: groundHeight, Amplitude: 8}, nil
	case "flat":
		return GeneratorFunc(func(g *Grid) {
			Showcase{GroundHeight: groundHeight}.ground(g)
		}), nil
	}
	return nil, fmt.Errorf("world: unknown generator %q", name)
}

func (s Showcase) ground(g *Grid) {
	length, width, height := g.Dims()
	for x := 0; x < length; x++ {
		for y := 0; y < width; y++ {
			g.Set(x, y, 0, Unbreakable)
			for z := 1; z < s.GroundHeight && z < height; z++ {
				g.Set(x, y, z, Grass)
			}
		}
	}
}
