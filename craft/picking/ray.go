package picking

import (
	"math"

	"blockfield/craft/linalg"
	"blockfield/craft/world"

	"github.com/go-gl/mathgl/mgl64"
)

// RayPicker unprojects the cursor through the inverse view-projection and
// walks the grid cell by cell until it meets a solid voxel. It needs no
// render target.
type RayPicker struct {
	MaxDist float64 // render-space units; 0 means the far plane
}

func (p RayPicker) Pick(g Grid, view, proj linalg.Mat, sx, sy, sw, sh float64) (world.Coord, bool) {
	if sw <= 0 || sh <= 0 {
		return world.Coord{}, false
	}
	inv, err := linalg.Inverse(proj.Mul(view))
	if err != nil {
		return world.Coord{}, false
	}
	nx := 2*sx/sw - 1
	ny := 1 - 2*sy/sh
	near, ok1 := unproject(inv, nx, ny, -1)
	far, ok2 := unproject(inv, nx, ny, 1)
	if !ok1 || !ok2 {
		return world.Coord{}, false
	}

	dir := far.Sub(near)
	maxDist := dir.Len()
	if p.MaxDist > 0 && p.MaxDist < maxDist {
		maxDist = p.MaxDist
	}
	if maxDist == 0 {
		return world.Coord{}, false
	}
	dir = dir.Normalize()

	// Render (X, Y-up, Z) to grid (x, y, z) in cell units.
	origin := mgl64.Vec3{near[2], near[0], near[1]}.Mul(1.0 / world.CellSize)
	gdir := mgl64.Vec3{dir[2], dir[0], dir[1]}.Mul(1.0 / world.CellSize)

	length, width, height := g.Dims()
	c, hit := cast(g, origin, gdir, maxDist, 2*(length+width+height))
	return c, hit
}

func unproject(inv linalg.Mat, x, y, z float64) (mgl64.Vec3, bool) {
	p := inv.MulVec(linalg.V(x, y, z, 1))
	if p[3] == 0 {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{p[0] / p[3], p[1] / p[3], p[2] / p[3]}, true
}

// cast steps a ray through unit cells. dir is scaled so that t counts
// render-space distance.
func cast(g Grid, origin, dir mgl64.Vec3, maxDist float64, maxSteps int) (world.Coord, bool) {
	c := world.Coord{
		X: int(math.Floor(origin[0])),
		Y: int(math.Floor(origin[1])),
		Z: int(math.Floor(origin[2])),
	}
	stepX, tMaxX, tDeltaX := ddaInit(origin[0], dir[0], c.X)
	stepY, tMaxY, tDeltaY := ddaInit(origin[1], dir[1], c.Y)
	stepZ, tMaxZ, tDeltaZ := ddaInit(origin[2], dir[2], c.Z)

	if g.At(c).Solid() {
		return c, true
	}

	var dist float64
	for i := 0; i < maxSteps; i++ {
		if tMaxX < tMaxY {
			if tMaxX < tMaxZ {
				c.X += stepX
				dist = tMaxX
				tMaxX += tDeltaX
			} else {
				c.Z += stepZ
				dist = tMaxZ
				tMaxZ += tDeltaZ
			}
		} else {
			if tMaxY < tMaxZ {
				c.Y += stepY
				dist = tMaxY
				tMaxY += tDeltaY
			} else {
				c.Z += stepZ
				dist = tMaxZ
				tMaxZ += tDeltaZ
			}
		}

		if dist > maxDist {
			return world.Coord{}, false
		}
		if g.At(c).Solid() {
			return c, true
		}
	}
	return world.Coord{}, false
}

func ddaInit(pos, dir float64, cell int) (step int, tMax, tDelta float64) {
	if dir > 0 {
		return 1, (float64(cell+1) - pos) / dir, 1 / dir
	}
	if dir < 0 {
		return -1, (pos - float64(cell)) / -dir, 1 / -dir
	}
	return 0, math.Inf(1), math.Inf(1)
}
