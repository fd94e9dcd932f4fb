package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultTerminal is the most negative vertical velocity per frame.
const DefaultTerminal = -1.0

// Result is the velocity the avatar may actually apply this frame.
type Result struct {
	Velocity mgl64.Vec3
	Landed   bool // a floor stopped the fall
	Hurt     bool // the fall that was stopped ran at terminal velocity
}

// Resolver adjusts a proposed per-frame velocity against the grid. It never
// moves the avatar; callers add Result.Velocity to the position.
type Resolver struct {
	Terminal float64
}

func NewResolver() *Resolver {
	return &Resolver{Terminal: DefaultTerminal}
}

// Resolve runs the horizontal, vertical and world-edge passes in that order.
func (r *Resolver) Resolve(g Grid, pos, vel mgl64.Vec3) Result {
	res := Result{Velocity: vel}
	r.horizontal(g, pos, &res)
	r.vertical(g, pos, &res)
	edges(g, pos, &res)
	return res
}

func (r *Resolver) horizontal(g Grid, pos mgl64.Vec3, res *Result) {
	v := &res.Velocity
	cx, cy := pos[0]+v[0], pos[1]+v[1]
	feet, head := pos[2]-HalfExtent, pos[2]+HalfExtent

	for _, w := range Walls(g, pos) {
		if w.Bottom >= head || w.Top <= feet {
			continue
		}
		switch w.Axis {
		case AxisX:
			if touches(w, cx, cy) && v[0]*w.Normal < 0 {
				v[0] = 0
			}
		case AxisY:
			if touches(w, cy, cx) && v[1]*w.Normal < 0 {
				v[1] = 0
			}
		}
	}
}

// touches tests the proposed avatar square against a wall segment. across is
// the coordinate perpendicular to the wall, along the one parallel to it.
func touches(w Wall, across, along float64) bool {
	return math.Abs(across-w.Line) < HalfExtent &&
		along > w.Min-HalfExtent && along < w.Max+HalfExtent
}

func (r *Resolver) vertical(g Grid, pos mgl64.Vec3, res *Result) {
	v := &res.Velocity
	cx, cy := pos[0]+v[0], pos[1]+v[1]
	box := Rect{MinX: cx - HalfExtent, MinY: cy - HalfExtent, MaxX: cx + HalfExtent, MaxY: cy + HalfExtent}

	for _, s := range Slabs(g, pos, v[2]) {
		if !s.Rect.Overlaps(box) {
			continue
		}
		floor := s.Normal > 0
		if floor && v[2] > 0 || !floor && v[2] <= 0 {
			continue
		}
		if floor {
			res.Landed = true
			res.Hurt = v[2] == r.Terminal
		}
		v[2] = 0
		return
	}
}

func edges(g Grid, pos mgl64.Vec3, res *Result) {
	length, width, _ := g.Dims()
	v := &res.Velocity
	if outward(pos[0]+v[0], v[0], 2*float64(width-1)) {
		v[0] = 0
	}
	if outward(pos[1]+v[1], v[1], 2*float64(length-1)) {
		v[1] = 0
	}
}

func outward(next, vel, max float64) bool {
	return next < 0 && vel < 0 || next > max && vel > 0
}
