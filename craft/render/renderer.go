package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Light is an ambient term plus one directional light.
type Light struct {
	Ambient   float32    // 0..1
	Dir       mgl32.Vec3 // direction *towards* the scene
	DirAmount float32    // 0..1
}

// DefaultLight is a high sun from over the +X/+Z shoulder.
func DefaultLight() Light {
	return Light{Ambient: 0.45, Dir: mgl32.Vec3{-0.4, -1, -0.6}.Normalize(), DirAmount: 0.55}
}

// Intensity returns the brightness of a surface with normal n.
func (l Light) Intensity(n mgl32.Vec3) float32 {
	amb := clampF32(l.Ambient, 0, 1)
	if l.Dir.Len() == 0 {
		return amb
	}
	d := n.Dot(l.Dir.Normalize().Mul(-1))
	if d < 0 {
		d = 0
	}
	return clampF32(amb+d*clampF32(l.DirAmount, 0, 1), 0, 1)
}

// Renderer rasterizes clipped triangles with an optional depth buffer.
//
// Create it once and reuse it; the depth buffer is resized on demand.
type Renderer struct {
	Depth bool
	Cull  bool // drop triangles wound clockwise on screen

	depthBuf []float32
	dw, dh   int
}

func NewRenderer() *Renderer {
	return &Renderer{Depth: true, Cull: true}
}

// Begin clears t and the depth buffer for a new frame.
func (r *Renderer) Begin(t Target, clear Color) {
	t.Clear(clear)
	w, h := t.Size()
	if !r.Depth || w <= 0 || h <= 0 {
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	}
	r.depthBuf = r.depthBuf[:w*h]
	r.dw, r.dh = w, h
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Triangle draws one flat-colored triangle given in world space.
// Translucent colors are blended over the target and leave depth untouched.
func (r *Renderer) Triangle(t Target, vp Viewport, mvp mgl32.Mat4, a, b, c mgl32.Vec3, col Color) {
	if vp.Empty() {
		return
	}
	var in, out [4]mgl32.Vec4
	in[0] = mvp.Mul4x1(a.Vec4(1))
	in[1] = mvp.Mul4x1(b.Vec4(1))
	in[2] = mvp.Mul4x1(c.Vec4(1))

	n := clipNear(in[:3], out[:])
	if n < 3 {
		return
	}
	var pts [4]screenPoint
	for i := 0; i < n; i++ {
		pts[i] = toScreen(out[i], vp)
	}
	for i := 1; i+1 < n; i++ {
		r.fill(t, vp, pts[0], pts[i], pts[i+1], col)
	}
}

type screenPoint struct {
	X, Y int
	Z    float32
}

// clipNear cuts a polygon against the near plane z >= -w and writes the
// surviving polygon to out. A triangle gains at most one vertex.
func clipNear(poly []mgl32.Vec4, out []mgl32.Vec4) int {
	n := 0
	for i := range poly {
		p := poly[i]
		q := poly[(i+1)%len(poly)]
		dp := p[2] + p[3]
		dq := q[2] + q[3]
		if dp >= 0 {
			out[n] = p
			n++
		}
		if (dp >= 0) != (dq >= 0) {
			s := dp / (dp - dq)
			out[n] = p.Add(q.Sub(p).Mul(s))
			n++
		}
	}
	return n
}

func toScreen(p mgl32.Vec4, vp Viewport) screenPoint {
	inv := 1 / p[3]
	x, y, z := p[0]*inv, p[1]*inv, p[2]*inv
	sx := float32(vp.X) + (x*0.5+0.5)*float32(vp.W-1)
	sy := float32(vp.Y) + (1-(y*0.5+0.5))*float32(vp.H-1)
	return screenPoint{X: int(sx + 0.5), Y: int(sy + 0.5), Z: z}
}

func (r *Renderer) depthTest(x, y int, z float32, write bool) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= r.dw || y >= r.dh {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := clampF32(z*0.5+0.5, 0, 1)
	idx := y*r.dw + x
	if d >= r.depthBuf[idx] {
		return false
	}
	if write {
		r.depthBuf[idx] = d
	}
	return true
}

func (r *Renderer) fill(t Target, vp Viewport, p0, p1, p2 screenPoint, c Color) {
	area := edgeFn(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
	if area == 0 || r.Cull && area < 0 {
		return
	}
	if area < 0 {
		p1, p2 = p2, p1
		area = -area
	}

	w, h := t.Size()
	minX := maxInt(min3(p0.X, p1.X, p2.X), maxInt(vp.X, 0))
	maxX := minInt(max3(p0.X, p1.X, p2.X), minInt(vp.X+vp.W, w)-1)
	minY := maxInt(min3(p0.Y, p1.Y, p2.Y), maxInt(vp.Y, 0))
	maxY := minInt(max3(p0.Y, p1.Y, p2.Y), minInt(vp.Y+vp.H, h)-1)
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1.0 / float32(area)
	opaque := c.A == 0xFF
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(p1.X, p1.Y, p2.X, p2.Y, x, y)
			w1 := edgeFn(p2.X, p2.Y, p0.X, p0.Y, x, y)
			w2 := edgeFn(p0.X, p0.Y, p1.X, p1.Y, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			z := float32(w0)*invArea*p0.Z + float32(w1)*invArea*p1.Z + float32(w2)*invArea*p2.Z
			if !r.depthTest(x, y, z, opaque) {
				continue
			}
			if opaque {
				t.SetPixel(x, y, c)
			} else {
				t.SetPixel(x, y, c.Over(t.At(x, y)))
			}
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func min3(a, b, c int) int { return minInt(a, minInt(b, c)) }
func max3(a, b, c int) int { return maxInt(a, maxInt(b, c)) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
