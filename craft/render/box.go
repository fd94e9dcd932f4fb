package render

import "github.com/go-gl/mathgl/mgl32"

// Face is one side of an axis-aligned box in render space.
type Face uint8

const (
	FaceNegX Face = iota
	FacePosX
	FaceNegY
	FacePosY
	FaceNegZ
	FacePosZ
)

// FaceMask selects box faces; bit i is Face(i).
type FaceMask uint8

const AllFaces FaceMask = 1<<6 - 1

func (m FaceMask) Has(f Face) bool { return m&(1<<f) != 0 }

func (m FaceMask) With(f Face) FaceMask { return m | 1<<f }

// Normal returns the outward unit normal of f.
func (f Face) Normal() mgl32.Vec3 {
	return faceNormals[f]
}

var faceNormals = [6]mgl32.Vec3{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// faceQuads lists the unit-cube corners of each face, counter-clockwise when
// seen from outside.
var faceQuads = [6][4]mgl32.Vec3{
	FaceNegX: {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	FacePosX: {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	FaceNegY: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	FacePosY: {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	FaceNegZ: {{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
	FacePosZ: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
}

// Box is an axis-aligned box in render space.
type Box struct {
	Min, Max mgl32.Vec3
}

// CenteredBox is the unit cube [-1,1]^3 scaled by half and moved to center.
func CenteredBox(center, half mgl32.Vec3) Box {
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

func (b Box) corner(unit mgl32.Vec3) mgl32.Vec3 {
	size := b.Max.Sub(b.Min)
	return mgl32.Vec3{
		b.Min[0] + unit[0]*size[0],
		b.Min[1] + unit[1]*size[1],
		b.Min[2] + unit[2]*size[2],
	}
}

// Quad returns the world-space corners of face f.
func (b Box) Quad(f Face) [4]mgl32.Vec3 {
	var q [4]mgl32.Vec3
	for i, u := range faceQuads[f] {
		q[i] = b.corner(u)
	}
	return q
}
