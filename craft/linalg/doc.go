// Package linalg is the small linear algebra layer behind the voxel core.
//
// Vectors are plain float64 slices of any length (3 and 4 are the common
// cases). Matrices are row-major lists of rows. Transforms compose by right
// multiplication, so Translation(t).Mul(Rotation(a, axis)).Mul(Scaling(s))
// scales first and translates last when applied to a column vector.
//
// Renderers that expect column-major data receive matrices through
// ColumnMajor, which transposes before flattening.
package linalg
