// Package render is a small software rasterizer for axis-aligned boxes.
//
// Pipeline (fixed):
//
//	world box → view/projection → near clip → rasterization → Target.
//
// Matrices are mgl32 column-major values. Row-major linalg matrices convert
// with FromLinalg. A Device owns the current target, viewport and clear color
// and hands out scoped bindings, so an offscreen pass can borrow the pipeline
// and give it back untouched.
package render
