package render

import "image"

// Target is a readable pixel surface. Row 0 is the top row.
//
// Implementations clip out-of-bounds coordinates: SetPixel ignores them and
// At returns the zero Color.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	At(x, y int) Color
	Clear(c Color)
}

// Viewport is the sub-rectangle of a target that NDC maps onto.
type Viewport struct {
	X, Y, W, H int
}

// Full returns the viewport covering all of t.
func Full(t Target) Viewport {
	w, h := t.Size()
	return Viewport{W: w, H: h}
}

func (v Viewport) Empty() bool { return v.W <= 0 || v.H <= 0 }

// Image is an RGBA offscreen target.
type Image struct {
	img *image.RGBA
}

func NewImage(w, h int) *Image {
	return &Image{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// RGBA exposes the backing image. Writes through it are visible to At.
func (m *Image) RGBA() *image.RGBA { return m.img }

func (m *Image) Size() (w, h int) {
	b := m.img.Rect
	return b.Dx(), b.Dy()
}

func (m *Image) offset(x, y int) int {
	w, h := m.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return -1
	}
	return y*m.img.Stride + x*4
}

func (m *Image) SetPixel(x, y int, c Color) {
	off := m.offset(x, y)
	if off < 0 {
		return
	}
	p := m.img.Pix[off : off+4 : off+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

func (m *Image) At(x, y int) Color {
	off := m.offset(x, y)
	if off < 0 {
		return Color{}
	}
	p := m.img.Pix[off : off+4 : off+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (m *Image) Clear(c Color) {
	pix := m.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
}
