package render

// RGB565Target renders into a little-endian RGB565 buffer such as the host
// framebuffer. Alpha is not stored; At reports every pixel as opaque.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) offset(x, y int) int {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return -1
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return -1
	}
	off := y*t.Stride + x*2
	if off+1 >= len(t.Buf) {
		return -1
	}
	return off
}

func (t *RGB565Target) Clear(c Color) {
	if t == nil {
		return
	}
	p := Pack565(c)
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if off := t.offset(x, y); off >= 0 {
				t.Buf[off] = byte(p)
				t.Buf[off+1] = byte(p >> 8)
			}
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	off := t.offset(x, y)
	if off < 0 {
		return
	}
	p := Pack565(c)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

func (t *RGB565Target) At(x, y int) Color {
	off := t.offset(x, y)
	if off < 0 {
		return Color{}
	}
	return Unpack565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
}

func Pack565(c Color) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Unpack565 widens a 565 pixel, replicating high bits into the low ones.
func Unpack565(p uint16) Color {
	r := uint8(p>>11) & 0x1F
	g := uint8(p>>5) & 0x3F
	b := uint8(p) & 0x1F
	return Color{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xFF}
}
