package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"blockfield/craft/logging"
	"blockfield/craft/render"
	"blockfield/hal"

	"tinygo.org/x/tinyfont"
)

type panicInfo struct {
	Value any
	Stack []byte
}

func (p panicInfo) lines() []string {
	lines := []string{"blockfield panic:", fmt.Sprintf("panic: %v", p.Value)}
	if len(p.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(p.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}
	return lines
}

func (p panicInfo) log(l *logging.Logger) {
	for _, line := range p.lines() {
		l.Errorf("%s", line)
	}
}

// showPanic paints the panic report over the last frame, wrapping long
// lines, and presents it.
func showPanic(h hal.HAL, info panicInfo) {
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	font := &tinyfont.TomThumb
	fontHeight := int16(font.GetYAdvance()) + 1
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = fb.Present()
		return
	}

	d := panicDisplay{fb: fb}
	fg := color.RGBA{A: 255}
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := fontHeight
	for _, line := range info.lines() {
		for len(line) > 0 {
			if y > int16(fb.Height()) {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

// drawTextLine draws s on a fixed pitch so wrapped columns line up.
func drawTextLine(d panicDisplay, font tinyfont.Fonter, fontWidth, x0, y0 int16, s string, fg color.RGBA) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, y0, r, fg)
		x += fontWidth
	}
}

type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	t := render.RGB565Target{Buf: d.fb.Buffer(), Stride: d.fb.StrideBytes(), W: d.fb.Width(), H: d.fb.Height()}
	t.SetPixel(int(x), int(y), render.RGBA(c.R, c.G, c.B, c.A))
}

func (d panicDisplay) Display() error { return d.fb.Present() }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
