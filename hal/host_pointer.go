//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostButtons = []struct {
	button ebiten.MouseButton
	id     int
}{
	{ebiten.MouseButtonLeft, 1},
	{ebiten.MouseButtonRight, 3},
}

type hostPointer struct {
	ch   chan PointerEvent
	x, y int
	seen bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 128)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	if !p.seen || x != p.x || y != p.y {
		p.x, p.y, p.seen = x, y, true
		p.emit(PointerEvent{X: x, Y: y})
	}
	for _, b := range hostButtons {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			p.emit(PointerEvent{X: x, Y: y, Button: b.id, Press: true})
		}
		if inpututil.IsMouseButtonJustReleased(b.button) {
			p.emit(PointerEvent{X: x, Y: y, Button: b.id, Press: false})
		}
	}
}

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}
