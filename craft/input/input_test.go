package input

import (
	"math"
	"testing"

	"blockfield/craft/movement"
	"blockfield/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keys chan hal.KeyEvent

func (k keys) Events() <-chan hal.KeyEvent { return k }

type pointer chan hal.PointerEvent

func (p pointer) Events() <-chan hal.PointerEvent { return p }

func TestEdgeDetection(t *testing.T) {
	m := NewManager()
	kbd := make(keys, 8)

	m.Sample()
	kbd <- hal.KeyEvent{Code: hal.KeySpace, Press: true}
	m.Drain(kbd, nil)
	assert.True(t, m.IsDown(hal.KeySpace))
	assert.True(t, m.IsPressed(hal.KeySpace))
	assert.False(t, m.WasDown(hal.KeySpace))

	m.Sample()
	m.Drain(kbd, nil)
	assert.True(t, m.IsDown(hal.KeySpace))
	assert.False(t, m.IsPressed(hal.KeySpace), "held, not newly pressed")
	assert.True(t, m.WasDown(hal.KeySpace))

	m.Sample()
	kbd <- hal.KeyEvent{Code: hal.KeySpace, Press: false}
	m.Drain(kbd, nil)
	assert.False(t, m.IsDown(hal.KeySpace))
	assert.True(t, m.WasDown(hal.KeySpace))
}

func TestIntent(t *testing.T) {
	m := NewManager()
	m.Key(hal.KeyEvent{Code: hal.KeyW, Press: true})
	m.Key(hal.KeyEvent{Code: hal.KeyLeft, Press: true})
	m.Key(hal.KeyEvent{Code: hal.KeyUnknown, Press: true})
	assert.Equal(t, movement.Intent{Forward: true, Left: true}, m.Intent())

	m.Key(hal.KeyEvent{Code: hal.KeyW, Press: false})
	m.Key(hal.KeyEvent{Code: hal.KeyDown, Press: true})
	m.Key(hal.KeyEvent{Code: hal.KeySpace, Press: true})
	assert.Equal(t, movement.Intent{Back: true, Left: true, Jump: true}, m.Intent())
}

func TestClicksQueuedPerFrame(t *testing.T) {
	m := NewManager()
	ptr := make(pointer, 8)
	ptr <- hal.PointerEvent{X: 10, Y: 20}
	ptr <- hal.PointerEvent{X: 11, Y: 21, Button: 1, Press: true}
	ptr <- hal.PointerEvent{X: 11, Y: 21, Button: 1, Press: false}
	ptr <- hal.PointerEvent{X: 12, Y: 22, Button: 3, Press: true}
	m.Drain(nil, ptr)

	require.Equal(t, []Click{{11, 21, 1}, {12, 22, 3}}, m.Clicks())
	x, y := m.Cursor()
	assert.Equal(t, []int{12, 22}, []int{x, y})

	m.Sample()
	assert.Empty(t, m.Clicks())
}

func TestAimRequiresShift(t *testing.T) {
	m := NewManager()
	m.Pointer(hal.PointerEvent{X: 0, Y: 0})
	m.Pointer(hal.PointerEvent{X: 400, Y: 0})
	yaw, pitch := m.Aim(1, 0.5)
	assert.Equal(t, 1.0, yaw)
	assert.Equal(t, 0.5, pitch)
}

func TestAimEasesTowardDragTarget(t *testing.T) {
	m := NewManager()
	m.Key(hal.KeyEvent{Code: hal.KeyShift, Press: true})
	m.Pointer(hal.PointerEvent{X: 100, Y: 100})
	m.Pointer(hal.PointerEvent{X: 140, Y: 60})
	yaw, pitch := m.Aim(0, 0)

	// Target is anchor + (40, -40)/4 = (10, -10); one event closes 0.1%.
	assert.InDelta(t, 0.01, yaw, 1e-12)
	assert.InDelta(t, -0.01, pitch, 1e-12)

	m.Sample()
	m.Pointer(hal.PointerEvent{X: 140, Y: 60})
	yaw2, _ := m.Aim(yaw, pitch)
	assert.InDelta(t, yaw+(10-yaw)*0.001, yaw2, 1e-12, "anchor survives across frames")
}

func TestAimClampsPitch(t *testing.T) {
	m := NewManager()
	m.Smoothing = 1
	m.Key(hal.KeyEvent{Code: hal.KeyShift, Press: true})
	m.Pointer(hal.PointerEvent{X: 0, Y: 0})
	m.Pointer(hal.PointerEvent{X: 0, Y: 400})
	_, pitch := m.Aim(0, 0)
	assert.Equal(t, math.Pi/2, pitch)
}

func TestReleasingShiftResetsAnchor(t *testing.T) {
	m := NewManager()
	m.Smoothing = 1
	m.Key(hal.KeyEvent{Code: hal.KeyShift, Press: true})
	m.Pointer(hal.PointerEvent{X: 0, Y: 0})
	m.Pointer(hal.PointerEvent{X: 4, Y: 0})
	yaw, _ := m.Aim(0, 0)
	require.InDelta(t, 1.0, yaw, 1e-12)

	m.Sample()
	m.Key(hal.KeyEvent{Code: hal.KeyShift, Press: false})
	m.Aim(yaw, 0)

	m.Sample()
	m.Key(hal.KeyEvent{Code: hal.KeyShift, Press: true})
	m.Pointer(hal.PointerEvent{X: 50, Y: 0})
	m.Pointer(hal.PointerEvent{X: 54, Y: 0})
	yaw, _ = m.Aim(yaw, 0)
	assert.InDelta(t, 2.0, yaw, 1e-12, "new drag anchors at the new position")
}
