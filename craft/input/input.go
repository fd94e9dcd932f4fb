// Package input turns HAL key and pointer events into per-frame state.
package input

import (
	"math"

	"blockfield/craft/movement"
	"blockfield/hal"
)

// Click is a button press at a framebuffer position.
type Click struct {
	X, Y   int
	Button int
}

type move struct {
	x, y  int
	shift bool
}

// Manager keeps the key state of the current and previous frame. Call Sample
// once at the frame boundary, then Drain the HAL queues.
type Manager struct {
	// Divisor scales pointer travel in pixels into radians of look target;
	// Smoothing is the share of the remaining gap closed per pointer event.
	Divisor   float64
	Smoothing float64

	cur, prev map[hal.KeyCode]bool
	moves     []move
	clicks    []Click
	x, y      int

	dragging             bool
	anchorX, anchorY     int
	anchorYaw, anchorPit float64
}

func NewManager() *Manager {
	return &Manager{
		Divisor:   4,
		Smoothing: 0.001,
		cur:       make(map[hal.KeyCode]bool),
		prev:      make(map[hal.KeyCode]bool),
	}
}

// Sample makes the current key state the previous one and clears the
// per-frame pointer queues.
func (m *Manager) Sample() {
	for k := range m.prev {
		delete(m.prev, k)
	}
	for k, v := range m.cur {
		m.prev[k] = v
	}
	m.moves = m.moves[:0]
	m.clicks = m.clicks[:0]
}

// Drain consumes every pending event without blocking. Either source may
// be nil.
func (m *Manager) Drain(kbd hal.Keyboard, ptr hal.Pointer) {
	if kbd != nil {
		m.drainKeys(kbd.Events())
	}
	if ptr != nil {
		m.drainPointer(ptr.Events())
	}
}

func (m *Manager) drainKeys(ch <-chan hal.KeyEvent) {
	for {
		select {
		case ev := <-ch:
			m.Key(ev)
		default:
			return
		}
	}
}

func (m *Manager) drainPointer(ch <-chan hal.PointerEvent) {
	for {
		select {
		case ev := <-ch:
			m.Pointer(ev)
		default:
			return
		}
	}
}

func (m *Manager) Key(ev hal.KeyEvent) {
	if ev.Code == hal.KeyUnknown {
		return
	}
	m.cur[ev.Code] = ev.Press
}

func (m *Manager) Pointer(ev hal.PointerEvent) {
	m.x, m.y = ev.X, ev.Y
	switch {
	case ev.Button == 0:
		m.moves = append(m.moves, move{ev.X, ev.Y, m.IsDown(hal.KeyShift)})
	case ev.Press:
		m.clicks = append(m.clicks, Click{X: ev.X, Y: ev.Y, Button: ev.Button})
	}
}

func (m *Manager) IsDown(k hal.KeyCode) bool  { return m.cur[k] }
func (m *Manager) WasDown(k hal.KeyCode) bool { return m.prev[k] }

// IsPressed reports a key that went down since the last Sample.
func (m *Manager) IsPressed(k hal.KeyCode) bool { return m.cur[k] && !m.prev[k] }

// Cursor is the last known pointer position.
func (m *Manager) Cursor() (x, y int) { return m.x, m.y }

// Clicks returns the button presses drained since the last Sample.
func (m *Manager) Clicks() []Click { return m.clicks }

// Intent maps WASD and the arrow keys to movement, and space to jump.
func (m *Manager) Intent() movement.Intent {
	return movement.Intent{
		Forward: m.IsDown(hal.KeyW) || m.IsDown(hal.KeyUp),
		Back:    m.IsDown(hal.KeyS) || m.IsDown(hal.KeyDown),
		Left:    m.IsDown(hal.KeyA) || m.IsDown(hal.KeyLeft),
		Right:   m.IsDown(hal.KeyD) || m.IsDown(hal.KeyRight),
		Jump:    m.IsDown(hal.KeySpace),
	}
}

// Aim applies this frame's pointer moves to yaw and pitch. Looking only
// happens while shift is held: the first move of a drag anchors it, and each
// later move eases the angles toward anchor + travel/Divisor.
func (m *Manager) Aim(yaw, pitch float64) (float64, float64) {
	for _, mv := range m.moves {
		if !mv.shift {
			m.dragging = false
			continue
		}
		if !m.dragging {
			m.dragging = true
			m.anchorX, m.anchorY = mv.x, mv.y
			m.anchorYaw, m.anchorPit = yaw, pitch
			continue
		}
		ty := m.anchorYaw + float64(mv.x-m.anchorX)/m.Divisor
		tp := m.anchorPit + float64(mv.y-m.anchorY)/m.Divisor
		yaw += (ty - yaw) * m.Smoothing
		pitch += (tp - pitch) * m.Smoothing
		pitch = math.Max(-math.Pi/2, math.Min(math.Pi/2, pitch))
	}
	if len(m.moves) == 0 && !m.IsDown(hal.KeyShift) {
		m.dragging = false
	}
	return yaw, pitch
}
