package hal

import (
	"fmt"
	"os"
	"sync"
)

// Options configures the host HAL.
type Options struct {
	Width, Height int               // framebuffer size in pixels
	AssetRoot     string            // directory that cue paths are relative to
	Cues          map[string]string // cue name to asset path
	Mute          bool
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
	t      *hostTime
	spk    Speaker
}

// New returns a host HAL implementation.
func New(opts Options) HAL {
	return newHost(opts)
}

func newHost(opts Options) *hostHAL {
	if opts.Width <= 0 {
		opts.Width = 480
	}
	if opts.Height <= 0 {
		opts.Height = 320
	}
	logger := &hostLogger{w: os.Stdout}
	var spk Speaker = nullSpeaker{}
	if !opts.Mute {
		spk = newHostSpeaker(opts.AssetRoot, opts.Cues)
	}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(opts.Width, opts.Height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		t:      newHostTime(),
		spk:    spk,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Speaker() Speaker { return h.spk }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// nullSpeaker drops every cue. Headless runs and muted sessions use it.
type nullSpeaker struct{}

func (nullSpeaker) Play(string, float64) error { return nil }
func (nullSpeaker) Loop(string, float64) error { return nil }
