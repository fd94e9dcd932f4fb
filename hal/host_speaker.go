//go:build cgo

package hal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const hostSampleRate = 44100

// hostSpeaker decodes Ogg Vorbis cues on first use and keeps one player per
// cue. Replaying a cue rewinds its player.
type hostSpeaker struct {
	mu      sync.Mutex
	ctx     *audio.Context
	root    string
	cues    map[string]string
	players map[string]*audio.Player
}

func newHostSpeaker(root string, cues map[string]string) Speaker {
	return &hostSpeaker{
		ctx:     audio.NewContext(hostSampleRate),
		root:    root,
		cues:    cues,
		players: make(map[string]*audio.Player),
	}
}

func (s *hostSpeaker) Play(name string, volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.player(name, false)
	if err != nil {
		return err
	}
	if err := p.Rewind(); err != nil {
		return err
	}
	p.SetVolume(volume)
	p.Play()
	return nil
}

func (s *hostSpeaker) Loop(name string, volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.player(name, true)
	if err != nil {
		return err
	}
	p.SetVolume(volume)
	if !p.IsPlaying() {
		p.Play()
	}
	return nil
}

func (s *hostSpeaker) player(name string, loop bool) (*audio.Player, error) {
	if p, ok := s.players[name]; ok {
		return p, nil
	}
	rel, ok := s.cues[name]
	if !ok {
		return nil, fmt.Errorf("speaker: unknown cue %q", name)
	}
	data, err := os.ReadFile(filepath.Join(s.root, rel))
	if err != nil {
		return nil, fmt.Errorf("speaker: %s: %w", name, err)
	}
	stream, err := vorbis.DecodeWithSampleRate(hostSampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("speaker: decode %s: %w", rel, err)
	}

	var p *audio.Player
	if loop {
		p, err = s.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	} else {
		p, err = s.ctx.NewPlayer(stream)
	}
	if err != nil {
		return nil, err
	}
	s.players[name] = p
	return p, nil
}
