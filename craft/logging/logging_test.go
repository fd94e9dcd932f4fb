package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct{ lines []string }

func (s *sink) WriteLineString(v string) { s.lines = append(s.lines, v) }
func (s *sink) WriteLineBytes(b []byte)  { s.lines = append(s.lines, string(b)) }

func TestLoggerFormatAndThreshold(t *testing.T) {
	out := &sink{}
	log := New(out, LevelInfo, false).With("world")

	log.Debugf("hidden %d", 1)
	log.Infof("generated %d cells", 42)
	log.Errorf("boom")

	require.Len(t, out.lines, 2)
	assert.Equal(t, "[INFO] world: generated 42 cells", out.lines[0])
	assert.Equal(t, "[ERROR] world: boom", out.lines[1])
}

func TestLoggerWithoutComponent(t *testing.T) {
	out := &sink{}
	New(out, LevelDebug, false).Warnf("x=%v", 3)
	assert.Equal(t, []string{"[WARN] x=3"}, out.lines)
}

func TestLoggerColor(t *testing.T) {
	out := &sink{}
	New(out, LevelDebug, true).Infof("hi")
	require.Len(t, out.lines, 1)
	assert.Contains(t, out.lines[0], "\x1b[")
	assert.Contains(t, out.lines[0], "[INFO]")
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Infof("nothing") })
	assert.NotPanics(t, func() { l.With("x").Warnf("nothing") })
	assert.NotPanics(t, func() { New(nil, LevelDebug, false).Errorf("nothing") })
}

func TestParseLevel(t *testing.T) {
	lv, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, lv)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, "LEVEL(9)", Level(9).String())
}
