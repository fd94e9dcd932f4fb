package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.World.Length)
	assert.Equal(t, 100, cfg.World.Height)
	assert.Equal(t, -1.0, cfg.Physics.Terminal)
	assert.Equal(t, 300*time.Millisecond, cfg.Audio.Cooldown)
}

func TestParseOverridesOnlyGivenFields(t *testing.T) {
	cfg, err := Parse([]byte(`
world:
  length: 32
  generator: perlin
audio:
  cooldown: 150ms
  mute: true
picking:
  mode: ray
`))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.World.Length)
	assert.Equal(t, 20, cfg.World.Width)
	assert.Equal(t, "perlin", cfg.World.Generator)
	assert.Equal(t, 150*time.Millisecond, cfg.Audio.Cooldown)
	assert.True(t, cfg.Audio.Mute)
	assert.Equal(t, "ray", cfg.Picking.Mode)
	assert.Equal(t, 45.0, cfg.Camera.FOV)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "world:\n  depth: 3\n",
		"zero length":       "world:\n  length: 0\n",
		"too wide":          "world:\n  width: 300\n",
		"ground too high":   "world:\n  height: 4\n  ground: 4\n",
		"positive terminal": "physics:\n  terminal: 1\n",
		"bad mode":          "picking:\n  mode: lidar\n",
		"far before near":   "camera:\n  near: 5\n  far: 1\n",
		"bad yaml":          "world: [\n",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}

	_, err := Parse([]byte("physics:\n  terminal: 0.5\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfield.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  scale: 3\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Display.Scale)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
