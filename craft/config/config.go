// Package config loads the sandbox tuning from YAML. Fields missing from the
// file keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type World struct {
	Length    int    `yaml:"length"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Ground    int    `yaml:"ground"`
	Generator string `yaml:"generator"`
	Seed      int64  `yaml:"seed"`
}

type Physics struct {
	Gravity  float64 `yaml:"gravity"`
	Terminal float64 `yaml:"terminal"`
	Jump     float64 `yaml:"jump"`
	Speed    float64 `yaml:"speed"`
}

type Camera struct {
	FOV  float64 `yaml:"fov"` // vertical, degrees
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
	// LookDivisor and LookSmoothing shape shift-drag look.
	LookDivisor   float64 `yaml:"look_divisor"`
	LookSmoothing float64 `yaml:"look_smoothing"`
}

type Picking struct {
	Mode    string  `yaml:"mode"` // "render" or "ray"
	MaxDist float64 `yaml:"max_dist"`
}

type Audio struct {
	Mute       bool          `yaml:"mute"`
	Assets     string        `yaml:"assets"`
	Cooldown   time.Duration `yaml:"cooldown"`
	Volume     float64       `yaml:"volume"`
	Background float64       `yaml:"background"`
}

type Display struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
}

type Log struct {
	Level string `yaml:"level"`
	Color bool   `yaml:"color"`
}

type Config struct {
	World   World   `yaml:"world"`
	Physics Physics `yaml:"physics"`
	Camera  Camera  `yaml:"camera"`
	Picking Picking `yaml:"picking"`
	Audio   Audio   `yaml:"audio"`
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
}

func Default() Config {
	return Config{
		World: World{Length: 20, Width: 20, Height: 100, Ground: 2, Generator: "showcase", Seed: 1},
		Physics: Physics{
			Gravity:  0.1,
			Terminal: -1,
			Jump:     0.75,
			Speed:    25,
		},
		Camera:  Camera{FOV: 45, Near: 0.1, Far: 100, LookDivisor: 4, LookSmoothing: 0.001},
		Picking: Picking{Mode: "render", MaxDist: 64},
		Audio: Audio{
			Assets:     "assets",
			Cooldown:   300 * time.Millisecond,
			Volume:     1,
			Background: 0.5,
		},
		Display: Display{Width: 480, Height: 320, Scale: 2},
		Log:     Log{Level: "info", Color: true},
	}
}

var ErrInvalid = errors.New("invalid config")

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the cross-field constraints the simulation relies on.
// Grid dimensions must fit in a byte so that identity picking can encode them.
func (c Config) Validate() error {
	w := c.World
	switch {
	case w.Length <= 0 || w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("%w: world dimensions must be positive, got %dx%dx%d", ErrInvalid, w.Length, w.Width, w.Height)
	case w.Length > 256 || w.Width > 256 || w.Height > 256:
		return fmt.Errorf("%w: world dimensions must not exceed 256", ErrInvalid)
	case w.Ground < 1 || w.Ground >= w.Height:
		return fmt.Errorf("%w: ground %d outside [1,%d)", ErrInvalid, w.Ground, w.Height)
	case c.Physics.Terminal >= 0:
		return fmt.Errorf("%w: terminal velocity must be negative", ErrInvalid)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalid)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %v out of range", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.LookDivisor <= 0:
		return fmt.Errorf("%w: look_divisor must be positive", ErrInvalid)
	case c.Picking.Mode != "render" && c.Picking.Mode != "ray":
		return fmt.Errorf("%w: picking mode %q", ErrInvalid, c.Picking.Mode)
	case c.Audio.Cooldown < 0:
		return fmt.Errorf("%w: negative audio cooldown", ErrInvalid)
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("%w: display size must be positive", ErrInvalid)
	}
	return nil
}
