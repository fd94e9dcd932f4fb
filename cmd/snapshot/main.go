// Command snapshot renders one frame of a generated world to a PNG file
// without opening a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"

	"blockfield/craft/config"
	"blockfield/craft/game"
	"blockfield/craft/linalg"
	"blockfield/craft/movement"
	"blockfield/craft/render"
	"blockfield/craft/world"
)

type options struct {
	config     string
	out        string
	w, h       int
	yaw, pitch float64
	x, y, z    float64
	noClouds   bool
}

func main() {
	var o options
	flag.StringVar(&o.config, "config", "", "YAML config file (defaults apply when empty).")
	flag.StringVar(&o.out, "out", "frame.png", "Output PNG path.")
	flag.IntVar(&o.w, "w", 0, "Image width (0 = display width from config).")
	flag.IntVar(&o.h, "h", 0, "Image height (0 = display height from config).")
	flag.Float64Var(&o.yaw, "yaw", 0, "Camera yaw in degrees.")
	flag.Float64Var(&o.pitch, "pitch", 20, "Camera pitch in degrees; positive looks down.")
	flag.Float64Var(&o.x, "x", math.NaN(), "Eye px (default: spawn).")
	flag.Float64Var(&o.y, "y", math.NaN(), "Eye py (default: spawn).")
	flag.Float64Var(&o.z, "z", math.NaN(), "Eye pz (default: spawn).")
	flag.BoolVar(&o.noClouds, "no-clouds", false, "Skip the cloud layer.")
	flag.Parse()

	if err := run(o); err != nil {
		fatalf("snapshot: %v", err)
	}
}

func run(o options) error {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return err
		}
	}
	if o.w <= 0 {
		o.w = cfg.Display.Width
	}
	if o.h <= 0 {
		o.h = cfg.Display.Height
	}
	if o.out == "" {
		return errors.New("empty -out")
	}

	img, err := snapshot(cfg, o)
	if err != nil {
		return err
	}

	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.RGBA()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", o.out, err)
	}
	return f.Close()
}

func snapshot(cfg config.Config, o options) (*render.Image, error) {
	wc := cfg.World
	gen, err := world.NewGenerator(wc.Generator, wc.Ground, wc.Seed)
	if err != nil {
		return nil, err
	}
	grid := world.NewGrid(wc.Length, wc.Width, wc.Height)
	gen.Generate(grid)

	a := movement.Spawn(wc.Length, wc.Width, wc.Ground)
	for i, v := range []float64{o.x, o.y, o.z} {
		if !math.IsNaN(v) {
			a.Pos[i] = v
		}
	}
	a.Yaw = o.yaw * math.Pi / 180
	a.SetPitch(o.pitch * math.Pi / 180)

	proj := linalg.Perspective(cfg.Camera.FOV*math.Pi/180, float64(o.w)/float64(o.h), cfg.Camera.Near, cfg.Camera.Far)
	img := render.NewImage(o.w, o.h)
	d := render.NewDevice(img)
	d.SetClearColor(game.Sky)

	clouds := render.DefaultClouds
	if o.noClouds {
		clouds = nil
	}
	game.DrawScene(d, grid, proj.Mul(a.Camera()), clouds)
	return img, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
