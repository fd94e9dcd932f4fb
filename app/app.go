// Package app wires the configured sandbox onto a HAL.
package app

import (
	"fmt"
	"runtime/debug"

	"blockfield/craft/config"
	"blockfield/craft/game"
	"blockfield/craft/logging"
	"blockfield/craft/sound"
	"blockfield/hal"
	"blockfield/internal/buildinfo"
)

// HostOptions derives the host HAL settings from cfg.
func HostOptions(cfg config.Config) hal.Options {
	return hal.Options{
		Width:     cfg.Display.Width,
		Height:    cfg.Display.Height,
		AssetRoot: cfg.Audio.Assets,
		Cues:      sound.Assets(),
		Mute:      cfg.Audio.Mute,
	}
}

// New builds the game on h and returns its per-frame step. A panic inside
// the step is logged, drawn on the display and returned as an error.
func New(h hal.HAL, cfg config.Config) (func() error, error) {
	lv, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log := logging.New(h.Logger(), lv, cfg.Log.Color)
	log.With("boot").Infof("%s", buildinfo.String())

	g, err := game.New(h, cfg, game.Options{Log: log, Version: buildinfo.String()})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return guard(h, log.With("panic"), g.Step), nil
}

func guard(h hal.HAL, log *logging.Logger, step func() error) func() error {
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			info := panicInfo{Value: r, Stack: debug.Stack()}
			info.log(log)
			showPanic(h, info)
			err = fmt.Errorf("app: panic: %v", r)
		}()
		return step()
	}
}
