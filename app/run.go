package app

import (
	"fmt"
	"log/slog"

	"github.com/mbue/glint/glx"
	"github.com/mbue/glint/window"
)

type Options struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Profile writes a CPU profile for the run.
	Profile bool
}

func (o Options) withDefaults() Options {
	if o.WindowWidth == 0 {
		o.WindowWidth = 800
	}

	if o.WindowHeight == 0 {
		o.WindowHeight = 600
	}

	if o.WindowTitle == "" {
		o.WindowTitle = "glint"
	}

	return o
}

// Run opens a window, builds the scene and blocks in the event loop
// until the window is closed. The caller must have locked the OS thread.
func Run(opts Options) error {
	opts = opts.withDefaults()

	win, err := window.New(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
		&window.Options{Profile: opts.Profile},
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	api, err := glx.Load()
	if err != nil {
		return fmt.Errorf("load gl: %w", err)
	}

	slog.Info("OpenGL context ready", slog.String("version", api.Version()))

	scene, err := NewScene(api)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	defer scene.Release()

	return loop(api, win, scene)
}
