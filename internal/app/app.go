// Package app wires the window, input, renderer and navigation into the
// interactive walkthrough loop.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/mezzanine/internal/engine/input"
	"github.com/Faultbox/mezzanine/internal/engine/renderer"
	"github.com/Faultbox/mezzanine/internal/engine/window"
	"github.com/Faultbox/mezzanine/internal/logger"
	"github.com/Faultbox/mezzanine/internal/nav"
	"github.com/Faultbox/mezzanine/internal/scene"
)

// Config holds app configuration.
type Config struct {
	Title             string
	Width             int
	Height            int
	Fullscreen        bool
	VSync             bool
	MoveStep          float32
	LookStepDegrees   float32
	PointerEdgeMargin float32
}

// partColors assigns each scene part its draw color. Unlisted parts get
// defaultColor.
var partColors = map[string][3]float32{
	"bottom": {0.5, 0.5, 1},
	"stairs": {0.5, 0.5, 0.5},
	"top":    {0.5, 1, 0.5},
}

var defaultColor = [3]float32{0.8, 0.8, 0.8}

// App is the running walkthrough.
type App struct {
	config     Config
	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Handler
	registry   *scene.Registry
	camera     *nav.Camera
	controller *nav.Controller
	running    bool
}

// New creates the app around an already loaded scene registry.
func New(cfg Config, registry *scene.Registry) (*App, error) {
	logger.Info("initializing walkthrough",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Strings("parts", registry.Names()),
	)

	a := &App{
		config:   cfg,
		registry: registry,
	}

	// Window first: it owns the OpenGL context the renderer needs
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.camera = nav.NewCamera()
	a.controller = nav.NewController(a.camera, cfg.MoveStep, cfg.LookStepDegrees)
	a.input = input.New(cfg.Width, cfg.Height, cfg.PointerEdgeMargin, a.window.WarpPointer)

	return a, nil
}

// Run drives the event loop until a quit intent arrives. Events are
// applied strictly in order on this one thread; the renderer reads the
// camera only between input batches.
func (a *App) Run() error {
	a.running = true

	logger.Info("starting walkthrough loop")

	for a.running {
		for _, intent := range a.input.Poll() {
			if intent == nav.IntentQuit {
				logger.Info("quit requested")
				a.running = false
				break
			}
			a.controller.Apply(intent)
		}

		a.render()
		a.window.SwapBuffers()
	}

	logger.Debug("final camera state",
		zap.Float32("x", a.camera.Position.X),
		zap.Float32("y", a.camera.Position.Y),
		zap.Float32("z", a.camera.Position.Z),
		zap.Float32("yaw", a.camera.YawDegrees),
	)

	return nil
}

// render draws every scene part under the current view transform.
func (a *App) render() {
	a.renderer.BeginFrame(a.camera.ViewMatrix())

	for _, name := range a.registry.Names() {
		mesh, err := a.registry.Get(name)
		if err != nil {
			// Names() only reports loaded parts; this cannot happen.
			continue
		}
		color, ok := partColors[name]
		if !ok {
			color = defaultColor
		}
		a.renderer.DrawMesh(mesh, color)
	}
}

// Close cleans up app resources.
func (a *App) Close() {
	logger.Info("closing walkthrough")

	if a.window != nil {
		a.window.Close()
	}
}
