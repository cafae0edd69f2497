package app

import (
	"context"
	"time"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/layout"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/theme"
	"github.com/surreal-ui/surreal/pkg/view"
)

// Surface is the window-system side of an application: it supplies input
// in the abstract event shape, the current window size and a renderer, and
// presents finished frames.
type Surface interface {
	Renderer() render.Renderer
	// Size returns the drawable size in pixels.
	Size() layout.Constraints
	// Poll returns the events received since the last call. quit reports
	// that the window was closed.
	Poll() (events []event.Event, quit bool)
	// Present shows the rendered frame.
	Present() error
}

// Config holds application settings.
type Config struct {
	// Theme defaults to theme.Default().
	Theme *theme.Theme
	// FPS is the target frame rate. Zero means 60; negative disables
	// pacing.
	FPS int
	// SleepThreshold skips pacing sleeps shorter than this.
	SleepThreshold time.Duration
	// Trace, when set, receives a sample per tick.
	Trace *FrameTraceBuffer
}

// Application runs a view tree on a Surface.
type Application struct {
	surface Surface
	config  Config
	frame   *Frame
	timer   *Timer
}

// New returns an application drawing on s.
func New(s Surface, cfg Config) *Application {
	if cfg.FPS == 0 {
		cfg.FPS = 60
	}
	if cfg.Theme == nil {
		cfg.Theme = theme.Default()
	}
	return &Application{surface: s, config: cfg, timer: NewTimer()}
}

// Frame returns the frame of the running tree, or nil before Run.
func (a *Application) Frame() *Frame { return a.frame }

// Run initializes root and ticks until the surface reports quit or ctx is
// done. Panics raised by handlers are reported and re-raised.
func (a *Application) Run(ctx context.Context, root view.View) (err error) {
	defer errors.Recover("app.Run")

	a.frame = NewFrame(root, a.config.Theme, a.surface.Renderer())
	a.frame.SetTrace(a.config.Trace)
	a.frame.Start(a.surface.Size())
	if err := a.present(); err != nil {
		return err
	}

	a.timer.Start()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		events, quit := a.surface.Poll()
		if quit {
			return nil
		}
		dt := a.timer.Tick()
		if a.frame.Tick(events, a.surface.Size(), dt) {
			if err := a.present(); err != nil {
				return err
			}
		}
		if err := AwaitFPS(ctx, a.config.FPS, a.timer.Tick(), a.config.SleepThreshold); err != nil {
			return err
		}
	}
}

func (a *Application) present() error {
	if err := a.surface.Present(); err != nil {
		return errors.New("app.Present", errors.KindRender, "", err)
	}
	return nil
}
