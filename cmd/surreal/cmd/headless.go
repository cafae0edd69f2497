package cmd

import (
	"fmt"

	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/layout"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/view"
)

// headlessSurface is an app.Surface without a window. Each Poll clicks the
// next widget in taps and the surface quits when they run out.
type headlessSurface struct {
	renderer *render.ImageRenderer
	root     view.View
	taps     []string
	frames   int
	err      error
}

func (s *headlessSurface) Renderer() render.Renderer { return s.renderer }

func (s *headlessSurface) Size() layout.Constraints {
	b := s.renderer.Image().Bounds()
	return layout.Window(uint32(b.Dx()), uint32(b.Dy()))
}

func (s *headlessSurface) Present() error {
	s.frames++
	return nil
}

func (s *headlessSurface) Poll() ([]event.Event, bool) {
	if len(s.taps) == 0 {
		return nil, true
	}
	id := s.taps[0]
	s.taps = s.taps[1:]
	w, ok := view.FindWidget(s.root, id)
	if !ok {
		s.err = fmt.Errorf("--tap: no widget with id %q", id)
		return nil, true
	}
	c := w.Bounds().Center()
	return []event.Event{event.Press(c.X, c.Y), event.Release(c.X, c.Y)}, false
}
