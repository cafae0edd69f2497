package widget

import (
	"fmt"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/layout"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
)

const defaultScrollBarThickness = 20

// ScrollBar is a draggable slider inside a container track. Dragging reports
// the slider position as a fraction in [0, 1] through OnScroll.
type ScrollBar struct {
	Base
	orientation     layout.Orientation
	containerLength uint32
	sliderLength    uint32
	thickness       uint32
	hasBackground   bool

	sliderColor, backgroundColor         *graphics.Color
	sliderDraw, backgroundDraw           graphics.Color
	sliderRoundness, backgroundRoundness float32 // < 0 means unset

	onScroll func(pct float32, st *state.Store) message.Message

	offset   uint32
	pct      float32
	dragging bool
	grab     int32
}

// NewScrollBar returns a vertical scroll bar whose track is containerLength
// pixels long and whose slider is sliderLength pixels long. The slider is
// clamped to the track.
func NewScrollBar(id string, containerLength, sliderLength uint32) *ScrollBar {
	return &ScrollBar{
		Base:                NewBase(id),
		orientation:         layout.Vertical,
		containerLength:     containerLength,
		sliderLength:        min(sliderLength, containerLength),
		thickness:           defaultScrollBarThickness,
		hasBackground:       true,
		sliderRoundness:     -1,
		backgroundRoundness: -1,
	}
}

// Orientation sets the drag axis.
func (s *ScrollBar) Orientation(o layout.Orientation) *ScrollBar {
	s.orientation = o
	return s
}

// Thickness sets the cross-axis size.
func (s *ScrollBar) Thickness(t uint32) *ScrollBar {
	s.thickness = t
	return s
}

// Background sets whether the track is drawn.
func (s *ScrollBar) Background(show bool) *ScrollBar {
	s.hasBackground = show
	return s
}

// SliderColor overrides the theme's primary color for the slider.
func (s *ScrollBar) SliderColor(c graphics.Color) *ScrollBar {
	s.sliderColor = &c
	return s
}

// BackgroundColor overrides the theme's secondary color for the track.
func (s *ScrollBar) BackgroundColor(c graphics.Color) *ScrollBar {
	s.backgroundColor = &c
	return s
}

// Roundness sets the corner rounding of both slider and track.
func (s *ScrollBar) Roundness(r float32) *ScrollBar {
	if r < 0 || r > 100 {
		errors.Fatal(errors.New("widget.ScrollBar.Roundness", errors.KindStyle, s.id,
			fmt.Errorf("%w: roundness %v not in [0, 100]", errors.ErrOutOfRange, r)))
	}
	s.sliderRoundness, s.backgroundRoundness = r, r
	return s
}

// OnScroll sets the callback run whenever the slider position changes.
func (s *ScrollBar) OnScroll(fn func(pct float32, st *state.Store) message.Message) *ScrollBar {
	s.onScroll = fn
	return s
}

// Percentage returns the slider position in [0, 1].
func (s *ScrollBar) Percentage() float32 {
	return s.pct
}

// Dragging reports whether the slider is held.
func (s *ScrollBar) Dragging() bool {
	return s.dragging
}

// Init implements Widget.
func (s *ScrollBar) Init(_ render.Measurer, th *theme.Theme) {
	s.sliderDraw = th.Colors.Primary
	if s.sliderColor != nil {
		s.sliderDraw = *s.sliderColor
	}
	s.backgroundDraw = th.Colors.Secondary
	if s.backgroundColor != nil {
		s.backgroundDraw = *s.backgroundColor
	}
	if s.sliderRoundness < 0 {
		s.sliderRoundness = th.Widgets.Buttons.Roundness
	}
	if s.backgroundRoundness < 0 {
		s.backgroundRoundness = th.Widgets.Buttons.Roundness
	}
	if s.orientation.IsVertical() {
		s.SetSize(s.thickness, s.containerLength)
	} else {
		s.SetSize(s.containerLength, s.thickness)
	}
}

// SliderBounds returns the slider's current bounds.
func (s *ScrollBar) SliderBounds() graphics.BoundingRect {
	r := s.bounds
	if s.orientation.IsVertical() {
		r.Y += int32(s.offset)
		r.Height = s.sliderLength
	} else {
		r.X += int32(s.offset)
		r.Width = s.sliderLength
	}
	return r
}

// axis selects the coordinate along the drag axis.
func (s *ScrollBar) axis(p graphics.Point) int32 {
	if s.orientation.IsVertical() {
		return p.Y
	}
	return p.X
}

func (s *ScrollBar) start() int32 {
	return s.axis(graphics.Pt(s.bounds.TopLeft()))
}

// HandleEvent implements Widget.
func (s *ScrollBar) HandleEvent(ev event.Event, st *state.Store, q *message.Queue) event.Response {
	if p, ok := leftPress(ev); ok {
		if s.SliderBounds().Contains(p.X, p.Y) {
			s.dragging = true
			s.grab = s.axis(p) - s.start() - int32(s.offset)
			return event.Consume
		}
		return event.None
	}
	if _, ok := leftRelease(ev); ok {
		s.dragging = false
		return event.None
	}
	m, ok := ev.(event.MouseMotion)
	if !ok || !s.dragging {
		return event.None
	}

	travel := int32(s.containerLength - s.sliderLength)
	off := min(max(s.axis(m.Position)-s.start()-s.grab, 0), travel)
	s.offset = uint32(off)

	var pct float32
	if travel > 0 {
		pct = float32(off) / float32(travel)
	}
	if pct == s.pct {
		return event.None
	}
	s.pct = pct
	if s.onScroll != nil {
		q.Push(s.onScroll(pct, st))
	}
	return event.Redraw
}

// Render implements Widget.
func (s *ScrollBar) Render(c render.Canvas, _ *theme.Theme) {
	if s.hasBackground {
		bg := render.PrimitiveStyle{Shape: render.RoundedRectangle, Roundness: s.backgroundRoundness}
		c.Draw(bg.Command(s.bounds, s.backgroundDraw))
	}
	fg := render.PrimitiveStyle{Shape: render.RoundedRectangle, Roundness: s.sliderRoundness}
	c.Draw(fg.Command(s.SliderBounds(), s.sliderDraw))
}
