// Package widget provides the leaf elements of a view tree.
//
// A widget measures itself in Init, is positioned by its parent view with
// Place and Translate, reacts to input in HandleEvent by mutating shared state
// and emitting messages, and reacts to dispatched messages in HandleMessage.
// Widgets that change their intrinsic size raise their resize flag; the view
// tree checks and clears it once per message.
package widget

import (
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
)

// Widget is a leaf UI element.
type Widget interface {
	// ID returns the identifier used for lookup. Ids are unique within a tree.
	ID() string

	// Bounds returns the current bounds.
	Bounds() graphics.BoundingRect

	// Init resolves unset style fields from th and measures content. It runs
	// before the first layout and again whenever the tree is resized. Fields
	// set by the caller are never overwritten.
	Init(m render.Measurer, th *theme.Theme)

	// Place sets the origin. Composite widgets re-center their content.
	Place(x, y int32)

	// Translate moves the widget and its content by a relative offset.
	Translate(dx, dy int32)

	// RenderSize returns the size measured by Init.
	RenderSize(th *theme.Theme) (width, height uint32)

	// HandleEvent reacts to input. The store is borrowed for the duration of
	// the call only.
	HandleEvent(ev event.Event, st *state.Store, q *message.Queue) event.Response

	// HandleMessage reacts to a dispatched message.
	HandleMessage(msg message.Message, st *state.Store)

	// ShouldResize returns the widget's resize flag.
	ShouldResize() *bool

	// Render issues draw commands for the current bounds.
	Render(c render.Canvas, th *theme.Theme)
}

// CheckResize reports whether w requested a resize and clears the request.
func CheckResize(w Widget) bool {
	flag := w.ShouldResize()
	should := *flag
	*flag = false
	return should
}

// Base implements the bookkeeping shared by all widgets. Embed it and provide
// Init and Render.
type Base struct {
	id     string
	bounds graphics.BoundingRect
	resize bool
}

// NewBase returns a Base with the given id.
func NewBase(id string) Base {
	return Base{id: id}
}

func (b *Base) ID() string                               { return b.id }
func (b *Base) Bounds() graphics.BoundingRect            { return b.bounds }
func (b *Base) ShouldResize() *bool                      { return &b.resize }
func (b *Base) Place(x, y int32)                         { b.bounds.X, b.bounds.Y = x, y }
func (b *Base) Translate(dx, dy int32)                   { b.bounds.Translate(dx, dy) }
func (b *Base) RenderSize(*theme.Theme) (uint32, uint32) { return b.bounds.Dimensions() }

// HandleEvent ignores the event.
func (b *Base) HandleEvent(event.Event, *state.Store, *message.Queue) event.Response {
	return event.None
}

// HandleMessage ignores the message.
func (b *Base) HandleMessage(message.Message, *state.Store) {}

// SetSize sets the measured size. Widgets call it from Init.
func (b *Base) SetSize(w, h uint32) {
	b.bounds.Width, b.bounds.Height = w, h
}

// centerIn returns the offset that centers a w×h box inside b.
func (b *Base) centerIn(w, h uint32) (int32, int32) {
	return int32(b.bounds.Width/2) - int32(w/2), int32(b.bounds.Height/2) - int32(h/2)
}

// leftPress and leftRelease match left button events.
func leftPress(ev event.Event) (graphics.Point, bool) {
	if e, ok := ev.(event.MouseButtonEvent); ok && e.Button == event.Left && e.State == event.Pressed {
		return e.Position, true
	}
	return graphics.Point{}, false
}

func leftRelease(ev event.Event) (graphics.Point, bool) {
	if e, ok := ev.(event.MouseButtonEvent); ok && e.Button == event.Left && e.State == event.Released {
		return e.Position, true
	}
	return graphics.Point{}, false
}

// clickTracker is the press/release discipline shared by Button and
// CircleButton: a click fires only when both the press and the release land
// inside the widget.
type clickTracker struct {
	armed bool
}

func (c *clickTracker) handle(ev event.Event, inside func(graphics.Point) bool, fire func()) event.Response {
	if p, ok := leftPress(ev); ok {
		if inside(p) {
			c.armed = true
			return event.Consume
		}
		return event.None
	}
	if p, ok := leftRelease(ev); ok {
		armed := c.armed
		c.armed = false
		if armed && inside(p) {
			fire()
			return event.Consume
		}
	}
	return event.None
}
