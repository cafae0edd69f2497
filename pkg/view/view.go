// Package view arranges widgets into trees.
//
// A View owns an ordered list of Elements, each either a widget or a nested
// view. Stack is the only View: it stacks its children along one axis. All
// views of a tree share one state handle, assigned from the root.
package view

import (
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/layout"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
	"github.com/surreal-ui/surreal/pkg/widget"
)

// Hook runs after a view has forwarded a message to its children. It may
// restructure the view or look up and mutate widgets. The store is already
// borrowed for the hook; the hook must not propagate events or messages.
type Hook func(v View, msg message.Message, st *state.Store)

// View is a container of widgets and nested views.
type View interface {
	// State returns the shared state handle.
	State() *state.Shared
	// AssignState shares h with this view and every nested view.
	AssignState(h *state.Shared)

	// Children returns the child list. Elements may be modified in place.
	Children() []Element
	// Append adds e after the last child.
	Append(e Element) error
	// InsertAfter adds e after the child widget with the given id.
	InsertAfter(id string, e Element) error
	// Delete removes the child widget with the given id.
	Delete(id string) error

	// Init resolves the view's own theme defaults. Use InitAll to initialize
	// a whole tree.
	Init(m render.Measurer, th *theme.Theme)
	// Layout measures and places every descendant.
	Layout(m render.Measurer, th *theme.Theme, c layout.Constraints, isRoot bool)
	// Translate moves the view and every descendant.
	Translate(dx, dy int32)
	// Bounds returns the bounds computed by the last Layout.
	Bounds() graphics.BoundingRect
	// RenderSize returns the size computed by the last Layout.
	RenderSize(th *theme.Theme) (width, height uint32)
	// Render draws every descendant in order.
	Render(c render.Canvas, th *theme.Theme)

	// PropagateEvent forwards ev to every descendant widget and reports
	// whether any requested a redraw.
	PropagateEvent(ev event.Event, q *message.Queue) bool
	// PropagateMessage forwards msg to every descendant widget, runs hooks
	// and reports whether the tree needs a new layout.
	PropagateMessage(msg message.Message) bool

	SetHook(h Hook)
	Hook() Hook
}

// Element is a child of a view: exactly one of a widget or a view.
type Element struct {
	widget widget.Widget
	view   View
	// needsInit marks elements added after the tree was initialized.
	needsInit bool
}

// FromWidget wraps a widget.
func FromWidget(w widget.Widget) Element {
	return Element{widget: w}
}

// FromView wraps a view.
func FromView(v View) Element {
	return Element{view: v}
}

// Widget returns the wrapped widget, if any.
func (e Element) Widget() (widget.Widget, bool) {
	return e.widget, e.widget != nil
}

// View returns the wrapped view, if any.
func (e Element) View() (View, bool) {
	return e.view, e.view != nil
}

// NeedsInit reports whether the element was added since the last init.
func (e Element) NeedsInit() bool {
	return e.needsInit
}

func (e *Element) translate(dx, dy int32) {
	if e.view != nil {
		e.view.Translate(dx, dy)
	} else {
		e.widget.Translate(dx, dy)
	}
}

func (e *Element) render(c render.Canvas, th *theme.Theme) {
	if e.view != nil {
		e.view.Render(c, th)
	} else {
		e.widget.Render(c, th)
	}
}
