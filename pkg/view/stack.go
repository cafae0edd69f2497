package view

import (
	"fmt"
	"math"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/layout"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
	"github.com/surreal-ui/surreal/pkg/widget"
)

// Stack lays out its children one after another along its orientation.
type Stack struct {
	orientation layout.Orientation
	// alignment is nil until set; Init then takes the theme default.
	alignment *layout.Alignment
	align     layout.Alignment
	children  []Element
	bounds    graphics.BoundingRect
	state     *state.Shared
	hook      Hook
	// changed is set by structural edits and reported by PropagateMessage.
	changed bool
}

// NewStack returns a stack with the given orientation and children.
func NewStack(o layout.Orientation, children ...Element) *Stack {
	return &Stack{orientation: o, children: children}
}

// VStack returns a vertical stack.
func VStack(children ...Element) *Stack {
	return NewStack(layout.Vertical, children...)
}

// HStack returns a horizontal stack.
func HStack(children ...Element) *Stack {
	return NewStack(layout.Horizontal, children...)
}

// Alignment sets the cross-axis alignment.
func (s *Stack) Alignment(a layout.Alignment) *Stack {
	s.alignment = &a
	return s
}

// WithState makes st the tree's state. Only the root's state is used.
func (s *Stack) WithState(st *state.Store) *Stack {
	s.state = state.NewShared(st)
	return s
}

// WithHook sets the post-message hook.
func (s *Stack) WithHook(h Hook) *Stack {
	s.hook = h
	return s
}

// Orientation returns the stacking axis.
func (s *Stack) Orientation() layout.Orientation {
	return s.orientation
}

// State implements View.
func (s *Stack) State() *state.Shared { return s.state }

// AssignState implements View.
func (s *Stack) AssignState(h *state.Shared) {
	s.state = h
	for _, e := range s.children {
		if e.view != nil {
			e.view.AssignState(h)
		}
	}
}

// Children implements View.
func (s *Stack) Children() []Element { return s.children }

// SetHook implements View.
func (s *Stack) SetHook(h Hook) { s.hook = h }

// Hook implements View.
func (s *Stack) Hook() Hook { return s.hook }

// Bounds implements View.
func (s *Stack) Bounds() graphics.BoundingRect { return s.bounds }

// RenderSize implements View.
func (s *Stack) RenderSize(*theme.Theme) (uint32, uint32) { return s.bounds.Dimensions() }

// Append implements View. Ids of e must not already occur in s.
func (s *Stack) Append(e Element) error {
	if err := s.admit("view.Append", &e); err != nil {
		return err
	}
	s.children = append(s.children, e)
	return nil
}

// InsertAfter implements View.
func (s *Stack) InsertAfter(id string, e Element) error {
	i := s.indexOf(id)
	if i < 0 {
		return errors.New("view.InsertAfter", errors.KindTree, id, errors.ErrNotFound)
	}
	if err := s.admit("view.InsertAfter", &e); err != nil {
		return err
	}
	s.children = append(s.children[:i+1], append([]Element{e}, s.children[i+1:]...)...)
	return nil
}

// Delete implements View.
func (s *Stack) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return errors.New("view.Delete", errors.KindTree, id, errors.ErrNotFound)
	}
	s.children = append(s.children[:i], s.children[i+1:]...)
	s.changed = true
	return nil
}

func (s *Stack) indexOf(id string) int {
	for i, e := range s.children {
		if e.widget != nil && e.widget.ID() == id {
			return i
		}
	}
	return -1
}

// admit checks e's ids against the stack's subtree and prepares e for
// insertion.
func (s *Stack) admit(op string, e *Element) error {
	if (e.widget == nil) == (e.view == nil) {
		return errors.New(op, errors.KindTree, "", fmt.Errorf("element must hold a widget or a view"))
	}
	ids := make(map[string]bool)
	Walk(s, func(w widget.Widget) bool {
		ids[w.ID()] = true
		return true
	})
	var dup string
	check := func(w widget.Widget) bool {
		if ids[w.ID()] {
			dup = w.ID()
			return false
		}
		ids[w.ID()] = true
		return true
	}
	if e.view != nil {
		Walk(e.view, check)
	} else {
		check(e.widget)
	}
	if dup != "" {
		return errors.New(op, errors.KindTree, dup, errors.ErrDuplicateID)
	}
	if e.view != nil && s.state != nil {
		e.view.AssignState(s.state)
	}
	e.needsInit = true
	s.changed = true
	return nil
}

// Init implements View.
func (s *Stack) Init(_ render.Measurer, th *theme.Theme) {
	if s.alignment != nil {
		s.align = *s.alignment
	} else {
		s.align = th.DefaultAlignment
	}
}

// Layout implements View.
//
// Children are placed at a running cursor along the main axis, separated by
// the theme's widget padding. In a vertical stack, centered children are
// centered in the constraint width and right-aligned children are pushed
// against it. A root stack is surrounded by the theme's view padding and, when
// centered, moved so that its vertical center is the constraint's.
func (s *Stack) Layout(m render.Measurer, th *theme.Theme, c layout.Constraints, isRoot bool) {
	vp, wp := th.ViewPadding, th.WidgetPadding
	vertical := s.orientation.IsVertical()
	centered := s.align.IsCentered()

	var x, y int32
	if isRoot {
		if vertical {
			y = int32(vp.Vertical)
			if !centered {
				x = int32(vp.Horizontal)
			}
		} else {
			x = int32(vp.Horizontal)
			if !centered {
				y = int32(vp.Vertical)
			}
		}
	}
	startX, startY := x, y

	var maxCross uint32
	minX, minY := int32(math.MaxInt32), int32(math.MaxInt32)
	for i := range s.children {
		e := &s.children[i]
		if e.needsInit {
			initElement(s, e, m, th)
		}

		var w, h uint32
		var cur graphics.BoundingRect
		if e.view != nil {
			e.view.Layout(m, th, c, false)
			w, h = e.view.RenderSize(th)
			cur = e.view.Bounds()
		} else {
			w, h = e.widget.RenderSize(th)
		}

		tx, ty := x, y
		if vertical {
			switch {
			case centered:
				tx = (int32(c.Width) - int32(w)) / 2
			case s.align.IsRightAligned():
				tx = int32(c.Width) - int32(w)
				if isRoot {
					tx -= int32(vp.Horizontal)
				}
			}
		}
		if e.view != nil {
			e.view.Translate(tx-cur.X, ty-cur.Y)
		} else {
			e.widget.Place(tx, ty)
		}
		minX, minY = min(minX, tx), min(minY, ty)

		if vertical {
			y += int32(h) + int32(wp.Vertical)
			maxCross = max(maxCross, w)
		} else {
			x += int32(w) + int32(wp.Horizontal)
			maxCross = max(maxCross, h)
		}
	}

	if len(s.children) == 0 {
		minX, minY = startX, startY
	}
	extent := uint32(y - startY)
	if !vertical {
		extent = uint32(x - startX)
	}
	if isRoot {
		// The loop adds widget padding after the last child as well.
		if len(s.children) > 0 {
			if vertical {
				extent -= wp.Vertical
			} else {
				extent -= wp.Horizontal
			}
		}
		if vertical {
			extent += 2 * vp.Vertical
			s.bounds = graphics.BoundingRect{X: minX - int32(vp.Horizontal), Y: minY - int32(vp.Vertical), Width: maxCross + 2*vp.Horizontal, Height: extent}
		} else {
			extent += 2 * vp.Horizontal
			s.bounds = graphics.BoundingRect{X: minX - int32(vp.Horizontal), Y: minY - int32(vp.Vertical), Width: extent, Height: maxCross + 2*vp.Vertical}
		}
		if centered {
			dy := int32(c.Height/2) - (s.bounds.Y + int32(s.bounds.Height/2))
			s.Translate(0, dy)
		}
		return
	}

	if vertical {
		s.bounds = graphics.BoundingRect{X: minX, Y: minY, Width: maxCross, Height: extent}
	} else {
		s.bounds = graphics.BoundingRect{X: minX, Y: minY, Width: extent, Height: maxCross}
	}
}

// Translate implements View.
func (s *Stack) Translate(dx, dy int32) {
	s.bounds.Translate(dx, dy)
	for i := range s.children {
		s.children[i].translate(dx, dy)
	}
}

// Render implements View.
func (s *Stack) Render(c render.Canvas, th *theme.Theme) {
	for i := range s.children {
		s.children[i].render(c, th)
	}
}

// shared returns the state handle, creating an empty one for a stack that
// was never initialized as a root.
func (s *Stack) shared() *state.Shared {
	if s.state == nil {
		s.AssignState(state.NewShared(nil))
	}
	return s.state
}

// PropagateEvent implements View. A Consume response stops the event from
// reaching the remaining children of this stack only.
func (s *Stack) PropagateEvent(ev event.Event, q *message.Queue) bool {
	h := s.shared()
	redraw := false
	for _, e := range s.children {
		if e.view != nil {
			if e.view.PropagateEvent(ev, q) {
				redraw = true
			}
			continue
		}
		var r event.Response
		h.With("HandleEvent("+e.widget.ID()+")", func(st *state.Store) {
			r = e.widget.HandleEvent(ev, st, q)
		})
		switch r {
		case event.Consume:
			return redraw
		case event.Redraw:
			redraw = true
		}
	}
	return redraw
}

// PropagateMessage implements View.
func (s *Stack) PropagateMessage(msg message.Message) bool {
	h := s.shared()
	resize := false
	for _, e := range s.children {
		if e.view != nil {
			if e.view.PropagateMessage(msg) {
				resize = true
			}
			continue
		}
		h.With("HandleMessage("+e.widget.ID()+")", func(st *state.Store) {
			e.widget.HandleMessage(msg, st)
		})
		if widget.CheckResize(e.widget) {
			resize = true
		}
	}
	if s.hook != nil {
		h.With("Hook", func(st *state.Store) {
			s.hook(s, msg, st)
		})
		// The hook may have changed any widget of the subtree.
		Walk(s, func(w widget.Widget) bool {
			if widget.CheckResize(w) {
				resize = true
			}
			return true
		})
	}
	if s.changed {
		s.changed = false
		resize = true
	}
	return resize
}
