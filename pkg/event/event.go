// Package event defines the window-system independent input events delivered
// to a view tree.
package event

import (
	"fmt"

	"github.com/surreal-ui/surreal/pkg/graphics"
)

// Event is a mouse motion or mouse button event.
type Event interface {
	isEvent()
}

// MouseMotion reports the pointer moving to Position.
type MouseMotion struct {
	Position graphics.Point
	// RelativeChange is the movement since the previous motion event.
	RelativeChange graphics.Point
}

// MouseButtonEvent reports a button press or release at Position.
type MouseButtonEvent struct {
	State    ButtonState
	Button   MouseButton
	Position graphics.Point
}

func (MouseMotion) isEvent()      {}
func (MouseButtonEvent) isEvent() {}

// ButtonState distinguishes presses from releases.
type ButtonState int

const (
	Pressed ButtonState = iota
	Released
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// MouseButton identifies a mouse button.
type MouseButton uint16

const (
	Left MouseButton = iota
	Right
	Middle

	otherBase
)

// Other returns the button with platform code n.
func Other(n uint16) MouseButton {
	return otherBase + MouseButton(n)
}

// IsOther reports whether b is not one of the named buttons.
func (b MouseButton) IsOther() bool {
	return b >= otherBase
}

// Code returns the platform code of an Other button.
func (b MouseButton) Code() uint16 {
	if !b.IsOther() {
		return 0
	}
	return uint16(b - otherBase)
}

func (b MouseButton) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Middle:
		return "middle"
	default:
		return fmt.Sprintf("other(%d)", b.Code())
	}
}

// Response is what a widget tells the dispatcher after handling an event.
type Response int

const (
	// None means the event was ignored.
	None Response = iota
	// Consume stops the event reaching the widget's remaining siblings.
	Consume
	// Redraw requests a new frame.
	Redraw
)

func (r Response) String() string {
	switch r {
	case None:
		return "none"
	case Consume:
		return "consume"
	case Redraw:
		return "redraw"
	default:
		return fmt.Sprintf("Response(%d)", int(r))
	}
}

// Press builds a left button press at (x, y).
func Press(x, y int32) MouseButtonEvent {
	return MouseButtonEvent{State: Pressed, Button: Left, Position: graphics.Pt(x, y)}
}

// Release builds a left button release at (x, y).
func Release(x, y int32) MouseButtonEvent {
	return MouseButtonEvent{State: Released, Button: Left, Position: graphics.Pt(x, y)}
}

// Move builds a motion event to (x, y) with the given relative change.
func Move(x, y, dx, dy int32) MouseMotion {
	return MouseMotion{Position: graphics.Pt(x, y), RelativeChange: graphics.Pt(dx, dy)}
}
