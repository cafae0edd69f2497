// Package layout defines the vocabulary shared by views and themes when
// arranging elements: the stacking axis, cross-axis alignment and the window
// constraints a root view is laid out against.
package layout

import (
	"fmt"
	"strings"
)

// Orientation is the main axis of a stack.
type Orientation int

const (
	// Vertical stacks children top to bottom.
	Vertical Orientation = iota
	// Horizontal stacks children left to right.
	Horizontal
)

// IsVertical reports whether o is Vertical.
func (o Orientation) IsVertical() bool { return o == Vertical }

// IsHorizontal reports whether o is Horizontal.
func (o Orientation) IsHorizontal() bool { return o == Horizontal }

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "vertical":
		*o = Vertical
	case "horizontal":
		*o = Horizontal
	default:
		return fmt.Errorf("unknown orientation %q", text)
	}
	return nil
}

// Alignment places children on the cross axis of a stack.
type Alignment int

const (
	// AlignLeft places children at the leading edge.
	AlignLeft Alignment = iota
	// AlignRight places children at the trailing edge of the available width.
	AlignRight
	// AlignCenter centers children and recenters the whole view vertically.
	AlignCenter
)

// IsLeftAligned reports whether a is AlignLeft.
func (a Alignment) IsLeftAligned() bool { return a == AlignLeft }

// IsRightAligned reports whether a is AlignRight.
func (a Alignment) IsRightAligned() bool { return a == AlignRight }

// IsCentered reports whether a is AlignCenter.
func (a Alignment) IsCentered() bool { return a == AlignCenter }

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "left":
		*a = AlignLeft
	case "right":
		*a = AlignRight
	case "center", "centre":
		*a = AlignCenter
	default:
		return fmt.Errorf("unknown alignment %q", text)
	}
	return nil
}

// Constraints is the space available to a root view, normally the window
// size in pixels.
type Constraints struct {
	Width  uint32
	Height uint32
}

// Window is shorthand for Constraints{Width: w, Height: h}.
func Window(w, h uint32) Constraints {
	return Constraints{Width: w, Height: h}
}
