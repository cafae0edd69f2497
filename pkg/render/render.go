// Package render defines the drawing services a view tree is rendered
// through: a Measurer used while initializing widgets, a Canvas receiving draw
// commands, and ImageRenderer, a software implementation of both.
package render

import (
	"fmt"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/graphics"
)

// TextSpec identifies a run of text to be measured.
type TextSpec struct {
	Text  string
	Font  string
	Scale float32
}

// Measurer reports the pixel size of text and image resources.
type Measurer interface {
	// MeasureText returns the bounding size of the text.
	MeasureText(spec TextSpec) (width, height uint32)
	// ResourceDimensions returns the natural size of a registered image.
	ResourceDimensions(alias string) (width, height uint32, err error)
}

// Canvas receives draw commands in painter's order.
type Canvas interface {
	Draw(cmd Command)
}

// Renderer is both a Measurer and a Canvas.
type Renderer interface {
	Measurer
	Canvas
}

// Command is one drawing primitive.
type Command interface {
	isCommand()
}

// Rect fills a rectangle.
type Rect struct {
	Bounds graphics.BoundingRect
	Color  graphics.Color
}

// RoundedRect fills a rectangle whose corners are rounded by Roundness
// percent of half its shorter side.
type RoundedRect struct {
	Bounds    graphics.BoundingRect
	Color     graphics.Color
	Roundness float32
}

// Circle fills a circle.
type Circle struct {
	Center graphics.Point
	Radius uint32
	Color  graphics.Color
}

// TextSection is positioned, styled text.
type TextSection struct {
	Text     string
	Font     string
	Scale    float32
	Color    graphics.Color
	Position graphics.Point
}

// Text draws a text section.
type Text struct {
	Section TextSection
}

// Image draws a registered image resource scaled to Width×Height.
type Image struct {
	Alias   string
	TopLeft graphics.Point
	Width   uint32
	Height  uint32
}

func (Rect) isCommand()        {}
func (RoundedRect) isCommand() {}
func (Circle) isCommand()      {}
func (Text) isCommand()        {}
func (Image) isCommand()       {}

// NewRoundedRect validates roundness, which must lie in [0, 100].
func NewRoundedRect(bounds graphics.BoundingRect, c graphics.Color, roundness float32) (RoundedRect, error) {
	if roundness < 0 || roundness > 100 {
		return RoundedRect{}, errors.New("render.NewRoundedRect", errors.KindStyle, "",
			fmt.Errorf("%w: roundness %v not in [0, 100]", errors.ErrOutOfRange, roundness))
	}
	return RoundedRect{Bounds: bounds, Color: c, Roundness: roundness}, nil
}

// Shape selects the primitive a widget background is drawn with.
type Shape int

const (
	Rectangle Shape = iota
	RoundedRectangle
	CircleShape
)

// PrimitiveStyle describes a widget background.
type PrimitiveStyle struct {
	Shape     Shape
	Roundness float32
}

// Command returns the draw command filling bounds with this style. Circles
// are inscribed in bounds.
func (p PrimitiveStyle) Command(bounds graphics.BoundingRect, c graphics.Color) Command {
	switch p.Shape {
	case RoundedRectangle:
		if p.Roundness > 0 {
			return RoundedRect{Bounds: bounds, Color: c, Roundness: p.Roundness}
		}
	case CircleShape:
		return Circle{Center: bounds.Center(), Radius: min(bounds.Width, bounds.Height) / 2, Color: c}
	}
	return Rect{Bounds: bounds, Color: c}
}
