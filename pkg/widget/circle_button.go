package widget

import (
	"fmt"
	"log"
	"math"

	"github.com/surreal-ui/surreal/pkg/event"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
)

// CircleButton is a round button showing a single character or an image.
// Hit testing uses the circle, not the bounding box.
type CircleButton struct {
	Base
	char  *Text
	image *Image
	// radius 0 means unset.
	radius    uint32
	color     *graphics.Color
	drawColor graphics.Color
	onClick   func(*state.Store) message.Message
	click     clickTracker
}

// NewCircleButton returns an empty circle button.
func NewCircleButton(id string) *CircleButton {
	return &CircleButton{Base: NewBase(id)}
}

// Character sets the content to a single glyph, replacing any image.
func (b *CircleButton) Character(c TextCharacter) *CircleButton {
	if b.image != nil {
		log.Printf("widget: overwriting image content of %q with a character", b.id)
		b.image = nil
	}
	b.char = c.Text(b.id + ".char")
	return b
}

// Image sets the content to an image, replacing any character.
func (b *CircleButton) Image(img *Image) *CircleButton {
	if b.char != nil {
		log.Printf("widget: overwriting character content of %q with an image", b.id)
		b.char = nil
	}
	b.image = img
	return b
}

// Radius sets the radius in pixels.
func (b *CircleButton) Radius(r uint32) *CircleButton {
	b.radius = r
	return b
}

// Color overrides the theme's primary color.
func (b *CircleButton) Color(c graphics.Color) *CircleButton {
	b.color = &c
	return b
}

// OnClick sets the click callback.
func (b *CircleButton) OnClick(fn func(st *state.Store) message.Message) *CircleButton {
	b.onClick = fn
	return b
}

// RadiusValue returns the radius resolved by Init.
func (b *CircleButton) RadiusValue() uint32 {
	return b.radius
}

func (b *CircleButton) content() Widget {
	switch {
	case b.char != nil:
		return b.char
	case b.image != nil:
		return b.image
	}
	return nil
}

// Contains reports whether (x, y) lies strictly inside the circle.
func (b *CircleButton) Contains(x, y int32) bool {
	c := b.bounds.Center()
	dx, dy := float64(x-c.X), float64(y-c.Y)
	return math.Sqrt(dx*dx+dy*dy) < float64(b.radius)
}

// Init implements Widget.
func (b *CircleButton) Init(m render.Measurer, th *theme.Theme) {
	if b.color != nil {
		b.drawColor = *b.color
	} else {
		b.drawColor = th.Colors.Primary
	}
	if b.radius == 0 {
		b.radius = th.Widgets.Buttons.CircleButtonRadius
	}
	d := 2 * b.radius

	switch {
	case b.char != nil:
		b.char.Init(m, th)
	case b.image != nil:
		w, h, err := m.ResourceDimensions(b.image.ResourceAlias())
		if err == nil {
			pad := th.Widgets.InternalPadding
			if w > h {
				b.image.SetScaledWidth(inset(d, pad.Horizontal))
			} else {
				b.image.SetScaledHeight(inset(d, pad.Vertical))
			}
		}
		b.image.Init(m, th)
		// Scaling during init is not a resize of the button.
		CheckResize(b.image)
	}
	b.SetSize(d, d)
}

// inset returns d minus padding on both sides, or d when that would not fit.
func inset(d, pad uint32) uint32 {
	if 2*pad >= d {
		return d
	}
	return d - 2*pad
}

// Place implements Widget.
func (b *CircleButton) Place(x, y int32) {
	b.Base.Place(x, y)
	if c := b.content(); c != nil {
		dx, dy := b.centerIn(c.Bounds().Dimensions())
		c.Place(x+dx, y+dy)
	}
}

// Translate implements Widget.
func (b *CircleButton) Translate(dx, dy int32) {
	b.Base.Translate(dx, dy)
	if c := b.content(); c != nil {
		c.Translate(dx, dy)
	}
}

// HandleEvent implements Widget.
func (b *CircleButton) HandleEvent(ev event.Event, st *state.Store, q *message.Queue) event.Response {
	return b.click.handle(ev,
		func(p graphics.Point) bool { return b.Contains(p.X, p.Y) },
		func() {
			if b.onClick != nil {
				q.Push(b.onClick(st))
			}
		})
}

// HandleMessage forwards to the content.
func (b *CircleButton) HandleMessage(msg message.Message, st *state.Store) {
	if c := b.content(); c != nil {
		c.HandleMessage(msg, st)
	}
}

// ShouldResize folds the content's request into the button's own flag.
func (b *CircleButton) ShouldResize() *bool {
	if c := b.content(); c != nil && CheckResize(c) {
		b.resize = true
	}
	return &b.resize
}

// Render implements Widget.
func (b *CircleButton) Render(c render.Canvas, th *theme.Theme) {
	c.Draw(render.Circle{Center: b.bounds.Center(), Radius: b.radius, Color: b.drawColor})
	if content := b.content(); content != nil {
		content.Render(c, th)
	}
}

func (b *CircleButton) String() string {
	return fmt.Sprintf("CircleButton(%s r=%d %v)", b.id, b.radius, b.bounds)
}
