package widget

import (
	"fmt"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
)

// Text displays a single line of text.
type Text struct {
	Base
	content string
	font    string
	// scale < 0 means unset; Init takes the theme's scale.
	scale     float32
	color     *graphics.Color
	drawColor graphics.Color
	onMessage func(*Text, message.Message, *state.Store)
}

// NewText returns an empty Text.
func NewText(id string) *Text {
	return &Text{Base: NewBase(id), scale: -1}
}

// Content sets the displayed text.
func (t *Text) Content(s string) *Text {
	t.content = s
	return t
}

// Font sets the font alias.
func (t *Text) Font(alias string) *Text {
	t.font = alias
	return t
}

// Scale sets the font size in pixels. A negative scale is fatal.
func (t *Text) Scale(scale float32) *Text {
	if scale < 0 {
		errors.Fatal(errors.New("widget.Text.Scale", errors.KindStyle, t.id,
			fmt.Errorf("%w: text scale %v is negative", errors.ErrOutOfRange, scale)))
	}
	t.scale = scale
	return t
}

// Color overrides the theme's text color.
func (t *Text) Color(c graphics.Color) *Text {
	t.color = &c
	return t
}

// OnMessage installs a handler run for every dispatched message. The handler
// may change the text with SetText.
func (t *Text) OnMessage(fn func(t *Text, msg message.Message, st *state.Store)) *Text {
	t.onMessage = fn
	return t
}

// SetText replaces the content and requests a resize.
func (t *Text) SetText(s string) {
	t.content = s
	t.resize = true
}

// Text returns the content.
func (t *Text) Text() string {
	return t.content
}

// Init implements Widget.
func (t *Text) Init(m render.Measurer, th *theme.Theme) {
	if t.scale < 0 {
		t.scale = th.Text.Scale
	}
	if t.font == "" {
		t.font = th.Text.Font
	}
	if t.color != nil {
		t.drawColor = *t.color
	} else {
		t.drawColor = th.Colors.Text
	}
	t.SetSize(m.MeasureText(render.TextSpec{Text: t.content, Font: t.font, Scale: t.scale}))
}

// HandleMessage implements Widget.
func (t *Text) HandleMessage(msg message.Message, st *state.Store) {
	if t.onMessage != nil {
		t.onMessage(t, msg, st)
	}
}

// Render implements Widget.
func (t *Text) Render(c render.Canvas, _ *theme.Theme) {
	c.Draw(render.Text{Section: render.TextSection{
		Text:     t.content,
		Font:     t.font,
		Scale:    t.scale,
		Color:    t.drawColor,
		Position: graphics.Pt(t.bounds.TopLeft()),
	}})
}

// TextCharacter describes a single glyph, used as CircleButton content.
type TextCharacter struct {
	char  rune
	font  string
	scale float32
	color *graphics.Color
}

// Character returns a descriptor for r using theme defaults.
func Character(r rune) TextCharacter {
	return TextCharacter{char: r, scale: -1}
}

// Font sets the font alias.
func (c TextCharacter) Font(alias string) TextCharacter {
	c.font = alias
	return c
}

// Scale sets the font size.
func (c TextCharacter) Scale(scale float32) TextCharacter {
	c.scale = scale
	return c
}

// Color sets the glyph color.
func (c TextCharacter) Color(col graphics.Color) TextCharacter {
	c.color = &col
	return c
}

// Text converts the descriptor into a Text widget.
func (c TextCharacter) Text(id string) *Text {
	t := NewText(id).Content(string(c.char)).Font(c.font)
	if c.scale >= 0 {
		t.Scale(c.scale)
	}
	if c.color != nil {
		t.Color(*c.color)
	}
	return t
}
