// Package theme holds the read-only styling defaults that widgets and views
// fall back to when a field was not set explicitly.
package theme

import (
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/layout"
)

// Theme contains all styling defaults for a view tree.
type Theme struct {
	// ViewPadding surrounds the root view's content.
	ViewPadding Padding `yaml:"view_padding"`

	// DefaultAlignment is used by stacks that did not set an alignment.
	DefaultAlignment layout.Alignment `yaml:"default_alignment"`

	// WidgetPadding separates consecutive children of a stack.
	WidgetPadding Padding `yaml:"widget_padding"`

	// Colors defines the palette.
	Colors Colors `yaml:"colors"`

	// Text defines text defaults.
	Text TextTheme `yaml:"text"`

	// Widgets holds per-widget style defaults.
	Widgets WidgetStyles `yaml:"widgets"`
}

// Padding is a symmetric inset in pixels.
type Padding struct {
	Vertical   uint32 `yaml:"vertical"`
	Horizontal uint32 `yaml:"horizontal"`
}

// Colors is the theme palette.
type Colors struct {
	// Primary fills buttons and scroll bar sliders.
	Primary graphics.Color `yaml:"primary"`
	// Secondary fills scroll bar containers.
	Secondary graphics.Color `yaml:"secondary"`
	// Background clears the window.
	Background graphics.Color `yaml:"background"`
	// Text is the default text color.
	Text graphics.Color `yaml:"text"`
}

// TextTheme defines text defaults.
type TextTheme struct {
	// Scale is the default font size in pixels.
	Scale float32 `yaml:"scale"`
	// Font is the default font alias. Empty selects the renderer's default.
	Font string `yaml:"font,omitempty"`
}

// WidgetStyles groups widget-specific defaults.
type WidgetStyles struct {
	Buttons ButtonStyles `yaml:"buttons"`
	// InternalPadding separates a widget's border from its content.
	InternalPadding Padding `yaml:"internal_padding"`
}

// ButtonStyles defines default styling for Button and CircleButton.
type ButtonStyles struct {
	// Roundness is the corner rounding in percent (0 square, 100 pill).
	Roundness float32 `yaml:"roundness"`
	// CircleButtonRadius is the radius used when a CircleButton sets none.
	CircleButtonRadius uint32 `yaml:"circle_button_radius"`
}

// Default returns a fresh copy of the default theme.
func Default() *Theme {
	return &Theme{
		ViewPadding: Padding{
			Vertical:   10,
			Horizontal: 20,
		},
		DefaultAlignment: layout.AlignCenter,
		WidgetPadding: Padding{
			Vertical:   10,
			Horizontal: 20,
		},
		Colors: Colors{
			Primary:    graphics.ColorAlmostWhite,
			Secondary:  graphics.ColorDarkGray,
			Background: graphics.ColorAubergine,
			Text:       graphics.ColorAlmostWhite,
		},
		Text: TextTheme{
			Scale: 40,
		},
		Widgets: WidgetStyles{
			Buttons: ButtonStyles{
				Roundness:          50,
				CircleButtonRadius: 50,
			},
			InternalPadding: Padding{
				Vertical:   10,
				Horizontal: 10,
			},
		},
	}
}

// Copy returns a deep copy of t.
func (t *Theme) Copy() *Theme {
	c := *t
	return &c
}
