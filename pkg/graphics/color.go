package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF constructs a Color from normalized components (0.0 to 1.0).
func RGBAF(r, g, b, a float64) Color {
	return RGBA8(alpha01ToByte(r), alpha01ToByte(g), alpha01ToByte(b), alpha01ToByte(a))
}

// Components returns normalized color components (0.0 to 1.0).
func (c Color) Components() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts the color to the image/color non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// String formats the color as #AARRGGBB, or #RRGGBB when opaque.
func (c Color) String() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%08X", uint32(c))
}

// MarshalText implements encoding.TextMarshaler so colors read naturally in
// theme files.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts #RRGGBB, #AARRGGBB or one of the named colors.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses #RRGGBB, #AARRGGBB or a named color such as "aubergine".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if named, ok := namedColors[strings.ToLower(s)]; ok {
		return named, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q: expected #RRGGBB, #AARRGGBB or a color name", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("color %q: expected 6 or 8 hex digits", s)
	}
}

func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette used by the default theme.
var (
	ColorAubergine   = RGBAF(0.03, 0.0, 0.02, 1.0)
	ColorAlmostWhite = RGBAF(0.9, 0.9, 0.9, 1.0)
	ColorDarkGray    = RGBAF(0.01, 0.01, 0.01, 1.0)
	ColorLightGray   = RGBAF(0.3, 0.3, 0.3, 1.0)
)

// Common colors.
const (
	ColorClear = Color(0x00000000)
	ColorBlack = Color(0xFF000000)
	ColorWhite = Color(0xFFFFFFFF)
)

var namedColors = map[string]Color{
	"aubergine":    ColorAubergine,
	"almost_white": ColorAlmostWhite,
	"black":        ColorBlack,
	"clear":        ColorClear,
	"dark_gray":    ColorDarkGray,
	"light_gray":   ColorLightGray,
	"white":        ColorWhite,
}
