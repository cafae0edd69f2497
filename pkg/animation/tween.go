package animation

import (
	"math"

	"github.com/surreal-ui/surreal/pkg/graphics"
)

// Tween interpolates between Begin and End.
type Tween[T any] struct {
	Begin, End T
	Lerp       func(a, b T, t float64) T
}

// At returns the value at progress t.
func (tw Tween[T]) At(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// TweenFloat64 interpolates float64 values.
func TweenFloat64(begin, end float64) Tween[float64] {
	return Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenColor interpolates colors channel by channel.
func TweenColor(begin, end graphics.Color) Tween[graphics.Color] {
	return Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}

// TweenInt32 interpolates pixel coordinates, rounding to the nearest pixel.
func TweenInt32(begin, end int32) Tween[int32] {
	return Tween[int32]{Begin: begin, End: end, Lerp: func(a, b int32, t float64) int32 {
		return int32(math.Round(LerpFloat64(float64(a), float64(b), t)))
	}}
}

// LerpFloat64 interpolates linearly.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates each ARGB channel.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	ch := func(shift uint) uint8 {
		x, y := float64(uint8(a>>shift)), float64(uint8(b>>shift))
		return uint8(math.Round(LerpFloat64(x, y, t)))
	}
	return graphics.RGBA8(ch(16), ch(8), ch(0), ch(24))
}
