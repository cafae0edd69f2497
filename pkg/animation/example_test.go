package animation_test

import (
	"fmt"
	"time"

	"github.com/surreal-ui/surreal/pkg/animation"
)

func ExampleAnimation() {
	x := int32(0)
	slide := animation.TweenInt32(0, 100)
	anim := animation.Eased(400*time.Millisecond, animation.Linear, func(x *int32, p float64) {
		*x = slide.At(p)
	})

	for i := 0; i < 5; i++ {
		status := anim.Animate(&x, 100*time.Millisecond)
		fmt.Println(x, status)
	}
	// Output:
	// 25 in progress
	// 50 in progress
	// 75 in progress
	// 100 in progress
	// 100 complete
}

func ExampleCubicBezier() {
	snap := animation.CubicBezier(0.2, 0.8, 0.2, 1.0)
	fmt.Printf("%.1f %.1f\n", snap(0), snap(1))
	// Output: 0.0 1.0
}
