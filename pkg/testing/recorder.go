package testing

import (
	"fmt"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/render"
)

// Recorder is a renderer that records draw commands instead of
// rasterizing them. Text measures scale/2 pixels per rune and scale pixels
// high, so layouts are predictable without fonts.
type Recorder struct {
	resources map[string][2]uint32
	commands  []render.Command
	clears    int
	last      graphics.Color
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{resources: make(map[string][2]uint32)}
}

// AddResource registers an image of the given natural size.
func (r *Recorder) AddResource(alias string, width, height uint32) {
	r.resources[alias] = [2]uint32{width, height}
}

// MeasureText implements render.Measurer.
func (r *Recorder) MeasureText(spec render.TextSpec) (uint32, uint32) {
	if spec.Scale <= 0 {
		return 0, 0
	}
	n := float32(len([]rune(spec.Text)))
	return uint32(n * spec.Scale / 2), uint32(spec.Scale)
}

// ResourceDimensions implements render.Measurer.
func (r *Recorder) ResourceDimensions(alias string) (uint32, uint32, error) {
	d, ok := r.resources[alias]
	if !ok {
		return 0, 0, errors.New("Recorder.ResourceDimensions", errors.KindLookup, alias,
			fmt.Errorf("%w: resource", errors.ErrNotFound))
	}
	return d[0], d[1], nil
}

// Draw implements render.Canvas.
func (r *Recorder) Draw(cmd render.Command) {
	r.commands = append(r.commands, cmd)
}

// Clear starts a new frame.
func (r *Recorder) Clear(c graphics.Color) {
	r.commands = r.commands[:0]
	r.clears++
	r.last = c
}

// Commands returns the commands drawn since the last Clear.
func (r *Recorder) Commands() []render.Command {
	return r.commands
}

// Frames returns the number of frames started.
func (r *Recorder) Frames() int { return r.clears }

// Background returns the color of the last Clear.
func (r *Recorder) Background() graphics.Color { return r.last }
