package widget

import (
	"fmt"
	"math"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/theme"
)

// Image displays a registered image resource, optionally scaled to a fixed
// width or height while keeping its aspect ratio.
type Image struct {
	Base
	resource string
	// At most one constraint is set; the latest call wins.
	widthConstraint  *uint32
	heightConstraint *uint32
}

// NewImage returns an Image without a resource.
func NewImage(id string) *Image {
	return &Image{Base: NewBase(id)}
}

// Resource sets the image alias.
func (i *Image) Resource(alias string) *Image {
	i.resource = alias
	return i
}

// FitToWidth scales the image to the given width.
func (i *Image) FitToWidth(width uint32) *Image {
	i.widthConstraint, i.heightConstraint = &width, nil
	return i
}

// FitToHeight scales the image to the given height.
func (i *Image) FitToHeight(height uint32) *Image {
	i.heightConstraint, i.widthConstraint = &height, nil
	return i
}

// SetScaledWidth is FitToWidth for an initialized image; it requests a resize.
func (i *Image) SetScaledWidth(width uint32) {
	i.FitToWidth(width)
	i.resize = true
}

// SetScaledHeight is FitToHeight for an initialized image; it requests a
// resize.
func (i *Image) SetScaledHeight(height uint32) {
	i.FitToHeight(height)
	i.resize = true
}

// ResourceAlias returns the image alias.
func (i *Image) ResourceAlias() string {
	return i.resource
}

// Init implements Widget. An image without a resource, or whose resource is
// not registered, is fatal.
func (i *Image) Init(m render.Measurer, _ *theme.Theme) {
	if i.resource == "" {
		errors.Fatal(errors.New("widget.Image.Init", errors.KindInit, i.id,
			fmt.Errorf("image was never assigned a resource")))
	}
	w, h, err := m.ResourceDimensions(i.resource)
	if err != nil {
		errors.Fatal(errors.New("widget.Image.Init", errors.KindInit, i.id, err))
	}
	scale := 1.0
	switch {
	case i.widthConstraint != nil && w > 0:
		scale = float64(*i.widthConstraint) / float64(w)
	case i.heightConstraint != nil && h > 0:
		scale = float64(*i.heightConstraint) / float64(h)
	}
	i.SetSize(uint32(math.Round(float64(w)*scale)), uint32(math.Round(float64(h)*scale)))
}

// Render implements Widget.
func (i *Image) Render(c render.Canvas, _ *theme.Theme) {
	c.Draw(render.Image{
		Alias:   i.resource,
		TopLeft: graphics.Pt(i.bounds.TopLeft()),
		Width:   i.bounds.Width,
		Height:  i.bounds.Height,
	})
}
