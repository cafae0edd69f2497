package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	_ "golang.org/x/image/webp"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/graphics"
)

// DefaultFont is the alias of the bundled Go Regular font. Text with an empty
// font alias uses it.
const DefaultFont = "goregular"

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

type faceKey struct {
	font  string
	scale float32
}

// ImageRenderer renders into an in-memory RGBA image. It is used for headless
// rendering and tests.
type ImageRenderer struct {
	dst    *image.RGBA
	fonts  map[string]*opentype.Font
	faces  map[faceKey]font.Face
	images map[string]image.Image
	warned map[string]bool
}

// NewImageRenderer returns a renderer drawing into a width×height image.
func NewImageRenderer(width, height int) (*ImageRenderer, error) {
	r := &ImageRenderer{
		dst:    image.NewRGBA(image.Rect(0, 0, width, height)),
		fonts:  make(map[string]*opentype.Font),
		faces:  make(map[faceKey]font.Face),
		images: make(map[string]image.Image),
		warned: make(map[string]bool),
	}
	if err := r.RegisterFont(DefaultFont, goregular.TTF); err != nil {
		return nil, err
	}
	return r, nil
}

// RegisterFont parses TrueType or OpenType data and makes it available under
// alias.
func (r *ImageRenderer) RegisterFont(alias string, data []byte) error {
	if alias == "" {
		return errors.New("render.RegisterFont", errors.KindInit, "", fmt.Errorf("font alias required"))
	}
	if _, ok := r.fonts[alias]; ok {
		return errors.New("render.RegisterFont", errors.KindInit, alias, errors.ErrDuplicateID)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return errors.New("render.RegisterFont", errors.KindInit, alias, err)
	}
	r.fonts[alias] = f
	return nil
}

// AddImage registers img under alias.
func (r *ImageRenderer) AddImage(alias string, img image.Image) error {
	if _, ok := r.images[alias]; ok {
		return errors.New("render.AddImage", errors.KindInit, alias, errors.ErrDuplicateID)
	}
	r.images[alias] = img
	return nil
}

// LoadImage decodes a PNG, JPEG, BMP or WebP file and registers it under
// alias.
func (r *ImageRenderer) LoadImage(alias, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.New("render.LoadImage", errors.KindInit, alias, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return errors.New("render.LoadImage", errors.KindInit, alias, fmt.Errorf("%s: %w", path, err))
	}
	return r.AddImage(alias, img)
}

// ResourceDimensions implements Measurer.
func (r *ImageRenderer) ResourceDimensions(alias string) (uint32, uint32, error) {
	img, ok := r.images[alias]
	if !ok {
		return 0, 0, errors.New("render.ResourceDimensions", errors.KindLookup, alias, errors.ErrNotFound)
	}
	b := img.Bounds()
	return uint32(b.Dx()), uint32(b.Dy()), nil
}

// MeasureText implements Measurer.
func (r *ImageRenderer) MeasureText(spec TextSpec) (uint32, uint32) {
	face := r.face(spec.Font, spec.Scale)
	if face == nil {
		return 0, 0
	}
	w := font.MeasureString(face, spec.Text).Ceil()
	m := face.Metrics()
	return uint32(max(w, 0)), uint32((m.Ascent + m.Descent).Ceil())
}

func (r *ImageRenderer) face(alias string, scale float32) font.Face {
	if alias == "" {
		alias = DefaultFont
	}
	if scale <= 0 {
		return nil
	}
	key := faceKey{font: alias, scale: scale}
	if f, ok := r.faces[key]; ok {
		return f
	}
	otf, ok := r.fonts[alias]
	if !ok {
		if !r.warned[alias] {
			log.Printf("render: unknown font %q, using %s", alias, DefaultFont)
			r.warned[alias] = true
		}
		otf = r.fonts[DefaultFont]
	}
	f, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(scale),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		errors.Report(errors.New("render.face", errors.KindRender, alias, err))
		return nil
	}
	r.faces[key] = f
	return f
}

// Clear fills the whole image with c.
func (r *ImageRenderer) Clear(c graphics.Color) {
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// Resize replaces the target image with a blank one of the given size.
func (r *ImageRenderer) Resize(width, height int) {
	if b := r.dst.Bounds(); b.Dx() == width && b.Dy() == height {
		return
	}
	r.dst = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Image returns the render target.
func (r *ImageRenderer) Image() *image.RGBA {
	return r.dst
}

// EncodePNG writes the render target as PNG.
func (r *ImageRenderer) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.dst)
}

// Draw implements Canvas.
func (r *ImageRenderer) Draw(cmd Command) {
	switch c := cmd.(type) {
	case Rect:
		draw.Draw(r.dst, rectangle(c.Bounds), image.NewUniform(c.Color.NRGBA()), image.Point{}, draw.Over)
	case RoundedRect:
		r.fillRoundedRect(c)
	case Circle:
		r.fillCircle(c)
	case Text:
		r.drawText(c.Section)
	case Image:
		r.drawImage(c)
	default:
		errors.Report(errors.New("render.Draw", errors.KindRender, "", fmt.Errorf("unknown command %T", cmd)))
	}
}

func (r *ImageRenderer) drawText(s TextSection) {
	face := r.face(s.Font, s.Scale)
	if face == nil {
		return
	}
	d := font.Drawer{
		Dst:  r.dst,
		Src:  image.NewUniform(s.Color.NRGBA()),
		Face: face,
		Dot:  fixed.P(int(s.Position.X), int(s.Position.Y)).Add(fixed.Point26_6{Y: face.Metrics().Ascent}),
	}
	d.DrawString(s.Text)
}

func (r *ImageRenderer) drawImage(c Image) {
	src, ok := r.images[c.Alias]
	if !ok {
		errors.Report(errors.New("render.Draw", errors.KindRender, c.Alias, errors.ErrNotFound))
		return
	}
	dr := image.Rect(int(c.TopLeft.X), int(c.TopLeft.Y), int(c.TopLeft.X)+int(c.Width), int(c.TopLeft.Y)+int(c.Height))
	if sb := src.Bounds(); sb.Dx() == dr.Dx() && sb.Dy() == dr.Dy() {
		draw.Draw(r.dst, dr, src, src.Bounds().Min, draw.Over)
		return
	}
	draw.CatmullRom.Scale(r.dst, dr, src, src.Bounds(), draw.Over, nil)
}

func (r *ImageRenderer) rasterizer() *vector.Rasterizer {
	b := r.dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func (r *ImageRenderer) fillRoundedRect(c RoundedRect) {
	x0, y0 := float32(c.Bounds.X), float32(c.Bounds.Y)
	x1, y1 := x0+float32(c.Bounds.Width), y0+float32(c.Bounds.Height)
	rad := c.Roundness / 100 * float32(min(c.Bounds.Width, c.Bounds.Height)) / 2
	k := rad * (1 - kappa)

	z := r.rasterizer()
	z.MoveTo(x0+rad, y0)
	z.LineTo(x1-rad, y0)
	z.CubeTo(x1-k, y0, x1, y0+k, x1, y0+rad)
	z.LineTo(x1, y1-rad)
	z.CubeTo(x1, y1-k, x1-k, y1, x1-rad, y1)
	z.LineTo(x0+rad, y1)
	z.CubeTo(x0+k, y1, x0, y1-k, x0, y1-rad)
	z.LineTo(x0, y0+rad)
	z.CubeTo(x0, y0+k, x0+k, y0, x0+rad, y0)
	z.ClosePath()
	z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c.Color.NRGBA()), image.Point{})
}

func (r *ImageRenderer) fillCircle(c Circle) {
	cx, cy := float32(c.Center.X), float32(c.Center.Y)
	rad := float32(c.Radius)
	k := rad * kappa

	z := r.rasterizer()
	z.MoveTo(cx+rad, cy)
	z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	z.ClosePath()
	z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c.Color.NRGBA()), image.Point{})
}

func rectangle(b graphics.BoundingRect) image.Rectangle {
	return image.Rect(int(b.X), int(b.Y), int(b.X)+int(b.Width), int(b.Y)+int(b.Height))
}

// PixelAt returns the color at (x, y), for inspecting rendered output.
func (r *ImageRenderer) PixelAt(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(r.dst.At(x, y)).(color.NRGBA)
}

var _ Renderer = (*ImageRenderer)(nil)
