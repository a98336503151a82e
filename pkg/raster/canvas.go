// Package raster is a software drawing surface for the ortho mode: an RGBA
// framebuffer with a viewport, projection and modelview state, and simple
// overlay primitives.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"orthoview/internal/models"
	"orthoview/pkg/ortho"
)

// labelMargin is the gap in pixels between a label and its viewport edge
const labelMargin = 4

// Canvas implements ortho.Surface on an in-memory image
type Canvas struct {
	img      *image.RGBA
	viewport models.ViewportRect

	projection mgl64.Mat4
	modelView  mgl64.Mat4
	inverse    mgl64.Mat4
	pipeline   ortho.Pipeline

	face       font.Face
	Background color.RGBA
	LabelColor color.RGBA
	FocusColor color.RGBA
}

// New returns a cleared canvas of the given size
func New(width, height int) *Canvas {
	c := &Canvas{
		face:       basicfont.Face7x13,
		Background: color.RGBA{A: 0xff},
		LabelColor: color.RGBA{R: 0xff, A: 0xff},
		FocusColor: color.RGBA{R: 0xff, G: 0xff, A: 0xff},
	}
	c.Resize(width, height)
	return c
}

// Resize reallocates the framebuffer and resets the viewport to cover it
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.viewport = models.ViewportRect{Width: width, Height: height}
	c.projection = mgl64.Ident4()
	c.modelView = mgl64.Ident4()
	c.inverse = mgl64.Ident4()
	c.Clear()
}

// Clear fills the whole framebuffer with the background colour
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
}

// Image returns the framebuffer
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size implements ortho.Surface
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Viewport implements ortho.SliceTarget
func (c *Canvas) Viewport() models.ViewportRect {
	return c.viewport
}

// SetViewport implements ortho.Surface
func (c *Canvas) SetViewport(r models.ViewportRect) {
	c.viewport = r
}

// SetProjection implements ortho.Surface
func (c *Canvas) SetProjection(m mgl64.Mat4) {
	c.projection = m
	c.inverse = c.projection.Mul4(c.modelView).Inv()
}

// SetModelView implements ortho.Surface
func (c *Canvas) SetModelView(m mgl64.Mat4) {
	c.modelView = m
	c.inverse = c.projection.Mul4(c.modelView).Inv()
}

// SetPipeline implements ortho.Surface
func (c *Canvas) SetPipeline(p ortho.Pipeline) {
	c.pipeline = p
}

// Pipeline returns the pipeline state last set
func (c *Canvas) Pipeline() ortho.Pipeline {
	return c.pipeline
}

// Unproject implements ortho.SliceTarget
func (c *Canvas) Unproject(x, y float64) models.Point3 {
	return ortho.UnprojectInverse(c.inverse, c.viewport, x, y)
}

// clip returns the framebuffer area covered by the viewport
func (c *Canvas) clip() image.Rectangle {
	vp := c.viewport
	return image.Rect(vp.X, vp.Y, vp.X+vp.Width, vp.Y+vp.Height).Intersect(c.img.Bounds())
}

// SetPixel implements ortho.SliceTarget. Blending is never applied: the pixel is
// replaced, as the slice and overlay pipelines both disable it.
func (c *Canvas) SetPixel(x, y int, col color.Color) {
	if !image.Pt(x, y).In(c.clip()) {
		return
	}
	c.img.Set(x, y, col)
}

// DrawCrosshair implements ortho.Surface with one horizontal and one vertical
// line spanning the viewport.
func (c *Canvas) DrawCrosshair(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	r := c.clip()
	px, py := int(math.Floor(x)), int(math.Floor(y))
	if py >= r.Min.Y && py < r.Max.Y {
		for i := r.Min.X; i < r.Max.X; i++ {
			c.img.SetRGBA(i, py, c.FocusColor)
		}
	}
	if px >= r.Min.X && px < r.Max.X {
		for j := r.Min.Y; j < r.Max.Y; j++ {
			c.img.SetRGBA(px, j, c.FocusColor)
		}
	}
}

// DrawLabel implements ortho.Surface. The text is centred along the requested
// edge of the viewport and clipped to it.
func (c *Canvas) DrawLabel(text string, edge models.EdgeMask) {
	r := c.clip()
	if r.Empty() {
		return
	}

	dst := c.img.SubImage(r).(*image.RGBA)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c.LabelColor), Face: c.face}

	width := d.MeasureString(text).Ceil()
	m := c.face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	midX := (r.Min.X + r.Max.X - width) / 2
	midY := (r.Min.Y+r.Max.Y)/2 + (ascent-descent)/2

	var x, y int
	switch edge {
	case models.LeftEdge:
		x, y = r.Min.X+labelMargin, midY
	case models.RightEdge:
		x, y = r.Max.X-labelMargin-width, midY
	case models.TopEdge:
		x, y = midX, r.Min.Y+labelMargin+ascent
	case models.BottomEdge:
		x, y = midX, r.Max.Y-labelMargin-descent
	default:
		panic(fmt.Sprintf("raster: label edge must be a single edge, got %s", edge))
	}

	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// EncodePNG writes the framebuffer as PNG
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// EncodeJPEG writes the framebuffer as JPEG
func (c *Canvas) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, c.img, &jpeg.Options{Quality: quality})
}

// Save writes the framebuffer to path, choosing JPEG for .jpg/.jpeg and PNG
// otherwise.
func (c *Canvas) Save(path string, quality int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = c.EncodeJPEG(file, quality)
	default:
		err = c.EncodePNG(file)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	return nil
}
