package ortho

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"orthoview/internal/models"
	"orthoview/pkg/transform"
)

type renderCall struct {
	axis     models.Axis
	slice    int
	viewport models.ViewportRect
}

type fakeVolume struct {
	xf       *transform.Affine
	dims     [3]int
	spacing  [3]float64
	rendered []renderCall
	windowed [][2]float64
	explode  bool
}

// newFakeVolume builds an axis-aligned volume whose voxel (0,0,0) sits at origin
func newFakeVolume(t *testing.T, dims [3]int, spacing [3]float64, origin r3.Vec) *fakeVolume {
	xf, err := transform.Scaling(spacing, origin)
	if err != nil {
		t.Fatalf("Failed to build transform: %v", err)
	}
	return &fakeVolume{xf: xf, dims: dims, spacing: spacing}
}

func (v *fakeVolume) Transform() *transform.Affine          { return v.xf }
func (v *fakeVolume) VoxelCount(axis models.Axis) int       { return v.dims[axis] }
func (v *fakeVolume) VoxelSpacing(axis models.Axis) float64 { return v.spacing[axis] }
func (v *fakeVolume) AdjustWindowing(dx, dy float64) {
	v.windowed = append(v.windowed, [2]float64{dx, dy})
}
func (v *fakeVolume) RenderSlice(dst SliceTarget, axis models.Axis, slice int) {
	v.rendered = append(v.rendered, renderCall{axis: axis, slice: slice, viewport: dst.Viewport()})
	if v.explode {
		panic("slice renderer failed")
	}
	dst.SetPixel(dst.Viewport().X, dst.Viewport().Y, color.White)
}

type fakeSurface struct {
	w, h       int
	viewport   models.ViewportRect
	proj, view mgl64.Mat4
	pipeline   Pipeline

	viewports  []models.ViewportRect
	pixels     int
	labels     []string
	edges      []models.EdgeMask
	crosshairs [][2]float64
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, viewport: models.ViewportRect{Width: w, Height: h}}
}

func (s *fakeSurface) Size() (int, int)                 { return s.w, s.h }
func (s *fakeSurface) Viewport() models.ViewportRect    { return s.viewport }
func (s *fakeSurface) SetProjection(m mgl64.Mat4)       { s.proj = m }
func (s *fakeSurface) SetModelView(m mgl64.Mat4)        { s.view = m }
func (s *fakeSurface) SetPipeline(p Pipeline)           { s.pipeline = p }
func (s *fakeSurface) SetPixel(x, y int, c color.Color) { s.pixels++ }
func (s *fakeSurface) DrawCrosshair(x, y float64) {
	s.crosshairs = append(s.crosshairs, [2]float64{x, y})
}
func (s *fakeSurface) SetViewport(r models.ViewportRect) {
	s.viewport = r
	s.viewports = append(s.viewports, r)
}
func (s *fakeSurface) Unproject(x, y float64) models.Point3 {
	return Unproject(s.proj, s.view, s.viewport, x, y)
}
func (s *fakeSurface) DrawLabel(text string, edge models.EdgeMask) {
	s.labels = append(s.labels, text)
	s.edges = append(s.edges, edge)
}

// draws counts every drawing side effect recorded by the surface
func (s *fakeSurface) draws() int {
	return len(s.viewports) + s.pixels + len(s.labels) + len(s.crosshairs)
}

type fakeHost struct {
	vol       Volume
	surface   *fakeSurface
	cursor    models.CursorShape
	cursorSet int
	redraws   int
}

func newFakeHost(vol *fakeVolume, w, h int) *fakeHost {
	h2 := &fakeHost{surface: newFakeSurface(w, h)}
	if vol != nil {
		h2.vol = vol
	}
	return h2
}

func (h *fakeHost) ActiveVolume() Volume { return h.vol }
func (h *fakeHost) Surface() Surface     { return h.surface }
func (h *fakeHost) Redraw()              { h.redraws++ }
func (h *fakeHost) SetCursor(c models.CursorShape) {
	h.cursor = c
	h.cursorSet++
}
