package ortho

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"orthoview/internal/models"
	"orthoview/pkg/transform"
)

// Volume is the active image as seen by the ortho mode.
// Implementations must be comparable (pointer types) so that the mode can detect
// when the active volume changes.
type Volume interface {
	// Transform returns the voxel-to-scanner transform
	Transform() *transform.Affine

	// VoxelCount returns the number of voxels along axis
	VoxelCount(axis models.Axis) int

	// VoxelSpacing returns the voxel size along axis in mm
	VoxelSpacing(axis models.Axis) float64

	// RenderSlice draws slice number slice orthogonal to axis into dst,
	// using the projection state currently configured on dst.
	RenderSlice(dst SliceTarget, axis models.Axis, slice int)
}

// Windower is implemented by volumes whose intensity windowing can be adjusted
// interactively.
type Windower interface {
	AdjustWindowing(dx, dy float64)
}

// SliceTarget is the part of a drawing surface a volume needs to produce a slice
type SliceTarget interface {
	// Viewport returns the active drawing sub-region
	Viewport() models.ViewportRect

	// Unproject maps a surface pixel position onto the scanner-space point lying
	// on the plane through the look-at point, using the current matrices.
	Unproject(x, y float64) models.Point3

	// SetPixel writes one pixel; positions outside the viewport are ignored
	SetPixel(x, y int, c color.Color)
}

// Surface is the drawing context the mode renders into
type Surface interface {
	SliceTarget

	// Size returns the full surface size in pixels
	Size() (width, height int)

	SetViewport(r models.ViewportRect)
	SetProjection(m mgl64.Mat4)
	SetModelView(m mgl64.Mat4)
	SetPipeline(p Pipeline)

	// DrawCrosshair marks the focus at surface position (x, y)
	DrawCrosshair(x, y float64)

	// DrawLabel renders a short text against one edge of the viewport
	DrawLabel(text string, edge models.EdgeMask)
}

// Host is the hosting viewer
type Host interface {
	// ActiveVolume returns the loaded volume, or nil when nothing is loaded.
	// An untyped nil must be returned, not a nil pointer wrapped in the interface.
	ActiveVolume() Volume

	Surface() Surface

	SetCursor(shape models.CursorShape)

	// Redraw asks the host to call Render again
	Redraw()
}

// TextureMode selects how sampled slice colours combine with the fragment colour
type TextureMode int

const (
	TextureOff TextureMode = iota
	TextureReplace
)

// Pipeline is the fixed-function state applied around a draw
type Pipeline struct {
	Lighting    bool
	Blend       bool
	DepthTest   bool
	DepthWrite  bool
	FlatShading bool
	Texture     TextureMode
}

var (
	// SlicePipeline composites a 2D slice: unlit, opaque, no depth, texture replace
	SlicePipeline = Pipeline{FlatShading: true, Texture: TextureReplace}

	// OverlayPipeline draws the focus crosshair and labels over the slice
	OverlayPipeline = Pipeline{FlatShading: true}
)
