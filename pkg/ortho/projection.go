package ortho

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"orthoview/internal/models"
	"orthoview/pkg/transform"
)

// signedAxis is a voxel axis traversed in the positive or negative direction
type signedAxis struct {
	axis models.Axis
	sign float64
}

func (s signedAxis) flip() signedAxis {
	return signedAxis{axis: s.axis, sign: -s.sign}
}

// code returns the anatomical direction the signed axis points towards,
// assuming RAS+ scanner space.
func (s signedAxis) code() string {
	codes := [3][2]string{{"L", "R"}, {"P", "A"}, {"I", "S"}}
	if s.sign > 0 {
		return codes[s.axis][1]
	}
	return codes[s.axis][0]
}

// viewBasis gives the voxel axes running towards screen right and screen up
type viewBasis struct {
	right, up signedAxis
}

// bases drives both the modelview rotation and the orientation labels, so the
// two cannot disagree.
var bases = [3]viewBasis{
	models.Sagittal: {right: signedAxis{models.Coronal, -1}, up: signedAxis{models.Axial, 1}},
	models.Coronal:  {right: signedAxis{models.Sagittal, -1}, up: signedAxis{models.Axial, 1}},
	models.Axial:    {right: signedAxis{models.Sagittal, -1}, up: signedAxis{models.Coronal, 1}},
}

// LabelEdges is the edge order used by Labels
var LabelEdges = [4]models.EdgeMask{models.LeftEdge, models.TopEdge, models.RightEdge, models.BottomEdge}

// Labels returns the anatomical direction codes shown on the left, top, right
// and bottom edges of the sub-view for axis.
func Labels(axis models.Axis) [4]string {
	axis.MustValid()
	b := bases[axis]
	return [4]string{b.right.flip().code(), b.up.code(), b.right.code(), b.up.flip().code()}
}

// viewAxes returns the unit scanner-space vectors pointing to screen right,
// screen up and out of the screen towards the viewer.
func viewAxes(xf *transform.Affine, axis models.Axis) (right, up, back models.Point3) {
	b := bases[axis]
	right = r3.Scale(b.right.sign, xf.Direction(int(b.right.axis)))
	up = r3.Scale(b.up.sign, xf.Direction(int(b.up.axis)))
	back = r3.Unit(r3.Cross(right, up))
	return right, up, back
}

// Projection holds everything needed to draw, and map pointer positions on,
// one sub-view.
type Projection struct {
	Axis     models.Axis
	Viewport models.ViewportRect

	// Slice is the voxel index along Axis nearest to the focus
	Slice int

	// LookAt is the target moved onto the rendered slice plane
	LookAt models.Point3

	// HalfWidth, HalfHeight and Depth are the orthographic half-extents
	HalfWidth, HalfHeight, Depth float64

	Projection mgl64.Mat4
	ModelView  mgl64.Mat4

	right, up, back models.Point3
	inverse         mgl64.Mat4
}

// NewProjection computes the matrices and slice for axis drawn into vp.
// It panics if axis is not one of the three projection axes.
func NewProjection(axis models.Axis, cam *Camera, vol Volume, vp models.ViewportRect) Projection {
	axis.MustValid()
	xf := vol.Transform()

	p := Projection{Axis: axis, Viewport: vp}
	p.right, p.up, p.back = viewAxes(xf, axis)

	voxel := xf.ScannerToVoxel(cam.Focus)
	p.Slice = int(math.Round(axis.Of(voxel)))

	f := xf.ScannerToVoxel(cam.Target)
	f = axis.With(f, float64(p.Slice))
	p.LookAt = xf.VoxelToScanner(f)

	w, h := float64(vp.Width), float64(vp.Height)
	p.HalfWidth, p.HalfHeight = minExtent, minExtent
	if w+h > 0 {
		scale := cam.FOV / (w + h)
		p.HalfWidth = clampExtent(w * scale)
		p.HalfHeight = clampExtent(h * scale)
	}
	p.Depth = clampExtent(math.Abs(float64(vol.VoxelCount(axis)) * vol.VoxelSpacing(axis)))

	rotation := mgl64.Mat4FromRows(
		mgl64.Vec4{p.right.X, p.right.Y, p.right.Z, 0},
		mgl64.Vec4{p.up.X, p.up.Y, p.up.Z, 0},
		mgl64.Vec4{p.back.X, p.back.Y, p.back.Z, 0},
		mgl64.Vec4{0, 0, 0, 1},
	)
	p.Projection = mgl64.Ortho(-p.HalfWidth, p.HalfWidth, -p.HalfHeight, p.HalfHeight, -p.Depth, p.Depth)
	p.ModelView = rotation.Mul4(mgl64.Translate3D(-p.LookAt.X, -p.LookAt.Y, -p.LookAt.Z))
	p.inverse = p.Projection.Mul4(p.ModelView).Inv()
	return p
}

func clampExtent(v float64) float64 {
	if math.IsNaN(v) || v < minExtent {
		return minExtent
	}
	return v
}

// Unproject maps surface pixel (x, y) to the scanner-space point on the slice plane
func (p Projection) Unproject(x, y float64) models.Point3 {
	return UnprojectInverse(p.inverse, p.Viewport, x, y)
}

// Direction maps a pointer displacement in pixels to a scanner-space vector in
// the slice plane.
func (p Projection) Direction(dx, dy float64) models.Point3 {
	if p.Viewport.Width <= 0 || p.Viewport.Height <= 0 {
		return models.Point3{}
	}
	v := p.inverse.Mul4x1(mgl64.Vec4{
		2 * dx / float64(p.Viewport.Width),
		-2 * dy / float64(p.Viewport.Height),
		0, 0,
	})
	return models.Point3{X: v[0], Y: v[1], Z: v[2]}
}

// Project maps a scanner-space point to surface pixel coordinates
func (p Projection) Project(pt models.Point3) (x, y float64) {
	clip := p.Projection.Mul4(p.ModelView).Mul4x1(mgl64.Vec4{pt.X, pt.Y, pt.Z, 1})
	if clip[3] != 0 {
		clip = clip.Mul(1 / clip[3])
	}
	vp := p.Viewport
	x = float64(vp.X) + (clip[0]+1)/2*float64(vp.Width)
	y = float64(vp.Y) + (1-clip[1])/2*float64(vp.Height)
	return x, y
}

// ViewDirection is the unit scanner-space vector pointing into the screen
func (p Projection) ViewDirection() models.Point3 {
	return r3.Scale(-1, p.back)
}

// Unproject maps surface pixel (x, y) inside vp back through projection and
// modelview onto the plane through the look-at point.
func Unproject(projection, modelView mgl64.Mat4, vp models.ViewportRect, x, y float64) models.Point3 {
	return UnprojectInverse(projection.Mul4(modelView).Inv(), vp, x, y)
}

// UnprojectInverse is Unproject with the inverse of projection*modelview
// already computed.
func UnprojectInverse(inverse mgl64.Mat4, vp models.ViewportRect, x, y float64) models.Point3 {
	if vp.Width <= 0 || vp.Height <= 0 {
		return models.Point3{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
	}
	nx := 2*(x-float64(vp.X))/float64(vp.Width) - 1
	ny := 1 - 2*(y-float64(vp.Y))/float64(vp.Height)
	v := inverse.Mul4x1(mgl64.Vec4{nx, ny, 0, 1})
	if v[3] != 0 {
		v = v.Mul(1 / v[3])
	}
	return models.Point3{X: v[0], Y: v[1], Z: v[2]}
}
