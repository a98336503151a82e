// Package volume holds an in-memory 3D image with its scanner geometry and
// draws orthogonal slices of it for the ortho display mode.
package volume

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"orthoview/internal/models"
	"orthoview/pkg/interpolation"
	"orthoview/pkg/ortho"
	"orthoview/pkg/transform"
)

var (
	// ErrNoSlices is returned when a slice directory holds no usable images
	ErrNoSlices = errors.New("volume: no slice images found")

	// ErrDimensionMismatch is returned when data and dimensions disagree
	ErrDimensionMismatch = errors.New("volume: dimension mismatch")
)

// Volume is a scalar voxel grid placed in scanner space by an affine transform
type Volume struct {
	grid    models.Grid
	xform   *transform.Affine
	sampler interpolation.Sampler

	// intensity window: values in [center-width/2, center+width/2] map to black..white
	center, width float64
}

// New wraps data laid out x-fastest with the given dimensions and transform.
// The window initially spans the full intensity range.
func New(data []float64, dims [3]int, xform *transform.Affine) (*Volume, error) {
	g := models.Grid{Data: data, Dims: dims}
	for i := 0; i < 3; i++ {
		if dims[i] <= 0 {
			return nil, fmt.Errorf("%w: dimension %d is %d", ErrDimensionMismatch, i, dims[i])
		}
		g.Spacing[i] = xform.Spacing(i)
	}
	if len(data) != g.Len() {
		return nil, fmt.Errorf("%w: %d values for %dx%dx%d voxels",
			ErrDimensionMismatch, len(data), dims[0], dims[1], dims[2])
	}

	v := &Volume{grid: g, xform: xform, sampler: interpolation.Nearest{}}
	lo, hi := v.Range()
	v.SetWindow((lo+hi)/2, hi-lo)
	return v, nil
}

// Dims implements interpolation.Grid
func (v *Volume) Dims() [3]int {
	return v.grid.Dims
}

// At implements interpolation.Grid
func (v *Volume) At(i, j, k int) float64 {
	return v.grid.Data[v.grid.Index(i, j, k)]
}

// Data returns the raw voxel values
func (v *Volume) Data() []float64 {
	return v.grid.Data
}

// Transform implements ortho.Volume
func (v *Volume) Transform() *transform.Affine {
	return v.xform
}

// SetTransform replaces the voxel-to-scanner transform
func (v *Volume) SetTransform(xform *transform.Affine) {
	v.xform = xform
	for i := 0; i < 3; i++ {
		v.grid.Spacing[i] = xform.Spacing(i)
	}
}

// VoxelCount implements ortho.Volume
func (v *Volume) VoxelCount(axis models.Axis) int {
	return v.grid.Dims[axis]
}

// VoxelSpacing implements ortho.Volume
func (v *Volume) VoxelSpacing(axis models.Axis) float64 {
	return v.grid.Spacing[axis]
}

// SetSampler selects the interpolation used when drawing slices
func (v *Volume) SetSampler(s interpolation.Sampler) {
	v.sampler = s
}

// Range returns the smallest and largest voxel values
func (v *Volume) Range() (lo, hi float64) {
	return floats.Min(v.grid.Data), floats.Max(v.grid.Data)
}

// Window returns the current intensity window
func (v *Volume) Window() (center, width float64) {
	return v.center, v.width
}

// SetWindow sets the intensity window; a non-positive width is replaced by a
// tiny positive one.
func (v *Volume) SetWindow(center, width float64) {
	if math.IsNaN(width) || width <= 0 {
		width = 1e-6
	}
	v.center, v.width = center, width
}

// AdjustWindowing implements ortho.Windower. Horizontal motion scales the
// window width (contrast), vertical motion shifts its centre (brightness).
func (v *Volume) AdjustWindowing(dx, dy float64) {
	width := v.width * math.Exp(0.005*dx)
	v.SetWindow(v.center-0.005*dy*width, width)
}

// AutoWindow fits the window to the 2nd..98th percentile of the intensities
func (v *Volume) AutoWindow() {
	sorted := make([]float64, len(v.grid.Data))
	copy(sorted, v.grid.Data)
	floats.Argsort(sorted, make([]int, len(sorted)))

	lo := stat.Quantile(0.02, stat.Empirical, sorted, nil)
	hi := stat.Quantile(0.98, stat.Empirical, sorted, nil)
	if hi <= lo {
		lo, hi = sorted[0], sorted[len(sorted)-1]
	}
	v.SetWindow((lo+hi)/2, hi-lo)
}

// gray maps an intensity through the window to an 8-bit level
func (v *Volume) gray(value float64) uint8 {
	t := (value - (v.center - v.width/2)) / v.width
	return uint8(math.Round(255 * math.Max(0, math.Min(1, t))))
}

// RenderSlice implements ortho.Volume. Every pixel of the target viewport is
// mapped back to scanner space, pinned onto the slice plane and sampled;
// pixels outside the volume are left untouched.
func (v *Volume) RenderSlice(dst ortho.SliceTarget, axis models.Axis, slice int) {
	axis.MustValid()
	vp := dst.Viewport()
	for py := vp.Y; py < vp.Y+vp.Height; py++ {
		for px := vp.X; px < vp.X+vp.Width; px++ {
			p := dst.Unproject(float64(px)+0.5, float64(py)+0.5)
			voxel := axis.With(v.xform.ScannerToVoxel(p), float64(slice))
			value, ok := v.sampler.Sample(v, voxel)
			if !ok {
				continue
			}
			dst.SetPixel(px, py, color.Gray{Y: v.gray(value)})
		}
	}
}
