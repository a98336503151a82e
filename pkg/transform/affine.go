// Package transform converts positions between voxel-index space and scanner
// (world) space for a single volume.
package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrSingular is returned when a voxel-to-scanner matrix cannot be inverted
var ErrSingular = errors.New("transform: singular voxel-to-scanner matrix")

// Affine is a voxel-to-scanner affine transform together with its inverse
type Affine struct {
	fwd *mat.Dense // 4x4, voxel -> scanner
	inv *mat.Dense // 4x4, scanner -> voxel
}

// New builds an Affine from row-major coefficients. Either the 12 coefficients of
// the upper 3x4 block or a full 4x4 matrix are accepted.
func New(coeffs []float64) (*Affine, error) {
	var rows []float64
	switch len(coeffs) {
	case 12:
		rows = make([]float64, 16)
		copy(rows, coeffs)
		rows[15] = 1
	case 16:
		rows = make([]float64, 16)
		copy(rows, coeffs)
	default:
		return nil, fmt.Errorf("transform: expected 12 or 16 coefficients, got %d", len(coeffs))
	}

	fwd := mat.NewDense(4, 4, rows)
	if det := mat.Det(fwd); det == 0 || math.IsNaN(det) {
		return nil, ErrSingular
	}

	inv := mat.NewDense(4, 4, nil)
	if err := inv.Inverse(fwd); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		// Ill-conditioned but invertible; the result is still usable.
	}

	return &Affine{fwd: fwd, inv: inv}, nil
}

// Scaling returns the axis-aligned transform scanner = origin + voxel*spacing
func Scaling(spacing [3]float64, origin r3.Vec) (*Affine, error) {
	return New([]float64{
		spacing[0], 0, 0, origin.X,
		0, spacing[1], 0, origin.Y,
		0, 0, spacing[2], origin.Z,
	})
}

// VoxelToScanner maps a voxel-space position to scanner space
func (a *Affine) VoxelToScanner(p r3.Vec) r3.Vec {
	return apply(a.fwd, p)
}

// ScannerToVoxel maps a scanner-space position to voxel space
func (a *Affine) ScannerToVoxel(p r3.Vec) r3.Vec {
	return apply(a.inv, p)
}

// Column returns the scanner-space displacement of one voxel step along axis
func (a *Affine) Column(axis int) r3.Vec {
	return r3.Vec{X: a.fwd.At(0, axis), Y: a.fwd.At(1, axis), Z: a.fwd.At(2, axis)}
}

// Direction returns the unit scanner-space direction of voxel axis. A degenerate
// column falls back to the matching canonical axis.
func (a *Affine) Direction(axis int) r3.Vec {
	c := a.Column(axis)
	n := r3.Norm(c)
	if n == 0 || math.IsNaN(n) {
		var e r3.Vec
		switch axis {
		case 0:
			e.X = 1
		case 1:
			e.Y = 1
		default:
			e.Z = 1
		}
		return e
	}
	return r3.Scale(1/n, c)
}

// Spacing returns the physical voxel size along axis
func (a *Affine) Spacing(axis int) float64 {
	return r3.Norm(a.Column(axis))
}

// Coefficients returns the upper 3x4 block in row-major order
func (a *Affine) Coefficients() [12]float64 {
	var c [12]float64
	for r := 0; r < 3; r++ {
		for col := 0; col < 4; col++ {
			c[r*4+col] = a.fwd.At(r, col)
		}
	}
	return c
}

// Mat4 returns the forward transform as a column-major GL matrix
func (a *Affine) Mat4() mgl64.Mat4 {
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, a.fwd.At(r, c))
		}
	}
	return m
}

func apply(m *mat.Dense, p r3.Vec) r3.Vec {
	in := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})
	var out mat.VecDense
	out.MulVec(m, in)
	w := out.AtVec(3)
	if w == 0 {
		w = 1
	}
	return r3.Vec{X: out.AtVec(0) / w, Y: out.AtVec(1) / w, Z: out.AtVec(2) / w}
}
