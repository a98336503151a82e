package interpolation

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Grid is a regular 3D sampling grid addressed by integer voxel indices
type Grid interface {
	// Dims returns the voxel count along each axis
	Dims() [3]int

	// At returns the value stored at voxel (i, j, k), which must be in range
	At(i, j, k int) float64
}

// Sampler resolves the intensity at an arbitrary voxel-space position.
// ok is false when the position falls outside the grid.
type Sampler interface {
	Sample(g Grid, p r3.Vec) (value float64, ok bool)
}

// Nearest returns the value of the voxel whose centre is closest to p
type Nearest struct{}

// Sample implements Sampler
func (Nearest) Sample(g Grid, p r3.Vec) (float64, bool) {
	d := g.Dims()
	i := int(math.Round(p.X))
	j := int(math.Round(p.Y))
	k := int(math.Round(p.Z))
	if !inside(d, i, j, k) {
		return 0, false
	}
	return g.At(i, j, k), true
}

// Linear interpolates trilinearly between the eight surrounding voxels.
// Positions within half a voxel of the border are clamped onto the border.
type Linear struct{}

// Sample implements Sampler
func (Linear) Sample(g Grid, p r3.Vec) (float64, bool) {
	d := g.Dims()
	if !within(d, p) {
		return 0, false
	}

	x, y, z := clamp(p.X, d[0]), clamp(p.Y, d[1]), clamp(p.Z, d[2])
	i0, j0, k0 := int(math.Floor(x)), int(math.Floor(y)), int(math.Floor(z))
	fx, fy, fz := x-float64(i0), y-float64(j0), z-float64(k0)
	i1, j1, k1 := next(i0, d[0]), next(j0, d[1]), next(k0, d[2])

	c00 := lerp(g.At(i0, j0, k0), g.At(i1, j0, k0), fx)
	c10 := lerp(g.At(i0, j1, k0), g.At(i1, j1, k0), fx)
	c01 := lerp(g.At(i0, j0, k1), g.At(i1, j0, k1), fx)
	c11 := lerp(g.At(i0, j1, k1), g.At(i1, j1, k1), fx)

	return lerp(lerp(c00, c10, fy), lerp(c01, c11, fy), fz), true
}

// ByName returns the sampler called name ("nearest" or "linear")
func ByName(name string) (Sampler, error) {
	switch strings.ToLower(name) {
	case "", "nearest":
		return Nearest{}, nil
	case "linear", "trilinear":
		return Linear{}, nil
	}
	return nil, fmt.Errorf("unknown interpolation %q (must be nearest or linear)", name)
}

func inside(d [3]int, i, j, k int) bool {
	return i >= 0 && j >= 0 && k >= 0 && i < d[0] && j < d[1] && k < d[2]
}

// within reports whether p lies inside the voxel footprint of the grid
func within(d [3]int, p r3.Vec) bool {
	return p.X >= -0.5 && p.Y >= -0.5 && p.Z >= -0.5 &&
		p.X < float64(d[0])-0.5 && p.Y < float64(d[1])-0.5 && p.Z < float64(d[2])-0.5
}

func clamp(v float64, n int) float64 {
	return math.Max(0, math.Min(v, float64(n-1)))
}

func next(i, n int) int {
	if i+1 < n {
		return i + 1
	}
	return i
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
