package interpolation

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// rampGrid stores i + 10*j + 100*k
type rampGrid struct {
	dims [3]int
}

func (g rampGrid) Dims() [3]int { return g.dims }

func (g rampGrid) At(i, j, k int) float64 {
	return float64(i + 10*j + 100*k)
}

// TestNearest verifies rounding to the closest voxel and bounds handling
func TestNearest(t *testing.T) {
	g := rampGrid{dims: [3]int{4, 4, 2}}

	v, ok := Nearest{}.Sample(g, r3.Vec{X: 1.4, Y: 2.6, Z: 0.2})
	if !ok || v != 31 {
		t.Errorf("Expected 31, got %f (ok=%v)", v, ok)
	}

	if _, ok := (Nearest{}).Sample(g, r3.Vec{X: 4.1, Y: 0, Z: 0}); ok {
		t.Error("Expected out-of-range sample to fail")
	}
	if _, ok := (Nearest{}).Sample(g, r3.Vec{X: 0, Y: -0.6, Z: 0}); ok {
		t.Error("Expected negative sample to fail")
	}
}

// TestLinear verifies trilinear interpolation reproduces a linear ramp
func TestLinear(t *testing.T) {
	g := rampGrid{dims: [3]int{4, 4, 3}}

	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1.5, Y: 2.25, Z: 0.5},
		{X: 2.9, Y: 0.1, Z: 1.75},
	}
	for _, p := range points {
		want := p.X + 10*p.Y + 100*p.Z
		got, ok := Linear{}.Sample(g, p)
		if !ok || math.Abs(got-want) > 1e-9 {
			t.Errorf("Expected %f at %v, got %f (ok=%v)", want, p, got, ok)
		}
	}

	// just outside the last voxel centre clamps onto the border
	got, ok := Linear{}.Sample(g, r3.Vec{X: 3.4, Y: 0, Z: 0})
	if !ok || got != 3 {
		t.Errorf("Expected border value 3, got %f (ok=%v)", got, ok)
	}

	if _, ok := (Linear{}).Sample(g, r3.Vec{X: 0, Y: 0, Z: 2.6}); ok {
		t.Error("Expected out-of-range sample to fail")
	}
}

// TestByName verifies sampler lookup
func TestByName(t *testing.T) {
	if s, err := ByName("linear"); err != nil || s != (Linear{}) {
		t.Errorf("Expected Linear sampler, got %v (%v)", s, err)
	}
	if s, err := ByName(""); err != nil || s != (Nearest{}) {
		t.Errorf("Expected Nearest default, got %v (%v)", s, err)
	}
	if _, err := ByName("kriging"); err == nil {
		t.Error("Expected error for unknown interpolation, got nil")
	}
}
