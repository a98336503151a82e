package models

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 is a position in either voxel or scanner space.
// Which space a value lives in is decided by the caller, not by the type.
type Point3 = r3.Vec

// Axis identifies one of the three orthogonal slicing directions.
// Axis values map 1:1 onto voxel axes 0, 1 and 2.
type Axis int

const (
	// Sagittal slices are orthogonal to voxel axis 0
	Sagittal Axis = iota
	// Coronal slices are orthogonal to voxel axis 1
	Coronal
	// Axial slices are orthogonal to voxel axis 2
	Axial
)

// Axes lists the projection axes in rendering order
var Axes = [3]Axis{Sagittal, Coronal, Axial}

// Valid reports whether a is one of the three projection axes
func (a Axis) Valid() bool {
	return a >= Sagittal && a <= Axial
}

// MustValid panics if a is not a projection axis. Axis values are generated
// internally, so an out-of-range value is a programming error.
func (a Axis) MustValid() {
	if !a.Valid() {
		panic(fmt.Sprintf("models: invalid projection axis %d", int(a)))
	}
}

// Of returns the component of p along a
func (a Axis) Of(p Point3) float64 {
	switch a {
	case Sagittal:
		return p.X
	case Coronal:
		return p.Y
	case Axial:
		return p.Z
	}
	panic(fmt.Sprintf("models: invalid projection axis %d", int(a)))
}

// With returns a copy of p whose component along a is replaced by v
func (a Axis) With(p Point3, v float64) Point3 {
	switch a {
	case Sagittal:
		p.X = v
	case Coronal:
		p.Y = v
	case Axial:
		p.Z = v
	default:
		panic(fmt.Sprintf("models: invalid projection axis %d", int(a)))
	}
	return p
}

func (a Axis) String() string {
	switch a {
	case Sagittal:
		return "sagittal"
	case Coronal:
		return "coronal"
	case Axial:
		return "axial"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ViewportRect is a rectangle in surface pixels, origin at the top-left corner
// with y growing downwards.
type ViewportRect struct {
	X, Y          int
	Width, Height int
}

// Area returns the number of pixels covered by r
func (r ViewportRect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether the point (x, y) lies inside r.
// The right and bottom boundaries are inclusive so that a pointer sitting on the
// last pixel column or row still belongs to the rectangle.
func (r ViewportRect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x <= float64(r.X+r.Width) &&
		y >= float64(r.Y) && y <= float64(r.Y+r.Height)
}

// Overlaps reports whether r and o share at least one pixel
func (r ViewportRect) Overlaps(o ViewportRect) bool {
	if r.Area() == 0 || o.Area() == 0 {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}
