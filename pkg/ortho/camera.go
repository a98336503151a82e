package ortho

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"orthoview/internal/models"
)

// minExtent is the smallest half-extent or field of view the mode will use.
// Degenerate geometry clamps to it instead of producing a singular projection.
const minExtent = 1e-6

// Camera is the view state shared by all three projections
type Camera struct {
	// Focus is the scanner-space point selecting the slice on each axis
	Focus models.Point3

	// Target is the scanner-space look-at point
	Target models.Point3

	// FOV is the visible extent along the longest volume dimension; always > 0
	FOV float64
}

// SetFOV sets the field of view, clamped to a small positive minimum
func (c *Camera) SetFOV(fov float64) {
	if math.IsNaN(fov) || fov < minExtent {
		fov = minExtent
	}
	c.FOV = fov
}

// Zoom scales the field of view by exp(x). Positive x widens the view.
func (c *Camera) Zoom(x float64) {
	c.SetFOV(c.FOV * math.Exp(x))
}

// MoveFocus displaces the focus by d
func (c *Camera) MoveFocus(d models.Point3) {
	c.Focus = r3.Add(c.Focus, d)
}

// Pan displaces the target by d
func (c *Camera) Pan(d models.Point3) {
	c.Target = r3.Add(c.Target, d)
}
