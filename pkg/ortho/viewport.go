package ortho

import "orthoview/internal/models"

// Partition splits a surface of size (w, h) at its midpoint into the three
// sub-viewports, indexed by projection axis: axis 0 takes the upper-right
// quadrant, axis 1 the upper-left and axis 2 the lower-left. The lower-right
// quadrant is left blank.
func Partition(w, h int) [3]models.ViewportRect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	midx, midy := w/2, h/2
	return [3]models.ViewportRect{
		{X: midx, Y: 0, Width: w - midx, Height: midy},
		{X: 0, Y: 0, Width: midx, Height: midy},
		{X: 0, Y: midy, Width: midx, Height: h - midy},
	}
}

// pushViewport narrows s to r and returns the function restoring the previous
// region. Callers defer the returned function so the region is restored on
// every exit path.
func pushViewport(s Surface, r models.ViewportRect) func() {
	saved := s.Viewport()
	s.SetViewport(r)
	return func() {
		s.SetViewport(saved)
	}
}
