package ortho

// Options tunes the ortho mode
type Options struct {
	// ShowOrientation draws anatomical direction labels on each sub-view
	ShowOrientation bool

	// ShowFocus draws a crosshair at the focus point
	ShowFocus bool

	// EdgeFraction is the size of the edge zones as a fraction of the sub-view
	EdgeFraction float64

	// FineZoomRate is the exponent applied per unit of fine zoom
	FineZoomRate float64

	// ScrollZoomFactor converts one wheel step into fine zoom units
	ScrollZoomFactor float64

	// MoveRate converts a drag step into a focus displacement, as a fraction of FOV
	MoveRate float64

	// DragGestures enables click-to-focus, focus dragging and the secondary-button
	// drag mappings (windowing, move in/out, fine zoom, pan). Off by default.
	DragGestures bool

	// TargetFollowsFocus places the target on the focus when the view is reset,
	// instead of the scanner origin.
	TargetFollowsFocus bool
}

// DefaultOptions returns the stock behaviour
func DefaultOptions() Options {
	return Options{
		ShowOrientation:  true,
		ShowFocus:        true,
		EdgeFraction:     0.1,
		FineZoomRate:     0.005,
		ScrollZoomFactor: 20,
		MoveRate:         1e-3,
	}
}
