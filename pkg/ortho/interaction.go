package ortho

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"orthoview/internal/models"
)

// MouseEvent is a pointer event in surface pixels
type MouseEvent struct {
	// X, Y is the pointer position
	X, Y float64

	// DX, DY is the motion since the previous event
	DX, DY float64

	Buttons   models.Button
	Modifiers models.Modifier
}

// EdgeMaskAt classifies (x, y) against the edges of r. A point is near an edge
// when its distance to it is at most fraction of the rectangle's width (left and
// right) or height (top and bottom).
func EdgeMaskAt(r models.ViewportRect, x, y, fraction float64) models.EdgeMask {
	mx := fraction * float64(r.Width)
	my := fraction * float64(r.Height)

	var m models.EdgeMask
	if x-float64(r.X) <= mx {
		m |= models.LeftEdge
	}
	if float64(r.X+r.Width)-x <= mx {
		m |= models.RightEdge
	}
	if y-float64(r.Y) <= my {
		m |= models.TopEdge
	}
	if float64(r.Y+r.Height)-y <= my {
		m |= models.BottomEdge
	}
	return m
}

// CursorFor selects the cursor shape for an edge mask
func CursorFor(m models.EdgeMask) models.CursorShape {
	switch {
	case m == models.RightEdge|models.BottomEdge:
		return models.CursorWindow
	case m&models.LeftEdge != 0:
		return models.CursorZoom
	default:
		return models.CursorCrosshair
	}
}

// Router maps pointer gestures onto camera changes. It keeps no state of its
// own: the camera is passed in by the caller on every event.
//
// Only cursor selection, release handling and control+wheel zoom are active by
// default. Options.DragGestures turns on the remaining mappings:
//
//	primary click/drag, no modifiers      -> move focus under the pointer
//	secondary drag at right+bottom corner -> adjust volume windowing
//	secondary drag at right edge          -> move focus along the view direction
//	secondary drag at left edge           -> fine zoom
//	secondary drag elsewhere              -> pan the target
type Router struct {
	host Host
	opts Options
}

// NewRouter returns a router reporting to host
func NewRouter(host Host, opts Options) *Router {
	return &Router{host: host, opts: opts}
}

// subview finds the sub-view under (x, y). Over the blank quadrant ok is false
// and the full surface is returned.
func (r *Router) subview(x, y float64) (axis models.Axis, rect models.ViewportRect, ok bool) {
	w, h := r.host.Surface().Size()
	rects := Partition(w, h)
	for _, a := range models.Axes {
		if rects[a].Contains(x, y) {
			return a, rects[a], true
		}
	}
	return 0, models.ViewportRect{Width: w, Height: h}, false
}

func (r *Router) edges(ev MouseEvent) models.EdgeMask {
	_, rect, _ := r.subview(ev.X, ev.Y)
	return EdgeMaskAt(rect, ev.X, ev.Y, r.opts.EdgeFraction)
}

// SetCursor applies the cursor selection rule at the event position
func (r *Router) SetCursor(ev MouseEvent) {
	m := r.edges(ev)
	shape := CursorFor(m)
	Logger().Debug("cursor", slog.String("edges", m.String()), slog.String("shape", shape.String()))
	r.host.SetCursor(shape)
}

// projection returns the projection under the pointer, if any
func (r *Router) projection(cam *Camera, ev MouseEvent) (Projection, bool) {
	vol := r.host.ActiveVolume()
	if cam == nil || vol == nil {
		return Projection{}, false
	}
	axis, rect, ok := r.subview(ev.X, ev.Y)
	if !ok {
		return Projection{}, false
	}
	return NewProjection(axis, cam, vol, rect), true
}

// Click handles a button press
func (r *Router) Click(cam *Camera, ev MouseEvent) bool {
	if !r.opts.DragGestures || ev.Modifiers != models.ModNone {
		return false
	}

	switch ev.Buttons {
	case models.ButtonPrimary:
		p, ok := r.projection(cam, ev)
		if !ok {
			return false
		}
		r.host.SetCursor(models.CursorCrosshair)
		cam.Focus = p.Unproject(ev.X, ev.Y)
		r.host.Redraw()
		return true

	case models.ButtonSecondary:
		if cam != nil && r.edges(ev) == 0 {
			r.host.SetCursor(models.CursorPanCrosshair)
			return true
		}
	}
	return false
}

// Move handles pointer motion
func (r *Router) Move(cam *Camera, ev MouseEvent) bool {
	if ev.Buttons == models.ButtonNone {
		r.SetCursor(ev)
		return false
	}
	if !r.opts.DragGestures || ev.Modifiers != models.ModNone {
		return false
	}

	p, ok := r.projection(cam, ev)
	if !ok {
		return false
	}

	switch ev.Buttons {
	case models.ButtonPrimary:
		cam.Focus = p.Unproject(ev.X, ev.Y)
		r.host.Redraw()
		return true

	case models.ButtonSecondary:
		m := r.edges(ev)
		switch {
		case m == models.RightEdge|models.BottomEdge:
			w, ok := r.host.ActiveVolume().(Windower)
			if !ok {
				return false
			}
			w.AdjustWindowing(ev.DX, ev.DY)
		case m&models.RightEdge != 0:
			r.moveInOut(cam, p, -ev.DY)
		case m&models.LeftEdge != 0:
			r.changeFOVFine(cam, ev.DY)
		default:
			cam.Pan(r3.Scale(-1, p.Direction(ev.DX, ev.DY)))
		}
		r.host.Redraw()
		return true
	}
	return false
}

// Release handles a button release. It always resets the cursor and consumes
// the event.
func (r *Router) Release(ev MouseEvent) bool {
	r.SetCursor(ev)
	return true
}

// Wheel handles wheel motion. Only vertical motion with control held zooms.
func (r *Router) Wheel(cam *Camera, ev MouseEvent, delta float64, o models.WheelOrientation) bool {
	if o != models.WheelVertical || ev.Modifiers != models.ModControl || cam == nil {
		return false
	}
	r.changeFOVScroll(cam, -delta)
	r.host.Redraw()
	return true
}

func (r *Router) changeFOVFine(cam *Camera, x float64) {
	cam.Zoom(r.opts.FineZoomRate * x)
}

func (r *Router) changeFOVScroll(cam *Camera, x float64) {
	r.changeFOVFine(cam, r.opts.ScrollZoomFactor*x)
}

// moveInOut moves the focus along the view direction; positive x moves away
// from the viewer.
func (r *Router) moveInOut(cam *Camera, p Projection, x float64) {
	cam.MoveFocus(r3.Scale(r.opts.MoveRate*x*cam.FOV, p.ViewDirection()))
}
