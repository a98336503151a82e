// Package ortho implements the orthogonal triple-view display mode: three
// orthogonal slices of the active volume drawn into three quadrants of one
// surface, all sharing one camera.
package ortho

import (
	"log/slog"

	"orthoview/internal/models"
)

// Mode is the ortho display mode. It owns the camera and is driven by the host:
// Render on redraw requests, the Mouse* handlers on input. Mode is not safe for
// concurrent use; the host calls it from the thread owning the surface.
type Mode struct {
	host   Host
	opts   Options
	router *Router

	// cam is nil until the first render or reset of the active volume
	cam    *Camera
	volume Volume
}

// New returns a mode rendering through host
func New(host Host, opts Options) *Mode {
	return &Mode{
		host:   host,
		opts:   opts,
		router: NewRouter(host, opts),
	}
}

// Camera returns the current camera, or nil while it is undefined
func (m *Mode) Camera() *Camera {
	m.sync()
	return m.cam
}

// ShowOrientation reports whether orientation labels are drawn
func (m *Mode) ShowOrientation() bool {
	return m.opts.ShowOrientation
}

// SetShowOrientation toggles orientation labels
func (m *Mode) SetShowOrientation(show bool) {
	m.opts.ShowOrientation = show
}

// sync drops the camera when the active volume has changed or gone away
func (m *Mode) sync() Volume {
	vol := m.host.ActiveVolume()
	if vol == nil {
		m.cam, m.volume = nil, nil
		return nil
	}
	if vol != m.volume {
		if m.volume != nil {
			Logger().Info("active volume changed; camera discarded")
		}
		m.cam, m.volume = nil, vol
	}
	return vol
}

// camera returns the camera for the active volume, creating it if needed
func (m *Mode) camera() *Camera {
	if m.sync() == nil {
		return nil
	}
	if m.cam == nil {
		m.ResetView()
	}
	return m.cam
}

// Render draws the three projections. With no active volume it does nothing.
func (m *Mode) Render() {
	cam := m.camera()
	if cam == nil {
		return
	}
	vol := m.volume

	s := m.host.Surface()
	w, h := s.Size()
	for _, p := range projections(w, h, cam, vol) {
		renderProjection(s, p, vol, cam, m.opts)
	}
}

// ResetView recomputes the default camera for the active volume
func (m *Mode) ResetView() {
	vol := m.sync()
	if vol == nil {
		return
	}
	m.cam = ResetCamera(vol, m.opts.TargetFollowsFocus)
	Logger().Debug("view reset",
		slog.Float64("fov", m.cam.FOV),
		slog.Float64("focus.x", m.cam.Focus.X),
		slog.Float64("focus.y", m.cam.Focus.Y),
		slog.Float64("focus.z", m.cam.Focus.Z))
}

// Reset resets the view and requests a redraw
func (m *Mode) Reset() {
	m.ResetView()
	m.host.Redraw()
}

// MouseClick handles a button press and reports whether it was consumed
func (m *Mode) MouseClick(ev MouseEvent) bool {
	return m.router.Click(m.camera(), ev)
}

// MouseMove handles pointer motion and reports whether it was consumed
func (m *Mode) MouseMove(ev MouseEvent) bool {
	return m.router.Move(m.camera(), ev)
}

// MouseRelease handles a button release; it is always consumed
func (m *Mode) MouseRelease(ev MouseEvent) bool {
	return m.router.Release(ev)
}

// MouseWheel handles wheel motion and reports whether it was consumed
func (m *Mode) MouseWheel(ev MouseEvent, delta float64, o models.WheelOrientation) bool {
	return m.router.Wheel(m.camera(), ev, delta, o)
}
