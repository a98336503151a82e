// Package viewer hosts the ortho display mode: it owns the active volume, the
// drawing surface, the requested cursor and the pending-redraw flag.
package viewer

import (
	"orthoview/internal/models"
	"orthoview/pkg/ortho"
	"orthoview/pkg/raster"
	"orthoview/pkg/volume"
)

// Host implements ortho.Host on top of a raster canvas
type Host struct {
	canvas *raster.Canvas
	vol    *volume.Volume
	cursor models.CursorShape
	dirty  bool
}

// NewHost returns a host drawing into canvas with no volume loaded
func NewHost(canvas *raster.Canvas) *Host {
	return &Host{canvas: canvas, dirty: true}
}

// Load makes v the active volume; nil unloads
func (h *Host) Load(v *volume.Volume) {
	h.vol = v
	h.dirty = true
}

// ActiveVolume implements ortho.Host
func (h *Host) ActiveVolume() ortho.Volume {
	if h.vol == nil {
		return nil
	}
	return h.vol
}

// Surface implements ortho.Host
func (h *Host) Surface() ortho.Surface {
	return h.canvas
}

// Canvas returns the concrete drawing surface
func (h *Host) Canvas() *raster.Canvas {
	return h.canvas
}

// SetCursor implements ortho.Host
func (h *Host) SetCursor(shape models.CursorShape) {
	h.cursor = shape
}

// Cursor returns the last requested cursor shape
func (h *Host) Cursor() models.CursorShape {
	return h.cursor
}

// Redraw implements ortho.Host
func (h *Host) Redraw() {
	h.dirty = true
}

// TakeRedraw reports whether a redraw is pending and clears the request
func (h *Host) TakeRedraw() bool {
	d := h.dirty
	h.dirty = false
	return d
}
