package viewer

import (
	"orthoview/pkg/ortho"
	"orthoview/pkg/raster"
	"orthoview/pkg/volume"
)

// Viewer ties a volume, a canvas and the ortho mode together
type Viewer struct {
	Host *Host
	Mode *ortho.Mode
}

// New returns a viewer with a width x height canvas showing vol
func New(width, height int, vol *volume.Volume, opts ortho.Options) *Viewer {
	host := NewHost(raster.New(width, height))
	host.Load(vol)
	return &Viewer{Host: host, Mode: ortho.New(host, opts)}
}

// Frame redraws the canvas if a redraw has been requested since the last frame
// and reports whether it did.
func (v *Viewer) Frame() bool {
	if !v.Host.TakeRedraw() {
		return false
	}
	v.Host.canvas.Clear()
	v.Mode.Render()
	return true
}

// Resize changes the canvas size and schedules a redraw
func (v *Viewer) Resize(width, height int) {
	if w, h := v.Host.canvas.Size(); w == width && h == height {
		return
	}
	v.Host.canvas.Resize(width, height)
	v.Host.Redraw()
}
