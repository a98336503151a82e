package ortho

import (
	"log/slog"

	"orthoview/internal/models"
)

// renderProjection draws one sub-view. The viewport override is released on
// every exit path, including a panic raised by the volume's slice renderer.
func renderProjection(s Surface, p Projection, vol Volume, cam *Camera, opts Options) {
	restore := pushViewport(s, p.Viewport)
	defer restore()

	s.SetProjection(p.Projection)
	s.SetModelView(p.ModelView)
	s.SetPipeline(SlicePipeline)

	Logger().Debug("render projection",
		slog.String("axis", p.Axis.String()),
		slog.Int("slice", p.Slice),
		slog.Float64("fov", cam.FOV))

	vol.RenderSlice(s, p.Axis, p.Slice)

	s.SetPipeline(OverlayPipeline)

	if opts.ShowFocus {
		x, y := p.Project(cam.Focus)
		s.DrawCrosshair(x, y)
	}

	if opts.ShowOrientation {
		labels := Labels(p.Axis)
		for i, edge := range LabelEdges {
			s.DrawLabel(labels[i], edge)
		}
	}
}

// projections builds the three sub-view projections for a surface of size (w, h)
func projections(w, h int, cam *Camera, vol Volume) [3]Projection {
	rects := Partition(w, h)
	var out [3]Projection
	for _, axis := range models.Axes {
		out[axis] = NewProjection(axis, cam, vol, rects[axis])
	}
	return out
}
