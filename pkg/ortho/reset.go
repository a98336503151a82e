package ortho

import (
	"math"

	"orthoview/internal/models"
)

// ResetCamera returns the default camera for vol: focused on the centre voxel,
// with the largest physical dimension visible and the target at the scanner
// origin (or on the focus when targetFollowsFocus is set).
func ResetCamera(vol Volume, targetFollowsFocus bool) *Camera {
	var extent [3]float64
	var centre models.Point3
	for _, axis := range models.Axes {
		n := float64(vol.VoxelCount(axis))
		extent[axis] = n * vol.VoxelSpacing(axis)
		centre = axis.With(centre, n/2)
	}

	cam := &Camera{Focus: vol.Transform().VoxelToScanner(centre)}
	cam.SetFOV(math.Max(extent[0], math.Max(extent[1], extent[2])))
	if targetFollowsFocus {
		cam.Target = cam.Focus
	}
	return cam
}
