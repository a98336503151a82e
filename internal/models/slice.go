package models

import (
	"image"
)

// Slice represents a single 2D image of a slice stack with metadata
type Slice struct {
	// Image is the actual slice image data
	Image image.Image

	// Index is the position of this slice in the sequence
	Index int

	// Filename is the original filename of the slice
	Filename string
}

// Grid is raw voxel data in x-fastest order: index = k*nx*ny + j*nx + i
type Grid struct {
	// Data holds one intensity per voxel
	Data []float64

	// Dims is the voxel count along each axis
	Dims [3]int

	// Spacing is the physical size of a voxel along each axis in mm
	Spacing [3]float64
}

// Index returns the offset of voxel (i, j, k) in Data
func (g *Grid) Index(i, j, k int) int {
	return k*g.Dims[0]*g.Dims[1] + j*g.Dims[0] + i
}

// Len returns the number of voxels described by Dims
func (g *Grid) Len() int {
	return g.Dims[0] * g.Dims[1] * g.Dims[2]
}
