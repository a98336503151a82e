package volume

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"

	"orthoview/internal/models"
)

// Slice extracts one slice orthogonal to axis as a 16-bit image, windowed with
// the current intensity window. Image rows run from superior (or anterior, for
// axial slices) at the top to inferior at the bottom.
func (v *Volume) Slice(axis models.Axis, position int) (*image.Gray16, error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("invalid axis: %d (must be 0, 1 or 2)", int(axis))
	}
	d := v.grid.Dims
	if position < 0 || position >= d[axis] {
		return nil, fmt.Errorf("position %d outside [0,%d) along %s", position, d[axis], axis)
	}

	// in-plane voxel axes for image columns and rows
	var col, row int
	switch axis {
	case models.Sagittal:
		col, row = 1, 2
	case models.Coronal:
		col, row = 0, 2
	default:
		col, row = 0, 1
	}

	img := image.NewGray16(image.Rect(0, 0, d[col], d[row]))
	var idx [3]int
	idx[axis] = position
	for y := 0; y < d[row]; y++ {
		for x := 0; x < d[col]; x++ {
			idx[col] = x
			idx[row] = d[row] - 1 - y
			value := v.At(idx[0], idx[1], idx[2])
			t := (value - (v.center - v.width/2)) / v.width
			img.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(65535 * math.Max(0, math.Min(1, t))))})
		}
	}
	return img, nil
}

// SaveSlice saves an extracted slice as a JPEG image
func SaveSlice(img image.Image, filename string, quality int) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return jpeg.Encode(file, img, &jpeg.Options{Quality: quality})
}

// SaveSliceSequence extracts and saves every slice along axis into outputDir
func (v *Volume) SaveSliceSequence(axis models.Axis, outputDir string, quality int) error {
	if !axis.Valid() {
		return fmt.Errorf("invalid axis: %d (must be 0, 1 or 2)", int(axis))
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for pos := 0; pos < v.grid.Dims[axis]; pos++ {
		img, err := v.Slice(axis, pos)
		if err != nil {
			return err
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("slice_%s_%03d.jpg", axis, pos))
		if err := SaveSlice(img, filename, quality); err != nil {
			return fmt.Errorf("error saving %s: %w", filename, err)
		}
	}

	return nil
}
