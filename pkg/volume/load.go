package volume

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"orthoview/internal/models"
	"orthoview/pkg/transform"
)

// LoadSlices builds a volume from a directory of numbered JPEG or PNG axial
// slices. Files are ordered by the number embedded in their name; the stack is
// centred on the scanner origin. Intensities are scaled to [0,1].
func LoadSlices(dir string, spacing [3]float64) (*Volume, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading slice directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".jpg", ".jpeg", ".png":
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSlices, dir)
	}

	sort.SliceStable(names, func(i, j int) bool {
		return extractNumber(names[i]) < extractNumber(names[j])
	})

	var slices []models.Slice
	for i, name := range names {
		img, err := loadImage(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load image %s: %w", name, err)
		}
		if i > 0 && img.Bounds().Size() != slices[0].Image.Bounds().Size() {
			return nil, fmt.Errorf("%w: %s is %v, expected %v",
				ErrDimensionMismatch, name, img.Bounds().Size(), slices[0].Image.Bounds().Size())
		}
		slices = append(slices, models.Slice{Image: img, Index: i, Filename: name})
	}

	return FromSlices(slices, spacing)
}

// FromSlices stacks same-sized images along voxel axis 2. Image row 0 is taken
// as the anterior edge, so rows are flipped onto voxel axis 1.
func FromSlices(slices []models.Slice, spacing [3]float64) (*Volume, error) {
	if len(slices) == 0 {
		return nil, ErrNoSlices
	}
	b := slices[0].Image.Bounds()
	dims := [3]int{b.Dx(), b.Dy(), len(slices)}
	data := make([]float64, dims[0]*dims[1]*dims[2])

	for k, s := range slices {
		sb := s.Image.Bounds()
		if sb.Dx() != dims[0] || sb.Dy() != dims[1] {
			return nil, fmt.Errorf("%w: slice %d", ErrDimensionMismatch, s.Index)
		}
		for y := 0; y < dims[1]; y++ {
			j := dims[1] - 1 - y
			for x := 0; x < dims[0]; x++ {
				r, _, _, _ := s.Image.At(sb.Min.X+x, sb.Min.Y+y).RGBA()
				data[k*dims[0]*dims[1]+j*dims[0]+x] = float64(r) / 65535.0
			}
		}
	}

	xform, err := centredTransform(dims, spacing)
	if err != nil {
		return nil, err
	}
	return New(data, dims, xform)
}

// centredTransform places the volume so that its centre voxel sits at the origin
func centredTransform(dims [3]int, spacing [3]float64) (*transform.Affine, error) {
	origin := r3.Vec{
		X: -float64(dims[0]) / 2 * spacing[0],
		Y: -float64(dims[1]) / 2 * spacing[1],
		Z: -float64(dims[2]) / 2 * spacing[2],
	}
	xform, err := transform.Scaling(spacing, origin)
	if err != nil {
		return nil, fmt.Errorf("invalid voxel spacing %v: %w", spacing, err)
	}
	return xform, nil
}

// NewPhantom builds a synthetic head-like phantom: a bright shell, a dimmer
// interior and two asymmetric inserts so that left/right and front/back are
// distinguishable. Values are normalised to [0,1].
func NewPhantom(dims [3]int, spacing [3]float64) (*Volume, error) {
	for i, n := range dims {
		if n <= 0 {
			return nil, fmt.Errorf("%w: dimension %d is %d", ErrDimensionMismatch, i, n)
		}
	}
	xform, err := centredTransform(dims, spacing)
	if err != nil {
		return nil, err
	}

	type ellipsoid struct {
		centre, radii r3.Vec
		value         float64
	}
	shapes := []ellipsoid{
		{r3.Vec{}, r3.Vec{X: 0.9, Y: 0.95, Z: 0.9}, 1.0},
		{r3.Vec{}, r3.Vec{X: 0.82, Y: 0.88, Z: 0.82}, -0.6},
		{r3.Vec{X: 0.35, Y: 0.3, Z: 0.2}, r3.Vec{X: 0.2, Y: 0.15, Z: 0.25}, 0.5},
		{r3.Vec{X: -0.3, Y: -0.45, Z: -0.1}, r3.Vec{X: 0.1, Y: 0.12, Z: 0.1}, 0.3},
	}

	data := make([]float64, dims[0]*dims[1]*dims[2])
	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				// normalised position in [-1,1] along each axis
				p := r3.Vec{
					X: 2*(float64(i)+0.5)/float64(dims[0]) - 1,
					Y: 2*(float64(j)+0.5)/float64(dims[1]) - 1,
					Z: 2*(float64(k)+0.5)/float64(dims[2]) - 1,
				}
				var value float64
				for _, s := range shapes {
					d := r3.Sub(p, s.centre)
					q := d.X*d.X/(s.radii.X*s.radii.X) + d.Y*d.Y/(s.radii.Y*s.radii.Y) + d.Z*d.Z/(s.radii.Z*s.radii.Z)
					if q <= 1 {
						value += s.value
					}
				}
				data[k*dims[0]*dims[1]+j*dims[0]+i] = value
			}
		}
	}

	if hi := floats.Max(data); hi > 0 {
		floats.Scale(1/hi, data)
	}
	return New(data, dims, xform)
}

// extractNumber extracts the numeric part of a filename, or 0 when there is none
func extractNumber(filename string) int {
	base := filepath.Base(filename)
	var digits strings.Builder
	for _, c := range base {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}

	if digits.Len() > 0 {
		if num, err := strconv.Atoi(digits.String()); err == nil {
			return num
		}
	}
	return 0
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}
