package viewer

import (
	"image"
	"image/color"
	"testing"

	"orthoview/internal/models"
	"orthoview/pkg/ortho"
	"orthoview/pkg/volume"
)

func createPhantom(t *testing.T) *volume.Volume {
	v, err := volume.NewPhantom([3]int{32, 32, 16}, [3]float64{1, 1, 2})
	if err != nil {
		t.Fatalf("Failed to build phantom: %v", err)
	}
	return v
}

func differs(img *image.RGBA, r image.Rectangle, bg color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}

// TestFrame verifies a full render fills three quadrants and leaves the fourth blank
func TestFrame(t *testing.T) {
	v := New(128, 96, createPhantom(t), ortho.DefaultOptions())

	if !v.Frame() {
		t.Fatal("Expected the first frame to render")
	}
	if v.Frame() {
		t.Error("Expected no render without a redraw request")
	}

	canvas := v.Host.Canvas()
	img := canvas.Image()
	quadrants := map[string]image.Rectangle{
		"sagittal": image.Rect(64, 0, 128, 48),
		"coronal":  image.Rect(0, 0, 64, 48),
		"axial":    image.Rect(0, 48, 64, 96),
	}
	for name, r := range quadrants {
		if differs(img, r, canvas.Background) == 0 {
			t.Errorf("Expected %s quadrant to be drawn", name)
		}
	}
	if n := differs(img, image.Rect(64, 48, 128, 96), canvas.Background); n != 0 {
		t.Errorf("Expected blank lower-right quadrant, got %d drawn pixels", n)
	}

	if vp := canvas.Viewport(); vp != (models.ViewportRect{Width: 128, Height: 96}) {
		t.Errorf("Expected full viewport after render, got %+v", vp)
	}
}

// TestFrameWithoutVolume verifies nothing is drawn with no volume loaded
func TestFrameWithoutVolume(t *testing.T) {
	v := New(64, 64, nil, ortho.DefaultOptions())

	if v.Host.ActiveVolume() != nil {
		t.Fatal("Expected no active volume")
	}
	v.Frame()

	canvas := v.Host.Canvas()
	if n := differs(canvas.Image(), canvas.Image().Bounds(), canvas.Background); n != 0 {
		t.Errorf("Expected blank canvas, got %d drawn pixels", n)
	}
}

// TestInteraction verifies events reach the mode and request redraws
func TestInteraction(t *testing.T) {
	v := New(200, 200, createPhantom(t), ortho.DefaultOptions())
	v.Frame()
	fov := v.Mode.Camera().FOV

	v.Mode.MouseMove(ortho.MouseEvent{X: 200, Y: 100})
	if v.Host.Cursor() != models.CursorWindow {
		t.Errorf("Expected window cursor, got %s", v.Host.Cursor())
	}

	ev := ortho.MouseEvent{X: 50, Y: 50, Modifiers: models.ModControl}
	if !v.Mode.MouseWheel(ev, 1, models.WheelVertical) {
		t.Fatal("Expected control+wheel to be consumed")
	}
	if v.Mode.Camera().FOV >= fov {
		t.Errorf("Expected zoom in from %f, got %f", fov, v.Mode.Camera().FOV)
	}
	if !v.Frame() {
		t.Error("Expected a redraw after zooming")
	}

	v.Resize(100, 100)
	if !v.Frame() {
		t.Error("Expected a redraw after resizing")
	}
}
