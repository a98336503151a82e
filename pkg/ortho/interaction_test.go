package ortho

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"orthoview/internal/models"
)

// TestEdgeMask verifies edge zone classification
func TestEdgeMask(t *testing.T) {
	r := models.ViewportRect{X: 100, Y: 0, Width: 100, Height: 100}

	cases := []struct {
		x, y   float64
		mask   models.EdgeMask
		cursor models.CursorShape
	}{
		{200, 100, models.RightEdge | models.BottomEdge, models.CursorWindow},
		{100, 50, models.LeftEdge, models.CursorZoom},
		{101, 2, models.LeftEdge | models.TopEdge, models.CursorZoom},
		{150, 50, 0, models.CursorCrosshair},
		{150, 0, models.TopEdge, models.CursorCrosshair},
		{195, 50, models.RightEdge, models.CursorCrosshair},
		{195, 5, models.RightEdge | models.TopEdge, models.CursorCrosshair},
	}
	for _, c := range cases {
		m := EdgeMaskAt(r, c.x, c.y, 0.1)
		if m != c.mask {
			t.Errorf("Expected mask %s at (%f,%f), got %s", c.mask, c.x, c.y, m)
		}
		if got := CursorFor(m); got != c.cursor {
			t.Errorf("Expected cursor %s at (%f,%f), got %s", c.cursor, c.x, c.y, got)
		}
	}
}

func newInteractiveMode(t *testing.T, opts Options) (*Mode, *fakeHost, *fakeVolume) {
	vol := newFakeVolume(t, [3]int{64, 64, 64}, [3]float64{1, 1, 1}, r3.Vec{X: -32, Y: -32, Z: -32})
	host := newFakeHost(vol, 200, 200)
	mode := New(host, opts)
	mode.Render()
	return mode, host, vol
}

// TestCursorSelection verifies cursor shapes picked on plain pointer motion
func TestCursorSelection(t *testing.T) {
	mode, host, _ := newInteractiveMode(t, DefaultOptions())

	cases := []struct {
		x, y   float64
		cursor models.CursorShape
	}{
		{200, 100, models.CursorWindow}, // bottom-right corner of the axis 0 view
		{2, 50, models.CursorZoom},      // left edge of the axis 1 view
		{50, 50, models.CursorCrosshair},
		{50, 150, models.CursorCrosshair},
	}
	for _, c := range cases {
		if mode.MouseMove(MouseEvent{X: c.x, Y: c.y}) {
			t.Errorf("Expected plain move at (%f,%f) not to be consumed", c.x, c.y)
		}
		if host.cursor != c.cursor {
			t.Errorf("Expected cursor %s at (%f,%f), got %s", c.cursor, c.x, c.y, host.cursor)
		}
	}
}

// TestRelease verifies release resets the cursor and is always consumed
func TestRelease(t *testing.T) {
	mode, host, _ := newInteractiveMode(t, DefaultOptions())
	host.cursor = models.CursorPanCrosshair

	if !mode.MouseRelease(MouseEvent{X: 2, Y: 50}) {
		t.Error("Expected release to be consumed")
	}
	if host.cursor != models.CursorZoom {
		t.Errorf("Expected zoom cursor after release, got %s", host.cursor)
	}
}

// TestWheelZoom verifies control+vertical wheel changes FOV monotonically in -delta
func TestWheelZoom(t *testing.T) {
	mode, host, _ := newInteractiveMode(t, DefaultOptions())
	start := mode.Camera().FOV
	ctrl := MouseEvent{X: 50, Y: 50, Modifiers: models.ModControl}

	fovAfter := func(delta float64) float64 {
		mode.Camera().SetFOV(start)
		if !mode.MouseWheel(ctrl, delta, models.WheelVertical) {
			t.Errorf("Expected control+wheel %f to be consumed", delta)
		}
		return mode.Camera().FOV
	}

	in1, in2, out1 := fovAfter(1), fovAfter(2), fovAfter(-1)
	if !(in2 < in1 && in1 < start && start < out1) {
		t.Errorf("Expected FOV ordering %f < %f < %f < %f", in2, in1, start, out1)
	}
	if host.redraws != 3 {
		t.Errorf("Expected 3 redraws, got %d", host.redraws)
	}

	mode.Camera().SetFOV(start)
	ignored := []struct {
		ev MouseEvent
		o  models.WheelOrientation
	}{
		{MouseEvent{X: 50, Y: 50}, models.WheelVertical},
		{MouseEvent{X: 50, Y: 50, Modifiers: models.ModControl | models.ModShift}, models.WheelVertical},
		{ctrl, models.WheelHorizontal},
	}
	for _, c := range ignored {
		if mode.MouseWheel(c.ev, 1, c.o) {
			t.Errorf("Expected wheel %+v/%d to be ignored", c.ev, c.o)
		}
	}
	if mode.Camera().FOV != start {
		t.Errorf("Expected FOV unchanged at %f, got %f", start, mode.Camera().FOV)
	}
}

// TestDragGesturesDisabled verifies click and drag leave the camera alone by default
func TestDragGesturesDisabled(t *testing.T) {
	mode, host, _ := newInteractiveMode(t, DefaultOptions())
	before := *mode.Camera()

	ev := MouseEvent{X: 60, Y: 40, DX: 5, DY: 3, Buttons: models.ButtonPrimary}
	if mode.MouseClick(ev) {
		t.Error("Expected click not to be consumed")
	}
	if mode.MouseMove(ev) {
		t.Error("Expected primary drag not to be consumed")
	}
	ev.Buttons = models.ButtonSecondary
	if mode.MouseMove(ev) {
		t.Error("Expected secondary drag not to be consumed")
	}

	if *mode.Camera() != before {
		t.Errorf("Expected camera unchanged, got %+v", *mode.Camera())
	}
	if host.redraws != 0 {
		t.Errorf("Expected no redraws, got %d", host.redraws)
	}
}

// TestDragGesturesEnabled verifies the optional click and drag mappings
func TestDragGesturesEnabled(t *testing.T) {
	opts := DefaultOptions()
	opts.DragGestures = true
	mode, host, vol := newInteractiveMode(t, opts)
	cam := mode.Camera()
	rects := Partition(200, 200)

	// click in the axial view moves the focus without changing the axial slice
	click := MouseEvent{X: 20, Y: 130, Buttons: models.ButtonPrimary}
	p := NewProjection(models.Axial, cam, vol, rects[models.Axial])
	if !mode.MouseClick(click) {
		t.Fatal("Expected click to be consumed")
	}
	if !closeVec(cam.Focus, p.Unproject(click.X, click.Y)) {
		t.Errorf("Expected focus %v, got %v", p.Unproject(click.X, click.Y), cam.Focus)
	}
	if after := NewProjection(models.Axial, cam, vol, rects[models.Axial]); after.Slice != p.Slice {
		t.Errorf("Expected axial slice %d kept, got %d", p.Slice, after.Slice)
	}

	// secondary drag in the middle pans the target against the drag
	target := cam.Target
	drag := MouseEvent{X: 50, Y: 150, DX: 4, DY: 0, Buttons: models.ButtonSecondary}
	if !mode.MouseMove(drag) {
		t.Fatal("Expected secondary drag to be consumed")
	}
	if cam.Target.X <= target.X {
		t.Errorf("Expected target to move towards +x when dragging right, got %v -> %v", target, cam.Target)
	}

	// secondary drag on the left edge zooms finely
	fov := cam.FOV
	drag = MouseEvent{X: 1, Y: 150, DY: 10, Buttons: models.ButtonSecondary}
	mode.MouseMove(drag)
	if cam.FOV <= fov {
		t.Errorf("Expected FOV to grow from %f, got %f", fov, cam.FOV)
	}

	// secondary drag in the bottom-right corner adjusts windowing
	drag = MouseEvent{X: 100, Y: 200, DX: 2, DY: -3, Buttons: models.ButtonSecondary}
	mode.MouseMove(drag)
	if len(vol.windowed) != 1 || vol.windowed[0] != [2]float64{2, -3} {
		t.Errorf("Expected one windowing adjustment (2,-3), got %v", vol.windowed)
	}

	if host.redraws != 4 {
		t.Errorf("Expected 4 redraws, got %d", host.redraws)
	}
}
