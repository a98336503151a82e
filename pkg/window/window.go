//go:build cgo

// Package window shows a viewer in a desktop window and forwards pointer and
// keyboard input to its ortho mode.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"orthoview/internal/models"
	"orthoview/pkg/ortho"
	"orthoview/pkg/viewer"
)

// Run opens a window of the viewer's canvas size and blocks until it closes.
//
// Keys: R resets the view, O toggles orientation labels.
func Run(v *viewer.Viewer, title string) error {
	w, h := v.Host.Canvas().Size()
	g := &game{v: v}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	ebiten.SetCursorShape(cursorShapes[g.cursor])
	return ebiten.RunGame(g)
}

type game struct {
	v      *viewer.Viewer
	img    *ebiten.Image
	cursor models.CursorShape

	// last pointer position, for motion deltas
	x, y float64
}

var cursorShapes = map[models.CursorShape]ebiten.CursorShapeType{
	models.CursorCrosshair:    ebiten.CursorShapeCrosshair,
	models.CursorZoom:         ebiten.CursorShapeNSResize,
	models.CursorWindow:       ebiten.CursorShapeNWSEResize,
	models.CursorPanCrosshair: ebiten.CursorShapeMove,
}

func buttons() models.Button {
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return models.ButtonPrimary
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		return models.ButtonSecondary
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		return models.ButtonMiddle
	}
	return models.ButtonNone
}

func modifiers() models.Modifier {
	var m models.Modifier
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= models.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= models.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= models.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= models.ModMeta
	}
	return m
}

func justPressed() (models.Button, bool) {
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		return models.ButtonPrimary, true
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		return models.ButtonSecondary, true
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		return models.ButtonMiddle, true
	}
	return models.ButtonNone, false
}

func justReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle)
}

func (g *game) Update() error {
	mode := g.v.Mode

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		mode.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		mode.SetShowOrientation(!mode.ShowOrientation())
		g.v.Host.Redraw()
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	ev := ortho.MouseEvent{
		X: x, Y: y,
		DX: x - g.x, DY: y - g.y,
		Buttons:   buttons(),
		Modifiers: modifiers(),
	}
	g.x, g.y = x, y

	if b, ok := justPressed(); ok {
		ev.Buttons = b
		mode.MouseClick(ev)
	} else if justReleased() {
		mode.MouseRelease(ev)
	} else if ev.DX != 0 || ev.DY != 0 {
		mode.MouseMove(ev)
	}

	if dx, dy := ebiten.Wheel(); dy != 0 {
		mode.MouseWheel(ev, dy, models.WheelVertical)
	} else if dx != 0 {
		mode.MouseWheel(ev, dx, models.WheelHorizontal)
	}

	if c := g.v.Host.Cursor(); c != g.cursor {
		g.cursor = c
		ebiten.SetCursorShape(cursorShapes[c])
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	canvas := g.v.Host.Canvas()
	w, h := canvas.Size()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
		g.v.Host.Redraw()
	}

	if g.v.Frame() {
		g.img.WritePixels(canvas.Image().Pix)
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.v.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
