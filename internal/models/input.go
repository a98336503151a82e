package models

import "strings"

// EdgeMask records which screen edges the pointer is close to
type EdgeMask uint8

const (
	LeftEdge EdgeMask = 1 << iota
	RightEdge
	TopEdge
	BottomEdge
)

// Has reports whether every edge in e is set in m
func (m EdgeMask) Has(e EdgeMask) bool {
	return m&e == e && e != 0
}

func (m EdgeMask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, e := range []struct {
		bit  EdgeMask
		name string
	}{{LeftEdge, "left"}, {RightEdge, "right"}, {TopEdge, "top"}, {BottomEdge, "bottom"}} {
		if m&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}

// CursorShape is the pointer affordance requested from the host window
type CursorShape int

const (
	CursorCrosshair CursorShape = iota
	CursorZoom
	CursorWindow
	CursorPanCrosshair
)

func (c CursorShape) String() string {
	switch c {
	case CursorCrosshair:
		return "crosshair"
	case CursorZoom:
		return "zoom"
	case CursorWindow:
		return "window"
	case CursorPanCrosshair:
		return "pan-crosshair"
	}
	return "unknown"
}

// Button is a bitset of pointer buttons held during an event
type Button uint8

const (
	ButtonNone    Button = 0
	ButtonPrimary Button = 1 << (iota - 1)
	ButtonSecondary
	ButtonMiddle
)

// Modifier is a bitset of keyboard modifiers held during an event
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModControl
	ModAlt
	ModMeta
)

// WheelOrientation distinguishes vertical from horizontal wheel motion
type WheelOrientation int

const (
	WheelVertical WheelOrientation = iota
	WheelHorizontal
)
