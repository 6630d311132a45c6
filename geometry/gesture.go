package geometry

import "github.com/kando-74/cartas/scene"

// GestureMode selects what a pointer gesture manipulates.
type GestureMode int

const (
	GestureMove GestureMode = iota
	GestureResize
)

// Delta is a pointer movement in screen pixels.
type Delta struct {
	X float64
	Y float64
}

// ApplyGesture applies a pointer delta to the element's state at gesture
// start and returns the normalized result. The snapshot must be the state
// captured when the gesture began, not the live element, so successive
// pointer events do not accumulate drift. The delta is divided by the
// editor's zoom factor to convert screen pixels into canvas units.
//
// Locked elements reject all edits: the snapshot is returned unchanged.
// The engine itself holds no gesture state.
func ApplyGesture(snapshot scene.Element, delta Delta, mode GestureMode, zoom, canvasWidth, canvasHeight float64) scene.Element {
	if snapshot.Frame().Locked {
		return snapshot.Clone()
	}
	if zoom <= 0 {
		zoom = 1
	}
	dx := delta.X / zoom
	dy := delta.Y / zoom

	out := snapshot.Clone()
	box := out.Frame()
	switch mode {
	case GestureResize:
		box.Width += dx
		box.Height += dy
	default:
		box.X += dx
		box.Y += dy
	}
	return Normalize(out, canvasWidth, canvasHeight)
}
