package geometry_test

import (
	"testing"

	"github.com/kando-74/cartas/geometry"
	"github.com/kando-74/cartas/scene"
)

func TestApplyGestureMove(t *testing.T) {
	snapshot := rect(100, 100, 200, 100)
	got := geometry.ApplyGesture(snapshot, geometry.Delta{X: 30, Y: -20}, geometry.GestureMove, 1, 600, 800)
	box := got.Frame()
	if box.X != 130 || box.Y != 80 {
		t.Fatalf("moved to (%g,%g), want (130,80)", box.X, box.Y)
	}
	if box.Width != 200 || box.Height != 100 {
		t.Fatalf("move changed size: %+v", box)
	}
}

func TestApplyGestureZoomDividesDelta(t *testing.T) {
	snapshot := rect(100, 100, 200, 100)
	got := geometry.ApplyGesture(snapshot, geometry.Delta{X: 50, Y: 50}, geometry.GestureMove, 2, 600, 800)
	box := got.Frame()
	if box.X != 125 || box.Y != 125 {
		t.Fatalf("zoomed move gave (%g,%g), want (125,125)", box.X, box.Y)
	}
}

func TestApplyGestureResizeClamps(t *testing.T) {
	snapshot := rect(100, 100, 200, 100)
	got := geometry.ApplyGesture(snapshot, geometry.Delta{X: 1000, Y: -1000}, geometry.GestureResize, 1, 600, 800)
	box := got.Frame()
	if box.Width != 600 {
		t.Fatalf("width = %g, want clamped 600", box.Width)
	}
	if box.Height != scene.MinSize {
		t.Fatalf("height = %g, want minimum %g", box.Height, scene.MinSize)
	}
	// width grew past the right edge, so x must have been pulled back
	if box.X != 0 {
		t.Fatalf("x = %g, want 0", box.X)
	}
}

func TestApplyGestureSnapshotBased(t *testing.T) {
	// Repeating the same cumulative delta against the same snapshot must
	// not drift: the result depends only on snapshot and delta.
	snapshot := rect(100, 100, 200, 100)
	first := geometry.ApplyGesture(snapshot, geometry.Delta{X: 10, Y: 10}, geometry.GestureMove, 1, 600, 800)
	second := geometry.ApplyGesture(snapshot, geometry.Delta{X: 10, Y: 10}, geometry.GestureMove, 1, 600, 800)
	if first.Frame().X != second.Frame().X || first.Frame().Y != second.Frame().Y {
		t.Fatalf("gesture result not deterministic")
	}
}

func TestApplyGestureLockedIsNoop(t *testing.T) {
	snapshot := rect(100, 100, 200, 100)
	snapshot.Locked = true
	got := geometry.ApplyGesture(snapshot, geometry.Delta{X: 50, Y: 50}, geometry.GestureMove, 1, 600, 800)
	box := got.Frame()
	if box.X != 100 || box.Y != 100 || box.Width != 200 || box.Height != 100 {
		t.Fatalf("locked element was edited: %+v", box)
	}
}
