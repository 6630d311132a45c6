// Package geometry keeps elements inside the canvas and above the minimum
// manipulable size. Every mutation, whether a canvas resize or an interactive
// gesture, passes through Normalize before it is stored, so the rasterizer never sees
// an element that violates the containment invariants.
package geometry

import "github.com/kando-74/cartas/scene"

// Normalize clamps the element's size to [scene.MinSize, canvas] and then its
// position so the element stays fully inside the canvas. It returns a clone;
// the input is left untouched. Normalize is idempotent.
func Normalize(el scene.Element, canvasWidth, canvasHeight float64) scene.Element {
	out := el.Clone()
	box := out.Frame()
	box.Width = clamp(box.Width, scene.MinSize, canvasWidth)
	box.Height = clamp(box.Height, scene.MinSize, canvasHeight)
	box.X = clamp(box.X, 0, canvasWidth-box.Width)
	box.Y = clamp(box.Y, 0, canvasHeight-box.Height)

	// Shrinking can invalidate a rectangle's corner radius.
	if rect, ok := out.(*scene.RectangleElement); ok {
		if max := rect.MaxRadius(); rect.BorderRadius > max {
			rect.BorderRadius = max
		}
	}
	return out
}

// ResizeCanvas changes the template's dimensions and re-normalizes every
// element against the new size, in list order. Elements are never reordered
// or deleted, only clamped.
func ResizeCanvas(t *scene.Template, width, height float64) {
	t.Width = width
	t.Height = height
	for i, el := range t.Elements {
		t.Elements[i] = Normalize(el, width, height)
	}
}

// clamp bounds v to [lo, hi]; when the interval is empty, lo wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
