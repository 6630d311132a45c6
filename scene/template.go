package scene

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/oklog/ulid/v2"
)

// ErrInvalidGeometry marks data-model invariant violations. Reaching the
// renderer with one of these indicates a caller bug: mutations are expected
// to pass through geometry.Normalize first.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Default sizes for freshly created elements, before canvas clamping.
const (
	defaultShapeWidth  = 280.0
	defaultShapeHeight = 140.0
	defaultImageHeight = 360.0

	// New elements keep at least this much distance to the canvas edges.
	creationMargin = 80.0
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// IsColor reports whether s is a #rgb, #rrggbb or #rrggbbaa hex color.
func IsColor(s string) bool { return colorPattern.MatchString(s) }

// Template is the full declarative description of one printable layout.
// Element order is paint order, first element at the bottom.
type Template struct {
	ID         string
	Name       string
	Width      float64
	Height     float64
	Background string
	ShowGrid   bool
	Elements   []Element
}

// NewTemplate returns an empty template with a fresh id and a white canvas.
func NewTemplate(name string, width, height float64) *Template {
	return &Template{
		ID:         ulid.Make().String(),
		Name:       name,
		Width:      width,
		Height:     height,
		Background: "#FFFFFF",
		ShowGrid:   true,
	}
}

// NewElement builds a default element of the given kind, centered on the
// template's canvas. The caller owns insertion into tpl.Elements.
func NewElement(kind Kind, tpl *Template) (Element, error) {
	height := defaultShapeHeight
	if kind == KindImage {
		height = defaultImageHeight
	}
	w := clamp(defaultShapeWidth, MinSize, math.Max(MinSize, tpl.Width-creationMargin))
	h := clamp(height, MinSize, math.Max(MinSize, tpl.Height-creationMargin))
	box := Box{
		ID:      ulid.Make().String(),
		X:       (tpl.Width - w) / 2,
		Y:       (tpl.Height - h) / 2,
		Width:   w,
		Height:  h,
		Visible: true,
	}

	switch kind {
	case KindText:
		box.Name = "Text"
		return &TextElement{
			Box:        box,
			Content:    "New text",
			FontFamily: "Go",
			FontSize:   16,
			FontWeight: 400,
			Color:      "#111827",
			Align:      AlignLeft,
		}, nil
	case KindRectangle:
		box.Name = "Rectangle"
		return &RectangleElement{
			Box:         box,
			Fill:        "#E5E7EB",
			BorderColor: "#9CA3AF",
			BorderWidth: 1,
			Opacity:     1,
		}, nil
	case KindImage:
		box.Name = "Image"
		return &ImageElement{
			Box:         box,
			Fit:         FitCover,
			Background:  "#F3F4F6",
			StrokeColor: "#9CA3AF",
			StrokeWidth: 1,
		}, nil
	default:
		return nil, fmt.Errorf("unknown element kind %q", kind)
	}
}

// RemoveElement deletes the element with the given id and reports whether it
// was present. Consumers holding a selected-element reference to that id must
// clear it themselves.
func (t *Template) RemoveElement(id string) bool {
	for i, el := range t.Elements {
		if el.Frame().ID == id {
			t.Elements = append(t.Elements[:i], t.Elements[i+1:]...)
			return true
		}
	}
	return false
}

// FindElement returns the element with the given id, or nil.
func (t *Template) FindElement(id string) Element {
	for _, el := range t.Elements {
		if el.Frame().ID == id {
			return el
		}
	}
	return nil
}

// Clone deep-copies the template so exporters can work on a value snapshot
// while the editor keeps mutating the original.
func (t *Template) Clone() *Template {
	clone := *t
	clone.Elements = make([]Element, len(t.Elements))
	for i, el := range t.Elements {
		clone.Elements[i] = el.Clone()
	}
	return &clone
}

// Validate checks every data-model invariant: positive canvas, valid colors,
// unique ids, containment and minimum size and the variant-specific ranges.
func (t *Template) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%w: canvas %gx%g must be positive", ErrInvalidGeometry, t.Width, t.Height)
	}
	if !IsColor(t.Background) {
		return fmt.Errorf("%w: background %q is not a hex color", ErrInvalidGeometry, t.Background)
	}
	seen := make(map[string]bool, len(t.Elements))
	for _, el := range t.Elements {
		box := el.Frame()
		if seen[box.ID] {
			return fmt.Errorf("%w: duplicate element id %s", ErrInvalidGeometry, box.ID)
		}
		seen[box.ID] = true
		if box.Width < MinSize || box.Height < MinSize {
			return fmt.Errorf("%w: element %s: %gx%g below minimum size", ErrInvalidGeometry, box.ID, box.Width, box.Height)
		}
		if box.X < 0 || box.Y < 0 || box.X+box.Width > t.Width || box.Y+box.Height > t.Height {
			return fmt.Errorf("%w: element %s leaves the canvas", ErrInvalidGeometry, box.ID)
		}
		if math.IsNaN(box.Rotation) || math.IsInf(box.Rotation, 0) {
			return fmt.Errorf("%w: element %s: rotation is not finite", ErrInvalidGeometry, box.ID)
		}
		if err := el.validate(); err != nil {
			return err
		}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
