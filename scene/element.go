package scene

import (
	"fmt"
	"math"
)

// Kind discriminates the element variants. It is also the serialized
// "type" field of the layout format.
type Kind string

const (
	KindText      Kind = "text"
	KindRectangle Kind = "rectangle"
	KindImage     Kind = "image"
)

// MinSize is the smallest width/height an element may have, in canvas units.
const MinSize = 20.0

// Horizontal text alignment inside a text element.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Fit modes for image elements. Retained for future real-image support; the
// placeholder renderer ignores them.
const (
	FitCover   = "cover"
	FitContain = "contain"
	FitFill    = "fill"
)

// Box carries the placement and identity fields shared by every element.
// Coordinates are top-left based, rotation is degrees clockwise around the
// element's own center.
type Box struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Visible  bool    `json:"visible"`
	Locked   bool    `json:"locked"`
}

// Element is the tagged union over the three variants. Concrete types are
// *TextElement, *RectangleElement and *ImageElement.
type Element interface {
	Kind() Kind
	// Frame returns the shared placement fields for in-place mutation.
	Frame() *Box
	Clone() Element
	validate() error
}

// TextElement draws wrapped, aligned text clipped to its box.
type TextElement struct {
	Box
	Content    string  `json:"content"`
	FontFamily string  `json:"fontFamily"`
	FontSize   float64 `json:"fontSize"`
	FontWeight float64 `json:"fontWeight"`
	Color      string  `json:"color"`
	Align      string  `json:"align"`
}

func (e *TextElement) Kind() Kind  { return KindText }
func (e *TextElement) Frame() *Box { return &e.Box }

func (e *TextElement) Clone() Element {
	clone := *e
	return &clone
}

func (e *TextElement) validate() error {
	if e.FontSize <= 0 {
		return fmt.Errorf("%w: element %s: font size must be positive", ErrInvalidGeometry, e.ID)
	}
	switch e.Align {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf("%w: element %s: unknown align %q", ErrInvalidGeometry, e.ID, e.Align)
	}
	return validColor(e.ID, "color", e.Color)
}

// RectangleElement draws a rounded rectangle. Overflow past the box is
// intentionally visible so rectangles can bleed under rotation.
type RectangleElement struct {
	Box
	Fill         string  `json:"fill"`
	BorderColor  string  `json:"borderColor"`
	BorderWidth  float64 `json:"borderWidth"`
	BorderRadius float64 `json:"borderRadius"`
	Opacity      float64 `json:"opacity"`
}

func (e *RectangleElement) Kind() Kind  { return KindRectangle }
func (e *RectangleElement) Frame() *Box { return &e.Box }

func (e *RectangleElement) Clone() Element {
	clone := *e
	return &clone
}

// MaxRadius is the largest corner radius the element's box allows.
func (e *RectangleElement) MaxRadius() float64 {
	return math.Min(e.Width, e.Height) / 2
}

func (e *RectangleElement) validate() error {
	if e.BorderWidth < 0 {
		return fmt.Errorf("%w: element %s: negative border width", ErrInvalidGeometry, e.ID)
	}
	if e.BorderRadius < 0 || e.BorderRadius > e.MaxRadius() {
		return fmt.Errorf("%w: element %s: border radius %g outside [0,%g]", ErrInvalidGeometry, e.ID, e.BorderRadius, e.MaxRadius())
	}
	if e.Opacity < 0 || e.Opacity > 1 {
		return fmt.Errorf("%w: element %s: opacity %g outside [0,1]", ErrInvalidGeometry, e.ID, e.Opacity)
	}
	if err := validColor(e.ID, "fill", e.Fill); err != nil {
		return err
	}
	return validColor(e.ID, "borderColor", e.BorderColor)
}

// ImageElement renders as a styled placeholder; no bitmap is decoded.
type ImageElement struct {
	Box
	Fit         string  `json:"fit"`
	Background  string  `json:"background"`
	StrokeColor string  `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`
	Label       string  `json:"label"`
}

func (e *ImageElement) Kind() Kind  { return KindImage }
func (e *ImageElement) Frame() *Box { return &e.Box }

func (e *ImageElement) Clone() Element {
	clone := *e
	return &clone
}

func (e *ImageElement) validate() error {
	if e.StrokeWidth < 0 {
		return fmt.Errorf("%w: element %s: negative stroke width", ErrInvalidGeometry, e.ID)
	}
	switch e.Fit {
	case FitCover, FitContain, FitFill:
	default:
		return fmt.Errorf("%w: element %s: unknown fit %q", ErrInvalidGeometry, e.ID, e.Fit)
	}
	if err := validColor(e.ID, "background", e.Background); err != nil {
		return err
	}
	return validColor(e.ID, "strokeColor", e.StrokeColor)
}

func validColor(id, field, value string) error {
	if !IsColor(value) {
		return fmt.Errorf("%w: element %s: %s %q is not a hex color", ErrInvalidGeometry, id, field, value)
	}
	return nil
}
