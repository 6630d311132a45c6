// Package render turns a scene.Template into drawing operations and pixels
// via github.com/tdewolff/canvas. Rendering is synchronous and must not fail
// for a template that satisfies the data-model invariants; the caller
// guarantees fonts.Ensure has succeeded beforehand.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/kando-74/cartas/fonts"
	"github.com/kando-74/cartas/scene"
)

const (
	// Inner padding of text boxes on all sides, in canvas units.
	textPadding = 8.0

	lineHeightFactor = 1.2

	// Font faces take sizes in points while the scene works in canvas
	// units, which tdewolff/canvas treats as millimeters.
	unitToPt = 72.0 / 25.4
)

// Scene records the template's drawing operations onto a canvas of the
// template's size. Elements are painted in list order, first at the bottom;
// invisible elements are skipped. All coordinates are issued in unscaled
// template units; resolution is applied once when the canvas is rendered out.
func Scene(t *scene.Template) (*canvas.Canvas, error) {
	c := canvas.New(t.Width, t.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, like the editor

	ctx.SetFillColor(canvas.Hex(t.Background))
	ctx.DrawPath(0, 0, canvas.Rectangle(t.Width, t.Height))

	for _, el := range t.Elements {
		box := el.Frame()
		if !box.Visible {
			continue
		}
		ctx.Push()
		if box.Rotation != 0 {
			// Under CartesianIV this composes to a visually clockwise
			// rotation around the element's center.
			ctx.RotateAbout(box.Rotation, box.X+box.Width/2, box.Y+box.Height/2)
		}
		var err error
		switch e := el.(type) {
		case *scene.RectangleElement:
			drawRectangle(ctx, e)
		case *scene.TextElement:
			err = drawText(ctx, e)
		case *scene.ImageElement:
			err = drawImagePlaceholder(ctx, e)
		default:
			err = fmt.Errorf("cannot draw element kind %q", el.Kind())
		}
		ctx.Pop()
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Rasterize renders the template into a pixel buffer of
// round(width*scale) x round(height*scale) pixels. Scales below 1 are raised
// to 1.
func Rasterize(t *scene.Template, scale float64) (*image.RGBA, error) {
	if scale < 1 {
		scale = 1
	}
	c, err := Scene(t)
	if err != nil {
		return nil, err
	}
	return rasterizer.Draw(c, canvas.DPMM(scale), canvas.DefaultColorSpace), nil
}

func drawRectangle(ctx *canvas.Context, e *scene.RectangleElement) {
	radius := e.BorderRadius
	if max := e.MaxRadius(); radius > max {
		radius = max
	}
	var path *canvas.Path
	if radius > 0 {
		path = canvas.RoundedRectangle(e.Width, e.Height, radius)
	} else {
		path = canvas.Rectangle(e.Width, e.Height)
	}
	ctx.SetFillColor(withOpacity(e.Fill, e.Opacity))
	if e.BorderWidth > 0 {
		// The border strokes at full opacity regardless of the fill.
		ctx.SetStrokeColor(canvas.Hex(e.BorderColor))
		ctx.SetStrokeWidth(e.BorderWidth)
	} else {
		ctx.SetStrokeColor(canvas.Transparent)
	}
	ctx.DrawPath(e.X, e.Y, path)
}

func drawText(ctx *canvas.Context, e *scene.TextElement) error {
	face, err := fonts.Face(e.FontFamily, e.FontWeight, e.FontSize*unitToPt, canvas.Hex(e.Color))
	if err != nil {
		return err
	}

	lines := Wrap(e.Content, e.Width-2*textPadding, face)
	lineHeight := e.FontSize * lineHeightFactor
	blockHeight := float64(len(lines)) * lineHeight
	innerHeight := e.Height - 2*textPadding

	top := e.Y + textPadding
	if blockHeight < innerHeight {
		top += (innerHeight - blockHeight) / 2
	}

	var align canvas.TextAlign
	var anchorX float64
	switch e.Align {
	case scene.AlignCenter:
		align = canvas.Center
		anchorX = e.X + e.Width/2
	case scene.AlignRight:
		align = canvas.Right
		anchorX = e.X + e.Width - textPadding
	default:
		align = canvas.Left
		anchorX = e.X + textPadding
	}

	ascent := face.Metrics().Ascent
	bottom := e.Y + e.Height - textPadding
	cursor := top
	for _, line := range lines {
		if cursor >= bottom {
			break // text overflow is clipped to the box
		}
		if line.Text != "" {
			ctx.DrawText(anchorX, cursor+ascent, canvas.NewTextLine(face, line.Text, align))
		}
		cursor += lineHeight
	}
	return nil
}

func drawImagePlaceholder(ctx *canvas.Context, e *scene.ImageElement) error {
	ctx.SetFillColor(canvas.Hex(e.Background))
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(e.X, e.Y, canvas.Rectangle(e.Width, e.Height))

	if e.StrokeWidth > 0 {
		inset := e.StrokeWidth / 2
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(canvas.Hex(e.StrokeColor))
		ctx.SetStrokeWidth(e.StrokeWidth)
		ctx.DrawPath(e.X+inset, e.Y+inset, canvas.Rectangle(e.Width-e.StrokeWidth, e.Height-e.StrokeWidth))
	}

	label := e.Label
	if label == "" {
		label = "Image"
	}
	size := clamp(e.Height/6, 12, 18)
	face, err := fonts.Face(fonts.Fallback, 500, size*unitToPt, canvas.Hex(e.StrokeColor))
	if err != nil {
		return err
	}
	top := e.Y + (e.Height-size*lineHeightFactor)/2
	ctx.DrawText(e.X+e.Width/2, top+face.Metrics().Ascent, canvas.NewTextLine(face, label, canvas.Center))
	return nil
}

// withOpacity applies an opacity factor on top of the hex color's own alpha.
func withOpacity(hex string, opacity float64) color.Color {
	col := canvas.Hex(hex)
	a := float64(col.A) / 255 * clamp(opacity, 0, 1)
	return canvas.RGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, a)
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
