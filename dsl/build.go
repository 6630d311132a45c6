package dsl

import (
	"fmt"
	"strings"

	"github.com/kando-74/cartas/geometry"
	"github.com/kando-74/cartas/scene"
)

// Build maps a parsed document to a validated scene template. Elements pass
// through geometry.Normalize so hand-written coordinates are clamped the
// same way editor mutations are. Optional data is interpolated into
// ${path} placeholders in text content.
func Build(doc *Document, data any) (*scene.Template, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is empty")
	}
	if doc.Canvas.Width <= 0 || doc.Canvas.Height <= 0 {
		return nil, fmt.Errorf("canvas %gx%g must be positive", doc.Canvas.Width, doc.Canvas.Height)
	}

	tpl := scene.NewTemplate(doc.Name, doc.Canvas.Width, doc.Canvas.Height)
	for _, st := range doc.Canvas.Block.Statements {
		a := st.Assignment
		if a == nil {
			return nil, fmt.Errorf("canvas block only takes assignments")
		}
		switch a.Key {
		case "background":
			c, err := a.color()
			if err != nil {
				return nil, err
			}
			tpl.Background = c
		case "grid":
			b, err := a.boolean()
			if err != nil {
				return nil, err
			}
			tpl.ShowGrid = b
		default:
			return nil, a.errf("unknown canvas key %q", a.Key)
		}
	}

	for _, eb := range doc.Elements {
		el, err := buildElement(eb, tpl, data)
		if err != nil {
			return nil, err
		}
		tpl.Elements = append(tpl.Elements, geometry.Normalize(el, tpl.Width, tpl.Height))
	}

	if err := tpl.Validate(); err != nil {
		return nil, err
	}
	return tpl, nil
}

var kindNames = map[string]scene.Kind{
	"text":  scene.KindText,
	"rect":  scene.KindRectangle,
	"image": scene.KindImage,
}

func buildElement(eb *ElementBlock, tpl *scene.Template, data any) (scene.Element, error) {
	el, err := scene.NewElement(kindNames[eb.Kind], tpl)
	if err != nil {
		return nil, err
	}
	el.Frame().Name = eb.Name

	var content []string
	for _, st := range eb.Block.Statements {
		if st.Text != nil {
			if eb.Kind != "text" {
				return nil, fmt.Errorf("line %d: only text elements take content lines", eb.Pos.Line)
			}
			content = append(content, string(st.Text.Value))
			continue
		}
		a := st.Assignment
		handled, err := applyCommon(a, el.Frame())
		if err != nil {
			return nil, err
		}
		if handled {
			continue
		}
		if err := applyVariant(a, el); err != nil {
			return nil, err
		}
	}

	if text, ok := el.(*scene.TextElement); ok && len(content) > 0 {
		text.Content = interpolate(strings.Join(content, "\n"), data)
	}
	return el, nil
}

// applyCommon handles the placement keys shared by every element kind.
func applyCommon(a *Assignment, box *scene.Box) (bool, error) {
	switch a.Key {
	case "at":
		xy, err := a.numbers(2)
		if err != nil {
			return false, err
		}
		box.X, box.Y = xy[0], xy[1]
	case "size":
		wh, err := a.numbers(2)
		if err != nil {
			return false, err
		}
		box.Width, box.Height = wh[0], wh[1]
	case "rotate":
		deg, err := a.number()
		if err != nil {
			return false, err
		}
		box.Rotation = deg
	case "visible":
		b, err := a.boolean()
		if err != nil {
			return false, err
		}
		box.Visible = b
	case "locked":
		b, err := a.boolean()
		if err != nil {
			return false, err
		}
		box.Locked = b
	default:
		return false, nil
	}
	return true, nil
}

func applyVariant(a *Assignment, el scene.Element) error {
	switch e := el.(type) {
	case *scene.TextElement:
		switch a.Key {
		case "font":
			return applyFont(a, e)
		case "color":
			c, err := a.color()
			if err != nil {
				return err
			}
			e.Color = c
		case "align":
			w, err := a.word()
			if err != nil {
				return err
			}
			e.Align = w
		default:
			return a.errf("unknown text key %q", a.Key)
		}
	case *scene.RectangleElement:
		switch a.Key {
		case "fill":
			c, err := a.color()
			if err != nil {
				return err
			}
			e.Fill = c
		case "border":
			c, width, err := a.colorWidth()
			if err != nil {
				return err
			}
			e.BorderColor = c
			e.BorderWidth = width
		case "radius":
			r, err := a.number()
			if err != nil {
				return err
			}
			e.BorderRadius = r
		case "opacity":
			o, err := a.number()
			if err != nil {
				return err
			}
			e.Opacity = o
		default:
			return a.errf("unknown rect key %q", a.Key)
		}
	case *scene.ImageElement:
		switch a.Key {
		case "fit":
			w, err := a.word()
			if err != nil {
				return err
			}
			e.Fit = w
		case "fill":
			c, err := a.color()
			if err != nil {
				return err
			}
			e.Background = c
		case "stroke":
			c, width, err := a.colorWidth()
			if err != nil {
				return err
			}
			e.StrokeColor = c
			e.StrokeWidth = width
		case "label":
			s, err := a.str()
			if err != nil {
				return err
			}
			e.Label = s
		default:
			return a.errf("unknown image key %q", a.Key)
		}
	}
	return nil
}

// applyFont reads `font: "Family" [size [weight]]`.
func applyFont(a *Assignment, e *scene.TextElement) error {
	if len(a.Values) == 0 || len(a.Values) > 3 {
		return a.errf("font expects family, optional size and weight")
	}
	if a.Values[0].Str == nil {
		return a.errf("font family must be a string")
	}
	e.FontFamily = string(*a.Values[0].Str)
	if len(a.Values) > 1 {
		if a.Values[1].Number == nil {
			return a.errf("font size must be a number")
		}
		e.FontSize = *a.Values[1].Number
	}
	if len(a.Values) > 2 {
		if a.Values[2].Number == nil {
			return a.errf("font weight must be a number")
		}
		e.FontWeight = *a.Values[2].Number
	}
	return nil
}

func (a *Assignment) errf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", a.Pos.Line, fmt.Sprintf(format, args...))
}

func (a *Assignment) numbers(n int) ([]float64, error) {
	if len(a.Values) != n {
		return nil, a.errf("%s expects %d numbers", a.Key, n)
	}
	out := make([]float64, n)
	for i, v := range a.Values {
		if v.Number == nil {
			return nil, a.errf("%s expects numbers", a.Key)
		}
		out[i] = *v.Number
	}
	return out, nil
}

func (a *Assignment) number() (float64, error) {
	ns, err := a.numbers(1)
	if err != nil {
		return 0, err
	}
	return ns[0], nil
}

func (a *Assignment) color() (string, error) {
	if len(a.Values) != 1 || a.Values[0].Color == nil {
		return "", a.errf("%s expects a hex color", a.Key)
	}
	return *a.Values[0].Color, nil
}

// colorWidth reads `key: #color [width]`; the width defaults to 1.
func (a *Assignment) colorWidth() (string, float64, error) {
	if len(a.Values) < 1 || len(a.Values) > 2 || a.Values[0].Color == nil {
		return "", 0, a.errf("%s expects a hex color and an optional width", a.Key)
	}
	width := 1.0
	if len(a.Values) == 2 {
		if a.Values[1].Number == nil {
			return "", 0, a.errf("%s width must be a number", a.Key)
		}
		width = *a.Values[1].Number
	}
	return *a.Values[0].Color, width, nil
}

func (a *Assignment) word() (string, error) {
	if len(a.Values) != 1 || a.Values[0].Word == nil {
		return "", a.errf("%s expects a bare word", a.Key)
	}
	return *a.Values[0].Word, nil
}

func (a *Assignment) str() (string, error) {
	if len(a.Values) != 1 || a.Values[0].Str == nil {
		return "", a.errf("%s expects a quoted string", a.Key)
	}
	return string(*a.Values[0].Str), nil
}

func (a *Assignment) boolean() (bool, error) {
	w, err := a.word()
	if err != nil {
		return false, err
	}
	switch w {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, a.errf("%s expects on or off", a.Key)
	}
}
