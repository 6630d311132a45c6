package scene

import (
	"encoding/json"
	"fmt"
)

// The layout format is the single JSON object this engine must both emit and
// re-parse losslessly. Element variants serialize flat with a "type"
// discriminant.

type layoutTemplate struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Background string            `json:"background"`
	ShowGrid   bool              `json:"showGrid"`
	Elements   []json.RawMessage `json:"elements"`
}

// MarshalJSON implements the layout format.
func (t *Template) MarshalJSON() ([]byte, error) {
	out := layoutTemplate{
		ID:         t.ID,
		Name:       t.Name,
		Width:      t.Width,
		Height:     t.Height,
		Background: t.Background,
		ShowGrid:   t.ShowGrid,
		Elements:   make([]json.RawMessage, 0, len(t.Elements)),
	}
	for _, el := range t.Elements {
		raw, err := marshalElement(el)
		if err != nil {
			return nil, err
		}
		out.Elements = append(out.Elements, raw)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements the layout format.
func (t *Template) UnmarshalJSON(data []byte) error {
	var in layoutTemplate
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	elements := make([]Element, 0, len(in.Elements))
	for _, raw := range in.Elements {
		el, err := unmarshalElement(raw)
		if err != nil {
			return err
		}
		elements = append(elements, el)
	}
	t.ID = in.ID
	t.Name = in.Name
	t.Width = in.Width
	t.Height = in.Height
	t.Background = in.Background
	t.ShowGrid = in.ShowGrid
	t.Elements = elements
	return nil
}

// EncodeLayout serializes the template to the layout format, indented for
// hand inspection of exported files.
func EncodeLayout(t *Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// DecodeLayout parses and validates a layout document.
func DecodeLayout(data []byte) (*Template, error) {
	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func marshalElement(el Element) (json.RawMessage, error) {
	switch e := el.(type) {
	case *TextElement:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*TextElement
		}{KindText, e})
	case *RectangleElement:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*RectangleElement
		}{KindRectangle, e})
	case *ImageElement:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*ImageElement
		}{KindImage, e})
	default:
		return nil, fmt.Errorf("cannot serialize element kind %q", el.Kind())
	}
}

func unmarshalElement(raw json.RawMessage) (Element, error) {
	var head struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}
	// Visible defaults to true when a hand-written document omits it.
	switch head.Type {
	case KindText:
		el := &TextElement{Box: Box{Visible: true}}
		if err := json.Unmarshal(raw, el); err != nil {
			return nil, err
		}
		return el, nil
	case KindRectangle:
		el := &RectangleElement{Box: Box{Visible: true}}
		if err := json.Unmarshal(raw, el); err != nil {
			return nil, err
		}
		return el, nil
	case KindImage:
		el := &ImageElement{Box: Box{Visible: true}}
		if err := json.Unmarshal(raw, el); err != nil {
			return nil, err
		}
		return el, nil
	default:
		return nil, fmt.Errorf("unknown element type %q", head.Type)
	}
}
