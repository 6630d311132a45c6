package export

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/kando-74/cartas/render"
	"github.com/kando-74/cartas/scene"
)

// PNG renders the template at the given scale (minimum 1) and encodes it as
// a PNG of round(width*scale) x round(height*scale) pixels. The background
// is always painted first, so the image is fully opaque.
func PNG(t *scene.Template, scale float64) (Artifact, error) {
	if scale < 1 {
		scale = 1
	}
	c, err := render.Scene(t.Clone())
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	var buf bytes.Buffer
	if err := c.Write(&buf, renderers.PNG(canvas.DPMM(scale))); err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}
	return Artifact{Filename: SanitizeFilename(t.Name, ".png"), Data: buf.Bytes()}, nil
}
