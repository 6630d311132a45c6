package export

import (
	"fmt"

	"github.com/kando-74/cartas/scene"
)

// Layout serializes the complete scene model to the layout format. The
// emitted document re-parses via scene.DecodeLayout without loss; this is
// the round-trip format.
func Layout(t *scene.Template) (Artifact, error) {
	data, err := scene.EncodeLayout(t)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}
	return Artifact{Filename: SanitizeFilename(t.Name, ".json"), Data: data}, nil
}
