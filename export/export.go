// Package export builds the three output artifacts of a template: a raster
// image, the re-loadable layout document and a tiled multi-page print PDF.
// Every exporter works on a value snapshot of the template and either
// produces a complete artifact or none.
package export

import (
	"errors"
	"os"
	"path/filepath"
)

var (
	// ErrInvalidExportParameters reports print parameters that cannot
	// produce a document (non-positive copies/grid, no usable page area).
	ErrInvalidExportParameters = errors.New("invalid export parameters")

	// ErrSurfaceUnavailable reports that no drawing surface could be
	// produced for the template. Fatal for the call, no partial output.
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

	// ErrEncodingFailure reports a failed final encoding step.
	ErrEncodingFailure = errors.New("artifact encoding failed")
)

// Artifact is a finished export: complete bytes plus a suggested filename.
type Artifact struct {
	Filename string
	Data     []byte
}

// Sink receives finished artifacts. Storage and download are the sink's
// concern, not the engine's.
type Sink interface {
	Store(a Artifact) error
}

// DirSink writes artifacts into a directory, creating it when needed.
type DirSink struct {
	Dir string
}

func (s DirSink) Store(a Artifact) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, a.Filename), a.Data, 0o644)
}
