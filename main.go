// Command cartas renders card templates to raster images, re-loadable
// layout documents and tiled print PDFs. Templates are loaded either from a
// layout JSON document or from the authoring DSL (.card).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kando-74/cartas/dsl"
	"github.com/kando-74/cartas/export"
	"github.com/kando-74/cartas/fonts"
	"github.com/kando-74/cartas/scene"
)

func main() {
	input := flag.String("in", "examples/demo.card", "template input (.card DSL or layout .json)")
	outDir := flag.String("out", "output", "output directory")
	format := flag.String("format", "png", "export format: png, pdf or layout")
	scale := flag.Float64("scale", 1, "render scale for png output")
	copies := flag.Int("copies", 1, "number of copies to tile (pdf)")
	columns := flag.Int("columns", 2, "grid columns per page (pdf)")
	rows := flag.Int("rows", 2, "grid rows per page (pdf)")
	page := flag.String("page", "A4", fmt.Sprintf("page size (%s)", strings.Join(export.PageSizeNames(), ", ")))
	margin := flag.Float64("margin", 10, "page margin in millimeters (pdf)")
	printScale := flag.Float64("print-scale", export.DefaultPrintScale, "render scale for pdf output")
	dataJSON := flag.String("data", "", "JSON data bound to ${path} placeholders in DSL text")
	flag.Parse()

	var data any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &data); err != nil {
			log.Fatalf("parse data JSON: %v", err)
		}
	}

	artifact, err := run(*input, *format, data, export.PrintOptions{
		Copies:   *copies,
		Columns:  *columns,
		Rows:     *rows,
		PageSize: *page,
		MarginMM: *margin,
		Scale:    *printScale,
	}, *scale, export.DirSink{Dir: *outDir})
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.WithField("file", filepath.Join(*outDir, artifact.Filename)).Info("exported")
}

// run chains loading, font readiness and export.
func run(inputPath, format string, data any, printOpts export.PrintOptions, scale float64, sink export.Sink) (export.Artifact, error) {
	tpl, err := load(inputPath, data)
	if err != nil {
		return export.Artifact{}, err
	}

	// Fonts must be ready before any render so measured line widths match
	// the drawn glyphs.
	if err := fonts.Ensure(); err != nil {
		return export.Artifact{}, fmt.Errorf("load fonts: %w", err)
	}

	var artifact export.Artifact
	switch format {
	case "png":
		artifact, err = export.PNG(tpl, scale)
	case "pdf":
		artifact, err = export.PrintPDF(tpl, printOpts)
	case "layout":
		artifact, err = export.Layout(tpl)
	default:
		return export.Artifact{}, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return export.Artifact{}, err
	}

	if err := sink.Store(artifact); err != nil {
		return export.Artifact{}, fmt.Errorf("store artifact: %w", err)
	}
	return artifact, nil
}

func load(path string, data any) (*scene.Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	if filepath.Ext(path) == ".json" {
		return scene.DecodeLayout(raw)
	}
	doc, err := dsl.ParseString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse DSL %s: %w", path, err)
	}
	return dsl.Build(doc, data)
}
