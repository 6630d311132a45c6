package export

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/kando-74/cartas/render"
	"github.com/kando-74/cartas/scene"
)

// Conversion between points (the print-document unit) and the canvas'
// millimeter units.
const (
	ptPerMM = 72.0 / 25.4
	mmPerPt = 25.4 / 72.0
)

// DefaultPrintScale is the render scale used for print output when the
// caller does not ask for one; 2 keeps cards sharp on paper.
const DefaultPrintScale = 2.0

// PageSize is a print page preset, in points.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

var pageSizes = map[string]PageSize{
	"A4":     {Name: "A4", Width: 595.28, Height: 841.89},
	"Letter": {Name: "Letter", Width: 612, Height: 792},
}

// PageSizeNames lists the supported page presets.
func PageSizeNames() []string { return []string{"A4", "Letter"} }

// PrintOptions configures the tiled print export.
type PrintOptions struct {
	Copies   int
	Columns  int
	Rows     int
	PageSize string  // "A4" or "Letter"
	MarginMM float64 // uniform page margin in millimeters
	Scale    float64 // render scale; <1 falls back to DefaultPrintScale
}

// placement is one placed copy in page coordinates: points, origin at the
// page's bottom-left corner, x/y addressing the copy's bottom-left corner.
type placement struct {
	Page   int
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// planTiles computes the placements for all copies across
// ceil(copies/(columns*rows)) pages, row-major with row 0 at the top. The
// draw size preserves the card's aspect ratio and fits its grid cell:
// width-matched first, height-matched when that overflows; centered on both
// axes. The last page may be partial.
func planTiles(copies, columns, rows int, page PageSize, marginPt, cardWidth, cardHeight float64) ([]placement, int, error) {
	if copies <= 0 || columns <= 0 || rows <= 0 {
		return nil, 0, fmt.Errorf("%w: copies, columns and rows must be positive (got %d, %d, %d)", ErrInvalidExportParameters, copies, columns, rows)
	}
	if marginPt < 0 {
		return nil, 0, fmt.Errorf("%w: negative margin", ErrInvalidExportParameters)
	}
	usableWidth := page.Width - 2*marginPt
	usableHeight := page.Height - 2*marginPt
	if usableWidth <= 0 || usableHeight <= 0 {
		return nil, 0, fmt.Errorf("%w: margins leave no usable area on %s", ErrInvalidExportParameters, page.Name)
	}

	cellWidth := usableWidth / float64(columns)
	cellHeight := usableHeight / float64(rows)
	drawWidth := cellWidth
	drawHeight := drawWidth * cardHeight / cardWidth
	if drawHeight > cellHeight {
		drawHeight = cellHeight
		drawWidth = drawHeight * cardWidth / cardHeight
	}

	perPage := columns * rows
	pages := (copies + perPage - 1) / perPage

	placements := make([]placement, 0, copies)
	for i := 0; i < copies; i++ {
		slot := i % perPage
		row := slot / columns
		col := slot % columns
		placements = append(placements, placement{
			Page:   i / perPage,
			X:      marginPt + float64(col)*cellWidth + (cellWidth-drawWidth)/2,
			Y:      marginPt + usableHeight - float64(row)*cellHeight - cellHeight + (cellHeight-drawHeight)/2,
			Width:  drawWidth,
			Height: drawHeight,
		})
	}
	return placements, pages, nil
}

// PrintPDF renders the template once and tiles the raster across a
// multi-page PDF. Copies are visually identical by construction.
func PrintPDF(t *scene.Template, opts PrintOptions) (Artifact, error) {
	page, ok := pageSizes[opts.PageSize]
	if !ok {
		return Artifact{}, fmt.Errorf("%w: unknown page size %q", ErrInvalidExportParameters, opts.PageSize)
	}
	placements, pages, err := planTiles(opts.Copies, opts.Columns, opts.Rows, page, opts.MarginMM*ptPerMM, t.Width, t.Height)
	if err != nil {
		return Artifact{}, err
	}

	scale := opts.Scale
	if scale < 1 {
		scale = DefaultPrintScale
	}
	img, err := render.Rasterize(t.Clone(), scale)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}

	pageWidth := page.Width * mmPerPt
	pageHeight := page.Height * mmPerPt

	var buf bytes.Buffer
	writer := pdf.New(&buf, pageWidth, pageHeight, nil)
	writer.SetInfo(t.Name, "", "", "", "cartas")
	for pageIdx := 0; pageIdx < pages; pageIdx++ {
		if pageIdx > 0 {
			writer.NewPage(pageWidth, pageHeight)
		}
		c := canvas.New(pageWidth, pageHeight)
		ctx := canvas.NewContext(c)
		for _, pl := range placements {
			if pl.Page != pageIdx {
				continue
			}
			// The resolution maps the raster's pixel width onto the
			// placement width, which keeps the aspect ratio since
			// DrawImage scales uniformly.
			res := canvas.DPMM(float64(img.Bounds().Dx()) / (pl.Width * mmPerPt))
			ctx.DrawImage(pl.X*mmPerPt, pl.Y*mmPerPt, img, res)
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}
	return Artifact{Filename: SanitizeFilename(t.Name, ".pdf"), Data: buf.Bytes()}, nil
}
