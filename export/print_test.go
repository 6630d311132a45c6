package export

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/kando-74/cartas/scene"
)

func testTemplate() *scene.Template {
	tpl := scene.NewTemplate("Print Me", 600, 800)
	el, _ := scene.NewElement(scene.KindRectangle, tpl)
	tpl.Elements = append(tpl.Elements, el)
	return tpl
}

func TestPlanTilesPageCount(t *testing.T) {
	cases := []struct {
		copies, columns, rows int
		wantPages             int
	}{
		{1, 1, 1, 1},
		{4, 2, 2, 1},
		{5, 2, 2, 2},
		{9, 2, 2, 3},
		{7, 3, 1, 3},
		{12, 3, 4, 1},
	}
	for _, tc := range cases {
		placements, pages, err := planTiles(tc.copies, tc.columns, tc.rows, pageSizes["A4"], 10*ptPerMM, 600, 800)
		if err != nil {
			t.Fatalf("planTiles(%d,%d,%d): %v", tc.copies, tc.columns, tc.rows, err)
		}
		want := int(math.Ceil(float64(tc.copies) / float64(tc.columns*tc.rows)))
		if want != tc.wantPages {
			t.Fatalf("test-case inconsistency for %+v", tc)
		}
		if pages != tc.wantPages {
			t.Fatalf("pages = %d, want %d", pages, tc.wantPages)
		}
		if len(placements) != tc.copies {
			t.Fatalf("placed %d copies, want %d", len(placements), tc.copies)
		}
	}
}

func TestPlanTilesPartialLastPage(t *testing.T) {
	placements, pages, err := planTiles(5, 2, 2, pageSizes["A4"], 10*ptPerMM, 600, 800)
	if err != nil {
		t.Fatalf("planTiles: %v", err)
	}
	if pages != 2 {
		t.Fatalf("pages = %d, want 2", pages)
	}
	var onFirst, onSecond int
	for _, pl := range placements {
		switch pl.Page {
		case 0:
			onFirst++
		case 1:
			onSecond++
		}
	}
	if onFirst != 4 || onSecond != 1 {
		t.Fatalf("page fill %d/%d, want 4/1", onFirst, onSecond)
	}
	// The lone copy on page 2 occupies the same slot as the first copy on
	// page 1: row 0, column 0.
	if placements[4].X != placements[0].X || placements[4].Y != placements[0].Y {
		t.Fatalf("fifth copy at (%g,%g), want slot of first copy (%g,%g)",
			placements[4].X, placements[4].Y, placements[0].X, placements[0].Y)
	}
	// Row 0 sits above row 1 in the page's bottom-left coordinate system.
	if placements[0].Y <= placements[2].Y {
		t.Fatalf("row 0 (y=%g) must be above row 1 (y=%g)", placements[0].Y, placements[2].Y)
	}
	// Column 0 sits left of column 1.
	if placements[0].X >= placements[1].X {
		t.Fatalf("column order wrong: %g >= %g", placements[0].X, placements[1].X)
	}
}

func TestPlanTilesAspectRatio(t *testing.T) {
	cases := []struct{ cardW, cardH float64 }{
		{600, 800}, // portrait card
		{800, 600}, // landscape card
		{500, 500}, // square
	}
	for _, tc := range cases {
		placements, _, err := planTiles(1, 2, 3, pageSizes["Letter"], 12*ptPerMM, tc.cardW, tc.cardH)
		if err != nil {
			t.Fatalf("planTiles: %v", err)
		}
		pl := placements[0]
		gotRatio := pl.Width / pl.Height
		wantRatio := tc.cardW / tc.cardH
		if math.Abs(gotRatio-wantRatio) > 1e-9 {
			t.Fatalf("aspect %g, want %g", gotRatio, wantRatio)
		}
		page := pageSizes["Letter"]
		cellW := (page.Width - 2*12*ptPerMM) / 2
		cellH := (page.Height - 2*12*ptPerMM) / 3
		if pl.Width > cellW+1e-9 || pl.Height > cellH+1e-9 {
			t.Fatalf("draw size %gx%g exceeds cell %gx%g", pl.Width, pl.Height, cellW, cellH)
		}
	}
}

func TestPlanTilesRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name                  string
		copies, columns, rows int
		marginMM              float64
	}{
		{"zero columns", 5, 0, 2, 10},
		{"zero rows", 5, 2, 0, 10},
		{"zero copies", 0, 2, 2, 10},
		{"negative copies", -1, 2, 2, 10},
		{"negative margin", 5, 2, 2, -1},
		{"margin swallows page", 5, 2, 2, 120},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := planTiles(tc.copies, tc.columns, tc.rows, pageSizes["A4"], tc.marginMM*ptPerMM, 600, 800)
			if !errors.Is(err, ErrInvalidExportParameters) {
				t.Fatalf("want ErrInvalidExportParameters, got %v", err)
			}
		})
	}
}

func TestPrintPDFProducesDocument(t *testing.T) {
	artifact, err := PrintPDF(testTemplate(), PrintOptions{
		Copies:   5,
		Columns:  2,
		Rows:     2,
		PageSize: "A4",
		MarginMM: 10,
	})
	if err != nil {
		t.Fatalf("PrintPDF: %v", err)
	}
	if artifact.Filename != "print-me.pdf" {
		t.Fatalf("filename = %q", artifact.Filename)
	}
	if !bytes.HasPrefix(artifact.Data, []byte("%PDF")) {
		t.Fatalf("artifact is not a PDF")
	}
}

func TestPrintPDFRejectsInvalid(t *testing.T) {
	_, err := PrintPDF(testTemplate(), PrintOptions{Copies: 5, Columns: 0, Rows: 2, PageSize: "A4"})
	if !errors.Is(err, ErrInvalidExportParameters) {
		t.Fatalf("want ErrInvalidExportParameters, got %v", err)
	}
	_, err = PrintPDF(testTemplate(), PrintOptions{Copies: 5, Columns: 2, Rows: 2, PageSize: "A3"})
	if !errors.Is(err, ErrInvalidExportParameters) {
		t.Fatalf("unknown page size: want ErrInvalidExportParameters, got %v", err)
	}
}
