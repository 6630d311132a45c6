package export

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPNGDimensions(t *testing.T) {
	tpl := testTemplate()
	for _, scale := range []float64{1, 2, 3} {
		artifact, err := PNG(tpl, scale)
		if err != nil {
			t.Fatalf("PNG at scale %g: %v", scale, err)
		}
		img, err := png.Decode(bytes.NewReader(artifact.Data))
		if err != nil {
			t.Fatalf("decode at scale %g: %v", scale, err)
		}
		wantW := int(tpl.Width*scale + 0.5)
		wantH := int(tpl.Height*scale + 0.5)
		if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
			t.Fatalf("scale %g: got %dx%d, want %dx%d",
				scale, img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
		}
	}
}

func TestPNGScaleFloor(t *testing.T) {
	tpl := testTemplate()
	artifact, err := PNG(tpl, 0.25)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(artifact.Data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != int(tpl.Width) || img.Bounds().Dy() != int(tpl.Height) {
		t.Fatalf("sub-1 scale must fall back to 1:1, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if artifact.Filename != "print-me.png" {
		t.Fatalf("filename = %q", artifact.Filename)
	}
}
