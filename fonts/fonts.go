// Package fonts provides the built-in font families used by the renderer.
// Font bytes come from font data packages, so no font files ship with the
// binary. Ensure must have returned nil before any render call; it is the
// font-readiness signal the rasterizer relies on to keep measured line
// widths in sync with the drawn glyphs.
package fonts

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// Fallback is the family used when a template names an unknown font.
const Fallback = "Go"

type entry struct {
	family *canvas.FontFamily
	loaded map[canvas.FontStyle]bool
}

var (
	once     sync.Once
	loadErr  error
	families map[string]*entry
)

// Ensure loads all built-in families exactly once.
func Ensure() error {
	once.Do(func() { loadErr = load() })
	return loadErr
}

func load() error {
	families = map[string]*entry{}

	goFam, err := buildFamily("Go", map[canvas.FontStyle][]byte{
		canvas.FontRegular: goregular.TTF,
		canvas.FontMedium:  gomedium.TTF,
		canvas.FontBold:    gobold.TTF,
		canvas.FontItalic:  goitalic.TTF,
	})
	if err != nil {
		return err
	}
	families["Go"] = goFam

	lm, err := buildFamily("Latin Modern", map[canvas.FontStyle][]byte{
		canvas.FontRegular: lmroman10regular.TTF,
		canvas.FontBold:    lmroman10bold.TTF,
		canvas.FontItalic:  lmroman10italic.TTF,
	})
	if err != nil {
		return err
	}
	families["Latin Modern"] = lm
	return nil
}

func buildFamily(name string, fonts map[canvas.FontStyle][]byte) (*entry, error) {
	family := canvas.NewFontFamily(name)
	loaded := map[canvas.FontStyle]bool{}
	for style, data := range fonts {
		if err := family.LoadFont(data, 0, style); err != nil {
			return nil, fmt.Errorf("load font %s: %w", name, err)
		}
		loaded[style] = true
	}
	return &entry{family: family, loaded: loaded}, nil
}

// Face returns a font face for the named family at the given size in points,
// degrading the numeric weight to the nearest loaded style. Unknown family
// names fall back to Fallback.
func Face(familyName string, weight float64, sizePt float64, col color.Color) (*canvas.FontFace, error) {
	if err := Ensure(); err != nil {
		return nil, err
	}
	e, ok := families[familyName]
	if !ok {
		e = families[Fallback]
	}
	style := e.nearest(WeightStyle(weight))
	return e.family.Face(sizePt, col, style, canvas.FontNormal), nil
}

// WeightStyle maps a CSS-style numeric weight to a canvas font style.
func WeightStyle(weight float64) canvas.FontStyle {
	switch {
	case weight >= 900:
		return canvas.FontBlack
	case weight >= 800:
		return canvas.FontExtraBold
	case weight >= 700:
		return canvas.FontBold
	case weight >= 600:
		return canvas.FontSemiBold
	case weight >= 500:
		return canvas.FontMedium
	case weight > 0 && weight < 350:
		return canvas.FontLight
	default:
		return canvas.FontRegular
	}
}

// nearest degrades a desired style to one the family actually loaded.
func (e *entry) nearest(want canvas.FontStyle) canvas.FontStyle {
	order := []canvas.FontStyle{
		canvas.FontBlack,
		canvas.FontExtraBold,
		canvas.FontBold,
		canvas.FontSemiBold,
		canvas.FontMedium,
		canvas.FontLight,
	}
	start := 0
	for i, s := range order {
		if s == want {
			start = i
			break
		}
	}
	if want == canvas.FontRegular {
		return canvas.FontRegular
	}
	for _, s := range order[start:] {
		if e.loaded[s] {
			return s
		}
	}
	return canvas.FontRegular
}
