package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const defaultDPI = 72

// Font wraps a TrueType font with pixel-accurate measurement helpers,
// the sizing surface the layout tree's leaf probing needs.
type Font struct {
	tt            *truetype.Font // underlying TrueType font
	sizePt        float64        // logical font size in points
	dpi           float64        // dots per inch scaling
	letterPercent float64        // tracking as percent of font size
}

// Loading

// LoadFont loads a .ttf file from disk and returns a Font object at the given point size.
// 1pt = 1/72 inch. Defaults to 72 DPI (1pt = 1px).
func LoadFont(path string, sizePt float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, sizePt)
}

// LoadFontFromBytes parses a TrueType font from memory.
// Useful for embedding fonts or loading from resources.
func LoadFontFromBytes(data []byte, sizePt float64) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	f := &Font{
		tt:            ttf,
		dpi:           defaultDPI,
		letterPercent: 0.0,
	}
	return f.SetFontSizePt(sizePt), nil
}

// MustLoadFont loads a .ttf font from disk and panics on error.
// Intended for static initialization at package level.
func MustLoadFont(path string, sizePt float64) *Font {
	f, err := LoadFont(path, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// MustLoadFontFromBytes parses a TrueType font from bytes and panics on error.
// Used for embedding fonts with Go’s //go:embed directive.
func MustLoadFontFromBytes(data []byte, sizePt float64) *Font {
	f, err := LoadFontFromBytes(data, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// Configuration

// SetFontSizePt sets the font size in points (1pt = 1/72 inch).
// Ensures a minimum value > 0 to avoid invalid scaling.
func (f *Font) SetFontSizePt(pt float64) *Font {
	if pt <= 0 {
		pt = 0.01
	}
	f.sizePt = pt
	return f
}

// Accessors

// HeightPx returns the font size converted to pixels for the current DPI.
func (f *Font) HeightPx() float64 { return f.sizePt * f.dpi / 72.0 }

// cacheKey builds a unique cache key for font face reuse.
func (f *Font) cacheKey() string {
	return fmt.Sprintf("%p_%.3f_%.1f", f.tt, f.sizePt, f.dpi)
}

// Face caching

// Face returns a truetype.Face configured with the current size and DPI.
// Faces are cached to prevent redundant allocations and ensure consistent rendering.
func (f *Font) Face() font.Face {
	key := f.cacheKey()
	if face, ok := fontCache.get(key); ok {
		return face
	}
	face := truetype.NewFace(f.tt, &truetype.Options{
		Size:    f.sizePt,
		DPI:     f.dpi,
		Hinting: font.HintingNone,
	})
	fontCache.put(key, face)
	return face
}

// Metrics

// TrackingPx returns the tracking offset (in pixels) applied between glyphs.
func (f *Font) TrackingPx() float64 {
	return (f.letterPercent / 100.0) * f.HeightPx()
}

// LineHeightPx returns the total line height (ascent + descent + leading) in pixels.
func (f *Font) LineHeightPx() float64 {
	m := f.Face().Metrics()
	return float64(m.Height >> 6)
}

// Measurement

// MeasureString measures the pixel width and height of a single-line string.
// Width includes glyph advances and tracking between characters.
// Height equals the line height in pixels.
func (f *Font) MeasureString(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	face := f.Face()
	adv := font.MeasureString(face, s)
	w = float64(adv >> 6)
	runes := []rune(s)
	if len(runes) > 1 {
		w += float64(len(runes)-1) * f.TrackingPx()
	}
	h = f.LineHeightPx()
	return
}
