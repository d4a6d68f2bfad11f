// Package font defines the glyph packs consumed by the text renderer: a
// fixed cell size plus a code-point → glyph map. Packs are read-only after
// construction and safe to share between widgets.
package font

import (
	"fmt"

	"github.com/openmarquee/marquee/internal/core/raster"
)

// Fallback is substituted for any code point a pack does not carry.
const Fallback = '?'

// Glyph is a rendered character: its image plus the native advance width,
// which may be narrower than the pack's cell width.
type Glyph struct {
	Image *raster.Image
	Width int
}

// Pack maps code points to glyphs within a fixed cell.
type Pack struct {
	cellW, cellH int
	glyphs       map[rune]Glyph
}

// NewPack builds a pack from glyph images. Every image must be cellH tall;
// its width becomes the glyph's native width. The fallback glyph '?' is
// mandatory.
func NewPack(cellW, cellH int, glyphs map[rune]*raster.Image) (*Pack, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("font: invalid cell size %dx%d", cellW, cellH)
	}
	p := &Pack{cellW: cellW, cellH: cellH, glyphs: make(map[rune]Glyph, len(glyphs))}
	for r, img := range glyphs {
		if img == nil {
			return nil, fmt.Errorf("font: glyph %q has no image", r)
		}
		if img.Height() != cellH {
			return nil, fmt.Errorf("font: glyph %q is %d tall, want %d", r, img.Height(), cellH)
		}
		p.glyphs[r] = Glyph{Image: img, Width: img.Width()}
	}
	if _, ok := p.glyphs[Fallback]; !ok {
		return nil, fmt.Errorf("font: pack is missing the %q fallback glyph", Fallback)
	}
	return p, nil
}

// CellSize returns the cell width and height.
func (p *Pack) CellSize() (int, int) { return p.cellW, p.cellH }

// Has reports whether the pack carries r directly.
func (p *Pack) Has(r rune) bool {
	_, ok := p.glyphs[r]
	return ok
}

// Glyph returns the glyph for r, or the fallback glyph when r is absent.
func (p *Pack) Glyph(r rune) Glyph {
	if g, ok := p.glyphs[r]; ok {
		return g
	}
	return p.glyphs[Fallback]
}
