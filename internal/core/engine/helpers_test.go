package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmarquee/marquee/internal/core/font"
	"github.com/openmarquee/marquee/internal/core/raster"
)

// testFont builds a 5×8 pack with fully-lit glyphs of known widths: 'I' is
// a single column, 'W' spans the whole cell, and every other code point
// falls back to a 3-wide '?'.
func testFont(t *testing.T) *font.Pack {
	t.Helper()
	solid := func(w int) *raster.Image {
		img := raster.New(w, 8, 1)
		return img
	}
	pack, err := font.NewPack(5, 8, map[rune]*raster.Image{
		'?': solid(3),
		'I': solid(1),
		'W': solid(5),
		'A': solid(3),
	})
	require.NoError(t, err)
	return pack
}
