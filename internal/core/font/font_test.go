package font

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmarquee/marquee/internal/core/raster"
)

func TestNewPackRequiresFallback(t *testing.T) {
	t.Parallel()

	glyphs := map[rune]*raster.Image{'A': raster.New(3, 8, 0)}
	_, err := NewPack(5, 8, glyphs)
	require.Error(t, err)

	glyphs[Fallback] = raster.New(5, 8, 0)
	p, err := NewPack(5, 8, glyphs)
	require.NoError(t, err)
	require.True(t, p.Has('A'))
	require.False(t, p.Has('B'))
}

func TestGlyphFallsBackToQuestionMark(t *testing.T) {
	t.Parallel()

	q := raster.New(5, 8, 1)
	p, err := NewPack(5, 8, map[rune]*raster.Image{Fallback: q})
	require.NoError(t, err)

	g := p.Glyph('Z')
	require.Equal(t, 5, g.Width)
	require.True(t, g.Image.Equal(q))
}

func TestNewPackRejectsWrongGlyphHeight(t *testing.T) {
	t.Parallel()

	glyphs := map[rune]*raster.Image{Fallback: raster.New(5, 7, 0)}
	_, err := NewPack(5, 8, glyphs)
	require.Error(t, err)
}

func TestFace5x8CoversASCIIAndBlocks(t *testing.T) {
	t.Parallel()

	p := Face5x8()
	cw, ch := p.CellSize()
	require.Equal(t, 5, cw)
	require.Equal(t, 8, ch)

	for r := rune(' '); r <= '~'; r++ {
		require.True(t, p.Has(r), "face should carry %q", r)
	}
	require.True(t, p.Has('█'))
	require.True(t, p.Has('▀'))
	require.True(t, p.Has('▄'))

	// Full block fills the whole cell with no spacing column.
	g := p.Glyph('█')
	require.Equal(t, 5, g.Width)
	for y := 0; y < 8; y++ {
		require.Equal(t, 1, g.Image.At(4, y))
	}

	// Narrower glyphs keep a trailing spacing column.
	i := p.Glyph('I')
	require.Equal(t, 5, i.Width)
	for y := 0; y < 8; y++ {
		require.Equal(t, 0, i.Image.At(4, y), "expected trailing spacing column on 'I'")
	}
}

func TestBigCharsRowsAlign(t *testing.T) {
	t.Parallel()

	rows := BigChars("12:34")
	require.Len(t, rows, BigCharRows)
	require.Equal(t, len([]rune(rows[0])), len([]rune(rows[1])), "rows must stay column-aligned")
}

func TestBigPlayKnownAndUnknown(t *testing.T) {
	t.Parallel()

	require.Len(t, BigPlay("symbol"), BigCharRows)
	require.Equal(t, []string{" ", " "}, BigPlay("nope"))
}
