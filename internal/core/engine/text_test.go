package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextChangeDetection(t *testing.T) {
	t.Parallel()

	store := NewVarStore()
	store.SetText("name", "Rye IPA")

	w, err := NewText(TextConfig{
		Format: "{0}",
		Tokens: []string{"name"},
		Font:   testFont(t),
	}, store, nil)
	require.NoError(t, err)

	require.False(t, w.Update(false), "no variable changed since construction render")
	require.False(t, w.Update(false), "idempotent while unchanged")

	store.SetText("name", "Belgian Ale")
	require.True(t, w.Update(false), "variable change must trigger a re-render")
	require.False(t, w.Update(false))
}

func TestTextMonospaceCentering(t *testing.T) {
	t.Parallel()

	store := NewVarStore()
	store.SetText("v", "I")

	w, err := NewText(TextConfig{
		Format: "{0}",
		Tokens: []string{"v"},
		Font:   testFont(t),
	}, store, nil)
	require.NoError(t, err)

	require.Equal(t, 5, w.Width())
	require.Equal(t, 8, w.Height())
	img := w.Image()
	for y := 0; y < 8; y++ {
		for x := 0; x < 5; x++ {
			want := 0
			if x == 2 {
				want = 1
			}
			require.Equalf(t, want, img.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestTextVarWidthAdvances(t *testing.T) {
	t.Parallel()

	store := NewVarStore()
	store.SetText("v", "IW")

	w, err := NewText(TextConfig{
		Format:   "{0}",
		Tokens:   []string{"v"},
		Font:     testFont(t),
		VarWidth: true,
	}, store, nil)
	require.NoError(t, err)

	// 'I' advances 1, 'W' advances 5.
	require.Equal(t, 6, w.Width())
	require.Equal(t, 1, w.Image().At(0, 0))
}

func TestTextJustifyAndMultiline(t *testing.T) {
	t.Parallel()

	store := NewVarStore()
	store.SetText("v", "I\nWWW")

	w, err := NewText(TextConfig{
		Format: "{0}",
		Tokens: []string{"v"},
		Font:   testFont(t),
		Just:   JustRight,
	}, store, nil)
	require.NoError(t, err)

	require.Equal(t, 15, w.Width(), "widest line is three cells")
	require.Equal(t, 16, w.Height(), "two lines of cell height")

	// First line is a single right-justified cell: columns 0..9 blank.
	require.Equal(t, 0, w.Image().At(0, 3))
	require.Equal(t, 1, w.Image().At(12, 3), "the centered 'I' column of the last cell")
	// Second line fills the width.
	require.Equal(t, 1, w.Image().At(0, 11))
}

func TestTextMinSizeAndMaxSize(t *testing.T) {
	t.Parallel()

	store := NewVarStore()
	store.SetText("v", "WWWW")

	w, err := NewText(TextConfig{
		Format:    "{0}",
		Tokens:    []string{"v"},
		Font:      testFont(t),
		MinWidth:  10,
		MinHeight: 8,
	}, store, nil)
	require.NoError(t, err)

	// Four cells measure 20 wide; the crop brings the image back to the
	// requested floor while MaxSize keeps the natural measurement.
	require.Equal(t, 10, w.Width())
	require.Equal(t, 8, w.Height())
	mw, mh := w.MaxSize()
	require.Equal(t, 20, mw)
	require.Equal(t, 8, mh)
}

func TestTextMissingVariableRendersVarErr(t *testing.T) {
	t.Parallel()

	store := NewVarStore()
	w, err := NewText(TextConfig{
		Format: "{0}",
		Tokens: []string{"ghost"},
		Font:   testFont(t),
	}, store, nil)
	require.NoError(t, err)

	// "VarErr" is six monospace cells wide.
	require.Equal(t, 30, w.Width())

	// A missing variable keeps the widget permanently dirty.
	require.True(t, w.Update(false))
}

func TestFormatTemplate(t *testing.T) {
	t.Parallel()

	out, err := formatTemplate("{0} and {1}", []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, "a and b", out)

	out, err = formatTemplate("{} {} {0}", []string{"x", "y"})
	require.NoError(t, err)
	require.Equal(t, "x y x", out)

	out, err = formatTemplate("{{literal}}", nil)
	require.NoError(t, err)
	require.Equal(t, "{literal}", out)

	_, err = formatTemplate("{5}", []string{"a"})
	require.Error(t, err)

	_, err = formatTemplate("{oops", []string{"a"})
	require.Error(t, err)
}
