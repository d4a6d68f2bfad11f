package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanvasRepaintsOnChildChange(t *testing.T) {
	t.Parallel()

	store := NewVarStore()
	store.SetText("name", "I")

	text, err := NewText(TextConfig{
		Format: "{0}",
		Tokens: []string{"name"},
		Font:   testFont(t),
	}, store, nil)
	require.NoError(t, err)

	c, err := NewCanvas(40, 16)
	require.NoError(t, err)
	c.Add(text, 2, 4, 0, 0)

	require.False(t, c.Update(false), "nothing changed")
	require.Equal(t, 1, c.Image().At(4, 7), "text painted at its offset")

	store.SetText("name", "W")
	require.True(t, c.Update(false), "child change propagates")
	require.Equal(t, 1, c.Image().At(2, 7), "repaint shows the new glyph")
}

func TestCanvasResetForcesRepaint(t *testing.T) {
	t.Parallel()

	line, err := NewLine(9, 0, 1)
	require.NoError(t, err)

	c, err := NewCanvas(20, 8)
	require.NoError(t, err)
	c.Add(line, 0, 0, 0, 0)

	// Scribble on the canvas, then reset: the repaint wipes it.
	c.Image().Set(15, 5, 1)
	require.False(t, c.Update(false))
	require.Equal(t, 1, c.Image().At(15, 5), "no repaint without changes")

	require.True(t, c.Update(true))
	require.Equal(t, 0, c.Image().At(15, 5), "reset wipes and repaints")
	require.Equal(t, 1, c.Image().At(5, 0))
}

func TestCanvasClipLimitsChild(t *testing.T) {
	t.Parallel()

	block, err := NewRectangle(9, 9, 1, 1)
	require.NoError(t, err)

	c, err := NewCanvas(20, 20)
	require.NoError(t, err)
	c.Add(block, 0, 0, 4, 4)

	require.Equal(t, 1, c.Image().At(3, 3))
	require.Equal(t, 0, c.Image().At(5, 5), "clipped region stays blank")
}

func TestCanvasInsertionOrderOverwrites(t *testing.T) {
	t.Parallel()

	fill, err := NewRectangle(7, 7, 1, 1)
	require.NoError(t, err)
	hollow, err := NewRectangle(7, 7, 0, 1)
	require.NoError(t, err)

	c, err := NewCanvas(8, 8)
	require.NoError(t, err)
	c.Add(fill, 0, 0, 0, 0)
	c.Add(hollow, 0, 0, 0, 0)

	require.Equal(t, 0, c.Image().At(3, 3), "later child wins at overlap")
	require.Equal(t, 1, c.Image().At(0, 0))
}
