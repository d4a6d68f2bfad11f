package raster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackRoundTrip(t *testing.T) {
	t.Parallel()

	img := New(10, 12, 0)
	img.Line(0, 0, 9, 11, 1)
	img.Rect(2, 2, 7, 9, 0, 1)

	frame := Pack(img, 0, 0, 10, 12)
	require.Len(t, frame, 2, "12 rows of pixels should pack into 2 byte rows")
	require.Len(t, frame[0], 10)

	back := Unpack(frame, 10, 12)
	require.True(t, img.Equal(back), "unpacking the packed frame must reproduce the source")
}

func TestPackBitOrder(t *testing.T) {
	t.Parallel()

	img := New(1, 8, 0)
	img.Set(0, 0, 1)
	img.Set(0, 7, 1)

	frame := Pack(img, 0, 0, 1, 8)
	if frame[0][0] != 0x81 {
		t.Fatalf("expected LSB-first byte 0x81, got %#x", frame[0][0])
	}
}

func TestPackSubregion(t *testing.T) {
	t.Parallel()

	img := New(8, 8, 0)
	img.Set(4, 2, 1)

	frame := Pack(img, 4, 2, 2, 4)
	require.Equal(t, byte(1), frame[0][0])
	require.Equal(t, byte(0), frame[0][1])
}

func TestRenderFrameLayout(t *testing.T) {
	t.Parallel()

	img := New(3, 8, 0)
	img.Set(1, 0, 1)
	out := RenderFrame(Pack(img, 0, 0, 3, 8), 3, 1)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 10, "border + 8 pixel rows + border")
	require.Equal(t, "|---|", lines[0])
	require.Equal(t, "| * |", lines[1])
	require.Equal(t, "|   |", lines[2])
	require.Equal(t, "|---|", lines[9])
}
