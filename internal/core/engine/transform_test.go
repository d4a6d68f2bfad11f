package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBooleanTransforms(t *testing.T) {
	t.Parallel()

	log := &NoOpLogger{}
	require.Equal(t, "on", ApplyTransforms(Bool(true), "power|onoff", log).String())
	require.Equal(t, "off", ApplyTransforms(Bool(false), "power|onoff", log).String())
	require.Equal(t, "yes", ApplyTransforms(Bool(true), "power|yesno", log).String())
	require.Equal(t, "false", ApplyTransforms(Bool(false), "power|truefalse", log).String())
}

func TestBooleanTransformTypeMismatchReturnsOriginal(t *testing.T) {
	t.Parallel()

	v := ApplyTransforms(Text("hello"), "v|onoff", &NoOpLogger{})
	require.Equal(t, Text("hello"), v)
}

func TestIntTransform(t *testing.T) {
	t.Parallel()

	log := &NoOpLogger{}
	require.Equal(t, Int(3), ApplyTransforms(Float(3.9), "v|int", log))
	require.Equal(t, Int(42), ApplyTransforms(Text("42"), "v|int", log))
	require.Equal(t, Int(0), ApplyTransforms(Text("not a number"), "v|int", log))
	require.Equal(t, Int(1), ApplyTransforms(Bool(true), "v|int", log))
}

func TestStringTransforms(t *testing.T) {
	t.Parallel()

	log := &NoOpLogger{}
	require.Equal(t, "RYE IPA", ApplyTransforms(Text("Rye IPA"), "v|upper", log).String())
	require.Equal(t, "rye ipa", ApplyTransforms(Text("Rye IPA"), "v|lower", log).String())
	require.Equal(t, "Rye ipa", ApplyTransforms(Text("rye IPA"), "v|capitalize", log).String())
	require.Equal(t, "Rye Ipa", ApplyTransforms(Text("rye ipa"), "v|title", log).String())

	// Non-text input passes through untouched.
	require.Equal(t, Int(7), ApplyTransforms(Int(7), "v|upper", log))
}

func TestTransformChaining(t *testing.T) {
	t.Parallel()

	v := ApplyTransforms(Bool(true), "v|onoff|upper", &NoOpLogger{})
	require.Equal(t, "ON", v.String())
}

func TestBigCharsTransform(t *testing.T) {
	t.Parallel()

	log := &NoOpLogger{}
	row0 := ApplyTransforms(Text("12"), "v|bigchars+0", log).String()
	row1 := ApplyTransforms(Text("12"), "v|bigchars+1", log).String()
	require.NotEmpty(t, row0)
	require.Equal(t, len([]rune(row0)), len([]rune(row1)))

	require.Equal(t, "Err", ApplyTransforms(Text("12"), "v|bigchars+9", log).String())
	require.Equal(t, "Err", ApplyTransforms(Text("12"), "v|bigchars", log).String())
	require.Equal(t, "Err", ApplyTransforms(Text("12"), "v|bigchars+x", log).String())
}

func TestBigPlayTransform(t *testing.T) {
	t.Parallel()

	out := ApplyTransforms(Text("play"), "v|bigplay+0", &NoOpLogger{}).String()
	require.Contains(t, out, "  ", "symbol and page halves are joined by two spaces")
}

func TestUnknownTransformReturnsOriginal(t *testing.T) {
	t.Parallel()

	require.Equal(t, Text("x"), ApplyTransforms(Text("x"), "v|sparkle", &NoOpLogger{}))
}

func TestTokenName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "volume", TokenName("volume|int|upper"))
	require.Equal(t, "volume", TokenName("volume"))
}
