package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueKindsAndRendering(t *testing.T) {
	t.Parallel()

	require.Equal(t, "true", Bool(true).String())
	require.Equal(t, "42", Int(42).String())
	require.Equal(t, "7.2", Float(7.2).String())
	require.Equal(t, "Rye IPA", Text("Rye IPA").String())

	require.Equal(t, 1.0, Bool(true).Number())
	require.Equal(t, 42.0, Int(42).Number())
	require.Equal(t, 3.5, Text("3.5").Number())
	require.Equal(t, 0.0, Text("n/a").Number())
}

func TestValueEqualityIsKindAware(t *testing.T) {
	t.Parallel()

	require.True(t, Int(1).Equal(Int(1)))
	require.False(t, Int(1).Equal(Float(1)))
	require.False(t, Text("1").Equal(Int(1)))
}

func TestVarStoreSnapshotIsIsolated(t *testing.T) {
	t.Parallel()

	s := NewVarStore()
	s.SetText("name", "Rye IPA")
	snap := s.Snapshot()

	s.SetText("name", "Belgian Ale")
	require.Equal(t, Text("Rye IPA"), snap["name"])

	v, ok := s.Get("name")
	require.True(t, ok)
	require.Equal(t, Text("Belgian Ale"), v)
}

func TestVarStoreCopyFrom(t *testing.T) {
	t.Parallel()

	live := NewVarStore()
	prev := NewVarStore()
	live.SetInt("weight", 423)

	prev.CopyFrom(live)
	v, ok := prev.Get("weight")
	require.True(t, ok)
	require.Equal(t, Int(423), v)

	live.SetInt("weight", 390)
	v, _ = prev.Get("weight")
	require.Equal(t, Int(423), v, "previous store keeps the old value")
}

func TestVarStoreEnvUsesNativeTypes(t *testing.T) {
	t.Parallel()

	s := NewVarStore()
	s.SetBool("playing", true)
	s.SetInt("count", 3)
	s.SetFloat("temp", 81.5)
	s.SetText("state", "play")

	env := s.Env()
	require.Equal(t, true, env["playing"])
	require.Equal(t, 3, env["count"])
	require.Equal(t, 81.5, env["temp"])
	require.Equal(t, "play", env["state"])
}
