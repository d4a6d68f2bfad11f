package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConditionalAgainstStores(t *testing.T) {
	t.Parallel()

	db := NewVarStore()
	db.SetText("state", "play")
	db.SetFloat("temp", 81)
	dbp := NewVarStore()
	dbp.SetText("state", "stop")
	log := &NoOpLogger{}

	require.True(t, NewConditional(`db.state == 'play'`).Eval(db, dbp, log))
	require.True(t, NewConditional(`db.state != dbp.state`).Eval(db, dbp, log))
	require.True(t, NewConditional(`db.temp > 80 and db.state == 'play'`).Eval(db, dbp, log))
	require.False(t, NewConditional(`db.temp < 80 or db.state == 'stop'`).Eval(db, dbp, log))
	require.True(t, NewConditional(`not (db.state == 'stop')`).Eval(db, dbp, log))
}

func TestConditionalLiterals(t *testing.T) {
	t.Parallel()

	log := &NoOpLogger{}
	require.True(t, NewConditional("True").Eval(nil, nil, log))
	require.False(t, NewConditional("False").Eval(nil, nil, log))
	require.True(t, NewConditional("true").Eval(nil, nil, log))
	require.True(t, NewConditional("").Eval(nil, nil, log), "empty conditional is always active")
}

func TestConditionalFailuresEvaluateFalse(t *testing.T) {
	t.Parallel()

	db := NewVarStore()
	log := &NoOpLogger{}
	require.False(t, NewConditional("this is not an expression ((").Eval(db, nil, log))
	require.False(t, NewConditional("42").Eval(db, nil, log), "non-boolean result is false")
	require.False(t, NewConditional(`db.missing == 'x'`).Eval(db, nil, log))
}
