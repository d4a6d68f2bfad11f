package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const validPage = `{
	"fonts": {"default": {"file": "builtin"}},
	"widgets": {
		"title": {"type": "text", "format": "{0}", "variables": ["name"], "font": "default"},
		"level": {"type": "progressbar", "value": "weight", "rangeval": [0, "capacity"], "size": [40, 6]},
		"divider": {"type": "line", "point": [99, 0]}
	},
	"canvases": {
		"main": {"size": [100, 16], "widgets": [
			{"name": "title", "x": 0, "y": 0},
			{"name": "level", "x": 0, "y": 10}
		]}
	},
	"sequences": [
		{"name": "play", "conditional": "db.state == 'play'", "coolingperiod": 0,
		 "canvases": [{"name": "main", "duration": 10}]}
	]
}`

func TestParseValidPage(t *testing.T) {
	t.Parallel()

	spec, err := Parse([]byte(validPage))
	require.NoError(t, err)
	require.Len(t, spec.Widgets, 3)
	require.Len(t, spec.Canvases, 1)
	require.Len(t, spec.Sequences, 1)
	require.Equal(t, "db.state == 'play'", spec.Sequences[0].Conditional)
}

func TestParseRejectsBadWidgetType(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"widgets": {"x": {"type": "sprite"}}}`))
	require.Error(t, err)
}

func TestParseRejectsBadEffect(t *testing.T) {
	t.Parallel()

	doc := `{"canvases": {"c": {"size": [10, 10], "effect": {"type": "wobble"}}}}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"widgets": `))
	require.Error(t, err)
}

func TestParseRejectsBadSize(t *testing.T) {
	t.Parallel()

	doc := `{"widgets": {"w": {"type": "text", "format": "x", "size": [1, 2, 3]}}}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
}
