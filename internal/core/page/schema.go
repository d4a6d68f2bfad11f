package page

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

var (
	pageSchemaLoader     gojsonschema.JSONLoader
	pageSchemaLoaderOnce sync.Once
)

// pageSchema describes the page document shape. Enum values mirror what
// the builder accepts, so malformed records fail before any widget is
// half-built.
func pageSchema() map[string]any {
	intPair := map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "integer"},
		"minItems": 2,
		"maxItems": 2,
	}
	scalar := map[string]any{
		"oneOf": []any{
			map[string]any{"type": "number"},
			map[string]any{"type": "string"},
		},
	}
	effect := map[string]any{
		"type":                 "object",
		"required":             []any{"type"},
		"additionalProperties": false,
		"properties": map[string]any{
			"type":          map[string]any{"enum": []any{"scroll", "popup"}},
			"direction":     map[string]any{"enum": []any{"left", "right", "up", "down"}},
			"distance":      map[string]any{"type": "integer", "minimum": 1},
			"gap":           map[string]any{"type": "integer", "minimum": 0},
			"hesitate":      map[string]any{"enum": []any{"none", "onstart", "onloop"}},
			"hesitatetime":  map[string]any{"type": "number", "minimum": 0},
			"threshold":     map[string]any{"type": "integer", "minimum": 0},
			"displayheight": map[string]any{"type": "integer", "minimum": 1},
			"duration":      map[string]any{"type": "number", "minimum": 0},
			"popduration":   map[string]any{"type": "number", "minimum": 0},
		},
	}
	widget := map[string]any{
		"type":     "object",
		"required": []any{"type"},
		"properties": map[string]any{
			"type":      map[string]any{"enum": []any{"text", "progressbar", "line", "rectangle"}},
			"format":    map[string]any{"type": "string"},
			"variables": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"font":      map[string]any{"type": "string"},
			"just":      map[string]any{"enum": []any{"left", "center", "right"}},
			"size":      intPair,
			"varwidth":  map[string]any{"type": "boolean"},
			"value":     scalar,
			"rangeval":  map[string]any{"type": "array", "items": scalar, "minItems": 2, "maxItems": 2},
			"style":     map[string]any{"enum": []any{"square", "rounded"}},
			"point":     intPair,
			"color":     map[string]any{"type": "integer", "minimum": 0, "maximum": 1},
			"fill":      map[string]any{"type": "integer", "minimum": 0, "maximum": 1},
			"outline":   map[string]any{"type": "integer", "minimum": 0, "maximum": 1},
			"effect":    effect,
		},
	}
	canvas := map[string]any{
		"type":     "object",
		"required": []any{"size"},
		"properties": map[string]any{
			"size": intPair,
			"widgets": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"name"},
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
						"x":    map[string]any{"type": "integer"},
						"y":    map[string]any{"type": "integer"},
					},
				},
			},
			"effect": effect,
		},
	}
	sequence := map[string]any{
		"type":     "object",
		"required": []any{"canvases"},
		"properties": map[string]any{
			"name":          map[string]any{"type": "string"},
			"conditional":   map[string]any{"type": "string"},
			"coolingperiod": map[string]any{"type": "number", "minimum": 0},
			"minimum":       map[string]any{"type": "number", "minimum": 0},
			"coordinates":   intPair,
			"canvases": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"name", "duration"},
					"properties": map[string]any{
						"name":        map[string]any{"type": "string"},
						"duration":    map[string]any{"type": "number", "minimum": 0},
						"conditional": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"properties": map[string]any{
			"fonts": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":       "object",
					"required":   []any{"file"},
					"properties": map[string]any{"file": map[string]any{"type": "string"}},
				},
			},
			"widgets":   map[string]any{"type": "object", "additionalProperties": widget},
			"canvases":  map[string]any{"type": "object", "additionalProperties": canvas},
			"sequences": map[string]any{"type": "array", "items": sequence},
		},
	}
}

func loadPageSchema() gojsonschema.JSONLoader {
	pageSchemaLoaderOnce.Do(func() {
		pageSchemaLoader = gojsonschema.NewGoLoader(pageSchema())
	})
	return pageSchemaLoader
}

// Parse validates raw against the page schema and unmarshals it.
func Parse(raw []byte) (*Spec, error) {
	result, err := gojsonschema.Validate(loadPageSchema(), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("page: schema validation failed: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("page: invalid document: %s", strings.Join(msgs, "; "))
	}

	var spec Spec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("page: unmarshal: %w", err)
	}
	return &spec, nil
}
