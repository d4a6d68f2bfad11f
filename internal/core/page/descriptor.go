// Package page turns validated page descriptors — fonts, widgets,
// canvases, and sequences — into a wired display controller. Descriptors
// arrive as JSON documents; font decoding stays with the caller, which
// supplies ready glyph packs by name.
package page

// Spec is a full page document.
type Spec struct {
	Fonts     map[string]FontSpec   `json:"fonts"`
	Widgets   map[string]WidgetSpec `json:"widgets"`
	Canvases  map[string]CanvasSpec `json:"canvases"`
	Sequences []SequenceSpec        `json:"sequences"`
}

// FontSpec names a font source file. Decoding is out of scope here; the
// builder only needs the key to look up a loaded pack.
type FontSpec struct {
	File string `json:"file"`
}

// WidgetSpec is a typed widget record. Which fields apply depends on Type.
type WidgetSpec struct {
	Type string `json:"type"`

	// text
	Format    string   `json:"format,omitempty"`
	Variables []string `json:"variables,omitempty"`
	Font      string   `json:"font,omitempty"`
	Just      string   `json:"just,omitempty"`
	Size      []int    `json:"size,omitempty"`
	VarWidth  bool     `json:"varwidth,omitempty"`

	// progressbar
	Value    any    `json:"value,omitempty"`
	RangeVal []any  `json:"rangeval,omitempty"`
	Style    string `json:"style,omitempty"`

	// line / rectangle
	Point   []int `json:"point,omitempty"`
	Color   *int  `json:"color,omitempty"`
	Fill    *int  `json:"fill,omitempty"`
	Outline *int  `json:"outline,omitempty"`

	Effect *EffectSpec `json:"effect,omitempty"`
}

// CanvasSpec composes named widgets at fixed offsets.
type CanvasSpec struct {
	Size    []int         `json:"size"`
	Widgets []CanvasChild `json:"widgets"`
	Effect  *EffectSpec   `json:"effect,omitempty"`
}

// CanvasChild places a widget (or another canvas) on a canvas.
type CanvasChild struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// EffectSpec wraps the built widget in a scroll or popup animation.
type EffectSpec struct {
	Type string `json:"type"`

	// scroll
	Direction    string  `json:"direction,omitempty"`
	Distance     int     `json:"distance,omitempty"`
	Gap          int     `json:"gap,omitempty"`
	Hesitate     string  `json:"hesitate,omitempty"`
	HesitateTime float64 `json:"hesitatetime,omitempty"`
	Threshold    int     `json:"threshold,omitempty"`

	// popup
	DisplayHeight int     `json:"displayheight,omitempty"`
	Duration      float64 `json:"duration,omitempty"`
	PopDuration   float64 `json:"popduration,omitempty"`
}

// SequenceSpec schedules canvases onto the panel.
type SequenceSpec struct {
	Name          string             `json:"name"`
	Conditional   string             `json:"conditional,omitempty"`
	CoolingPeriod float64            `json:"coolingperiod,omitempty"`
	Minimum       float64            `json:"minimum,omitempty"`
	Coordinates   []int              `json:"coordinates,omitempty"`
	Canvases      []SequenceItemSpec `json:"canvases"`
}

// SequenceItemSpec is one carousel entry.
type SequenceItemSpec struct {
	Name        string  `json:"name"`
	Duration    float64 `json:"duration"`
	Conditional string  `json:"conditional,omitempty"`
}
