package page

import (
	"fmt"
	"time"

	"github.com/openmarquee/marquee/internal/core/engine"
	"github.com/openmarquee/marquee/internal/core/font"
)

// Build wires a parsed page into the controller: widgets and canvases are
// constructed, effects wrapped, and sequences appended in declaration
// order. fonts maps the page's font names to loaded packs. Invalid
// records are logged and skipped; a canvas cycle aborts the whole build.
func Build(spec *Spec, fonts map[string]*font.Pack, ctrl *engine.Controller) error {
	b := &builder{
		spec:    spec,
		fonts:   fonts,
		ctrl:    ctrl,
		log:     ctrl.Logger(),
		widgets: make(map[string]engine.Widget),
	}
	b.buildWidgets()
	if err := b.buildCanvases(); err != nil {
		return err
	}
	b.buildSequences()
	return nil
}

type builder struct {
	spec    *Spec
	fonts   map[string]*font.Pack
	ctrl    *engine.Controller
	log     engine.Logger
	widgets map[string]engine.Widget
}

func (b *builder) buildWidgets() {
	for name, def := range b.spec.Widgets {
		w, err := b.buildWidget(name, def)
		if err != nil {
			b.log.Warn("skipping widget", engine.Field("widget", name), engine.Field("reason", err))
			continue
		}
		if def.Effect != nil {
			if wrapped, werr := b.wrapEffect(w, def.Effect); werr != nil {
				b.log.Warn("ignoring effect", engine.Field("widget", name), engine.Field("reason", werr))
			} else {
				w = wrapped
			}
		}
		b.widgets[name] = w
	}
}

func (b *builder) buildWidget(name string, def WidgetSpec) (engine.Widget, error) {
	switch def.Type {
	case "text":
		if def.Format == "" {
			return nil, fmt.Errorf("text widget without a format")
		}
		pack, ok := b.fonts[def.Font]
		if !ok {
			b.log.Critical("unknown font", engine.Field("widget", name), engine.Field("font", def.Font))
			return nil, fmt.Errorf("unknown font %q", def.Font)
		}
		minW, minH := pair(def.Size)
		return engine.NewText(engine.TextConfig{
			Format:    def.Format,
			Tokens:    def.Variables,
			Font:      pack,
			VarWidth:  def.VarWidth,
			MinWidth:  minW,
			MinHeight: minH,
			Just:      engine.ParseJustify(def.Just),
		}, b.ctrl.Vars(), b.log)

	case "progressbar":
		if def.Value == nil || len(def.Size) != 2 {
			return nil, fmt.Errorf("progressbar without a value or size")
		}
		w, h := pair(def.Size)
		low, high := engine.Num(0), engine.Num(100)
		if len(def.RangeVal) == 2 {
			low = parseScalar(def.RangeVal[0])
			high = parseScalar(def.RangeVal[1])
		}
		return engine.NewProgressBar(engine.ProgressBarConfig{
			Value: parseScalar(def.Value),
			Low:   low,
			High:  high,
			Width: w, Height: h,
			Style: engine.ParseBarStyle(def.Style),
		}, b.ctrl.Vars(), b.log)

	case "line":
		if len(def.Point) != 2 {
			return nil, fmt.Errorf("line widget without a point")
		}
		x, y := pair(def.Point)
		return engine.NewLine(x, y, intOr(def.Color, 1))

	case "rectangle":
		if len(def.Point) != 2 {
			return nil, fmt.Errorf("rectangle widget without a point")
		}
		x, y := pair(def.Point)
		return engine.NewRectangle(x, y, intOr(def.Fill, 0), intOr(def.Outline, 1))

	default:
		return nil, fmt.Errorf("unsupported widget type %q", def.Type)
	}
}

// buildCanvases resolves canvases in dependency order so a canvas may
// embed another, and rejects cyclic references outright.
func (b *builder) buildCanvases() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(b.spec.Canvases))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("page: canvas cycle through %q", name)
		}
		state[name] = visiting

		def := b.spec.Canvases[name]
		for _, child := range def.Widgets {
			if _, isCanvas := b.spec.Canvases[child.Name]; isCanvas {
				if err := visit(child.Name); err != nil {
					return err
				}
			}
		}

		if err := b.buildCanvas(name, def); err != nil {
			b.log.Warn("skipping canvas", engine.Field("canvas", name), engine.Field("reason", err))
		}
		state[name] = done
		return nil
	}

	for name := range b.spec.Canvases {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) buildCanvas(name string, def CanvasSpec) error {
	if len(def.Size) != 2 {
		return fmt.Errorf("canvas without a size")
	}
	w, h := pair(def.Size)
	c, err := engine.NewCanvas(w, h)
	if err != nil {
		return err
	}
	for _, child := range def.Widgets {
		cw, ok := b.widgets[child.Name]
		if !ok {
			b.log.Warn("canvas child not found", engine.Field("canvas", name), engine.Field("child", child.Name))
			continue
		}
		c.Add(cw, child.X, child.Y, 0, 0)
	}

	var wrapped engine.Widget = c
	if def.Effect != nil {
		if w, werr := b.wrapEffect(c, def.Effect); werr != nil {
			b.log.Warn("ignoring effect", engine.Field("canvas", name), engine.Field("reason", werr))
		} else {
			wrapped = w
		}
	}
	b.widgets[name] = wrapped
	return nil
}

func (b *builder) wrapEffect(w engine.Widget, def *EffectSpec) (engine.Widget, error) {
	switch def.Type {
	case "scroll":
		return engine.NewScroll(w, engine.ScrollConfig{
			Direction:    engine.ParseScrollDirection(def.Direction),
			Distance:     def.Distance,
			Gap:          def.Gap,
			Hesitate:     engine.ParseHesitateMode(def.Hesitate),
			HesitateTime: seconds(def.HesitateTime),
			Threshold:    def.Threshold,
		}, b.ctrl.Clock(), b.log)
	case "popup":
		return engine.NewPopup(w, engine.PopupConfig{
			DisplayHeight: def.DisplayHeight,
			Duration:      seconds(def.Duration),
			PopDuration:   seconds(def.PopDuration),
		}, b.ctrl.Clock())
	default:
		return w, fmt.Errorf("unrecognized effect %q", def.Type)
	}
}

func (b *builder) buildSequences() {
	for _, def := range b.spec.Sequences {
		x, y := pair(def.Coordinates)
		cond := def.Conditional
		if cond == "" {
			cond = "True"
		}
		seq := b.ctrl.NewSequence(engine.SequenceConfig{
			Conditional:   cond,
			CoolingPeriod: seconds(def.CoolingPeriod),
			MinimumActive: seconds(def.Minimum),
			X:             x,
			Y:             y,
		})
		for _, it := range def.Canvases {
			w, ok := b.widgets[it.Name]
			if !ok {
				b.log.Warn("sequence entry not found", engine.Field("sequence", def.Name), engine.Field("entry", it.Name))
				continue
			}
			itemCond := it.Conditional
			if itemCond == "" {
				itemCond = "True"
			}
			seq.Add(w, seconds(it.Duration), itemCond)
		}
		if seq.Len() == 0 {
			b.log.Warn("removing empty sequence", engine.Field("sequence", def.Name))
			b.ctrl.RemoveSequence(seq)
		}
	}
}

func pair(v []int) (int, int) {
	if len(v) != 2 {
		return 0, 0
	}
	return v[0], v[1]
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func parseScalar(v any) engine.Scalar {
	switch t := v.(type) {
	case string:
		return engine.Var(t)
	case float64:
		return engine.Num(t)
	case int:
		return engine.Num(float64(t))
	default:
		return engine.Num(0)
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
