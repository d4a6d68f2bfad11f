package engine

import (
	"fmt"
	"strings"

	"github.com/openmarquee/marquee/internal/core/raster"
)

// Scalar is a numeric parameter that is either a literal or the name of a
// variable resolved at render time.
type Scalar struct {
	isVar bool
	name  string
	val   float64
}

// Num creates a literal scalar.
func Num(v float64) Scalar { return Scalar{val: v} }

// Var creates a variable-backed scalar.
func Var(name string) Scalar { return Scalar{isVar: true, name: name} }

// resolve returns the scalar's current value. Variable scalars that are
// present in the store also report their name for change tracking; a
// missing variable reads as 0 and is not tracked.
func (s Scalar) resolve(store *VarStore) (float64, string, bool) {
	if !s.isVar {
		return s.val, "", false
	}
	v, ok := store.Get(s.name)
	if !ok {
		return 0, "", false
	}
	return v.Number(), s.name, true
}

// BarStyle selects the progress bar geometry.
type BarStyle int

const (
	StyleSquare BarStyle = iota
	StyleRounded
)

// ParseBarStyle maps a descriptor value to a BarStyle, defaulting to
// square.
func ParseBarStyle(s string) BarStyle {
	if strings.ToLower(strings.TrimSpace(s)) == "rounded" {
		return StyleRounded
	}
	return StyleSquare
}

// ProgressBarConfig describes a progress bar widget.
type ProgressBarConfig struct {
	Value, Low, High Scalar
	Width, Height    int
	Style            BarStyle
}

// ProgressBar renders a horizontal fill with hollow track and endcaps.
type ProgressBar struct {
	base
	cfg      ProgressBarConfig
	store    *VarStore
	log      Logger
	tracked  []string
	snapshot map[string]Value
}

// NewProgressBar builds the widget and renders it once.
func NewProgressBar(cfg ProgressBarConfig, store *VarStore, log Logger) (*ProgressBar, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("progress bar: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if store == nil {
		return nil, fmt.Errorf("progress bar: no variable store")
	}
	if log == nil {
		log = &NoOpLogger{}
	}
	p := &ProgressBar{cfg: cfg, store: store, log: log}
	p.render()
	return p, nil
}

// Update re-renders only when a tracked variable changed.
func (p *ProgressBar) Update(_ bool) bool {
	if !changedVars(p.store, p.snapshot, p.tracked) {
		return false
	}
	p.render()
	return true
}

// percentOf resolves value/low/high, swapping an inverted range and
// clamping an out-of-range value to low.
func percentOf(value, low, high Scalar, store *VarStore, log Logger) (float64, []string) {
	var tracked []string
	v, name, ok := value.resolve(store)
	if ok {
		tracked = append(tracked, name)
	}
	lo, name, ok := low.resolve(store)
	if ok {
		tracked = append(tracked, name)
	}
	hi, name, ok := high.resolve(store)
	if ok {
		tracked = append(tracked, name)
	}

	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo || v > hi {
		log.Debug("progress value out of range", Field("value", v), Field("low", lo), Field("high", hi))
		v = lo
	}
	if hi == lo {
		return 0, tracked
	}
	return (v - lo) / (hi - lo), tracked
}

func (p *ProgressBar) render() {
	percent, tracked := percentOf(p.cfg.Value, p.cfg.Low, p.cfg.High, p.store, p.log)
	p.tracked = tracked

	w, h := p.cfg.Width, p.cfg.Height
	img := raster.New(w, h, 0)

	if h > 2 {
		capTop, capBot := 0, h-1
		if p.cfg.Style == StyleRounded {
			capTop, capBot = 1, h-2
		}
		img.Line(0, capTop, 0, capBot, 1)
		filled := int(float64(w-2) * percent)
		for i := 0; i < filled; i++ {
			img.Line(i+1, 0, i+1, h-1, 1)
		}
		for i := filled; i < w-2; i++ {
			img.Set(i+1, 0, 1)
			img.Set(i+1, h-1, 1)
		}
		img.Line(w-1, capTop, w-1, capBot, 1)
	} else {
		for i := 0; i < int(float64(w)*percent); i++ {
			img.Line(i, 0, i, h-1, 1)
		}
	}

	p.setImage(img)
	p.snapshot = snapshotVars(p.store, p.tracked)
}

// FillDirection selects which edge an image bar fills from.
type FillDirection int

const (
	FillLeft FillDirection = iota
	FillRight
	FillUp
	FillDown
)

// ParseFillDirection maps a descriptor value to a FillDirection,
// defaulting to left.
func ParseFillDirection(s string) FillDirection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return FillRight
	case "up":
		return FillUp
	case "down":
		return FillDown
	default:
		return FillLeft
	}
}

// ProgressImageBarConfig describes a mask-shaped progress bar.
type ProgressImageBarConfig struct {
	Mask             *raster.Image
	Value, Low, High Scalar
	Direction        FillDirection
}

// ProgressImageBar fills a solid rectangle beneath a mask image, anchored
// at the configured edge and growing away from it as the percentage rises.
type ProgressImageBar struct {
	base
	cfg      ProgressImageBarConfig
	store    *VarStore
	log      Logger
	tracked  []string
	snapshot map[string]Value
}

// NewProgressImageBar builds the widget and renders it once.
func NewProgressImageBar(cfg ProgressImageBarConfig, store *VarStore, log Logger) (*ProgressImageBar, error) {
	if cfg.Mask == nil || cfg.Mask.Width() == 0 || cfg.Mask.Height() == 0 {
		return nil, fmt.Errorf("progress image bar: no mask image")
	}
	if store == nil {
		return nil, fmt.Errorf("progress image bar: no variable store")
	}
	if log == nil {
		log = &NoOpLogger{}
	}
	p := &ProgressImageBar{cfg: cfg, store: store, log: log}
	p.render()
	return p, nil
}

// Update re-renders only when a tracked variable changed.
func (p *ProgressImageBar) Update(_ bool) bool {
	if !changedVars(p.store, p.snapshot, p.tracked) {
		return false
	}
	p.render()
	return true
}

func (p *ProgressImageBar) render() {
	percent, tracked := percentOf(p.cfg.Value, p.cfg.Low, p.cfg.High, p.store, p.log)
	p.tracked = tracked

	w, h := p.cfg.Mask.Size()
	bw, bh := w, h
	var bx, by int
	switch p.cfg.Direction {
	case FillRight:
		bw = int(float64(w) * percent)
		bx = w - bw
	case FillLeft:
		bw = int(float64(w) * percent)
	case FillUp:
		bh = int(float64(h) * percent)
		by = h - bh
	case FillDown:
		bh = int(float64(h) * percent)
	}

	img := raster.New(w, h, 0)
	img.Paste(raster.New(bw, bh, 1), bx, by)
	// The mask sits on top of the fill.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if p.cfg.Mask.At(x, y) != 0 {
				img.Set(x, y, 1)
			}
		}
	}

	p.setImage(img)
	p.snapshot = snapshotVars(p.store, p.tracked)
}
