package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/openmarquee/marquee/internal/core/raster"
)

// ScrollDirection selects the axis and sense of a scroll effect.
type ScrollDirection int

const (
	ScrollLeft ScrollDirection = iota
	ScrollRight
	ScrollUp
	ScrollDown
)

// ParseScrollDirection maps a descriptor value to a ScrollDirection,
// defaulting to left.
func ParseScrollDirection(s string) ScrollDirection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return ScrollRight
	case "up":
		return ScrollUp
	case "down":
		return ScrollDown
	default:
		return ScrollLeft
	}
}

// HesitateMode controls when a scroll pauses.
type HesitateMode int

const (
	HesitateNone HesitateMode = iota
	HesitateOnStart
	HesitateOnLoop
)

// ParseHesitateMode maps a descriptor value to a HesitateMode, defaulting
// to none.
func ParseHesitateMode(s string) HesitateMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "onstart":
		return HesitateOnStart
	case "onloop":
		return HesitateOnLoop
	default:
		return HesitateNone
	}
}

// ScrollConfig describes a scroll effect.
type ScrollConfig struct {
	Direction ScrollDirection
	// Distance is the shift per tick in pixels.
	Distance int
	// Gap is the blank run inserted between the tail and the wrapped-around
	// head of the content.
	Gap          int
	Hesitate     HesitateMode
	HesitateTime time.Duration
	// Threshold suppresses scrolling unless the content exceeds it along
	// the scroll axis.
	Threshold int
}

// Scroll wraps a widget and slides its content around a ring on every
// tick. The ring is the inner image extended by Gap along the scroll
// axis, so the head re-enters seamlessly after the tail.
type Scroll struct {
	base
	inner        Widget
	cfg          ScrollConfig
	clock        Clock
	log          Logger
	endAt        time.Time
	index        int
	shouldScroll bool
	initialized  bool
}

// NewScroll wraps inner in a scroll effect and builds the ring from the
// inner widget's current image right away.
func NewScroll(inner Widget, cfg ScrollConfig, clock Clock, log Logger) (*Scroll, error) {
	if inner == nil {
		return nil, fmt.Errorf("scroll: no inner widget")
	}
	if cfg.Distance <= 0 {
		cfg.Distance = 1
	}
	if cfg.Gap < 0 {
		cfg.Gap = 0
	}
	if clock == nil {
		clock = SystemClock()
	}
	if log == nil {
		log = &NoOpLogger{}
	}
	s := &Scroll{inner: inner, cfg: cfg, clock: clock, log: log}
	s.restart(clock.Now())
	s.initialized = true
	return s, nil
}

// Update advances the scroll by one step. It reports true when the
// visible image changed, which includes inner-content changes and every
// shifted frame.
func (s *Scroll) Update(reset bool) bool {
	now := s.clock.Now()
	changed := false

	if reset {
		s.resetTimers(now)
	}
	if s.inner.Update(reset) || reset {
		changed = true
		s.restart(now)
	}

	if now.Before(s.endAt) || !s.shouldScroll {
		return changed
	}

	s.shift()
	s.index += s.cfg.Distance
	if s.index >= s.axisLen() {
		s.index = 0
		if s.cfg.Hesitate == HesitateOnLoop {
			s.endAt = now.Add(s.cfg.HesitateTime)
		}
	}
	return true
}

// restart rebuilds the backing ring from the inner widget's current image
// and re-evaluates whether scrolling is needed at all.
func (s *Scroll) restart(now time.Time) {
	s.resetTimers(now)
	s.index = 0

	maxW, maxH := s.inner.MaxSize()
	horizontal := s.cfg.Direction == ScrollLeft || s.cfg.Direction == ScrollRight
	if horizontal {
		dim := s.inner.Width()
		if maxW > dim {
			dim = maxW
		}
		s.shouldScroll = dim > s.cfg.Threshold
	} else {
		dim := s.inner.Height()
		if maxH > dim {
			dim = maxH
		}
		s.shouldScroll = dim > s.cfg.Threshold
	}

	if !s.shouldScroll {
		s.setImage(s.inner.Image().Copy())
		return
	}

	var ring *raster.Image
	if horizontal {
		ring = raster.New(s.inner.Width()+s.cfg.Gap, s.inner.Height(), 0)
	} else {
		ring = raster.New(s.inner.Width(), s.inner.Height()+s.cfg.Gap, 0)
	}
	ring.Paste(s.inner.Image(), 0, 0)
	s.setImage(ring)
}

func (s *Scroll) resetTimers(now time.Time) {
	if s.cfg.Hesitate == HesitateOnStart || s.cfg.Hesitate == HesitateOnLoop {
		s.endAt = now.Add(s.cfg.HesitateTime)
	} else {
		s.endAt = time.Time{}
	}
}

func (s *Scroll) axisLen() int {
	if s.cfg.Direction == ScrollLeft || s.cfg.Direction == ScrollRight {
		return s.img.Width()
	}
	return s.img.Height()
}

// shift rotates the ring by Distance pixels: the leading slab is cut off,
// the body slides toward the leading edge, and the slab is pasted back at
// the trailing edge.
func (s *Scroll) shift() {
	d := s.cfg.Distance
	w, h := s.img.Size()
	switch s.cfg.Direction {
	case ScrollLeft:
		region := s.img.Crop(0, 0, d, h)
		body := s.img.Crop(d, 0, w, h)
		s.img.Paste(body, 0, 0)
		s.img.Paste(region, w-d, 0)
	case ScrollRight:
		region := s.img.Crop(w-d, 0, w, h)
		body := s.img.Crop(0, 0, w-d, h)
		s.img.Paste(body, d, 0)
		s.img.Paste(region, 0, 0)
	case ScrollUp:
		region := s.img.Crop(0, 0, w, d)
		body := s.img.Crop(0, d, w, h)
		s.img.Paste(body, 0, 0)
		s.img.Paste(region, 0, h-d)
	case ScrollDown:
		region := s.img.Crop(0, h-d, w, h)
		body := s.img.Crop(0, 0, w, h-d)
		s.img.Paste(body, 0, d)
		s.img.Paste(region, 0, 0)
	}
}
