package engine

import (
	"fmt"
	"time"
)

// PopupConfig describes a popup effect.
type PopupConfig struct {
	// DisplayHeight is the height of the window revealed from the inner
	// widget.
	DisplayHeight int
	// Duration is how long the window rests at the top of the content.
	Duration time.Duration
	// PopDuration is how long the window rests at the bottom once popped.
	PopDuration time.Duration
}

// Popup reveals a tall inner widget through a short window, sliding down
// one pixel per tick after the rest timer expires, holding, then sliding
// back up.
type Popup struct {
	base
	inner  Widget
	cfg    PopupConfig
	clock  Clock
	popped bool
	endAt  time.Time
	index  int
}

// NewPopup wraps inner in a popup effect and shows the top window.
func NewPopup(inner Widget, cfg PopupConfig, clock Clock) (*Popup, error) {
	if inner == nil {
		return nil, fmt.Errorf("popup: no inner widget")
	}
	if cfg.DisplayHeight <= 0 {
		return nil, fmt.Errorf("popup: display height must be positive")
	}
	if clock == nil {
		clock = SystemClock()
	}
	p := &Popup{inner: inner, cfg: cfg, clock: clock}
	p.endAt = clock.Now().Add(cfg.Duration)
	p.window()
	return p, nil
}

// Update advances the popup state machine by at most one pixel, so a
// delayed caller fast-forwards through transitions without overshooting.
func (p *Popup) Update(reset bool) bool {
	now := p.clock.Now()
	p.inner.Update(reset)

	if now.Before(p.endAt) {
		p.window()
		return true
	}

	if p.popped {
		if p.index > 0 {
			p.index--
		} else {
			p.popped = false
			p.endAt = now.Add(p.cfg.Duration)
		}
	} else {
		if p.index < p.inner.Height()-p.cfg.DisplayHeight {
			p.index++
		} else {
			p.popped = true
			p.endAt = now.Add(p.cfg.PopDuration)
		}
	}

	p.window()
	return true
}

func (p *Popup) window() {
	p.setImage(p.inner.Image().Crop(0, p.index, p.inner.Width()-1, p.index+p.cfg.DisplayHeight))
}
