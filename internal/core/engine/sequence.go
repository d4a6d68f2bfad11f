package engine

import (
	"time"
)

// SequenceConfig describes a sequence's gating parameters.
type SequenceConfig struct {
	// Conditional gates the whole sequence; empty means always active.
	Conditional string
	// CoolingPeriod blocks re-display for this long after the sequence has
	// been shown.
	CoolingPeriod time.Duration
	// MinimumActive pins the sequence displayable for this long once it
	// activates, regardless of its conditional.
	MinimumActive time.Duration
	// X and Y offset the sequence's widgets on the panel.
	X, Y int
}

// item is one entry of the carousel.
type item struct {
	widget   Widget
	duration time.Duration
	cond     *Conditional
}

// Sequence multiplexes an ordered list of widgets over time. Each item
// displays for its duration while its conditional holds; the sequence as a
// whole is gated by its own conditional, a cooling period, and a minimum
// active time.
type Sequence struct {
	cfg   SequenceConfig
	cond  *Conditional
	items []item

	clock Clock
	log   Logger
	db    *VarStore
	dbp   *VarStore

	current       int
	itemEndAt     time.Time
	coolingUntil  time.Time
	mustStayUntil time.Time
}

// NewSequence creates an empty sequence bound to the live and previous
// variable stores.
func NewSequence(cfg SequenceConfig, db, dbp *VarStore, clock Clock, log Logger) *Sequence {
	if clock == nil {
		clock = SystemClock()
	}
	if log == nil {
		log = &NoOpLogger{}
	}
	return &Sequence{
		cfg:   cfg,
		cond:  NewConditional(cfg.Conditional),
		clock: clock,
		log:   log,
		db:    db,
		dbp:   dbp,
	}
}

// Add appends a widget with its display duration and per-item
// conditional (empty means always eligible). Adding the first item starts
// its display timer.
func (s *Sequence) Add(w Widget, duration time.Duration, conditional string) {
	if len(s.items) == 0 {
		s.itemEndAt = s.clock.Now().Add(duration)
	}
	s.items = append(s.items, item{widget: w, duration: duration, cond: NewConditional(conditional)})
}

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.items) }

// Coordinates returns the sequence's panel offset.
func (s *Sequence) Coordinates() (int, int) { return s.cfg.X, s.cfg.Y }

// Get returns the widget to display this tick, or nil when the sequence
// is inactive. restart rewinds to the first item and clears the cooling
// timer.
func (s *Sequence) Get(restart bool) Widget {
	now := s.clock.Now()

	// Within the minimum-active window the gating checks are skipped.
	if !now.Before(s.mustStayUntil) {
		if !s.cond.Eval(s.db, s.dbp, s.log) || s.coolingUntil.After(now) {
			return nil
		}
		s.mustStayUntil = now.Add(s.cfg.MinimumActive)
	}

	if len(s.items) == 0 {
		return nil
	}

	if restart {
		s.current = 0
		s.coolingUntil = time.Time{}
		s.itemEndAt = now.Add(s.items[0].duration)
	}

	cur := s.items[s.current]
	if !now.Before(s.itemEndAt) || !cur.cond.Eval(s.db, s.dbp, s.log) {
		s.advance()
		for range s.items {
			cur = s.items[s.current]
			if cur.cond.Eval(s.db, s.dbp, s.log) {
				s.itemEndAt = now.Add(cur.duration)
				cur.widget.Update(true)
				return cur.widget
			}
			s.advance()
		}
		s.log.Debug("no active item in sequence")
		return nil
	}

	cur.widget.Update(false)
	return cur.widget
}

func (s *Sequence) advance() {
	s.current++
	if s.current >= len(s.items) {
		s.current = 0
	}
}
