package engine

import (
	"github.com/openmarquee/marquee/internal/core/raster"
)

// Controller holds the page's sequences and produces one candidate frame
// per tick.
type Controller struct {
	opts      Options
	sequences []*Sequence
	db        *VarStore
	dbp       *VarStore
}

// NewController creates a controller over the live and previous variable
// stores.
func NewController(opts Options, db, dbp *VarStore) (*Controller, error) {
	opts.setDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Controller{opts: opts, db: db, dbp: dbp}, nil
}

// Vars returns the live store the controller was built over.
func (c *Controller) Vars() *VarStore { return c.db }

// PrevVars returns the previous-snapshot store.
func (c *Controller) PrevVars() *VarStore { return c.dbp }

// Clock returns the injected clock.
func (c *Controller) Clock() Clock { return c.opts.Clock }

// Logger returns the ambient logger shared by widgets built for this
// controller.
func (c *Controller) Logger() Logger { return c.opts.Logger }

// Metrics returns the metrics collector.
func (c *Controller) Metrics() Metrics { return c.opts.Metrics }

// PanelSize returns the configured panel dimensions.
func (c *Controller) PanelSize() (int, int) { return c.opts.PanelWidth, c.opts.PanelHeight }

// NewSequence creates a sequence bound to this controller's stores and
// appends it in declaration order.
func (c *Controller) NewSequence(cfg SequenceConfig) *Sequence {
	seq := NewSequence(cfg, c.db, c.dbp, c.opts.Clock, c.opts.Logger)
	c.sequences = append(c.sequences, seq)
	return seq
}

// RemoveSequence drops a sequence (used when a page entry ends up empty).
func (c *Controller) RemoveSequence(seq *Sequence) {
	for i, s := range c.sequences {
		if s == seq {
			c.sequences = append(c.sequences[:i], c.sequences[i+1:]...)
			return
		}
	}
}

// Sequences returns the sequences in declaration order.
func (c *Controller) Sequences() []*Sequence { return c.sequences }

// Next computes the next frame: every active sequence's widget, composed
// in declaration order, cropped to the panel. Displaying a sequence arms
// its cooling timer. Returns nil when no sequence is active.
func (c *Controller) Next() *raster.Image {
	start := c.opts.Clock.Now()

	type placed struct {
		img  *raster.Image
		x, y int
	}
	var active []placed
	for _, s := range c.sequences {
		w := s.Get(false)
		if w == nil {
			c.opts.Metrics.RecordSequenceSkip("inactive")
			continue
		}
		x, y := s.Coordinates()
		active = append(active, placed{img: w.Image(), x: x, y: y})
		// Re-arm the cooling timer on display, not on activation.
		if !s.coolingUntil.After(start) {
			s.coolingUntil = start.Add(s.cfg.CoolingPeriod)
		}
	}

	var img *raster.Image
	for _, p := range active {
		needW := p.x + p.img.Width()
		needH := p.y + p.img.Height()
		if img == nil {
			img = raster.New(needW, needH, 0)
		} else if needW > img.Width() || needH > img.Height() {
			w, h := img.Width(), img.Height()
			if needW > w {
				w = needW
			}
			if needH > h {
				h = needH
			}
			img = img.Crop(0, 0, w, h)
		}
		img.Paste(p.img, p.x, p.y)
	}

	if img != nil {
		// The crop runs one past the panel on both axes; the packer and
		// the existing panel drivers expect that extra column and row.
		img = img.Crop(0, 0, c.opts.PanelWidth+1, c.opts.PanelHeight+1)
	}

	c.opts.Metrics.RecordFrame(c.opts.Clock.Now().Sub(start), len(active))
	return img
}
