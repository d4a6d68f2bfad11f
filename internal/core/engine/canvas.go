package engine

import (
	"fmt"

	"github.com/openmarquee/marquee/internal/core/raster"
)

// placement pins a child widget at a fixed offset, optionally clipped.
type placement struct {
	widget       Widget
	x, y         int
	clipW, clipH int
}

// Canvas composes child widgets at fixed offsets. Children are painted in
// insertion order, so later additions overwrite earlier ones where they
// overlap. Children may be shared between canvases.
type Canvas struct {
	base
	children []placement
}

// NewCanvas creates an empty canvas of the given size.
func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: invalid size %dx%d", w, h)
	}
	c := &Canvas{}
	c.setImage(raster.New(w, h, 0))
	return c, nil
}

// Add places a widget at (x, y). A non-zero clip limits how much of the
// child is painted.
func (c *Canvas) Add(w Widget, x, y, clipW, clipH int) {
	c.children = append(c.children, placement{widget: w, x: x, y: y, clipW: clipW, clipH: clipH})
	c.place(c.children[len(c.children)-1])
}

// Clear wipes the canvas to background.
func (c *Canvas) Clear() {
	c.img.Fill(0)
}

// Update propagates to every child. If any child changed (or reset is
// set), the canvas is wiped and fully repainted.
func (c *Canvas) Update(reset bool) bool {
	changed := reset
	for _, p := range c.children {
		if p.widget.Update(reset) {
			changed = true
		}
	}
	if changed {
		c.Clear()
		for _, p := range c.children {
			c.place(p)
		}
	}
	return changed
}

func (c *Canvas) place(p placement) {
	img := p.widget.Image()
	if img == nil {
		return
	}
	if p.clipW > 0 || p.clipH > 0 {
		img = img.Crop(0, 0, p.clipW, p.clipH)
	}
	c.img.Paste(img, p.x, p.y)
}
