package engine

import (
	"fmt"

	"github.com/openmarquee/marquee/internal/core/raster"
)

// Line is a static widget drawing a line from the origin to (x, y).
type Line struct {
	base
}

// NewLine renders a line widget sized (x+1)×(y+1).
func NewLine(x, y, color int) (*Line, error) {
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("line widget: negative endpoint (%d,%d)", x, y)
	}
	l := &Line{}
	img := raster.New(x+1, y+1, 0)
	img.Line(0, 0, x, y, color)
	l.setImage(img)
	return l, nil
}

// Update is a no-op; the line never changes after construction.
func (l *Line) Update(_ bool) bool { return false }

// Rectangle is a static widget drawing a rectangle from the origin to
// (x, y).
type Rectangle struct {
	base
}

// NewRectangle renders a rectangle widget sized (x+1)×(y+1).
func NewRectangle(x, y, fill, outline int) (*Rectangle, error) {
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("rectangle widget: negative corner (%d,%d)", x, y)
	}
	r := &Rectangle{}
	img := raster.New(x+1, y+1, 0)
	img.Rect(0, 0, x, y, fill, outline)
	r.setImage(img)
	return r, nil
}

// Update is a no-op; the rectangle never changes after construction.
func (r *Rectangle) Update(_ bool) bool { return false }
