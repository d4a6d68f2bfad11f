// Package raster implements the 1-bit-per-pixel image buffer the widget
// engine renders into, plus the byte packing step that turns a finished
// frame into panel-ready rows.
package raster

// Image is a 1-bpp raster. Dimensions are fixed at construction; content is
// mutable. Pixels are stored one byte per pixel holding 0 or 1, indexed
// y*width+x.
type Image struct {
	w, h int
	pix  []uint8
}

// New creates a w×h image with every pixel set to fill. Dimensions below
// zero are clamped to zero, which yields a valid empty image.
func New(w, h, fill int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	m := &Image{w: w, h: h, pix: make([]uint8, w*h)}
	if fill != 0 {
		for i := range m.pix {
			m.pix[i] = 1
		}
	}
	return m
}

func (m *Image) Width() int  { return m.w }
func (m *Image) Height() int { return m.h }

// Size returns (width, height).
func (m *Image) Size() (int, int) { return m.w, m.h }

// At returns the pixel at (x, y), or 0 for coordinates outside the image.
func (m *Image) At(x, y int) int {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return 0
	}
	return int(m.pix[y*m.w+x])
}

// Set writes the pixel at (x, y). Writes outside the image are dropped.
func (m *Image) Set(x, y, v int) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	var b uint8
	if v != 0 {
		b = 1
	}
	m.pix[y*m.w+x] = b
}

// Fill overwrites every pixel with v.
func (m *Image) Fill(v int) {
	var b uint8
	if v != 0 {
		b = 1
	}
	for i := range m.pix {
		m.pix[i] = b
	}
}

// Copy returns a deep copy.
func (m *Image) Copy() *Image {
	out := &Image{w: m.w, h: m.h, pix: make([]uint8, len(m.pix))}
	copy(out.pix, m.pix)
	return out
}

// Equal reports whether two images have identical size and content.
func (m *Image) Equal(o *Image) bool {
	if o == nil || m.w != o.w || m.h != o.h {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Crop extracts the box (x0, y0)-(x1, y1), exclusive of x1 and y1. The box
// may extend beyond the image in any direction, including a negative
// origin; pixels outside the source read as 0. The result is always
// (x1-x0)×(y1-y0).
func (m *Image) Crop(x0, y0, x1, y1 int) *Image {
	w := x1 - x0
	h := y1 - y0
	out := New(w, h, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if v := m.At(x0+x, y0+y); v != 0 {
				out.pix[y*w+x] = 1
			}
		}
	}
	return out
}

// Paste copies src onto m with src's origin at (x, y). Source pixels that
// fall outside m are dropped.
func (m *Image) Paste(src *Image, x, y int) {
	if src == nil {
		return
	}
	for sy := 0; sy < src.h; sy++ {
		dy := y + sy
		if dy < 0 || dy >= m.h {
			continue
		}
		for sx := 0; sx < src.w; sx++ {
			dx := x + sx
			if dx < 0 || dx >= m.w {
				continue
			}
			m.pix[dy*m.w+dx] = src.pix[sy*src.w+sx]
		}
	}
}

// Line draws a straight line from (x0, y0) to (x1, y1) inclusive.
func (m *Image) Line(x0, y0, x1, y1, color int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		m.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect draws the rectangle with corners (x0, y0) and (x1, y1), both
// inclusive: the interior is set to fill and the border to outline.
func (m *Image) Rect(x0, y0, x1, y1, fill, outline int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m.Set(x, y, fill)
		}
	}
	m.Line(x0, y0, x1, y0, outline)
	m.Line(x0, y1, x1, y1, outline)
	m.Line(x0, y0, x0, y1, outline)
	m.Line(x1, y0, x1, y1, outline)
}
