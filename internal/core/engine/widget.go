package engine

import "github.com/openmarquee/marquee/internal/core/raster"

// Widget is the contract every visual element shares, leaf or composite.
// Update refreshes the widget's image from current state and reports
// whether anything changed. reset is passed on to child and inner widgets;
// a canvas repaints fully and a scroll effect rebuilds and restarts on it,
// while leaf widgets re-render only when their inputs changed and the
// popup effect keeps its position.
type Widget interface {
	Update(reset bool) bool
	Image() *raster.Image
	Width() int
	Height() int
	// MaxSize returns the natural (pre-crop) size of the content. For most
	// widgets it equals the image size; text widgets report the full
	// measured text so scroll wrappers can detect overflow.
	MaxSize() (int, int)
}

// base carries the image and cached dimensions shared by every widget.
type base struct {
	img  *raster.Image
	w, h int
}

func (b *base) Image() *raster.Image { return b.img }
func (b *base) Width() int           { return b.w }
func (b *base) Height() int          { return b.h }
func (b *base) MaxSize() (int, int)  { return b.w, b.h }

// setImage swaps the backing image and refreshes the cached size.
func (b *base) setImage(img *raster.Image) {
	b.img = img
	if img == nil {
		b.w, b.h = 0, 0
		return
	}
	b.w, b.h = img.Size()
}

// changedVars reports whether any of the named variables differs from the
// snapshot taken at the last render. A variable missing from either side
// counts as changed.
func changedVars(store *VarStore, snapshot map[string]Value, names []string) bool {
	for _, name := range names {
		name = TokenName(name)
		cur, ok := store.Get(name)
		if !ok {
			return true
		}
		prev, ok := snapshot[name]
		if !ok {
			return true
		}
		if !cur.Equal(prev) {
			return true
		}
	}
	return false
}

// snapshotVars captures the current values of the named variables.
// Variables absent from the store are left out, which marks them changed
// on the next check.
func snapshotVars(store *VarStore, names []string) map[string]Value {
	out := make(map[string]Value, len(names))
	for _, name := range names {
		name = TokenName(name)
		if v, ok := store.Get(name); ok {
			out[name] = v
		}
	}
	return out
}
