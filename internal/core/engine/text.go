package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openmarquee/marquee/internal/core/font"
	"github.com/openmarquee/marquee/internal/core/raster"
)

// Justify controls horizontal placement of each text line.
type Justify int

const (
	JustLeft Justify = iota
	JustCenter
	JustRight
)

// ParseJustify maps a descriptor value to a Justify, defaulting to left.
func ParseJustify(s string) Justify {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return JustCenter
	case "right":
		return JustRight
	default:
		return JustLeft
	}
}

// TextConfig describes a text widget.
type TextConfig struct {
	// Format is a positional template; {0}, {1}... (or bare {}) are
	// replaced by the rendered token values.
	Format string
	// Tokens name the variables feeding the template, each optionally
	// carrying a transform chain.
	Tokens []string
	Font   *font.Pack
	// VarWidth renders glyphs at their native width; otherwise each glyph
	// is centered in the font cell.
	VarWidth bool
	// MinWidth and MinHeight pad the rendered image up to a floor, and
	// crop it back down when the text measures larger.
	MinWidth, MinHeight int
	Just                Justify
}

// TextWidget renders a formatted, data-bound message.
type TextWidget struct {
	base
	cfg        TextConfig
	store      *VarStore
	log        Logger
	snapshot   map[string]Value
	maxW, maxH int
}

// NewText builds the widget and renders it once against the current store.
func NewText(cfg TextConfig, store *VarStore, log Logger) (*TextWidget, error) {
	if cfg.Font == nil {
		return nil, fmt.Errorf("text widget: no font")
	}
	if store == nil {
		return nil, fmt.Errorf("text widget: no variable store")
	}
	if log == nil {
		log = &NoOpLogger{}
	}
	t := &TextWidget{cfg: cfg, store: store, log: log}
	t.render()
	return t, nil
}

// MaxSize reports the measured text size before any crop, which is what
// scroll wrappers compare against their threshold.
func (t *TextWidget) MaxSize() (int, int) { return t.maxW, t.maxH }

// Update re-renders only when a referenced variable changed since the last
// render.
func (t *TextWidget) Update(_ bool) bool {
	if !changedVars(t.store, t.snapshot, t.cfg.Tokens) {
		return false
	}
	t.render()
	return true
}

func (t *TextWidget) render() {
	msg := t.message()
	if msg == "" {
		msg = " "
	}

	fx, fy := t.cfg.Font.CellSize()
	natW, natH := t.measure(msg)

	maxw, maxh := natW, natH
	if t.cfg.MinWidth > maxw {
		maxw = t.cfg.MinWidth
	}
	if t.cfg.MinHeight > maxh {
		maxh = t.cfg.MinHeight
	}

	img := raster.New(maxw, maxh, 0)
	line := raster.New(maxw, fy, 0)
	cx, cy := 0, 0
	flush := func() {
		img.Paste(line, t.lineOffset(maxw, cx), cy)
	}
	for _, c := range msg {
		if c == '\n' {
			flush()
			line = raster.New(maxw, fy, 0)
			cy += fy
			cx = 0
			continue
		}
		g := t.cfg.Font.Glyph(c)
		glyph := g.Image
		gw := g.Width
		if !t.cfg.VarWidth {
			// Center the glyph within the cell; the negative-origin crop
			// pads with blank columns.
			offset := (fx - gw) / 2
			glyph = glyph.Crop(-offset, 0, fx-offset, fy)
			gw = fx
		}
		line.Paste(glyph, cx, 0)
		line.Rect(cx+gw, 0, cx+gw, fy-1, 0, 0)
		cx += gw
	}
	flush()

	if t.cfg.MinWidth > 0 || t.cfg.MinHeight > 0 {
		img = img.Crop(0, 0, t.cfg.MinWidth, t.cfg.MinHeight)
	}

	if img.Width() > maxw {
		maxw = img.Width()
	}
	if img.Height() > maxh {
		maxh = img.Height()
	}
	t.maxW, t.maxH = maxw, maxh

	t.setImage(img)
	t.snapshot = snapshotVars(t.store, t.cfg.Tokens)
}

// message resolves every token and applies the format template. A missing
// variable or a bad template degrades to "VarErr".
func (t *TextWidget) message() string {
	parms := make([]string, 0, len(t.cfg.Tokens))
	for _, token := range t.cfg.Tokens {
		val, ok := t.store.Get(TokenName(token))
		if !ok {
			t.log.Debug("variable not found", Field("token", token))
			return "VarErr"
		}
		parms = append(parms, ApplyTransforms(val, token, t.log).String())
	}
	msg, err := formatTemplate(t.cfg.Format, parms)
	if err != nil {
		t.log.Debug("format failed", Field("format", t.cfg.Format), Field("err", err))
		return "VarErr"
	}
	return msg
}

// measure walks the message and returns the natural pixel size: widest
// line by total line height.
func (t *TextWidget) measure(msg string) (int, int) {
	fx, fy := t.cfg.Font.CellSize()
	maxw, maxh, cx := 0, 0, 0
	for _, c := range msg {
		if c == '\n' {
			maxh += fy
			if cx > maxw {
				maxw = cx
			}
			cx = 0
			continue
		}
		if t.cfg.VarWidth {
			cx += t.cfg.Font.Glyph(c).Width
		} else {
			cx += fx
		}
	}
	if cx > maxw {
		maxw = cx
	}
	maxh += fy
	return maxw, maxh
}

func (t *TextWidget) lineOffset(maxw, lineW int) int {
	switch t.cfg.Just {
	case JustCenter:
		return (maxw - lineW) / 2
	case JustRight:
		return maxw - lineW
	default:
		return 0
	}
}

// formatTemplate substitutes parms into a positional template. {0}-style
// indices and bare {} (consumed in order) are supported; {{ and }} escape
// the braces.
func formatTemplate(format string, parms []string) (string, error) {
	var sb strings.Builder
	next := 0
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case '{':
			if i+1 < len(runes) && runes[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			if j >= len(runes) {
				return "", fmt.Errorf("unterminated placeholder")
			}
			spec := string(runes[i+1 : j])
			idx := next
			if spec != "" {
				n, err := strconv.Atoi(spec)
				if err != nil {
					return "", fmt.Errorf("bad placeholder %q", spec)
				}
				idx = n
			}
			if idx < 0 || idx >= len(parms) {
				return "", fmt.Errorf("placeholder %d out of range", idx)
			}
			sb.WriteString(parms[idx])
			next = idx + 1
			i = j
		case '}':
			if i+1 < len(runes) && runes[i+1] == '}' {
				sb.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("stray '}'")
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String(), nil
}
