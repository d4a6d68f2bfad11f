package raster

import (
	"fmt"
	"io"
	"strings"
)

// Pack converts the (x, y, w, h) region of img into panel byte rows. The
// result holds ceil(h/8) rows of w bytes each; bit b of the byte at row r,
// column c is the pixel at (x+c, y+r*8+b), LSB first. Pixels past the
// bottom of the region read as 0.
func Pack(img *Image, x, y, w, h int) [][]byte {
	if w < 0 {
		w = 0
	}
	rows := (h + 7) / 8
	if h <= 0 {
		rows = 0
	}
	out := make([][]byte, 0, rows)
	for r := 0; r < rows; r++ {
		line := make([]byte, w)
		for c := 0; c < w; c++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				py := r*8 + bit
				if py >= h {
					break
				}
				if img.At(x+c, y+py) != 0 {
					b |= 1 << uint(bit)
				}
			}
			line[c] = b
		}
		out = append(out, line)
	}
	return out
}

// Unpack reverses Pack for the given region size, reproducing a w×h image
// from the byte rows. Useful for round-trip checks.
func Unpack(frame [][]byte, w, h int) *Image {
	out := New(w, h, 0)
	for r, line := range frame {
		for c := 0; c < w && c < len(line); c++ {
			for bit := 0; bit < 8; bit++ {
				y := r*8 + bit
				if y >= h {
					break
				}
				if line[c]&(1<<uint(bit)) != 0 {
					out.Set(c, y, 1)
				}
			}
		}
	}
	return out
}

// RenderFrame formats a packed frame as text: each pixel is '*' or ' ',
// framed by '|' on the sides and '-' rows top and bottom. byteRows is the
// number of byte rows to print (each expands to 8 text lines).
func RenderFrame(frame [][]byte, width, byteRows int) string {
	var sb strings.Builder
	edge := "|" + strings.Repeat("-", width) + "|\n"
	sb.WriteString(edge)
	for r := 0; r < byteRows && r < len(frame); r++ {
		for bit := 0; bit < 8; bit++ {
			sb.WriteByte('|')
			mask := byte(1 << uint(bit))
			for c := 0; c < width && c < len(frame[r]); c++ {
				if frame[r][c]&mask != 0 {
					sb.WriteByte('*')
				} else {
					sb.WriteByte(' ')
				}
			}
			sb.WriteString("|\n")
		}
	}
	sb.WriteString(edge)
	return sb.String()
}

// Show writes RenderFrame's output to w.
func Show(w io.Writer, frame [][]byte, width, byteRows int) error {
	_, err := io.WriteString(w, RenderFrame(frame, width, byteRows))
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
