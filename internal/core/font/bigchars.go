package font

import "strings"

// BigCharRows is the number of text lines a big-character rendering spans.
const BigCharRows = 2

// bigCharArt maps a source character to its two-line block rendering. The
// strings are composed of the block glyphs carried by the bundled face, so
// any pack derived from it can raster them directly.
var bigCharArt = map[rune][BigCharRows]string{
	'0': {"█▀█", "█▄█"},
	'1': {"▄█ ", " █ "},
	'2': {"▀▀█", "█▄▄"},
	'3': {"▀▀█", "▄▄█"},
	'4': {"█ █", "▀▀█"},
	'5': {"█▀▀", "▄▄█"},
	'6': {"█▀▀", "█▄█"},
	'7': {"▀▀█", "  █"},
	'8': {"▄▀▄", "█▄█"},
	'9': {"█▀█", "▄▄█"},
	':': {"▀", "▄"},
	'.': {" ", "▄"},
	'-': {"▄▄", "  "},
	'/': {" ▄▀", "▀  "},
	' ': {" ", " "},
}

var bigUnknown = [BigCharRows]string{"▄▀▄", " █ "}

// bigPlayArt holds the two halves of the playback banner: the transport
// symbol and the page mark it points at.
var bigPlayArt = map[string][BigCharRows]string{
	"symbol": {"█▀▄", "█▄▀"},
	"page":   {"█▀█", "█▄█"},
}

// BigChars renders msg as big block characters, returning one string per
// row. Characters without art render as the unknown mark.
func BigChars(msg string) []string {
	rows := make([]strings.Builder, BigCharRows)
	first := true
	for _, r := range msg {
		art, ok := bigCharArt[r]
		if !ok {
			art = bigUnknown
		}
		for i := range rows {
			if !first {
				rows[i].WriteByte(' ')
			}
			rows[i].WriteString(art[i])
		}
		first = false
	}
	out := make([]string, BigCharRows)
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

// BigPlay returns the named half of the playback banner ("symbol" or
// "page"), or blank rows for an unknown name.
func BigPlay(name string) []string {
	art, ok := bigPlayArt[name]
	if !ok {
		art = [BigCharRows]string{" ", " "}
	}
	return []string{art[0], art[1]}
}
