package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/openmarquee/marquee/internal/core/font"
)

// TokenName extracts the variable name from a `name|transform+arg` token.
func TokenName(token string) string {
	if i := strings.IndexByte(token, '|'); i >= 0 {
		return token[:i]
	}
	return token
}

// ApplyTransforms runs the transform stages of token over val, left to
// right. Failures are soft: a type mismatch returns the original value, a
// bad big-character request returns the literal "Err", and a failed int
// cast yields 0. Type mismatches, unknown requests and bad big-character
// requests are logged; a failed int cast is not.
func ApplyTransforms(val Value, token string, log Logger) Value {
	parts := strings.Split(token, "|")
	if len(parts) <= 1 {
		return val
	}

	retval := val
	for _, stage := range parts[1:] {
		args := strings.Split(stage, "+")
		request := args[0]
		args = args[1:]

		switch request {
		case "onoff", "truefalse", "yesno":
			b, ok := retval.BoolVal()
			if !ok {
				log.Debug("boolean transform requires boolean input", Field("token", token))
				return val
			}
			retval = Text(pickBool(request, b))

		case "int":
			retval = Int(castInt(retval))

		case "upper", "lower", "capitalize", "title":
			s, ok := retval.TextVal()
			if !ok {
				log.Debug("string transform requires string input", Field("token", token))
				return val
			}
			retval = Text(caseTransform(request, s))

		case "bigchars", "bigplay":
			retval = bigTransform(request, retval, args, log)

		default:
			log.Debug("unknown transform request", Field("token", token), Field("request", request))
			return val
		}
	}
	return retval
}

func pickBool(request string, b bool) string {
	switch request {
	case "onoff":
		if b {
			return "on"
		}
		return "off"
	case "truefalse":
		if b {
			return "true"
		}
		return "false"
	default:
		if b {
			return "yes"
		}
		return "no"
	}
}

func castInt(v Value) int64 {
	switch v.Kind() {
	case KindBool:
		if b, _ := v.BoolVal(); b {
			return 1
		}
		return 0
	case KindInt:
		return int64(v.Number())
	case KindFloat:
		return int64(v.Number())
	default:
		s, _ := v.TextVal()
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
}

func caseTransform(request, s string) string {
	switch request {
	case "upper":
		return strings.ToUpper(s)
	case "lower":
		return strings.ToLower(s)
	case "capitalize":
		if s == "" {
			return s
		}
		r := []rune(strings.ToLower(s))
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	default: // title
		return titleCase(s)
	}
}

func titleCase(s string) string {
	var sb strings.Builder
	startWord := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			startWord = true
			sb.WriteRune(r)
		case startWord:
			sb.WriteRune(unicode.ToUpper(r))
			startWord = false
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}

// bigTransform renders one line of a big-character rendering. The first
// argument selects the line; an optional second argument spreads the input
// characters with that many spaces.
func bigTransform(request string, v Value, args []string, log Logger) Value {
	if len(args) == 0 {
		log.Debug("big transform requires a line argument", Field("request", request))
		return Text("Err")
	}
	if len(args) > 2 {
		// Extra arguments are safe to ignore but worth noting.
		log.Debug("big transform expected at most two arguments", Field("request", request), Field("got", len(args)))
	}

	line, err := strconv.Atoi(args[0])
	if err != nil {
		log.Debug("bad line for big transform", Field("request", request), Field("line", args[0]))
		return Text("Err")
	}

	input := v.String()
	if len(args) >= 2 {
		if spacing, err := strconv.Atoi(args[1]); err == nil && spacing > 0 {
			sep := strings.Repeat(" ", spacing)
			input = strings.Join(strings.Split(input, ""), sep)
		} else if err != nil {
			log.Debug("bad spacing for big transform", Field("request", request), Field("spacing", args[1]))
			return Text("Err")
		}
	}

	var rows []string
	if request == "bigchars" {
		rows = font.BigChars(input)
	} else {
		symbol := font.BigPlay("symbol")
		page := font.BigPlay("page")
		rows = make([]string, len(symbol))
		for i := range symbol {
			rows[i] = symbol[i] + "  " + page[i]
		}
	}

	if line < 0 || line >= len(rows) {
		log.Debug("line out of range for big transform", Field("request", request), Field("line", line))
		return Text("Err")
	}
	return Text(rows[line])
}
