package papergrid

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// segment is a run of visible text or a single escape sequence.
type segment struct {
	text   string
	escape bool
}

// splitSegments breaks s into alternating runs of text and escape sequences.
// Adjacent text is merged into one segment; every escape sequence is its own segment.
func splitSegments(s string) []segment {
	var segs []segment
	var state byte
	start := 0 // start of the pending text run
	i := 0
	for i < len(s) {
		seq, _, n, newState := ansi.DecodeSequence(s[i:], state, nil)
		state = newState
		if n <= 0 {
			n = 1
		}
		if isEscape(seq) {
			if start < i {
				segs = append(segs, segment{text: s[start:i]})
			}
			segs = append(segs, segment{text: s[i : i+n], escape: true})
			start = i + n
		}
		i += n
	}
	if start < len(s) {
		segs = append(segs, segment{text: s[start:]})
	}
	return segs
}

// isEscape reports whether seq is a complete escape sequence. An unterminated
// sequence, e.g. an OSC cut off before its BEL or ST, is visible text.
func isEscape(seq string) bool {
	if len(seq) < 2 || seq[0] != ansi.ESC {
		return false
	}
	last := seq[len(seq)-1]
	switch seq[1] {
	case '[':
		return len(seq) > 2 && last >= 0x40 && last <= 0x7e
	case ']':
		return last == ansi.BEL || strings.HasSuffix(seq[2:], "\x1b\\")
	case 'P', '_', '^', 'X':
		return strings.HasSuffix(seq[2:], "\x1b\\")
	}
	return last >= 0x30 && last <= 0x7e
}

// hasEscape is the fast path check: strings without ESC need no tokenizing.
func hasEscape(s string) bool {
	return strings.IndexByte(s, ansi.ESC) >= 0
}

// stripEscapes removes every escape sequence from s.
func stripEscapes(s string) string {
	if !hasEscape(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range splitSegments(s) {
		if !seg.escape {
			b.WriteString(seg.text)
		}
	}
	return b.String()
}

// resetSGR turns off every SGR attribute.
const resetSGR = "\x1b[0m"

// isSGR reports whether seq is a Select Graphic Rendition sequence (CSI ... m).
func isSGR(seq string) bool {
	return len(seq) >= 3 && seq[0] == ansi.ESC && seq[1] == '[' && seq[len(seq)-1] == 'm'
}

// sgrAttr is one rendition attribute in effect.
type sgrAttr struct {
	slot  string // attribute the parameter controls, e.g. "fg"
	param string // parameter that set it, e.g. "31" or "38;5;208"
}

// sgrOff maps the parameters that turn an attribute off to that attribute.
var sgrOff = map[string]string{
	"22": "intensity",
	"23": "italic",
	"24": "underline",
	"25": "blink",
	"27": "reverse",
	"28": "conceal",
	"29": "strike",
	"39": "fg",
	"49": "bg",
	"55": "overline",
	"59": "ulcolor",
}

// sgrSlot returns the attribute set by code. Unknown codes are their own attribute.
func sgrSlot(code string) string {
	switch code {
	case "1", "2":
		return "intensity"
	case "3":
		return "italic"
	case "4", "21":
		return "underline"
	case "5", "6":
		return "blink"
	case "7":
		return "reverse"
	case "8":
		return "conceal"
	case "9":
		return "strike"
	case "38":
		return "fg"
	case "48":
		return "bg"
	case "53":
		return "overline"
	case "58":
		return "ulcolor"
	}
	n, err := strconv.Atoi(code)
	switch {
	case err != nil:
	case n >= 30 && n <= 37, n >= 90 && n <= 97:
		return "fg"
	case n >= 40 && n <= 47, n >= 100 && n <= 107:
		return "bg"
	}
	return code
}

// sgrState is the set of attributes in effect since the last full reset, in
// the order they were first set.
type sgrState []sgrAttr

// apply updates the state with seq. Non-SGR sequences are ignored. Attributes
// turned off again are dropped, so a state whose styling was fully undone is
// empty.
func (st sgrState) apply(seq string) sgrState {
	if !isSGR(seq) {
		return st
	}
	fields := strings.Split(seq[2:len(seq)-1], ";")
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		code, sub, hasSub := strings.Cut(field, ":")
		switch {
		case strings.Trim(code, "0") == "":
			st = st[:0]
		case code == "4" && hasSub && sub == "0":
			st = st.clear("underline")
		case sgrOff[code] != "":
			st = st.clear(sgrOff[code])
		default:
			param := field
			if !hasSub && (code == "38" || code == "48" || code == "58") && i+1 < len(fields) {
				// 38;5;n and 38;2;r;g;b carry their color in the following fields.
				n := 0
				switch fields[i+1] {
				case "5":
					n = 2
				case "2":
					n = 4
				}
				n = min(n, len(fields)-1-i)
				param = strings.Join(fields[i:i+1+n], ";")
				i += n
			}
			st = st.set(sgrSlot(code), param)
		}
	}
	return st
}

func (st sgrState) set(slot, param string) sgrState {
	for i := range st {
		if st[i].slot == slot {
			st[i].param = param
			return st
		}
	}
	return append(st, sgrAttr{slot: slot, param: param})
}

func (st sgrState) clear(slot string) sgrState {
	return slices.DeleteFunc(st, func(a sgrAttr) bool {
		return a.slot == slot
	})
}

func (st sgrState) active() bool {
	return len(st) > 0
}

// String returns the sequences that restore the state, one per attribute.
func (st sgrState) String() string {
	var b strings.Builder
	for _, a := range st {
		b.WriteString("\x1b[")
		b.WriteString(a.param)
		b.WriteByte('m')
	}
	return b.String()
}
