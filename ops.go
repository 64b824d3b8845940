package papergrid

import (
	"strings"
	"unicode"
)

// StringOps measures and slices cell text. Implementations differ in how they
// treat embedded escape sequences; callers depend only on this interface.
//
// All methods are pure and safe for concurrent use.
type StringOps interface {
	// Strip removes escape sequences. Plain implementations return s unchanged.
	Strip(s string) string
	// Width returns the display width of s.
	Width(s string) int
	// WidthMultiline returns the width of the widest line of s.
	WidthMultiline(s string) int
	// WidthTab returns Width(s) plus tabWidth for every unescaped tab.
	WidthTab(s string, tabWidth int) int
	// WidthMultilineTab returns the largest WidthTab over the lines of s.
	WidthMultilineTab(s string, tabWidth int) int
	// ExpandTabs replaces every unescaped tab with n spaces. It escapes tabs
	// by the same rule WidthTab counts them with.
	ExpandTabs(s string, n int) string
	// Cut returns the longest prefix of s that fits in width columns.
	// A wide rune that does not fit is replaced by U+FFFD placeholders so the
	// result is exactly width columns wide whenever s is at least that wide.
	Cut(s string, width int) string
	// Trim removes leading and trailing whitespace.
	Trim(s string) string
	// SplitLines splits s around each occurrence of sep.
	SplitLines(s, sep string) []string
}

// OpsOption configures a StringOps during construction.
type OpsOption func(*opsConfig)

type opsConfig struct {
	escapes       bool
	ambiguousWide bool
}

// WithEscapes selects the escape-aware strategy (the default) or the plain one.
func WithEscapes(enabled bool) OpsOption {
	return func(c *opsConfig) {
		c.escapes = enabled
	}
}

// WithAmbiguousWide measures East Asian ambiguous characters (Greek, Cyrillic,
// box drawing, ...) as two columns, as CJK terminals do.
func WithAmbiguousWide(enabled bool) OpsOption {
	return func(c *opsConfig) {
		c.ambiguousWide = enabled
	}
}

// NewStringOps creates a StringOps. By default escape sequences are zero-width
// and preserved by every operation.
func NewStringOps(opts ...OpsOption) StringOps {
	cfg := opsConfig{escapes: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	width := RuneWidth
	if cfg.ambiguousWide {
		width = ambiguousRuneWidth
	}

	if cfg.escapes {
		return escapeOps{plainOps{runeWidth: width}}
	}
	return plainOps{runeWidth: width}
}

var defaultOps = NewStringOps()

// Ensure both strategies satisfy StringOps
var (
	_ StringOps = plainOps{}
	_ StringOps = escapeOps{}
)

// plainOps treats every rune as text.
type plainOps struct {
	runeWidth func(rune) int
}

func (plainOps) Strip(s string) string {
	return s
}

func (o plainOps) Width(s string) int {
	return runesWidth(s, o.runeWidth)
}

func (o plainOps) WidthMultiline(s string) int {
	return maxLineWidth(s, o.Width)
}

func (o plainOps) WidthTab(s string, tabWidth int) int {
	return o.Width(s) + tabWidth*countTabs(s)
}

func (o plainOps) WidthMultilineTab(s string, tabWidth int) int {
	return maxLineWidth(s, func(line string) int {
		return o.WidthTab(line, tabWidth)
	})
}

func (plainOps) ExpandTabs(s string, n int) string {
	if strings.IndexByte(s, '\t') < 0 {
		return s
	}
	return expandTabs([]segment{{text: s}}, n)
}

func (o plainOps) Cut(s string, width int) string {
	if width < 0 {
		width = 0
	}
	res := splitAtWidth(s, width, o.runeWidth)
	if res.Length == len(s) && res.Placeholders == 0 {
		return s
	}
	if res.Placeholders == 0 {
		return s[:res.Length]
	}
	return s[:res.Length] + placeholders(res.Placeholders)
}

func (plainOps) Trim(s string) string {
	return strings.TrimSpace(s)
}

func (plainOps) SplitLines(s, sep string) []string {
	if sep == "" {
		return []string{s}
	}
	return strings.Split(s, sep)
}

// escapeOps keeps escape sequences out of every width computation and carries
// them through cut, trim and split untouched.
type escapeOps struct {
	plainOps
}

func (escapeOps) Strip(s string) string {
	return stripEscapes(s)
}

func (o escapeOps) Width(s string) int {
	return runesWidth(stripEscapes(s), o.runeWidth)
}

func (o escapeOps) WidthMultiline(s string) int {
	return maxLineWidth(stripEscapes(s), o.plainOps.Width)
}

func (o escapeOps) WidthTab(s string, tabWidth int) int {
	return o.plainOps.WidthTab(stripEscapes(s), tabWidth)
}

func (o escapeOps) WidthMultilineTab(s string, tabWidth int) int {
	return o.plainOps.WidthMultilineTab(stripEscapes(s), tabWidth)
}

func (o escapeOps) ExpandTabs(s string, n int) string {
	if !hasEscape(s) {
		return o.plainOps.ExpandTabs(s, n)
	}
	if strings.IndexByte(s, '\t') < 0 {
		return s
	}
	return expandTabs(splitSegments(s), n)
}

// Cut keeps every escape sequence. Those that follow the cut point are written
// after the kept text and its placeholders, so a trailing reset stays last.
func (o escapeOps) Cut(s string, width int) string {
	if !hasEscape(s) {
		return o.plainOps.Cut(s, width)
	}
	if width < 0 {
		width = 0
	}
	if width >= o.Width(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 3*width)
	used := 0
	done := false
	for _, seg := range splitSegments(s) {
		if seg.escape {
			b.WriteString(seg.text)
			continue
		}
		if done {
			continue
		}
		res := splitAtWidth(seg.text, width-used, o.runeWidth)
		b.WriteString(seg.text[:res.Length])
		if res.Length < len(seg.text) {
			b.WriteString(placeholders(res.Placeholders))
			done = true
			continue
		}
		used += runesWidth(seg.text, o.runeWidth)
	}
	return b.String()
}

func (o escapeOps) Trim(s string) string {
	if !hasEscape(s) {
		return o.plainOps.Trim(s)
	}

	segs := splitSegments(s)
	first, last := -1, -1 // segment indexes holding the first and last visible non-space runes
	for i, seg := range segs {
		if seg.escape || strings.TrimSpace(seg.text) == "" {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, seg := range segs {
		switch {
		case seg.escape:
			b.WriteString(seg.text)
		case first < 0 || i < first || i > last:
		case i == first && i == last:
			b.WriteString(strings.TrimSpace(seg.text))
		case i == first:
			b.WriteString(strings.TrimLeftFunc(seg.text, unicode.IsSpace))
		case i == last:
			b.WriteString(strings.TrimRightFunc(seg.text, unicode.IsSpace))
		default:
			b.WriteString(seg.text)
		}
	}
	return b.String()
}

func (o escapeOps) SplitLines(s, sep string) []string {
	if sep == "" {
		return []string{s}
	}
	if !hasEscape(s) {
		return o.plainOps.SplitLines(s, sep)
	}
	return splitCarryingStyle(s, sep)
}

// placedEscape is an escape sequence anchored at a byte offset of the stripped text.
type placedEscape struct {
	seq string
	at  int
}

// splitCarryingStyle splits the visible text of s on sep. Escapes stay in the
// piece they belong to; SGR styling that is active across a split is closed at
// the end of one piece and reopened at the start of the next.
func splitCarryingStyle(s, sep string) []string {
	var plain strings.Builder
	var escapes []placedEscape
	for _, seg := range splitSegments(s) {
		if seg.escape {
			escapes = append(escapes, placedEscape{seq: seg.text, at: plain.Len()})
			continue
		}
		plain.WriteString(seg.text)
	}

	text := plain.String()
	pieces := strings.Split(text, sep)
	out := make([]string, 0, len(pieces))

	var state sgrState
	next := 0  // next escape to place
	start := 0 // offset of the current piece in text
	for i, piece := range pieces {
		end := start + len(piece)

		var b strings.Builder
		if i > 0 {
			// Escapes hidden inside the separator still change the style.
			for next < len(escapes) && escapes[next].at < start {
				state = state.apply(escapes[next].seq)
				next++
			}
			b.WriteString(state.String())
		}

		pos := start
		for next < len(escapes) && escapes[next].at <= end {
			e := escapes[next]
			b.WriteString(text[pos:e.at])
			b.WriteString(e.seq)
			state = state.apply(e.seq)
			pos = e.at
			next++
		}
		b.WriteString(text[pos:end])

		if i < len(pieces)-1 && state.active() {
			b.WriteString(resetSGR)
		}
		out = append(out, b.String())
		start = end + len(sep)
	}
	return out
}
