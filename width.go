package papergrid

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/unilibs/uniwidth"
)

// RuneWidth returns the display width of r: 2 for wide characters (CJK, emoji),
// 1 for normal, 0 for zero-width runes (combining marks) and control characters.
func RuneWidth(r rune) int {
	if isControl(r) {
		return 0
	}
	return uniwidth.RuneWidth(r)
}

// isControl reports C0, DEL and C1 control characters.
func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r < 0xa0)
}

// ambiguousWide measures East Asian ambiguous runes as 2 columns.
var ambiguousWide = &runewidth.Condition{EastAsianWidth: true}

func ambiguousRuneWidth(r rune) int {
	if isControl(r) {
		return 0
	}
	return ambiguousWide.RuneWidth(r)
}

// runesWidth sums the width of every rune in s, escape sequences included.
func runesWidth(s string, width func(rune) int) int {
	n := 0
	for _, r := range s {
		n += width(r)
	}
	return n
}

// StringWidth returns the display width of s, ignoring embedded escape sequences.
func StringWidth(s string) int {
	return defaultOps.Width(s)
}

// StringWidthMultiline returns the width of the widest line of s.
func StringWidthMultiline(s string) int {
	return defaultOps.WidthMultiline(s)
}

// StringWidthTab returns the width of s with each unescaped tab counted as tabWidth columns.
// Tabs are not expanded: the result is StringWidth(s) + tabWidth*CountTabs(s).
func StringWidthTab(s string, tabWidth int) int {
	return defaultOps.WidthTab(s, tabWidth)
}

// StringWidthMultilineTab returns the largest StringWidthTab over the lines of s.
func StringWidthMultilineTab(s string, tabWidth int) int {
	return defaultOps.WidthMultilineTab(s, tabWidth)
}

// maxLineWidth applies measure to every line of s and returns the largest result.
func maxLineWidth(s string, measure func(string) int) int {
	widest := 0
	for {
		line, rest, found := strings.Cut(s, "\n")
		if w := measure(line); w > widest {
			widest = w
		}
		if !found {
			return widest
		}
		s = rest
	}
}
