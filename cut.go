package papergrid

import (
	"strings"
	"unicode/utf8"
)

// Placeholder is written in place of each column of a wide character that
// did not fit in the requested width.
const Placeholder = '\uFFFD'

// CutResult describes where a string is cut to fit a width.
type CutResult struct {
	// Length is the number of bytes to keep.
	Length int
	// Placeholders is the number of Placeholder runes needed to fill the width
	// left over by a character that did not fit.
	Placeholders int
	// BoundaryLen is the byte length of the character that did not fit, or 0.
	BoundaryLen int
}

// SplitAtWidth finds the cut point of s for the given display width.
// Every rune of s counts as text, escape sequences included; use [Cut] for styled strings.
func SplitAtWidth(s string, width int) CutResult {
	if width < 0 {
		width = 0
	}
	return splitAtWidth(s, width, RuneWidth)
}

func splitAtWidth(s string, width int, runeWidth func(rune) int) CutResult {
	length := 0
	used := 0
	for _, r := range s {
		if used == width {
			break
		}

		w := runeWidth(r)
		// A character wider than what is left is dropped whole and the
		// remaining columns are filled with placeholders.
		if used+w > width {
			return CutResult{
				Length:       length,
				Placeholders: width - used,
				BoundaryLen:  utf8.RuneLen(r),
			}
		}

		used += w
		length += utf8.RuneLen(r)
	}
	return CutResult{Length: length}
}

func placeholders(n int) string {
	return strings.Repeat(string(Placeholder), n)
}

// Cut truncates s to width display columns, keeping escape sequences.
// Placeholders are written right after the kept text, before the escape
// sequences that followed the cut point, so a trailing reset stays last:
//
//	Cut("\x1b[31m中中\x1b[0m", 3) == "\x1b[31m中\uFFFD\x1b[0m"
func Cut(s string, width int) string {
	return defaultOps.Cut(s, width)
}
