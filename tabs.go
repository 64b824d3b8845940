package papergrid

import "strings"

// ExpandTabs replaces every unescaped tab in s with n spaces; with n == 0 the
// tab is removed. A tab whose preceding visible byte is a backslash is an
// escaped tab and is kept as is. Escape sequences are copied through and are
// never the byte preceding a tab.
func ExpandTabs(s string, n int) string {
	return defaultOps.ExpandTabs(s, n)
}

// CountTabs returns the number of unescaped tabs in the visible text of s.
func CountTabs(s string) int {
	return countTabs(stripEscapes(s))
}

// expandTabs expands the tabs of the text segments of segs. Escape segments
// are written as is and do not change the previous visible byte.
func expandTabs(segs []segment, n int) string {
	if n < 0 {
		n = 0
	}

	spaces := strings.Repeat(" ", n)
	var b strings.Builder

	var prev byte // last visible byte written
	for _, seg := range segs {
		if seg.escape {
			b.WriteString(seg.text)
			continue
		}
		for i := 0; i < len(seg.text); i++ {
			c := seg.text[i]
			if c != '\t' {
				b.WriteByte(c)
				prev = c
				continue
			}

			switch {
			case prev == '\\':
				b.WriteByte(c)
				prev = c
			case n == 0:
			default:
				b.WriteString(spaces)
				prev = ' '
			}
		}
	}
	return b.String()
}

// countTabs counts the tabs of s that do not follow a backslash.
func countTabs(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' && (i == 0 || s[i-1] != '\\') {
			count++
		}
	}
	return count
}
