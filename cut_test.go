package papergrid

import (
	"testing"
)

func TestSplitAtWidth(t *testing.T) {
	tests := []struct {
		s        string
		width    int
		expected CutResult
	}{
		{"abc", 0, CutResult{}},
		{"abc", 2, CutResult{Length: 2}},
		{"abc", 5, CutResult{Length: 3}},
		{"😳😳", 3, CutResult{Length: 4, Placeholders: 1, BoundaryLen: 4}},
		{"😳😳", 1, CutResult{Length: 0, Placeholders: 1, BoundaryLen: 4}},
		{"中文", 3, CutResult{Length: 3, Placeholders: 1, BoundaryLen: 3}},
		{"a中", 1, CutResult{Length: 1}},
		{"abc", -1, CutResult{}},
	}

	for _, tt := range tests {
		got := SplitAtWidth(tt.s, tt.width)
		if got != tt.expected {
			t.Errorf("SplitAtWidth(%q, %d) = %+v, want %+v", tt.s, tt.width, got, tt.expected)
		}
	}
}

func TestCut(t *testing.T) {
	tests := []struct {
		s        string
		width    int
		expected string
	}{
		{"123456", 0, ""},
		{"123456", 3, "123"},
		{"123456", 10, "123456"},
		{"a week ago", 4, "a we"},
		{"😳😳😳😳😳", 0, ""},
		{"😳😳😳😳😳", 3, "😳\uFFFD"},
		{"😳😳😳😳😳", 4, "😳😳"},
		{"😳😳😳😳😳", 20, "😳😳😳😳😳"},
		{"🎓", 1, "\uFFFD"},
		{"🎓", 2, "🎓"},
		{"中文字", 3, "中\uFFFD"},
		{"中文字", 5, "中文\uFFFD"},
		{"", 3, ""},
		{"\u00e9", 1, "\u00e9"},
		{"e\u0301x", 1, "e"},
		{"abc", -2, ""},
	}

	for _, tt := range tests {
		got := Cut(tt.s, tt.width)
		if got != tt.expected {
			t.Errorf("Cut(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.expected)
		}
	}
}

func TestCutKeepsEscapes(t *testing.T) {
	numbers := "\x1b[31;100m123456\x1b[39m\x1b[49m"
	emojis := "\x1b[31;100m😳😳😳😳😳\x1b[39m\x1b[49m"

	tests := []struct {
		s        string
		width    int
		expected string
	}{
		{numbers, 0, "\x1b[31;100m\x1b[39m\x1b[49m"},
		{numbers, 3, "\x1b[31;100m123\x1b[39m\x1b[49m"},
		{numbers, 10, numbers},
		{emojis, 0, "\x1b[31;100m\x1b[39m\x1b[49m"},
		// placeholders come before the closing sequences
		{emojis, 3, "\x1b[31;100m😳\uFFFD\x1b[39m\x1b[49m"},
		{emojis, 4, "\x1b[31;100m😳😳\x1b[39m\x1b[49m"},
		{emojis, 20, emojis},
		{"ab\x1b[1mcd\x1b[0mef", 3, "ab\x1b[1mc\x1b[0m"},
		{"ab\x1b[1mcd\x1b[0mef", 2, "ab\x1b[1m\x1b[0m"},
		{"\x1b[0m", 0, "\x1b[0m"},
	}

	for _, tt := range tests {
		got := Cut(tt.s, tt.width)
		if got != tt.expected {
			t.Errorf("Cut(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.expected)
		}
	}
}

func TestCutWidthIsExact(t *testing.T) {
	inputs := []string{
		"123456",
		"😳😳😳😳😳",
		"中a文b字",
		"\x1b[32m中文\x1b[0m and more",
		"mixed 🎩 content 한글",
	}

	for _, s := range inputs {
		total := StringWidth(s)
		for w := 0; w <= total; w++ {
			if got := StringWidth(Cut(s, w)); got != w {
				t.Errorf("StringWidth(Cut(%q, %d)) = %d, want %d", s, w, got, w)
			}
		}
		for w := total; w <= total+3; w++ {
			if got := Cut(s, w); got != s {
				t.Errorf("Cut(%q, %d) = %q, want the input unchanged", s, w, got)
			}
		}
	}
}

func TestPlainOpsCountEscapeBytes(t *testing.T) {
	ops := NewStringOps(WithEscapes(false))

	if got := ops.Width("\x1b[31mab"); got != 6 {
		t.Errorf("Width = %d, want 6", got)
	}
	if got := ops.Cut("\x1b[31mab", 2); got != "\x1b[3" {
		t.Errorf("Cut = %q, want %q", got, "\x1b[3")
	}
	if got := ops.Strip("\x1b[31mab"); got != "\x1b[31mab" {
		t.Errorf("Strip = %q, want input unchanged", got)
	}
}

func TestAmbiguousWide(t *testing.T) {
	narrow := NewStringOps()
	wide := NewStringOps(WithAmbiguousWide(true))

	if got := narrow.Width("αβ"); got != 2 {
		t.Errorf("narrow Width(αβ) = %d, want 2", got)
	}
	if got := wide.Width("αβ"); got != 4 {
		t.Errorf("wide Width(αβ) = %d, want 4", got)
	}
	if got := wide.Cut("αβ", 3); got != "α\uFFFD" {
		t.Errorf("wide Cut(αβ, 3) = %q, want %q", got, "α\uFFFD")
	}
	if got := wide.Width("\x1b[1mα\x1b[0m"); got != 2 {
		t.Errorf("wide Width of styled α = %d, want 2", got)
	}
}
