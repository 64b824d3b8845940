package papergrid

import (
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'A', 1},
		{'a', 1},
		{'1', 1},
		{' ', 1},
		{'中', 2},
		{'日', 2},
		{'本', 2},
		{'한', 2},
		{'글', 2},
		{'가', 2},
		{'Ａ', 2}, // Fullwidth A
		{'😳', 2},
		{'\u0301', 0}, // combining acute accent
		{0, 0},
		{'\t', 0},
		{'\n', 0},
		{0x1b, 0},
		{0x7f, 0},
	}

	for _, tt := range tests {
		got := RuneWidth(tt.r)
		if got != tt.expected {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.expected)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"Hello", 5},
		{"中文", 4},
		{"Hello中文", 9},
		{"", 0},
		{"한글", 4},
		{"🎩", 2},
		{"Rust 💕", 7},
		{"\u00e9", 1},
		{"e\u0301", 1},
		{"\x1b[31mhello world\x1b[0m", 11},
		{"\x1b[34m0\x1b[0m", 1},
		{"\x1b[31m\x1b[0m", 0},
		{"a\tb", 2},

		// unterminated sequences are visible text
		{"ab\x1b]8;;url", 9},
		{"ab\x1b[31", 5},
	}

	for _, tt := range tests {
		got := StringWidth(tt.s)
		if got != tt.expected {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestStringWidthMultiline(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"", 0},
		{"Go 👍\nC 😎", 5},
		{"\x1b[34mhello\nworld\x1b[0m", 5},
		{"a\nlonger\n", 6},
		{"\n\n", 0},
	}

	for _, tt := range tests {
		got := StringWidthMultiline(tt.s)
		if got != tt.expected {
			t.Errorf("StringWidthMultiline(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestStringWidthTab(t *testing.T) {
	tests := []struct {
		s        string
		tabWidth int
		expected int
	}{
		{"a\tb", 4, 6},
		{"\t\t", 3, 6},
		{"\t", 0, 0},
		{"a\\\tb", 4, 3}, // escaped tab
		{"\x1b[31m\t\x1b[0m", 2, 2},
	}

	for _, tt := range tests {
		got := StringWidthTab(tt.s, tt.tabWidth)
		if got != tt.expected {
			t.Errorf("StringWidthTab(%q, %d) = %d, want %d", tt.s, tt.tabWidth, got, tt.expected)
		}
	}
}

func TestStringWidthMultilineTab(t *testing.T) {
	tests := []struct {
		s        string
		tabWidth int
		expected int
	}{
		{"", 4, 0},
		{"ab\n\tc", 4, 5},
		{"\tab\nc", 1, 3},
	}

	for _, tt := range tests {
		got := StringWidthMultilineTab(tt.s, tt.tabWidth)
		if got != tt.expected {
			t.Errorf("StringWidthMultilineTab(%q, %d) = %d, want %d", tt.s, tt.tabWidth, got, tt.expected)
		}
	}
}

func TestStringWidthTabMatchesExpansion(t *testing.T) {
	inputs := []string{
		"",
		"\t",
		"123\t\tabc\t",
		"中\t文",
		"a\\\tb\tc",
		"\x1b[31m\tred\x1b[0m",
		"\x1b]8;;http://x\x1b\\link\x1b]8;;\x1b\\\tz",
		"\\\x1b[31m\tz",
	}

	for _, s := range inputs {
		for _, n := range []int{0, 1, 3, 4, 8} {
			got := StringWidthTab(s, n)
			want := StringWidth(ExpandTabs(s, n))
			if got != want {
				t.Errorf("StringWidthTab(%q, %d) = %d, but expanded width is %d", s, n, got, want)
			}
		}
	}
}
