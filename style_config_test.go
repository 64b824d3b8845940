package papergrid

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStyle(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected Style
	}{
		{
			name:     "empty",
			yaml:     "",
			expected: Style{},
		},
		{
			name:     "preset",
			yaml:     "base: ascii",
			expected: ASCII(),
		},
		{
			name: "disable header",
			yaml: `
base: pseudo_clean
header:
  disabled: true
`,
			expected: PseudoClean().WithHeader(NoLine),
		},
		{
			name: "custom lines",
			yaml: `
base: noborder
bottom:
  main: "*"
  intersection: "'"
split:
  main: "` + "`" + `"
  intersection: "'"
inner: "'"
`,
			expected: NoBorder().
				WithBottom(ShortLine('*', '\'')).
				WithSplit(ShortLine('`', '\'')).
				WithInner('\''),
		},
		{
			name: "remove borders",
			yaml: `
base: ascii
left: ""
right: ""
top:
  main: "="
  intersection: "+"
  left_corner: "<"
  right_corner: ">"
`,
			expected: ASCII().
				WithLeft(0).
				WithRight(0).
				WithTop(BorderedLine('=', '+', '<', '>')),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadStyle([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("style mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadStyleErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"unknown base", "base: fancy", `base "fancy"`},
		{"long glyph", "inner: '||'", `inner: "||" is not a single character`},
		{"missing main", "top:\n  intersection: '+'", "top: main glyph is required"},
		{"bad line glyph", "split:\n  main: '-'\n  intersection: ab", `split: intersection: "ab" is not a single character`},
		{"control glyph", "inner: \"\\t\"", `inner: "\t" is not printable`},
		{"wide glyph", "inner: \"\u4e2d\"", "inner: \"\u4e2d\" is wider than one column"},
		{"wide line glyph", "top:\n  main: \"\u4e2d\"", "top: main: \"\u4e2d\" is wider than one column"},
		{"bad yaml", "top: [", "failed to parse style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadStyle([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("expected error containing %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestLoadStyleUnknownBase(t *testing.T) {
	_, err := LoadStyle([]byte("base: fancy"))
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("expected ErrUnknownStyle, got %v", err)
	}
}

func TestLoadStyleRenders(t *testing.T) {
	style, err := LoadStyle([]byte("base: psql\ninner: ':'"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertTable(t, NewGrid([][]string{{"a", "b"}, {"1", "2"}}, WithStyle(style)).String(),
		" a : b ",
		"---+---",
		" 1 : 2 ",
	)
}
