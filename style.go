package papergrid

import "sort"

// Style is the set of glyphs a Grid is framed with.
//
// Top and Bottom frame the table, Header separates the first row from the
// rest and Split separates every other pair of rows. Left and Right are the
// outer vertical borders and Inner separates adjacent columns. A zero rune or
// a disabled Line draws nothing.
//
// Style is a value: the With* methods return an updated copy and never
// affect the receiver or any other Line.
type Style struct {
	Top    Line
	Bottom Line
	Header Line
	Split  Line

	Left  rune
	Right rune
	Inner rune
}

// WithTop returns a copy of s with the top frame replaced.
func (s Style) WithTop(l Line) Style {
	s.Top = l
	return s
}

// WithBottom returns a copy of s with the bottom frame replaced.
func (s Style) WithBottom(l Line) Style {
	s.Bottom = l
	return s
}

// WithHeader returns a copy of s with the header separator replaced.
// With no header separator the boundary falls back to the Split line.
func (s Style) WithHeader(l Line) Style {
	s.Header = l
	return s
}

// WithSplit returns a copy of s with the row separator replaced.
func (s Style) WithSplit(l Line) Style {
	s.Split = l
	return s
}

// WithLeft returns a copy of s with the left border replaced.
func (s Style) WithLeft(r rune) Style {
	s.Left = r
	return s
}

// WithRight returns a copy of s with the right border replaced.
func (s Style) WithRight(r rune) Style {
	s.Right = r
	return s
}

// WithInner returns a copy of s with the column separator replaced.
func (s Style) WithInner(r rune) Style {
	s.Inner = r
	return s
}

// headerLine returns the rule drawn under the header row.
func (s Style) headerLine() Line {
	if s.Header.Enabled() {
		return s.Header
	}
	return s.Split
}

// ASCII frames every cell with '+', '-' and '|'.
//
//	+---+----------+
//	| N | column 0 |
//	+---+----------+
//	| 0 |   0-0    |
//	+---+----------+
func ASCII() Style {
	line := BorderedLine('-', '+', '+', '+')
	return Style{
		Top:    line,
		Bottom: line,
		Header: line,
		Split:  line,
		Left:   '|',
		Right:  '|',
		Inner:  '|',
	}
}

// Psql looks like the psql client output.
//
//	 N | column 0
//	---+----------
//	 0 |   0-0
func Psql() Style {
	return Style{
		Header: ShortLine('-', '+'),
		Inner:  '|',
	}
}

// GithubMarkdown renders a GitHub flavoured markdown table.
//
//	| N | column 0 |
//	|---+----------|
//	| 0 |   0-0    |
func GithubMarkdown() Style {
	return Style{
		Header: BorderedLine('-', '+', '|', '|'),
		Left:   '|',
		Right:  '|',
		Inner:  '|',
	}
}

// Pseudo frames every cell with box drawing characters.
//
//	┌───┬──────────┐
//	│ N │ column 0 │
//	├───┼──────────┤
//	│ 0 │   0-0    │
//	└───┴──────────┘
func Pseudo() Style {
	inner := BorderedLine('─', '┼', '├', '┤')
	return Style{
		Top:    BorderedLine('─', '┬', '┌', '┐'),
		Bottom: BorderedLine('─', '┴', '└', '┘'),
		Header: inner,
		Split:  inner,
		Left:   '│',
		Right:  '│',
		Inner:  '│',
	}
}

// PseudoClean is Pseudo without rules between body rows.
func PseudoClean() Style {
	return Pseudo().WithSplit(NoLine)
}

// NoBorder separates columns with a single space and draws no rules.
func NoBorder() Style {
	return Style{Inner: ' '}
}

// Extended frames every cell with double box drawing characters.
func Extended() Style {
	inner := BorderedLine('═', '╬', '╠', '╣')
	return Style{
		Top:    BorderedLine('═', '╦', '╔', '╗'),
		Bottom: BorderedLine('═', '╩', '╚', '╝'),
		Header: inner,
		Split:  inner,
		Left:   '║',
		Right:  '║',
		Inner:  '║',
	}
}

// Dots frames every cell with '.' and ':'.
func Dots() Style {
	inner := BorderedLine('.', ':', ':', ':')
	return Style{
		Top:    BorderedLine('.', '.', '.', '.'),
		Bottom: inner,
		Header: inner,
		Split:  inner,
		Left:   ':',
		Right:  ':',
		Inner:  ':',
	}
}

// ReStructuredText renders a reStructuredText simple table.
//
//	=== ==========
//	 N   column 0
//	=== ==========
//	 0     0-0
//	=== ==========
func ReStructuredText() Style {
	line := ShortLine('=', ' ')
	return Style{
		Top:    line,
		Bottom: line,
		Header: line,
		Inner:  ' ',
	}
}

var styles = map[string]func() Style{
	"ascii":              ASCII,
	"psql":               Psql,
	"github_markdown":    GithubMarkdown,
	"pseudo":             Pseudo,
	"pseudo_clean":       PseudoClean,
	"noborder":           NoBorder,
	"extended":           Extended,
	"dots":               Dots,
	"re_structured_text": ReStructuredText,
}

// StyleByName returns the preset registered under name, e.g. "ascii" or "pseudo_clean".
func StyleByName(name string) (Style, bool) {
	preset, ok := styles[name]
	if !ok {
		return Style{}, false
	}
	return preset(), true
}

// StyleNames returns the names of all presets in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
