package papergrid

import "strings"

// Line describes a horizontal rule of the table.
//
// Main fills the width of each column, Intersection is drawn where the rule
// crosses an inner vertical separator, LeftCorner and RightCorner where it meets
// the outer frame. A zero Main means there is no rule at all; a zero
// Intersection or corner is drawn with Main so the rule stays aligned with the rows.
type Line struct {
	Main         rune
	Intersection rune
	LeftCorner   rune
	RightCorner  rune
}

// NoLine disables a rule.
var NoLine = Line{}

// ShortLine returns a rule without corners.
func ShortLine(main, intersection rune) Line {
	return Line{Main: main, Intersection: intersection}
}

// BorderedLine returns a rule with corner glyphs for the left and right frame.
func BorderedLine(main, intersection, left, right rune) Line {
	return Line{Main: main, Intersection: intersection, LeftCorner: left, RightCorner: right}
}

// Enabled returns true if the rule is drawn.
func (l Line) Enabled() bool {
	return l.Main != 0
}

func (l Line) intersection() rune {
	if l.Intersection != 0 {
		return l.Intersection
	}
	return l.Main
}

func (l Line) leftCorner() rune {
	if l.LeftCorner != 0 {
		return l.LeftCorner
	}
	return l.Main
}

func (l Line) rightCorner() rune {
	if l.RightCorner != 0 {
		return l.RightCorner
	}
	return l.Main
}

// render draws the rule across columns of the given widths. left, inner and
// right are the style's vertical separators; a zero separator has no slot in the rule.
func (l Line) render(b *strings.Builder, widths []int, left, inner, right rune) {
	if left != 0 {
		b.WriteRune(l.leftCorner())
	}
	for i, w := range widths {
		if i > 0 && inner != 0 {
			b.WriteRune(l.intersection())
		}
		for j := 0; j < w; j++ {
			b.WriteRune(l.Main)
		}
	}
	if right != 0 {
		b.WriteRune(l.rightCorner())
	}
	b.WriteByte('\n')
}
