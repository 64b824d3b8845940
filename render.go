package papergrid

import "strings"

// cell is the prepared content of one grid position.
type cell struct {
	lines  []string // tab-expanded, trimmed when requested
	widths []int    // display width of each line
	width  int      // content width, capped by MaxWidth
	format Formatting
}

// prepare expands, splits and measures every cell.
func (g *Grid) prepare() [][]cell {
	cells := make([][]cell, g.rows)
	for row := range cells {
		cells[row] = make([]cell, g.cols)
		for col := range cells[row] {
			cells[row][col] = g.prepareCell(row, col)
		}
	}
	return cells
}

func (g *Grid) prepareCell(row, col int) cell {
	text := g.cells[row][col]
	c := cell{format: g.Formatting(row, col)}

	c.lines = g.ops.SplitLines(g.ops.ExpandTabs(text, g.tabWidth), "\n")
	c.widths = make([]int, len(c.lines))
	for i, line := range c.lines {
		if c.format.Trim {
			line = g.ops.Trim(line)
			c.lines[i] = line
		}
		c.widths[i] = g.ops.Width(line)
	}

	if c.format.Trim {
		for _, w := range c.widths {
			c.width = max(c.width, w)
		}
	} else {
		c.width = g.ops.WidthMultilineTab(text, g.tabWidth)
	}
	if c.format.MaxWidth > 0 {
		c.width = min(c.width, c.format.MaxWidth)
	}
	return c
}

// columnWidths returns the width of every column, padding included.
func columnWidths(cells [][]cell, cols int) []int {
	widths := make([]int, cols)
	for _, row := range cells {
		for col, c := range row {
			p := c.format.Padding
			widths[col] = max(widths[col], c.width+p.Left+p.Right)
		}
	}
	return widths
}

// rowHeights returns the height of every row, padding included.
func rowHeights(cells [][]cell) []int {
	heights := make([]int, len(cells))
	for row, cs := range cells {
		for _, c := range cs {
			p := c.format.Padding
			heights[row] = max(heights[row], len(c.lines)+p.Top+p.Bottom)
		}
	}
	return heights
}

// String renders the grid. Every line, the last included, ends with '\n'.
// An empty grid renders as "".
func (g *Grid) String() string {
	if g.rows == 0 || g.cols == 0 {
		return ""
	}

	cells := g.prepare()
	widths := columnWidths(cells, g.cols)
	heights := rowHeights(cells)
	s := g.style

	var b strings.Builder
	if s.Top.Enabled() {
		s.Top.render(&b, widths, s.Left, s.Inner, s.Right)
	}
	for row := range cells {
		if row > 0 {
			line := s.Split
			if row == 1 && g.header {
				line = s.headerLine()
			}
			if line.Enabled() {
				line.render(&b, widths, s.Left, s.Inner, s.Right)
			}
		}
		g.renderRow(&b, cells[row], widths, heights[row])
	}
	if s.Bottom.Enabled() {
		s.Bottom.render(&b, widths, s.Left, s.Inner, s.Right)
	}
	return b.String()
}

func (g *Grid) renderRow(b *strings.Builder, cells []cell, widths []int, height int) {
	s := g.style
	for i := 0; i < height; i++ {
		if s.Left != 0 {
			b.WriteRune(s.Left)
		}
		for col, c := range cells {
			if col > 0 && s.Inner != 0 {
				b.WriteRune(s.Inner)
			}
			g.renderCellLine(b, c, i, widths[col], height)
		}
		if s.Right != 0 {
			b.WriteRune(s.Right)
		}
		b.WriteByte('\n')
	}
}

// renderCellLine writes line i of a cell laid out in a width x height box.
func (g *Grid) renderCellLine(b *strings.Builder, c cell, i, width, height int) {
	p := c.format.Padding
	avail := max(width-p.Left-p.Right, 0)

	space := height - p.Top - p.Bottom
	offset := 0
	switch c.format.Vertical {
	case AlignMiddle:
		offset = (space - len(c.lines)) / 2
	case AlignBottom:
		offset = space - len(c.lines)
	}

	text, textWidth := "", 0
	if k := i - p.Top - offset; k >= 0 && k < len(c.lines) {
		text, textWidth = c.lines[k], c.widths[k]
	}
	if textWidth > avail {
		text, textWidth = g.ops.Cut(text, avail), avail
	}

	left, right := 0, avail-textWidth
	switch c.format.Horizontal {
	case AlignCenter:
		left = right / 2
		right -= left
	case AlignRight:
		left, right = right, 0
	}

	writeSpaces(b, p.Left+left)
	b.WriteString(text)
	writeSpaces(b, right+p.Right)
}

func writeSpaces(b *strings.Builder, n int) {
	for ; n > 0; n-- {
		b.WriteByte(' ')
	}
}
