package papergrid

// AlignmentHorizontal positions a cell line within its column.
type AlignmentHorizontal int

const (
	AlignLeft AlignmentHorizontal = iota
	AlignCenter
	AlignRight
)

// AlignmentVertical positions the lines of a cell within its row.
type AlignmentVertical int

const (
	AlignTop AlignmentVertical = iota
	AlignMiddle
	AlignBottom
)

// Padding is the number of blank columns (Left, Right) and lines (Top, Bottom) around cell content.
type Padding struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Formatting controls how one cell is laid out.
type Formatting struct {
	Horizontal AlignmentHorizontal
	Vertical   AlignmentVertical
	Padding    Padding
	// MaxWidth cuts lines wider than MaxWidth columns; 0 means no limit.
	MaxWidth int
	// Trim removes surrounding whitespace from every line before alignment.
	Trim bool
}

// DefaultFormatting centers content with one space of padding on each side.
func DefaultFormatting() Formatting {
	return Formatting{
		Horizontal: AlignCenter,
		Vertical:   AlignTop,
		Padding:    Padding{Left: 1, Right: 1},
	}
}

// Setting changes the Formatting of the cells an Entity covers.
type Setting func(*Formatting)

// WithAlignment sets the horizontal alignment.
func WithAlignment(a AlignmentHorizontal) Setting {
	return func(f *Formatting) {
		f.Horizontal = a
	}
}

// WithVerticalAlignment sets the vertical alignment of multi-line cells.
func WithVerticalAlignment(a AlignmentVertical) Setting {
	return func(f *Formatting) {
		f.Vertical = a
	}
}

// WithPadding sets the padding. Negative values are treated as 0.
func WithPadding(left, right, top, bottom int) Setting {
	return func(f *Formatting) {
		f.Padding = Padding{
			Left:   max(left, 0),
			Right:  max(right, 0),
			Top:    max(top, 0),
			Bottom: max(bottom, 0),
		}
	}
}

// WithMaxWidth limits content to n columns; 0 removes the limit.
func WithMaxWidth(n int) Setting {
	return func(f *Formatting) {
		f.MaxWidth = max(n, 0)
	}
}

// WithTrim enables or disables trimming of cell lines.
func WithTrim(enabled bool) Setting {
	return func(f *Formatting) {
		f.Trim = enabled
	}
}

type entityKind int

const (
	entityGlobal entityKind = iota
	entityColumn
	entityRow
	entityCell
)

// Entity selects the cells a Setting applies to.
// When entities overlap, Cell wins over Row, Row over Column, Column over Global.
type Entity struct {
	kind entityKind
	row  int
	col  int
}

// EntityGlobal covers every cell.
func EntityGlobal() Entity {
	return Entity{kind: entityGlobal}
}

// EntityColumn covers column col.
func EntityColumn(col int) Entity {
	return Entity{kind: entityColumn, col: col}
}

// EntityRow covers row row. Row 0 is the header when the grid has one.
func EntityRow(row int) Entity {
	return Entity{kind: entityRow, row: row}
}

// EntityCell covers the cell at (row, col).
func EntityCell(row, col int) Entity {
	return Entity{kind: entityCell, row: row, col: col}
}

func (e Entity) covers(row, col int) bool {
	switch e.kind {
	case entityColumn:
		return e.col == col
	case entityRow:
		return e.row == row
	case entityCell:
		return e.row == row && e.col == col
	}
	return true
}

type entitySettings struct {
	entity   Entity
	settings []Setting
}

// resolveFormatting applies every matching setting in precedence order.
func resolveFormatting(entries []entitySettings, row, col int) Formatting {
	f := DefaultFormatting()
	for kind := entityGlobal; kind <= entityCell; kind++ {
		for _, e := range entries {
			if e.entity.kind != kind || !e.entity.covers(row, col) {
				continue
			}
			for _, set := range e.settings {
				set(&f)
			}
		}
	}
	return f
}
