package papergrid

const (
	// DEFAULT_TAB_WIDTH is the number of spaces a tab expands to.
	DEFAULT_TAB_WIDTH = 4
)

// Grid stores a rectangular matrix of cell strings and the style used to render it.
// A Grid is meant to be built for a single render; it is not safe for concurrent mutation.
type Grid struct {
	rows  int
	cols  int
	cells [][]string

	style    Style
	ops      StringOps
	tabWidth int
	header   bool

	settings []entitySettings
}

// Option configures a Grid during construction.
type Option func(*Grid)

// WithStyle sets the border style. Defaults to ASCII.
func WithStyle(s Style) Option {
	return func(g *Grid) {
		g.style = s
	}
}

// WithTabWidth sets how many spaces a tab expands to.
// Values < 0 are replaced with the default (4).
func WithTabWidth(n int) Option {
	if n < 0 {
		n = DEFAULT_TAB_WIDTH
	}

	return func(g *Grid) {
		g.tabWidth = n
	}
}

// WithStringOps sets the string operations used to measure and cut cells.
// If nil, the escape-aware default is used.
func WithStringOps(ops StringOps) Option {
	return func(g *Grid) {
		if ops != nil {
			g.ops = ops
		}
	}
}

// WithHeader marks whether the first row is a header, separated from the body
// by the style's Header line. Defaults to true.
func WithHeader(enabled bool) Option {
	return func(g *Grid) {
		g.header = enabled
	}
}

// NewGrid creates a grid from records. The column count is the length of the
// longest record; missing cells of shorter records are empty.
// The records are copied.
func NewGrid(records [][]string, opts ...Option) *Grid {
	g := &Grid{
		style:    ASCII(),
		ops:      defaultOps,
		tabWidth: DEFAULT_TAB_WIDTH,
		header:   true,
	}

	for _, opt := range opts {
		opt(g)
	}

	cols := 0
	for _, record := range records {
		cols = max(cols, len(record))
	}

	g.Resize(len(records), cols)
	for row, record := range records {
		copy(g.cells[row], record)
	}

	return g
}

// Rows returns the number of rows, header included.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Style returns the border style.
func (g *Grid) Style() Style {
	return g.style
}

// Cell returns the text at (row, col).
// Returns "" if coordinates are out of bounds.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return ""
	}
	return g.cells[row][col]
}

// SetCell replaces the text at (row, col).
// Does nothing if coordinates are out of bounds.
func (g *Grid) SetCell(row, col int, text string) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row][col] = text
}

// Resize changes the grid dimensions, preserving content where possible.
// New cells are empty. Negative sizes are treated as 0.
func (g *Grid) Resize(rows, cols int) {
	rows = max(rows, 0)
	cols = max(cols, 0)

	newCells := make([][]string, rows)
	for i := range newCells {
		newCells[i] = make([]string, cols)
		if i < g.rows {
			copy(newCells[i], g.cells[i])
		}
	}

	g.cells = newCells
	g.rows = rows
	g.cols = cols
}

// Set applies settings to the cells covered by entity.
// Later calls override earlier ones for the same kind of entity.
func (g *Grid) Set(entity Entity, settings ...Setting) {
	g.settings = append(g.settings, entitySettings{entity: entity, settings: settings})
}

// Formatting returns the resolved formatting of the cell at (row, col).
func (g *Grid) Formatting(row, col int) Formatting {
	return resolveFormatting(g.settings, row, col)
}

// Tabled is implemented by record types that know their column headers and
// how to render themselves as a row of cells.
type Tabled interface {
	Headers() []string
	Fields() []string
}

// Records converts items into a matrix whose first row holds the headers.
// Headers are taken from the zero value of T when items is empty.
func Records[T Tabled](items []T) [][]string {
	var headers []string
	if len(items) > 0 {
		headers = items[0].Headers()
	} else {
		var zero T
		headers = zero.Headers()
	}

	records := make([][]string, 0, len(items)+1)
	records = append(records, headers)
	for _, item := range items {
		records = append(records, item.Fields())
	}
	return records
}
