// Package papergrid renders a matrix of strings as a text table.
//
// Cells may hold multiple lines, tabs, wide characters and ANSI escape
// sequences. Column widths and row heights are measured in terminal columns,
// so colored text lines up with plain text.
//
// # Quick Start
//
//	grid := papergrid.NewGrid([][]string{
//	    {"N", "name"},
//	    {"0", "alpha"},
//	    {"1", "\x1b[31mbeta\x1b[0m"},
//	})
//	fmt.Print(grid)
//
//	// +---+-------+
//	// | N | name  |
//	// +---+-------+
//	// | 0 | alpha |
//	// +---+-------+
//	// | 1 | beta  |
//	// +---+-------+
//
// # Styles
//
// A [Style] is a value holding the glyphs for the frame and the separators.
// Presets such as [ASCII], [Psql], [GithubMarkdown], [Pseudo] and
// [ReStructuredText] can be adjusted with the With* methods:
//
//	style := papergrid.Pseudo().WithSplit(papergrid.NoLine).WithInner(' ')
//	grid := papergrid.NewGrid(records, papergrid.WithStyle(style))
//
// Styles can also be loaded from YAML with [LoadStyle]; see [StyleConfig].
//
// # Formatting
//
// Alignment, padding, width limits and trimming are configured per
// [Entity]. Settings on a cell win over its row, a row over its column and a
// column over the global settings:
//
//	grid.Set(papergrid.EntityGlobal(), papergrid.WithAlignment(papergrid.AlignLeft))
//	grid.Set(papergrid.EntityColumn(1), papergrid.WithMaxWidth(10))
//	grid.Set(papergrid.EntityCell(0, 0), papergrid.WithPadding(2, 2, 0, 0))
//
// Text that does not fit [Formatting.MaxWidth] is cut; a wide character that
// would straddle the limit is replaced with [Placeholder].
//
// # String Operations
//
// Measuring, cutting, trimming and splitting go through a [StringOps]. The
// default implementation treats escape sequences as zero width and keeps
// them intact when text is cut or split. [NewStringOps] builds a variant
// that measures escapes as plain text or counts ambiguous East Asian
// characters as wide:
//
//	ops := papergrid.NewStringOps(papergrid.WithAmbiguousWide(true))
//	grid := papergrid.NewGrid(records, papergrid.WithStringOps(ops))
//
// The same helpers are exported as package functions: [StringWidth],
// [Cut], [Strip], [Trim], [SplitLines], [ExpandTabs] and friends.
package papergrid
