// Package prettytable renders rows of values as aligned plain-text tables.
//
// A [Table] holds ordered column names and rows of [Value] cells. Cells are
// built from Go values with [ValueOf]; strings, integers, floats, bools and
// nil (the empty value) are supported:
//
//	t, _ := prettytable.New("City", "Pop")
//	t.AddRow("NYC", "8M")
//	t.AddRow("LA", "4M")
//	fmt.Println(t)
//
// prints
//
//	+------+-----+
//	| City | Pop |
//	+------+-----+
//	| NYC  | 8M  |
//	| LA   | 4M  |
//	+------+-----+
//
// # Options
//
// Rendering is controlled by [Options], starting from [DefaultOptions].
// Table-wide settings cover the border style, horizontal and vertical
// rules, padding, title, header casing and table width limits. A
// [ColumnStyle] overrides alignment, vertical alignment, width limits and
// number formats for one column; zero fields inherit the table setting.
//
// # Widths
//
// Widths are measured in terminal columns with go-runewidth, so wide East
// Asian runes count as two and ANSI color sequences count as zero. Cells
// wider than a column's maximum are word wrapped with [Wrap]; words that do
// not fit are broken. [Table.Layout] reports the widths a render would use.
//
// # Borders
//
//   - [BorderASCII]: "+", "-" and "|" (default)
//   - [BorderMarkdown]: GitHub-flavored Markdown
//   - [BorderNone]: no border characters
//   - [BorderSingle], [BorderDouble], [BorderRounded], [BorderHeavy]: box drawing
//   - [BorderCustom]: eleven characters from [Options.CustomBorder]
//
// # Formats
//
// [Table.Write] and [Table.Marshal] export the table as any [Format]:
// text, Markdown, reStructuredText, HTML, CSV, TSV, JSON, JSON Lines, YAML,
// LaTeX or a Go template applied per row. [FromCSV], [FromMarkdown],
// [FromHTML] and [FromSQL] build tables from other sources.
package prettytable
