package prettytable

import (
	"fmt"
	"io"
	"strings"
)

func (t *Table) writeMarkdown(w io.Writer) error {
	opts := t.opts.clone()
	opts.Border = BorderMarkdown
	opts.VRules = RuleAll
	opts.Header = true
	opts.Title = ""
	opts.PrintEmpty = true
	lines, err := t.render(opts, "")
	if err != nil {
		return err
	}
	_, err = writeLines(w, lines, "\n")
	return err
}

// FromMarkdown parses a GitHub-flavored Markdown table. The first line
// holds the column names and the second the separator; alignment markers
// in the separator become column styles. Blank lines are skipped. Cells
// may contain escaped pipes and <br> line breaks.
func FromMarkdown(md string) (*Table, error) {
	var lines []string
	for line := range strings.SplitSeq(md, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: markdown table needs a header and a separator line", ErrMalformedInput)
	}
	t, err := New(splitMarkdownRow(lines[0])...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	seps := splitMarkdownRow(lines[1])
	if len(seps) != t.ColumnCount() || !isMarkdownSeparator(seps) {
		return nil, fmt.Errorf("%w: line 2 is not a separator for %d columns", ErrMalformedInput, t.ColumnCount())
	}
	for i, sep := range seps {
		if a := markdownAlignment(sep); a != AlignDefault {
			t.SetColumnStyle(t.columns[i], ColumnStyle{Align: a})
		}
	}
	for n, line := range lines[2:] {
		cells := splitMarkdownRow(line)
		row := make([]any, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		if err := t.AddRow(row...); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedInput, n+1, err)
		}
	}
	return t, nil
}

// splitMarkdownRow splits "| a | b |" into trimmed cells. Escaped pipes
// stay inside their cell and <br> becomes a line break.
func splitMarkdownRow(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	if strings.HasSuffix(row, "|") && !strings.HasSuffix(row, `\|`) {
		row = row[:len(row)-1]
	}
	var (
		cells []string
		cur   strings.Builder
	)
	for i := 0; i < len(row); i++ {
		switch {
		case row[i] == '\\' && i+1 < len(row) && row[i+1] == '|':
			cur.WriteByte('|')
			i++
		case row[i] == '|':
			cells = append(cells, markdownText(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(row[i])
		}
	}
	return append(cells, markdownText(cur.String()))
}

var markdownBreaks = strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n")

func markdownText(s string) string {
	return markdownBreaks.Replace(strings.TrimSpace(s))
}

func isMarkdownSeparator(cells []string) bool {
	for _, c := range cells {
		if strings.Trim(c, ":") == "" || strings.Trim(c, "-:") != "" {
			return false
		}
	}
	return true
}

func markdownAlignment(sep string) Alignment {
	left := strings.HasPrefix(sep, ":")
	right := strings.HasSuffix(sep, ":")
	switch {
	case left && right:
		return AlignCenter
	case right:
		return AlignRight
	case left:
		return AlignLeft
	default:
		return AlignDefault
	}
}
