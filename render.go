package prettytable

import (
	"io"
	"strings"
)

// Lines renders the table as a sequence of text lines without line
// terminators. A table without columns renders no lines. On error no
// lines are returned.
func (t *Table) Lines() ([]string, error) {
	return t.render(t.opts, "")
}

// Render renders the table as a single string, lines joined by
// Options.LineSeparator.
func (t *Table) Render() (string, error) {
	lines, err := t.Lines()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, t.opts.lineSeparator()), nil
}

// String renders the table, returning "" if the options are invalid.
// Use [Table.Render] to observe the error.
func (t *Table) String() string {
	s, _ := t.Render()
	return s
}

// WriteTo writes the rendered table to w, each line followed by
// Options.LineSeparator.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	lines, err := t.Lines()
	if err != nil {
		return 0, err
	}
	return writeLines(w, lines, t.opts.lineSeparator())
}

func writeLines(w io.Writer, lines []string, sep string) (int64, error) {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString(sep)
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// render assembles the grid. headerFill replaces the horizontal character
// of the header separator when non-empty.
func (t *Table) render(opts Options, headerFill string) ([]string, error) {
	if opts.Border == BorderMarkdown {
		opts.Title = ""
	}
	p, err := t.prepare(opts)
	if err != nil {
		return nil, err
	}
	if len(p.columns) == 0 || (len(p.rows) == 0 && !opts.PrintEmpty) {
		return nil, nil
	}
	bc := p.bc
	hrules := opts.HRules
	switch opts.Border {
	case BorderMarkdown:
		hrules = RuleHeader
	case BorderNone:
		hrules = RuleNone
	}
	framed := hrules == RuleFrame || hrules == RuleAll

	var lines []string
	switch {
	case opts.Title != "":
		if framed {
			lines = append(lines, p.rule(bc.topLeft, bc.horizontal, bc.topRight, bc.horizontal))
		}
		lines = append(lines, p.titleLines()...)
		if hrules != RuleNone {
			lines = append(lines, p.rule(bc.leftTee, bc.topTee, bc.rightTee, bc.horizontal))
		}
	case framed:
		lines = append(lines, p.rule(bc.topLeft, bc.topTee, bc.topRight, bc.horizontal))
	}

	if opts.Header {
		lines = append(lines, p.rowLines(p.header)...)
		if hrules != RuleNone {
			fill := bc.horizontal
			if headerFill != "" {
				fill = headerFill
			}
			if opts.Border == BorderMarkdown {
				lines = append(lines, p.markdownRule())
			} else {
				lines = append(lines, p.rule(bc.leftTee, bc.cross, bc.rightTee, fill))
			}
		}
	}

	for r, row := range p.rows {
		lines = append(lines, p.rowLines(row)...)
		if hrules == RuleAll && r < len(p.rows)-1 {
			lines = append(lines, p.rule(bc.leftTee, bc.cross, bc.rightTee, bc.horizontal))
		}
	}

	if framed {
		lines = append(lines, p.rule(bc.bottomLeft, bc.bottomTee, bc.bottomRight, bc.horizontal))
	}
	return lines, nil
}

// edges returns the outer and inner separators for content lines.
func (p *prepared) edges() (outer, inner string) {
	if p.opts.Border == BorderNone {
		return "", ""
	}
	outer, inner = " ", " "
	if p.opts.VRules == RuleAll || p.opts.VRules == RuleFrame {
		outer = p.bc.vertical
	}
	if p.opts.VRules == RuleAll {
		inner = p.bc.vertical
	}
	return outer, inner
}

func (p *prepared) rule(left, mid, right, fill string) string {
	segs := make([]string, len(p.widths))
	for i, w := range p.widths {
		segs[i] = strings.Repeat(fill, w+p.opts.PaddingLeft+p.opts.PaddingRight)
	}
	return p.joinRule(left, mid, right, fill, segs)
}

func (p *prepared) joinRule(left, mid, right, fill string, segs []string) string {
	if p.opts.VRules != RuleAll {
		mid = fill
	}
	if p.opts.VRules == RuleNone {
		left, right = fill, fill
	}
	return left + strings.Join(segs, mid) + right
}

// markdownRule is the header separator of a Markdown table, carrying
// alignment markers.
func (p *prepared) markdownRule() string {
	bc := p.bc
	segs := make([]string, len(p.widths))
	for i, w := range p.widths {
		n := w + p.opts.PaddingLeft + p.opts.PaddingRight
		switch {
		case p.styles[i].Align == AlignCenter && n >= 2:
			segs[i] = ":" + strings.Repeat(bc.horizontal, n-2) + ":"
		case p.styles[i].Align == AlignRight && n >= 1:
			segs[i] = strings.Repeat(bc.horizontal, n-1) + ":"
		default:
			segs[i] = strings.Repeat(bc.horizontal, n)
		}
	}
	return p.joinRule(bc.leftTee, bc.cross, bc.rightTee, bc.horizontal, segs)
}

func (p *prepared) titleLines() []string {
	outer, _ := p.edges()
	inner := p.tableWidth()
	if p.opts.Border != BorderNone {
		inner = p.tableWidth() - 2
	}
	content := inner - p.opts.PaddingLeft - p.opts.PaddingRight
	lpad := strings.Repeat(" ", p.opts.PaddingLeft)
	rpad := strings.Repeat(" ", p.opts.PaddingRight)
	var lines []string
	for _, line := range Wrap(p.opts.Title, content) {
		lines = append(lines, outer+lpad+alignCell(line, content, AlignCenter)+rpad+outer)
	}
	return lines
}

// rowLines wraps every cell to its column width, reconciles the row to
// its tallest cell and joins the cells with separators.
func (p *prepared) rowLines(cells []string) []string {
	wrapped := make([][]string, len(cells))
	height := 1
	for i, c := range cells {
		wrapped[i] = Wrap(c, p.widths[i])
		height = max(height, len(wrapped[i]))
	}
	for i := range wrapped {
		wrapped[i] = fitLines(wrapped[i], height, p.styles[i].VAlign)
	}
	outer, inner := p.edges()
	lpad := strings.Repeat(" ", p.opts.PaddingLeft)
	rpad := strings.Repeat(" ", p.opts.PaddingRight)
	lines := make([]string, height)
	for y := range height {
		var sb strings.Builder
		sb.WriteString(outer)
		for i, width := range p.widths {
			sb.WriteString(lpad)
			sb.WriteString(alignCell(wrapped[i][y], width, p.styles[i].Align))
			sb.WriteString(rpad)
			if i < len(p.widths)-1 {
				sb.WriteString(inner)
			}
		}
		sb.WriteString(outer)
		lines[y] = sb.String()
	}
	return lines
}

// alignCell pads s to width. Center alignment puts the odd extra space on
// the right.
func alignCell(s string, width int, align Alignment) string {
	pad := width - DisplayWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
