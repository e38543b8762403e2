package prettytable

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	tabWidth = 4
	// markdownMinWidth keeps room for a "---" separator in every column.
	markdownMinWidth = 3
)

var ansiRe = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Layout is the per-render column geometry.
type Layout struct {
	// Columns lists the rendered columns in order.
	Columns []string
	// Content maps each column to the width available for text.
	Content map[string]int
	// Widths maps each column to its full width, padding included.
	Widths map[string]int
	// TableWidth is the display width of every rendered line.
	TableWidth int
}

// Layout computes the column widths the next render would use.
func (t *Table) Layout() (Layout, error) {
	p, err := t.prepare(t.opts)
	if err != nil {
		return Layout{}, err
	}
	l := Layout{
		Columns:    slices.Clone(p.columns),
		Content:    make(map[string]int, len(p.columns)),
		Widths:     make(map[string]int, len(p.columns)),
		TableWidth: p.tableWidth(),
	}
	for i, c := range p.columns {
		l.Content[c] = p.widths[i]
		l.Widths[c] = p.widths[i] + p.opts.PaddingLeft + p.opts.PaddingRight
	}
	return l, nil
}

// DisplayWidth returns the number of terminal columns s occupies. ANSI
// color sequences take no space and wide East Asian runes take two.
func DisplayWidth(s string) int {
	if strings.IndexByte(s, '\x1b') >= 0 {
		s = ansiRe.ReplaceAllString(s, "")
	}
	return runewidth.StringWidth(s)
}

// blockWidth is the width of the widest line in s.
func blockWidth(s string) int {
	n := 0
	for line := range strings.SplitSeq(s, "\n") {
		n = max(n, DisplayWidth(line))
	}
	return n
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// markdownCell keeps a cell on one Markdown line: pipes are escaped and
// line breaks become <br>.
func markdownCell(s string) string {
	s = strings.ReplaceAll(expandTabs(s), "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}

func styleHeader(s string, style HeaderStyle) string {
	switch style {
	case HeaderCap:
		if s == "" {
			return s
		}
		r := []rune(strings.ToLower(s))
		return strings.ToUpper(string(r[0])) + string(r[1:])
	case HeaderTitle:
		return cases.Title(language.Und).String(s)
	case HeaderUpper:
		return strings.ToUpper(s)
	case HeaderLower:
		return strings.ToLower(s)
	default:
		return s
	}
}

// prepared is a validated, render-ready snapshot of a table.
type prepared struct {
	opts    Options
	bc      borderChars
	columns []string
	styles  []ColumnStyle
	header  []string
	rows    [][]string
	widths  []int
}

func (t *Table) prepare(opts Options) (*prepared, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	bc, err := opts.borderChars()
	if err != nil {
		return nil, err
	}
	idx, err := t.visible(opts.Fields)
	if err != nil {
		return nil, err
	}
	p := &prepared{
		opts:    opts,
		bc:      bc,
		columns: make([]string, len(idx)),
		styles:  make([]ColumnStyle, len(idx)),
		header:  make([]string, len(idx)),
		rows:    make([][]string, len(t.rows)),
	}
	cell := expandTabs
	if opts.Border == BorderMarkdown {
		cell = markdownCell
	}
	for i, ci := range idx {
		name := t.columns[ci]
		p.columns[i] = name
		p.styles[i] = opts.column(name)
		p.header[i] = cell(styleHeader(name, opts.HeaderStyle))
	}
	for r, row := range t.rows {
		cells := make([]string, len(idx))
		for i, ci := range idx {
			cs := p.styles[i]
			cells[i] = cell(row[ci].Format(cs.IntFormat, cs.FloatFormat))
		}
		p.rows[r] = cells
	}
	p.computeWidths()
	return p, nil
}

func (t *Table) visible(fields []string) ([]int, error) {
	if fields == nil {
		idx := make([]int, len(t.columns))
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}
	for _, f := range fields {
		if !slices.Contains(t.columns, f) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, f)
		}
	}
	var idx []int
	for i, c := range t.columns {
		if slices.Contains(fields, c) {
			idx = append(idx, i)
		}
	}
	return idx, nil
}

// computeWidths sets each content width to the header width or the widest
// cell capped by MaxWidth, whichever is larger, raised to MinWidth; then
// applies table-level constraints. Markdown cells are never wrapped.
func (p *prepared) computeWidths() {
	markdown := p.opts.Border == BorderMarkdown
	p.widths = make([]int, len(p.columns))
	for i := range p.columns {
		header := 0
		if p.opts.Header {
			header = blockWidth(p.header[i])
		}
		content := 0
		for _, row := range p.rows {
			content = max(content, blockWidth(row[i]))
		}
		floor := p.styles[i].MinWidth
		if markdown {
			floor = max(floor, markdownMinWidth)
		} else if mw := p.styles[i].MaxWidth; mw > 0 && content > mw {
			content = mw
		}
		p.widths[i] = max(header, content, floor)
	}
	if len(p.widths) == 0 {
		return
	}
	if !markdown && p.opts.MaxTableWidth > 0 && p.tableWidth() > p.opts.MaxTableWidth {
		p.shrink(p.opts.MaxTableWidth)
	}
	need := p.opts.MinTableWidth
	if p.opts.Title != "" {
		need = max(need, p.titleWidth()+min(p.frameWidth(), 2))
	}
	if need > p.tableWidth() {
		p.grow(need)
	}
}

// frameWidth is the number of border characters on each line.
func (p *prepared) frameWidth() int {
	if p.opts.Border == BorderNone || len(p.widths) == 0 {
		return 0
	}
	return len(p.widths) + 1
}

func (p *prepared) fixedWidth() int {
	return p.frameWidth() + len(p.widths)*(p.opts.PaddingLeft+p.opts.PaddingRight)
}

func (p *prepared) tableWidth() int {
	n := p.fixedWidth()
	for _, w := range p.widths {
		n += w
	}
	return n
}

func (p *prepared) titleWidth() int {
	return blockWidth(p.opts.Title) + p.opts.PaddingLeft + p.opts.PaddingRight
}

func (p *prepared) shrink(limit int) {
	data := p.tableWidth() - p.fixedWidth()
	avail := limit - p.fixedWidth()
	if data <= 0 {
		return
	}
	for i, w := range p.widths {
		p.widths[i] = max(1, w*avail/data)
	}
}

// grow widens columns in proportion to their width until the table is
// exactly target wide. Leftover columns go to the leftmost columns.
func (p *prepared) grow(target int) {
	extra := target - p.tableWidth()
	data := p.tableWidth() - p.fixedWidth()
	given := 0
	for i, w := range p.widths {
		share := extra / len(p.widths)
		if data > 0 {
			share = extra * w / data
		}
		p.widths[i] += share
		given += share
	}
	for i := 0; given < extra; i = (i + 1) % len(p.widths) {
		p.widths[i]++
		given++
	}
}
