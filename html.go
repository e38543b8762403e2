package prettytable

import (
	"fmt"
	"html"
	"io"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLOptions controls HTML output.
type HTMLOptions struct {
	// Attributes are added to the <table> element, sorted by name.
	Attributes map[string]string
	// XHTML emits self-closing <br/> line breaks.
	XHTML bool
}

// WriteHTML writes the table as an HTML <table>. Cell text is escaped,
// newlines become line breaks and the title becomes a <caption>.
func (t *Table) WriteHTML(w io.Writer, o HTMLOptions) error {
	s, err := t.snapshot()
	if err != nil {
		return err
	}
	br := "<br>"
	if o.XHTML {
		br = "<br/>"
	}
	cell := func(v string) string {
		return strings.ReplaceAll(html.EscapeString(v), "\n", br)
	}

	var attrs strings.Builder
	for _, k := range slices.Sorted(maps.Keys(o.Attributes)) {
		fmt.Fprintf(&attrs, ` %s="%s"`, html.EscapeString(k), html.EscapeString(o.Attributes[k]))
	}
	if _, err := fmt.Fprintf(w, "<table%s>\n", attrs.String()); err != nil {
		return err
	}

	if t.opts.Title != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", cell(t.opts.Title)); err != nil {
			return err
		}
	}

	if t.opts.Header {
		if _, err := fmt.Fprintln(w, "  <thead>\n    <tr>"); err != nil {
			return err
		}
		for i, col := range s.columns {
			name := styleHeader(col, t.opts.HeaderStyle)
			if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(s.styles[i].Align), cell(name)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>\n  </thead>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range s.cells {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, v := range row {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", alignStyle(s.styles[i].Align), cell(v)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, "</table>")
	return err
}

func alignStyle(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}

// FromHTML parses every <table> in r. Rows made of <th> cells before the
// first data row name the columns; repeated names get a trailing "'".
// Cells spanning several columns are followed by empty cells. A <caption>
// becomes the table title.
func FromHTML(r io.Reader) ([]*Table, error) {
	doc, err := xhtml.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	var tables []*Table
	for n := range doc.Descendants() {
		if n.Type != xhtml.ElementNode || n.DataAtom != atom.Table {
			continue
		}
		t, err := tableFromNode(n)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", len(tables)+1, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// FromHTMLOne parses r, which must hold exactly one <table>.
func FromHTMLOne(r io.Reader) (*Table, error) {
	tables, err := FromHTML(r)
	if err != nil {
		return nil, err
	}
	if len(tables) != 1 {
		return nil, fmt.Errorf("%w: expected one table, found %d", ErrMalformedInput, len(tables))
	}
	return tables[0], nil
}

func tableFromNode(n *xhtml.Node) (*Table, error) {
	t, _ := New()
	var header []string
	var rows [][]any
	for c := range ownDescendants(n) {
		switch c.DataAtom {
		case atom.Caption:
			t.opts.Title = nodeText(c)
		case atom.Tr:
			cells, allHeader := rowCells(c)
			if len(cells) == 0 {
				continue
			}
			if allHeader && rows == nil && header == nil {
				header = uniqueNames(cells)
				continue
			}
			row := make([]any, len(cells))
			for i, v := range cells {
				row[i] = v
			}
			rows = append(rows, row)
		}
	}
	if header != nil {
		if err := t.SetColumns(header...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
	}
	for i, row := range rows {
		if err := t.AddRow(row...); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedInput, i+1, err)
		}
	}
	return t, nil
}

// ownDescendants yields the elements below n that do not belong to a
// nested table.
func ownDescendants(n *xhtml.Node) iter.Seq[*xhtml.Node] {
	return func(yield func(*xhtml.Node) bool) {
		var walk func(*xhtml.Node) bool
		walk = func(p *xhtml.Node) bool {
			for c := p.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != xhtml.ElementNode || c.DataAtom == atom.Table {
					continue
				}
				if !yield(c) || !walk(c) {
					return false
				}
			}
			return true
		}
		walk(n)
	}
}

func rowCells(tr *xhtml.Node) (cells []string, allHeader bool) {
	allHeader = true
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xhtml.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		if c.DataAtom == atom.Td {
			allHeader = false
		}
		cells = append(cells, nodeText(c))
		for range colspan(c) - 1 {
			cells = append(cells, "")
		}
	}
	return cells, allHeader
}

func colspan(n *xhtml.Node) int {
	for _, a := range n.Attr {
		if a.Key == "colspan" {
			if v, err := strconv.Atoi(strings.TrimSpace(a.Val)); err == nil && v > 1 {
				return v
			}
		}
	}
	return 1
}

// nodeText collects the text below n with whitespace collapsed. <br>
// starts a new line.
func nodeText(n *xhtml.Node) string {
	var (
		lines []string
		cur   strings.Builder
	)
	var walk func(*xhtml.Node)
	walk = func(p *xhtml.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == xhtml.TextNode:
				cur.WriteString(c.Data)
			case c.Type == xhtml.ElementNode && c.DataAtom == atom.Br:
				lines = append(lines, cur.String())
				cur.Reset()
			case c.Type == xhtml.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	lines = append(lines, cur.String())
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.Join(lines, "\n")
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, len(names))
	for i, n := range names {
		for seen[n] {
			n += "'"
		}
		seen[n] = true
		out[i] = n
	}
	return out
}
