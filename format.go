package prettytable

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	RST      Format = "rst"
	HTML     Format = "html"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	LaTeX    Format = "latex"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Text, Markdown, RST, HTML, CSV, TSV, JSON, JSONL, YAML, LaTeX}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go
// text/template. The template receives a map from column name to cell
// string and each row is written on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders the table in format f and writes it to w.
func (t *Table) Write(w io.Writer, f Format) error {
	switch f {
	case Text:
		_, err := t.WriteTo(w)
		return err
	case Markdown:
		return t.writeMarkdown(w)
	case RST:
		return t.writeRST(w)
	case HTML:
		return t.WriteHTML(w, HTMLOptions{})
	case CSV:
		return t.writeCSV(w, ',')
	case TSV:
		return t.writeTSV(w)
	case JSON:
		return t.writeJSON(w)
	case JSONL:
		return t.writeJSONL(w)
	case YAML:
		return t.writeYAML(w)
	case LaTeX:
		return t.writeLaTeX(w)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return t.writeGoTemplate(w, tmpl)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders the table in format f and returns the bytes.
func (t *Table) Marshal(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// snapshot is the visible part of a table for the export formats.
type snapshot struct {
	columns []string
	styles  []ColumnStyle
	cells   [][]string
	values  [][]Value
}

func (t *Table) snapshot() (*snapshot, error) {
	idx, err := t.visible(t.opts.Fields)
	if err != nil {
		return nil, err
	}
	s := &snapshot{
		columns: make([]string, len(idx)),
		styles:  make([]ColumnStyle, len(idx)),
		cells:   make([][]string, len(t.rows)),
		values:  make([][]Value, len(t.rows)),
	}
	for i, ci := range idx {
		s.columns[i] = t.columns[ci]
		s.styles[i] = t.opts.column(t.columns[ci])
	}
	for r, row := range t.rows {
		s.cells[r] = make([]string, len(idx))
		s.values[r] = make([]Value, len(idx))
		for i, ci := range idx {
			s.cells[r][i] = row[ci].Format(s.styles[i].IntFormat, s.styles[i].FloatFormat)
			s.values[r][i] = row[ci]
		}
	}
	return s, nil
}
