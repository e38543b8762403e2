package prettytable_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/prettytable"
)

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func typed(t *testing.T) *prettytable.Table {
	t.Helper()
	tbl, err := prettytable.New("s", "i", "f", "b", "e")
	require.NoError(t, err)
	require.NoError(t, tbl.AddRow("a", 1, 2.5, true, nil))
	return tbl
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, f := range prettytable.Formats() {
		got, err := prettytable.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := prettytable.ParseFormat("go-template={{.x}}")
	require.NoError(t, err)
	assert.Equal(t, prettytable.GoTemplate("{{.x}}"), got)

	_, err = prettytable.ParseFormat("xml")
	require.ErrorIs(t, err, prettytable.ErrUnsupportedFormat)
}

func TestWriteFormats(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format prettytable.Format
		want   string
	}{
		"text": {
			format: prettytable.Text,
			want:   "+------+-----+\n| City | Pop |\n+------+-----+\n| NYC  | 8M  |\n| LA   | 4M  |\n+------+-----+\n",
		},
		"markdown": {
			format: prettytable.Markdown,
			want:   "| City | Pop |\n|------|-----|\n| NYC  | 8M  |\n| LA   | 4M  |\n",
		},
		"rst": {
			format: prettytable.RST,
			want: "+------+-----+\n| City | Pop |\n+======+=====+\n" +
				"| NYC  | 8M  |\n+------+-----+\n| LA   | 4M  |\n+------+-----+\n",
		},
		"csv": {
			format: prettytable.CSV,
			want:   "City,Pop\nNYC,8M\nLA,4M\n",
		},
		"tsv": {
			format: prettytable.TSV,
			want:   "City\tPop\nNYC\t8M\nLA\t4M\n",
		},
		"jsonl": {
			format: prettytable.JSONL,
			want:   "{\"City\":\"NYC\",\"Pop\":\"8M\"}\n{\"City\":\"LA\",\"Pop\":\"4M\"}\n",
		},
		"json": {
			format: prettytable.JSON,
			want: `[
  {
    "City": "NYC",
    "Pop": "8M"
  },
  {
    "City": "LA",
    "Pop": "4M"
  }
]
`,
		},
		"yaml": {
			format: prettytable.YAML,
			want:   "- City: NYC\n  Pop: 8M\n- City: LA\n  Pop: 4M\n",
		},
		"latex": {
			format: prettytable.LaTeX,
			want: "\\begin{tabular}{|l|l|}\n\\hline\nCity & Pop \\\\\n\\hline\n" +
				"NYC & 8M \\\\\nLA & 4M \\\\\n\\hline\n\\end{tabular}\n",
		},
		"go template": {
			format: prettytable.GoTemplate("{{.City}}={{.Pop}}"),
			want:   "NYC=8M\nLA=4M\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, cities(t).Write(&buf, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteFormatsPropagateWriteErrors(t *testing.T) {
	t.Parallel()
	for _, f := range append(prettytable.Formats(), prettytable.GoTemplate("{{.City}}")) {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			err := cities(t).Write(&errWriter{}, f)
			require.Error(t, err)
		})
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	_, err := cities(t).Marshal("xml")
	require.ErrorIs(t, err, prettytable.ErrUnsupportedFormat)
}

func TestWriteInvalidTemplate(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"parse":       "{{.City",
		"missing key": "{{.Country}}",
	}
	for name, tmpl := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := cities(t).Marshal(prettytable.GoTemplate(tmpl))
			require.ErrorIs(t, err, prettytable.ErrInvalidTemplate)
		})
	}
}

func TestWriteTypedValues(t *testing.T) {
	t.Parallel()

	out, err := typed(t).Marshal(prettytable.JSONL)
	require.NoError(t, err)
	assert.Equal(t, `{"s":"a","i":1,"f":2.5,"b":true,"e":null}`+"\n", string(out))

	out, err = typed(t).Marshal(prettytable.YAML)
	require.NoError(t, err)
	assert.Equal(t, "- s: a\n  i: 1\n  f: 2.5\n  b: true\n  e: null\n", string(out))
}

func TestWriteNonFiniteFloats(t *testing.T) {
	t.Parallel()
	tbl, err := prettytable.New("x")
	require.NoError(t, err)
	require.NoError(t, tbl.AddRows([]any{math.NaN()}, []any{math.Inf(1)}, []any{math.Inf(-1)}))

	out, err := tbl.Marshal(prettytable.JSONL)
	require.NoError(t, err)
	assert.Equal(t, "{\"x\":\"NaN\"}\n{\"x\":\"+Inf\"}\n{\"x\":\"-Inf\"}\n", string(out))

	_, err = tbl.Marshal(prettytable.JSON)
	require.NoError(t, err)
}

func TestWriteMarkdownAlignmentMarkers(t *testing.T) {
	t.Parallel()
	tbl, err := prettytable.New("Left", "Center", "Right")
	require.NoError(t, err)
	require.NoError(t, tbl.AddRow("a", "b", "c"))
	tbl.SetColumnStyle("Center", prettytable.ColumnStyle{Align: prettytable.AlignCenter})
	tbl.SetColumnStyle("Right", prettytable.ColumnStyle{Align: prettytable.AlignRight})

	out, err := tbl.Marshal(prettytable.Markdown)
	require.NoError(t, err)
	assert.Equal(t,
		"| Left | Center | Right |\n"+
			"|------|:------:|------:|\n"+
			"| a    |   b    |     c |\n",
		string(out))

	back, err := prettytable.FromMarkdown(string(out))
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns(), back.Columns())
	assert.Equal(t, tbl.Rows(), back.Rows())
	assert.Equal(t, prettytable.AlignRight, back.Options().Columns["Right"].Align)
}

func TestWriteMarkdownRoundTrip(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		rows  [][]any
		style prettytable.ColumnStyle
		opts  func(*prettytable.Options)
		want  string
	}{
		"pipe": {
			rows: [][]any{{"a|b", "x"}},
			want: "| k    | v   |\n|------|-----|\n| a\\|b | x   |\n",
		},
		"newline": {
			rows: [][]any{{"line1\nline2", "x"}},
			want: "| k              | v   |\n|----------------|-----|\n| line1<br>line2 | x   |\n",
		},
		"narrow right column": {
			rows:  [][]any{{"1", "2"}},
			style: prettytable.ColumnStyle{Align: prettytable.AlignRight},
			opts:  func(o *prettytable.Options) { o.PaddingLeft, o.PaddingRight = 0, 0 },
			want:  "|k  |  v|\n|---|--:|\n|1  |  2|\n",
		},
		"max widths ignored": {
			rows: [][]any{{"one two three", "x"}},
			opts: func(o *prettytable.Options) { o.MaxWidth, o.MaxTableWidth = 3, 10 },
			want: "| k             | v   |\n|---------------|-----|\n| one two three | x   |\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl, err := prettytable.New("k", "v")
			require.NoError(t, err)
			require.NoError(t, tbl.AddRows(tt.rows...))
			tbl.SetColumnStyle("v", tt.style)
			if tt.opts != nil {
				opts := tbl.Options()
				tt.opts(&opts)
				tbl.SetOptions(opts)
			}

			out, err := tbl.Marshal(prettytable.Markdown)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))

			back, err := prettytable.FromMarkdown(string(out))
			require.NoError(t, err)
			assert.Equal(t, tbl.Columns(), back.Columns())
			assert.Equal(t, tbl.Rows(), back.Rows())
		})
	}
}

func TestRenderMarkdownBorderDropsTitle(t *testing.T) {
	t.Parallel()
	tbl := cities(t)
	opts := tbl.Options()
	opts.Border = prettytable.BorderMarkdown
	opts.Title = "Cities of the United States"
	tbl.SetOptions(opts)
	out, err := tbl.Render()
	require.NoError(t, err)
	assert.Equal(t, join(
		"| City | Pop |",
		"|------|-----|",
		"| NYC  | 8M  |",
		"| LA   | 4M  |",
	), out)

	back, err := prettytable.FromMarkdown(out)
	require.NoError(t, err)
	assert.Equal(t, tbl.Rows(), back.Rows())
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()
	tbl, err := prettytable.New("Name", "Qty")
	require.NoError(t, err)
	require.NoError(t, tbl.AddRow("<b>&\nnext", 3))
	tbl.SetColumnStyle("Qty", prettytable.ColumnStyle{Align: prettytable.AlignRight})
	opts := tbl.Options()
	opts.Title = "Stock"
	tbl.SetOptions(opts)

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteHTML(&buf, prettytable.HTMLOptions{
		Attributes: map[string]string{"id": "t1", "class": "wide"},
		XHTML:      true,
	}))
	out := buf.String()
	assert.Contains(t, out, `<table class="wide" id="t1">`)
	assert.Contains(t, out, "<caption>Stock</caption>")
	assert.Contains(t, out, "<th>Name</th>")
	assert.Contains(t, out, `<th style="text-align: right">Qty</th>`)
	assert.Contains(t, out, "<td>&lt;b&gt;&amp;<br/>next</td>")
	assert.Contains(t, out, `<td style="text-align: right">3</td>`)

	html, err := tbl.Marshal(prettytable.HTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<br>next")
	assert.Contains(t, string(html), "<table>")
}

func TestWriteLaTeXEscapes(t *testing.T) {
	t.Parallel()
	tbl, err := prettytable.New("a_b")
	require.NoError(t, err)
	require.NoError(t, tbl.AddRow("50% & $5"))
	opts := tbl.Options()
	opts.HRules = prettytable.RuleNone
	opts.VRules = prettytable.RuleNone
	tbl.SetOptions(opts)

	out, err := tbl.Marshal(prettytable.LaTeX)
	require.NoError(t, err)
	assert.Equal(t, "\\begin{tabular}{l}\na\\_b \\\\\n50\\% \\& \\$5 \\\\\n\\end{tabular}\n", string(out))
}

func TestWriteRespectsFieldsAndHeader(t *testing.T) {
	t.Parallel()
	tbl := cities(t)
	opts := tbl.Options()
	opts.Fields = []string{"City"}
	opts.Header = false
	tbl.SetOptions(opts)

	out, err := tbl.Marshal(prettytable.CSV)
	require.NoError(t, err)
	assert.Equal(t, "NYC\nLA\n", string(out))

	out, err = tbl.Marshal(prettytable.JSONL)
	require.NoError(t, err)
	assert.Equal(t, "{\"City\":\"NYC\"}\n{\"City\":\"LA\"}\n", string(out))
}

func TestWriteEmptyTable(t *testing.T) {
	t.Parallel()
	tbl, err := prettytable.New("a")
	require.NoError(t, err)

	out, err := tbl.Marshal(prettytable.JSON)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out))

	out, err = tbl.Marshal(prettytable.JSONL)
	require.NoError(t, err)
	assert.Empty(t, out)
}
