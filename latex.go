package prettytable

import (
	"fmt"
	"io"
	"strings"
)

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
	"\n", `\newline `,
)

func (t *Table) writeLaTeX(w io.Writer) error {
	s, err := t.snapshot()
	if err != nil {
		return err
	}
	o := t.opts
	framed := o.HRules == RuleFrame || o.HRules == RuleAll

	var colSpec strings.Builder
	if o.VRules != RuleNone {
		colSpec.WriteByte('|')
	}
	for i, cs := range s.styles {
		if i > 0 && o.VRules == RuleAll {
			colSpec.WriteByte('|')
		}
		colSpec.WriteByte(latexAlign(cs.Align))
	}
	if o.VRules != RuleNone {
		colSpec.WriteByte('|')
	}

	lines := []string{`\begin{tabular}{` + colSpec.String() + `}`}
	if framed {
		lines = append(lines, `\hline`)
	}
	if o.Header {
		head := make([]string, len(s.columns))
		for i, c := range s.columns {
			head[i] = latexEscaper.Replace(styleHeader(c, o.HeaderStyle))
		}
		lines = append(lines, strings.Join(head, " & ")+` \\`)
		if o.HRules != RuleNone && (o.HRules != RuleFrame || len(s.cells) > 0) {
			lines = append(lines, `\hline`)
		}
	}
	for r, row := range s.cells {
		esc := make([]string, len(row))
		for i, v := range row {
			esc[i] = latexEscaper.Replace(v)
		}
		lines = append(lines, strings.Join(esc, " & ")+` \\`)
		if o.HRules == RuleAll && r < len(s.cells)-1 {
			lines = append(lines, `\hline`)
		}
	}
	if framed && (len(s.cells) > 0 || !o.Header) {
		lines = append(lines, `\hline`)
	}
	lines = append(lines, `\end{tabular}`)
	_, err = fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func latexAlign(a Alignment) byte {
	switch a {
	case AlignCenter:
		return 'c'
	case AlignRight:
		return 'r'
	default:
		return 'l'
	}
}
