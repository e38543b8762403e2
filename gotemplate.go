package prettytable

import (
	"errors"
	"fmt"
	"io"
	"text/template"
)

func (t *Table) writeGoTemplate(w io.Writer, tmplStr string) error {
	tmpl, err := template.New("row").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	s, err := t.snapshot()
	if err != nil {
		return err
	}
	for _, row := range s.cells {
		data := make(map[string]string, len(s.columns))
		for i, c := range s.columns {
			data[c] = row[i]
		}
		if err := tmpl.Execute(w, data); err != nil {
			var execErr template.ExecError
			if errors.As(err, &execErr) {
				return fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
			}
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
