package prettytable

import (
	"fmt"
	"io"
	"strings"
)

func (t *Table) writeTSV(w io.Writer) error {
	s, err := t.snapshot()
	if err != nil {
		return err
	}
	if t.opts.Header {
		if _, err := fmt.Fprintln(w, strings.Join(s.columns, "\t")); err != nil {
			return err
		}
	}
	for _, row := range s.cells {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
