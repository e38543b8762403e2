package prettytable

import (
	"encoding/json"
	"io"
)

func (t *Table) writeJSONL(w io.Writer) error {
	s, err := t.snapshot()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	for _, r := range s.records() {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
