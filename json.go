package prettytable

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
)

// record is one row as a JSON object with keys in column order.
type record struct {
	columns []string
	values  []Value
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(jsonValue(r.values[i]))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonValue returns the value to encode. JSON has no NaN or infinity, so
// those floats are written as their display string.
func jsonValue(v Value) any {
	if v.Kind() == KindFloat {
		if f := v.float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return v.String()
		}
	}
	return v.Any()
}

func (s *snapshot) records() []record {
	out := make([]record, len(s.values))
	for i, row := range s.values {
		out[i] = record{columns: s.columns, values: row}
	}
	return out
}

func (t *Table) writeJSON(w io.Writer) error {
	s, err := t.snapshot()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.records())
}
