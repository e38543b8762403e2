package prettytable

import (
	"io"

	"gopkg.in/yaml.v3"
)

func (t *Table) writeYAML(w io.Writer) error {
	s, err := t.snapshot()
	if err != nil {
		return err
	}
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, row := range s.values {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, c := range s.columns {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c},
				yamlScalar(row[i]),
			)
		}
		doc.Content = append(doc.Content, m)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func yamlScalar(v Value) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}
	switch v.Kind() {
	case KindInt:
		n.Tag = "!!int"
	case KindFloat:
		n.Tag = "!!float"
	case KindBool:
		n.Tag = "!!bool"
	case KindEmpty:
		n.Tag, n.Value = "!!null", "null"
	default:
		n.Tag = "!!str"
	}
	return n
}
