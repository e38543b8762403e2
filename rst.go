package prettytable

import "io"

// writeRST renders a reStructuredText grid table: ASCII borders, a rule
// after every row and "=" under the header.
func (t *Table) writeRST(w io.Writer) error {
	opts := t.opts.clone()
	opts.Border = BorderASCII
	opts.HRules = RuleAll
	opts.VRules = RuleAll
	opts.Header = true
	opts.Title = ""
	opts.PrintEmpty = true
	lines, err := t.render(opts, "=")
	if err != nil {
		return err
	}
	_, err = writeLines(w, lines, "\n")
	return err
}
