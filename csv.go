package prettytable

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode"
)

var sniffCandidates = []rune{',', ';', '\t', '|', ':'}

const sniffLines = 4

func (t *Table) writeCSV(w io.Writer, comma rune) error {
	s, err := t.snapshot()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if t.opts.Header {
		if err := cw.Write(s.columns); err != nil {
			return err
		}
	}
	for _, row := range s.cells {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVOption configures [FromCSV].
type CSVOption func(*csvConfig)

type csvConfig struct {
	delimiter rune
	columns   []string
}

// WithDelimiter sets the field delimiter. Without it the delimiter is
// guessed from the first lines of input.
func WithDelimiter(r rune) CSVOption {
	return func(c *csvConfig) { c.delimiter = r }
}

// WithColumns names the columns. The first record is then treated as data.
func WithColumns(names ...string) CSVOption {
	return func(c *csvConfig) { c.columns = names }
}

// FromCSV reads CSV data into a table. Unless [WithColumns] is given the
// first record holds the column names. Fields are trimmed of surrounding
// whitespace. Malformed input yields [ErrMalformedInput].
func FromCSV(r io.Reader, opts ...CSVOption) (*Table, error) {
	var cfg csvConfig
	for _, o := range opts {
		o(&cfg)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if cfg.delimiter == 0 {
		cfg.delimiter = sniffDelimiter(firstLines(data, sniffLines))
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = cfg.delimiter
	cr.TrimLeadingSpace = !unicode.IsSpace(cfg.delimiter)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	header := cfg.columns
	if header == nil {
		if len(records) == 0 {
			return nil, fmt.Errorf("%w: no header record", ErrMalformedInput)
		}
		header, records = trimFields(records[0]), records[1:]
	}
	t, err := New(header...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	for i, rec := range records {
		fields := trimFields(rec)
		row := make([]any, len(fields))
		for j, f := range fields {
			row[j] = f
		}
		if err := t.AddRow(row...); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedInput, i+1, err)
		}
	}
	return t, nil
}

func trimFields(rec []string) []string {
	out := make([]string, len(rec))
	for i, f := range rec {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

func firstLines(data []byte, n int) []string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() && len(lines) < n {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// sniffDelimiter picks the candidate that occurs the same non-zero number
// of times on every sample line, falling back to the most frequent one
// and finally to a comma.
func sniffDelimiter(lines []string) rune {
	if len(lines) == 0 {
		return ','
	}
	best, bestTotal := ',', 0
	for _, c := range sniffCandidates {
		counts := make([]int, len(lines))
		total := 0
		for i, line := range lines {
			counts[i] = countUnquoted(line, c)
			total += counts[i]
		}
		if total == 0 {
			continue
		}
		consistent := true
		for _, n := range counts {
			if n != counts[0] {
				consistent = false
				break
			}
		}
		if consistent {
			return c
		}
		if total > bestTotal {
			best, bestTotal = c, total
		}
	}
	return best
}

func countUnquoted(line string, c rune) int {
	n := 0
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == c && !quoted:
			n++
		}
	}
	return n
}
